// 19 Oct 2026

// Package fastq reads and writes sequencing reads in the four line
// fastq format
//
//	@id optional description
//	SEQUENCE
//	+
//	QUALITY
//
// The reader is permissive. A broken record is reported with an error
// that matches ErrMalformed, after which the reader carries on with
// the next record. Callers can skip such records or give up.
package fastq

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	hdrChar = '@'
	sepChar = '+'
)

// maxLine allows for very long reads. The scanner grows its buffer
// up to this size.
const maxLine = 64 * 1024 * 1024

// ErrMalformed is matched by errors.Is for any record that could not
// be decoded. Other errors from Read come from the underlying reader.
var ErrMalformed = errors.New("malformed fastq record")

// Record is one read. Seq and Qual have the same length.
type Record struct {
	ID   string
	Desc string // may be empty
	Seq  []byte
	Qual []byte
}

// Header returns the header line without the leading '@'.
func (r Record) Header() string {
	if r.Desc == "" {
		return r.ID
	}
	return r.ID + " " + r.Desc
}

// readError says where a record went wrong.
type readError struct {
	n      int    // line number
	inline string // The line that provoked the error
	desc   string // Description of error
}

const maxMsgLen = 40

func firstPart(s string) string {
	if len(s) > maxMsgLen {
		return s[:maxMsgLen]
	}
	return s
}

func (e *readError) Error() string {
	return fmt.Sprintf("line %d: %s (line starting %q)", e.n, e.desc, firstPart(e.inline))
}

func (e *readError) Is(target error) bool { return target == ErrMalformed }

// Reader decodes records from an io.Reader.
type Reader struct {
	sc       *bufio.Scanner
	n        int    // lines read so far
	pushed   []byte // header found while skipping rubbish
	havePush bool
}

// NewReader returns a Reader reading from rdr.
func NewReader(rdr io.Reader) *Reader {
	sc := bufio.NewScanner(rdr)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc}
}

// next returns the next line without its line ending. The slice is
// only valid until the following call.
func (r *Reader) next() ([]byte, bool) {
	if r.havePush {
		r.havePush = false
		return r.pushed, true
	}
	if !r.sc.Scan() {
		return nil, false
	}
	r.n++
	return bytes.TrimSuffix(r.sc.Bytes(), []byte{'\r'}), true
}

// end is what we return when we run out of lines.
func (r *Reader) end() error {
	if err := r.sc.Err(); err != nil {
		return fmt.Errorf("reading fastq after line %d: %w", r.n, err)
	}
	return io.EOF
}

// Read returns the next record. At the end of input it returns io.EOF.
// If the error matches ErrMalformed, the record has been consumed and
// Read may be called again.
func (r *Reader) Read() (Record, error) {
	var rec Record
	hdr, ok := r.next()
	for ok && len(hdr) == 0 { // blank lines between records
		hdr, ok = r.next()
	}
	if !ok {
		return rec, r.end()
	}
	if hdr[0] != hdrChar {
		bad := &readError{n: r.n, inline: string(hdr), desc: "expected header starting with '@'"}
		for ok && (len(hdr) == 0 || hdr[0] != hdrChar) {
			hdr, ok = r.next()
		}
		if ok { // Keep the header for the next call
			r.pushed = append(r.pushed[:0], hdr...)
			r.havePush = true
		}
		return rec, bad
	}
	hdrLine := r.n
	rec.ID, rec.Desc = splitHeader(hdr[1:])

	var seq, qual []byte
	sepOK, sepTxt := false, ""
	if seq, ok = r.next(); ok {
		seq = bytes.Clone(seq)
		var sep []byte
		if sep, ok = r.next(); ok {
			sepOK = len(sep) > 0 && sep[0] == sepChar
			sepTxt = string(sep)
			qual, ok = r.next()
		}
	}
	if r.sc.Err() != nil { // a short record is no surprise after a read error
		return Record{}, r.end()
	}
	if !ok {
		return Record{}, &readError{n: hdrLine, inline: "@" + rec.Header(), desc: "truncated record " + rec.ID}
	}
	if !sepOK {
		return Record{}, &readError{n: hdrLine + 2, inline: sepTxt, desc: "expected separator starting with '+'"}
	}
	if len(qual) != len(seq) {
		const msg = "record %s has %d bases but %d quality values"
		return Record{}, &readError{n: r.n, inline: string(qual), desc: fmt.Sprintf(msg, rec.ID, len(seq), len(qual))}
	}
	rec.Seq = seq
	rec.Qual = bytes.Clone(qual)
	return rec, nil
}

// splitHeader breaks a header at the first space or tab into an
// identifier and description.
func splitHeader(h []byte) (id, desc string) {
	if i := bytes.IndexAny(h, " \t"); i >= 0 {
		return string(h[:i]), string(h[i+1:])
	}
	return string(h), ""
}

// Writer encodes records. It does no buffering of its own, so give it
// something buffered.
type Writer struct {
	w   io.Writer
	buf []byte
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Write writes one record in four lines.
func (w *Writer) Write(rec Record) error {
	b := w.buf[:0]
	b = append(b, hdrChar)
	b = append(b, rec.ID...)
	if rec.Desc != "" {
		b = append(b, ' ')
		b = append(b, rec.Desc...)
	}
	b = append(b, '\n')
	b = append(b, rec.Seq...)
	b = append(b, '\n', sepChar, '\n')
	b = append(b, rec.Qual...)
	b = append(b, '\n')
	w.buf = b
	_, err := w.w.Write(b)
	return err
}
