// Package zwrap opens input files, decompressing them if necessary,
// and creates output files that are compressed if their names say so.
// Inputs are memory mapped. Upon calling Close, the decompressor is
// closed, then the mapping, followed by the underlying file.
// gzip is recognised by a ".gz" suffix or by its magic number. Snappy
// framing is recognised only by a ".sz" suffix.
package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/golang/snappy"
)

const (
	GzSuffix = ".gz"
	SzSuffix = ".sz"
)

var gzMagic = []byte{0x1f, 0x8b}

// FpRdr is what we return from Open.
type FpRdr struct {
	fp   *os.File
	mm   mmap.MMap    // nil for an empty file
	zrdr *gzip.Reader // nil unless gzipped
	src  io.Reader
}

// Read makes sure we read from the decompressed stream and
// not the underlying bytes.
func (fr *FpRdr) Read(p []byte) (int, error) { return fr.src.Read(p) }

// Close closes the decompressor, the mapping and the file.
// The first error is returned, along with any others.
func (fr *FpRdr) Close() error {
	var errs []error
	if fr.zrdr != nil {
		errs = append(errs, fr.zrdr.Close())
	}
	if fr.mm != nil {
		errs = append(errs, fr.mm.Unmap())
	}
	errs = append(errs, fr.fp.Close())
	return errors.Join(errs...)
}

// isGzip looks at the first two bytes.
func isGzip(b []byte) bool { return bytes.HasPrefix(b, gzMagic) }

// Open maps fname and wraps it in a decompressor if necessary.
func Open(fname string) (*FpRdr, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	fr := &FpRdr{fp: fp}
	var data []byte
	if fi.Size() > 0 { // mapping zero bytes fails
		if fr.mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
			fp.Close()
			return nil, fmt.Errorf("mapping %s: %w", fname, err)
		}
		data = fr.mm
	}
	fr.src = bytes.NewReader(data)
	switch {
	case strings.HasSuffix(fname, SzSuffix):
		fr.src = snappy.NewReader(fr.src)
	case strings.HasSuffix(fname, GzSuffix) || isGzip(data):
		if fr.zrdr, err = gzip.NewReader(fr.src); err != nil {
			fr.Close()
			return nil, fmt.Errorf("gzip header in %s: %w", fname, err)
		}
		fr.src = fr.zrdr
	}
	return fr, nil
}

// FpWrtr is a buffered, possibly compressing writer on a file.
type FpWrtr struct {
	fp *os.File
	bw *bufio.Writer
	zw io.WriteCloser // nil when not compressing
}

func (fw *FpWrtr) Write(p []byte) (int, error) { return fw.bw.Write(p) }

// Close flushes the buffer, finishes the compressed stream and closes
// the file.
func (fw *FpWrtr) Close() error {
	errs := []error{fw.bw.Flush()}
	if fw.zw != nil {
		errs = append(errs, fw.zw.Close())
	}
	errs = append(errs, fw.fp.Close())
	return errors.Join(errs...)
}

// Create makes fname, truncating it if it exists. Names ending in
// ".gz" are gzipped at the default level, ".sz" gets snappy framing.
func Create(fname string) (*FpWrtr, error) {
	fp, err := os.Create(fname)
	if err != nil {
		return nil, err
	}
	fw := &FpWrtr{fp: fp}
	var w io.Writer = fp
	switch {
	case strings.HasSuffix(fname, GzSuffix):
		fw.zw = gzip.NewWriter(fp)
		w = fw.zw
	case strings.HasSuffix(fname, SzSuffix):
		fw.zw = snappy.NewBufferedWriter(fp)
		w = fw.zw
	}
	fw.bw = bufio.NewWriter(w)
	return fw, nil
}
