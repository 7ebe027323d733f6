// brokenio is a wrapper around an io.ReadCloser. It allows us to set
// rates of failed read operations, so we can see what happens when a
// compressed file or a disk lets us down halfway through a fastq file.
// Typical use: You get a file pointer or a reader from a compressed
// source. You write
// reader = brokenio.NewReader(reader, rnd) to wrap the old reader.
// Everything then functions as before, but with artificial errors.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is wrapped by every error we make up.
var ErrBroken = errors.New("brokenio: artificial failure")

// A BrknRdrClsr is modelled on the various Readers in the standard
// library, but with variables controlling the frequency of errors.
// These values are the fraction of time an error will take place,
// so a value of 0.05 means failure in 5% of the cases.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32 // Probability a read fails
	okBytes      int     // Bytes which always get through before failures start
	nCalled      int
	nByte        int
}

// NewReader returns a new Reader - a wrapper around the old one.
// Nothing fails until the probabilities are set.
func NewReader(rIn io.ReadCloser, rnd *rand.Rand) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn, rnd: rnd}
}

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a read failing.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetOkBytes lets the first n bytes through untouched.
func (r *BrknRdrClsr) SetOkBytes(n int) { r.okBytes = n }

// NByte is how many bytes we have passed on.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// Read wraps the original reader and sums up the amount of data that
// has gone through. Once okBytes have been seen, it fails with a
// probability given by probFail.
// On the first call, we might return zero data to simulate a zero length
// file which is a rather common occurrence.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.nByte >= r.okBytes && r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, fmt.Errorf("read %d after %d bytes: %w", r.nCalled, r.nByte, ErrBroken)
	}
	if room := r.okBytes - r.nByte; room > 0 && room < len(p) && r.probFail > 0 {
		p = p[:room] // stop exactly where failures may begin
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error { return r.rdrOrig.Close() }
