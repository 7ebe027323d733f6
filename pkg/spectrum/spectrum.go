// 19 Oct 2026

// Package spectrum keeps statistics on what was mutated in a file.
// It compares original and mutated sequences, so it does not care
// whether positions were saved in the headers.
package spectrum

import (
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"
	. "github.com/andrew-torda/mutfq/pkg/seq/common"
)

// Bases are the rows and columns of the substitution table, in order.
const Bases = "ACGT"

const nBase = len(Bases)

// baseNdx maps a base to its row in the substitution table. -1 for
// anything else.
var baseNdx = func() (ndx [256]int8) {
	for i := range ndx {
		ndx[i] = -1
	}
	for i := 0; i < nBase; i++ {
		ndx[Bases[i]] = int8(i)
	}
	return
}()

// Spectrum holds the counts for one file.
type Spectrum struct {
	Name  string
	NRec  int // records mutated and written
	NSkip int // malformed records skipped
	NBase int // bases seen
	NWild int // wildcard bases seen
	NMut  int // bases changed
	// Subst.Mat[from][to] counts substitutions, indexed as in Bases.
	Subst *matrix.FMatrix2d
	// ByPos[i] is the number of mutations at 1-based position i+1.
	ByPos []int
}

// New returns an empty spectrum for the file called name.
func New(name string) *Spectrum {
	return &Spectrum{Name: name, Subst: matrix.NewFMatrix2d(nBase, nBase)}
}

// Skip counts a record which could not be read.
func (s *Spectrum) Skip() { s.NSkip++ }

// Add counts one record. orig and mutated must be the same length.
func (s *Spectrum) Add(orig, mutated []byte) {
	s.NRec++
	s.NBase += len(orig)
	if len(s.ByPos) < len(orig) {
		s.ByPos = append(s.ByPos, make([]int, len(orig)-len(s.ByPos))...)
	}
	for i, c := range orig {
		if c == Wildcard {
			s.NWild++
			continue
		}
		d := mutated[i]
		if c == d {
			continue
		}
		s.NMut++
		s.ByPos[i]++
		if from, to := baseNdx[c], baseNdx[d]; from >= 0 && to >= 0 {
			s.Subst.Mat[from][to]++
		}
	}
}

// MaxPos returns the highest count in ByPos.
func (s *Spectrum) MaxPos() (mx int) {
	for _, n := range s.ByPos {
		if n > mx {
			mx = n
		}
	}
	return
}

// tsvWriter keeps the first error, so WriteTSV need only look once.
type tsvWriter struct {
	w   io.Writer
	err error
}

func (tw *tsvWriter) printf(format string, a ...any) {
	if tw.err == nil {
		_, tw.err = fmt.Fprintf(tw.w, format, a...)
	}
}

// WriteTSV writes the counts, the substitution table and the
// per-position counts as tab separated text.
func (s *Spectrum) WriteTSV(w io.Writer) error {
	tw := &tsvWriter{w: w}
	tw.printf("# file\t%s\n", s.Name)
	tw.printf("# records\t%d\n# skipped\t%d\n", s.NRec, s.NSkip)
	tw.printf("# bases\t%d\n# wildcard\t%d\n# mutated\t%d\n", s.NBase, s.NWild, s.NMut)
	tw.printf("from\\to")
	for i := 0; i < nBase; i++ {
		tw.printf("\t%c", Bases[i])
	}
	tw.printf("\n")
	nrow, ncol := s.Subst.Size()
	for irow := 0; irow < nrow; irow++ {
		tw.printf("%c", Bases[irow])
		for icol := 0; icol < ncol; icol++ {
			tw.printf("\t%.0f", s.Subst.Mat[irow][icol])
		}
		tw.printf("\n")
	}
	tw.printf("position\tmutations\n")
	for i, n := range s.ByPos {
		tw.printf("%d\t%d\n", i+1, n)
	}
	return tw.err
}
