// 19 Oct 2026

// Package mutate makes random point substitutions in nucleotide
// sequences. There are no insertions or deletions and the wildcard N
// is never changed.
// Random numbers come from a Rand. Pass nil to use the process-wide
// source from math/rand, which is seeded differently on each run and
// is safe for concurrent use.
package mutate

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"

	"github.com/andrew-torda/mutfq/pkg/fastq"
	. "github.com/andrew-torda/mutfq/pkg/seq/common"
)

// Rand is what we need from a random number generator.
// *rand.Rand from math/rand satisfies it.
type Rand interface {
	Perm(n int) []int
	Intn(n int) int
}

// globalRand uses the top level math/rand functions.
type globalRand struct{}

func (globalRand) Perm(n int) []int { return rand.Perm(n) }
func (globalRand) Intn(n int) int   { return rand.Intn(n) }

// others['A'] holds the bases an A may turn into. A nil entry means
// the symbol is not a nucleotide we can mutate.
var others = [256][]byte{
	'A': {'T', 'G', 'C'},
	'T': {'A', 'G', 'C'},
	'G': {'A', 'T', 'C'},
	'C': {'A', 'T', 'G'},
}

// BadBaseError is returned for a symbol which is not A, T, G, C or N.
type BadBaseError struct {
	Base byte
	Pos  int // 1-based
}

func (e *BadBaseError) Error() string {
	return fmt.Sprintf("sequence must be A, T, G, C, N, not %q at position %d", e.Base, e.Pos)
}

// eps stops 0.29 * 100 from coming out as 28.999... and losing a base.
const eps = 1e-9

// NTarget is the number of mutations asked for by ratio in a
// sequence of length n. The product is truncated.
func NTarget(ratio float64, n int) int { return int(math.Floor(ratio*float64(n) + eps)) }

// check makes sure every symbol is one we know about.
func check(s []byte) error {
	for i, c := range s {
		if c != Wildcard && others[c] == nil {
			return &BadBaseError{Base: c, Pos: i + 1}
		}
	}
	return nil
}

// Seq returns a mutated copy of s. The sites are visited in random
// order and each base that is not N is changed to one of the other
// three, until NTarget(ratio, len(s)) changes have been made or we run
// out of sites. If savePos is set, the changed sites are returned,
// 1-based and sorted. s is not touched.
func Seq(rnd Rand, s []byte, ratio float64, savePos bool) (out []byte, pos []int, err error) {
	if err = check(s); err != nil {
		return nil, nil, err
	}
	if rnd == nil {
		rnd = globalRand{}
	}
	out = bytes.Clone(s)
	nMut := NTarget(ratio, len(out))
	if nMut == 0 {
		return out, nil, nil
	}
	n := 0
	for _, i := range rnd.Perm(len(out)) {
		c := out[i]
		if c == Wildcard { // not mutated, not counted
			continue
		}
		alt := others[c]
		out[i] = alt[rnd.Intn(len(alt))]
		n++
		if savePos {
			pos = append(pos, i+1)
		}
		if n == nMut {
			break
		}
	}
	sort.Ints(pos)
	return out, pos, nil
}

// FmtPos writes positions as [1, 3, 6].
func FmtPos(pos []int) string {
	b := make([]byte, 0, 2+len(pos)*6)
	b = append(b, '[')
	for i, p := range pos {
		if i > 0 {
			b = append(b, ',', ' ')
		}
		b = strconv.AppendInt(b, int64(p), 10)
	}
	b = append(b, ']')
	return string(b)
}

// Record returns a new record with a mutated sequence. The identifier
// and qualities are kept. If savePos is set, the mutated positions are
// appended to the description.
func Record(rnd Rand, rec fastq.Record, ratio float64, savePos bool) (fastq.Record, error) {
	seq, pos, err := Seq(rnd, rec.Seq, ratio, savePos)
	if err != nil {
		return fastq.Record{}, fmt.Errorf("read %s: %w", rec.ID, err)
	}
	out := fastq.Record{ID: rec.ID, Desc: rec.Desc, Seq: seq, Qual: rec.Qual}
	if savePos {
		if out.Desc == "" {
			out.Desc = FmtPos(pos)
		} else {
			out.Desc = out.Desc + " " + FmtPos(pos)
		}
	}
	return out, nil
}
