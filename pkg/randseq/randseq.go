// 31 July 2020

// Package randseq makes random reads for testing. Sequences are
// plain byte slices. Records can be written as fastq text.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/andrew-torda/mutfq/pkg/fastq"
	. "github.com/andrew-torda/mutfq/pkg/seq/common"
)

// Quality symbols from '!' to 'J', as in Illumina 1.8.
const (
	qualLo = '!'
	qualHi = 'J'
)

// Nucl returns a random sequence of length n. Each position is the
// wildcard with probability nFrac, otherwise one of A, T, G, C.
func Nucl(rnd *rand.Rand, n int, nFrac float32) []byte {
	s := make([]byte, n)
	for i := range s {
		if nFrac > 0 && rnd.Float32() < nFrac {
			s[i] = Wildcard
		} else {
			s[i] = Nucleotides[rnd.Intn(len(Nucleotides))]
		}
	}
	return s
}

// Qual returns n random quality symbols.
func Qual(rnd *rand.Rand, n int) []byte {
	q := make([]byte, n)
	for i := range q {
		q[i] = byte(qualLo + rnd.Intn(qualHi-qualLo+1))
	}
	return q
}

// FqArgs is the set of arguments passed to FqMain
type FqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Description for the reads, may be empty
	Nseq  int       // number of reads
	Len   int       // Length of reads
	NFrac float32   // fraction of wildcards
}

// Record makes read number i.
func Record(rnd *rand.Rand, i int, args *FqArgs) fastq.Record {
	return fastq.Record{
		ID:   fmt.Sprintf("read%d", i),
		Desc: args.Cmmt,
		Seq:  Nucl(rnd, args.Len, args.NFrac),
		Qual: Qual(rnd, args.Len),
	}
}

// writeRec takes records from the channel and writes them out.
// The first error is kept and the rest of the records are drained.
func writeRec(rChan <-chan fastq.Record, w *fastq.Writer, err *error, wg *sync.WaitGroup) {
	defer wg.Done()
	for r := range rChan {
		if *err == nil {
			*err = w.Write(r)
		}
	}
}

// FqMain writes random reads in fastq format to args.Wrtr.
func FqMain(args *FqArgs) error {
	var wg sync.WaitGroup
	var err error
	rnd := rand.New(rand.NewSource(args.Iseed))
	rChan := make(chan fastq.Record)
	wg.Add(1)
	go writeRec(rChan, fastq.NewWriter(args.Wrtr), &err, &wg)
	for i := 0; i < args.Nseq; i++ {
		rChan <- Record(rnd, i, args)
	}
	close(rChan)
	wg.Wait()
	return err
}
