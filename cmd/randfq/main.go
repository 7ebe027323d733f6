// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andrew-torda/mutfq/pkg/randseq"
	. "github.com/andrew-torda/mutfq/pkg/seq/common"
	"github.com/andrew-torda/mutfq/pkg/zwrap"
)

// run does the work, so main is left with exit codes.
func run(cmdArgs []string, stdout, stderr io.Writer) int {
	f := flag.NewFlagSet("randfq", flag.ContinueOnError)
	f.SetOutput(stderr)
	const iseed int64 = 1637
	var args randseq.FqArgs

	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	f.StringVar(&args.Cmmt, "c", "", "description for every read")
	var nFrac float64
	f.Float64Var(&nFrac, "n", 0, "fraction of wildcard N bases")
	if err := f.Parse(cmdArgs); err != nil {
		return ExitUsageError
	}
	if f.NArg() != 3 {
		fmt.Fprintln(stderr, "Wrong number of args\nrandfq [..] file nseq length")
		f.Usage()
		return ExitUsageError
	}
	if nFrac < 0 || nFrac > 1 {
		fmt.Fprintln(stderr, "-n must be in 0..1, not", nFrac)
		return ExitUsageError
	}
	args.NFrac = float32(nFrac)

	const emsg = "Failed converting %s to positive integer\n"
	if nseq, err := strconv.ParseUint(f.Arg(1), 10, 32); err != nil {
		fmt.Fprintf(stderr, emsg, f.Arg(1))
		return ExitFailure
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Arg(2), 10, 32); err != nil {
		fmt.Fprintf(stderr, emsg, f.Arg(2))
		return ExitFailure
	} else {
		args.Len = int(nlen)
	}

	fname := f.Arg(0)
	var fw *zwrap.FpWrtr
	if fname == "-" || fname == "" {
		args.Wrtr = stdout
	} else {
		var err error
		if fw, err = zwrap.Create(fname); err != nil {
			fmt.Fprintln(stderr, "File for output:", err)
			return ExitFailure
		}
		args.Wrtr = fw
	}
	err := randseq.FqMain(&args)
	if fw != nil {
		if e := fw.Close(); err == nil {
			err = e
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
