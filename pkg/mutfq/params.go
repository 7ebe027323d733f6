// 19 Oct 2026

package mutfq

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/mutfq/pkg/config"
	"github.com/andrew-torda/mutfq/pkg/mutate"
)

// Params are checked settings, ready for Run.
type Params struct {
	Fastq   []string // input files
	Ratio   float64
	Thread  int
	Pos     bool   // save mutated positions in the description
	Outpath string // exists and is a directory
	Strict  bool   // broken records are fatal for their file
	Report  bool
	Plot    bool
	DryRun  bool
	// Rand is shared by all workers, so it must be safe for concurrent
	// use if there is more than one. nil means the process-wide source.
	Rand mutate.Rand
}

// isFile is true for something that exists and is a regular file.
func isFile(fname string) bool {
	fi, err := os.Stat(fname)
	return err == nil && fi.Mode().IsRegular()
}

// isDir is true for a directory that exists.
func isDir(dname string) bool {
	fi, err := os.Stat(dname)
	return err == nil && fi.IsDir()
}

// Check validates a Config and turns it into Params. The output
// directory is created if it is missing.
func Check(c *config.Config) (*Params, error) {
	p := &Params{
		Ratio:   c.Ratio,
		Pos:     c.Pos,
		Strict:  c.Strict,
		Report:  c.Report,
		Plot:    c.Plot,
		DryRun:  c.DryRun,
		Thread:  c.Thread,
		Outpath: c.Outpath,
	}
	for _, f := range strings.Split(c.Fastq, ",") {
		if !isFile(f) {
			return nil, &FileNotExistError{File: f}
		}
		p.Fastq = append(p.Fastq, f)
	}
	switch {
	case !(c.Ratio > 0): // also catches NaN
		return nil, &ParamError{fmt.Sprintf("-r mutation ratio must > 0, not %v", c.Ratio)}
	case c.Ratio > 1:
		return nil, &ParamError{fmt.Sprintf("-r mutation ratio must <= 1, not %v", c.Ratio)}
	}
	if c.Thread < 1 {
		return nil, &ParamError{fmt.Sprintf("-t must > 0, not %d", c.Thread)}
	}
	if p.Outpath == "" {
		p.Outpath = config.DfltOutpath
	}
	if err := p.checkOutputs(); err != nil {
		return nil, err
	}
	if !isDir(p.Outpath) && !p.DryRun {
		if err := os.MkdirAll(p.Outpath, 0o755); err != nil {
			return nil, &CreateDirError{Dir: p.Outpath, Err: err}
		}
	}
	return p, nil
}

// sameFile is true if both names exist and are the same file.
func sameFile(a, b string) bool {
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	return err == nil && os.SameFile(fa, fb)
}

// checkOutputs makes sure no input is its own output and no two inputs
// share an output, since each output file has exactly one writer.
func (p *Params) checkOutputs() error {
	seen := make(map[string]string, len(p.Fastq))
	for _, f := range p.Fastq {
		out := p.OutPath(f)
		if sameFile(f, out) {
			return &ParamError{fmt.Sprintf("output for %s would overwrite the input", f)}
		}
		key := out
		if abs, err := filepath.Abs(out); err == nil {
			key = abs
		}
		if prev, ok := seen[key]; ok {
			return &ParamError{fmt.Sprintf("%s and %s both write to %s", prev, f, out)}
		}
		seen[key] = f
	}
	return nil
}
