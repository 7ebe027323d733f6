// 19 Oct 2026

// Package mutfq mutates batches of fastq files. The file list is split
// into contiguous ranges, one per worker, and each worker goes through
// its files one after the other.
package mutfq

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/mutfq/pkg/split"
)

// mutateGroup does the files in one range, stopping at the first
// failure.
func mutateGroup(files []string, p *Params) error {
	for _, f := range files {
		if _, err := MutateFile(f, p); err != nil {
			return err
		}
	}
	return nil
}

// Run mutates all the files in p and then prints the total time to
// stdout. Workers do not stop each other. If any of them failed, the
// first error is returned once they have all finished.
func Run(p *Params, stdout io.Writer) error {
	startTime := time.Now()
	ranges, err := split.Ranges(p.Thread, len(p.Fastq))
	if err != nil {
		return &ParamError{err.Error()}
	}
	if p.DryRun {
		for i, r := range ranges {
			for _, f := range p.Fastq[r.Start:r.End] {
				log.WithFields(log.Fields{"worker": i, "range": r}).Info(f, " -> ", p.OutPath(f))
			}
		}
		return nil
	}

	var g errgroup.Group
	for i, r := range ranges {
		files := p.Fastq[r.Start:r.End]
		g.Go(func() error {
			log.WithFields(log.Fields{"worker": i, "range": r}).Debug("starting")
			return mutateGroup(files, p)
		})
	}
	err = g.Wait()
	fmt.Fprintln(stdout, FmtElapsed("[Total time]", time.Since(startTime)))
	return err
}
