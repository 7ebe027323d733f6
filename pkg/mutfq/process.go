// 19 Oct 2026

package mutfq

import (
	"errors"
	"io"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/andrew-torda/mutfq/pkg/fastq"
	"github.com/andrew-torda/mutfq/pkg/mutate"
	"github.com/andrew-torda/mutfq/pkg/spectrum"
	"github.com/andrew-torda/mutfq/pkg/zwrap"
)

// Suffixes for the optional report files, added to the output name.
const (
	ReportSuffix = ".spectrum.tsv"
	PlotSuffix   = ".spectrum.png"
)

// ErrInPlace is returned when a file would be mutated into itself.
var ErrInPlace = errors.New("output is the same file as the input")

var printer = message.NewPrinter(language.English)

// OutPath is where the mutated version of fname goes.
func (p *Params) OutPath(fname string) string {
	return filepath.Join(p.Outpath, OutName(fname, p.Ratio))
}

// MutateFile reads every record in fname, mutates it and writes it to
// the output file. Broken records are skipped and counted, unless we
// are strict. Any other problem ends work on this file.
func MutateFile(fname string, p *Params) (spec *spectrum.Spectrum, err error) {
	start := time.Now()
	outname := p.OutPath(fname)
	spec = spectrum.New(filepath.Base(fname))

	if sameFile(fname, outname) { // writing would truncate a mapped input
		return nil, &FileError{Op: "create", File: outname, Err: ErrInPlace}
	}
	rdr, err := zwrap.Open(fname)
	if err != nil {
		return nil, &FileError{Op: "open", File: fname, Err: err}
	}
	defer rdr.Close()
	wrtr, err := zwrap.Create(outname)
	if err != nil {
		return nil, &FileError{Op: "create", File: outname, Err: err}
	}
	defer func() { // Close error only matters if all else went well
		if e := wrtr.Close(); e != nil && err == nil {
			err = &FileError{Op: "close", File: outname, Err: e}
		}
	}()

	fqr := fastq.NewReader(rdr)
	fqw := fastq.NewWriter(wrtr)
	for {
		rec, err := fqr.Read()
		if err == io.EOF {
			break
		}
		if errors.Is(err, fastq.ErrMalformed) && !p.Strict {
			log.WithField("file", fname).Debug("skipping: ", err)
			spec.Skip()
			continue
		}
		if err != nil {
			return spec, &FileError{Op: "read", File: fname, Err: err}
		}
		mut, err := mutate.Record(p.Rand, rec, p.Ratio, p.Pos)
		if err != nil {
			return spec, &FileError{Op: "mutate", File: fname, Err: err}
		}
		spec.Add(rec.Seq, mut.Seq)
		if err := fqw.Write(mut); err != nil {
			return spec, &FileError{Op: "write", File: outname, Err: err}
		}
	}

	if p.Report {
		if err := writeExtra(outname+ReportSuffix, spec.WriteTSV); err != nil {
			return spec, err
		}
	}
	if p.Plot {
		if err := writeExtra(outname+PlotSuffix, spec.Plot); err != nil {
			return spec, err
		}
	}
	log.WithFields(log.Fields{
		"file":    fname,
		"output":  outname,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info(printer.Sprintf("%d records, %d skipped, %d of %d bases mutated",
		spec.NRec, spec.NSkip, spec.NMut, spec.NBase))
	if spec.NSkip > 0 {
		log.WithField("file", fname).Warnf("%d malformed records skipped", spec.NSkip)
	}
	return spec, nil
}

// writeExtra creates fname and hands it to wrt.
func writeExtra(fname string, wrt func(io.Writer) error) error {
	fp, err := zwrap.Create(fname)
	if err != nil {
		return &FileError{Op: "create", File: fname, Err: err}
	}
	if err := wrt(fp); err != nil {
		fp.Close()
		return &FileError{Op: "write", File: fname, Err: err}
	}
	if err := fp.Close(); err != nil {
		return &FileError{Op: "close", File: fname, Err: err}
	}
	return nil
}
