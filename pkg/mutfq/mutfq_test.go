// 19 Oct 2026

package mutfq_test

import (
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/mutfq/pkg/config"
	"github.com/andrew-torda/mutfq/pkg/fastq"
	"github.com/andrew-torda/mutfq/pkg/mutate"
	. "github.com/andrew-torda/mutfq/pkg/mutfq"
	"github.com/andrew-torda/mutfq/pkg/randseq"
	. "github.com/andrew-torda/mutfq/pkg/seq/common"
	"github.com/andrew-torda/mutfq/pkg/zwrap"
)

const (
	nSeq   = 50
	seqLen = 100
)

// mkFastq writes random reads to dir/name, compressed if the name
// says so.
func mkFastq(t *testing.T, dir, name string, seed int64) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	w, err := zwrap.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	args := randseq.FqArgs{Iseed: seed, Wrtr: w, Cmmt: "1:N:0:ACGT", Nseq: nSeq, Len: seqLen, NFrac: 0.05}
	if err := randseq.FqMain(&args); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return fname
}

// readFastq returns all the records in a file.
func readFastq(t *testing.T, fname string) []fastq.Record {
	t.Helper()
	r, err := zwrap.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	var recs []fastq.Record
	fqr := fastq.NewReader(r)
	for {
		rec, err := fqr.Read()
		if err == io.EOF {
			return recs
		}
		if err != nil {
			t.Fatal(err)
		}
		recs = append(recs, rec)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	f1 := mkFastq(t, dir, "a_R1.fastq", 1)
	f2 := mkFastq(t, dir, "a_R2.fastq", 2)
	good := config.Config{Fastq: f1 + "," + f2, Ratio: 0.1, Thread: 4, Outpath: filepath.Join(dir, "new", "out")}
	p, err := Check(&good)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Fastq) != 2 || p.Fastq[1] != f2 {
		t.Fatal("file list", p.Fastq)
	}
	if fi, err := os.Stat(good.Outpath); err != nil || !fi.IsDir() {
		t.Fatal("output directory not made", err)
	}

	var paramErr *ParamError
	for _, c := range []config.Config{
		{Fastq: f1, Ratio: 0, Thread: 1},
		{Fastq: f1, Ratio: -0.5, Thread: 1},
		{Fastq: f1, Ratio: 1.01, Thread: 1},
		{Fastq: f1, Ratio: 0.5, Thread: 0},
	} {
		if _, err := Check(&c); !errors.As(err, &paramErr) {
			t.Errorf("%+v wanted ParamError, got %v", c, err)
		}
	}
	var notExist *FileNotExistError
	bad := config.Config{Fastq: f1 + "," + filepath.Join(dir, "nope.fq"), Ratio: 0.5, Thread: 1}
	if _, err := Check(&bad); !errors.As(err, &notExist) || !strings.Contains(err.Error(), "nope.fq") {
		t.Error("wanted FileNotExistError, got", err)
	}
	bad = config.Config{Fastq: dir, Ratio: 0.5, Thread: 1}
	if _, err := Check(&bad); !errors.As(err, &notExist) {
		t.Error("directory accepted as input file", err)
	}
	var dirErr *CreateDirError
	bad = config.Config{Fastq: f1, Ratio: 0.5, Thread: 1, Outpath: filepath.Join(f1, "sub")}
	if _, err := Check(&bad); !errors.As(err, &dirErr) {
		t.Error("wanted CreateDirError, got", err)
	}
}

// checkOutput compares input and output record by record.
func checkOutput(t *testing.T, in, out []fastq.Record, ratio float64, pos bool) {
	t.Helper()
	if len(in) != len(out) {
		t.Fatalf("%d records in, %d out", len(in), len(out))
	}
	for i, r := range in {
		o := out[i]
		if o.ID != r.ID || string(o.Qual) != string(r.Qual) {
			t.Fatalf("record %d identity lost %s %s", i, r.ID, o.ID)
		}
		var changed []int
		for j := range r.Seq {
			if r.Seq[j] != o.Seq[j] {
				changed = append(changed, j+1)
			}
		}
		nReal := len(r.Seq) - strings.Count(string(r.Seq), "N")
		if n := mutate.NTarget(ratio, len(r.Seq)); len(changed) != min(n, nReal) {
			t.Fatalf("record %d: %d changes wanted %d", i, len(changed), min(n, nReal))
		}
		wantDesc := r.Desc
		if pos {
			wantDesc += " " + mutate.FmtPos(changed)
		}
		if o.Desc != wantDesc {
			t.Fatalf("record %d desc %q want %q", i, o.Desc, wantDesc)
		}
	}
}

func TestMutateFile(t *testing.T) {
	for _, name := range []string{"s_R1.fastq", "s_R2.fq.gz", "s.txt.sz"} {
		for _, pos := range []bool{false, true} {
			dir := t.TempDir()
			fname := mkFastq(t, dir, name, 3)
			p := &Params{Ratio: 0.1, Pos: pos, Outpath: dir, Thread: 1, Rand: rand.New(rand.NewSource(1))}
			spec, err := MutateFile(fname, p)
			if err != nil {
				t.Fatal(err)
			}
			outname := filepath.Join(dir, OutName(name, 0.1))
			checkOutput(t, readFastq(t, fname), readFastq(t, outname), p.Ratio, pos)
			if spec.NRec != nSeq || spec.NSkip != 0 || spec.NBase != nSeq*seqLen {
				t.Fatalf("spectrum %+v", spec)
			}
		}
	}
}

const brokenFq = `@r1 first
ACGTACGTAC
+
IIIIIIIIII
@r2
ACGT
+
III
@r3
NNNNACGTAC
+
IIIIIIIIII
`

func TestSkip(t *testing.T) {
	fname, err := WrtTemp(brokenFq, ".fq")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	dir := t.TempDir()
	p := &Params{Ratio: 0.5, Outpath: dir, Thread: 1}
	spec, err := MutateFile(fname, p)
	if err != nil {
		t.Fatal(err)
	}
	if spec.NRec != 2 || spec.NSkip != 1 {
		t.Fatalf("wanted 2 records, 1 skipped, got %d %d", spec.NRec, spec.NSkip)
	}
	recs := readFastq(t, p.OutPath(fname))
	if len(recs) != 2 || recs[0].ID != "r1" || recs[1].ID != "r3" {
		t.Fatalf("wrong records out %+v", recs)
	}
	if !strings.HasPrefix(string(recs[1].Seq), "NNNN") {
		t.Fatal("wildcards changed", string(recs[1].Seq))
	}

	p.Strict = true
	_, err = MutateFile(fname, p)
	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "read" || !errors.Is(err, fastq.ErrMalformed) {
		t.Fatal("strict mode wanted malformed read error, got", err)
	}
}

func TestBadBaseFile(t *testing.T) {
	fname, err := WrtTemp("@r1\nACGTU\n+\nIIIII\n", ".fastq")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	_, err = MutateFile(fname, &Params{Ratio: 1, Outpath: t.TempDir(), Thread: 1})
	var bad *mutate.BadBaseError
	var fe *FileError
	if !errors.As(err, &bad) || !errors.As(err, &fe) || fe.Op != "mutate" {
		t.Fatal("wanted bad base error, got", err)
	}
	if strings.Contains(err.Error(), "\n") {
		t.Fatal("error message should be one line")
	}
}

func TestReportPlot(t *testing.T) {
	dir := t.TempDir()
	fname := mkFastq(t, dir, "rp.fastq", 4)
	p := &Params{Ratio: 0.2, Outpath: dir, Thread: 1, Report: true, Plot: true}
	if _, err := MutateFile(fname, p); err != nil {
		t.Fatal(err)
	}
	out := p.OutPath(fname)
	tsv, err := os.ReadFile(out + ReportSuffix)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(tsv), "# records\t50\n") || !strings.Contains(string(tsv), "# mutated\t1000\n") {
		t.Fatalf("report contents:\n%s", tsv)
	}
	if fi, err := os.Stat(out + PlotSuffix); err != nil || fi.Size() == 0 {
		t.Fatal("no plot", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	outdir := filepath.Join(dir, "out")
	var files []string
	for i, name := range []string{"a_R1.fastq", "a_R2.fastq", "b_R1.fq.gz", "b_R2.fq.gz", "c.txt"} {
		files = append(files, mkFastq(t, dir, name, int64(i)))
	}
	c := config.Config{Fastq: strings.Join(files, ","), Ratio: 0.3, Thread: 2, Pos: true, Outpath: outdir}
	p, err := Check(&c)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := Run(p, &sb); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(sb.String(), "[Total time]: ") {
		t.Fatal("no timing line, got", sb.String())
	}
	for _, f := range files {
		checkOutput(t, readFastq(t, f), readFastq(t, p.OutPath(f)), p.Ratio, true)
	}
}

// TestRunFailure removes one input after checking. The other workers
// must still finish and the error must come back.
func TestRunFailure(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i, name := range []string{"x.fq", "y.fq", "z.fq"} {
		files = append(files, mkFastq(t, dir, name, int64(i)))
	}
	c := config.Config{Fastq: strings.Join(files, ","), Ratio: 0.5, Thread: 3, Outpath: dir}
	p, err := Check(&c)
	if err != nil {
		t.Fatal(err)
	}
	os.Remove(files[1])
	err = Run(p, io.Discard)
	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "open" {
		t.Fatal("wanted open error, got", err)
	}
	for _, f := range []string{files[0], files[2]} {
		if recs := readFastq(t, p.OutPath(f)); len(recs) != nSeq {
			t.Fatalf("%s: %d records", f, len(recs))
		}
	}
}

func TestDryRun(t *testing.T) {
	dir := t.TempDir()
	fname := mkFastq(t, dir, "d.fastq", 9)
	outdir := filepath.Join(dir, "never")
	c := config.Config{Fastq: fname, Ratio: 0.5, Thread: 1, Outpath: outdir, DryRun: true}
	p, err := Check(&c)
	if err != nil {
		t.Fatal(err)
	}
	if err := Run(p, io.Discard); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(outdir); !os.IsNotExist(err) {
		t.Fatal("dry run made output directory")
	}
}

// TestInPlace has an input with no known suffix, so its output name
// is its own name. It must be refused, not truncated under our feet.
func TestInPlace(t *testing.T) {
	dir := t.TempDir()
	fname := mkFastq(t, dir, "reads", 5)
	before, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	c := config.Config{Fastq: fname, Ratio: 0.5, Thread: 1, Outpath: dir}
	var paramErr *ParamError
	if _, err := Check(&c); !errors.As(err, &paramErr) {
		t.Fatal("Check wanted ParamError, got", err)
	}
	_, err = MutateFile(fname, &Params{Ratio: 0.5, Outpath: dir, Thread: 1})
	if !errors.Is(err, ErrInPlace) {
		t.Fatal("MutateFile wanted ErrInPlace, got", err)
	}
	after, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatal("input changed")
	}

	c.Outpath = filepath.Join(dir, "other") // a different directory is fine
	if _, err := Check(&c); err != nil {
		t.Fatal(err)
	}
}

// TestSharedOutput has inputs which would end up in the same output
// file and be written by two workers at once.
func TestSharedOutput(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"a", "b"} {
		if err := os.Mkdir(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	fa := mkFastq(t, filepath.Join(dir, "a"), "x.fq", 1)
	fb := mkFastq(t, filepath.Join(dir, "b"), "x.fq", 2)
	fc := mkFastq(t, filepath.Join(dir, "b"), "y.fq", 3)
	out := filepath.Join(dir, "out")
	var paramErr *ParamError
	for _, files := range []string{fa + "," + fb, fc + "," + fc} {
		c := config.Config{Fastq: files, Ratio: 0.1, Thread: 2, Outpath: out}
		if _, err := Check(&c); !errors.As(err, &paramErr) {
			t.Errorf("%s wanted ParamError, got %v", files, err)
		}
	}
	c := config.Config{Fastq: fa + "," + fc, Ratio: 0.1, Thread: 2, Outpath: out}
	if _, err := Check(&c); err != nil {
		t.Fatal(err)
	}
}
