// 19 Oct 2026

package mutfq

import (
	"path/filepath"
	"strconv"
	"strings"
)

// suffixes are checked in order and the first match wins. Paired end
// names come before the bare extensions, so "x_R1.fq" keeps its "_R1".
var suffixes = []string{
	"_R1.fastq", "_R1.fastq.gz",
	"_R1.fq", "_R1.fq.gz",
	"_R1.txt", "_R1.txt.gz",
	"_R2.fastq", "_R2.fastq.gz",
	"_R2.fq", "_R2.fq.gz",
	"_R2.txt", "_R2.txt.gz",
	".fastq", ".fastq.gz",
	".fq", ".fq.gz",
	".txt", ".txt.gz",

	"_R1.fastq.sz", "_R1.fq.sz", "_R1.txt.sz",
	"_R2.fastq.sz", "_R2.fq.sz", "_R2.txt.sz",
	".fastq.sz", ".fq.sz", ".txt.sz",
}

// FmtRatio gives the shortest decimal that reads back as ratio, so
// 0.1 is "0.1" and 1 is "1".
func FmtRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', -1, 64)
}

// OutName returns the base name for the mutated version of fname. We put
// "_ratio_xxx" in front of the suffix:
//
//	test_R1.fastq.gz -> test_ratio_0.1_R1.fastq.gz
//	test.fq          -> test_ratio_0.1.fq
//
// A name with no suffix we know about comes back unchanged.
func OutName(fname string, ratio float64) string {
	base := filepath.Base(fname)
	for _, sfx := range suffixes {
		if stem, ok := strings.CutSuffix(base, sfx); ok {
			return stem + "_ratio_" + FmtRatio(ratio) + sfx
		}
	}
	return base
}
