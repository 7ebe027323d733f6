// 29 Apr 2020

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Wildcard is the base which is never mutated and never counted.
const Wildcard byte = 'N'

// Nucleotides are the bases a sequence may contain, apart from
// the wildcard.
var Nucleotides = []byte{'A', 'T', 'G', 'C'}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
// The suffix lets callers pick names like "x_R1.fastq".
func WrtTemp(s, suffix string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing*"+suffix)
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	name := f_tmp.Name()
	if err := f_tmp.Close(); err != nil {
		return "", err
	}
	return name, nil
}
