// 19 Oct 2026

package main

import (
	"fmt"
	"os"

	. "github.com/andrew-torda/mutfq/pkg/seq/common"
)

// Errors go to stdout as a single line, like the total time.
func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
