// 19 Oct 2026

package mutfq

import "fmt"

// ParamError is a bad option value.
type ParamError struct {
	Para string
}

func (e *ParamError) Error() string { return "parameter error: " + e.Para }

// FileNotExistError is an input that is missing or not a regular file.
type FileNotExistError struct {
	File string
}

func (e *FileNotExistError) Error() string {
	return fmt.Sprintf("file %q does not exist or is not a regular file", e.File)
}

// CreateDirError is an output directory we could not make.
type CreateDirError struct {
	Dir string
	Err error
}

func (e *CreateDirError) Error() string {
	return fmt.Sprintf("creating directory %q: %v", e.Dir, e.Err)
}

func (e *CreateDirError) Unwrap() error { return e.Err }

// FileError is a failure while working on one file. Op says what we
// were doing: "open", "create", "read", "write", "mutate" or "close".
type FileError struct {
	Op   string
	File string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.File, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
