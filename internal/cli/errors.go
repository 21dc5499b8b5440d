package cli

import "errors"

// Error codes for failures. Every failure aborts the run.
const (
	ErrConfigInvalid  = "CONFIG_INVALID"
	ErrInputInvalid   = "INPUT_INVALID"
	ErrOutputInvalid  = "OUTPUT_INVALID"
	ErrExportParse    = "EXPORT_PARSE_ERROR"
	ErrGraphBuild     = "GRAPH_BUILD_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"
)

// Path validation failures, wrapped with the offending path.
var (
	ErrInputNotFound      = errors.New("input file not found")
	ErrInputNotFile       = errors.New("input is not a regular file")
	ErrInputNotJSON       = errors.New("input file must be '.json'")
	ErrInputUnreadable    = errors.New("input file is not readable")
	ErrOutputHasExtension = errors.New("output must be a directory path without an extension")
	ErrOutputNotDir       = errors.New("output exists and is not a directory")
	ErrOutputNotEmpty     = errors.New("output directory must be empty")
)

// codedError attaches a stable code and optional suggestion to an error.
type codedError struct {
	code       string
	err        error
	suggestion string
}

func newError(code string, err error, suggestion string) error {
	return &codedError{code: code, err: err, suggestion: suggestion}
}

func (e *codedError) Error() string { return e.err.Error() }

func (e *codedError) Unwrap() error { return e.err }

// errorDetails returns the code and suggestion of a coded error, if any.
func errorDetails(err error) (code, suggestion string) {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code, ce.suggestion
	}
	return "", ""
}
