package load

import "fmt"

// ParseError reports input that could not be decoded into a tree.
type ParseError struct {
	Path string // source file, empty for in-memory input
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
