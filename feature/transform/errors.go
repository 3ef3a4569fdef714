package transform

import "fmt"

// DecodeError reports a source file that could not be read or decoded
// into a raster. It affects only the units sharing that source; the
// batch continues.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a transformed raster that could not be written
// out. Like DecodeError it is recovered per unit.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
