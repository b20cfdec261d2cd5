package errors

import (
	"fmt"
)

// PathNotAllowedError indicates a path outside the configured allowed roots,
// including paths that escape an allowed root through a symlink.
type PathNotAllowedError struct {
	Path string
}

// Error is an implementation of the error interface.
func (p *PathNotAllowedError) Error() string {
	return fmt.Sprintf("path %q is outside the allowed roots", p.Path)
}

// Code returns the machine-readable code for this error.
func (p *PathNotAllowedError) Code() Code {
	return CodePathNotAllowed
}

// FileNotFoundError indicates a file that does not exist.
type FileNotFoundError struct {
	Path string
}

// Error is an implementation of the error interface.
func (f *FileNotFoundError) Error() string {
	return fmt.Sprintf("file %q not found", f.Path)
}

// Code returns the machine-readable code for this error.
func (f *FileNotFoundError) Code() Code {
	return CodeFileNotFound
}

// ReadWriteError wraps a low-level storage failure so that raw I/O errors
// never cross a component boundary unclassified.
type ReadWriteError struct {
	Op   string
	Path string
	Err  error
}

// Error is an implementation of the error interface.
func (r *ReadWriteError) Error() string {
	return fmt.Sprintf("%s %q: %v", r.Op, r.Path, r.Err)
}

// Unwrap exposes the underlying cause.
func (r *ReadWriteError) Unwrap() error {
	return r.Err
}

// Code returns the machine-readable code for this error.
func (r *ReadWriteError) Code() Code {
	return CodeReadWriteFailure
}
