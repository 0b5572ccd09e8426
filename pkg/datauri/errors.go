package datauri

import (
	"errors"
	"fmt"
)

// ErrTransportUnavailable means no HTTP transport is configured for URL
// builds. This is a deployment problem, not a per-call failure: the caller
// cannot recover by retrying.
var ErrTransportUnavailable = errors.New("datauri: http transport unavailable")

// TooLongDataError reports a strict-mode payload exceeding the ceiling of
// the chosen length mode.
type TooLongDataError struct {
	Length int
	Limit  int
	Mode   LengthMode
}

func (e *TooLongDataError) Error() string {
	return fmt.Sprintf("datauri: data is %d bytes, exceeds %s limit of %d", e.Length, e.Mode, e.Limit)
}

// FileNotFoundError reports a local path or remote URL that could not be
// resolved: missing file, unreachable host, or a non-200 response.
type FileNotFoundError struct {
	Resource string
	Err      error
}

func (e *FileNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("datauri: %s not found: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("datauri: %s not found", e.Resource)
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Err
}
