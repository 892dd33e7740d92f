package types

import "errors"

// Error kinds for combine failures. Every error leaving the pipeline wraps
// exactly one of these so the CLI can map failures to exit codes with
// errors.Is.
var (
	// ErrFilesystem covers missing directories, unreadable inputs, and
	// other OS-level read failures.
	ErrFilesystem = errors.New("filesystem error")

	// ErrDecode covers corrupt or unsupported image and PDF content.
	ErrDecode = errors.New("decode error")

	// ErrWrite covers failures creating or writing the output document.
	ErrWrite = errors.New("write error")
)
