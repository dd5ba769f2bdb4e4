package rw

import (
	"errors"
	"fmt"
)

// Load failure taxonomy. The host reacts differently per kind: a
// too-new file suggests upgrading, the 3.0 pre-release format has a
// dedicated converter, corruption is terminal.
var (
	// ErrFileOpen: the pack was not open when the load started.
	ErrFileOpen = errors.New("score pack is not open")
	// ErrFileTooNew: declared version exceeds what this build reads.
	ErrFileTooNew = errors.New("file was saved by a newer version")
	// ErrFileTooOld: declared version predates the oldest supported
	// legacy generation.
	ErrFileTooOld = errors.New("file format is too old")
	// ErrFileOld300Format: the 3.0 pre-release format, recognized but
	// deliberately unsupported.
	ErrFileOld300Format = errors.New("file uses the unsupported 3.0 pre-release format")
	// ErrFileCorrupted: the main document is structurally unreadable.
	ErrFileCorrupted = errors.New("file is corrupted")
	// ErrFileCriticallyCorrupted: the element reader flagged the stream
	// as unrecoverable; no partial score is usable.
	ErrFileCriticallyCorrupted = errors.New("file is critically corrupted")
	// ErrFileBadFormat: the score body failed to parse, but the stream
	// itself was not flagged unrecoverable.
	ErrFileBadFormat = errors.New("file has a bad format")
)

// OpenError reports the open-precondition failure with the pack's path.
type OpenError struct {
	Path string
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("score pack is not open: %s", e.Path)
}

func (e *OpenError) Unwrap() error { return ErrFileOpen }

// CorruptError carries the tokenizer's diagnostic for a structurally
// unreadable document.
type CorruptError struct {
	Diag string
}

func (e *CorruptError) Error() string {
	if e.Diag == "" {
		return ErrFileCorrupted.Error()
	}
	return fmt.Sprintf("file is corrupted: %s", e.Diag)
}

func (e *CorruptError) Unwrap() error { return ErrFileCorrupted }
