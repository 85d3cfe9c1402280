// Package handles provides the open-resource handle types consumed by the
// checked validation rules: directory and file path handles, and read/write
// stream handles backed by a file descriptor or an in-memory buffer.
//
// A handle is distinct from the raw value it was built from. A path string
// becomes a Dir or File, a file descriptor becomes a Stream. The checked
// rules coerce raw values into handles and hand the canonical handle back
// to the caller.
package handles

import (
	"fmt"
	"os"
)

// Kind identifies the concrete handle variant. Predicates in the checked
// package match on Kind instead of reflecting on the underlying value.
type Kind int

const (
	// KindDir is a directory path handle.
	KindDir Kind = iota
	// KindFile is a file path handle.
	KindFile
	// KindStream is an open stream backed by an operating-system file.
	KindStream
	// KindStringStream is an open in-memory stream backed by a buffer.
	KindStringStream
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	case KindStream:
		return "stream"
	case KindStringStream:
		return "string-stream"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Handle is implemented by every handle variant.
type Handle interface {
	Kind() Kind
}

// Dir references a directory by path. Construction performs no filesystem
// access; existence is checked separately via Exists so that coercion from
// a raw string stays pure and the rule's predicate owns the stat call.
type Dir struct {
	path string
}

// NewDir creates a directory handle for the given path.
func NewDir(path string) Dir {
	return Dir{path: path}
}

// Kind returns KindDir.
func (d Dir) Kind() Kind {
	return KindDir
}

// Path returns the path the handle was built from.
func (d Dir) Path() string {
	return d.path
}

// Stat returns the file info for the handle's path.
func (d Dir) Stat() (os.FileInfo, error) {
	info, err := os.Stat(d.path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", d.path, err)
	}

	return info, nil
}

// Exists returns true if the path refers to an existing directory.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.path)

	return err == nil && info.IsDir()
}

// String returns a diagnostic representation of the handle.
func (d Dir) String() string {
	return "dir:" + d.path
}

// File references a file by path. It is a pure path wrapper: no existence
// check is performed at any point, the consuming tool may be about to
// create the file.
type File struct {
	path string
}

// NewFile creates a file handle for the given path.
func NewFile(path string) File {
	return File{path: path}
}

// Kind returns KindFile.
func (f File) Kind() Kind {
	return KindFile
}

// Path returns the path the handle was built from.
func (f File) Path() string {
	return f.path
}

// String returns a diagnostic representation of the handle.
func (f File) String() string {
	return "file:" + f.path
}
