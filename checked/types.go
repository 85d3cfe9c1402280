package checked

import (
	"os"
	"regexp"
	"strconv"

	"github.com/podsmith/pod-common/handles"
)

// Registered rule names.
const (
	TypeIndentation  = "Indentation"
	TypeHeadingLevel = "HeadingLevel"
	TypeTargetName   = "TargetName"
	TypeDir          = "Dir"
	TypeFile         = "File"
	TypeIO           = "IO"
	TypeReadIO       = "ReadIO"
	TypeWriteIO      = "WriteIO"
)

var (
	digitsPattern     = regexp.MustCompile(`^\d+$`)
	targetNamePattern = regexp.MustCompile(`^\w+$`)
)

// minIndentation is the smallest verbatim-block indentation the conversion
// engine can render.
const minIndentation = 2

// asInt normalizes the scalar duality of configuration values: options may
// arrive as a Go int or as a digits-only string, depending on the loader.
func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		if v >= 0 {
			return v, true
		}
	case string:
		if !digitsPattern.MatchString(v) {
			return 0, false
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}

		return n, true
	}

	return 0, false
}

func newIndentationType() *Type {
	return NewType(TypeIndentation, func(value any) bool {
		n, ok := asInt(value)

		return ok && n >= minIndentation
	}, "must be an integer >= 2")
}

func newHeadingLevelType() *Type {
	return NewType(TypeHeadingLevel, func(value any) bool {
		n, ok := asInt(value)

		return ok && n >= 1 && n <= 3
	}, "must be an integer between 1 and 3")
}

func newTargetNameType() *Type {
	return NewType(TypeTargetName, func(value any) bool {
		s, ok := value.(string)

		return ok && targetNamePattern.MatchString(s)
	}, "must be an alphanumeric string")
}

// newDirType builds the directory rule. The existence check lives in the
// predicate, not the coercion: coercing a string is pure, and the predicate
// re-validates the coerced handle against the filesystem.
func newDirType() *Type {
	rule := NewType(TypeDir, func(value any) bool {
		dir, ok := value.(handles.Dir)

		return ok && dir.Exists()
	}, "must be a directory")

	return rule.WithCoercions(Coercion{
		Matches: isString,
		Transform: func(value any) any {
			return handles.NewDir(value.(string))
		},
	})
}

// newFileType builds the file rule. Unlike Dir there is no existence check;
// the consuming tool may be about to create the file.
func newFileType() *Type {
	rule := NewType(TypeFile, func(value any) bool {
		_, ok := value.(handles.File)

		return ok
	}, "must be a file")

	return rule.WithCoercions(Coercion{
		Matches: isString,
		Transform: func(value any) any {
			return handles.NewFile(value.(string))
		},
	})
}

// newIOType builds the shared stream rule that ReadIO and WriteIO
// specialize. It admits any open stream handle regardless of mode.
func newIOType() *Type {
	return NewType(TypeIO, func(value any) bool {
		switch v := value.(type) {
		case *handles.Stream:
			return v.Open()
		case *handles.StringStream:
			return v.Open()
		default:
			return false
		}
	}, "must be an open stream or string-backed stream")
}

func newReadIOType(base *Type) *Type {
	return base.Named(TypeReadIO).WithCoercions(streamCoercions(handles.ModeRead)...)
}

func newWriteIOType(base *Type) *Type {
	return base.Named(TypeWriteIO).WithCoercions(streamCoercions(handles.ModeWrite)...)
}

// streamCoercions wraps the two raw shapes an I/O rule accepts: a numeric
// file descriptor and an already-open *os.File. Both wrap into a stream
// tagged with the rule's direction.
func streamCoercions(mode handles.Mode) []Coercion {
	return []Coercion{
		{
			Matches: isFD,
			Transform: func(value any) any {
				return handles.StreamFromFD(toFD(value), mode)
			},
		},
		{
			Matches: isOSFile,
			Transform: func(value any) any {
				return handles.NewStream(value.(*os.File), mode)
			},
		},
	}
}

func isString(value any) bool {
	_, ok := value.(string)

	return ok
}

func isFD(value any) bool {
	switch v := value.(type) {
	case int:
		return v >= 0
	case uintptr:
		return true
	default:
		return false
	}
}

func toFD(value any) uintptr {
	switch v := value.(type) {
	case int:
		return uintptr(v)
	case uintptr:
		return v
	default:
		panic("not a file descriptor")
	}
}

func isOSFile(value any) bool {
	_, ok := value.(*os.File)

	return ok
}
