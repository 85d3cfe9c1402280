// Package opttypes provides the canonical Go value types for the conversion
// tool's scalar configuration options. Each type parses through its checked
// rule and unmarshals from YAML the same way, so configuration loaders get
// validated values without re-implementing the rules.
package opttypes

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/podsmith/pod-common/checked"
	"github.com/podsmith/pod-common/errs"
)

// Indentation is the number of spaces used to indent verbatim blocks in the
// generated README. Always at least 2.
type Indentation int

// ParseIndentation validates a raw indentation value (int or digits-only
// string) and returns the canonical value.
func ParseIndentation(value any) (Indentation, error) {
	canonical, err := checked.MustGet(checked.TypeIndentation).Check(value)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return Indentation(scalarToInt(canonical)), nil
}

// Int returns the indentation as a plain int.
func (i Indentation) Int() int {
	return int(i)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Indentation) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseIndentation(node.Value)
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}

// HeadingLevel is the markdown heading level (1 to 3) used for top-level
// sections of the generated README.
type HeadingLevel int

// ParseHeadingLevel validates a raw heading level value (int or digits-only
// string) and returns the canonical value.
func ParseHeadingLevel(value any) (HeadingLevel, error) {
	canonical, err := checked.MustGet(checked.TypeHeadingLevel).Check(value)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return HeadingLevel(scalarToInt(canonical)), nil
}

// Int returns the heading level as a plain int.
func (h HeadingLevel) Int() int {
	return int(h)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *HeadingLevel) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseHeadingLevel(node.Value)
	if err != nil {
		return err
	}

	*h = parsed

	return nil
}

// TargetName names an output format of the conversion tool (e.g. "readme").
// Word characters only.
type TargetName string

// ParseTargetName validates a raw target name and returns the canonical
// value.
func ParseTargetName(value any) (TargetName, error) {
	canonical, err := checked.MustGet(checked.TypeTargetName).Check(value)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return TargetName(canonical.(string)), nil
}

// String returns the target name as a plain string.
func (t TargetName) String() string {
	return string(t)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TargetName) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseTargetName(node.Value)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Options is the scalar option set the conversion tool reads from its
// configuration document.
type Options struct {
	Indentation  Indentation  `yaml:"indentation"`
	HeadingLevel HeadingLevel `yaml:"heading_level"`
	TargetName   TargetName   `yaml:"target"`
}

// Validate re-checks every field against its rule and reports all failures
// at once. Useful for option sets built in code rather than unmarshaled
// from YAML.
func (o Options) Validate() error {
	var failures errs.Failures

	_, err := checked.MustGet(checked.TypeIndentation).Check(o.Indentation.Int())
	failures.Field("indentation", err)

	_, err = checked.MustGet(checked.TypeHeadingLevel).Check(o.HeadingLevel.Int())
	failures.Field("heading_level", err)

	_, err = checked.MustGet(checked.TypeTargetName).Check(o.TargetName.String())
	failures.Field("target", err)

	return failures.GetError()
}

// scalarToInt converts a value already accepted by a numeric rule to an
// int. Accepted values are either ints or digits-only strings.
func scalarToInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}

		return n
	default:
		panic("not a numeric scalar")
	}
}
