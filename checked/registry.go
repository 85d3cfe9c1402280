package checked

import (
	"fmt"
	"sync"

	"facette.io/natsort"

	"github.com/podsmith/pod-common/errs"
)

// registry builds the name-to-rule mapping exactly once and is read-only
// afterwards, so concurrent Get calls need no locking.
var registry = sync.OnceValue(func() map[string]*Type { //nolint:gochecknoglobals
	ioBase := newIOType()

	rules := []*Type{
		newIndentationType(),
		newHeadingLevelType(),
		newTargetNameType(),
		newDirType(),
		newFileType(),
		ioBase,
		newReadIOType(ioBase),
		newWriteIOType(ioBase),
	}

	byName := make(map[string]*Type, len(rules))
	for _, rule := range rules {
		byName[rule.Name()] = rule
	}

	return byName
})

// Get returns the rule registered under the given name, building the
// registry on first use. Repeated calls return the same rule value.
func Get(name string) (*Type, error) {
	rule, ok := registry()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownType, name)
	}

	return rule, nil
}

// MustGet returns the rule registered under the given name and panics if it
// does not exist. Intended for the fixed rule names declared in this
// package, where a miss is a programming error.
func MustGet(name string) *Type {
	rule, err := Get(name)
	if err != nil {
		panic(err)
	}

	return rule
}

// Names returns the registered rule names in natural sort order.
func Names() []string {
	names := make([]string, 0, len(registry()))
	for name := range registry() {
		names = append(names, name)
	}

	natsort.Sort(names)

	return names
}
