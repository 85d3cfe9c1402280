// Package checked provides the named validation rules used by the
// POD-to-README conversion toolchain to vet configuration values before use.
// Each rule bundles a membership predicate, a human-readable rejection
// message, and an ordered list of coercions that convert recognized raw
// shapes (path strings, file descriptors, OS files) into canonical handles.
package checked
