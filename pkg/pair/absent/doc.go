// Package absent reports whether a generic value is missing.
//
// Go has no null, but several kinds can hold nil: pointers, maps, channels,
// funcs, interfaces and unsafe pointers. A value of one of those kinds that
// is nil, or an untyped nil interface, is absent. Slices are not treated as
// absent, a nil slice is a usable empty slice.
package absent
