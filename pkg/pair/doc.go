// Package pair provides Pair[L, R], an immutable container holding exactly
// one left and one right value of independent types.
//
// Neither slot may be absent (see package absent): constructors reject nil
// pointers, maps, channels, funcs and interfaces with ErrInvalidArgument.
// Optional is the non-failing alternative for inputs that may be missing.
//
// Highlights:
// - Of/MustOf/FromEntry/Optional: construct a Pair
// - FromMap/FromSortedMap/ToMap: convert between Go maps and pairs
// - Left/Right/Unpack: read the components
// - Key/Value/SetValue: read-only key/value association view (Entry)
// - MapLeft/MapRight/Map/FlatMap: build a new Pair from the current one
// - Fold: collapse a Pair to a single value
// - Swap/And/Or: exchange slots, test both slots with predicates
//
// Pairs are values; every transformation returns a new Pair and the receiver
// is never modified, so pairs can be shared between goroutines freely.
// Function-valued pipelines over pairs live in package fn.
package pair
