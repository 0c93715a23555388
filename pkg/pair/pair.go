package pair

import (
	"fmt"
	"hash/maphash"
	"reflect"

	"github.com/ib-77/pair/pkg/pair/absent"
)

// Pair holds a left and a right value. Build it with Of, MustOf, FromEntry
// or Optional; the zero Pair is only reachable by declaration.
type Pair[L, R any] struct {
	left  L
	right R
}

// Entry is a key/value association.
type Entry[K, V any] interface {
	Key() K
	Value() V
}

// MutableEntry is an Entry whose value may be replaced.
type MutableEntry[K, V any] interface {
	Entry[K, V]
	SetValue(v V) (V, error)
}

var _ MutableEntry[string, int] = Pair[string, int]{}

// Of returns a Pair of left and right. It fails with ErrInvalidArgument if
// either value is absent.
func Of[L, R any](left L, right R) (Pair[L, R], error) {
	if absent.Is(left) {
		return Pair[L, R]{}, invalid("left")
	}
	if absent.Is(right) {
		return Pair[L, R]{}, invalid("right")
	}
	return Pair[L, R]{left: left, right: right}, nil
}

// MustOf is like Of but panics on an absent value.
func MustOf[L, R any](left L, right R) Pair[L, R] {
	return Must(Of(left, right))
}

// Must returns p or panics with err.
func Must[L, R any](p Pair[L, R], err error) Pair[L, R] {
	if err != nil {
		panic(err)
	}
	return p
}

// FromEntry returns a Pair with the entry's key on the left and its value on
// the right.
func FromEntry[K, V any](e Entry[K, V]) (Pair[K, V], error) {
	if absent.Is(e) {
		return Pair[K, V]{}, invalid("entry")
	}
	return Of(e.Key(), e.Value())
}

// Optional returns a Pair and true when both values are present, otherwise
// the zero Pair and false.
func Optional[L, R any](left L, right R) (Pair[L, R], bool) {
	p, err := Of(left, right)
	if err != nil {
		return Pair[L, R]{}, false
	}
	return p, true
}

func (p Pair[L, R]) Left() L {
	return p.left
}

func (p Pair[L, R]) Right() R {
	return p.right
}

// Unpack returns both components.
func (p Pair[L, R]) Unpack() (L, R) {
	return p.left, p.right
}

// Key returns the left component.
func (p Pair[L, R]) Key() L {
	return p.left
}

// Value returns the right component.
func (p Pair[L, R]) Value() R {
	return p.right
}

// SetValue always fails with ErrImmutable and returns the current value.
func (p Pair[L, R]) SetValue(R) (R, error) {
	return p.right, ErrImmutable
}

// IsZero reports whether p is the zero Pair, i.e. it was declared rather
// than constructed from non-zero values.
func (p Pair[L, R]) IsZero() bool {
	return reflect.ValueOf(&p).Elem().IsZero()
}

// Equal reports whether both components are deeply equal in the sense of
// reflect.DeepEqual: pointers compare by pointee, not identity, and non-nil
// funcs are never equal, not even to themselves. For comparable component
// types prefer ==.
func (p Pair[L, R]) Equal(other Pair[L, R]) bool {
	return reflect.DeepEqual(p.left, other.left) && reflect.DeepEqual(p.right, other.right)
}

func (p Pair[L, R]) String() string {
	return fmt.Sprintf("Pair{left=%v, right=%v}", p.left, p.right)
}

// Hash returns a hash of p consistent with ==: equal pairs hash equally
// under the same seed.
func Hash[L, R comparable](seed maphash.Seed, p Pair[L, R]) uint64 {
	return maphash.Comparable(seed, p)
}
