package fn

import (
	"github.com/ib-77/pair/pkg/pair"
)

// Func is a one-argument function that may fail.
type Func[A, B any] func(A) (B, error)

// Lift adapts a function that cannot fail.
func Lift[A, B any](f func(A) B) (Func[A, B], error) {
	if f == nil {
		return nil, invalid("function")
	}
	return func(a A) (B, error) {
		return f(a), nil
	}, nil
}

// Then returns a Func that applies f and then g. g is not called when f
// fails.
func Then[A, B, C any](f Func[A, B], g Func[B, C]) (Func[A, C], error) {
	if f == nil {
		return nil, invalid("before")
	}
	if g == nil {
		return nil, invalid("after")
	}
	return func(a A) (C, error) {
		b, err := f(a)
		if err != nil {
			var zero C
			return zero, err
		}
		return g(b)
	}, nil
}

// PairOf returns a Func that applies lf and rf to the same input and pairs
// the results.
func PairOf[T, L, R any](lf func(T) L, rf func(T) R) (Func[T, pair.Pair[L, R]], error) {
	if lf == nil {
		return nil, invalid("leftCreator")
	}
	if rf == nil {
		return nil, invalid("rightCreator")
	}
	return func(t T) (pair.Pair[L, R], error) {
		return pair.Of(lf(t), rf(t))
	}, nil
}

func invalid(name string) error {
	return &pair.ArgumentError{Name: name}
}
