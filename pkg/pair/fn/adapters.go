package fn

import (
	"github.com/ib-77/pair/pkg/pair"
)

// MapPairLeft returns pair.MapLeft with f bound.
func MapPairLeft[L, R, L2 any](f func(L) L2) (Func[pair.Pair[L, R], pair.Pair[L2, R]], error) {
	if f == nil {
		return nil, invalid("mapper")
	}
	return func(p pair.Pair[L, R]) (pair.Pair[L2, R], error) {
		return pair.MapLeft(p, f)
	}, nil
}

// MapPairRight returns pair.MapRight with f bound.
func MapPairRight[L, R, R2 any](f func(R) R2) (Func[pair.Pair[L, R], pair.Pair[L, R2]], error) {
	if f == nil {
		return nil, invalid("mapper")
	}
	return func(p pair.Pair[L, R]) (pair.Pair[L, R2], error) {
		return pair.MapRight(p, f)
	}, nil
}

// MapPair returns pair.Map with lf and rf bound.
func MapPair[L, R, L2, R2 any](lf func(L) L2, rf func(R) R2) (Func[pair.Pair[L, R], pair.Pair[L2, R2]], error) {
	if lf == nil {
		return nil, invalid("leftMapper")
	}
	if rf == nil {
		return nil, invalid("rightMapper")
	}
	return func(p pair.Pair[L, R]) (pair.Pair[L2, R2], error) {
		return pair.Map(p, lf, rf)
	}, nil
}

// FlatMapPair returns pair.FlatMap with f bound.
func FlatMapPair[L, R, L2, R2 any](f func(L, R) (pair.Pair[L2, R2], error)) (Func[pair.Pair[L, R], pair.Pair[L2, R2]], error) {
	if f == nil {
		return nil, invalid("mapper")
	}
	return func(p pair.Pair[L, R]) (pair.Pair[L2, R2], error) {
		return pair.FlatMap(p, f)
	}, nil
}

// FoldPair returns pair.Fold with f bound.
func FoldPair[L, R, T any](f func(L, R) T) (Func[pair.Pair[L, R], T], error) {
	if f == nil {
		return nil, invalid("foldFunction")
	}
	return func(p pair.Pair[L, R]) (T, error) {
		return pair.Fold(p, f)
	}, nil
}

// SwapPair returns a Func calling Swap.
func SwapPair[L, R any]() Func[pair.Pair[L, R], pair.Pair[R, L]] {
	return func(p pair.Pair[L, R]) (pair.Pair[R, L], error) {
		return p.Swap(), nil
	}
}
