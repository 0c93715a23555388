package pair

// MapLeft returns a Pair with f applied to the left component.
func MapLeft[L, R, L2 any](p Pair[L, R], f func(L) L2) (Pair[L2, R], error) {
	if f == nil {
		return Pair[L2, R]{}, invalid("mapper")
	}
	return Of(f(p.left), p.right)
}

// MapRight returns a Pair with f applied to the right component.
func MapRight[L, R, R2 any](p Pair[L, R], f func(R) R2) (Pair[L, R2], error) {
	if f == nil {
		return Pair[L, R2]{}, invalid("mapper")
	}
	return Of(p.left, f(p.right))
}

// Map applies lf to the left and rf to the right component. lf runs first.
func Map[L, R, L2, R2 any](p Pair[L, R], lf func(L) L2, rf func(R) R2) (Pair[L2, R2], error) {
	if lf == nil {
		return Pair[L2, R2]{}, invalid("leftMapper")
	}
	if rf == nil {
		return Pair[L2, R2]{}, invalid("rightMapper")
	}
	return Of(lf(p.left), rf(p.right))
}

// FlatMap replaces p with the Pair f builds from both components. An error
// from f is returned as is; a Pair with an absent component is rejected like
// Of would.
func FlatMap[L, R, L2, R2 any](p Pair[L, R], f func(L, R) (Pair[L2, R2], error)) (Pair[L2, R2], error) {
	if f == nil {
		return Pair[L2, R2]{}, invalid("mapper")
	}
	q, err := f(p.left, p.right)
	if err != nil {
		return Pair[L2, R2]{}, err
	}
	return Of(q.left, q.right)
}

// Fold collapses p into a single value.
func Fold[L, R, T any](p Pair[L, R], f func(L, R) T) (T, error) {
	if f == nil {
		var zero T
		return zero, invalid("foldFunction")
	}
	return f(p.left, p.right), nil
}

// Swap returns a Pair with left and right exchanged.
func (p Pair[L, R]) Swap() Pair[R, L] {
	return Pair[R, L]{left: p.right, right: p.left}
}

// And reports whether lp holds for the left and rp for the right component.
// rp is not called if lp is false.
func (p Pair[L, R]) And(lp func(L) bool, rp func(R) bool) (bool, error) {
	if err := checkPredicates(lp, rp); err != nil {
		return false, err
	}
	return lp(p.left) && rp(p.right), nil
}

// Or reports whether lp holds for the left or rp for the right component.
// rp is not called if lp is true.
func (p Pair[L, R]) Or(lp func(L) bool, rp func(R) bool) (bool, error) {
	if err := checkPredicates(lp, rp); err != nil {
		return false, err
	}
	return lp(p.left) || rp(p.right), nil
}

func checkPredicates[L, R any](lp func(L) bool, rp func(R) bool) error {
	if lp == nil {
		return invalid("leftPredicate")
	}
	if rp == nil {
		return invalid("rightPredicate")
	}
	return nil
}
