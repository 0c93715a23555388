// Package fn builds point-free pipelines over pair.Pair values.
//
// A Func[A, B] is a fallible one-argument function. PairOf turns two plain
// functions into a Func producing a Pair from a single input; the Map*/
// FlatMap/Fold adapters turn pair transformations into Funcs; Then chains
// Funcs left to right:
//
//	split, _ := fn.PairOf(head, tail)
//	upper, _ := fn.MapPairLeft[string, string](strings.ToUpper)
//	pipeline, _ := fn.Then(split, upper)
//	p, err := pipeline("hello") // Pair{left=H, right=ello}
//
// Every constructor in this package rejects a nil function immediately with
// an error matching pair.ErrInvalidArgument.
package fn
