package test

import "math/rand"

// ScopedMapOp is a single operation in a randomly generated trace against
// a ScopedMap and a reference model, used to property-test the two
// implementations against each other.
type ScopedMapOp struct {
	Kind  string // "insert", "insert_global", "begin", "end"
	Key   int
	Value int
}

// GenerateScopedMapTrace returns a random sequence of n operations over
// keys in [0, keySpace), biased to keep scopes mostly balanced so that
// most generated traces exercise at least one EndScope.
func GenerateScopedMapTrace(n, keySpace int) []ScopedMapOp {
	ops := make([]ScopedMapOp, 0, n)
	depth := 0

	for i := 0; i < n; i++ {
		switch {
		case depth > 0 && rand.Intn(4) == 0:
			ops = append(ops, ScopedMapOp{Kind: "end"})
			depth--
		case rand.Intn(5) == 0:
			ops = append(ops, ScopedMapOp{Kind: "begin"})
			depth++
		case rand.Intn(6) == 0:
			ops = append(ops, ScopedMapOp{
				Kind:  "insert_global",
				Key:   rand.Intn(keySpace),
				Value: rand.Int(),
			})
		default:
			ops = append(ops, ScopedMapOp{
				Kind:  "insert",
				Key:   rand.Intn(keySpace),
				Value: rand.Int(),
			})
		}
	}

	for ; depth > 0; depth-- {
		ops = append(ops, ScopedMapOp{Kind: "end"})
	}

	return ops
}
