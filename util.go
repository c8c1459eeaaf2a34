package uint128

// RandSource is satisfied by *math/rand.Rand and *math/rand/v2.Rand.
type RandSource interface {
	Uint64() uint64
}

// Rand draws hi and then lo from source.
func Rand(source RandSource) (out Uint128) {
	return Uint128{hi: source.Uint64(), lo: source.Uint64()}
}

// Difference returns |a - b|.
func Difference(a, b Uint128) Uint128 {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func Larger(a, b Uint128) Uint128 {
	if a.LessThan(b) {
		return b
	}
	return a
}

func Smaller(a, b Uint128) Uint128 {
	if b.LessThan(a) {
		return b
	}
	return a
}
