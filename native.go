package uint128

// Integer is any native Go integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// From widens a native integer to a Uint128. The upper limb is always zero;
// negative values are not sign-extended past bit 63, so From(-1) is
// FromRaw(0, math.MaxUint64), the same as uint64(-1).
func From[T Integer](v T) Uint128 {
	return Uint128{lo: uint64(v)}
}

// FromPair creates a Uint128 from an explicit pair of native limbs, converted
// to uint64 by the usual Go conversion rules.
func FromPair[H, L Integer](hi H, lo L) Uint128 {
	return Uint128{hi: uint64(hi), lo: uint64(lo)}
}

// Into truncates u to the native integer type T, keeping the low bits.
func Into[T Integer](u Uint128) T {
	return T(u.lo)
}

// Assign stores u into the native integer at dst, truncating, and returns
// dst. It is the native left-hand form of compound assignment:
//
//	uint128.Assign(&x, uint128.Add(x, u)) // x += u
func Assign[T Integer](dst *T, u Uint128) *T {
	*dst = T(u.lo)
	return dst
}

func Add[T Integer](lhs T, rhs Uint128) Uint128 { return rhs.Add64(uint64(lhs)) }
func Sub[T Integer](lhs T, rhs Uint128) Uint128 { return From(lhs).Sub(rhs) }
func Mul[T Integer](lhs T, rhs Uint128) Uint128 { return rhs.Mul64(uint64(lhs)) }

// Quo panics with ErrDivisionByZero if rhs is zero.
func Quo[T Integer](lhs T, rhs Uint128) Uint128 { return From(lhs).Quo(rhs) }

// Rem panics with ErrDivisionByZero if rhs is zero.
func Rem[T Integer](lhs T, rhs Uint128) Uint128 { return From(lhs).Rem(rhs) }

func And[T Integer](lhs T, rhs Uint128) Uint128 { return rhs.And64(uint64(lhs)) }
func Or[T Integer](lhs T, rhs Uint128) Uint128  { return rhs.Or64(uint64(lhs)) }
func Xor[T Integer](lhs T, rhs Uint128) Uint128 { return rhs.Xor64(uint64(lhs)) }

// Lsh promotes lhs to a Uint128 before shifting, so bits shifted past 64 are
// kept.
func Lsh[T Integer](lhs T, n Uint128) Uint128 { return From(lhs).LshBy(n) }
func Rsh[T Integer](lhs T, n Uint128) Uint128 { return From(lhs).RshBy(n) }

func Cmp[T Integer](lhs T, rhs Uint128) int               { return -rhs.Cmp64(uint64(lhs)) }
func Equal[T Integer](lhs T, rhs Uint128) bool            { return rhs.Equal64(uint64(lhs)) }
func NotEqual[T Integer](lhs T, rhs Uint128) bool         { return !rhs.Equal64(uint64(lhs)) }
func GreaterThan[T Integer](lhs T, rhs Uint128) bool      { return rhs.LessThan64(uint64(lhs)) }
func GreaterOrEqualTo[T Integer](lhs T, rhs Uint128) bool { return rhs.LessOrEqualTo64(uint64(lhs)) }
func LessThan[T Integer](lhs T, rhs Uint128) bool         { return rhs.GreaterThan64(uint64(lhs)) }
func LessOrEqualTo[T Integer](lhs T, rhs Uint128) bool    { return rhs.GreaterOrEqualTo64(uint64(lhs)) }
