/*
Package uint128 provides an unsigned 128-bit integer type, Uint128, that
behaves like a native fixed-width unsigned integer: arithmetic wraps modulo
2^128 and narrowing conversions truncate.

Uint128 is a value type; all operations return new values. The in-place forms
(AddAssign and friends, PreInc, PostInc, PreDec, PostDec and Take) mutate the
receiver for code that wants compound-assignment style.

Simple example:

	u1 := From64(math.MaxUint64)
	u2 := From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Uint128 can be created from a variety of sources:

	FromRaw(hi, lo uint64) Uint128
	From64(v uint64) Uint128
	From32(v uint32) Uint128
	From16(v uint16) Uint128
	From8(v uint8) Uint128
	FromBool(v bool) Uint128
	From[T Integer](v T) Uint128
	FromPair[H, L Integer](hi H, lo L) Uint128
	FromBigInt(v *big.Int) (out Uint128, accurate bool)

Native integers compose on either side of an operation. Methods with a 64
suffix take a native right-hand operand, and the generic package-level
functions take a native left-hand operand:

	u.Add64(3)              // u + 3
	uint128.Add(3, u)       // 3 + u
	uint128.Lsh(1, From(n)) // 1 << n

Division by zero panics with ErrDivisionByZero, as it would for a native
integer; DivMod reports it as an error instead.

Uint128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- encoding.TextMarshaler

*/
package uint128
