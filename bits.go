package uint128

import (
	"math/bits"
)

func (u Uint128) And(v Uint128) (out Uint128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

// And64 masks u with a native value. The native operand has no high bits,
// so the upper limb of the result is always zero.
func (u Uint128) And64(v uint64) (out Uint128) {
	out.lo = u.lo & v
	return out
}

// AndNot returns u &^ v.
func (u Uint128) AndNot(v Uint128) (out Uint128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u Uint128) Or(v Uint128) (out Uint128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u Uint128) Or64(v uint64) (out Uint128) {
	out.hi = u.hi
	out.lo = u.lo | v
	return out
}

func (u Uint128) Xor(v Uint128) (out Uint128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

func (u Uint128) Xor64(v uint64) (out Uint128) {
	out.hi = u.hi
	out.lo = u.lo ^ v
	return out
}

func (u Uint128) Not() (out Uint128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

// Lsh returns u << n. Shifting by 128 or more clears every bit.
func (u Uint128) Lsh(n uint) (v Uint128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else { // n == 64
		v.hi = u.lo
	}
	return v
}

// Rsh returns u >> n. Shifting by 128 or more clears every bit.
func (u Uint128) Rsh(n uint) (v Uint128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else { // n == 64
		v.lo = u.hi
	}
	return v
}

// LshBy is Lsh with a 128-bit shift amount. Any amount with the upper limb
// set is >= 128 and shifts everything out.
func (u Uint128) LshBy(n Uint128) Uint128 {
	if n.hi != 0 || n.lo >= 128 {
		return zero
	}
	return u.Lsh(uint(n.lo))
}

// RshBy is Rsh with a 128-bit shift amount.
func (u Uint128) RshBy(n Uint128) Uint128 {
	if n.hi != 0 || n.lo >= 128 {
		return zero
	}
	return u.Rsh(uint(n.lo))
}

// BitLen returns the number of bits required to represent u, which is the
// 1-based position of the highest set bit. BitLen of zero is 0.
func (u Uint128) BitLen() int {
	if u.hi != 0 {
		return 64 + bits.Len64(u.hi)
	}
	return bits.Len64(u.lo)
}

// Bit returns the value of the i'th bit of u. Bits past 127 are 0.
func (u Uint128) Bit(i uint) uint {
	if i >= 128 {
		return 0
	} else if i >= 64 {
		return uint(u.hi>>(i-64)) & 1
	}
	return uint(u.lo>>i) & 1
}

func (u Uint128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u Uint128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}
