package uint128

import (
	"math/bits"
)

// Add returns u + n. The carry out of lo is added into hi and the carry out of
// hi is dropped.
func (u Uint128) Add(n Uint128) (v Uint128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u Uint128) Add64(n uint64) (v Uint128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n, 0)
	v.hi = u.hi + carry
	return v
}

// Sub returns u - n, borrowing from hi when lo underflows.
func (u Uint128) Sub(n Uint128) (v Uint128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u Uint128) Sub64(n uint64) (v Uint128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n, 0)
	v.hi = u.hi - borrow
	return v
}

func (u Uint128) Inc() Uint128 { return u.Add64(1) }
func (u Uint128) Dec() Uint128 { return u.Sub64(1) }

// Neg returns the two's complement of u, which is 0 - u modulo 2^128.
func (u Uint128) Neg() Uint128 {
	return u.Not().Inc()
}

// Mul returns u * n, discarding any bits past 128.
func (u Uint128) Mul(n Uint128) Uint128 {
	hi, lo := mul128to128(u.hi, u.lo, n.hi, n.lo)
	return Uint128{hi: hi, lo: lo}
}

func (u Uint128) Mul64(n uint64) Uint128 {
	hi, lo := mul128to128(u.hi, u.lo, 0, n)
	return Uint128{hi: hi, lo: lo}
}

// mul128to128 is schoolbook long multiplication on 32-bit digits, least
// significant first. Products landing at digit 4 or above are past bit 128
// and are skipped, as is the carry out of digit 3.
//
// Each step is at most (2^32-1)^2 + 2(2^32-1) == 2^64-1, so t cannot wrap.
func mul128to128(uhi, ulo, nhi, nlo uint64) (hi, lo uint64) {
	u := [4]uint64{ulo & mask32, ulo >> 32, uhi & mask32, uhi >> 32}
	n := [4]uint64{nlo & mask32, nlo >> 32, nhi & mask32, nhi >> 32}

	var w [4]uint64
	for i := 0; i < 4; i++ {
		if u[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; i+j < 4; j++ {
			t := u[i]*n[j] + w[i+j] + carry
			w[i+j] = t & mask32
			carry = t >> 32
		}
	}

	return (w[3] << 32) | w[2], (w[1] << 32) | w[0]
}
