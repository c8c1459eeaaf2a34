package uint128

import (
	"math/bits"
)

// LessThan reports whether u < n. It is the borrow out of the two-limb
// subtraction u - n.
func (u Uint128) LessThan(n Uint128) bool {
	_, borrow := bits.Sub64(u.lo, n.lo, 0)
	_, borrow = bits.Sub64(u.hi, n.hi, borrow)
	return borrow != 0
}

func (u Uint128) GreaterThan(n Uint128) bool      { return n.LessThan(u) }
func (u Uint128) GreaterOrEqualTo(n Uint128) bool { return !u.LessThan(n) }
func (u Uint128) LessOrEqualTo(n Uint128) bool    { return !n.LessThan(u) }
func (u Uint128) Equal(n Uint128) bool            { return u == n }

// Cmp returns -1, 0 or +1 for u < n, u == n and u > n.
func (u Uint128) Cmp(n Uint128) int {
	switch {
	case u == n:
		return 0
	case u.LessThan(n):
		return -1
	}
	return 1
}

// The 64 forms compare against a native value zero-extended to 128 bits, so
// any set bit in hi makes u the larger.

func (u Uint128) Cmp64(n uint64) int {
	switch {
	case u.hi != 0 || u.lo > n:
		return 1
	case u.lo < n:
		return -1
	}
	return 0
}

func (u Uint128) Equal64(n uint64) bool            { return u.hi == 0 && u.lo == n }
func (u Uint128) GreaterThan64(n uint64) bool      { return u.hi != 0 || u.lo > n }
func (u Uint128) GreaterOrEqualTo64(n uint64) bool { return u.hi != 0 || u.lo >= n }
func (u Uint128) LessThan64(n uint64) bool         { return u.hi == 0 && u.lo < n }
func (u Uint128) LessOrEqualTo64(n uint64) bool    { return u.hi == 0 && u.lo <= n }
