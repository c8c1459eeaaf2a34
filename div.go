package uint128

import (
	"errors"
)

var ErrDivisionByZero = errors.New("uint128: division or modulus by 0")

// Quo returns the quotient u/by for by != 0. If by == 0, Quo panics with
// ErrDivisionByZero.
func (u Uint128) Quo(by Uint128) (q Uint128) {
	q, _ = u.QuoRem(by)
	return q
}

func (u Uint128) Quo64(by uint64) (q Uint128) {
	q, _ = u.QuoRem(From64(by))
	return q
}

// Rem returns the remainder u%by for by != 0. If by == 0, Rem panics with
// ErrDivisionByZero.
func (u Uint128) Rem(by Uint128) (r Uint128) {
	_, r = u.QuoRem(by)
	return r
}

func (u Uint128) Rem64(by uint64) (r Uint128) {
	_, r = u.QuoRem(From64(by))
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0, such that
//
//	q = u/by  truncated towards zero
//	r = u - by*q
//
// If by == 0, QuoRem panics with ErrDivisionByZero.
func (u Uint128) QuoRem(by Uint128) (q, r Uint128) {
	if by.hi|by.lo == 0 {
		panic(ErrDivisionByZero)
	}
	return divmod(u, by)
}

// DivMod is QuoRem, but returns ErrDivisionByZero instead of panicking.
func (u Uint128) DivMod(by Uint128) (q, r Uint128, err error) {
	if by.hi|by.lo == 0 {
		return q, r, ErrDivisionByZero
	}
	q, r = divmod(u, by)
	return q, r, nil
}

// divmod is binary long division. by must not be zero.
func divmod(u, by Uint128) (q, r Uint128) {
	if by == one {
		return u, zero
	} else if u == by {
		return one, zero
	} else if u == zero || u.LessThan(by) {
		return zero, u // it's 100% remainder
	}

	// r never exceeds the bits of u consumed so far, so the shift below
	// cannot push a set bit past 128.
	for x := uint(u.BitLen()); x > 0; x-- {
		// {{{ Lsh(1)
		q.hi = (q.hi << 1) | (q.lo >> 63)
		q.lo = q.lo << 1
		r.hi = (r.hi << 1) | (r.lo >> 63)
		r.lo = r.lo << 1
		// }}}

		if u.Bit(x-1) != 0 {
			r.lo |= 1
		}

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(r.hi < by.hi || (r.hi == by.hi && r.lo < by.lo)) {
			r = r.Sub(by)
			q.lo |= 1
		}
	}

	return q, r
}
