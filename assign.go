package uint128

// In-place forms. Each one stores the result of the matching value method in
// the receiver and returns the receiver so calls can be chained.

func (u *Uint128) AddAssign(n Uint128) *Uint128 { *u = u.Add(n); return u }
func (u *Uint128) SubAssign(n Uint128) *Uint128 { *u = u.Sub(n); return u }
func (u *Uint128) MulAssign(n Uint128) *Uint128 { *u = u.Mul(n); return u }

// QuoAssign panics with ErrDivisionByZero if n is zero, leaving u unchanged.
func (u *Uint128) QuoAssign(n Uint128) *Uint128 { *u = u.Quo(n); return u }

// RemAssign panics with ErrDivisionByZero if n is zero, leaving u unchanged.
func (u *Uint128) RemAssign(n Uint128) *Uint128 { *u = u.Rem(n); return u }

func (u *Uint128) AndAssign(n Uint128) *Uint128 { *u = u.And(n); return u }
func (u *Uint128) OrAssign(n Uint128) *Uint128  { *u = u.Or(n); return u }
func (u *Uint128) XorAssign(n Uint128) *Uint128 { *u = u.Xor(n); return u }
func (u *Uint128) LshAssign(n uint) *Uint128    { *u = u.Lsh(n); return u }
func (u *Uint128) RshAssign(n uint) *Uint128    { *u = u.Rsh(n); return u }

// PreInc increments u and returns the new value.
func (u *Uint128) PreInc() Uint128 {
	*u = u.Inc()
	return *u
}

// PostInc increments u and returns the value it held before.
func (u *Uint128) PostInc() (old Uint128) {
	old = *u
	*u = old.Inc()
	return old
}

// PreDec decrements u and returns the new value.
func (u *Uint128) PreDec() Uint128 {
	*u = u.Dec()
	return *u
}

// PostDec decrements u and returns the value it held before.
func (u *Uint128) PostDec() (old Uint128) {
	old = *u
	*u = old.Dec()
	return old
}

// Take returns the value of u and resets u to zero.
func (u *Uint128) Take() (v Uint128) {
	v, *u = *u, zero
	return v
}
