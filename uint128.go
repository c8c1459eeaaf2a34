package uint128

import (
	"encoding/binary"
	"math/big"
)

type Uint128 struct {
	hi, lo uint64
}

func FromRaw(hi, lo uint64) Uint128 { return Uint128{hi: hi, lo: lo} }
func From64(v uint64) Uint128       { return Uint128{hi: 0, lo: v} }
func From32(v uint32) Uint128       { return Uint128{hi: 0, lo: uint64(v)} }
func From16(v uint16) Uint128       { return Uint128{hi: 0, lo: uint64(v)} }
func From8(v uint8) Uint128         { return Uint128{hi: 0, lo: uint64(v)} }

func FromBool(v bool) Uint128 {
	if v {
		return one
	}
	return zero
}

// FromBigInt converts v, reporting whether the conversion was exact. Values
// wider than 128 bits clamp to MaxUint128 and negative values give zero; both
// report accurate == false.
func FromBigInt(v *big.Int) (out Uint128, accurate bool) {
	switch {
	case v.Sign() < 0:
		return zero, false
	case v.BitLen() > 128:
		return MaxUint128, false
	}
	var buf [16]byte
	v.FillBytes(buf[:])
	return Uint128{
		hi: binary.BigEndian.Uint64(buf[:8]),
		lo: binary.BigEndian.Uint64(buf[8:]),
	}, true
}

func (u Uint128) IsZero() bool { return u == zero }

// Hi returns the upper 64 bits.
func (u Uint128) Hi() uint64 { return u.hi }

// Lo returns the lower 64 bits.
func (u Uint128) Lo() uint64 { return u.lo }

// Raw splits u into its limbs; FromRaw is the inverse.
func (u Uint128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// AsBool reports whether any bit is set.
func (u Uint128) AsBool() bool { return u.hi|u.lo != 0 }

func (u Uint128) AsUint8() uint8   { return uint8(u.lo) }
func (u Uint128) AsUint16() uint16 { return uint16(u.lo) }
func (u Uint128) AsUint32() uint32 { return uint32(u.lo) }

// AsUint64 returns the low limb. Check IsUint64 first if hi may be set.
func (u Uint128) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint128) IsUint64() bool { return u.hi == 0 }

// IntoBigInt stores u in b, reusing b's storage where it can.
func (u Uint128) IntoBigInt(b *big.Int) {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], u.hi)
	binary.BigEndian.PutUint64(buf[8:], u.lo)
	b.SetBytes(buf[:])
}

func (u Uint128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}
