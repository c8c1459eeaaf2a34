package uint128

const (
	maxUint64 = 1<<64 - 1
	mask32    = 0xffffffff
)

var (
	MaxUint128 = Uint128{hi: maxUint64, lo: maxUint64}

	zero Uint128
	one  = Uint128{lo: 1}
)
