package uint128

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInvalidBase = errors.New("uint128: base must be in the range [2, 16]")

const digits = "0123456789abcdef"

// Text returns the string representation of u in the given base, left-padded
// with '0' until it is at least minLen characters long. Longer results are
// never truncated.
//
// Base must be in the range [2, 16]; any other base returns an error wrapping
// ErrInvalidBase.
func (u Uint128) Text(base int, minLen int) (string, error) {
	if base < 2 || base > 16 {
		return "", fmt.Errorf("%w, found %d", ErrInvalidBase, base)
	}

	// 128 digits is enough for MaxUint128 in base 2:
	var buf [128]byte
	i := len(buf)

	if u == zero {
		i--
		buf[i] = '0'

	} else {
		by := From64(uint64(base))
		for q := u; q != zero; {
			var r Uint128
			q, r = divmod(q, by)
			i--
			buf[i] = digits[r.lo]
		}
	}

	out := string(buf[i:])
	if len(out) < minLen {
		out = strings.Repeat("0", minLen-len(out)) + out
	}
	return out, nil
}

func (u Uint128) String() string {
	s, _ := u.Text(10, 0)
	return s
}

// Format implements fmt.Formatter. The verb selects the base: 'b' is binary,
// 'o' and 'O' octal, 'x' and 'X' hexadecimal; every other verb renders
// decimal. The '#' flag adds a base prefix, precision sets the minimum number
// of digits, and width pads with spaces (or zeros with the '0' flag) unless
// '-' is set. Zero with an explicit precision of 0 prints nothing, which
// matches big.Int.
func (u Uint128) Format(s fmt.State, c rune) {
	base, prefix := 10, ""

	switch c {
	case 'b':
		base = 2
		if s.Flag('#') {
			prefix = "0b"
		}
	case 'o':
		base = 8
		if s.Flag('#') {
			prefix = "0"
		}
	case 'O':
		base, prefix = 8, "0o"
	case 'x':
		base = 16
		if s.Flag('#') {
			prefix = "0x"
		}
	case 'X':
		base = 16
		if s.Flag('#') {
			prefix = "0X"
		}
	}

	// fmt reuses its printer state, so the precision is only meaningful when
	// hasPrec is set.
	minLen := 0
	prec, hasPrec := s.Precision()
	if hasPrec {
		if prec == 0 && u == zero {
			return // zero with zero precision prints nothing, as for big.Int
		}
		minLen = prec
	}
	str, _ := u.Text(base, minLen)
	if c == 'X' {
		str = strings.ToUpper(str)
	}

	if s.Flag('+') {
		prefix = "+" + prefix
	} else if s.Flag(' ') {
		prefix = " " + prefix
	}

	width, hasWidth := s.Width()
	if pad := width - len(prefix) - len(str); hasWidth && pad > 0 {
		if s.Flag('-') {
			str = str + strings.Repeat(" ", pad)
		} else if s.Flag('0') && !hasPrec {
			str = strings.Repeat("0", pad) + str
		} else {
			prefix = strings.Repeat(" ", pad) + prefix
		}
	}

	_, _ = io.WriteString(s, prefix)
	_, _ = io.WriteString(s, str)
}

func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u Uint128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}
