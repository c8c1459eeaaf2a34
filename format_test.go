package uint128

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shabbyrobe/golib/assert"
)

func TestText(t *testing.T) {
	for idx, tc := range []struct {
		v      Uint128
		base   int
		minLen int
		out    string
	}{
		{u64(0), 10, 0, "0"},
		{u64(0), 2, 0, "0"},
		{u64(0), 16, 4, "0000"},
		{u64(255), 16, 0, "ff"},
		{u64(255), 16, 4, "00ff"},
		{u64(255), 16, 1, "ff"},
		{u64(255), 2, 0, "11111111"},
		{u64(255), 8, 0, "377"},
		{u64(255), 3, 0, "100110"},
		{FromRaw(1, 0), 10, 0, "18446744073709551616"},
		{FromRaw(1, 0), 16, 0, "10000000000000000"},
		{MaxUint128, 10, 0, "340282366920938463463374607431768211455"},
		{MaxUint128, 16, 0, strings.Repeat("f", 32)},
		{MaxUint128, 2, 0, strings.Repeat("1", 128)},
		{MaxUint128, 8, 0, "3" + strings.Repeat("7", 42)},
		{MaxUint128, 10, 45, "000000340282366920938463463374607431768211455"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%d/%d", idx, tc.v, tc.base, tc.minLen), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := tc.v.Text(tc.base, tc.minLen)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out)
			if tc.minLen == 0 {
				tt.MustEqual(tc.v.AsBigInt().Text(tc.base), out)
			}
		})
	}
}

func TestTextInvalidBase(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 17, 36} {
		t.Run(fmt.Sprint(base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := u64(10).Text(base, 0)
			tt.MustAssert(errors.Is(err, ErrInvalidBase), "found %v", err)
			tt.MustEqual("", out)
		})
	}
}

func TestFormat(t *testing.T) {
	for idx, tc := range []struct {
		v   Uint128
		fmt string
		out string
	}{
		{u64(1), "%d", "1"},
		{u64(1), "%s", "1"},
		{u64(1), "%v", "1"},
		{u64(0), "%x", "0"},
		{MaxUint128, "%d", "340282366920938463463374607431768211455"},
		{MaxUint128, "%#d", "340282366920938463463374607431768211455"},
		{MaxUint128, "%o", "3" + strings.Repeat("7", 42)},
		{MaxUint128, "%b", strings.Repeat("1", 128)},
		{MaxUint128, "%#b", "0b" + strings.Repeat("1", 128)},
		{MaxUint128, "%#o", "03" + strings.Repeat("7", 42)},
		{MaxUint128, "%#x", "0xffffffffffffffffffffffffffffffff"},
		{MaxUint128, "%#X", "0XFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},

		{u64(255), "%x", "ff"},
		{u64(255), "%X", "FF"},
		{u64(255), "%o", "377"},
		{u64(255), "%O", "0o377"},
		{u64(255), "%.4x", "00ff"},
		{u64(255), "%+d", "+255"},
		{u64(255), "% d", " 255"},
		{u64(255), "%5d", "  255"},
		{u64(255), "%-5d|", "255  |"},
		{u64(255), "%08d", "00000255"},
		{u64(255), "%#08x", "0x0000ff"},
		{u64(255), "%8.4x", "    00ff"},
		{u64(255), "%#8x", "    0xff"},
		{u64(255), "%2d", "255"},

		// Zero with an explicit zero precision prints no digits:
		{u64(0), "%.0d", ""},
		{u64(0), "%#.0x", ""},
		{u64(0), "%8.0d", ""},
		{u64(0), "%.d", ""},
		{u64(1), "%.0d", "1"},
		{u64(0), "%.1d", "0"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.fmt), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := fmt.Sprintf(tc.fmt, tc.v)
			tt.MustEqual(tc.out, result)
		})
	}
}

func TestFormatMatchesBigInt(t *testing.T) {
	tt := assert.WrapTB(t)
	verbs := []string{
		"%d", "%x", "%X", "%o", "%O", "%b", "%#x", "%#o", "%#b",
		"%40d", "%-40x|", "%040d", "%.35d", "%.0d", "%#.0x", "%8.0d", "%+d",
	}
	for i := 0; i < 1000; i++ {
		u := randU128(nil)
		if i%50 == 0 {
			u = Uint128{}
		}
		b := u.AsBigInt()
		for _, verb := range verbs {
			tt.MustEqual(fmt.Sprintf(verb, b), fmt.Sprintf(verb, u), "verb %s", verb)
		}
	}
}

func TestFormatIgnoresEarlierPrecision(t *testing.T) {
	tt := assert.WrapTB(t)

	// Each pair leaves a precision behind in fmt's printer state before
	// formatting with a verb that has none.
	for _, tc := range []struct {
		prior string
		fmt   string
		v     Uint128
		out   string
	}{
		{"%.35d", "%d", u64(1), "1"},
		{"%.4x", "%v", u64(7), "7"},
		{"%.4x", "%x", u64(255), "ff"},
		{"%.0d", "%d", u64(0), "0"},
		{"%.10d", "%s", MaxUint128, "340282366920938463463374607431768211455"},
	} {
		_ = fmt.Sprintf(tc.prior, u64(1))
		tt.MustEqual(tc.out, fmt.Sprintf(tc.fmt, tc.v), "%s after %s", tc.fmt, tc.prior)
		tt.MustEqual(tc.out, fmt.Sprint(tc.v))
	}
}

func TestMarshal(t *testing.T) {
	tt := assert.WrapTB(t)

	type account struct {
		Balance Uint128  `json:"balance"`
		Limit   *Uint128 `json:"limit,omitempty"`
	}

	limit := MaxUint128
	bts, err := json.Marshal(account{Balance: FromRaw(1, 0), Limit: &limit})
	tt.MustOK(err)
	tt.MustEqual(`{"balance":"18446744073709551616","limit":"340282366920938463463374607431768211455"}`, string(bts))

	bts, err = json.Marshal(account{})
	tt.MustOK(err)
	tt.MustEqual(`{"balance":"0"}`, string(bts))

	txt, err := u64(255).MarshalText()
	tt.MustOK(err)
	tt.MustEqual("255", string(txt))
}
