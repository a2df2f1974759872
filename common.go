package tempus

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	itoa     func(int) string                     = strconv.Itoa
	fmtInt   func(int64, int) string              = strconv.FormatInt
	fmtUint  func(uint64, int) string             = strconv.FormatUint
	fmtFloat func(float64, byte, int, int) string = strconv.FormatFloat
	atoi     func(string) (int, error)            = strconv.Atoi
	hasPfx   func(string, string) bool            = strings.HasPrefix
	trimSfx  func(string, string) string          = strings.TrimSuffix
	streqf   func(string, string) bool            = strings.EqualFold
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
floorDiv returns the quotient of a and b rounded toward negative
infinity, unlike Go's native division which truncates toward zero.
*/
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

/*
floorMod returns the remainder of floorDiv; the result always bears
the sign of b (or is zero).
*/
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

/*
addI64 returns the sum of a and b alongside a boolean value indicative
of the sum remaining within the signed 64-bit range.
*/
func addI64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

/*
subI64 returns the difference of a and b alongside a boolean value
indicative of the difference remaining within the signed 64-bit range.
*/
func subI64(a, b int64) (int64, bool) {
	d := a - b
	if (b < 0 && d < a) || (b > 0 && d > a) {
		return 0, false
	}
	return d, true
}

/*
mulI64 returns the product of a and b alongside a boolean value
indicative of the product remaining within the signed 64-bit range.
*/
func mulI64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == minI64 && b == -1 || b == minI64 && a == -1 {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

const (
	maxI64 int64 = 1<<63 - 1
	minI64 int64 = -1 << 63
)

// put2 writes v (0..99) into b at i as two ASCII digits.
func put2(b []byte, i, v int) {
	b[i] = byte('0' + v/10)
	b[i+1] = byte('0' + v%10)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
