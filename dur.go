package tempus

/*
dur.go implements the signed [Duration] type and its arithmetic
engine. A Duration is a (seconds, nanoseconds) pair governed by the
sign-consistency invariant: the two fields are never of strictly
opposite sign. Every constructor and every compound operation
re-establishes that invariant before a value escapes.
*/

import (
	"math"
	"time"
)

/*
Duration is a signed span of elapsed time, exact to the nanosecond
across the full signed 64-bit seconds range. The zero value of
Duration is the zero span.
*/
type Duration struct {
	seconds     int64
	nanoseconds int32
}

/*
Boundary values of [Duration]. MinDuration and MaxDuration are the
least and greatest representable spans; the checked operators report
failure, and the non-checked operators panic, beyond them.
*/
var (
	ZeroDuration = Duration{}
	MinDuration  = Duration{seconds: minI64, nanoseconds: -999_999_999}
	MaxDuration  = Duration{seconds: maxI64, nanoseconds: 999_999_999}
)

// signFix re-establishes sign consistency after a carry has already
// confined nanoseconds to (-1e9, 1e9). Both corrections move at most
// one second toward zero, so neither can overflow.
func signFix(seconds int64, nanos int32) Duration {
	if seconds > 0 && nanos < 0 {
		seconds--
		nanos += 1_000_000_000
	} else if seconds < 0 && nanos > 0 {
		seconds++
		nanos -= 1_000_000_000
	}
	return Duration{seconds: seconds, nanoseconds: nanos}
}

/*
New returns an instance of [Duration] normalized from an arbitrary
(seconds, nanoseconds) pair: whole seconds are carried out of the
nanosecond component and the sign-consistency invariant is then
re-derived. New panics when the carried seconds overflow the signed
64-bit range.
*/
func New(seconds int64, nanoseconds int64) Duration {
	carried, ok := addI64(seconds, nanoseconds/nanosPerSecond)
	if !ok {
		panic(errOverflow)
	}
	return signFix(carried, int32(nanoseconds%nanosPerSecond))
}

/*
Weeks returns a [Duration] spanning the given number of whole weeks.
It panics on overflow.
*/
func Weeks(weeks int64) Duration { return unitSeconds(weeks, 604_800) }

/*
Days returns a [Duration] spanning the given number of whole days.
It panics on overflow.
*/
func Days(days int64) Duration { return unitSeconds(days, 86_400) }

/*
Hours returns a [Duration] spanning the given number of whole hours.
It panics on overflow.
*/
func Hours(hours int64) Duration { return unitSeconds(hours, 3_600) }

/*
Minutes returns a [Duration] spanning the given number of whole
minutes. It panics on overflow.
*/
func Minutes(minutes int64) Duration { return unitSeconds(minutes, 60) }

/*
Seconds returns a [Duration] spanning the given number of whole
seconds.
*/
func Seconds(seconds int64) Duration { return Duration{seconds: seconds} }

func unitSeconds(n, factor int64) Duration {
	secs, ok := mulI64(n, factor)
	if !ok {
		panic(errOverflow)
	}
	return Duration{seconds: secs}
}

/*
Milliseconds returns a [Duration] spanning the given number of whole
milliseconds.
*/
func Milliseconds(ms int64) Duration {
	return Duration{
		seconds:     ms / 1_000,
		nanoseconds: int32(ms % 1_000 * 1_000_000),
	}
}

/*
Microseconds returns a [Duration] spanning the given number of whole
microseconds.
*/
func Microseconds(us int64) Duration {
	return Duration{
		seconds:     us / 1_000_000,
		nanoseconds: int32(us % 1_000_000 * 1_000),
	}
}

/*
Nanoseconds returns a [Duration] spanning the given number of
nanoseconds.
*/
func Nanoseconds(ns int64) Duration {
	return Duration{
		seconds:     ns / nanosPerSecond,
		nanoseconds: int32(ns % nanosPerSecond),
	}
}

/*
SecondsFloat64 returns a [Duration] spanning the given fractional
number of seconds. The fractional component is truncated beyond
nanosecond precision.
*/
func SecondsFloat64(seconds float64) Duration {
	return signFix(int64(seconds), int32(math.Mod(seconds, 1)*1e9))
}

/*
SecondsFloat32 returns a [Duration] spanning the given fractional
number of seconds, as [SecondsFloat64] for 32-bit input.
*/
func SecondsFloat32(seconds float32) Duration {
	return SecondsFloat64(float64(seconds))
}

/*
MillisecondsFloat64 returns a [Duration] spanning the given fractional
number of milliseconds.
*/
func MillisecondsFloat64(ms float64) Duration {
	return SecondsFloat64(ms / 1_000)
}

/*
IsZero returns a boolean value indicative of the receiver instance
being the zero span.
*/
func (r Duration) IsZero() bool { return r.seconds == 0 && r.nanoseconds == 0 }

/*
IsNegative returns a boolean value indicative of the receiver instance
being strictly negative. The zero span is neither negative nor
positive.
*/
func (r Duration) IsNegative() bool { return r.seconds < 0 || r.nanoseconds < 0 }

/*
IsPositive returns a boolean value indicative of the receiver instance
being strictly positive. The zero span is neither negative nor
positive.
*/
func (r Duration) IsPositive() bool { return r.seconds > 0 || r.nanoseconds > 0 }

/*
Abs returns the absolute value of the receiver instance. It panics
when the receiver is [MinDuration], whose magnitude is not
representable.
*/
func (r Duration) Abs() Duration {
	if r.IsNegative() {
		return r.Neg()
	}
	return r
}

/*
WholeWeeks returns the number of whole weeks spanned by the receiver
instance, truncated toward zero.
*/
func (r Duration) WholeWeeks() int64 { return r.seconds / 604_800 }

/*
WholeDays returns the number of whole days spanned by the receiver
instance, truncated toward zero.
*/
func (r Duration) WholeDays() int64 { return r.seconds / 86_400 }

/*
WholeHours returns the number of whole hours spanned by the receiver
instance, truncated toward zero.
*/
func (r Duration) WholeHours() int64 { return r.seconds / 3_600 }

/*
WholeMinutes returns the number of whole minutes spanned by the
receiver instance, truncated toward zero.
*/
func (r Duration) WholeMinutes() int64 { return r.seconds / 60 }

/*
WholeSeconds returns the number of whole seconds spanned by the
receiver instance, truncated toward zero.
*/
func (r Duration) WholeSeconds() int64 { return r.seconds }

/*
WholeMilliseconds returns the number of whole milliseconds spanned by
the receiver instance, truncated toward zero. It panics when the count
exceeds the signed 64-bit range (beyond roughly ±292 million years).
*/
func (r Duration) WholeMilliseconds() int64 {
	ms, ok := mulI64(r.seconds, 1_000)
	if ok {
		ms, ok = addI64(ms, int64(r.nanoseconds/1_000_000))
	}
	if !ok {
		panic(errOverflow)
	}
	return ms
}

/*
WholeMicroseconds returns the number of whole microseconds spanned by
the receiver instance, truncated toward zero. It panics when the count
exceeds the signed 64-bit range.
*/
func (r Duration) WholeMicroseconds() int64 {
	us, ok := mulI64(r.seconds, 1_000_000)
	if ok {
		us, ok = addI64(us, int64(r.nanoseconds/1_000))
	}
	if !ok {
		panic(errOverflow)
	}
	return us
}

/*
WholeNanoseconds returns the number of nanoseconds spanned by the
receiver instance. It panics when the count exceeds the signed 64-bit
range (beyond roughly ±292 years).
*/
func (r Duration) WholeNanoseconds() int64 {
	ns, ok := mulI64(r.seconds, nanosPerSecond)
	if ok {
		ns, ok = addI64(ns, int64(r.nanoseconds))
	}
	if !ok {
		panic(errOverflow)
	}
	return ns
}

/*
SubsecMilliseconds returns the millisecond component within the
current second. The result carries the sign of the whole span, not an
always-non-negative magnitude.
*/
func (r Duration) SubsecMilliseconds() int32 { return r.nanoseconds / 1_000_000 }

/*
SubsecMicroseconds returns the microsecond component within the
current second, signed as [Duration.SubsecMilliseconds].
*/
func (r Duration) SubsecMicroseconds() int32 { return r.nanoseconds / 1_000 }

/*
SubsecNanoseconds returns the nanosecond component within the current
second, signed as [Duration.SubsecMilliseconds].
*/
func (r Duration) SubsecNanoseconds() int32 { return r.nanoseconds }

/*
AsSecondsFloat64 returns the span of the receiver instance as a
fractional number of seconds.
*/
func (r Duration) AsSecondsFloat64() float64 {
	return float64(r.seconds) + float64(r.nanoseconds)/1e9
}

/*
AsSecondsFloat32 returns the span of the receiver instance as a
fractional number of seconds in 32-bit precision.
*/
func (r Duration) AsSecondsFloat32() float32 {
	return float32(r.AsSecondsFloat64())
}

/*
CheckedAdd returns the sum of the receiver instance and other
alongside a boolean value which is false exactly when the true
mathematical sum's seconds component leaves the signed 64-bit range.
No value is ever silently wrapped.
*/
func (r Duration) CheckedAdd(other Duration) (Duration, bool) {
	secs, ok := addI64(r.seconds, other.seconds)
	if !ok {
		return Duration{}, false
	}

	nanos := r.nanoseconds + other.nanoseconds
	if nanos >= 1_000_000_000 {
		nanos -= 1_000_000_000
		if secs, ok = addI64(secs, 1); !ok {
			return Duration{}, false
		}
	} else if nanos <= -1_000_000_000 {
		nanos += 1_000_000_000
		if secs, ok = addI64(secs, -1); !ok {
			return Duration{}, false
		}
	}

	return signFix(secs, nanos), true
}

/*
CheckedSub returns the difference of the receiver instance and other
alongside a boolean value, overflow-checked as [Duration.CheckedAdd].
*/
func (r Duration) CheckedSub(other Duration) (Duration, bool) {
	secs, ok := subI64(r.seconds, other.seconds)
	if !ok {
		return Duration{}, false
	}

	nanos := r.nanoseconds - other.nanoseconds
	if nanos >= 1_000_000_000 {
		nanos -= 1_000_000_000
		if secs, ok = addI64(secs, 1); !ok {
			return Duration{}, false
		}
	} else if nanos <= -1_000_000_000 {
		nanos += 1_000_000_000
		if secs, ok = addI64(secs, -1); !ok {
			return Duration{}, false
		}
	}

	return signFix(secs, nanos), true
}

/*
CheckedMul returns the product of the receiver instance and the signed
integer n alongside a boolean value which is false when the product's
seconds component would leave the signed 64-bit range.
*/
func (r Duration) CheckedMul(n int32) (Duration, bool) {
	// |nanoseconds| < 1e9 and |n| <= 2^31, so the product fits i64.
	totalNanos := int64(r.nanoseconds) * int64(n)
	extra := totalNanos / nanosPerSecond
	rem := int32(totalNanos % nanosPerSecond)

	secs, ok := mulI64(r.seconds, int64(n))
	if ok {
		secs, ok = addI64(secs, extra)
	}
	if !ok {
		return Duration{}, false
	}

	return signFix(secs, rem), true
}

/*
CheckedDiv returns the quotient of the receiver instance and the
signed integer n alongside a boolean value which is false when n is
zero or the quotient is unrepresentable.
*/
func (r Duration) CheckedDiv(n int32) (Duration, bool) {
	if n == 0 || (n == -1 && r.seconds == minI64) {
		return Duration{}, false
	}

	secs := r.seconds / int64(n)
	extraSecs := r.seconds % int64(n)
	nanos := r.nanoseconds/n + int32(extraSecs*nanosPerSecond/int64(n))

	return New(secs, int64(nanos)), true
}

/*
CheckedNeg returns the negation of the receiver instance alongside a
boolean value which is false only for [MinDuration].
*/
func (r Duration) CheckedNeg() (Duration, bool) {
	if r.seconds == minI64 {
		return Duration{}, false
	}
	return Duration{seconds: -r.seconds, nanoseconds: -r.nanoseconds}, true
}

/*
Add returns the sum of the receiver instance and other. Like ordinary
signed-integer arithmetic it treats overflow as a fatal condition and
panics; reach for [Duration.CheckedAdd] when inputs are untrusted.
*/
func (r Duration) Add(other Duration) Duration {
	out, ok := r.CheckedAdd(other)
	if !ok {
		panic(errOverflow)
	}
	return out
}

/*
Sub returns the difference of the receiver instance and other,
panicking on overflow as [Duration.Add].
*/
func (r Duration) Sub(other Duration) Duration {
	out, ok := r.CheckedSub(other)
	if !ok {
		panic(errOverflow)
	}
	return out
}

/*
Neg returns the negation of the receiver instance, panicking for
[MinDuration].
*/
func (r Duration) Neg() Duration {
	out, ok := r.CheckedNeg()
	if !ok {
		panic(errOverflow)
	}
	return out
}

/*
Mul returns the product of the receiver instance and the signed
integer n, panicking on overflow as [Duration.Add].
*/
func (r Duration) Mul(n int32) Duration {
	out, ok := r.CheckedMul(n)
	if !ok {
		panic(errOverflow)
	}
	return out
}

/*
Div returns the quotient of the receiver instance and the signed
integer n, panicking when n is zero or the quotient is
unrepresentable.
*/
func (r Duration) Div(n int32) Duration {
	out, ok := r.CheckedDiv(n)
	if !ok {
		if n == 0 {
			panic(errDivByZero)
		}
		panic(errOverflow)
	}
	return out
}

/*
MulFloat64 returns the product of the receiver instance and the
floating multiplier f. Unlike the integer-typed operators this path is
not overflow-checked (a deliberate, documented asymmetry); sign is
carried exactly even for negative or zero multipliers.
*/
func (r Duration) MulFloat64(f float64) Duration {
	return SecondsFloat64(r.AsSecondsFloat64() * f)
}

/*
MulFloat32 returns the product of the receiver instance and the
floating multiplier f, as [Duration.MulFloat64] in 32-bit precision.
*/
func (r Duration) MulFloat32(f float32) Duration {
	return SecondsFloat64(r.AsSecondsFloat64() * float64(f))
}

/*
DivFloat64 returns the quotient of the receiver instance and the
floating divisor f, unchecked as [Duration.MulFloat64].
*/
func (r Duration) DivFloat64(f float64) Duration {
	return SecondsFloat64(r.AsSecondsFloat64() / f)
}

/*
DivFloat32 returns the quotient of the receiver instance and the
floating divisor f, as [Duration.DivFloat64] in 32-bit precision.
*/
func (r Duration) DivFloat32(f float32) Duration {
	return SecondsFloat64(r.AsSecondsFloat64() / float64(f))
}

/*
DivDuration returns the dimensionless floating ratio of the receiver
instance to other.
*/
func (r Duration) DivDuration(other Duration) float64 {
	return r.AsSecondsFloat64() / other.AsSecondsFloat64()
}

/*
Compare returns -1, 0 or 1 depending on whether the receiver instance
spans less than, exactly, or more than other.
*/
func (r Duration) Compare(other Duration) int {
	switch {
	case r.seconds < other.seconds:
		return -1
	case r.seconds > other.seconds:
		return 1
	case r.nanoseconds < other.nanoseconds:
		return -1
	case r.nanoseconds > other.nanoseconds:
		return 1
	}
	return 0
}

/*
LessThan returns a boolean value indicative of the receiver instance
spanning strictly less than other.
*/
func (r Duration) LessThan(other Duration) bool { return r.Compare(other) < 0 }

/*
Std returns the receiver instance as a [time.Duration] alongside an
error. A [conversionErr] is returned when the span exceeds the
±292-year range of time.Duration; within range the conversion is
exact and round-trips through [FromStd].
*/
func (r Duration) Std() (time.Duration, error) {
	ns, ok := mulI64(r.seconds, nanosPerSecond)
	if ok {
		ns, ok = addI64(ns, int64(r.nanoseconds))
	}
	if !ok {
		return 0, errorStdDurationRange
	}
	return time.Duration(ns), nil
}

/*
FromStd returns an instance of [Duration] equivalent to the given
[time.Duration]. The conversion is total: every time.Duration value is
representable.
*/
func FromStd(td time.Duration) Duration {
	return Duration{
		seconds:     int64(td) / nanosPerSecond,
		nanoseconds: int32(int64(td) % nanosPerSecond),
	}
}

/*
AddStd returns the sum of the receiver instance and the given
[time.Duration]; the result agrees with first converting the operand
via [FromStd].
*/
func (r Duration) AddStd(td time.Duration) Duration { return r.Add(FromStd(td)) }

/*
SubStd returns the difference of the receiver instance and the given
[time.Duration], defined as [Duration.AddStd] is.
*/
func (r Duration) SubStd(td time.Duration) Duration { return r.Sub(FromStd(td)) }

/*
CompareStd compares the receiver instance against the given
[time.Duration]; the result agrees with first converting the operand
via [FromStd].
*/
func (r Duration) CompareStd(td time.Duration) int { return r.Compare(FromStd(td)) }

/*
String returns the string representation of the receiver instance as
a signed decimal count of seconds with trailing fractional zeroes
elided, e.g. "90s", "-0.000000001s".
*/
func (r Duration) String() string {
	b := newStrBuilder()
	if r.IsNegative() {
		b.WriteByte('-')
	}

	var mag uint64
	if r.seconds < 0 {
		// minI64 has no 64-bit negation
		mag = uint64(-(r.seconds + 1)) + 1
	} else {
		mag = uint64(r.seconds)
	}
	nanos := r.nanoseconds
	if nanos < 0 {
		nanos = -nanos
	}

	b.WriteString(fmtUint(mag, 10))
	if nanos != 0 {
		var frac [10]byte
		frac[0] = '.'
		n := nanos
		for i := 9; i > 0; i-- {
			frac[i] = byte('0' + n%10)
			n /= 10
		}
		f := frac[:]
		for f[len(f)-1] == '0' {
			f = f[:len(f)-1]
		}
		b.Write(f)
	}
	b.WriteByte('s')

	return b.String()
}
