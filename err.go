package tempus

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"sync"
)

var mkerr func(string) error = errors.New

/*
fatal conditions raised by the non-checked arithmetic operators. These
are deliberately panics rather than error returns: they mirror ordinary
signed-integer overflow semantics, and callers holding untrusted inputs
are expected to reach for the Checked* forms instead.
*/
var (
	errOverflow  error = mkerr("overflow when computing duration")
	errDivByZero error = mkerr("division by zero")
)

/*
component errors.
*/
var (
	errorYearRange       = componentErr{mkerr("year is outside the supported range")}
	errorOrdinalRange    = componentErr{mkerr("ordinal exceeds the number of days in year")}
	errorMonthRange      = componentErr{mkerr("month must be in 1..=12")}
	errorDayRange        = componentErr{mkerr("day exceeds the number of days in month")}
	errorWeekRange       = componentErr{mkerr("week exceeds the number of ISO weeks in year")}
	errorHourRange       = componentErr{mkerr("hour must be in 0..=23")}
	errorMinuteRange     = componentErr{mkerr("minute must be in 0..=59")}
	errorSecondRange     = componentErr{mkerr("second must be in 0..=59")}
	errorNanosecondRange = componentErr{mkerr("nanosecond must be in 0..=999999999")}
	errorOffsetHours     = componentErr{mkerr("offset hours must be in -23..=23")}
	errorOffsetMinutes   = componentErr{mkerr("offset minutes must be in -59..=59")}
	errorOffsetSeconds   = componentErr{mkerr("offset seconds must be in -59..=59")}
	errorOffsetRange     = componentErr{mkerr("offset magnitude must be less than 24 hours")}
)

/*
conversion errors.
*/
var (
	errorStdDurationRange = conversionErr{mkerr("duration exceeds the time.Duration range")}
	errorTimestampRange   = conversionErr{mkerr("timestamp is outside the supported instant range")}
)

/*
format string errors.
*/
var (
	errorTrailingSpecifier = formatErr{mkerr("trailing incomplete specifier")}
)

/*
types which implement the error interface.
*/
type (
	componentErr  struct{ e error }
	conversionErr struct{ e error }
	formatErr     struct{ e error }
)

func componentErrorf(m ...any) error  { return componentErr{mkerrf(m...)} }
func conversionErrorf(m ...any) error { return conversionErr{mkerrf(m...)} }
func formatErrorf(m ...any) error     { return formatErr{mkerrf(m...)} }

func (r componentErr) Error() string  { return `INVALID COMPONENT: ` + r.e.Error() }
func (r conversionErr) Error() string { return `CONVERSION ERROR: ` + r.e.Error() }
func (r formatErr) Error() string     { return `INVALID FORMAT STRING: ` + r.e.Error() }

/*
IsInvalidComponent returns a boolean value indicative of err describing
a field which fell outside its legal range at construction.
*/
func IsInvalidComponent(err error) bool {
	var c componentErr
	return errors.As(err, &c)
}

/*
IsConversionError returns a boolean value indicative of err describing a
value which could not be represented by the requested target type.
*/
func IsConversionError(err error) bool {
	var c conversionErr
	return errors.As(err, &c)
}

/*
IsInvalidFormatString returns a boolean value indicative of err describing
a malformed format specifier string.
*/
func IsInvalidFormatString(err error) bool {
	var f formatErr
	return errors.As(err, &f)
}

func errorInvalidDirective(c byte, pos int) error {
	return formatErrorf("unrecognized directive %", string(c), " at position ", pos)
}

func errorUnexpectedTrailing(rest string) error {
	return formatErrorf("unexpected trailing characters: ", rest)
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
