package tempus

/*
lit.go implements the literal grammar shared by the runtime Parse*
functions, the panicking Must* constructors and the tempusgen source
generator. There is exactly one parser per literal form; every surface
that accepts a literal accepts precisely this grammar, and unexpected
trailing characters after a successful parse are always an error.
*/

import "time"

/*
ParseDate returns an instance of [Date] alongside an error following
an attempt to interpret s as a calendar date literal of the form
"2019-01-01". Years outside 0..=9999 carry an explicit sign and any
number of digits.
*/
func ParseDate(s string) (Date, error) {
	d, rest, err := scanDate(s)
	if err == nil && len(rest) > 0 {
		return Date{}, errorUnexpectedTrailing(rest)
	}
	return d, err
}

/*
ParseTime returns an instance of [Time] alongside an error following
an attempt to interpret s as a clock literal of the form "15:04",
"15:04:05" or "15:04:05.999" with up to nine fractional digits.
*/
func ParseTime(s string) (Time, error) {
	t, rest, err := scanTime(s)
	if err == nil && len(rest) > 0 {
		return Time{}, errorUnexpectedTrailing(rest)
	}
	return t, err
}

/*
ParseOffset returns an instance of [UtcOffset] alongside an error
following an attempt to interpret s as an offset literal: "UTC" (case
insensitive) or a signed "+2", "-09:30", "+05:45:30" form.
*/
func ParseOffset(s string) (UtcOffset, error) {
	o, rest, err := scanOffset(s)
	if err == nil && len(rest) > 0 {
		return UtcOffset{}, errorUnexpectedTrailing(rest)
	}
	return o, err
}

/*
ParseDateTime returns an instance of [DateTime] alongside an error
following an attempt to interpret s as a date literal and a time
literal separated by a single space or 'T'.
*/
func ParseDateTime(s string) (DateTime, error) {
	dt, rest, err := scanDateTime(s)
	if err == nil && len(rest) > 0 {
		return DateTime{}, errorUnexpectedTrailing(rest)
	}
	return dt, err
}

/*
ParseOffsetDateTime returns an instance of [OffsetDateTime] alongside
an error following an attempt to interpret s as a datetime literal
followed by a space and an offset literal, e.g.
"2019-01-01 00:00 UTC" or "2019-01-01T00:00:00 +02:00". The datetime
portion is interpreted as local to the given offset.
*/
func ParseOffsetDateTime(s string) (OffsetDateTime, error) {
	dt, rest, err := scanDateTime(s)
	if err != nil {
		return OffsetDateTime{}, err
	}
	if len(rest) == 0 || rest[0] != ' ' {
		return OffsetDateTime{}, formatErrorf("expected offset after datetime literal")
	}

	o, rest, err := scanOffset(rest[1:])
	if err == nil && len(rest) > 0 {
		err = errorUnexpectedTrailing(rest)
	}
	if err != nil {
		return OffsetDateTime{}, err
	}

	return dt.AssumeOffset(o), nil
}

func scanDateTime(s string) (DateTime, string, error) {
	d, rest, err := scanDate(s)
	if err != nil {
		return DateTime{}, s, err
	}
	if len(rest) == 0 || (rest[0] != ' ' && rest[0] != 'T') {
		return DateTime{}, rest, formatErrorf("expected time after date literal")
	}

	t, rest, err := scanTime(rest[1:])
	if err != nil {
		return DateTime{}, rest, err
	}
	return NewDateTime(d, t), rest, nil
}

func scanDate(s string) (Date, string, error) {
	neg := false
	rest := s
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		neg = rest[0] == '-'
		rest = rest[1:]
	}

	year, rest, err := scanInt(rest, 1, 6)
	if err != nil {
		return Date{}, s, formatErrorf("malformed year in date literal ", s)
	}
	if neg {
		year = -year
	}

	var month, day int
	if month, rest, err = scanSep(rest, '-', 2); err == nil {
		day, rest, err = scanSep(rest, '-', 2)
	}
	if err != nil {
		return Date{}, s, formatErrorf("malformed date literal ", s)
	}

	d, err := FromCalendarDate(year, time.Month(month), day)
	return d, rest, err
}

func scanTime(s string) (Time, string, error) {
	hour, rest, err := scanInt(s, 1, 2)
	if err != nil {
		return Time{}, s, formatErrorf("malformed hour in time literal ", s)
	}

	minute, rest, err := scanSep(rest, ':', 2)
	if err != nil {
		return Time{}, s, formatErrorf("malformed time literal ", s)
	}

	var second, nanos int
	if len(rest) > 0 && rest[0] == ':' {
		if second, rest, err = scanSep(rest, ':', 2); err != nil {
			return Time{}, s, formatErrorf("malformed seconds in time literal ", s)
		}
		if len(rest) > 0 && rest[0] == '.' {
			var digits int
			if nanos, digits, rest, err = scanFrac(rest[1:]); err != nil || digits == 0 {
				return Time{}, s, formatErrorf("malformed fraction in time literal ", s)
			}
		}
	}

	t, err := FromHMSNano(hour, minute, second, nanos)
	return t, rest, err
}

func scanOffset(s string) (UtcOffset, string, error) {
	if len(s) >= 3 && streqf(s[:3], `utc`) {
		return UTC, s[3:], nil
	}
	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return UtcOffset{}, s, formatErrorf("offset literal must be signed or \"UTC\"")
	}
	neg := s[0] == '-'

	hours, rest, err := scanInt(s[1:], 1, 2)
	if err != nil {
		return UtcOffset{}, s, formatErrorf("malformed offset literal ", s)
	}

	var minutes, seconds int
	if len(rest) > 0 && rest[0] == ':' {
		if minutes, rest, err = scanSep(rest, ':', 2); err != nil {
			return UtcOffset{}, s, formatErrorf("malformed offset literal ", s)
		}
		if len(rest) > 0 && rest[0] == ':' {
			if seconds, rest, err = scanSep(rest, ':', 2); err != nil {
				return UtcOffset{}, s, formatErrorf("malformed offset literal ", s)
			}
		}
	}

	if neg {
		hours, minutes, seconds = -hours, -minutes, -seconds
	}
	o, err := OffsetHMS(hours, minutes, seconds)
	return o, rest, err
}

// scanInt consumes between min and max leading digits.
func scanInt(s string, min, max int) (int, string, error) {
	i := 0
	for i < len(s) && i < max && isDigit(s[i]) {
		i++
	}
	if i < min {
		return 0, s, mkerr("expected digits")
	}
	v, _ := atoi(s[:i])
	return v, s[i:], nil
}

// scanSep consumes the separator c followed by exactly width digits.
func scanSep(s string, c byte, width int) (int, string, error) {
	if len(s) == 0 || s[0] != c {
		return 0, s, mkerr("expected separator")
	}
	v, rest, err := scanInt(s[1:], width, width)
	return v, rest, err
}

// scanFrac consumes up to nine fractional digits, scaled to
// nanoseconds.
func scanFrac(s string) (nanos, digits int, rest string, err error) {
	for digits < 9 && digits < len(s) && isDigit(s[digits]) {
		nanos = nanos*10 + int(s[digits]-'0')
		digits++
	}
	for scale := digits; scale < 9; scale++ {
		nanos *= 10
	}
	rest = s[digits:]
	if len(rest) > 0 && isDigit(rest[0]) {
		err = mkerr("fraction exceeds nanosecond precision")
	}
	return
}

/*
MustDate returns an instance of [Date] parsed from the given literal,
panicking on any error. It exists for package-level variable
initialization from literals known valid at authoring time; parse
untrusted input with [ParseDate] instead.
*/
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

/*
MustTime returns an instance of [Time] parsed from the given literal,
panicking on any error as [MustDate] does.
*/
func MustTime(s string) Time {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

/*
MustOffset returns an instance of [UtcOffset] parsed from the given
literal, panicking on any error as [MustDate] does.
*/
func MustOffset(s string) UtcOffset {
	o, err := ParseOffset(s)
	if err != nil {
		panic(err)
	}
	return o
}

/*
MustDateTime returns an instance of [DateTime] parsed from the given
literal, panicking on any error as [MustDate] does.
*/
func MustDateTime(s string) DateTime {
	dt, err := ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return dt
}

/*
MustOffsetDateTime returns an instance of [OffsetDateTime] parsed from
the given literal, panicking on any error as [MustDate] does.
*/
func MustOffsetDateTime(s string) OffsetDateTime {
	odt, err := ParseOffsetDateTime(s)
	if err != nil {
		panic(err)
	}
	return odt
}
