package tempus

/*
cal.go implements the proleptic Gregorian calendar arithmetic upon
which the [Date] type is built: leap year classification, per-year
and per-month day counts, ISO 8601 week counts and the bidirectional
ordinal/calendar conversion. Everything here is exact integer
arithmetic; no conversion iterates over individual days.
*/

import "time"

/*
MinYear and MaxYear define the inclusive year range supported by the
[Date] type and, by extension, every composite type in this package.
*/
const (
	MinYear = -100_000
	MaxYear = 100_000
)

/*
daysBefore[m] counts the days of a non-leap year which precede the
first day of month m+1. The trailing entry covers the whole year.
*/
var daysBefore = [13]uint16{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

/*
IsLeapYear returns a boolean value indicative of year being a leap
year under the Gregorian rule: divisible by four, excepting centuries
not divisible by four hundred.
*/
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
DaysInYear returns 366 for leap years, otherwise 365.
*/
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

/*
WeeksInYear returns the number of ISO 8601 weeks within year: 53 if
the year begins on a Thursday, or is a leap year beginning on a
Wednesday, otherwise 52.
*/
func WeeksInYear(year int) int {
	switch weekdayOfOrdinal(year, 1) {
	case Thursday:
		return 53
	case Wednesday:
		if IsLeapYear(year) {
			return 53
		}
	}
	return 52
}

/*
DaysInMonth returns the number of days within the given month of the
given year: 29 for February of a leap year, otherwise per the usual
Gregorian month lengths.
*/
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return int(daysBefore[month] - daysBefore[month-1])
}

/*
ordinalToCalendar resolves a one-based ordinal within year to its
(month, day) calendar form. The ordinal is presumed valid.
*/
func ordinalToCalendar(year int, ordinal int) (time.Month, int) {
	o := ordinal
	if IsLeapYear(year) {
		switch {
		case o == 31+29:
			return time.February, 29
		case o > 31+29:
			// Past the leap day; pretend it wasn't there.
			o--
		}
	}

	// Estimate on the assumption every month spans 31 days;
	// the estimate is low by at most one month.
	m := (o - 1) / 31
	if o > int(daysBefore[m+1]) {
		m++
	}

	return time.Month(m + 1), o - int(daysBefore[m])
}

/*
calendarToOrdinal resolves a (month, day) calendar pair within year to
its one-based ordinal form. The pair is presumed valid.
*/
func calendarToOrdinal(year int, month time.Month, day int) int {
	o := int(daysBefore[month-1]) + day
	if IsLeapYear(year) && month > time.February {
		o++
	}
	return o
}

// toEpochDays converts a valid (year, ordinal) pair to a count of
// days since 1970-01-01.
func toEpochDays(year, ordinal int) int64 {
	y := int64(year) - 1
	return int64(ordinal) + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) +
		1_721_425 - julianDayOffset
}

// fromEpochDays converts a count of days since 1970-01-01 to a
// (year, ordinal) pair. The result may lie outside the supported
// year range; callers validate.
func fromEpochDays(days int64) (year, ordinal int) {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := int(yoe + era*400)
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := int(doy - (153*mp+2)/5 + 1)
	m := time.Month(mp + 3)
	if mp >= 10 {
		m = time.Month(mp - 9)
	}
	if m <= time.February {
		y++
	}
	return y, calendarToOrdinal(y, m, d)
}

/*
julianDayOffset converts between day counts since the Unix epoch and
Julian day numbers: JDN(1970-01-01) == 2_440_588.
*/
const julianDayOffset = 2_440_588

// weekdayOfOrdinal derives the weekday of (year, ordinal) from its
// epoch day count. Day zero of the Julian period was a Monday.
func weekdayOfOrdinal(year, ordinal int) Weekday {
	return Weekday(floorMod(toEpochDays(year, ordinal)+julianDayOffset, 7))
}
