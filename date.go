package tempus

/*
date.go implements the proleptic Gregorian [Date] type. A Date stores
only its year and day-of-year ordinal; month and day are always
derived, never stored, so no redundant representation can fall out of
sync with the canonical one.
*/

import "time"

/*
Date is a calendar day within the proleptic Gregorian calendar,
represented as a year within [MinYear]..=[MaxYear] alongside a
one-based day-of-year ordinal.

The zero value of Date is January 1 of year zero.
*/
type Date struct {
	year    int32
	ordinal uint16
}

/*
FromOrdinalDate returns an instance of [Date] alongside an error
following an attempt to interpret year and ordinal as a calendar day.

A [componentErr] is returned when year falls outside the supported
range, or when ordinal exceeds [DaysInYear] of year. Any variadic
[Constraint] instances are evaluated against the assembled Date.
*/
func FromOrdinalDate(year, ordinal int, constraints ...Constraint[Date]) (Date, error) {
	var d Date
	var err error

	switch {
	case year < MinYear || year > MaxYear:
		err = errorYearRange
	case ordinal < 1 || ordinal > DaysInYear(year):
		err = errorOrdinalRange
	default:
		d = fromOrdinalDateUnchecked(year, ordinal)
		if len(constraints) > 0 {
			var group ConstraintGroup[Date] = constraints
			if err = group.Constrain(d); err != nil {
				d = Date{}
			}
		}
	}

	return d, err
}

/*
fromOrdinalDateUnchecked skips all validation. It exists for internal
call sites which have already established validity; misuse is a
programming error, not a recoverable condition.
*/
func fromOrdinalDateUnchecked(year, ordinal int) Date {
	return Date{year: int32(year), ordinal: uint16(ordinal)}
}

/*
FromCalendarDate returns an instance of [Date] alongside an error
following an attempt to interpret the (year, month, day) triple as a
calendar day.
*/
func FromCalendarDate(year int, month time.Month, day int, constraints ...Constraint[Date]) (Date, error) {
	var d Date
	var err error

	switch {
	case year < MinYear || year > MaxYear:
		err = errorYearRange
	case month < time.January || month > time.December:
		err = errorMonthRange
	case day < 1 || day > DaysInMonth(year, month):
		err = errorDayRange
	default:
		d = fromOrdinalDateUnchecked(year, calendarToOrdinal(year, month, day))
		if len(constraints) > 0 {
			var group ConstraintGroup[Date] = constraints
			if err = group.Constrain(d); err != nil {
				d = Date{}
			}
		}
	}

	return d, err
}

/*
FromISOWeekDate returns an instance of [Date] alongside an error
following an attempt to interpret the ISO 8601 (year, week, weekday)
triple as a calendar day. Note that the ISO week-based year may
differ from the calendar year of the resulting Date near year
boundaries.
*/
func FromISOWeekDate(year, week int, weekday Weekday, constraints ...Constraint[Date]) (Date, error) {
	var d Date
	var err error

	switch {
	case year < MinYear || year > MaxYear:
		err = errorYearRange
	case week < 1 || week > WeeksInYear(year):
		err = errorWeekRange
	default:
		jan4 := weekdayOfOrdinal(year, 4)
		ordinal := week*7 + weekday.NumberFromMonday() - (jan4.NumberFromMonday() + 3)

		switch {
		case ordinal < 1:
			d, err = FromOrdinalDate(year-1, ordinal+DaysInYear(year-1))
		case ordinal > DaysInYear(year):
			d, err = FromOrdinalDate(year+1, ordinal-DaysInYear(year))
		default:
			d = fromOrdinalDateUnchecked(year, ordinal)
		}

		if len(constraints) > 0 && err == nil {
			var group ConstraintGroup[Date] = constraints
			if err = group.Constrain(d); err != nil {
				d = Date{}
			}
		}
	}

	return d, err
}

/*
FromJulianDay returns an instance of [Date] alongside an error
following an attempt to interpret jd as a Julian day number. A
[componentErr] is returned when the day falls outside the supported
year range.
*/
func FromJulianDay(jd int64) (Date, error) {
	year, ordinal := fromEpochDays(jd - julianDayOffset)
	if year < MinYear || year > MaxYear {
		return Date{}, errorYearRange
	}
	return fromOrdinalDateUnchecked(year, ordinal), nil
}

/*
Year returns the calendar year of the receiver instance.
*/
func (r Date) Year() int { return int(r.year) }

/*
Ordinal returns the one-based day-of-year ordinal of the receiver
instance.
*/
func (r Date) Ordinal() int { return int(r.ordinal) }

/*
Month returns the month of the receiver instance.
*/
func (r Date) Month() time.Month {
	m, _ := ordinalToCalendar(int(r.year), int(r.ordinal))
	return m
}

/*
Day returns the day of the month of the receiver instance.
*/
func (r Date) Day() int {
	_, d := ordinalToCalendar(int(r.year), int(r.ordinal))
	return d
}

/*
MonthDay returns the derived (month, day) pair of the receiver
instance.
*/
func (r Date) MonthDay() (time.Month, int) {
	return ordinalToCalendar(int(r.year), int(r.ordinal))
}

/*
OrdinalDate returns the (year, ordinal) pair of the receiver instance.
*/
func (r Date) OrdinalDate() (int, int) { return int(r.year), int(r.ordinal) }

/*
Weekday returns the day of the week of the receiver instance, derived
from the canonical (year, ordinal) representation.
*/
func (r Date) Weekday() Weekday {
	return weekdayOfOrdinal(int(r.year), int(r.ordinal))
}

/*
ISOWeek returns the ISO 8601 week-based year and week number of the
receiver instance. Week ranges over 1..=53 and the week-based year may
differ from [Date.Year] near year boundaries.
*/
func (r Date) ISOWeek() (year, week int) {
	year = int(r.year)
	week = (int(r.ordinal) + 10 - r.Weekday().NumberFromMonday()) / 7

	switch {
	case week < 1:
		year--
		week = WeeksInYear(year)
	case week > WeeksInYear(year):
		year++
		week = 1
	}

	return year, week
}

/*
JulianDay returns the Julian day number of the receiver instance.
*/
func (r Date) JulianDay() int64 {
	return toEpochDays(int(r.year), int(r.ordinal)) + julianDayOffset
}

/*
AddDays returns an instance of [Date] alongside an error, advanced (or
rewound, for negative input) by the given number of days, rolling over
year boundaries and leap days exactly.
*/
func (r Date) AddDays(days int64) (Date, error) {
	return FromJulianDay(r.JulianDay() + days)
}

/*
NextDay returns the [Date] immediately following the receiver instance
alongside an error raised at the end of the supported range.
*/
func (r Date) NextDay() (Date, error) {
	if int(r.ordinal) < DaysInYear(int(r.year)) {
		return Date{year: r.year, ordinal: r.ordinal + 1}, nil
	}
	return FromOrdinalDate(int(r.year)+1, 1)
}

/*
PreviousDay returns the [Date] immediately preceding the receiver
instance alongside an error raised at the start of the supported range.
*/
func (r Date) PreviousDay() (Date, error) {
	if r.ordinal > 1 {
		return Date{year: r.year, ordinal: r.ordinal - 1}, nil
	}
	if int(r.year)-1 < MinYear {
		return Date{}, errorYearRange
	}
	return fromOrdinalDateUnchecked(int(r.year)-1, DaysInYear(int(r.year)-1)), nil
}

/*
Add returns the receiver instance advanced by the whole-day portion of
d. Like the other non-checked operators in this package, Add panics
when the result would leave the supported year range; use [Date.AddDays]
when inputs are untrusted.
*/
func (r Date) Add(d Duration) Date {
	out, err := r.AddDays(d.WholeDays())
	if err != nil {
		panic(err)
	}
	return out
}

/*
Sub returns the signed [Duration] elapsed between other and the
receiver instance, measured in whole days.
*/
func (r Date) Sub(other Date) Duration {
	return Days(r.JulianDay() - other.JulianDay())
}

/*
Compare returns -1, 0 or 1 depending on whether the receiver instance
precedes, equals or follows other.
*/
func (r Date) Compare(other Date) int {
	switch {
	case r.year != other.year:
		if r.year < other.year {
			return -1
		}
		return 1
	case r.ordinal != other.ordinal:
		if r.ordinal < other.ordinal {
			return -1
		}
		return 1
	}
	return 0
}

/*
String returns the string representation of the receiver instance in
extended ISO 8601 form, e.g. "2021-09-18". Years outside 0..=9999 are
rendered with an explicit sign.
*/
func (r Date) String() string {
	m, d := ordinalToCalendar(int(r.year), int(r.ordinal))

	b := newStrBuilder()
	year := int(r.year)
	if year < 0 {
		b.WriteByte('-')
		year = -year
	} else if year > 9999 {
		b.WriteByte('+')
	}

	ys := itoa(year)
	for pad := 4 - len(ys); pad > 0; pad-- {
		b.WriteByte('0')
	}
	b.WriteString(ys)

	var md [6]byte
	md[0] = '-'
	put2(md[:], 1, int(m))
	md[3] = '-'
	put2(md[:], 4, d)
	b.Write(md[:])

	return b.String()
}
