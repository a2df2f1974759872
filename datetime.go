package tempus

/*
datetime.go implements the [DateTime] type: the plain composition of a
[Date] and a [Time], carrying no offset. Duration arithmetic carries
exactly between time-of-day overflow and date rollover.
*/

import "time"

/*
DateTime is a calendar day paired with a clock time of day. It denotes
no particular instant until interpreted within an offset; see
[DateTime.AssumeOffset].
*/
type DateTime struct {
	date Date
	time Time
}

/*
NewDateTime returns an instance of [DateTime] composed of the given
[Date] and [Time]. The components carry their own invariants; the pair
itself adds none.
*/
func NewDateTime(date Date, tod Time) DateTime {
	return DateTime{date: date, time: tod}
}

/*
Date returns the calendar component of the receiver instance.
*/
func (r DateTime) Date() Date { return r.date }

/*
Time returns the clock component of the receiver instance.
*/
func (r DateTime) Time() Time { return r.time }

/*
Year returns the calendar year of the receiver instance.
*/
func (r DateTime) Year() int { return r.date.Year() }

/*
Month returns the month of the receiver instance.
*/
func (r DateTime) Month() time.Month { return r.date.Month() }

/*
Day returns the day of the month of the receiver instance.
*/
func (r DateTime) Day() int { return r.date.Day() }

/*
Ordinal returns the day-of-year ordinal of the receiver instance.
*/
func (r DateTime) Ordinal() int { return r.date.Ordinal() }

/*
Weekday returns the day of the week of the receiver instance.
*/
func (r DateTime) Weekday() Weekday { return r.date.Weekday() }

/*
Hour returns the hour of the receiver instance.
*/
func (r DateTime) Hour() int { return r.time.Hour() }

/*
Minute returns the minute of the receiver instance.
*/
func (r DateTime) Minute() int { return r.time.Minute() }

/*
Second returns the second of the receiver instance.
*/
func (r DateTime) Second() int { return r.time.Second() }

/*
Nanosecond returns the nanosecond of the receiver instance.
*/
func (r DateTime) Nanosecond() int { return r.time.Nanosecond() }

/*
Add returns the receiver instance advanced by d, with any crossing of
midnight carried into the [Date] component. Like the other non-checked
operators it panics when the result would leave the supported year
range; use [DateTime.CheckedAdd] when inputs are untrusted.
*/
func (r DateTime) Add(d Duration) DateTime {
	out, err := r.CheckedAdd(d)
	if err != nil {
		panic(err)
	}
	return out
}

/*
Sub returns the receiver instance rewound by d, carrying as
[DateTime.Add] does.
*/
func (r DateTime) Sub(d Duration) DateTime {
	return r.Add(d.Neg())
}

/*
CheckedAdd returns the receiver instance advanced by d alongside an
error raised when the resulting date would leave the supported year
range.
*/
func (r DateTime) CheckedAdd(d Duration) (DateTime, error) {
	tod, carry := r.time.adjustingAdd(d)
	date, err := r.date.AddDays(carry)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, time: tod}, nil
}

/*
SubDateTime returns the signed [Duration] elapsed between other and
the receiver instance.
*/
func (r DateTime) SubDateTime(other DateTime) Duration {
	days := r.date.JulianDay() - other.date.JulianDay()
	nanos := r.time.nanosecondOfDay() - other.time.nanosecondOfDay()
	return New(days*secondsPerDay+nanos/nanosPerSecond, nanos%nanosPerSecond)
}

/*
Compare returns -1, 0 or 1 depending on whether the receiver instance
precedes, equals or follows other.
*/
func (r DateTime) Compare(other DateTime) int {
	if c := r.date.Compare(other.date); c != 0 {
		return c
	}
	return r.time.Compare(other.time)
}

/*
AssumeOffset interprets the receiver instance as a local rendering
within the given [UtcOffset], producing the [OffsetDateTime] of the
corresponding instant.
*/
func (r DateTime) AssumeOffset(offset UtcOffset) OffsetDateTime {
	return OffsetDateTime{
		utc:    r.Sub(offset.ToDuration()),
		offset: offset,
	}
}

/*
AssumeUTC interprets the receiver instance as already expressed in
UTC, producing the corresponding [OffsetDateTime].
*/
func (r DateTime) AssumeUTC() OffsetDateTime {
	return r.AssumeOffset(UTC)
}

/*
String returns the string representation of the receiver instance,
e.g. "2021-09-18 15:32:01".
*/
func (r DateTime) String() string {
	return r.date.String() + " " + r.time.String()
}
