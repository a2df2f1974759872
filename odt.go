package tempus

/*
odt.go implements the [OffsetDateTime] type, the only absolute-instant
abstraction in this package: a [DateTime] anchored to UTC plus a
[UtcOffset] carried purely for display. Changing the offset never
moves the instant.
*/

import "time"

/*
OffsetDateTime is an absolute instant paired with the fixed offset in
which it is locally rendered. Equality and ordering compare the
underlying instant, never the display offset; two values rendering the
same instant through different offsets are equal under
[OffsetDateTime.Equal]. The == operator compares field-wise and is not
instant equality.

The zero value of OffsetDateTime is midnight of January 1, year zero,
in UTC.
*/
type OffsetDateTime struct {
	utc    DateTime
	offset UtcOffset
}

/*
FromUnixTimestamp returns an instance of [OffsetDateTime] alongside an
error following an attempt to interpret ts as a count of whole seconds
since the Unix epoch, under UTC. A [conversionErr] is returned when
the instant lies outside the supported year range.
*/
func FromUnixTimestamp(ts int64) (OffsetDateTime, error) {
	days := floorDiv(ts, secondsPerDay)
	rem := floorMod(ts, secondsPerDay)

	year, ordinal := fromEpochDays(days)
	if year < MinYear || year > MaxYear {
		return OffsetDateTime{}, errorTimestampRange
	}

	return OffsetDateTime{
		utc: DateTime{
			date: fromOrdinalDateUnchecked(year, ordinal),
			time: fromNanosecondOfDay(rem * nanosPerSecond),
		},
	}, nil
}

/*
UnixTimestamp returns the count of whole seconds since the Unix epoch
denoted by the receiver instance. The count describes the instant
under UTC regardless of the stored display offset; sub-second
precision is truncated.
*/
func (r OffsetDateTime) UnixTimestamp() int64 {
	days := r.utc.date.JulianDay() - julianDayOffset
	return days*secondsPerDay + r.utc.time.nanosecondOfDay()/nanosPerSecond
}

/*
ToOffset returns the receiver instance rendered through the given
[UtcOffset]. Only the display fields change; the underlying instant is
untouched.
*/
func (r OffsetDateTime) ToOffset(offset UtcOffset) OffsetDateTime {
	return OffsetDateTime{utc: r.utc, offset: offset}
}

/*
ToUTC returns the receiver instance rendered through UTC.
*/
func (r OffsetDateTime) ToUTC() OffsetDateTime { return r.ToOffset(UTC) }

/*
Offset returns the display offset of the receiver instance.
*/
func (r OffsetDateTime) Offset() UtcOffset { return r.offset }

/*
UTCDateTime returns the instant of the receiver instance expressed as
an unzoned [DateTime] in UTC.
*/
func (r OffsetDateTime) UTCDateTime() DateTime { return r.utc }

/*
Local returns the instant of the receiver instance expressed as an
unzoned [DateTime] within the display offset.
*/
func (r OffsetDateTime) Local() DateTime {
	return r.utc.Add(r.offset.ToDuration())
}

/*
Date returns the calendar component of the receiver instance, rendered
through the display offset.
*/
func (r OffsetDateTime) Date() Date { return r.Local().Date() }

/*
Time returns the clock component of the receiver instance, rendered
through the display offset.
*/
func (r OffsetDateTime) Time() Time { return r.Local().Time() }

/*
Year returns the calendar year of the receiver instance, rendered
through the display offset.
*/
func (r OffsetDateTime) Year() int { return r.Local().Year() }

/*
Month returns the month of the receiver instance, rendered through the
display offset.
*/
func (r OffsetDateTime) Month() time.Month { return r.Local().Month() }

/*
Day returns the day of the month of the receiver instance, rendered
through the display offset.
*/
func (r OffsetDateTime) Day() int { return r.Local().Day() }

/*
Weekday returns the day of the week of the receiver instance, rendered
through the display offset.
*/
func (r OffsetDateTime) Weekday() Weekday { return r.Local().Weekday() }

/*
Add returns the receiver instance advanced by d. The display offset is
preserved.
*/
func (r OffsetDateTime) Add(d Duration) OffsetDateTime {
	return OffsetDateTime{utc: r.utc.Add(d), offset: r.offset}
}

/*
Sub returns the signed [Duration] elapsed between other and the
receiver instance.
*/
func (r OffsetDateTime) Sub(other OffsetDateTime) Duration {
	return r.utc.SubDateTime(other.utc)
}

/*
Equal returns a boolean value indicative of the receiver instance and
other denoting the same instant, irrespective of their display
offsets.
*/
func (r OffsetDateTime) Equal(other OffsetDateTime) bool {
	return r.Compare(other) == 0
}

/*
Compare returns -1, 0 or 1 depending on whether the instant of the
receiver instance precedes, equals or follows that of other.
*/
func (r OffsetDateTime) Compare(other OffsetDateTime) int {
	return r.utc.Compare(other.utc)
}

/*
String returns the string representation of the receiver instance:
the local rendering followed by its offset, e.g.
"2019-01-01 00:00:00 +00:00".
*/
func (r OffsetDateTime) String() string {
	return r.Local().String() + " " + r.offset.String()
}
