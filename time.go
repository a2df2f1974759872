package tempus

/*
time.go implements the [Time] type: a wall-clock time of day with
nanosecond precision and no attached date or offset. Each field is
stored directly within its fixed range; no carry between fields is
ever stored.
*/

/*
Time is a clock time of day. The zero value of Time is midnight.
*/
type Time struct {
	hour       uint8
	minute     uint8
	second     uint8
	nanosecond uint32
}

// nanosecond-of-day bounds; 86_400 * 1e9 fits comfortably in 64 bits.
const (
	nanosPerSecond int64 = 1_000_000_000
	nanosPerDay    int64 = 86_400 * nanosPerSecond
	secondsPerDay  int64 = 86_400
)

/*
Midnight is the [Time] at the start of the day, 00:00:00.0.
*/
var Midnight = Time{}

/*
FromHMS returns an instance of [Time] alongside an error following an
attempt to interpret the (hour, minute, second) triple as a clock
time. Any variadic [Constraint] instances are evaluated against the
assembled Time.
*/
func FromHMS(hour, minute, second int, constraints ...Constraint[Time]) (Time, error) {
	return FromHMSNano(hour, minute, second, 0, constraints...)
}

/*
FromHMSMilli returns an instance of [Time] alongside an error, as
[FromHMS] with an additional millisecond component in 0..=999.
*/
func FromHMSMilli(hour, minute, second, millisecond int, constraints ...Constraint[Time]) (Time, error) {
	if millisecond < 0 || millisecond > 999 {
		return Time{}, errorNanosecondRange
	}
	return FromHMSNano(hour, minute, second, millisecond*1_000_000, constraints...)
}

/*
FromHMSMicro returns an instance of [Time] alongside an error, as
[FromHMS] with an additional microsecond component in 0..=999_999.
*/
func FromHMSMicro(hour, minute, second, microsecond int, constraints ...Constraint[Time]) (Time, error) {
	if microsecond < 0 || microsecond > 999_999 {
		return Time{}, errorNanosecondRange
	}
	return FromHMSNano(hour, minute, second, microsecond*1_000, constraints...)
}

/*
FromHMSNano returns an instance of [Time] alongside an error, as
[FromHMS] with an additional nanosecond component in 0..=999_999_999.
*/
func FromHMSNano(hour, minute, second, nanosecond int, constraints ...Constraint[Time]) (Time, error) {
	var t Time
	var err error

	switch {
	case hour < 0 || hour > 23:
		err = errorHourRange
	case minute < 0 || minute > 59:
		err = errorMinuteRange
	case second < 0 || second > 59:
		err = errorSecondRange
	case nanosecond < 0 || nanosecond > 999_999_999:
		err = errorNanosecondRange
	default:
		t = Time{uint8(hour), uint8(minute), uint8(second), uint32(nanosecond)}
		if len(constraints) > 0 {
			var group ConstraintGroup[Time] = constraints
			if err = group.Constrain(t); err != nil {
				t = Time{}
			}
		}
	}

	return t, err
}

/*
Hour returns the hour of the receiver instance in 0..=23.
*/
func (r Time) Hour() int { return int(r.hour) }

/*
Minute returns the minute of the receiver instance in 0..=59.
*/
func (r Time) Minute() int { return int(r.minute) }

/*
Second returns the second of the receiver instance in 0..=59.
*/
func (r Time) Second() int { return int(r.second) }

/*
Nanosecond returns the nanosecond of the receiver instance in
0..=999_999_999.
*/
func (r Time) Nanosecond() int { return int(r.nanosecond) }

/*
Millisecond returns the millisecond of the receiver instance in
0..=999.
*/
func (r Time) Millisecond() int { return int(r.nanosecond / 1_000_000) }

/*
Microsecond returns the microsecond of the receiver instance in
0..=999_999.
*/
func (r Time) Microsecond() int { return int(r.nanosecond / 1_000) }

/*
AsHMS returns the (hour, minute, second) triple of the receiver
instance.
*/
func (r Time) AsHMS() (int, int, int) {
	return int(r.hour), int(r.minute), int(r.second)
}

/*
AsHMSNano returns the (hour, minute, second, nanosecond) quadruple of
the receiver instance.
*/
func (r Time) AsHMSNano() (int, int, int, int) {
	return int(r.hour), int(r.minute), int(r.second), int(r.nanosecond)
}

// nanosecondOfDay converts the receiver to a single linear count.
// The conversion is exact in both directions.
func (r Time) nanosecondOfDay() int64 {
	return (int64(r.hour)*3600+int64(r.minute)*60+int64(r.second))*nanosPerSecond +
		int64(r.nanosecond)
}

// fromNanosecondOfDay is the inverse of nanosecondOfDay; n is presumed
// within 0..nanosPerDay-1.
func fromNanosecondOfDay(n int64) Time {
	secs := n / nanosPerSecond
	return Time{
		hour:       uint8(secs / 3600),
		minute:     uint8(secs / 60 % 60),
		second:     uint8(secs % 60),
		nanosecond: uint32(n % nanosPerSecond),
	}
}

// adjustingAdd adds d to the receiver, wrapping at midnight, and
// reports the number of calendar days carried (possibly negative).
func (r Time) adjustingAdd(d Duration) (Time, int64) {
	days := d.seconds / secondsPerDay
	n := r.nanosecondOfDay() +
		(d.seconds%secondsPerDay)*nanosPerSecond + int64(d.nanoseconds)

	if n < 0 {
		n += nanosPerDay
		days--
	} else if n >= nanosPerDay {
		n -= nanosPerDay
		days++
	}

	return fromNanosecondOfDay(n), days
}

/*
Compare returns -1, 0 or 1 depending on whether the receiver instance
precedes, equals or follows other within the day.
*/
func (r Time) Compare(other Time) int {
	a, b := r.nanosecondOfDay(), other.nanosecondOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

/*
String returns the string representation of the receiver instance,
e.g. "15:32:01" or "15:32:01.5", with trailing fractional zeroes
elided.
*/
func (r Time) String() string {
	var b [8]byte
	put2(b[:], 0, int(r.hour))
	b[2] = ':'
	put2(b[:], 3, int(r.minute))
	b[5] = ':'
	put2(b[:], 6, int(r.second))

	if r.nanosecond == 0 {
		return string(b[:])
	}

	var frac [10]byte
	frac[0] = '.'
	n := r.nanosecond
	for i := 9; i > 0; i-- {
		frac[i] = byte('0' + n%10)
		n /= 10
	}
	out := string(b[:]) + string(frac[:])
	for out[len(out)-1] == '0' {
		out = out[:len(out)-1]
	}
	return out
}
