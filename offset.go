package tempus

/*
offset.go implements the signed [UtcOffset] type: a fixed displacement
from UTC in hours, minutes and seconds. The three fields obey the same
sign-consistency discipline as [Duration], generalized across three
fields with hours taking precedence over minutes, and minutes over
seconds.
*/

/*
UtcOffset is a fixed, caller-supplied displacement from UTC. It never
denotes an IANA zone. The zero value of UtcOffset is UTC itself.
*/
type UtcOffset struct {
	hours   int8
	minutes int8
	seconds int8
}

/*
UTC is the zero [UtcOffset].
*/
var UTC = UtcOffset{}

/*
OffsetHMS returns an instance of [UtcOffset] alongside an error
following an attempt to interpret the (hours, minutes, seconds) triple
as a displacement from UTC.

Magnitudes are validated against -23..=23 and -59..=59. Signs are then
corrected per field precedence: a non-zero hour dictates the sign of
minutes and seconds; with zero hours, a non-zero minute dictates the
sign of seconds.
*/
func OffsetHMS(hours, minutes, seconds int, constraints ...Constraint[UtcOffset]) (UtcOffset, error) {
	var o UtcOffset
	var err error

	switch {
	case hours < -23 || hours > 23:
		err = errorOffsetHours
	case minutes < -59 || minutes > 59:
		err = errorOffsetMinutes
	case seconds < -59 || seconds > 59:
		err = errorOffsetSeconds
	default:
		if hours != 0 {
			minutes = matchSign(minutes, hours)
			seconds = matchSign(seconds, hours)
		} else if minutes != 0 {
			seconds = matchSign(seconds, minutes)
		}
		o = UtcOffset{int8(hours), int8(minutes), int8(seconds)}
		if len(constraints) > 0 {
			var group ConstraintGroup[UtcOffset] = constraints
			if err = group.Constrain(o); err != nil {
				o = UtcOffset{}
			}
		}
	}

	return o, err
}

// matchSign coerces v to carry the sign of lead.
func matchSign(v, lead int) int {
	if (lead > 0 && v < 0) || (lead < 0 && v > 0) {
		return -v
	}
	return v
}

/*
OffsetSeconds returns an instance of [UtcOffset] alongside an error
following an attempt to interpret a whole-second displacement from
UTC. The magnitude must be strictly less than 24 hours.
*/
func OffsetSeconds(seconds int, constraints ...Constraint[UtcOffset]) (UtcOffset, error) {
	if seconds <= -86_400 || seconds >= 86_400 {
		return UtcOffset{}, errorOffsetRange
	}
	return OffsetHMS(seconds/3_600, seconds/60%60, seconds%60, constraints...)
}

/*
AsHMS returns the (hours, minutes, seconds) triple of the receiver
instance. The three values share a sign or are zero.
*/
func (r UtcOffset) AsHMS() (int, int, int) {
	return int(r.hours), int(r.minutes), int(r.seconds)
}

/*
WholeHours returns the hour component of the receiver instance.
*/
func (r UtcOffset) WholeHours() int { return int(r.hours) }

/*
WholeSeconds returns the receiver instance as a single signed count of
seconds from UTC.
*/
func (r UtcOffset) WholeSeconds() int {
	return int(r.hours)*3_600 + int(r.minutes)*60 + int(r.seconds)
}

/*
IsUTC returns a boolean value indicative of the receiver instance
being the zero displacement.
*/
func (r UtcOffset) IsUTC() bool {
	return r.hours == 0 && r.minutes == 0 && r.seconds == 0
}

/*
IsNegative returns a boolean value indicative of the receiver instance
lying west of UTC.
*/
func (r UtcOffset) IsNegative() bool {
	return r.hours < 0 || r.minutes < 0 || r.seconds < 0
}

/*
IsPositive returns a boolean value indicative of the receiver instance
lying east of UTC.
*/
func (r UtcOffset) IsPositive() bool {
	return r.hours > 0 || r.minutes > 0 || r.seconds > 0
}

/*
ToDuration returns the receiver instance as a [Duration].
*/
func (r UtcOffset) ToDuration() Duration {
	return Seconds(int64(r.WholeSeconds()))
}

/*
String returns the string representation of the receiver instance,
e.g. "+02:00", "-09:30", "+05:45:30". A seconds component is rendered
only when non-zero; UTC renders as "+00:00".
*/
func (r UtcOffset) String() string {
	var b [9]byte
	b[0] = '+'
	if r.IsNegative() {
		b[0] = '-'
	}

	abs := func(v int8) int {
		if v < 0 {
			return int(-v)
		}
		return int(v)
	}

	put2(b[:], 1, abs(r.hours))
	b[3] = ':'
	put2(b[:], 4, abs(r.minutes))
	if r.seconds == 0 {
		return string(b[:6])
	}
	b[6] = ':'
	put2(b[:], 7, abs(r.seconds))
	return string(b[:])
}
