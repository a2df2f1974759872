/*
Package quick provides gopter generators for every tempus core type.

Each generator yields uniformly distributed valid instances across the
type's full legal range, and each carries a finite, restartable shrink
sequence which only ever yields other valid instances, converging
toward a canonical minimal value: the zero duration, midnight, the
Monday weekday, and so on. A shrink step that would land on an invalid
value re-derives the nearest valid one instead of emitting it.
*/
package quick

import (
	"github.com/leanovate/gopter"

	"github.com/go-tempus/tempus"
)

/*
Date returns a generator of uniformly distributed [tempus.Date]
instances: the year uniform across the supported range, the ordinal
uniform in 1..=DaysInYear of that year.
*/
func Date() gopter.Gen {
	return func(p *gopter.GenParameters) *gopter.GenResult {
		year := int(p.Rng.Int63n(tempus.MaxYear-tempus.MinYear+1)) + tempus.MinYear
		ordinal := int(p.Rng.Int63n(int64(tempus.DaysInYear(year)))) + 1
		d, _ := tempus.FromOrdinalDate(year, ordinal)
		return gopter.NewGenResult(d, DateShrinker)
	}
}

/*
DateShrinker shrinks a [tempus.Date] by halving its year toward zero
and its ordinal toward one. An ordinal invalidated by a leap-year
change of the shrunken year is re-derived to that year's final day.
*/
func DateShrinker(v interface{}) gopter.Shrink {
	d := v.(tempus.Date)
	year, ordinal := d.OrdinalDate()

	var out []interface{}
	for _, y := range halvesInt(year, 0) {
		o := ordinal
		if max := tempus.DaysInYear(y); o > max {
			o = max
		}
		if c, err := tempus.FromOrdinalDate(y, o); err == nil {
			out = append(out, c)
		}
	}
	for _, o := range halvesInt(ordinal, 1) {
		if c, err := tempus.FromOrdinalDate(year, o); err == nil {
			out = append(out, c)
		}
	}

	return shrinkOf(out)
}

/*
Time returns a generator of uniformly distributed [tempus.Time]
instances.
*/
func Time() gopter.Gen {
	return func(p *gopter.GenParameters) *gopter.GenResult {
		t, _ := tempus.FromHMSNano(
			int(p.Rng.Int63n(24)),
			int(p.Rng.Int63n(60)),
			int(p.Rng.Int63n(60)),
			int(p.Rng.Int63n(1_000_000_000)),
		)
		return gopter.NewGenResult(t, TimeShrinker)
	}
}

/*
TimeShrinker shrinks a [tempus.Time] by halving each field toward
zero, converging on midnight.
*/
func TimeShrinker(v interface{}) gopter.Shrink {
	t := v.(tempus.Time)
	hour, minute, second, nano := t.AsHMSNano()

	var out []interface{}
	emit := func(h, m, s, n int) {
		if c, err := tempus.FromHMSNano(h, m, s, n); err == nil {
			out = append(out, c)
		}
	}
	for _, h := range halvesInt(hour, 0) {
		emit(h, minute, second, nano)
	}
	for _, m := range halvesInt(minute, 0) {
		emit(hour, m, second, nano)
	}
	for _, s := range halvesInt(second, 0) {
		emit(hour, minute, s, nano)
	}
	for _, n := range halvesInt(nano, 0) {
		emit(hour, minute, second, n)
	}

	return shrinkOf(out)
}

/*
Duration returns a generator of [tempus.Duration] instances spanning
the full signed seconds range, the nanosecond component coerced to the
sign of the seconds component. A zero-second span may carry either
nanosecond sign.
*/
func Duration() gopter.Gen {
	return func(p *gopter.GenParameters) *gopter.GenResult {
		seconds := int64(p.Rng.Uint64())
		nanos := p.Rng.Int63n(1_000_000_000)

		if seconds < 0 || (seconds == 0 && p.Rng.Int63n(2) == 1) {
			nanos = -nanos
		}

		return gopter.NewGenResult(tempus.New(seconds, nanos), DurationShrinker)
	}
}

/*
DurationShrinker shrinks a [tempus.Duration] by halving its seconds
and nanosecond components toward the zero duration, re-coercing sign
consistency at every step.
*/
func DurationShrinker(v interface{}) gopter.Shrink {
	d := v.(tempus.Duration)
	seconds := d.WholeSeconds()
	nanos := int64(d.SubsecNanoseconds())

	var out []interface{}
	for _, s := range halvesInt64(seconds, 0) {
		n := nanos
		if (s > 0 && n < 0) || (s < 0 && n > 0) {
			n = -n
		}
		out = append(out, tempus.New(s, n))
	}
	for _, n := range halvesInt64(nanos, 0) {
		out = append(out, tempus.New(seconds, n))
	}

	return shrinkOf(out)
}

/*
UtcOffset returns a generator of [tempus.UtcOffset] instances, hours
uniform in -23..=23 and the remaining fields coerced to a consistent
sign by the constructor.
*/
func UtcOffset() gopter.Gen {
	return func(p *gopter.GenParameters) *gopter.GenResult {
		hours := int(p.Rng.Int63n(47)) - 23
		minutes := int(p.Rng.Int63n(60))
		seconds := int(p.Rng.Int63n(60))

		if hours < 0 || (hours == 0 && p.Rng.Int63n(2) == 1) {
			minutes, seconds = -minutes, -seconds
		}

		o, _ := tempus.OffsetHMS(hours, minutes, seconds)
		return gopter.NewGenResult(o, UtcOffsetShrinker)
	}
}

/*
UtcOffsetShrinker shrinks a [tempus.UtcOffset] by halving each field
toward UTC; the constructor re-coerces sign consistency under the
hours-minutes-seconds precedence.
*/
func UtcOffsetShrinker(v interface{}) gopter.Shrink {
	o := v.(tempus.UtcOffset)
	hours, minutes, seconds := o.AsHMS()

	var out []interface{}
	emit := func(h, m, s int) {
		if c, err := tempus.OffsetHMS(h, m, s); err == nil {
			out = append(out, c)
		}
	}
	for _, h := range halvesInt(hours, 0) {
		emit(h, minutes, seconds)
	}
	for _, m := range halvesInt(minutes, 0) {
		emit(hours, m, seconds)
	}
	for _, s := range halvesInt(seconds, 0) {
		emit(hours, minutes, s)
	}

	return shrinkOf(out)
}

/*
DateTime returns a generator of [tempus.DateTime] instances composed
of independently generated dates and times.
*/
func DateTime() gopter.Gen {
	dateGen, timeGen := Date(), Time()
	return func(p *gopter.GenParameters) *gopter.GenResult {
		d := dateGen(p).Result.(tempus.Date)
		t := timeGen(p).Result.(tempus.Time)
		return gopter.NewGenResult(tempus.NewDateTime(d, t), DateTimeShrinker)
	}
}

/*
DateTimeShrinker shrinks each component of a [tempus.DateTime]
independently, holding the other fixed.
*/
func DateTimeShrinker(v interface{}) gopter.Shrink {
	dt := v.(tempus.DateTime)

	var out []interface{}
	dshr := DateShrinker(dt.Date())
	for d, ok := dshr(); ok; d, ok = dshr() {
		out = append(out, tempus.NewDateTime(d.(tempus.Date), dt.Time()))
	}
	tshr := TimeShrinker(dt.Time())
	for t, ok := tshr(); ok; t, ok = tshr() {
		out = append(out, tempus.NewDateTime(dt.Date(), t.(tempus.Time)))
	}

	return shrinkOf(out)
}

/*
OffsetDateTime returns a generator of [tempus.OffsetDateTime]
instances: a generated local [tempus.DateTime] assumed within a
generated [tempus.UtcOffset].
*/
func OffsetDateTime() gopter.Gen {
	dtGen, offGen := DateTime(), UtcOffset()
	return func(p *gopter.GenParameters) *gopter.GenResult {
		dt := dtGen(p).Result.(tempus.DateTime)
		o := offGen(p).Result.(tempus.UtcOffset)
		if odt, ok := assume(dt, o); ok {
			return gopter.NewGenResult(odt, OffsetDateTimeShrinker)
		}
		// Offset pushed the instant past the supported range;
		// re-derive at the same local datetime in UTC.
		return gopter.NewGenResult(dt.AssumeUTC(), OffsetDateTimeShrinker)
	}
}

/*
OffsetDateTimeShrinker shrinks the local rendering and the offset of a
[tempus.OffsetDateTime] independently, skipping any combination whose
instant would leave the supported range.
*/
func OffsetDateTimeShrinker(v interface{}) gopter.Shrink {
	odt := v.(tempus.OffsetDateTime)
	local, offset := odt.Local(), odt.Offset()

	var out []interface{}
	dtshr := DateTimeShrinker(local)
	for dt, ok := dtshr(); ok; dt, ok = dtshr() {
		if c, valid := assume(dt.(tempus.DateTime), offset); valid {
			out = append(out, c)
		}
	}
	oshr := UtcOffsetShrinker(offset)
	for o, ok := oshr(); ok; o, ok = oshr() {
		if c, valid := assume(local, o.(tempus.UtcOffset)); valid {
			out = append(out, c)
		}
	}

	return shrinkOf(out)
}

// assume converts without panicking near the supported range edges.
func assume(dt tempus.DateTime, o tempus.UtcOffset) (odt tempus.OffsetDateTime, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return dt.AssumeOffset(o), true
}

/*
Weekday returns a generator of uniformly distributed [tempus.Weekday]
values.
*/
func Weekday() gopter.Gen {
	return func(p *gopter.GenParameters) *gopter.GenResult {
		wd := tempus.Weekday(p.Rng.Int63n(7))
		return gopter.NewGenResult(wd, WeekdayShrinker)
	}
}

/*
WeekdayShrinker shrinks any [tempus.Weekday] to its predecessor;
[tempus.Monday] is the canonical minimum and shrinks to nothing.
*/
func WeekdayShrinker(v interface{}) gopter.Shrink {
	wd := v.(tempus.Weekday)
	if wd == tempus.Monday {
		return shrinkOf(nil)
	}
	return shrinkOf([]interface{}{wd.Previous()})
}

// shrinkOf returns a finite Shrink over values; the sequence restarts
// on every Shrinker invocation.
func shrinkOf(values []interface{}) gopter.Shrink {
	i := 0
	return func() (interface{}, bool) {
		if i >= len(values) {
			return nil, false
		}
		v := values[i]
		i++
		return v, true
	}
}

// halvesInt yields successive halvings of v toward floor, excluding v
// itself and including floor exactly once.
func halvesInt(v, floor int) []int {
	var out []int
	for c := v; c != floor; {
		c = floor + (c-floor)/2
		out = append(out, c)
	}
	return out
}

func halvesInt64(v, floor int64) []int64 {
	var out []int64
	for c := v; c != floor; {
		c = floor + (c-floor)/2
		out = append(out, c)
	}
	return out
}
