package tempus

import (
	"fmt"
	"testing"
)

func TestFromUnixTimestamp(t *testing.T) {
	for _, tc := range []struct {
		ts   int64
		want string
	}{
		{0, "1970-01-01 0:00"},
		{1_546_300_800, "2019-01-01 0:00"},
		{-1, "1969-12-31 23:59:59"},
		{86_400, "1970-01-02 0:00"},
		{-86_401, "1969-12-30 23:59:59"},
	} {
		odt, err := FromUnixTimestamp(tc.ts)
		if err != nil {
			t.Fatalf("%s failed: %d: %v", t.Name(), tc.ts, err)
		}
		if !odt.Offset().IsUTC() {
			t.Fatalf("%s failed: %d decoded with offset %s", t.Name(), tc.ts, odt.Offset())
		}
		if odt.UTCDateTime() != MustDateTime(tc.want) {
			t.Fatalf("%s failed: %d = %s, want %s", t.Name(), tc.ts, odt.UTCDateTime(), tc.want)
		}
		if back := odt.UnixTimestamp(); back != tc.ts {
			t.Fatalf("%s failed: %d round-tripped to %d", t.Name(), tc.ts, back)
		}
	}

	if _, err := FromUnixTimestamp(1 << 62); err == nil {
		t.Fatalf("%s failed: expected range error", t.Name())
	} else if !IsConversionError(err) {
		t.Fatalf("%s failed: wrong error class: %v", t.Name(), err)
	}
}

func TestUnixTimestampTruncatesSubsecond(t *testing.T) {
	odt := MustDateTime("2019-01-01 0:00:00.999999999").AssumeUTC()
	if got := odt.UnixTimestamp(); got != 1_546_300_800 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
}

func TestUnixTimestampIgnoresDisplayOffset(t *testing.T) {
	odt, err := FromUnixTimestamp(1_546_300_800)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	shifted := odt.ToOffset(MustOffset("-7:00"))
	if got := shifted.UnixTimestamp(); got != 1_546_300_800 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
}

func TestOffsetDateTimeToOffset(t *testing.T) {
	odt := MustOffsetDateTime("2019-01-01 0:00 UTC")
	west := odt.ToOffset(MustOffset("-7:00"))

	// Only the rendering moves, never the instant.
	if !west.Equal(odt) {
		t.Fatalf("%s failed: instant moved", t.Name())
	}
	if west.Local() != MustDateTime("2018-12-31 17:00") {
		t.Fatalf("%s failed: got %s", t.Name(), west.Local())
	}
	if west.Year() != 2018 || west.Day() != 31 {
		t.Fatalf("%s failed: local accessors", t.Name())
	}
	if west.UTCDateTime() != odt.UTCDateTime() {
		t.Fatalf("%s failed: utc rendering moved", t.Name())
	}
	if back := west.ToUTC(); back != odt {
		t.Fatalf("%s failed: got %s", t.Name(), back)
	}
}

func TestOffsetDateTimeEqualAcrossOffsets(t *testing.T) {
	a := MustOffsetDateTime("2019-01-01 2:00 +2:00")
	b := MustOffsetDateTime("2019-01-01 0:00 UTC")
	c := MustOffsetDateTime("2018-12-31 17:00 -7:00")

	if !a.Equal(b) || !b.Equal(c) {
		t.Fatalf("%s failed", t.Name())
	}
	if a.Compare(b) != 0 {
		t.Fatalf("%s failed", t.Name())
	}

	// Field-wise identity is deliberately stricter than Equal.
	if a == b {
		t.Fatalf("%s failed: distinct renderings compared identical", t.Name())
	}
}

func TestOffsetDateTimeAddSub(t *testing.T) {
	odt := MustOffsetDateTime("2019-01-01 0:00 +2:00")
	later := odt.Add(Hours(3))
	if later.Offset() != MustOffset("+2:00") {
		t.Fatalf("%s failed: offset not preserved", t.Name())
	}
	if got := later.Sub(odt); got != Hours(3) {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
	if got := odt.Sub(later); got != Hours(-3) {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
}

func TestOffsetDateTimeString(t *testing.T) {
	odt := MustOffsetDateTime("2019-01-01 0:00 UTC")
	if got := odt.String(); got != "2019-01-01 00:00:00 +00:00" {
		t.Fatalf("%s failed: got %q", t.Name(), got)
	}
	if got := odt.ToOffset(MustOffset("-9:30")).String(); got != "2018-12-31 14:30:00 -09:30" {
		t.Fatalf("%s failed: got %q", t.Name(), got)
	}
}

func ExampleFromUnixTimestamp() {
	odt, _ := FromUnixTimestamp(1_546_300_800)
	fmt.Println(odt)
	// Output: 2019-01-01 00:00:00 +00:00
}
