package tempus

import (
	"fmt"
	"testing"
	"time"
)

func TestDurationNew(t *testing.T) {
	for _, tc := range []struct {
		seconds, nanos int64
		wantSecs       int64
		wantNanos      int32
	}{
		{1, 0, 1, 0},
		{0, 1_500_000_000, 1, 500_000_000},
		{0, -1_500_000_000, -1, -500_000_000},
		{1, -1, 0, 999_999_999},
		{-1, 1, 0, -999_999_999},
		{1, -1_000_000_000, 0, 0},
		{-2, 2_500_000_000, 0, 500_000_000},
	} {
		got := New(tc.seconds, tc.nanos)
		if got.WholeSeconds() != tc.wantSecs || got.SubsecNanoseconds() != tc.wantNanos {
			t.Fatalf("%s failed: New(%d, %d) = (%d, %d), want (%d, %d)",
				t.Name(), tc.seconds, tc.nanos,
				got.WholeSeconds(), got.SubsecNanoseconds(),
				tc.wantSecs, tc.wantNanos)
		}
	}
}

func TestDurationSignConsistency(t *testing.T) {
	for _, d := range []Duration{
		New(5, 300),
		New(-5, -300),
		New(3, -7_200_000_000),
		New(-3, 7_200_000_000),
		New(0, -1),
	} {
		s, n := d.WholeSeconds(), d.SubsecNanoseconds()
		if (s > 0 && n < 0) || (s < 0 && n > 0) {
			t.Fatalf("%s failed: inconsistent sign (%d, %d)", t.Name(), s, n)
		}
	}
}

func TestDurationUnits(t *testing.T) {
	if got := Weeks(1).WholeSeconds(); got != 604_800 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
	if got := Days(2).WholeHours(); got != 48 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
	if got := Hours(-3).WholeMinutes(); got != -180 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
	if got := Milliseconds(1_500).SubsecNanoseconds(); got != 500_000_000 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
	if got := Microseconds(-2_500_000).WholeSeconds(); got != -2 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
	if got := Nanoseconds(-1).SubsecNanoseconds(); got != -1 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
}

func TestDurationSign(t *testing.T) {
	if !ZeroDuration.IsZero() || ZeroDuration.IsNegative() || ZeroDuration.IsPositive() {
		t.Fatalf("%s failed: zero span misclassified", t.Name())
	}
	if !Seconds(1).IsPositive() || Seconds(1).IsNegative() {
		t.Fatalf("%s failed", t.Name())
	}
	if !New(0, -1).IsNegative() {
		t.Fatalf("%s failed: sub-second negative span", t.Name())
	}
	if got := Seconds(-5).Abs(); got != Seconds(5) {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
}

func TestDurationWholeTruncation(t *testing.T) {
	d := New(-7, -500_000_000)
	if d.WholeSeconds() != -7 {
		t.Fatalf("%s failed: got %d", t.Name(), d.WholeSeconds())
	}
	if got := Hours(25).WholeDays(); got != 1 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
	if got := Hours(-25).WholeDays(); got != -1 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
	if got := New(1, 999_999_999).WholeMilliseconds(); got != 1_999 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
	if got := New(-1, -999_999_999).WholeNanoseconds(); got != -1_999_999_999 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
}

func TestDurationSubsecComponents(t *testing.T) {
	d := New(-1, -234_567_891)
	if d.SubsecMilliseconds() != -234 {
		t.Fatalf("%s failed: got %d", t.Name(), d.SubsecMilliseconds())
	}
	if d.SubsecMicroseconds() != -234_567 {
		t.Fatalf("%s failed: got %d", t.Name(), d.SubsecMicroseconds())
	}
	if d.SubsecNanoseconds() != -234_567_891 {
		t.Fatalf("%s failed: got %d", t.Name(), d.SubsecNanoseconds())
	}
}

func TestDurationCheckedAdd(t *testing.T) {
	sum, ok := Seconds(5).CheckedAdd(New(0, 700_000_000))
	if !ok || sum != New(5, 700_000_000) {
		t.Fatalf("%s failed: got %s, %t", t.Name(), sum, ok)
	}

	// Carry across the second boundary.
	sum, ok = New(1, 600_000_000).CheckedAdd(New(0, 600_000_000))
	if !ok || sum != New(2, 200_000_000) {
		t.Fatalf("%s failed: got %s, %t", t.Name(), sum, ok)
	}

	if _, ok = MaxDuration.CheckedAdd(Nanoseconds(1)); ok {
		t.Fatalf("%s failed: expected overflow", t.Name())
	}
	if _, ok = MinDuration.CheckedAdd(Nanoseconds(-1)); ok {
		t.Fatalf("%s failed: expected underflow", t.Name())
	}

	// The boundary itself is reachable.
	sum, ok = MaxDuration.CheckedAdd(ZeroDuration)
	if !ok || sum != MaxDuration {
		t.Fatalf("%s failed: got %s, %t", t.Name(), sum, ok)
	}
}

func TestDurationCheckedSub(t *testing.T) {
	diff, ok := Seconds(5).CheckedSub(New(0, 700_000_000))
	if !ok || diff != New(4, 300_000_000) {
		t.Fatalf("%s failed: got %s, %t", t.Name(), diff, ok)
	}
	if _, ok = MinDuration.CheckedSub(Nanoseconds(1)); ok {
		t.Fatalf("%s failed: expected underflow", t.Name())
	}
}

func TestDurationCheckedMul(t *testing.T) {
	prod, ok := New(1, 500_000_000).CheckedMul(3)
	if !ok || prod != New(4, 500_000_000) {
		t.Fatalf("%s failed: got %s, %t", t.Name(), prod, ok)
	}
	prod, ok = New(1, 500_000_000).CheckedMul(-2)
	if !ok || prod != Seconds(-3) {
		t.Fatalf("%s failed: got %s, %t", t.Name(), prod, ok)
	}
	if prod, ok = Seconds(3).CheckedMul(0); !ok || !prod.IsZero() {
		t.Fatalf("%s failed: got %s, %t", t.Name(), prod, ok)
	}
	if _, ok = MaxDuration.CheckedMul(2); ok {
		t.Fatalf("%s failed: expected overflow", t.Name())
	}
}

func TestDurationCheckedDiv(t *testing.T) {
	quot, ok := Seconds(10).CheckedDiv(4)
	if !ok || quot != New(2, 500_000_000) {
		t.Fatalf("%s failed: got %s, %t", t.Name(), quot, ok)
	}
	quot, ok = Seconds(-10).CheckedDiv(4)
	if !ok || quot != New(-2, -500_000_000) {
		t.Fatalf("%s failed: got %s, %t", t.Name(), quot, ok)
	}
	if _, ok = Seconds(1).CheckedDiv(0); ok {
		t.Fatalf("%s failed: division by zero reported success", t.Name())
	}
	if _, ok = MinDuration.CheckedDiv(-1); ok {
		t.Fatalf("%s failed: expected overflow", t.Name())
	}
}

func TestDurationCheckedNeg(t *testing.T) {
	n, ok := New(1, 500_000_000).CheckedNeg()
	if !ok || n != New(-1, -500_000_000) {
		t.Fatalf("%s failed: got %s, %t", t.Name(), n, ok)
	}
	if _, ok = MinDuration.CheckedNeg(); ok {
		t.Fatalf("%s failed: expected overflow", t.Name())
	}

	// -(-d) == d away from the boundary.
	d := New(42, 7)
	if d.Neg().Neg() != d {
		t.Fatalf("%s failed: double negation", t.Name())
	}
	if sum, _ := d.CheckedAdd(d.Neg()); !sum.IsZero() {
		t.Fatalf("%s failed: d + (-d) = %s", t.Name(), sum)
	}
}

func TestDurationPanickingOperators(t *testing.T) {
	expectPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Fatalf("%s failed: %s did not panic", t.Name(), name)
			}
		}()
		fn()
	}

	expectPanic("Add", func() { MaxDuration.Add(Nanoseconds(1)) })
	expectPanic("Sub", func() { MinDuration.Sub(Nanoseconds(1)) })
	expectPanic("Neg", func() { MinDuration.Neg() })
	expectPanic("Abs", func() { MinDuration.Abs() })
	expectPanic("Mul", func() { MaxDuration.Mul(2) })
	expectPanic("Div", func() { Seconds(1).Div(0) })
	expectPanic("WholeNanoseconds", func() { MaxDuration.WholeNanoseconds() })
}

func TestDurationFloatOperators(t *testing.T) {
	if got := Seconds(10).MulFloat64(1.5); got != Seconds(15) {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
	if got := Seconds(10).MulFloat64(-0.5); got != Seconds(-5) {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
	if got := Seconds(10).MulFloat64(0); !got.IsZero() {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
	if got := Seconds(10).DivFloat64(4); got != New(2, 500_000_000) {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
	if got := Seconds(10).DivDuration(Seconds(4)); got != 2.5 {
		t.Fatalf("%s failed: got %v", t.Name(), got)
	}
	if got := Seconds(30).MulFloat32(0.5); got != Seconds(15) {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
}

func TestDurationFloatConstructors(t *testing.T) {
	if got := SecondsFloat64(2.5); got != New(2, 500_000_000) {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
	if got := SecondsFloat64(-2.5); got != New(-2, -500_000_000) {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
	if got := MillisecondsFloat64(1_500); got != New(1, 500_000_000) {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
	if got := SecondsFloat32(0.5); got.WholeSeconds() != 0 || !got.IsPositive() {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
}

func TestDurationCompare(t *testing.T) {
	a := New(1, 2)
	b := New(1, 3)
	c := New(2, 0)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("%s failed", t.Name())
	}
	if !a.LessThan(c) || c.LessThan(a) {
		t.Fatalf("%s failed", t.Name())
	}
	if !New(-1, -1).LessThan(New(-1, 0)) {
		t.Fatalf("%s failed: negative nanosecond ordering", t.Name())
	}
}

func TestDurationStd(t *testing.T) {
	td, err := New(1, 500_000_000).Std()
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if td != 1_500*time.Millisecond {
		t.Fatalf("%s failed: got %v", t.Name(), td)
	}

	if _, err = Days(200_000 * 365).Std(); err == nil {
		t.Fatalf("%s failed: expected range error", t.Name())
	} else if !IsConversionError(err) {
		t.Fatalf("%s failed: wrong error class: %v", t.Name(), err)
	}

	// FromStd is total and round-trips anything Std accepts.
	for _, td := range []time.Duration{
		0, time.Nanosecond, -time.Nanosecond, 90 * time.Minute, -time.Hour,
		1<<63 - 1, -1 << 63,
	} {
		back, err := FromStd(td).Std()
		if err != nil {
			t.Fatalf("%s failed: %v: %v", t.Name(), td, err)
		}
		if back != td {
			t.Fatalf("%s failed: %v -> %s -> %v", t.Name(), td, FromStd(td), back)
		}
	}

	if got := Seconds(1).AddStd(500 * time.Millisecond); got != New(1, 500_000_000) {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
	if got := Seconds(1).SubStd(time.Second); !got.IsZero() {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
	if got := Seconds(1).CompareStd(900 * time.Millisecond); got != 1 {
		t.Fatalf("%s failed: got %d", t.Name(), got)
	}
}

func TestDurationString(t *testing.T) {
	for _, tc := range []struct {
		in   Duration
		want string
	}{
		{ZeroDuration, "0s"},
		{Seconds(90), "90s"},
		{Seconds(-90), "-90s"},
		{New(1, 500_000_000), "1.5s"},
		{New(0, -1), "-0.000000001s"},
		{New(-1, -250_000_000), "-1.25s"},
		{MinDuration, "-9223372036854775808.999999999s"},
	} {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("%s failed: got %q, want %q", t.Name(), got, tc.want)
		}
	}
}

func ExampleNew() {
	fmt.Println(New(1, -1))
	// Output: 0.999999999s
}

func ExampleDuration_CheckedAdd() {
	if _, ok := MaxDuration.CheckedAdd(Nanoseconds(1)); !ok {
		fmt.Println("overflow")
	}
	// Output: overflow
}
