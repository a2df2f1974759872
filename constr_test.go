package tempus

import (
	"fmt"
	"testing"
)

func TestConstraintGroup(t *testing.T) {
	var calls []string
	mk := func(name string, fail bool) Constraint[int] {
		return func(int) error {
			calls = append(calls, name)
			if fail {
				return mkerr(name + " rejected")
			}
			return nil
		}
	}

	group := ConstraintGroup[int]{mk("first", false), mk("second", true), mk("third", false)}
	if err := group.Constrain(0); err == nil {
		t.Fatalf("%s failed: expected rejection", t.Name())
	}

	// Evaluation stops at the first failure, in declaration order.
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("%s failed: calls %v", t.Name(), calls)
	}

	calls = nil
	if err := (ConstraintGroup[int]{mk("only", false), nil}).Constrain(0); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
}

func TestRangeConstraint(t *testing.T) {
	within := RangeConstraint(1, 10)
	if err := within(5); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if err := within(11); err == nil {
		t.Fatalf("%s failed: expected rejection", t.Name())
	}
}

func TestDateRangeConstraint(t *testing.T) {
	modern := DateRangeConstraint(MustDate("1970-01-01"), MustDate("2038-01-19"))

	if _, err := FromCalendarDate(2019, 1, 1, modern); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if _, err := FromCalendarDate(1969, 1, 1, modern); err == nil {
		t.Fatalf("%s failed: expected rejection", t.Name())
	}
}

func TestTimeRangeConstraint(t *testing.T) {
	business := TimeRangeConstraint(MustTime("9:00"), MustTime("17:00"))
	if _, err := FromHMS(12, 0, 0, business); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if _, err := FromHMS(18, 0, 0, business); err == nil {
		t.Fatalf("%s failed: expected rejection", t.Name())
	}
}

func TestDurationRangeConstraint(t *testing.T) {
	bounded := DurationRangeConstraint(ZeroDuration, Hours(1))
	if err := bounded(Minutes(30)); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if err := bounded(Hours(2)); err == nil {
		t.Fatalf("%s failed: expected rejection", t.Name())
	}
	if err := bounded(Seconds(-1)); err == nil {
		t.Fatalf("%s failed: expected rejection", t.Name())
	}
}

func TestLiftConstraint(t *testing.T) {
	// Constrain dates through their weekday.
	weekendFree := LiftConstraint(Date.Weekday, PropertyConstraint(func(wd Weekday) error {
		if wd == Saturday || wd == Sunday {
			return mkerr("weekends are not schedulable")
		}
		return nil
	}))

	if _, err := FromCalendarDate(2019, 1, 23, weekendFree); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if _, err := FromCalendarDate(2019, 1, 26, weekendFree); err == nil {
		t.Fatalf("%s failed: expected rejection", t.Name())
	}
}

func TestConstraintFailureZeroesValue(t *testing.T) {
	reject := PropertyConstraint(func(Date) error { return mkerr("rejected") })
	d, err := FromCalendarDate(2019, 1, 23, reject)
	if err == nil {
		t.Fatalf("%s failed: expected rejection", t.Name())
	}
	if d != (Date{}) {
		t.Fatalf("%s failed: got %s", t.Name(), d)
	}
}

func ExampleTimeRangeConstraint() {
	business := TimeRangeConstraint(MustTime("9:00"), MustTime("17:00"))
	_, err := FromHMS(18, 0, 0, business)
	fmt.Println(err != nil)
	// Output: true
}
