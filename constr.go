package tempus

/*
constr.go contains the constraint components accepted by the validating
constructors throughout this package. A constraint refines an already
structurally valid value; range validation proper always runs first.
*/

import "golang.org/x/exp/constraints"

/*
Constraint implements a generic closure function signature meant to
enforce the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice
instances are added (and, thus, evaluated) in the order in which they
are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint]
instances against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a
value of any ordered type is between the specified minimum and maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = mkerr("value is out of range")
		}
		return
	}
}

/*
DateRangeConstraint returns a [Constraint] for [Date] values to ensure
that the given value is not earlier than min nor later than max.
*/
func DateRangeConstraint(min, max Date) Constraint[Date] {
	return func(val Date) (err error) {
		if val.Compare(min) < 0 || val.Compare(max) > 0 {
			err = mkerrf("date ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return
	}
}

/*
TimeRangeConstraint returns a [Constraint] for [Time] values to ensure
that the given value is not earlier than min nor later than max within
the day.
*/
func TimeRangeConstraint(min, max Time) Constraint[Time] {
	return func(val Time) (err error) {
		if val.Compare(min) < 0 || val.Compare(max) > 0 {
			err = mkerrf("time ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return
	}
}

/*
DurationRangeConstraint returns a [Constraint] for [Duration] values to
ensure that the given value is not less than min and not greater than
max.
*/
func DurationRangeConstraint(min, max Duration) Constraint[Duration] {
	return func(val Duration) (err error) {
		if val.LessThan(min) || max.LessThan(val) {
			err = mkerrf("duration ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return
	}
}

/*
PropertyConstraint returns a [Constraint] that applies a user-defined
check function. That function should return nil if the property is
satisfied or an error otherwise.
*/
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}
