package tempus

/*
weekday.go implements the cyclic seven-valued [Weekday] enumeration.
A Weekday is only ever derived on demand from a [Date]; it is never
stored alongside one, so the two can never fall out of sync.
*/

/*
Weekday is a day of the week, Monday through Sunday.
*/
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	`Monday`,
	`Tuesday`,
	`Wednesday`,
	`Thursday`,
	`Friday`,
	`Saturday`,
	`Sunday`,
}

/*
String returns the string representation of the receiver instance.
*/
func (r Weekday) String() string { return weekdayNames[r%7] }

/*
Previous returns the [Weekday] preceding the receiver instance,
wrapping from [Monday] to [Sunday].
*/
func (r Weekday) Previous() Weekday { return (r + 6) % 7 }

/*
Next returns the [Weekday] following the receiver instance, wrapping
from [Sunday] to [Monday].
*/
func (r Weekday) Next() Weekday { return (r + 1) % 7 }

/*
NumberFromMonday returns the one-based weekday number under a
Monday-first convention: Monday is 1, Sunday is 7.
*/
func (r Weekday) NumberFromMonday() int { return int(r%7) + 1 }

/*
NumberFromSunday returns the one-based weekday number under a
Sunday-first convention: Sunday is 1, Saturday is 7.
*/
func (r Weekday) NumberFromSunday() int { return int((r+1)%7) + 1 }

/*
NumberDaysFromMonday returns the zero-based weekday number under a
Monday-first convention: Monday is 0, Sunday is 6.
*/
func (r Weekday) NumberDaysFromMonday() int { return int(r % 7) }

/*
NumberDaysFromSunday returns the zero-based weekday number under a
Sunday-first convention: Sunday is 0, Saturday is 6.
*/
func (r Weekday) NumberDaysFromSunday() int { return int((r + 1) % 7) }
