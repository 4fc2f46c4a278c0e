package datetuple

/*
now.go isolates the wall clock, this package's sole external
collaborator, behind current-value constructors for each tuple type.
*/

import "time"

// nowSource supplies the current wall-clock instant; swapped out in
// tests for a fixed instant.
var nowSource func() time.Time = time.Now

// currentDate validates and wraps the clock reading. A reading outside
// the supported year range saturates at the nearest boundary date.
func currentDate(t time.Time) DateTuple {
	d, err := NewDateTuple(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		if t.Year() < minYear {
			return MinDateTuple()
		}
		return MaxDateTuple()
	}
	return d
}

/*
Now returns a [DateTimeTuple] of the current date and time according to
the system clock.
*/
func Now() DateTimeTuple {
	t := nowSource()
	h, m, s := t.Clock()
	return DateTimeTuple{currentDate(t), TimeTuple{h, m, s}}
}

/*
Today returns a [DateTuple] of the current date according to the system
clock.
*/
func Today() DateTuple {
	return currentDate(nowSource())
}

/*
ThisMonth returns a [MonthTuple] of the current month according to the
system clock.
*/
func ThisMonth() MonthTuple {
	d := currentDate(nowSource())
	return MonthTuple{d.y, d.m}
}

/*
NowTime returns a [TimeTuple] of the current time of day according to
the system clock.
*/
func NowTime() TimeTuple {
	h, m, s := nowSource().Clock()
	return TimeTuple{h, m, s}
}
