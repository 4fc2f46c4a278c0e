package datetuple

/*
month.go implements the MonthTuple type, a month of a specific year and
the base unit of all month and year carry arithmetic.
*/

/*
MonthTuple is a one-based month paired with its year, covering Jan 0000
through Dec 9999 inclusive. Instances are immutable values; arithmetic
saturates at the range boundaries rather than wrapping or failing.

The zero value is not a valid month (its month component is zero);
obtain instances through [NewMonthTuple], [MonthTupleFromDate],
[ParseMonthTuple] or [ThisMonth].
*/
type MonthTuple struct {
	y, m int
}

/*
NewMonthTuple returns an instance of [MonthTuple] alongside an error.
The error is non-nil if y falls outside [0,9999] or m outside [1,12].
*/
func NewMonthTuple(y, m int) (MonthTuple, error) {
	switch {
	case y < minYear || y > maxYear:
		return MonthTuple{}, errorComponentRange(`MonthTuple`, `year`, y, minYear, maxYear)
	case m < 1 || m > monthsPerYear:
		return MonthTuple{}, errorComponentRange(`MonthTuple`, `month`, m, 1, monthsPerYear)
	}

	return MonthTuple{y, m}, nil
}

/*
MonthTupleFromDate returns the [MonthTuple] of d, discarding the day
component.
*/
func MonthTupleFromDate(d DateTuple) MonthTuple {
	return MonthTuple{d.y, d.m}
}

/*
Year returns the year component of the receiver instance.
*/
func (r MonthTuple) Year() int { return r.y }

/*
Month returns the one-based month component of the receiver instance.
*/
func (r MonthTuple) Month() int { return r.m }

/*
NextMonth returns the [MonthTuple] immediately following the receiver
instance. Will not go past Dec 9999.
*/
func (r MonthTuple) NextMonth() MonthTuple {
	if r.y == maxYear && r.m == monthsPerYear {
		return r
	}
	if r.m == monthsPerYear {
		return MonthTuple{r.y + 1, 1}
	}
	return MonthTuple{r.y, r.m + 1}
}

/*
PreviousMonth returns the [MonthTuple] immediately preceding the
receiver instance. Will not go past Jan 0000.
*/
func (r MonthTuple) PreviousMonth() MonthTuple {
	if r.y == minYear && r.m == 1 {
		return r
	}
	if r.m == 1 {
		return MonthTuple{r.y - 1, monthsPerYear}
	}
	return MonthTuple{r.y, r.m - 1}
}

/*
AddMonths returns a new [MonthTuple] with n months added to the
receiver instance, saturating at Dec 9999. A negative n subtracts.
*/
func (r MonthTuple) AddMonths(n int) MonthTuple {
	// bound n to the index span first so the sum cannot overflow
	n = clamp(n, -maxMonthIndex, maxMonthIndex)
	idx := clamp(r.y*monthsPerYear+r.m-1+n, 0, maxMonthIndex)
	return MonthTuple{idx / monthsPerYear, idx%monthsPerYear + 1}
}

/*
SubtractMonths returns a new [MonthTuple] with n months subtracted from
the receiver instance, saturating at Jan 0000.
*/
func (r MonthTuple) SubtractMonths(n int) MonthTuple {
	// clamp before negating; -n alone overflows on the minimum int
	return r.AddMonths(-clamp(n, -maxMonthIndex, maxMonthIndex))
}

/*
AddYears returns a new [MonthTuple] with n years added to the receiver
instance, saturating at year 9999; the month is unchanged.
*/
func (r MonthTuple) AddYears(n int) MonthTuple {
	n = clamp(n, -maxYear, maxYear)
	return MonthTuple{clamp(r.y+n, minYear, maxYear), r.m}
}

/*
SubtractYears returns a new [MonthTuple] with n years subtracted from
the receiver instance, saturating at year 0; the month is unchanged.
*/
func (r MonthTuple) SubtractYears(n int) MonthTuple {
	return r.AddYears(-clamp(n, -maxYear, maxYear))
}

/*
String returns the canonical string representation of the receiver
instance, formatted like 2018-11.
*/
func (r MonthTuple) String() string {
	var b [7]byte
	put4(b[:], 0, r.y)
	b[4] = '-'
	put2(b[:], 5, r.m)
	return string(b[:])
}

/*
ReadableString returns the receiver instance formatted to be
human-readable, e.g. Jan 2018 or Dec 1994.
*/
func (r MonthTuple) ReadableString() string {
	return monthStrings[r.m-1] + ` ` + pad4(r.y)
}

/*
ParseMonthTuple returns an instance of [MonthTuple] alongside an error
following an attempt to parse x. Accepted input types are string,
[]byte and [MonthTuple].

Two string grammars are recognized, attempted in order: the canonical
yyyy-mm form and the separator-free legacy yyyymm form retained for
backward compatibility with stored values. The grammars never overlap.
*/
func ParseMonthTuple(x any) (MonthTuple, error) {
	var s string
	switch tv := x.(type) {
	case string:
		s = tv
	case []byte:
		s = string(tv)
	case MonthTuple:
		return tv, nil
	default:
		return MonthTuple{}, errorBadTypeForParser(`MonthTuple`, x)
	}

	return parseMonthTuple(s)
}

func parseMonthTuple(s string) (MonthTuple, error) {
	switch {
	case len(s) == 7 && s[4] == '-' && allDigits(s[0:4]) && allDigits(s[5:7]):
		return NewMonthTuple(toInt(s[0], s[1])*100+toInt(s[2], s[3]), toInt(s[5], s[6]))
	case len(s) == 6 && allDigits(s):
		return NewMonthTuple(toInt(s[0], s[1])*100+toInt(s[2], s[3]), toInt(s[4], s[5]))
	}

	return MonthTuple{}, errorBadFormat(`MonthTuple`, s, `2018-11`)
}

/*
Eq returns a Boolean value indicative of r == t.
*/
func (r MonthTuple) Eq(t MonthTuple) bool { return r == t }

/*
Ne returns a Boolean value indicative of r != t.
*/
func (r MonthTuple) Ne(t MonthTuple) bool { return r != t }

/*
Lt returns a Boolean value indicative of r occurring strictly before t.
*/
func (r MonthTuple) Lt(t MonthTuple) bool {
	if r.y != t.y {
		return r.y < t.y
	}
	return r.m < t.m
}

/*
Le returns a Boolean value indicative of r occurring no later than t.
*/
func (r MonthTuple) Le(t MonthTuple) bool { return r.Lt(t) || r.Eq(t) }

/*
Gt returns a Boolean value indicative of r occurring strictly after t.
*/
func (r MonthTuple) Gt(t MonthTuple) bool { return t.Lt(r) }

/*
Ge returns a Boolean value indicative of r occurring no earlier than t.
*/
func (r MonthTuple) Ge(t MonthTuple) bool { return r.Gt(t) || r.Eq(t) }
