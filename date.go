package datetuple

/*
date.go implements the DateTuple type, a proleptic Gregorian calendar
date, alongside its day-count conversion and saturating arithmetic.
*/

/*
maxDayCount is the one-based day count of 9999-12-31, the densest valid
input to [DateTupleFromDays].
*/
const maxDayCount = 3652425

/*
DateTuple is a calendar date between 0000-01-01 and 9999-12-31
inclusive, with the day always valid for its leap-year-aware month
length. Instances are immutable values; arithmetic saturates at the
range boundaries rather than wrapping or failing.

The zero value is not a valid date; obtain instances through
[NewDateTuple], [DateTupleFromDays], [ParseDateTuple] or [Today].
*/
type DateTuple struct {
	y, m, d int
}

/*
NewDateTuple returns an instance of [DateTuple] alongside an error.
The error is non-nil if y falls outside [0,9999], m outside [1,12] or
d outside [1,DaysInMonth(y,m)].
*/
func NewDateTuple(y, m, d int) (DateTuple, error) {
	if _, err := NewMonthTuple(y, m); err != nil {
		return DateTuple{}, err
	}
	if max := DaysInMonth(y, m); d < 1 || d > max {
		return DateTuple{}, errorComponentRange(`DateTuple`, `day`, d, 1, max)
	}

	return DateTuple{y, m, d}, nil
}

/*
MinDateTuple returns the minimum supported date, 0000-01-01.
*/
func MinDateTuple() DateTuple { return DateTuple{minYear, 1, 1} }

/*
MaxDateTuple returns the maximum supported date, 9999-12-31.
*/
func MaxDateTuple() DateTuple { return DateTuple{maxYear, monthsPerYear, 31} }

/*
Year returns the year component of the receiver instance.
*/
func (r DateTuple) Year() int { return r.y }

/*
Month returns the one-based month component of the receiver instance.
*/
func (r DateTuple) Month() int { return r.m }

/*
Day returns the day component of the receiver instance.
*/
func (r DateTuple) Day() int { return r.d }

/*
ToDays returns the one-based count of days from 0000-01-01 to the
receiver instance, inclusive. The mapping is exact and monotonic; its
inverse is [DateTupleFromDays].
*/
func (r DateTuple) ToDays() int {
	n := daysBeforeYear(r.y) + cumMonthDays[r.m-1] + r.d
	if r.m > 2 && IsLeapYear(r.y) {
		n++
	}
	return n
}

/*
DateTupleFromDays returns the instance of [DateTuple] whose [ToDays]
value equals n, alongside an error. The error is non-nil if n falls
outside [1,3652425]; out-of-range counts fail rather than clamp, since
counts are supplied directly by the caller.
*/
func DateTupleFromDays(n int) (DateTuple, error) {
	if n < 1 || n > maxDayCount {
		return DateTuple{}, errorComponentRange(`DateTuple`, `day count`, n, 1, maxDayCount)
	}

	// 366 underestimates the year by a handful at worst.
	y := (n - 1) / 366
	for daysBeforeYear(y+1) < n {
		y++
	}

	rem := n - daysBeforeYear(y)
	m := 1
	for rem > DaysInMonth(y, m) {
		rem -= DaysInMonth(y, m)
		m++
	}

	return DateTuple{y, m, rem}, nil
}

/*
AddDays returns a new [DateTuple] with n days added to the receiver
instance, saturating at 9999-12-31. A negative n subtracts.
*/
func (r DateTuple) AddDays(n int) DateTuple {
	// bound n to the day-count span first so the sum cannot overflow
	n = clamp(n, -maxDayCount, maxDayCount)
	d, _ := DateTupleFromDays(clamp(r.ToDays()+n, 1, maxDayCount))
	return d
}

/*
SubtractDays returns a new [DateTuple] with n days subtracted from the
receiver instance, saturating at 0000-01-01.
*/
func (r DateTuple) SubtractDays(n int) DateTuple {
	// clamp before negating; -n alone overflows on the minimum int
	return r.AddDays(-clamp(n, -maxDayCount, maxDayCount))
}

/*
NextDate returns the [DateTuple] immediately following the receiver
instance. Will not go past 9999-12-31.
*/
func (r DateTuple) NextDate() DateTuple { return r.AddDays(1) }

/*
PreviousDate returns the [DateTuple] immediately preceding the receiver
instance. Will not go past 0000-01-01.
*/
func (r DateTuple) PreviousDate() DateTuple { return r.SubtractDays(1) }

// clampDay keeps a carried date valid: a day beyond the target month's
// length becomes that month's last day, e.g. Jan 31 plus one month is
// Feb 28 or 29, never a March overflow.
func clampDay(y, m, d int) DateTuple {
	if max := DaysInMonth(y, m); d > max {
		d = max
	}
	return DateTuple{y, m, d}
}

/*
AddMonths returns a new [DateTuple] with n months added to the receiver
instance, saturating at Dec 9999. The day is clamped to the target
month's length.
*/
func (r DateTuple) AddMonths(n int) DateTuple {
	mt := MonthTuple{r.y, r.m}.AddMonths(n)
	return clampDay(mt.y, mt.m, r.d)
}

/*
SubtractMonths returns a new [DateTuple] with n months subtracted from
the receiver instance, saturating at Jan 0000. The day is clamped to
the target month's length.
*/
func (r DateTuple) SubtractMonths(n int) DateTuple {
	return r.AddMonths(-clamp(n, -maxMonthIndex, maxMonthIndex))
}

/*
AddYears returns a new [DateTuple] with n years added to the receiver
instance, saturating at year 9999. A Feb 29 landing on a common year
becomes Feb 28.
*/
func (r DateTuple) AddYears(n int) DateTuple {
	n = clamp(n, -maxYear, maxYear)
	return clampDay(clamp(r.y+n, minYear, maxYear), r.m, r.d)
}

/*
SubtractYears returns a new [DateTuple] with n years subtracted from
the receiver instance, saturating at year 0. A Feb 29 landing on a
common year becomes Feb 28.
*/
func (r DateTuple) SubtractYears(n int) DateTuple {
	return r.AddYears(-clamp(n, -maxYear, maxYear))
}

/*
String returns the canonical string representation of the receiver
instance, formatted like 2018-11-02.
*/
func (r DateTuple) String() string {
	var b [10]byte
	put4(b[:], 0, r.y)
	b[4] = '-'
	put2(b[:], 5, r.m)
	b[7] = '-'
	put2(b[:], 8, r.d)
	return string(b[:])
}

/*
ReadableString returns the receiver instance formatted to be
human-readable, e.g. 2 Oct 2018 or 13 Jan 2019. The day is not
zero-padded.
*/
func (r DateTuple) ReadableString() string {
	return itoa(r.d) + ` ` + monthStrings[r.m-1] + ` ` + pad4(r.y)
}

/*
ParseDateTuple returns an instance of [DateTuple] alongside an error
following an attempt to parse x. Accepted input types are string,
[]byte and [DateTuple].

Two string grammars are recognized, attempted in order: the canonical
yyyy-mm-dd form and the separator-free legacy yyyymmdd form retained
for backward compatibility with stored values. The grammars never
overlap.
*/
func ParseDateTuple(x any) (DateTuple, error) {
	var s string
	switch tv := x.(type) {
	case string:
		s = tv
	case []byte:
		s = string(tv)
	case DateTuple:
		return tv, nil
	default:
		return DateTuple{}, errorBadTypeForParser(`DateTuple`, x)
	}

	return parseDateTuple(s)
}

func parseDateTuple(s string) (DateTuple, error) {
	switch {
	case len(s) == 10 && s[4] == '-' && s[7] == '-' &&
		allDigits(s[0:4]) && allDigits(s[5:7]) && allDigits(s[8:10]):
		return NewDateTuple(toInt(s[0], s[1])*100+toInt(s[2], s[3]),
			toInt(s[5], s[6]), toInt(s[8], s[9]))
	case len(s) == 8 && allDigits(s):
		return NewDateTuple(toInt(s[0], s[1])*100+toInt(s[2], s[3]),
			toInt(s[4], s[5]), toInt(s[6], s[7]))
	}

	return DateTuple{}, errorBadFormat(`DateTuple`, s, `2018-11-02`)
}

/*
Eq returns a Boolean value indicative of r == t.
*/
func (r DateTuple) Eq(t DateTuple) bool { return r == t }

/*
Ne returns a Boolean value indicative of r != t.
*/
func (r DateTuple) Ne(t DateTuple) bool { return r != t }

/*
Lt returns a Boolean value indicative of r occurring strictly before t.
The (year, month, day) ordering coincides with day-count ordering.
*/
func (r DateTuple) Lt(t DateTuple) bool {
	if r.y != t.y {
		return r.y < t.y
	}
	if r.m != t.m {
		return r.m < t.m
	}
	return r.d < t.d
}

/*
Le returns a Boolean value indicative of r occurring no later than t.
*/
func (r DateTuple) Le(t DateTuple) bool { return r.Lt(t) || r.Eq(t) }

/*
Gt returns a Boolean value indicative of r occurring strictly after t.
*/
func (r DateTuple) Gt(t DateTuple) bool { return t.Lt(r) }

/*
Ge returns a Boolean value indicative of r occurring no earlier than t.
*/
func (r DateTuple) Ge(t DateTuple) bool { return r.Gt(t) || r.Eq(t) }
