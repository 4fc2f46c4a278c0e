package datetuple

/*
time.go implements the TimeTuple type, a wall-clock time of day with
second precision, alongside its wrapping arithmetic and its parser.
*/

import "time"

/*
TimeTuple is a time of day between 00:00:00 and 23:59:59 inclusive.
Instances are immutable values; every arithmetic method returns a new
instance and the zero value is midnight.

Arithmetic which crosses a midnight boundary wraps silently, in either
direction; no carry into a date ever occurs. Use [DateTimeTuple] when
day carry matters, or [Duration] for elapsed spans exceeding one day.
*/
type TimeTuple struct {
	h, m, s int
}

/*
NewTimeTuple returns an instance of [TimeTuple] alongside an error.
The error is non-nil if any component falls outside its valid bound,
namely [0,23] for h and [0,59] for m and s.
*/
func NewTimeTuple(h, m, s int) (TimeTuple, error) {
	switch {
	case h < 0 || h > 23:
		return TimeTuple{}, errorComponentRange(`TimeTuple`, `hour`, h, 0, 23)
	case m < 0 || m > 59:
		return TimeTuple{}, errorComponentRange(`TimeTuple`, `minute`, m, 0, 59)
	case s < 0 || s > 59:
		return TimeTuple{}, errorComponentRange(`TimeTuple`, `second`, s, 0, 59)
	}

	return TimeTuple{h, m, s}, nil
}

/*
TimeTupleFromSeconds returns the instance of [TimeTuple] whose total
seconds equal n reduced modulo 86400. Negative n wraps backward through
midnight. Every wrapping operation in this package funnels through this
function.
*/
func TimeTupleFromSeconds(n int) TimeTuple {
	n %= secondsPerDay
	if n < 0 {
		n += secondsPerDay
	}

	h := n / secondsPerHour
	n -= h * secondsPerHour
	m := n / secondsPerMinute

	return TimeTuple{h, m, n - m*secondsPerMinute}
}

/*
Hour returns the hour component of the receiver instance.
*/
func (r TimeTuple) Hour() int { return r.h }

/*
Minute returns the minute component of the receiver instance.
*/
func (r TimeTuple) Minute() int { return r.m }

/*
Second returns the second component of the receiver instance.
*/
func (r TimeTuple) Second() int { return r.s }

/*
ToSeconds returns the receiver instance expressed as seconds past
midnight, within [0,86399].
*/
func (r TimeTuple) ToSeconds() int {
	return r.h*secondsPerHour + r.m*secondsPerMinute + r.s
}

/*
ToMinutes returns the receiver instance expressed as whole minutes past
midnight, truncating any remainder seconds.
*/
func (r TimeTuple) ToMinutes() int {
	return r.h*60 + r.m
}

/*
AddSeconds returns a new [TimeTuple] with n seconds added to the
receiver instance, wrapping past midnight as needed.
*/
func (r TimeTuple) AddSeconds(n int) TimeTuple {
	// reduce n first so an extreme operand cannot overflow the sum
	return TimeTupleFromSeconds(r.ToSeconds() + n%secondsPerDay)
}

/*
SubtractSeconds returns a new [TimeTuple] with n seconds subtracted
from the receiver instance, wrapping backward through midnight as
needed.
*/
func (r TimeTuple) SubtractSeconds(n int) TimeTuple {
	return TimeTupleFromSeconds(r.ToSeconds() - n%secondsPerDay)
}

/*
AddMinutes returns a new [TimeTuple] with n minutes added to the
receiver instance.
*/
func (r TimeTuple) AddMinutes(n int) TimeTuple {
	return r.AddSeconds((n % minutesPerDay) * secondsPerMinute)
}

/*
SubtractMinutes returns a new [TimeTuple] with n minutes subtracted
from the receiver instance.
*/
func (r TimeTuple) SubtractMinutes(n int) TimeTuple {
	return r.SubtractSeconds((n % minutesPerDay) * secondsPerMinute)
}

/*
AddHours returns a new [TimeTuple] with n hours added to the receiver
instance.
*/
func (r TimeTuple) AddHours(n int) TimeTuple {
	return r.AddSeconds((n % hoursPerDay) * secondsPerHour)
}

/*
SubtractHours returns a new [TimeTuple] with n hours subtracted from
the receiver instance.
*/
func (r TimeTuple) SubtractHours(n int) TimeTuple {
	return r.SubtractSeconds((n % hoursPerDay) * secondsPerHour)
}

/*
AddTime returns the sum of the receiver instance and t, reduced modulo
one day. The midnight wrap is silent.
*/
func (r TimeTuple) AddTime(t TimeTuple) TimeTuple {
	return TimeTupleFromSeconds(r.ToSeconds() + t.ToSeconds())
}

/*
SubtractTime returns the difference of the receiver instance and t,
reduced modulo one day. The midnight wrap is silent.
*/
func (r TimeTuple) SubtractTime(t TimeTuple) TimeTuple {
	return TimeTupleFromSeconds(r.ToSeconds() - t.ToSeconds())
}

/*
String returns the canonical string representation of the receiver
instance, formatted like 08:30:00.
*/
func (r TimeTuple) String() string {
	var b [8]byte
	put2(b[:], 0, r.h)
	b[2] = ':'
	put2(b[:], 3, r.m)
	b[5] = ':'
	put2(b[:], 6, r.s)
	return string(b[:])
}

/*
ShortString returns the receiver instance formatted like 08:30, with
the seconds component dropped. This form is serialize-only; the parser
does not accept it.
*/
func (r TimeTuple) ShortString() string {
	var b [5]byte
	put2(b[:], 0, r.h)
	b[2] = ':'
	put2(b[:], 3, r.m)
	return string(b[:])
}

/*
ParseTimeTuple returns an instance of [TimeTuple] alongside an error
following an attempt to parse x. Accepted input types are string,
[]byte, [TimeTuple] and [time.Time]; strings must match the canonical
hh:mm:ss form.
*/
func ParseTimeTuple(x any) (TimeTuple, error) {
	var s string
	switch tv := x.(type) {
	case string:
		s = tv
	case []byte:
		s = string(tv)
	case TimeTuple:
		return tv, nil
	case time.Time:
		h, m, sec := tv.Clock()
		return TimeTuple{h, m, sec}, nil
	default:
		return TimeTuple{}, errorBadTypeForParser(`TimeTuple`, x)
	}

	return parseTimeTuple(s)
}

// parseTimeTuple parses the fixed-width layout hh:mm:ss. Zero allocs.
func parseTimeTuple(s string) (TimeTuple, error) {
	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return TimeTuple{}, errorBadFormat(`TimeTuple`, s, `08:30:00`)
	}
	if !allDigits(s[0:2]) || !allDigits(s[3:5]) || !allDigits(s[6:8]) {
		return TimeTuple{}, errorBadFormat(`TimeTuple`, s, `08:30:00`)
	}

	return NewTimeTuple(toInt(s[0], s[1]), toInt(s[3], s[4]), toInt(s[6], s[7]))
}

/*
Eq returns a Boolean value indicative of r == t.
*/
func (r TimeTuple) Eq(t TimeTuple) bool { return r == t }

/*
Ne returns a Boolean value indicative of r != t.
*/
func (r TimeTuple) Ne(t TimeTuple) bool { return r != t }

/*
Lt returns a Boolean value indicative of r occurring strictly before t.
*/
func (r TimeTuple) Lt(t TimeTuple) bool { return r.ToSeconds() < t.ToSeconds() }

/*
Le returns a Boolean value indicative of r occurring no later than t.
*/
func (r TimeTuple) Le(t TimeTuple) bool { return r.Lt(t) || r.Eq(t) }

/*
Gt returns a Boolean value indicative of r occurring strictly after t.
*/
func (r TimeTuple) Gt(t TimeTuple) bool { return r.ToSeconds() > t.ToSeconds() }

/*
Ge returns a Boolean value indicative of r occurring no earlier than t.
*/
func (r TimeTuple) Ge(t TimeTuple) bool { return r.Gt(t) || r.Eq(t) }
