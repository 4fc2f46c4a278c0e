package datetuple

/*
duration.go implements the Duration type, a non-negative elapsed span
of time whose hours component is unbounded.
*/

/*
Duration is an elapsed span of time, decomposed into hours, minutes and
seconds. Unlike [TimeTuple] it is not a wall-clock value: the hours
component has no upper bound and arithmetic never wraps. Subtraction
saturates at the zero duration, as a Duration is a magnitude.
*/
type Duration struct {
	h, m, s int
}

/*
NewDuration returns an instance of [Duration] alongside an error. The
error is non-nil if h is negative or m or s fall outside [0,59]; h has
no upper bound.
*/
func NewDuration(h, m, s int) (Duration, error) {
	switch {
	case h < 0:
		return Duration{}, rangeErrorf(`Duration hour `, h, ` must not be negative`)
	case m < 0 || m > 59:
		return Duration{}, errorComponentRange(`Duration`, `minute`, m, 0, 59)
	case s < 0 || s > 59:
		return Duration{}, errorComponentRange(`Duration`, `second`, s, 0, 59)
	}

	return Duration{h, m, s}, nil
}

/*
DurationFromSeconds returns the instance of [Duration] spanning n
seconds. Negative n saturates at the zero duration.
*/
func DurationFromSeconds(n int64) Duration {
	if n < 0 {
		n = 0
	}

	h := n / secondsPerHour
	n -= h * secondsPerHour
	m := n / secondsPerMinute

	return Duration{int(h), int(m), int(n - m*secondsPerMinute)}
}

/*
DurationFromTime returns the [Duration] spanning the seconds between
midnight and t.
*/
func DurationFromTime(t TimeTuple) Duration {
	return Duration{t.h, t.m, t.s}
}

/*
DurationBetween returns the [Duration] spanning a and b. The result is
the absolute difference of the two instants and is therefore always
non-negative, whichever argument is the later one.
*/
func DurationBetween(a, b DateTimeTuple) Duration {
	d := a.epochSeconds() - b.epochSeconds()
	if d < 0 {
		d = -d
	}
	return DurationFromSeconds(d)
}

/*
Hour returns the hours component of the receiver instance.
*/
func (r Duration) Hour() int { return r.h }

/*
Minute returns the minutes component of the receiver instance.
*/
func (r Duration) Minute() int { return r.m }

/*
Second returns the seconds component of the receiver instance.
*/
func (r Duration) Second() int { return r.s }

/*
ToSeconds returns the receiver instance expressed as total seconds.
*/
func (r Duration) ToSeconds() int64 {
	return int64(r.h)*secondsPerHour + int64(r.m)*secondsPerMinute + int64(r.s)
}

/*
ToMinutes returns the receiver instance expressed as total whole
minutes, truncating any remainder seconds.
*/
func (r Duration) ToMinutes() int64 {
	return int64(r.h)*60 + int64(r.m)
}

/*
AddSeconds returns a new [Duration] with n seconds added to the
receiver instance. A negative total saturates at the zero duration.
*/
func (r Duration) AddSeconds(n int) Duration {
	return DurationFromSeconds(r.ToSeconds() + int64(n))
}

/*
SubtractSeconds returns a new [Duration] with n seconds subtracted from
the receiver instance, saturating at the zero duration.
*/
func (r Duration) SubtractSeconds(n int) Duration {
	return DurationFromSeconds(r.ToSeconds() - int64(n))
}

/*
AddMinutes returns a new [Duration] with n minutes added to the
receiver instance.
*/
func (r Duration) AddMinutes(n int) Duration {
	return DurationFromSeconds(r.ToSeconds() + int64(n)*secondsPerMinute)
}

/*
SubtractMinutes returns a new [Duration] with n minutes subtracted from
the receiver instance, saturating at the zero duration.
*/
func (r Duration) SubtractMinutes(n int) Duration {
	return DurationFromSeconds(r.ToSeconds() - int64(n)*secondsPerMinute)
}

/*
AddHours returns a new [Duration] with n hours added to the receiver
instance.
*/
func (r Duration) AddHours(n int) Duration {
	return DurationFromSeconds(r.ToSeconds() + int64(n)*secondsPerHour)
}

/*
SubtractHours returns a new [Duration] with n hours subtracted from the
receiver instance, saturating at the zero duration.
*/
func (r Duration) SubtractHours(n int) Duration {
	return DurationFromSeconds(r.ToSeconds() - int64(n)*secondsPerHour)
}

/*
AddDuration returns the sum of the receiver instance and d.
*/
func (r Duration) AddDuration(d Duration) Duration {
	return DurationFromSeconds(r.ToSeconds() + d.ToSeconds())
}

/*
SubtractDuration returns the difference of the receiver instance and d,
saturating at the zero duration.
*/
func (r Duration) SubtractDuration(d Duration) Duration {
	return DurationFromSeconds(r.ToSeconds() - d.ToSeconds())
}

// hourString renders the unbounded hours component, zero-padded to at
// least two digits.
func (r Duration) hourString() string {
	h := itoa(r.h)
	if len(h) < 2 {
		h = `0` + h
	}
	return h
}

/*
String returns the canonical string representation of the receiver
instance, formatted like 08:30:00 or, past one day, 200:00:00. The
hours field widens as needed and never wraps.
*/
func (r Duration) String() string {
	var b [6]byte
	b[0] = ':'
	put2(b[:], 1, r.m)
	b[3] = ':'
	put2(b[:], 4, r.s)
	return r.hourString() + string(b[:])
}

/*
ShortString returns the receiver instance formatted like 30:00, with
the seconds component dropped. This form is serialize-only; the parser
does not accept it.
*/
func (r Duration) ShortString() string {
	var b [3]byte
	b[0] = ':'
	put2(b[:], 1, r.m)
	return r.hourString() + string(b[:])
}

/*
ParseDuration returns an instance of [Duration] alongside an error
following an attempt to parse x. Accepted input types are string,
[]byte and [Duration]; strings must match the canonical h:mm:ss form,
whose hour field is at least two digits wide and unbounded, e.g.
08:30:00 or 200:00:00.
*/
func ParseDuration(x any) (Duration, error) {
	var s string
	switch tv := x.(type) {
	case string:
		s = tv
	case []byte:
		s = string(tv)
	case Duration:
		return tv, nil
	default:
		return Duration{}, errorBadTypeForParser(`Duration`, x)
	}

	return parseDuration(s)
}

func parseDuration(s string) (Duration, error) {
	parts := split(s, `:`)
	if len(parts) != 3 || len(parts[0]) < 2 || len(parts[1]) != 2 || len(parts[2]) != 2 ||
		!allDigits(parts[0]) || !allDigits(parts[1]) || !allDigits(parts[2]) {
		return Duration{}, errorBadFormat(`Duration`, s, `200:00:00`)
	}

	h, err := atoi(parts[0])
	if err != nil {
		return Duration{}, errorBadFormat(`Duration`, s, `200:00:00`)
	}

	return NewDuration(h, toInt(parts[1][0], parts[1][1]), toInt(parts[2][0], parts[2][1]))
}

/*
Eq returns a Boolean value indicative of r == d.
*/
func (r Duration) Eq(d Duration) bool { return r == d }

/*
Ne returns a Boolean value indicative of r != d.
*/
func (r Duration) Ne(d Duration) bool { return r != d }

/*
Lt returns a Boolean value indicative of r spanning strictly less time
than d.
*/
func (r Duration) Lt(d Duration) bool { return r.ToSeconds() < d.ToSeconds() }

/*
Le returns a Boolean value indicative of r spanning no more time than d.
*/
func (r Duration) Le(d Duration) bool { return r.Lt(d) || r.Eq(d) }

/*
Gt returns a Boolean value indicative of r spanning strictly more time
than d.
*/
func (r Duration) Gt(d Duration) bool { return r.ToSeconds() > d.ToSeconds() }

/*
Ge returns a Boolean value indicative of r spanning no less time than d.
*/
func (r Duration) Ge(d Duration) bool { return r.Gt(d) || r.Eq(d) }
