package datetuple

/*
datetime.go implements the DateTimeTuple type, the composition of a
calendar date and a time of day.
*/

/*
DateTimeTuple is a specific date and time, comprised of one [DateTuple]
and one [TimeTuple], each owned by value. It carries no invariants
beyond those of its members; ordering is lexicographic on (date, time).
*/
type DateTimeTuple struct {
	d DateTuple
	t TimeTuple
}

/*
NewDateTimeTuple returns an instance of [DateTimeTuple] composed of d
and t. Both members are already-valid values, so no error is possible.
*/
func NewDateTimeTuple(d DateTuple, t TimeTuple) DateTimeTuple {
	return DateTimeTuple{d, t}
}

/*
Date returns the [DateTuple] component of the receiver instance.
*/
func (r DateTimeTuple) Date() DateTuple { return r.d }

/*
Time returns the [TimeTuple] component of the receiver instance.
*/
func (r DateTimeTuple) Time() TimeTuple { return r.t }

// epochSeconds maps the receiver onto seconds elapsed since
// 0000-01-01 00:00:00; int64 holds the full range without overflow.
func (r DateTimeTuple) epochSeconds() int64 {
	return int64(r.d.ToDays()-1)*secondsPerDay + int64(r.t.ToSeconds())
}

/*
String returns the canonical string representation of the receiver
instance, formatted like 2018-10-02@08:30:00. This form is the one
accepted by [ParseDateTimeTuple] and is intended for storage.
*/
func (r DateTimeTuple) String() string {
	return r.d.String() + `@` + r.t.String()
}

/*
ReadableString returns the receiver instance formatted to be
human-readable, e.g. 2 Oct 2018 08:30:00.
*/
func (r DateTimeTuple) ReadableString() string {
	return r.d.ReadableString() + ` ` + r.t.String()
}

/*
ParseDateTimeTuple returns an instance of [DateTimeTuple] alongside an
error following an attempt to parse x. Accepted input types are string,
[]byte and [DateTimeTuple].

Strings are split on the @ separator; the date half follows the
[ParseDateTuple] grammars, legacy form included, and the time half
follows the [ParseTimeTuple] grammar.
*/
func ParseDateTimeTuple(x any) (DateTimeTuple, error) {
	var s string
	switch tv := x.(type) {
	case string:
		s = tv
	case []byte:
		s = string(tv)
	case DateTimeTuple:
		return tv, nil
	default:
		return DateTimeTuple{}, errorBadTypeForParser(`DateTimeTuple`, x)
	}

	parts := split(s, `@`)
	if len(parts) != 2 {
		return DateTimeTuple{}, errorBadFormat(`DateTimeTuple`, s, `2018-11-02@08:30:00`)
	}

	d, err := parseDateTuple(parts[0])
	if err != nil {
		return DateTimeTuple{}, err
	}
	t, err := parseTimeTuple(parts[1])
	if err != nil {
		return DateTimeTuple{}, err
	}

	return DateTimeTuple{d, t}, nil
}

/*
Eq returns a Boolean value indicative of r == t.
*/
func (r DateTimeTuple) Eq(t DateTimeTuple) bool { return r == t }

/*
Ne returns a Boolean value indicative of r != t.
*/
func (r DateTimeTuple) Ne(t DateTimeTuple) bool { return r != t }

/*
Lt returns a Boolean value indicative of r occurring strictly before t.
*/
func (r DateTimeTuple) Lt(t DateTimeTuple) bool {
	if r.d != t.d {
		return r.d.Lt(t.d)
	}
	return r.t.Lt(t.t)
}

/*
Le returns a Boolean value indicative of r occurring no later than t.
*/
func (r DateTimeTuple) Le(t DateTimeTuple) bool { return r.Lt(t) || r.Eq(t) }

/*
Gt returns a Boolean value indicative of r occurring strictly after t.
*/
func (r DateTimeTuple) Gt(t DateTimeTuple) bool { return t.Lt(r) }

/*
Ge returns a Boolean value indicative of r occurring no earlier than t.
*/
func (r DateTimeTuple) Ge(t DateTimeTuple) bool { return r.Gt(t) || r.Eq(t) }
