package datetuple

/*
json.go implements the JSON and plain-text codecs for every tuple type.
All types serialize as their canonical string forms and reparse through
their own parsers, so a decode failure carries the usual range or
format kind.
*/

import (
	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

/*
MarshalJSON returns the receiver instance as a JSON string in canonical
hh:mm:ss form.
*/
func (r TimeTuple) MarshalJSON() ([]byte, error) { return jsonAPI.Marshal(r.String()) }

/*
UnmarshalJSON decodes a JSON string in canonical hh:mm:ss form into the
receiver instance.
*/
func (r *TimeTuple) UnmarshalJSON(b []byte) error {
	s, err := unmarshalJSONString(`TimeTuple`, b)
	if err == nil {
		var v TimeTuple
		if v, err = parseTimeTuple(s); err == nil {
			*r = v
		}
	}
	return err
}

/*
MarshalText returns the receiver instance in canonical hh:mm:ss form.
*/
func (r TimeTuple) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

/*
UnmarshalText decodes canonical hh:mm:ss text into the receiver
instance.
*/
func (r *TimeTuple) UnmarshalText(b []byte) error {
	v, err := parseTimeTuple(string(b))
	if err == nil {
		*r = v
	}
	return err
}

/*
MarshalJSON returns the receiver instance as a JSON string in canonical
yyyy-mm form.
*/
func (r MonthTuple) MarshalJSON() ([]byte, error) { return jsonAPI.Marshal(r.String()) }

/*
UnmarshalJSON decodes a JSON string into the receiver instance; both
the canonical yyyy-mm and legacy yyyymm grammars are accepted.
*/
func (r *MonthTuple) UnmarshalJSON(b []byte) error {
	s, err := unmarshalJSONString(`MonthTuple`, b)
	if err == nil {
		var v MonthTuple
		if v, err = parseMonthTuple(s); err == nil {
			*r = v
		}
	}
	return err
}

/*
MarshalText returns the receiver instance in canonical yyyy-mm form.
*/
func (r MonthTuple) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

/*
UnmarshalText decodes month text into the receiver instance; both the
canonical and legacy grammars are accepted.
*/
func (r *MonthTuple) UnmarshalText(b []byte) error {
	v, err := parseMonthTuple(string(b))
	if err == nil {
		*r = v
	}
	return err
}

/*
MarshalJSON returns the receiver instance as a JSON string in canonical
yyyy-mm-dd form.
*/
func (r DateTuple) MarshalJSON() ([]byte, error) { return jsonAPI.Marshal(r.String()) }

/*
UnmarshalJSON decodes a JSON string into the receiver instance; both
the canonical yyyy-mm-dd and legacy yyyymmdd grammars are accepted.
*/
func (r *DateTuple) UnmarshalJSON(b []byte) error {
	s, err := unmarshalJSONString(`DateTuple`, b)
	if err == nil {
		var v DateTuple
		if v, err = parseDateTuple(s); err == nil {
			*r = v
		}
	}
	return err
}

/*
MarshalText returns the receiver instance in canonical yyyy-mm-dd form.
*/
func (r DateTuple) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

/*
UnmarshalText decodes date text into the receiver instance; both the
canonical and legacy grammars are accepted.
*/
func (r *DateTuple) UnmarshalText(b []byte) error {
	v, err := parseDateTuple(string(b))
	if err == nil {
		*r = v
	}
	return err
}

/*
MarshalJSON returns the receiver instance as a JSON string in canonical
yyyy-mm-dd@hh:mm:ss form.
*/
func (r DateTimeTuple) MarshalJSON() ([]byte, error) { return jsonAPI.Marshal(r.String()) }

/*
UnmarshalJSON decodes a JSON string in yyyy-mm-dd@hh:mm:ss form into
the receiver instance; the date half may use the legacy grammar.
*/
func (r *DateTimeTuple) UnmarshalJSON(b []byte) error {
	s, err := unmarshalJSONString(`DateTimeTuple`, b)
	if err == nil {
		var v DateTimeTuple
		if v, err = ParseDateTimeTuple(s); err == nil {
			*r = v
		}
	}
	return err
}

/*
MarshalText returns the receiver instance in canonical
yyyy-mm-dd@hh:mm:ss form.
*/
func (r DateTimeTuple) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

/*
UnmarshalText decodes date-time text into the receiver instance; the
date half may use the legacy grammar.
*/
func (r *DateTimeTuple) UnmarshalText(b []byte) error {
	v, err := ParseDateTimeTuple(string(b))
	if err == nil {
		*r = v
	}
	return err
}

/*
MarshalJSON returns the receiver instance as a JSON string in canonical
h:mm:ss form.
*/
func (r Duration) MarshalJSON() ([]byte, error) { return jsonAPI.Marshal(r.String()) }

/*
UnmarshalJSON decodes a JSON string in canonical h:mm:ss form into the
receiver instance.
*/
func (r *Duration) UnmarshalJSON(b []byte) error {
	s, err := unmarshalJSONString(`Duration`, b)
	if err == nil {
		var v Duration
		if v, err = parseDuration(s); err == nil {
			*r = v
		}
	}
	return err
}

/*
MarshalText returns the receiver instance in canonical h:mm:ss form.
*/
func (r Duration) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

/*
UnmarshalText decodes duration text into the receiver instance.
*/
func (r *Duration) UnmarshalText(b []byte) error {
	v, err := parseDuration(string(b))
	if err == nil {
		*r = v
	}
	return err
}

func unmarshalJSONString(name string, b []byte) (s string, err error) {
	if err = jsonAPI.Unmarshal(b, &s); err != nil {
		err = formatErrorf(`Invalid JSON encoding of `, name, `: `, err)
	}
	return
}
