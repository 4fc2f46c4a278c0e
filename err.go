package datetuple

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

/*
ErrRange matches, via [errors.Is], any error produced when a numeric
component handed to a constructor or parser falls outside its valid
bound, including a day of the month exceeding the leap-year-aware
maximum for its month.
*/
var ErrRange = mkerr("value out of range")

/*
ErrFormat matches, via [errors.Is], any error produced when a parsed
string conforms to no accepted grammar for its type, whether through
a wrong delimiter, a wrong field count or a non-numeric field.
*/
var ErrFormat = mkerr("malformed input string")

/*
types which implement the error interface.
*/
type (
	rangeErr  struct{ e error }
	formatErr struct{ e error }
)

func rangeErrorf(m ...any) error  { return rangeErr{mkerrf(m...)} }
func formatErrorf(m ...any) error { return formatErr{mkerrf(m...)} }

func (r rangeErr) Error() string  { return `RANGE ERROR: ` + r.e.Error() }
func (r formatErr) Error() string { return `FORMAT ERROR: ` + r.e.Error() }

func (r rangeErr) Is(target error) bool  { return target == ErrRange }
func (r formatErr) Is(target error) bool { return target == ErrFormat }

func (r rangeErr) Unwrap() error  { return r.e }
func (r formatErr) Unwrap() error { return r.e }

func errorComponentRange(name, comp string, v, lo, hi int) error {
	return rangeErrorf(name, ` `, comp, ` `, v,
		` out of range [`, lo, `:`, hi, `]`)
}

func errorBadTypeForParser(name string, inputType any) (err error) {
	var inName string = `<nil>` // sensible default
	if inputType != nil {
		inName = refTypeOf(inputType).String()
	}
	return formatErrorf(`Invalid input type for `, name, ` parser: `, inName)
}

func errorBadFormat(name, s, hint string) error {
	return formatErrorf(`Invalid str formatting of `, name, `: `, s,
		`; expects a string formatted like `, hint)
}

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	b := newStrBuilder()
	for _, part := range parts {
		switch tv := part.(type) {
		case string:
			b.WriteString(tv)
		case int:
			b.WriteString(itoa(tv))
		case int64:
			b.WriteString(itoa(int(tv)))
		case error:
			if tv != nil {
				b.WriteString(tv.Error())
			}
		}
	}

	return mkerr(b.String())
}
