package datetuple

import (
	"errors"
	"fmt"
	"testing"
)

func TestDateTimeTuple_String(t *testing.T) {
	tuple := mustDateTime(t, 2000, 5, 10, 8, 30, 0)
	if got := tuple.String(); got != "2000-05-10@08:30:00" {
		t.Errorf("String() = %q; want %q", got, "2000-05-10@08:30:00")
	}
}

func TestDateTimeTuple_ReadableString(t *testing.T) {
	tuple := mustDateTime(t, 2000, 5, 10, 8, 30, 0)
	if got := tuple.ReadableString(); got != "10 May 2000 08:30:00" {
		t.Errorf("ReadableString() = %q; want %q", got, "10 May 2000 08:30:00")
	}
}

func TestDateTimeTuple_accessors(t *testing.T) {
	tuple := mustDateTime(t, 2000, 5, 10, 8, 30, 0)
	if tuple.Date() != mustDate(t, 2000, 5, 10) {
		t.Errorf("Date() = %v; want 2000-05-10", tuple.Date())
	}
	if tuple.Time() != mustTime(t, 8, 30, 0) {
		t.Errorf("Time() = %v; want 08:30:00", tuple.Time())
	}
}

func TestDateTimeTuple_equals(t *testing.T) {
	tuple1 := mustDateTime(t, 2000, 5, 10, 8, 30, 0)
	tuple2 := mustDateTime(t, 2000, 5, 10, 8, 30, 0)
	if tuple1 != tuple2 || !tuple1.Eq(tuple2) || tuple1.Ne(tuple2) {
		t.Errorf("identical tuples compare as unequal: %v vs %v", tuple1, tuple2)
	}
}

func TestDateTimeTuple_comparisons(t *testing.T) {
	tuple1 := mustDateTime(t, 2000, 5, 10, 8, 30, 0)
	tuple2 := mustDateTime(t, 2000, 5, 10, 9, 30, 0)
	tuple3 := mustDateTime(t, 2000, 5, 11, 8, 30, 0)

	if !tuple1.Lt(tuple2) || !tuple2.Lt(tuple3) {
		t.Error("lexicographic (date, time) ordering violated")
	}
	if !tuple3.Gt(tuple1) || !tuple1.Le(tuple1) || !tuple3.Ge(tuple2) {
		t.Error("comparison methods disagree with expected ordering")
	}
}

func TestParseDateTimeTuple(t *testing.T) {
	want := mustDateTime(t, 2000, 5, 10, 8, 30, 0)

	got, err := ParseDateTimeTuple("2000-05-10@08:30:00")
	if err != nil || got != want {
		t.Errorf("ParseDateTimeTuple(%q) = %v, %v; want %v, nil",
			"2000-05-10@08:30:00", got, err, want)
	}

	// legacy date half
	if got, err = ParseDateTimeTuple("20000510@08:30:00"); err != nil || got != want {
		t.Errorf("ParseDateTimeTuple(%q) = %v, %v; want %v, nil",
			"20000510@08:30:00", got, err, want)
	}

	if got, err = ParseDateTimeTuple([]byte("2000-05-10@08:30:00")); err != nil || got != want {
		t.Errorf("ParseDateTimeTuple([]byte) = %v, %v; want %v, nil", got, err, want)
	}

	if _, err = ParseDateTimeTuple("2000-15-10@08:30:00"); !errors.Is(err, ErrRange) {
		t.Errorf("ParseDateTimeTuple month 15 error = %v; want a range error", err)
	}

	for _, in := range []string{
		"2-a11111@05:a:04",
		"2000-05-10 08:30:00",
		"2000-05-10@08:30:00@",
		"2000-05-10",
		"",
	} {
		if _, err = ParseDateTimeTuple(in); !errors.Is(err, ErrFormat) {
			t.Errorf("ParseDateTimeTuple(%q) error = %v; want a format error", in, err)
		}
	}
}

func TestDateTimeTuple_stringRoundTrip(t *testing.T) {
	const lit = "2002-01-23@08:30:30"
	tuple, err := ParseDateTimeTuple(lit)
	if err != nil {
		t.Fatalf("ParseDateTimeTuple(%q) returned error: %v", lit, err)
	}
	if got := tuple.String(); got != lit {
		t.Errorf("round trip = %q; want %q", got, lit)
	}
}

func ExampleDateTimeTuple_ReadableString() {
	dt, _ := ParseDateTimeTuple(`2018-10-02@08:30:00`)
	fmt.Println(dt.ReadableString())
	// Output: 2 Oct 2018 08:30:00
}
