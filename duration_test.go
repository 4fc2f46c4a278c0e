package datetuple

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewDuration_componentRanges(t *testing.T) {
	if _, err := NewDuration(200, 0, 0); err != nil {
		t.Errorf("NewDuration(200,0,0) returned error: %v", err)
	}
	for _, tc := range [][3]int{
		{-1, 0, 0},
		{0, 60, 0},
		{0, -1, 0},
		{0, 0, 60},
		{0, 0, -1},
	} {
		if _, err := NewDuration(tc[0], tc[1], tc[2]); !errors.Is(err, ErrRange) {
			t.Errorf("NewDuration(%v) error = %v; want a range error", tc, err)
		}
	}
}

func TestDuration_getters(t *testing.T) {
	d := mustDuration(t, 3, 0, 39)
	if d.Hour() != 3 || d.Minute() != 0 || d.Second() != 39 {
		t.Errorf("getters returned %d,%d,%d; want 3,0,39",
			d.Hour(), d.Minute(), d.Second())
	}
}

func TestDuration_String(t *testing.T) {
	if got := mustDuration(t, 200, 0, 0).String(); got != "200:00:00" {
		t.Errorf("String() = %q; want %q", got, "200:00:00")
	}
	if got := mustDuration(t, 3, 0, 39).String(); got != "03:00:39" {
		t.Errorf("String() = %q; want %q", got, "03:00:39")
	}
	if got := mustDuration(t, 30, 0, 39).ShortString(); got != "30:00" {
		t.Errorf("ShortString() = %q; want %q", got, "30:00")
	}
	if got := mustDuration(t, 3, 0, 39).ShortString(); got != "03:00" {
		t.Errorf("ShortString() = %q; want %q", got, "03:00")
	}
}

func TestDurationBetween_equal(t *testing.T) {
	a := mustDateTime(t, 1, 2, 3, 4, 5, 6)
	b := mustDateTime(t, 1, 2, 3, 4, 5, 6)
	if got := DurationBetween(a, b); got != (Duration{}) {
		t.Errorf("DurationBetween(equal) = %v; want the zero duration", got)
	}
}

func TestDurationBetween_sameDay(t *testing.T) {
	a := mustDateTime(t, 0, 1, 1, 0, 0, 0)
	b := mustDateTime(t, 0, 1, 1, 1, 0, 0)
	want := mustDuration(t, 1, 0, 0)
	if got := DurationBetween(a, b); got != want {
		t.Errorf("DurationBetween = %v; want %v", got, want)
	}
	// symmetric: argument order must not matter
	if got := DurationBetween(b, a); got != want {
		t.Errorf("DurationBetween reversed = %v; want %v", got, want)
	}
}

func TestDurationBetween_acrossDays(t *testing.T) {
	a := mustDateTime(t, 0, 1, 1, 0, 0, 0)
	b := mustDateTime(t, 0, 1, 2, 1, 0, 0)
	if got := DurationBetween(a, b); got != mustDuration(t, 25, 0, 0) {
		t.Errorf("DurationBetween = %v; want 25:00:00", got)
	}
}

func TestDurationBetween_fullRange(t *testing.T) {
	a := NewDateTimeTuple(MinDateTuple(), TimeTuple{})
	b := NewDateTimeTuple(MaxDateTuple(), mustTime(t, 23, 59, 59))

	want := int64(maxDayCount-1)*secondsPerDay + secondsPerDay - 1
	if got := DurationBetween(a, b).ToSeconds(); got != want {
		t.Errorf("full-range DurationBetween = %d seconds; want %d", got, want)
	}
}

func TestDuration_ToMinutes(t *testing.T) {
	if got := mustDuration(t, 26, 30, 30).ToMinutes(); got != 1590 {
		t.Errorf("ToMinutes() = %d; want 1590", got)
	}
}

func TestDurationFromSeconds(t *testing.T) {
	if got := DurationFromSeconds(90000); got != mustDuration(t, 25, 0, 0) {
		t.Errorf("DurationFromSeconds(90000) = %v; want 25:00:00", got)
	}
	if got := DurationFromSeconds(-5); got != (Duration{}) {
		t.Errorf("DurationFromSeconds(-5) = %v; want the zero duration", got)
	}
}

func TestDurationFromTime(t *testing.T) {
	if got := DurationFromTime(mustTime(t, 20, 20, 20)); got != mustDuration(t, 20, 20, 20) {
		t.Errorf("DurationFromTime = %v; want 20:20:20", got)
	}
}

func TestParseDuration(t *testing.T) {
	want := mustDuration(t, 35, 30, 4)

	got, err := ParseDuration("35:30:04")
	if err != nil || got != want {
		t.Errorf("ParseDuration(%q) = %v, %v; want %v, nil", "35:30:04", got, err, want)
	}

	if got, err = ParseDuration("200:00:00"); err != nil || got != mustDuration(t, 200, 0, 0) {
		t.Errorf("ParseDuration(%q) = %v, %v; want 200:00:00, nil", "200:00:00", got, err)
	}

	if got, err = ParseDuration([]byte("35:30:04")); err != nil || got != want {
		t.Errorf("ParseDuration([]byte) = %v, %v; want %v, nil", got, err, want)
	}

	for _, in := range []string{"35:a:04", "5:30:04", "35:30", "353004", ""} {
		if _, err = ParseDuration(in); !errors.Is(err, ErrFormat) {
			t.Errorf("ParseDuration(%q) error = %v; want a format error", in, err)
		}
	}

	if _, err = ParseDuration("35:61:04"); !errors.Is(err, ErrRange) {
		t.Errorf("ParseDuration(%q) error = %v; want a range error", "35:61:04", err)
	}
}

func TestDuration_operators(t *testing.T) {
	zeroes := mustDuration(t, 0, 0, 0)
	ones := mustDuration(t, 1, 1, 1)
	twos := mustDuration(t, 2, 2, 2)

	if got := ones.AddDuration(ones); got != twos {
		t.Errorf("ones.AddDuration(ones) = %v; want %v", got, twos)
	}
	if got := ones.SubtractDuration(ones); got != zeroes {
		t.Errorf("ones.SubtractDuration(ones) = %v; want %v", got, zeroes)
	}
	if !zeroes.Lt(ones) || !twos.Gt(ones) || !zeroes.Le(ones) || !ones.Le(ones) || !ones.Ge(ones) {
		t.Error("comparison methods disagree with expected ordering")
	}
}

func TestDuration_manipulate(t *testing.T) {
	d := mustDuration(t, 10, 58, 59)
	d = d.AddSeconds(3)
	if d != mustDuration(t, 10, 59, 2) {
		t.Errorf("AddSeconds(3) = %v; want 10:59:02", d)
	}
	d = d.SubtractSeconds(1).SubtractSeconds(2)
	if d != mustDuration(t, 10, 58, 59) {
		t.Errorf("SubtractSeconds round trip = %v; want 10:58:59", d)
	}

	d = d.AddMinutes(3)
	if d != mustDuration(t, 11, 1, 59) {
		t.Errorf("AddMinutes(3) = %v; want 11:01:59", d)
	}
	d = d.SubtractMinutes(3)

	d = d.AddHours(3)
	if d != mustDuration(t, 13, 58, 59) {
		t.Errorf("AddHours(3) = %v; want 13:58:59", d)
	}

	// durations are magnitudes; subtraction saturates at zero
	if got := mustDuration(t, 1, 0, 0).SubtractHours(5); got != (Duration{}) {
		t.Errorf("SubtractHours(5) below zero = %v; want the zero duration", got)
	}
}

func ExampleDuration_String() {
	d, _ := NewDuration(200, 0, 0)
	fmt.Println(d)
	// Output: 200:00:00
}

func ExampleDurationBetween() {
	a, _ := ParseDateTimeTuple(`2000-01-01@00:00:00`)
	b, _ := ParseDateTimeTuple(`2000-01-02@01:00:00`)
	fmt.Println(DurationBetween(a, b))
	// Output: 25:00:00
}
