package datetuple

/*
helpers_test.go contains constructors and clock fixtures shared by the
package tests.
*/

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, h, m, s int) TimeTuple {
	t.Helper()
	v, err := NewTimeTuple(h, m, s)
	if err != nil {
		t.Fatalf("NewTimeTuple(%d,%d,%d) returned error: %v", h, m, s, err)
	}
	return v
}

func mustMonth(t *testing.T, y, m int) MonthTuple {
	t.Helper()
	v, err := NewMonthTuple(y, m)
	if err != nil {
		t.Fatalf("NewMonthTuple(%d,%d) returned error: %v", y, m, err)
	}
	return v
}

func mustDate(t *testing.T, y, m, d int) DateTuple {
	t.Helper()
	v, err := NewDateTuple(y, m, d)
	if err != nil {
		t.Fatalf("NewDateTuple(%d,%d,%d) returned error: %v", y, m, d, err)
	}
	return v
}

func mustDuration(t *testing.T, h, m, s int) Duration {
	t.Helper()
	v, err := NewDuration(h, m, s)
	if err != nil {
		t.Fatalf("NewDuration(%d,%d,%d) returned error: %v", h, m, s, err)
	}
	return v
}

func mustDateTime(t *testing.T, y, mo, d, h, mi, s int) DateTimeTuple {
	t.Helper()
	return NewDateTimeTuple(mustDate(t, y, mo, d), mustTime(t, h, mi, s))
}

// withFixedNow pins the package clock to a fixed instant for the
// duration of the test.
func withFixedNow(t *testing.T, fixed time.Time) {
	t.Helper()
	orig := nowSource
	nowSource = func() time.Time { return fixed }
	t.Cleanup(func() { nowSource = orig })
}
