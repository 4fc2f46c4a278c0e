package datetuple

/*
common.go contains aliases, tables and small helpers used by myriad
components throughout this package.
*/

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

/*
official import aliases.
*/
var (
	mkerr     func(string) error            = errors.New
	itoa      func(int) string              = strconv.Itoa
	atoi      func(string) (int, error)     = strconv.Atoi
	split     func(string, string) []string = strings.Split
	refTypeOf func(any) reflect.Type        = reflect.TypeOf
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
calendrical bounds shared by every component. The supported range spans
0000-01-01 00:00:00 through 9999-12-31 23:59:59 inclusive.
*/
const (
	minYear = 0
	maxYear = 9999

	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	minutesPerDay    = 1440
	hoursPerDay      = 24

	monthsPerYear = 12

	// flat month index of Dec 9999 (see MonthTuple.AddMonths).
	maxMonthIndex = maxYear*monthsPerYear + monthsPerYear - 1
)

/*
monthStrings holds the fixed English three-letter month abbreviations
used by the readable string forms.
*/
var monthStrings = [monthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

/*
clamp returns v bounded to the inclusive range [lo,hi]. This is the
saturation primitive behind all month, year and day-count arithmetic.
*/
func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// toInt converts two ASCII digit bytes; callers validate digits first.
func toInt(b0, b1 byte) int { return int(b0-'0')*10 + int(b1-'0') }

func put2(b []byte, i, v int) {
	b[i] = byte('0' + v/10)
	b[i+1] = byte('0' + v%10)
}

func put4(b []byte, i, v int) {
	b[i] = byte('0' + (v/1000)%10)
	b[i+1] = byte('0' + (v/100)%10)
	b[i+2] = byte('0' + (v/10)%10)
	b[i+3] = byte('0' + v%10)
}

// pad4 renders a year as its fixed four-digit form.
func pad4(v int) string {
	var b [4]byte
	put4(b[:], 0, v)
	return string(b[:])
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
