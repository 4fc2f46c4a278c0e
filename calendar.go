package datetuple

/*
calendar.go implements the proleptic Gregorian utilities which underpin
every date normalization path in this package.
*/

/*
IsLeapYear returns a Boolean value indicative of whether year is a leap
year per the Gregorian rule, applied uniformly across the entire
supported range: divisible by four and either not divisible by one
hundred or divisible by four hundred.
*/
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
monthLengths holds the day total of each month of a common year;
February is adjusted for leap years by [DaysInMonth].
*/
var monthLengths = [monthsPerYear]int{
	31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
}

/*
cumMonthDays holds, per month, the day total of all preceding months of
a common year. Used for day-count conversion.
*/
var cumMonthDays = [monthsPerYear]int{
	0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334,
}

/*
DaysInMonth returns the number of days in the given one-based month of
the given year, with February yielding twenty nine (29) in leap years.
Months outside [1,12] yield zero (0).
*/
func DaysInMonth(year, month int) int {
	if month < 1 || month > monthsPerYear {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

func daysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// leapYearsBefore counts leap years in [0,year). Year zero is a leap
// year under the proleptic rule.
func leapYearsBefore(year int) int {
	if year <= 0 {
		return 0
	}
	return (year+3)/4 - (year+99)/100 + (year+399)/400
}

// daysBeforeYear counts days from 0000-01-01 up to (excluding)
// January 1 of the given year.
func daysBeforeYear(year int) int {
	return 365*year + leapYearsBefore(year)
}
