// Package calendar converts Gregorian instants to the Ethiopian calendar.
//
// The Ethiopian calendar has twelve 30-day months plus Pagumen, a 13th
// month of 5 days (6 in Ethiopian leap years). The year begins on Gregorian
// September 11, shifted to September 12 for the year following an Ethiopian
// leap year.
package calendar

import (
	"fmt"
	"strconv"
	"time"
)

// monthNames holds the 13 Amharic month names, indexed by month-1.
var monthNames = [13]string{
	"መስከረም",
	"ጥቅምት",
	"ኅዳር",
	"ታኅሣሥ",
	"ጥር",
	"የካቲት",
	"መጋቢት",
	"ሚያዝያ",
	"ግንቦት",
	"ሰኔ",
	"ሐምሌ",
	"ነሐሴ",
	"ጳጉሜን",
}

// Date is an Ethiopian calendar date. The zero value marks an
// unconvertible input and formats as an empty string.
type Date struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"` // 1-13
	Day       int    `json:"day"`
	MonthName string `json:"monthName"`
}

// IsZero reports whether the date is the invalid-input sentinel.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String formats the date as "{monthName} {day}, {year}".
// The zero date formats as an empty string.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d, %d", d.MonthName, d.Day, d.Year)
}

// FromGregorian converts a Gregorian instant to an Ethiopian date.
// The zero time yields the zero Date.
func FromGregorian(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}

	gy := t.Year()
	doy := t.YearDay()
	ny := newYearDayOfYear(gy)

	var ey, edoy int

	if doy >= ny {
		// On or after Enkutatash: the Ethiopian year that starts this
		// September.
		ey = gy - 7
		edoy = doy - ny + 1
	} else {
		// Before Enkutatash: still inside the Ethiopian year that started
		// last September.
		ey = gy - 8
		edoy = doy + daysInGregorianYear(gy-1) - newYearDayOfYear(gy-1) + 1
	}

	month := (edoy-1)/30 + 1
	day := (edoy-1)%30 + 1

	return Date{
		Year:      ey,
		Month:     month,
		Day:       day,
		MonthName: monthNames[month-1],
	}
}

// FromString converts an ISO date string or a numeric Unix timestamp
// (seconds) to an Ethiopian date. Unparseable input yields the zero Date.
func FromString(s string) Date {
	if s == "" {
		return Date{}
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return FromGregorian(t)
		}
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromGregorian(time.Unix(secs, 0).UTC())
	}

	return Date{}
}

// Format returns the display string for a Gregorian instant, or an empty
// string for the zero time. Calendar display is best-effort cosmetic
// output, so there is no error path.
func Format(t time.Time) string {
	return FromGregorian(t).String()
}

// IsEthiopianLeapYear reports whether the Ethiopian year has a 6-day
// Pagumen.
func IsEthiopianLeapYear(year int) bool {
	return year%4 == 3
}

func isGregorianLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func daysInGregorianYear(year int) int {
	if isGregorianLeapYear(year) {
		return 366
	}
	return 365
}

// newYearDayOfYear returns the Gregorian day-of-year of Enkutatash.
// September 11 is day 254 in common years. It lands on 255 when the
// Gregorian leap day precedes it, or when the ending Ethiopian year was a
// leap year and pushed the new year to September 12.
func newYearDayOfYear(gregorianYear int) int {
	if isGregorianLeapYear(gregorianYear) || IsEthiopianLeapYear(gregorianYear-8) {
		return 255
	}
	return 254
}
