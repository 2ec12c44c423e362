package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Date represents a calendar date with no time-of-day component
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > 31 {
		return Date{}, fmt.Errorf("day must be between 1 and 31")
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// DateFromTime truncates a time.Time to its calendar date, discarding the
// time-of-day and timezone components.
func DateFromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// IsZero reports whether the date is the zero value (no date supplied).
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String formats the date as yyyy-mm-dd.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// epochDays returns the number of whole days since the Unix epoch at UTC
// midnight. Building the instant at UTC midnight keeps day arithmetic
// immune to daylight-saving transitions.
func (d Date) epochDays() int64 {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Unix() / 86400
}

// DaysBetween returns end - start in whole days. Negative when end precedes
// start.
func DaysBetween(start, end Date) int {
	return int(end.epochDays() - start.epochDays())
}

// RentalDays returns the inclusive day count of the rental window: both the
// start and the end date are charged, so a same-day booking is 1 day.
// Returns 0 when either date is missing or end precedes start; a zero result
// signals an unsubmittable range, not an error.
func RentalDays(start, end Date) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	diff := DaysBetween(start, end)
	if diff < 0 {
		return 0
	}
	return diff + 1
}

// TotalPriceCents returns the undiscounted rental subtotal.
func TotalPriceCents(days int, dayRateCents int64) int64 {
	return int64(days) * dayRateCents
}

// ApplyProDiscount reduces an amount by the subscription discount percentage,
// rounding to whole cents. A zero percentage is a no-op.
func ApplyProDiscount(amountCents int64, discountPct float64) int64 {
	if discountPct == 0 {
		return amountCents
	}
	return int64(math.Round(float64(amountCents) * (1 - discountPct/100)))
}

// GrandTotalCents adds the fixed refundable security deposit collected at
// checkout to the discounted rental subtotal.
func GrandTotalCents(discountedCents, securityDepositCents int64) int64 {
	return discountedCents + securityDepositCents
}

// CanSubmitBooking reports whether a booking request with the given window is
// submittable: both dates supplied and the range spans at least one day.
func CanSubmitBooking(start, end Date) bool {
	return RentalDays(start, end) > 0
}
