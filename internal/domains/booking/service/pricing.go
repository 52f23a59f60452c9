package service

import (
	"math"
	"time"

	"hms/shared/failure"

	"github.com/shopspring/decimal"
)

const hoursPerNight = 24

// ComputeNights counts the whole nights between check-in and check-out,
// rounding partial days up. A non-positive range is rejected.
func ComputeNights(checkIn, checkOut time.Time) (int, error) {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / hoursPerNight))
	if nights <= 0 {
		return 0, failure.BadRequestFromString("check-out date must be after check-in date")
	}

	return nights, nil
}

// ComputeTotal prices a stay at the nightly rate, rounded to two decimal
// places. Decimal arithmetic keeps currency amounts exact.
func ComputeTotal(pricePerNight decimal.Decimal, nights int) decimal.Decimal {
	return pricePerNight.Mul(decimal.NewFromInt(int64(nights))).Round(2)
}
