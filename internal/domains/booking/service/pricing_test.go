package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hms/internal/domains/booking/service"
	"hms/shared/failure"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func TestComputeNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
		wantErr  bool
	}{
		{
			name:     "three nights",
			checkIn:  "2026-01-10",
			checkOut: "2026-01-13",
			want:     3,
		},
		{
			name:     "single night",
			checkIn:  "2026-01-10",
			checkOut: "2026-01-11",
			want:     1,
		},
		{
			name:     "same day is rejected",
			checkIn:  "2026-01-10",
			checkOut: "2026-01-10",
			wantErr:  true,
		},
		{
			name:     "check-out before check-in is rejected",
			checkIn:  "2026-01-13",
			checkOut: "2026-01-10",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nights, err := service.ComputeNights(date(tt.checkIn), date(tt.checkOut))

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, nights)
		})
	}
}

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name   string
		price  string
		nights int
		want   string
	}{
		{name: "whole amount", price: "100.00", nights: 3, want: "300"},
		{name: "single night", price: "99.99", nights: 1, want: "99.99"},
		{name: "cents multiply exactly", price: "10.50", nights: 4, want: "42"},
		{name: "zero nights", price: "100.00", nights: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := decimal.RequireFromString(tt.price)

			total := service.ComputeTotal(price, tt.nights)

			assert.True(t, total.Equal(decimal.RequireFromString(tt.want)),
				"expected %s, got %s", tt.want, total.String())
		})
	}
}
