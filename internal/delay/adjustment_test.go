package delay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"railstay/internal/delay"
)

func TestComputeAdjustment(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		delayMinutes int
		severity     delay.Severity
		wantChanged  bool
		wantCheckIn  time.Time
		wantErr      error
	}{
		{
			name:         "minor delay shifts the window",
			delayMinutes: 45,
			severity:     delay.SeverityMinor,
			wantChanged:  true,
			wantCheckIn:  checkIn.Add(45 * time.Minute),
		},
		{
			name:         "major delay shifts the window",
			delayMinutes: 90,
			severity:     delay.SeverityMajor,
			wantChanged:  true,
			wantCheckIn:  checkIn.Add(90 * time.Minute),
		},
		{
			name:         "none leaves the window alone",
			delayMinutes: 0,
			severity:     delay.SeverityNone,
		},
		{
			name:         "cancelled leaves the window alone",
			delayMinutes: 120,
			severity:     delay.SeverityCancelled,
		},
		{
			name:         "zero minute minor delay is a no-op",
			delayMinutes: 0,
			severity:     delay.SeverityMinor,
		},
		{
			name:         "negative delay is rejected",
			delayMinutes: -1,
			severity:     delay.SeverityMinor,
			wantErr:      delay.ErrInvalidDelay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := delay.ComputeAdjustment(checkIn, checkOut, tt.delayMinutes, tt.severity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantChanged, got.Changed)

			if tt.wantChanged {
				assert.Equal(t, tt.wantCheckIn, *got.CheckIn)
				assert.Equal(t, checkOut.Sub(checkIn), got.CheckOut.Sub(*got.CheckIn), "stay duration must not change")
			} else {
				assert.Nil(t, got.CheckIn)
				assert.Nil(t, got.CheckOut)
			}
		})
	}
}

func TestComputeAdjustment_InvalidStay(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut time.Time
	}{
		{name: "checkout before checkin", checkOut: checkIn.Add(-time.Hour)},
		{name: "checkout equals checkin", checkOut: checkIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := delay.ComputeAdjustment(checkIn, tt.checkOut, 45, delay.SeverityMinor)
			assert.ErrorIs(t, err, delay.ErrInvalidStay)
		})
	}
}

func TestComputeAdjustment_Idempotent(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC)

	first, err := delay.ComputeAdjustment(checkIn, checkOut, 30, delay.SeverityMinor)
	assert.NoError(t, err)

	second, err := delay.ComputeAdjustment(checkIn, checkOut, 30, delay.SeverityMinor)
	assert.NoError(t, err)

	assert.Equal(t, *first.CheckIn, *second.CheckIn)
	assert.Equal(t, *first.CheckOut, *second.CheckOut)
}

func TestComputeAdjustment_PastWindowStillShifts(t *testing.T) {
	checkIn := time.Date(2001, 1, 1, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2001, 1, 2, 11, 0, 0, 0, time.UTC)

	got, err := delay.ComputeAdjustment(checkIn, checkOut, 15, delay.SeverityMinor)
	assert.NoError(t, err)
	assert.True(t, got.Changed)
	assert.Equal(t, checkIn.Add(15*time.Minute), *got.CheckIn)
}
