package delay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"railstay/internal/delay"
	bookingModel "railstay/internal/domains/booking/model"
)

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		name           string
		current        bookingModel.Status
		severity       delay.Severity
		explicitCancel bool
		want           bookingModel.Status
	}{
		{
			name:     "confirmed stays confirmed on none",
			current:  bookingModel.StatusConfirmed,
			severity: delay.SeverityNone,
			want:     bookingModel.StatusConfirmed,
		},
		{
			name:     "confirmed becomes rescheduled on minor",
			current:  bookingModel.StatusConfirmed,
			severity: delay.SeverityMinor,
			want:     bookingModel.StatusRescheduled,
		},
		{
			name:     "confirmed becomes rescheduled on major",
			current:  bookingModel.StatusConfirmed,
			severity: delay.SeverityMajor,
			want:     bookingModel.StatusRescheduled,
		},
		{
			name:     "rescheduled reverts to confirmed on none",
			current:  bookingModel.StatusRescheduled,
			severity: delay.SeverityNone,
			want:     bookingModel.StatusConfirmed,
		},
		{
			name:     "rescheduled stays rescheduled on minor",
			current:  bookingModel.StatusRescheduled,
			severity: delay.SeverityMinor,
			want:     bookingModel.StatusRescheduled,
		},
		{
			name:     "confirmed becomes cancelled on train cancellation",
			current:  bookingModel.StatusConfirmed,
			severity: delay.SeverityCancelled,
			want:     bookingModel.StatusCancelled,
		},
		{
			name:     "rescheduled becomes cancelled on train cancellation",
			current:  bookingModel.StatusRescheduled,
			severity: delay.SeverityCancelled,
			want:     bookingModel.StatusCancelled,
		},
		{
			name:           "explicit cancel wins over none",
			current:        bookingModel.StatusConfirmed,
			severity:       delay.SeverityNone,
			explicitCancel: true,
			want:           bookingModel.StatusCancelled,
		},
		{
			name:     "cancelled absorbs none",
			current:  bookingModel.StatusCancelled,
			severity: delay.SeverityNone,
			want:     bookingModel.StatusCancelled,
		},
		{
			name:     "cancelled absorbs minor",
			current:  bookingModel.StatusCancelled,
			severity: delay.SeverityMinor,
			want:     bookingModel.StatusCancelled,
		},
		{
			name:     "cancelled absorbs major",
			current:  bookingModel.StatusCancelled,
			severity: delay.SeverityMajor,
			want:     bookingModel.StatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := delay.ResolveStatus(tt.current, tt.severity, tt.explicitCancel)
			assert.Equal(t, tt.want, got)
		})
	}
}
