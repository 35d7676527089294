package dto

import (
	"railstay/internal/domains/analytics/model"
)

type SummaryResponse struct {
	TotalBookings     int   `json:"total_bookings"`
	ConfirmedBookings int   `json:"confirmed_bookings"`
	CancelledBookings int   `json:"cancelled_bookings"`
	TotalRevenue      int64 `json:"total_revenue"`
	ConfirmedRevenue  int64 `json:"confirmed_revenue"`
	UniquePassengers  int   `json:"unique_passengers"`
	HotelsUsed        int   `json:"hotels_used"`
	TrainsUsed        int   `json:"trains_used"`
}

func (r *SummaryResponse) FromModel(mod model.Summary) {
	r.TotalBookings = mod.TotalBookings
	r.ConfirmedBookings = mod.ConfirmedBookings
	r.CancelledBookings = mod.CancelledBookings
	r.TotalRevenue = mod.TotalRevenue
	r.ConfirmedRevenue = mod.ConfirmedRevenue
	r.UniquePassengers = mod.UniquePassengers
	r.HotelsUsed = mod.HotelsUsed
	r.TrainsUsed = mod.TrainsUsed
}
