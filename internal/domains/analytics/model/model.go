package model

const (
	EntityName = "analytics"
)

// Summary is the admin analytics aggregate computed in a single query over
// bookings and their relations.
type Summary struct {
	TotalBookings     int   `db:"total_bookings"`
	ConfirmedBookings int   `db:"confirmed_bookings"`
	CancelledBookings int   `db:"cancelled_bookings"`
	TotalRevenue      int64 `db:"total_revenue"`
	ConfirmedRevenue  int64 `db:"confirmed_revenue"`
	UniquePassengers  int   `db:"unique_passengers"`
	HotelsUsed        int   `db:"hotels_used"`
	TrainsUsed        int   `db:"trains_used"`
}
