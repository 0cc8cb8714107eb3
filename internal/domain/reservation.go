package domain

import "time"

// Meal plan vocabulary: the wizard's opt-out sentinel and the value the
// dataset uses for the same thing.
const (
	MealPlanNone        = "No meal plan"
	MealPlanNotSelected = "Not Selected"
)

type Status string

const (
	StatusNotCanceled Status = "Not_Canceled"
	StatusCanceled    Status = "Canceled"
	StatusCheckedIn   Status = "Check-In"
	StatusCheckedOut  Status = "Check-Out"
)

// ParseStatus maps raw status strings from the store or the dataset onto the
// known set. Unknown values fall back to Not_Canceled.
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusCanceled, StatusCheckedIn, StatusCheckedOut, StatusNotCanceled:
		return Status(raw)
	default:
		return StatusNotCanceled
	}
}

type Reservation struct {
	BookingID             string
	Adults                int
	Children              int
	WeekendNights         int
	WeekNights            int
	MealPlan              string
	ParkingRequired       bool
	RoomType              string
	LeadTime              int
	ArrivalYear           int
	ArrivalMonth          int
	ArrivalDay            int
	MarketSegment         string
	RepeatedGuest         bool
	PreviousCancellations int
	PreviousNotCanceled   int
	AvgPricePerRoom       float64
	SpecialRequests       int
	Status                Status
	GuestName             string
	GuestEmail            string
	GuestPhone            string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (r Reservation) TotalNights() int {
	return r.WeekendNights + r.WeekNights
}

// Revenue is realized only for completed stays.
func (r Reservation) Revenue() float64 {
	if r.Status != StatusCheckedOut {
		return 0
	}
	return r.AvgPricePerRoom * float64(r.TotalNights())
}

// ArrivalDate composes the year/month/day columns into a comparable date.
func (r Reservation) ArrivalDate() time.Time {
	return time.Date(r.ArrivalYear, time.Month(r.ArrivalMonth), r.ArrivalDay, 0, 0, 0, 0, time.UTC)
}

// DepartureDate is the display checkout date: arrival plus the booked nights.
func (r Reservation) DepartureDate() time.Time {
	return r.ArrivalDate().AddDate(0, 0, r.TotalNights())
}
