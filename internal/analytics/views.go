package analytics

import (
	"fmt"
	"time"
)

// MonthRevenue is one point of the monthly revenue trend.
type MonthRevenue struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// Period renders the group key as "YYYY-MM".
func (m MonthRevenue) Period() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// RoomTypeRevenue is one row of the revenue-by-room-type chart.
type RoomTypeRevenue struct {
	RoomType string  `json:"room_type"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
	AvgPrice float64 `json:"avg_price"`
}

type SegmentShare struct {
	Segment    string `json:"segment"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type GuestSplit struct {
	Repeated int `json:"repeated"`
	New      int `json:"new"`
}

type LeadTimeBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type Demographics struct {
	MarketSegments []SegmentShare   `json:"market_segments"`
	Guests         GuestSplit       `json:"guests"`
	LeadTime       []LeadTimeBucket `json:"lead_time"`
}

// Metrics are the dashboard KPI cards.
type Metrics struct {
	OccupancyRate    float64 `json:"occupancy_rate"`
	ADR              float64 `json:"adr"`
	RevPAR           float64 `json:"revpar"`
	CancellationRate float64 `json:"cancellation_rate"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalBookings    int     `json:"total_bookings"`
}

// StayState is the three-value presentation status for the bookings table.
type StayState string

const (
	StayCompleted StayState = "Completed"
	StayCanceled  StayState = "Canceled"
	StayActive    StayState = "Active"
)

type RecentBooking struct {
	BookingID string    `json:"booking_id"`
	RoomType  string    `json:"room_type"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Guests    int       `json:"guests"`
	State     StayState `json:"status"`
	Revenue   float64   `json:"revenue"`
}

type RoomCapacity struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// RoomType is the guest-facing room card derived from the reservation data.
type RoomType struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       int          `json:"price"`
	Capacity    RoomCapacity `json:"capacity"`
	Amenities   []string     `json:"amenities"`
	Description string       `json:"description"`
}
