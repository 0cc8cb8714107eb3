// Package analytics derives the dashboard views from a reservation snapshot.
// Every function here is a pure pass over its input: no I/O, no mutation of
// the source slice, and no failure modes for well-formed records.
package analytics

import (
	"math"
	"sort"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/domain"
)

const defaultRecentLimit = 8

// MonthlyRevenue groups completed stays by arrival year and month, ordered
// ascending, truncated to the most recent 12 periods. Periods without a
// completed stay are omitted rather than zero-filled.
func MonthlyRevenue(rs []domain.Reservation) []MonthRevenue {
	type key struct{ year, month int }
	grouped := make(map[key]*MonthRevenue)
	for _, r := range rs {
		if r.Status != domain.StatusCheckedOut {
			continue
		}
		k := key{r.ArrivalYear, r.ArrivalMonth}
		g, ok := grouped[k]
		if !ok {
			g = &MonthRevenue{Year: k.year, Month: k.month}
			grouped[k] = g
		}
		g.Revenue += r.Revenue()
		g.Bookings++
	}

	out := make([]MonthRevenue, 0, len(grouped))
	for _, g := range grouped {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	if len(out) > 12 {
		out = out[len(out)-12:]
	}
	return out
}

// RoomTypePerformance groups completed stays by room type, descending by
// revenue. AvgPrice is the mean of avg_price_per_room over the group.
func RoomTypePerformance(rs []domain.Reservation) []RoomTypeRevenue {
	type acc struct {
		revenue  float64
		priceSum float64
		count    int
	}
	grouped := make(map[string]*acc)
	for _, r := range rs {
		if r.Status != domain.StatusCheckedOut {
			continue
		}
		a, ok := grouped[r.RoomType]
		if !ok {
			a = &acc{}
			grouped[r.RoomType] = a
		}
		a.revenue += r.Revenue()
		a.priceSum += r.AvgPricePerRoom
		a.count++
	}

	out := make([]RoomTypeRevenue, 0, len(grouped))
	for roomType, a := range grouped {
		out = append(out, RoomTypeRevenue{
			RoomType: roomType,
			Revenue:  a.revenue,
			Bookings: a.count,
			AvgPrice: a.priceSum / float64(a.count),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].RoomType < out[j].RoomType
	})
	return out
}

// GuestDemographics cuts the whole record set three ways: market-segment
// shares, repeated-vs-new guests, and a lead-time histogram over records
// with 0 < lead_time < 365.
func GuestDemographics(rs []domain.Reservation) Demographics {
	d := Demographics{
		LeadTime: []LeadTimeBucket{
			{Range: "0-7 days"},
			{Range: "8-30 days"},
			{Range: "31-90 days"},
			{Range: "91+ days"},
		},
	}

	segments := make(map[string]int)
	for _, r := range rs {
		segments[r.MarketSegment]++

		if r.RepeatedGuest {
			d.Guests.Repeated++
		} else {
			d.Guests.New++
		}

		if r.LeadTime > 0 && r.LeadTime < 365 {
			switch {
			case r.LeadTime <= 7:
				d.LeadTime[0].Count++
			case r.LeadTime <= 30:
				d.LeadTime[1].Count++
			case r.LeadTime <= 90:
				d.LeadTime[2].Count++
			default:
				d.LeadTime[3].Count++
			}
		}
	}

	total := len(rs)
	for segment, count := range segments {
		share := SegmentShare{Segment: segment, Count: count}
		if total > 0 {
			share.Percentage = int(math.Round(float64(count) / float64(total) * 100))
		}
		d.MarketSegments = append(d.MarketSegments, share)
	}
	sort.Slice(d.MarketSegments, func(i, j int) bool {
		if d.MarketSegments[i].Count != d.MarketSegments[j].Count {
			return d.MarketSegments[i].Count > d.MarketSegments[j].Count
		}
		return d.MarketSegments[i].Segment < d.MarketSegments[j].Segment
	})
	return d
}

// DashboardMetrics computes the KPI cards. totalRooms is the hotel inventory
// size from config, not something derived from the data.
func DashboardMetrics(rs []domain.Reservation, totalRooms int) Metrics {
	m := Metrics{TotalBookings: len(rs)}

	var roomNights int
	var canceled int
	for _, r := range rs {
		switch r.Status {
		case domain.StatusCheckedOut:
			roomNights += r.TotalNights()
			m.TotalRevenue += r.Revenue()
		case domain.StatusCanceled:
			canceled++
		}
	}

	if totalRooms > 0 {
		m.OccupancyRate = float64(roomNights) / float64(totalRooms*365) * 100
		if m.OccupancyRate > 100 {
			m.OccupancyRate = 100
		}
		m.RevPAR = m.TotalRevenue / float64(totalRooms)
	}
	if roomNights > 0 {
		m.ADR = m.TotalRevenue / float64(roomNights)
	}
	if len(rs) > 0 {
		m.CancellationRate = math.Round(float64(canceled)/float64(len(rs))*100*10) / 10
	}
	return m
}

// RecentBookings returns the latest stays by arrival date. A non-positive
// limit falls back to the dashboard default of 8 rows.
func RecentBookings(rs []domain.Reservation, limit int) []RecentBooking {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	sorted := make([]domain.Reservation, len(rs))
	copy(sorted, rs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalDate().After(sorted[j].ArrivalDate())
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]RecentBooking, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, RecentBooking{
			BookingID: r.BookingID,
			RoomType:  r.RoomType,
			CheckIn:   r.ArrivalDate(),
			CheckOut:  r.DepartureDate(),
			Guests:    r.Adults + r.Children,
			State:     stayState(r.Status),
			Revenue:   r.AvgPricePerRoom * float64(r.TotalNights()),
		})
	}
	return out
}

func stayState(s domain.Status) StayState {
	switch s {
	case domain.StatusCheckedOut:
		return StayCompleted
	case domain.StatusCanceled:
		return StayCanceled
	default:
		return StayActive
	}
}
