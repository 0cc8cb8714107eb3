package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/domain"
)

var defaultAmenities = []string{"WiFi", "Air Conditioning", "Room Service", "TV"}

// RoomTypes builds the guest-facing room cards from the distinct room types
// present in the data: rounded average nightly price and the largest party
// observed for the type (at least 2 adults / 2 children).
func RoomTypes(rs []domain.Reservation) []RoomType {
	type acc struct {
		priceSum    float64
		count       int
		maxAdults   int
		maxChildren int
	}
	grouped := make(map[string]*acc)
	for _, r := range rs {
		if r.RoomType == "" {
			continue
		}
		a, ok := grouped[r.RoomType]
		if !ok {
			a = &acc{}
			grouped[r.RoomType] = a
		}
		a.priceSum += r.AvgPricePerRoom
		a.count++
		if r.Adults > a.maxAdults {
			a.maxAdults = r.Adults
		}
		if r.Children > a.maxChildren {
			a.maxChildren = r.Children
		}
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]RoomType, 0, len(names))
	for i, name := range names {
		a := grouped[name]
		adults, children := a.maxAdults, a.maxChildren
		if adults == 0 {
			adults = 2
		}
		if children == 0 {
			children = 2
		}
		out = append(out, RoomType{
			ID:          fmt.Sprintf("room-%d", i+1),
			Name:        name,
			Price:       int(math.Round(a.priceSum / float64(a.count))),
			Capacity:    RoomCapacity{Adults: adults, Children: children},
			Amenities:   defaultAmenities,
			Description: fmt.Sprintf("Comfortable %s with modern amenities and elegant design.", strings.ToLower(name)),
		})
	}
	return out
}

// MealPlans lists the distinct meal plans present in the data, with the
// opt-out sentinel first. The dataset's "Not Selected" value is folded into
// the sentinel. The rest are sorted for stable output.
func MealPlans(rs []domain.Reservation) []string {
	plans := distinct(rs, func(r domain.Reservation) string {
		if r.MealPlan == domain.MealPlanNotSelected {
			return ""
		}
		return r.MealPlan
	})
	return append([]string{domain.MealPlanNone}, plans...)
}

// MarketSegments lists the distinct market segments present in the data.
func MarketSegments(rs []domain.Reservation) []string {
	return distinct(rs, func(r domain.Reservation) string { return r.MarketSegment })
}

func distinct(rs []domain.Reservation, field func(domain.Reservation) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rs {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
