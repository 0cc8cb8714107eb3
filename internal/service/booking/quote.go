package booking

import "github.com/TomasMurua/Hotel-Pacific-Reef/internal/domain"

// Nightly add-on rates and the tax applied on top of everything.
const (
	mealPlanNightly = 25.0
	parkingNightly  = 15.0
	taxRate         = 0.12
)

// Quote is the derived price breakdown shown in the booking summary. It is
// recomputed from the draft on demand and is not part of the wizard state.
type Quote struct {
	Nights       int     `json:"nights"`
	RoomSubtotal float64 `json:"room_subtotal"`
	MealPlanCost float64 `json:"meal_plan_cost"`
	ParkingCost  float64 `json:"parking_cost"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
}

func (w *Wizard) Quote() Quote {
	nights := w.stay.Nights()
	q := Quote{
		Nights:       nights,
		RoomSubtotal: w.stay.NightlyPrice * float64(nights),
	}
	if w.prefs.MealPlan != "" && w.prefs.MealPlan != domain.MealPlanNone {
		q.MealPlanCost = mealPlanNightly * float64(nights)
	}
	if w.prefs.Parking {
		q.ParkingCost = parkingNightly * float64(nights)
	}
	q.Tax = taxRate * (q.RoomSubtotal + q.MealPlanCost + q.ParkingCost)
	q.Total = q.RoomSubtotal + q.MealPlanCost + q.ParkingCost + q.Tax
	return q
}
