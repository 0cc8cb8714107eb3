package dashboard

import (
	"context"
	"log"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/analytics"
)

// FailSoft turns fetch failures into empty views so the dashboard always
// renders. Errors are logged and swallowed here, at the presentation edge,
// keeping the inner service testable against real failures.
type FailSoft struct {
	inner DashboardUseCase
}

func NewFailSoft(inner DashboardUseCase) *FailSoft {
	return &FailSoft{inner: inner}
}

func (f *FailSoft) MonthlyRevenue(ctx context.Context) ([]analytics.MonthRevenue, error) {
	out, err := f.inner.MonthlyRevenue(ctx)
	if err != nil {
		logEmpty("monthly revenue", err)
		return []analytics.MonthRevenue{}, nil
	}
	return out, nil
}

func (f *FailSoft) RoomTypePerformance(ctx context.Context) ([]analytics.RoomTypeRevenue, error) {
	out, err := f.inner.RoomTypePerformance(ctx)
	if err != nil {
		logEmpty("room type performance", err)
		return []analytics.RoomTypeRevenue{}, nil
	}
	return out, nil
}

func (f *FailSoft) GuestDemographics(ctx context.Context) (analytics.Demographics, error) {
	out, err := f.inner.GuestDemographics(ctx)
	if err != nil {
		logEmpty("guest demographics", err)
		return analytics.GuestDemographics(nil), nil
	}
	return out, nil
}

func (f *FailSoft) Metrics(ctx context.Context) (analytics.Metrics, error) {
	out, err := f.inner.Metrics(ctx)
	if err != nil {
		logEmpty("dashboard metrics", err)
		return analytics.Metrics{}, nil
	}
	return out, nil
}

func (f *FailSoft) RecentBookings(ctx context.Context, limit int) ([]analytics.RecentBooking, error) {
	out, err := f.inner.RecentBookings(ctx, limit)
	if err != nil {
		logEmpty("recent bookings", err)
		return []analytics.RecentBooking{}, nil
	}
	return out, nil
}

func (f *FailSoft) RoomTypes(ctx context.Context) ([]analytics.RoomType, error) {
	out, err := f.inner.RoomTypes(ctx)
	if err != nil {
		logEmpty("room types", err)
		return []analytics.RoomType{}, nil
	}
	return out, nil
}

func (f *FailSoft) MealPlans(ctx context.Context) ([]string, error) {
	out, err := f.inner.MealPlans(ctx)
	if err != nil {
		logEmpty("meal plans", err)
		return []string{}, nil
	}
	return out, nil
}

func (f *FailSoft) MarketSegments(ctx context.Context) ([]string, error) {
	out, err := f.inner.MarketSegments(ctx)
	if err != nil {
		logEmpty("market segments", err)
		return []string{}, nil
	}
	return out, nil
}

func logEmpty(view string, err error) {
	log.Printf("dashboard: %s unavailable, serving empty view: %v", view, err)
}

var _ DashboardUseCase = (*FailSoft)(nil)
