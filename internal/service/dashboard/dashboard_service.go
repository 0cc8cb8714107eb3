package dashboard

import (
	"context"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/analytics"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/domain"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/repository"
)

// DashboardUseCase exposes the derived views the site renders. Methods
// return errors when the store is unreachable; wrap with FailSoft at the
// presentation edge to turn those into empty views.
type DashboardUseCase interface {
	MonthlyRevenue(ctx context.Context) ([]analytics.MonthRevenue, error)
	RoomTypePerformance(ctx context.Context) ([]analytics.RoomTypeRevenue, error)
	GuestDemographics(ctx context.Context) (analytics.Demographics, error)
	Metrics(ctx context.Context) (analytics.Metrics, error)
	RecentBookings(ctx context.Context, limit int) ([]analytics.RecentBooking, error)
	RoomTypes(ctx context.Context) ([]analytics.RoomType, error)
	MealPlans(ctx context.Context) ([]string, error)
	MarketSegments(ctx context.Context) ([]string, error)
}

// Cache is the optional snapshot memo between renders.
type Cache interface {
	GetReservations(ctx context.Context) ([]domain.Reservation, error)
	SetReservations(ctx context.Context, reservations []domain.Reservation) error
}

type DashboardService struct {
	repo       repository.ReservationRepository
	cache      Cache
	totalRooms int
}

func NewDashboardService(repo repository.ReservationRepository, cache Cache, totalRooms int) *DashboardService {
	return &DashboardService{repo: repo, cache: cache, totalRooms: totalRooms}
}

// snapshot is the service's single suspend point: one bulk read, memoized
// through the cache until its TTL runs out or a write invalidates it.
func (s *DashboardService) snapshot(ctx context.Context) ([]domain.Reservation, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetReservations(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	reservations, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetReservations(ctx, reservations)
	}
	return reservations, nil
}

// RefreshSnapshot re-reads the store and rewrites the cached snapshot.
// The worker calls this on a schedule to keep dashboard reads warm.
func (s *DashboardService) RefreshSnapshot(ctx context.Context) error {
	reservations, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	if s.cache != nil {
		return s.cache.SetReservations(ctx, reservations)
	}
	return nil
}

func (s *DashboardService) MonthlyRevenue(ctx context.Context) ([]analytics.MonthRevenue, error) {
	rs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlyRevenue(rs), nil
}

func (s *DashboardService) RoomTypePerformance(ctx context.Context) ([]analytics.RoomTypeRevenue, error) {
	rs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.RoomTypePerformance(rs), nil
}

func (s *DashboardService) GuestDemographics(ctx context.Context) (analytics.Demographics, error) {
	rs, err := s.snapshot(ctx)
	if err != nil {
		return analytics.Demographics{}, err
	}
	return analytics.GuestDemographics(rs), nil
}

func (s *DashboardService) Metrics(ctx context.Context) (analytics.Metrics, error) {
	rs, err := s.snapshot(ctx)
	if err != nil {
		return analytics.Metrics{}, err
	}
	return analytics.DashboardMetrics(rs, s.totalRooms), nil
}

func (s *DashboardService) RecentBookings(ctx context.Context, limit int) ([]analytics.RecentBooking, error) {
	rs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.RecentBookings(rs, limit), nil
}

func (s *DashboardService) RoomTypes(ctx context.Context) ([]analytics.RoomType, error) {
	rs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.RoomTypes(rs), nil
}

func (s *DashboardService) MealPlans(ctx context.Context) ([]string, error) {
	rs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.MealPlans(rs), nil
}

func (s *DashboardService) MarketSegments(ctx context.Context) ([]string, error) {
	rs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.MarketSegments(rs), nil
}

var _ DashboardUseCase = (*DashboardService)(nil)
