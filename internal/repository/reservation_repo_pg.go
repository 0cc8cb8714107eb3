package repository

import (
	"context"
	"errors"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("reservation not found")

// ReservationRepository is the store boundary: one bulk read for the
// aggregator, one insert for the booking flow, and a status transition for
// cancellations. Rows are never deleted.
type ReservationRepository interface {
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	Insert(ctx context.Context, r *domain.Reservation) error
	UpdateStatus(ctx context.Context, bookingID string, status domain.Status) (*domain.Reservation, error)
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

const reservationColumns = `booking_id, adults, children, weekend_nights, week_nights, meal_plan, parking_required, room_type, lead_time, arrival_year, arrival_month, arrival_day, market_segment, repeated_guest, previous_cancellations, previous_not_canceled, avg_price_per_room, special_requests, status, guest_name, guest_email, guest_phone, created_at, updated_at`

func (r *PGReservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY arrival_year, arrival_month, arrival_day`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		var status string
		if err := rows.Scan(&res.BookingID, &res.Adults, &res.Children, &res.WeekendNights, &res.WeekNights, &res.MealPlan, &res.ParkingRequired, &res.RoomType, &res.LeadTime, &res.ArrivalYear, &res.ArrivalMonth, &res.ArrivalDay, &res.MarketSegment, &res.RepeatedGuest, &res.PreviousCancellations, &res.PreviousNotCanceled, &res.AvgPricePerRoom, &res.SpecialRequests, &status, &res.GuestName, &res.GuestEmail, &res.GuestPhone, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		res.Status = domain.ParseStatus(status)
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *PGReservationRepository) Insert(ctx context.Context, res *domain.Reservation) error {
	return r.db.QueryRow(ctx, `INSERT INTO reservations (booking_id, adults, children, weekend_nights, week_nights, meal_plan, parking_required, room_type, lead_time, arrival_year, arrival_month, arrival_day, market_segment, repeated_guest, previous_cancellations, previous_not_canceled, avg_price_per_room, special_requests, status, guest_name, guest_email, guest_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING created_at, updated_at`,
		res.BookingID, res.Adults, res.Children, res.WeekendNights, res.WeekNights, res.MealPlan, res.ParkingRequired, res.RoomType, res.LeadTime, res.ArrivalYear, res.ArrivalMonth, res.ArrivalDay, res.MarketSegment, res.RepeatedGuest, res.PreviousCancellations, res.PreviousNotCanceled, res.AvgPricePerRoom, res.SpecialRequests, string(res.Status), res.GuestName, res.GuestEmail, res.GuestPhone).
		Scan(&res.CreatedAt, &res.UpdatedAt)
}

func (r *PGReservationRepository) UpdateStatus(ctx context.Context, bookingID string, status domain.Status) (*domain.Reservation, error) {
	row := r.db.QueryRow(ctx, `UPDATE reservations SET status=$1, updated_at=now() WHERE booking_id=$2 RETURNING `+reservationColumns, string(status), bookingID)
	var res domain.Reservation
	var rawStatus string
	if err := row.Scan(&res.BookingID, &res.Adults, &res.Children, &res.WeekendNights, &res.WeekNights, &res.MealPlan, &res.ParkingRequired, &res.RoomType, &res.LeadTime, &res.ArrivalYear, &res.ArrivalMonth, &res.ArrivalDay, &res.MarketSegment, &res.RepeatedGuest, &res.PreviousCancellations, &res.PreviousNotCanceled, &res.AvgPricePerRoom, &res.SpecialRequests, &rawStatus, &res.GuestName, &res.GuestEmail, &res.GuestPhone, &res.CreatedAt, &res.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	res.Status = domain.ParseStatus(rawStatus)
	return &res, nil
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
