package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/domain"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/kafka"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/payment"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/repository"
)

type BookingUseCase interface {
	StartSession(ctx context.Context, stay Stay) (*Session, error)
	GetSession(ctx context.Context, token string) (*Session, error)
	Advance(ctx context.Context, token string, input StepInput) (*Session, error)
	Back(ctx context.Context, token string) (*Session, error)
	CancelReservation(ctx context.Context, bookingID string) (*domain.Reservation, error)
}

// Invalidator drops the cached reservation snapshot after a write.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// MealPlanSource supplies the allowed meal plan options for new sessions.
type MealPlanSource interface {
	MealPlans(ctx context.Context) ([]string, error)
}

var (
	ErrSessionNotFound = errors.New("booking session not found")
	ErrPayment         = errors.New("payment failed")
	ErrPersistence     = errors.New("reservation could not be saved")
)

// StepInput carries the form fields for whichever step the session is on.
// Exactly one of the sections must be set.
type StepInput struct {
	GuestInfo   *GuestInfo      `json:"guest_info,omitempty"`
	Preferences *Preferences    `json:"preferences,omitempty"`
	Payment     *PaymentDetails `json:"payment,omitempty"`
}

type BookingService struct {
	reservations       repository.ReservationRepository
	mealPlans          MealPlanSource
	gateway            payment.Gateway
	cache              Invalidator
	producer           Producer
	sessions           *SessionStore
	reservationsTopic  string
	notificationsTopic string
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithClock overrides the submission-time source used for booking ids and
// lead times.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	reservations repository.ReservationRepository,
	mealPlans MealPlanSource,
	gateway payment.Gateway,
	cache Invalidator,
	producer Producer,
	sessions *SessionStore,
	reservationsTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		reservations:      reservations,
		mealPlans:         mealPlans,
		gateway:           gateway,
		cache:             cache,
		producer:          producer,
		sessions:          sessions,
		reservationsTopic: reservationsTopic,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) StartSession(ctx context.Context, stay Stay) (*Session, error) {
	plans, err := s.mealPlans.MealPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("load meal plans: %w", err)
	}
	return s.sessions.Create(NewWizard(stay, plans)), nil
}

func (s *BookingService) GetSession(ctx context.Context, token string) (*Session, error) {
	session, ok := s.sessions.Get(token)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Advance validates the input against the session's current step and moves
// the wizard forward. On the payment step this performs the external charge
// and persists the reservation before confirming.
func (s *BookingService) Advance(ctx context.Context, token string, input StepInput) (*Session, error) {
	session, ok := s.sessions.Get(token)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	w := session.Wizard
	switch w.Step() {
	case StepGuestInfo:
		if input.GuestInfo == nil {
			return nil, &ValidationError{Fields: map[string]string{"guest_info": "Guest information is required"}}
		}
		if err := w.SubmitGuestInfo(*input.GuestInfo); err != nil {
			return nil, err
		}
	case StepPreferences:
		if input.Preferences == nil {
			return nil, &ValidationError{Fields: map[string]string{"preferences": "Preferences are required"}}
		}
		if err := w.SubmitPreferences(*input.Preferences); err != nil {
			return nil, err
		}
	case StepPayment:
		if input.Payment == nil {
			return nil, &ValidationError{Fields: map[string]string{"payment": "Payment details are required"}}
		}
		return s.submitPayment(ctx, session, *input.Payment)
	default:
		return nil, ErrSealed
	}
	return session, nil
}

func (s *BookingService) Back(ctx context.Context, token string) (*Session, error) {
	session, ok := s.sessions.Get(token)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := session.Wizard.Back(); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelReservation flips a stored reservation to Canceled. Cancellation is
// a status transition; rows are never removed.
func (s *BookingService) CancelReservation(ctx context.Context, bookingID string) (*domain.Reservation, error) {
	updated, err := s.reservations.UpdateStatus(ctx, bookingID, domain.StatusCanceled)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	if err := s.publish(ctx, "reservation_canceled", updated, 0); err != nil {
		log.Printf("WARNING: failed to publish reservation_canceled for %s: %v", updated.BookingID, err)
	}
	return updated, nil
}

// submitPayment is the wizard's only blocking transition. A gateway failure
// or insert failure leaves the session on the payment step with no booking
// id; the charge is not reversed on a failed insert.
func (s *BookingService) submitPayment(ctx context.Context, session *Session, in PaymentDetails) (*Session, error) {
	w := session.Wizard
	if err := w.ValidatePayment(in); err != nil {
		return nil, err
	}

	quote := w.Quote()
	if err := s.gateway.Charge(ctx, quote.Total, in.Method); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayment, err)
	}

	bookingID := NewBookingID(s.now())
	record := s.buildReservation(w, bookingID)
	if err := s.reservations.Insert(ctx, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := w.Confirm(in, bookingID); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	if err := s.publish(ctx, "reservation_created", &record, quote.Total); err != nil {
		log.Printf("WARNING: failed to publish reservation_created for %s: %v", bookingID, err)
	}
	return session, nil
}

// buildReservation maps a confirmed draft onto a store row. Nights are split
// into weekend (Sat/Sun) and week nights from the actual stay dates.
func (s *BookingService) buildReservation(w *Wizard, bookingID string) domain.Reservation {
	stay := w.Stay()
	guest := w.Guest()
	prefs := w.Prefs()

	nights := stay.Nights()
	weekend := 0
	for i := 0; i < nights; i++ {
		switch stay.CheckIn.AddDate(0, 0, i).Weekday() {
		case time.Saturday, time.Sunday:
			weekend++
		}
	}

	leadTime := int(stay.CheckIn.Sub(s.now()).Hours() / 24)
	if leadTime < 0 {
		leadTime = 0
	}

	mealPlan := prefs.MealPlan
	if mealPlan == domain.MealPlanNone {
		mealPlan = domain.MealPlanNotSelected
	}

	specialRequests := 0
	if strings.TrimSpace(prefs.SpecialRequests) != "" {
		specialRequests = 1
	}

	return domain.Reservation{
		BookingID:       bookingID,
		Adults:          stay.Adults,
		Children:        stay.Children,
		WeekendNights:   weekend,
		WeekNights:      nights - weekend,
		MealPlan:        mealPlan,
		ParkingRequired: prefs.Parking,
		RoomType:        stay.RoomName,
		LeadTime:        leadTime,
		ArrivalYear:     stay.CheckIn.Year(),
		ArrivalMonth:    int(stay.CheckIn.Month()),
		ArrivalDay:      stay.CheckIn.Day(),
		MarketSegment:   "Online",
		RepeatedGuest:   false,
		AvgPricePerRoom: stay.NightlyPrice,
		SpecialRequests: specialRequests,
		Status:          domain.StatusNotCanceled,
		GuestName:       strings.TrimSpace(guest.FirstName + " " + guest.LastName),
		GuestEmail:      guest.Email,
		GuestPhone:      guest.Phone,
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, r *domain.Reservation, total float64) error {
	if s.producer == nil || s.reservationsTopic == "" {
		return nil
	}
	event := kafka.ReservationEvent{
		Type:       eventType,
		BookingID:  r.BookingID,
		RoomType:   r.RoomType,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		CheckIn:    r.ArrivalDate(),
		CheckOut:   r.DepartureDate(),
		Total:      total,
		Status:     string(r.Status),
	}
	if err := s.producer.Publish(ctx, s.reservationsTopic, r.BookingID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, r.BookingID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
