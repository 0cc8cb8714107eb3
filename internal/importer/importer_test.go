package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Insert(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, bookingID string, status domain.Status) (*domain.Reservation, error) {
	args := m.Called(ctx, bookingID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

const csvHeader = "Booking_ID,no_of_adults,no_of_children,no_of_weekend_nights,no_of_week_nights,type_of_meal_plan,required_car_parking_space,room_type_reserved,lead_time,arrival_year,arrival_month,arrival_date,market_segment_type,repeated_guest,no_of_previous_cancellations,no_of_previous_bookings_not_canceled,avg_price_per_room,no_of_special_requests,booking_status\n"

func TestImporter_Import(t *testing.T) {
	mockRepo := &MockReservationRepository{}
	imp := NewImporter(mockRepo)

	ctx := context.Background()
	data := csvHeader +
		"INN00001,2,0,1,2,Meal Plan 1,0,Room_Type 1,224,2017,10,2,Offline,0,0,0,65.00,0,Not_Canceled\n" +
		"INN00002,2,0,2,3,Not Selected,1,Room_Type 1,5,2018,11,6,Online,1,0,0,106.68,1,Check-Out\n"

	var rows []domain.Reservation
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Reservation")).Run(func(args mock.Arguments) {
		rows = append(rows, *args.Get(1).(*domain.Reservation))
	}).Return(nil).Twice()

	count, err := imp.Import(ctx, strings.NewReader(data))

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, rows, 2)

	assert.Equal(t, "INN00001", rows[0].BookingID)
	assert.Equal(t, 2, rows[0].Adults)
	assert.Equal(t, 224, rows[0].LeadTime)
	assert.False(t, rows[0].ParkingRequired)
	assert.Equal(t, domain.StatusNotCanceled, rows[0].Status)

	assert.Equal(t, "INN00002", rows[1].BookingID)
	assert.True(t, rows[1].ParkingRequired)
	assert.True(t, rows[1].RepeatedGuest)
	assert.Equal(t, 106.68, rows[1].AvgPricePerRoom)
	assert.Equal(t, domain.StatusCheckedOut, rows[1].Status)

	mockRepo.AssertExpectations(t)
}

func TestImporter_Import_CoercesBadNumbers(t *testing.T) {
	mockRepo := &MockReservationRepository{}
	imp := NewImporter(mockRepo)

	ctx := context.Background()
	data := csvHeader +
		"INN00003,two,0,1,2,Meal Plan 1,0,Room_Type 1,n/a,2017,10,2,Offline,0,0,0,bad,0,Unknown_Status\n"

	var row domain.Reservation
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Reservation")).Run(func(args mock.Arguments) {
		row = *args.Get(1).(*domain.Reservation)
	}).Return(nil).Once()

	count, err := imp.Import(ctx, strings.NewReader(data))

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Zero(t, row.Adults)
	assert.Zero(t, row.LeadTime)
	assert.Zero(t, row.AvgPricePerRoom)
	assert.Equal(t, domain.StatusNotCanceled, row.Status)
}

func TestImporter_Import_SkipsFailedInserts(t *testing.T) {
	mockRepo := &MockReservationRepository{}
	imp := NewImporter(mockRepo)

	ctx := context.Background()
	data := csvHeader +
		"INN00001,2,0,1,2,Meal Plan 1,0,Room_Type 1,224,2017,10,2,Offline,0,0,0,65.00,0,Not_Canceled\n" +
		"INN00002,2,0,2,3,Not Selected,1,Room_Type 1,5,2018,11,6,Online,1,0,0,106.68,1,Check-Out\n"

	mockRepo.On("Insert", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.BookingID == "INN00001"
	})).Return(errors.New("duplicate key")).Once()
	mockRepo.On("Insert", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.BookingID == "INN00002"
	})).Return(nil).Once()

	count, err := imp.Import(ctx, strings.NewReader(data))

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	mockRepo.AssertExpectations(t)
}

func TestImporter_Import_RejectsShortHeader(t *testing.T) {
	mockRepo := &MockReservationRepository{}
	imp := NewImporter(mockRepo)

	_, err := imp.Import(context.Background(), strings.NewReader("Booking_ID,no_of_adults\n"))

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Insert")
}
