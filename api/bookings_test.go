package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/domain"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) StartSession(ctx context.Context, stay booking.Stay) (*booking.Session, error) {
	args := m.Called(ctx, stay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Session), args.Error(1)
}

func (m *MockBookingUseCase) GetSession(ctx context.Context, token string) (*booking.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Session), args.Error(1)
}

func (m *MockBookingUseCase) Advance(ctx context.Context, token string, input booking.StepInput) (*booking.Session, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Session), args.Error(1)
}

func (m *MockBookingUseCase) Back(ctx context.Context, token string) (*booking.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Session), args.Error(1)
}

func (m *MockBookingUseCase) CancelReservation(ctx context.Context, bookingID string) (*domain.Reservation, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func testSession(token string) *booking.Session {
	stay := booking.Stay{
		RoomID:       "room-1",
		RoomName:     "Room_Type 1",
		NightlyPrice: 100,
		CheckIn:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		Adults:       2,
	}
	return &booking.Session{
		Token:     token,
		Wizard:    booking.NewWizard(stay, []string{domain.MealPlanNone, "Meal Plan 1"}),
		CreatedAt: time.Now(),
	}
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := createBookingRequest{
		RoomID:       "room-1",
		RoomName:     "Room_Type 1",
		NightlyPrice: 100,
		CheckIn:      "2026-09-10",
		CheckOut:     "2026-09-13",
		Adults:       2,
	}
	body, _ := json.Marshal(req)
	c.Request = httptest.NewRequest("POST", "/api/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	stay := booking.Stay{
		RoomID:       "room-1",
		RoomName:     "Room_Type 1",
		NightlyPrice: 100,
		CheckIn:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		Adults:       2,
	}
	mockService.On("StartSession", c.Request.Context(), stay).Return(testSession("token123"), nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response sessionResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "token123", response.Token)
	assert.Equal(t, "guest_info", response.Step)
	assert.Equal(t, 3, response.Quote.Nights)
	assert.Empty(t, response.BookingID)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_badDate(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createBookingRequest{CheckIn: "10/09/2026", CheckOut: "2026-09-13"})
	c.Request = httptest.NewRequest("POST", "/api/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "StartSession")
}

func TestBookingHandler_get_notFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "token", Value: "missing"}}
	c.Request = httptest.NewRequest("GET", "/api/bookings/missing", nil)

	mockService.On("GetSession", c.Request.Context(), "missing").Return(nil, booking.ErrSessionNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_advance(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := booking.StepInput{GuestInfo: &booking.GuestInfo{
		FirstName: "Ana",
		LastName:  "Reyes",
		Email:     "ana.reyes@example.com",
		Phone:     "+56912345678",
		IDNumber:  "12345678-9",
	}}
	body, _ := json.Marshal(input)
	c.Params = gin.Params{{Key: "token", Value: "token123"}}
	c.Request = httptest.NewRequest("POST", "/api/bookings/token123/advance", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	session := testSession("token123")
	assert.NoError(t, session.Wizard.SubmitGuestInfo(*input.GuestInfo))

	mockService.On("Advance", c.Request.Context(), "token123", mock.AnythingOfType("booking.StepInput")).Return(session, nil)

	handler.advance(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response sessionResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "preferences", response.Step)
	assert.Equal(t, "ana.reyes@example.com", response.Guest.Email)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_advance_validationError(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(booking.StepInput{GuestInfo: &booking.GuestInfo{Email: "not-an-email"}})
	c.Params = gin.Params{{Key: "token", Value: "token123"}}
	c.Request = httptest.NewRequest("POST", "/api/bookings/token123/advance", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	vErr := &booking.ValidationError{Fields: map[string]string{"email": "Please enter a valid email address"}}
	mockService.On("Advance", c.Request.Context(), "token123", mock.AnythingOfType("booking.StepInput")).Return(nil, vErr)

	handler.advance(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response struct {
		Errors map[string]string `json:"errors"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Please enter a valid email address", response.Errors["email"])
}

func TestBookingHandler_advance_paymentFailure(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(booking.StepInput{Payment: &booking.PaymentDetails{Method: booking.MethodBankTransfer}})
	c.Params = gin.Params{{Key: "token", Value: "token123"}}
	c.Request = httptest.NewRequest("POST", "/api/bookings/token123/advance", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Advance", c.Request.Context(), "token123", mock.AnythingOfType("booking.StepInput")).Return(nil, booking.ErrPayment)

	handler.advance(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestBookingHandler_back_atFirstStep(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "token", Value: "token123"}}
	c.Request = httptest.NewRequest("POST", "/api/bookings/token123/back", nil)

	mockService.On("Back", c.Request.Context(), "token123").Return(nil, booking.ErrAtFirstStep)

	handler.back(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "HR-20260810-XYZ1"}}
	c.Request = httptest.NewRequest("DELETE", "/api/reservations/HR-20260810-XYZ1", nil)

	canceled := &domain.Reservation{BookingID: "HR-20260810-XYZ1", Status: domain.StatusCanceled}
	mockService.On("CancelReservation", c.Request.Context(), "HR-20260810-XYZ1").Return(canceled, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response cancelResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "HR-20260810-XYZ1", response.BookingID)
	assert.Equal(t, string(domain.StatusCanceled), response.Status)

	mockService.AssertExpectations(t)
}
