package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/repository"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/service/booking"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	RoomID       string  `json:"room_id"`
	RoomName     string  `json:"room_name"`
	NightlyPrice float64 `json:"nightly_price"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
}

type sessionResponse struct {
	Token       string              `json:"token"`
	Step        string              `json:"step"`
	Stay        booking.Stay        `json:"stay"`
	Guest       booking.GuestInfo   `json:"guest"`
	Preferences booking.Preferences `json:"preferences"`
	MealPlans   []string            `json:"meal_plans"`
	Quote       booking.Quote       `json:"quote"`
	BookingID   string              `json:"booking_id,omitempty"`
}

type cancelResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:token", h.get)
	router.POST("/:token/advance", h.advance)
	router.POST("/:token/back", h.back)
}

// RegisterReservations mounts the admin cancellation route, which addresses
// stored reservations by booking id rather than wizard sessions by token.
func (h *BookingHandler) RegisterReservations(router *gin.RouterGroup) {
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be formatted as YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be formatted as YYYY-MM-DD"})
		return
	}

	session, err := h.service.StartSession(c.Request.Context(), booking.Stay{
		RoomID:       req.RoomID,
		RoomName:     req.RoomName,
		NightlyPrice: req.NightlyPrice,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Adults:       req.Adults,
		Children:     req.Children,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse(session))
}

func (h *BookingHandler) get(c *gin.Context) {
	session, err := h.service.GetSession(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *BookingHandler) advance(c *gin.Context) {
	var input booking.StepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.service.Advance(c.Request.Context(), c.Param("token"), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *BookingHandler) back(c *gin.Context) {
	session, err := h.service.Back(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	reservation, err := h.service.CancelReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, cancelResponse{
		BookingID: reservation.BookingID,
		Status:    string(reservation.Status),
	})
}

func toSessionResponse(session *booking.Session) sessionResponse {
	w := session.Wizard
	return sessionResponse{
		Token:       session.Token,
		Step:        w.Step().String(),
		Stay:        w.Stay(),
		Guest:       w.Guest(),
		Preferences: w.Prefs(),
		MealPlans:   w.MealPlans(),
		Quote:       w.Quote(),
		BookingID:   w.BookingID(),
	}
}

func respondBookingError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": vErr.Fields})
	case errors.Is(err, booking.ErrSessionNotFound), errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrPayment):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrPersistence):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrWrongStep), errors.Is(err, booking.ErrAtFirstStep), errors.Is(err, booking.ErrSealed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
