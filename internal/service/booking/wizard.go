package booking

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/domain"
)

// Step is the wizard position. The flow is strictly linear:
// guest info -> preferences -> payment -> confirmed.
type Step int

const (
	StepGuestInfo Step = iota + 1
	StepPreferences
	StepPayment
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepGuestInfo:
		return "guest_info"
	case StepPreferences:
		return "preferences"
	case StepPayment:
		return "payment"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

var (
	ErrWrongStep   = errors.New("input does not match the current step")
	ErrAtFirstStep = errors.New("already at the first step")
	ErrSealed      = errors.New("booking is confirmed and can no longer change")
)

// Stay holds the parameters chosen before the wizard starts. The wizard
// never mutates them.
type Stay struct {
	RoomID       string    `json:"room_id"`
	RoomName     string    `json:"room_name"`
	NightlyPrice float64   `json:"nightly_price"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`
}

// Nights is the number of nights between check-in and check-out, never less
// than one.
func (s Stay) Nights() int {
	if s.CheckIn.IsZero() || s.CheckOut.IsZero() {
		return 1
	}
	nights := int(math.Ceil(s.CheckOut.Sub(s.CheckIn).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

type GuestInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IDNumber  string `json:"id_number"`
}

type Preferences struct {
	MealPlan        string `json:"meal_plan"`
	Parking         bool   `json:"parking"`
	SpecialRequests string `json:"special_requests"`
}

const (
	MethodCreditCard   = "credit_card"
	MethodDebitCard    = "debit_card"
	MethodBankTransfer = "bank_transfer"
)

type PaymentDetails struct {
	Method         string `json:"method"`
	CardholderName string `json:"cardholder_name"`
	CardNumber     string `json:"card_number"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
}

// ValidationError carries per-field messages for the step that rejected its
// input. The wizard state is unchanged when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(keys, ", "))
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Wizard is the booking checkout state machine. One instance per guest
// session; not safe for concurrent use.
type Wizard struct {
	stay      Stay
	mealPlans []string
	step      Step
	guest     GuestInfo
	prefs     Preferences
	payment   PaymentDetails
	bookingID string
}

// NewWizard starts a checkout at the guest-info step. mealPlans are the
// allowed preference options, including the opt-out sentinel.
func NewWizard(stay Stay, mealPlans []string) *Wizard {
	return &Wizard{
		stay:      stay,
		mealPlans: mealPlans,
		step:      StepGuestInfo,
		prefs:     Preferences{MealPlan: domain.MealPlanNone},
	}
}

func (w *Wizard) Step() Step          { return w.step }
func (w *Wizard) Stay() Stay          { return w.stay }
func (w *Wizard) BookingID() string   { return w.bookingID }
func (w *Wizard) Guest() GuestInfo    { return w.guest }
func (w *Wizard) Prefs() Preferences  { return w.prefs }
func (w *Wizard) MealPlans() []string { return w.mealPlans }
func (w *Wizard) PaymentMethod() string {
	return w.payment.Method
}

// SubmitGuestInfo validates and merges step 1. On validation failure the
// draft is untouched and the wizard stays put.
func (w *Wizard) SubmitGuestInfo(in GuestInfo) error {
	if w.step == StepConfirmed {
		return ErrSealed
	}
	if w.step != StepGuestInfo {
		return ErrWrongStep
	}
	if err := validateGuestInfo(in); err != nil {
		return err
	}
	w.guest = in
	w.step = StepPreferences
	return nil
}

// SubmitPreferences validates and merges step 2.
func (w *Wizard) SubmitPreferences(in Preferences) error {
	if w.step == StepConfirmed {
		return ErrSealed
	}
	if w.step != StepPreferences {
		return ErrWrongStep
	}
	if err := w.validatePreferences(in); err != nil {
		return err
	}
	w.prefs = in
	w.step = StepPayment
	return nil
}

// ValidatePayment checks step 3 input without advancing; the transition to
// confirmed happens only after the external charge succeeds.
func (w *Wizard) ValidatePayment(in PaymentDetails) error {
	if w.step == StepConfirmed {
		return ErrSealed
	}
	if w.step != StepPayment {
		return ErrWrongStep
	}
	return validatePayment(in)
}

// Confirm merges the payment details, records the generated booking id and
// seals the draft. Callers must have validated the input and completed the
// charge first.
func (w *Wizard) Confirm(in PaymentDetails, bookingID string) error {
	if w.step != StepPayment {
		return ErrWrongStep
	}
	w.payment = in
	w.bookingID = bookingID
	w.step = StepConfirmed
	return nil
}

// Back moves one step towards the start. Confirmed is terminal.
func (w *Wizard) Back() error {
	switch w.step {
	case StepGuestInfo:
		return ErrAtFirstStep
	case StepConfirmed:
		return ErrSealed
	default:
		w.step--
		return nil
	}
}

func validateGuestInfo(in GuestInfo) error {
	fields := make(map[string]string)
	if len(strings.TrimSpace(in.FirstName)) < 2 {
		fields["first_name"] = "First name must be at least 2 characters"
	}
	if len(strings.TrimSpace(in.LastName)) < 2 {
		fields["last_name"] = "Last name must be at least 2 characters"
	}
	if !emailPattern.MatchString(in.Email) {
		fields["email"] = "Please enter a valid email address"
	}
	if len(strings.TrimSpace(in.Phone)) < 10 {
		fields["phone"] = "Please enter a valid phone number"
	}
	if len(strings.TrimSpace(in.IDNumber)) < 5 {
		fields["id_number"] = "Please enter a valid ID number"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (w *Wizard) validatePreferences(in Preferences) error {
	fields := make(map[string]string)
	allowed := false
	for _, plan := range w.mealPlans {
		if in.MealPlan == plan {
			allowed = true
			break
		}
	}
	if !allowed {
		fields["meal_plan"] = "Please select a valid meal plan"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validatePayment(in PaymentDetails) error {
	fields := make(map[string]string)
	switch in.Method {
	case MethodCreditCard, MethodDebitCard:
		if strings.TrimSpace(in.CardholderName) == "" {
			fields["cardholder_name"] = "Cardholder name is required"
		}
		if strings.TrimSpace(in.CardNumber) == "" {
			fields["card_number"] = "Card number is required"
		}
		if strings.TrimSpace(in.ExpiryDate) == "" {
			fields["expiry_date"] = "Expiry date is required"
		}
		if strings.TrimSpace(in.CVV) == "" {
			fields["cvv"] = "CVV is required"
		}
	case MethodBankTransfer:
		// no card fields needed
	default:
		fields["method"] = "Please select a payment method"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

const base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBookingID builds "HR-YYYYMMDD-XXXX" from the submission date and four
// random base36 characters. Uniqueness is not checked; a collision surfaces
// as an insert failure.
func NewBookingID(now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36Upper[rand.Intn(len(base36Upper))]
	}
	return fmt.Sprintf("HR-%04d%02d%02d-%s", now.Year(), int(now.Month()), now.Day(), suffix)
}
