package email

import (
	"context"
	"fmt"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	fmt.Printf("send email to %s about %s for booking %s (%s, %s - %s, total %.2f)\n",
		event.GuestEmail, event.Type, event.BookingID, event.RoomType,
		event.CheckIn.Format("2006-01-02"), event.CheckOut.Format("2006-01-02"), event.Total)
	return nil
}
