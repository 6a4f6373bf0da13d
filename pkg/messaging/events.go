package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

const TopicBookingConfirmed = "booking.confirmed"

type BookingConfirmedEvent struct {
	Reference      string    `json:"reference"`
	UserID         string    `json:"user_id,omitempty"`
	Airline        string    `json:"airline"`
	FlightNumber   string    `json:"flight_number"`
	Route          string    `json:"route"`
	PassengerCount int       `json:"passenger_count"`
	Amount         int       `json:"amount"`
	PaymentID      string    `json:"payment_id"`
	BookingIDs     []int64   `json:"booking_ids,omitempty"`
	ConfirmedAt    time.Time `json:"confirmed_at"`
}

type EventPublisher struct {
	publisher message.Publisher
}

func NewEventPublisher(publisher message.Publisher) *EventPublisher {
	return &EventPublisher{publisher: publisher}
}

func (p *EventPublisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode booking event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("reference", event.Reference)

	if err := p.publisher.Publish(TopicBookingConfirmed, msg); err != nil {
		return fmt.Errorf("publish %s: %w", TopicBookingConfirmed, err)
	}
	return nil
}
