package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.uber.org/zap"
)

// BookingLogHandler writes every confirmed booking to the log. Undecodable
// payloads are acked and dropped.
func BookingLogHandler(log *zap.Logger) message.NoPublishHandlerFunc {
	log = log.With(zap.String("consumer", TopicBookingConfirmed))

	return func(msg *message.Message) error {
		var event BookingConfirmedEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			log.Warn("Dropping malformed booking event", zap.String("message_id", msg.UUID), zap.Error(err))
			return nil
		}

		log.Info("Booking confirmed",
			zap.String("reference", event.Reference),
			zap.String("flight", event.FlightNumber),
			zap.String("route", event.Route),
			zap.Int("passengers", event.PassengerCount),
			zap.Int("amount", event.Amount),
		)
		return nil
	}
}

func NewRouter(ps *PubSub, log *zap.Logger) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, ps.Logger)
	if err != nil {
		return nil, fmt.Errorf("create message router: %w", err)
	}

	router.AddMiddleware(middleware.Recoverer)
	router.AddNoPublisherHandler(
		"booking_confirmed_logger",
		TopicBookingConfirmed,
		ps.Subscriber,
		BookingLogHandler(log),
	)

	return router, nil
}
