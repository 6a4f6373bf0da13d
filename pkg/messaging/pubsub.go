package messaging

import (
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

type PubSub struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber
	Logger     watermill.LoggerAdapter

	inProcess bool
}

// NewPubSub returns an AMQP backed pub/sub when amqpURL is set and an
// in-process channel otherwise.
func NewPubSub(amqpURL string, log *zap.Logger) (*PubSub, error) {
	logger := NewZapAdapter(log)

	if amqpURL == "" {
		ch := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger)
		return &PubSub{Publisher: ch, Subscriber: ch, Logger: logger, inProcess: true}, nil
	}

	config := amqp.NewDurableQueueConfig(amqpURL)

	publisher, err := amqp.NewPublisher(config, logger)
	if err != nil {
		return nil, fmt.Errorf("create amqp publisher: %w", err)
	}

	subscriber, err := amqp.NewSubscriber(config, logger)
	if err != nil {
		_ = publisher.Close()
		return nil, fmt.Errorf("create amqp subscriber: %w", err)
	}

	return &PubSub{Publisher: publisher, Subscriber: subscriber, Logger: logger}, nil
}

func (p *PubSub) Close() error {
	if p.inProcess {
		return p.Publisher.Close()
	}
	return errors.Join(p.Publisher.Close(), p.Subscriber.Close())
}
