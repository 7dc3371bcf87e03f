package events

import (
	"context"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	Connection *amqp091.Connection
	Exchange   string
	Log        *zap.Logger
}

func NewRabbitMQPublisher(connection *amqp091.Connection, exchange string, logger *zap.Logger) contracts.EventPublisher {
	return &rabbitMQPublisher{
		Connection: connection,
		Exchange:   exchange,
		Log:        logger,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.Connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, routingKey)
	}
	defer channel.Close()

	err = channel.ExchangeDeclare(p.Exchange, "topic", true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, routingKey)
	}

	err = channel.PublishWithContext(ctx, p.Exchange, routingKey, false, false, amqp091.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, routingKey)
	}

	p.Log.Debug("Event published",
		zap.String("exchange", p.Exchange),
		zap.String("routing_key", routingKey),
	)
	return nil
}
