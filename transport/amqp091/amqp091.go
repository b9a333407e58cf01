// Package amqp091 converts between transport messages and the types of the
// github.com/rabbitmq/amqp091-go client.
//
// The conversion itself is done by the transport package, this package only
// maps the client types onto the ones transport understands.
package amqp091

import (
	"github.com/corvus-ch/amqp-header-mapper/routing"
	"github.com/corvus-ch/amqp-header-mapper/transport"
	amqp091 "github.com/rabbitmq/amqp091-go"
	"github.com/streadway/amqp"
)

// FromDelivery creates a new message from a message received from the broker.
func FromDelivery(d amqp091.Delivery) *transport.Message {
	return transport.FromDelivery(amqp.Delivery{
		Headers:         amqp.Table(d.Headers),
		ContentType:     d.ContentType,
		ContentEncoding: d.ContentEncoding,
		DeliveryMode:    d.DeliveryMode,
		Priority:        d.Priority,
		CorrelationId:   d.CorrelationId,
		ReplyTo:         d.ReplyTo,
		Expiration:      d.Expiration,
		MessageId:       d.MessageId,
		Timestamp:       d.Timestamp,
		Type:            d.Type,
		UserId:          d.UserId,
		AppId:           d.AppId,
		ConsumerTag:     d.ConsumerTag,
		DeliveryTag:     d.DeliveryTag,
		Redelivered:     d.Redelivered,
		Exchange:        d.Exchange,
		RoutingKey:      d.RoutingKey,
		Body:            d.Body,
	})
}

// Destination returns the exchange and routing key the message was published with.
func Destination(d amqp091.Delivery) routing.Destination {
	return routing.Destination{
		Exchange:   d.Exchange,
		RoutingKey: d.RoutingKey,
	}
}

// Publishing creates the message to be handed to the broker.
func Publishing(m *transport.Message) (amqp091.Publishing, error) {
	p, err := m.Publishing()
	if err != nil {
		return amqp091.Publishing{}, err
	}

	return amqp091.Publishing{
		Headers:         amqp091.Table(p.Headers),
		ContentType:     p.ContentType,
		ContentEncoding: p.ContentEncoding,
		DeliveryMode:    p.DeliveryMode,
		Priority:        p.Priority,
		CorrelationId:   p.CorrelationId,
		ReplyTo:         p.ReplyTo,
		Expiration:      p.Expiration,
		MessageId:       p.MessageId,
		Timestamp:       p.Timestamp,
		Type:            p.Type,
		UserId:          p.UserId,
		AppId:           p.AppId,
		Body:            p.Body,
	}, nil
}
