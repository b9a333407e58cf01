package input

import (
	"encoding/json"
	"io"
	"time"

	"github.com/pkg/errors"
	amqp091 "github.com/rabbitmq/amqp091-go"
	"github.com/streadway/amqp"
)

type jsonDelivery struct {
	AppId           string                 `json:"app_id"`
	ConsumerTag     string                 `json:"consumer_tag"`
	ContentEncoding string                 `json:"content_encoding"`
	ContentType     string                 `json:"content_type"`
	CorrelationID   string                 `json:"correlation_id"`
	DeliveryMode    uint8                  `json:"delivery_mode"`
	DeliveryTag     uint64                 `json:"delivery_tag"`
	Exchange        string                 `json:"exchange"`
	Expiration      string                 `json:"expiration"`
	Headers         map[string]interface{} `json:"application_headers"`
	MessageID       string                 `json:"message_id"`
	MsgType         string                 `json:"type"`
	Priority        uint8                  `json:"priority"`
	Redelivered     bool                   `json:"redelivered"`
	ReplyTo         string                 `json:"reply_to"`
	RoutingKey      string                 `json:"routing_key"`
	Timestamp       time.Time              `json:"timestamp"`
	UserID          string                 `json:"user_id"`
	Body            string                 `json:"body"`
}

// DecodeDelivery reads the JSON description of a message received from the
// broker.
func DecodeDelivery(r io.Reader) (amqp.Delivery, error) {
	d, err := decodeDelivery(r)
	if err != nil {
		return amqp.Delivery{}, err
	}

	return amqp.Delivery{
		AppId:           d.AppId,
		ConsumerTag:     d.ConsumerTag,
		ContentEncoding: d.ContentEncoding,
		ContentType:     d.ContentType,
		CorrelationId:   d.CorrelationID,
		DeliveryMode:    d.DeliveryMode,
		DeliveryTag:     d.DeliveryTag,
		Exchange:        d.Exchange,
		Expiration:      d.Expiration,
		Headers:         d.Headers,
		MessageId:       d.MessageID,
		Type:            d.MsgType,
		Priority:        d.Priority,
		Redelivered:     d.Redelivered,
		ReplyTo:         d.ReplyTo,
		RoutingKey:      d.RoutingKey,
		Timestamp:       d.Timestamp,
		UserId:          d.UserID,
		Body:            []byte(d.Body),
	}, nil
}

// DecodeAmqp091Delivery is DecodeDelivery for the amqp091-go client.
func DecodeAmqp091Delivery(r io.Reader) (amqp091.Delivery, error) {
	d, err := decodeDelivery(r)
	if err != nil {
		return amqp091.Delivery{}, err
	}

	return amqp091.Delivery{
		AppId:           d.AppId,
		ConsumerTag:     d.ConsumerTag,
		ContentEncoding: d.ContentEncoding,
		ContentType:     d.ContentType,
		CorrelationId:   d.CorrelationID,
		DeliveryMode:    d.DeliveryMode,
		DeliveryTag:     d.DeliveryTag,
		Exchange:        d.Exchange,
		Expiration:      d.Expiration,
		Headers:         d.Headers,
		MessageId:       d.MessageID,
		Type:            d.MsgType,
		Priority:        d.Priority,
		Redelivered:     d.Redelivered,
		ReplyTo:         d.ReplyTo,
		RoutingKey:      d.RoutingKey,
		Timestamp:       d.Timestamp,
		UserId:          d.UserID,
		Body:            []byte(d.Body),
	}, nil
}

func decodeDelivery(r io.Reader) (jsonDelivery, error) {
	var d jsonDelivery
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&d); err != nil {
		return jsonDelivery{}, errors.WithMessage(err, "failed to parse delivery")
	}

	return d, nil
}
