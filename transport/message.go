// Package transport holds the AMQP message as seen by the broker client: a
// fixed set of protocol properties and a property bag of arbitrary headers.
package transport

import "github.com/streadway/amqp"

// Message is an AMQP message.
type Message struct {
	Properties Properties
	Body       []byte
}

// New creates a new message with an empty property bag.
func New(body []byte) *Message {
	return &Message{
		Properties: Properties{Headers: amqp.Table{}},
		Body:       body,
	}
}

// FromDelivery creates a new message from a message received from the broker.
func FromDelivery(d amqp.Delivery) *Message {
	return &Message{
		Properties: NewProperties(d),
		Body:       d.Body,
	}
}

// Publishing creates the message to be handed to the broker.
func (m *Message) Publishing() (amqp.Publishing, error) {
	p := m.Properties
	priority, err := p.PriorityOctet()
	if err != nil {
		return amqp.Publishing{}, err
	}

	return amqp.Publishing{
		Headers:         copyTable(p.Headers),
		ContentType:     p.ContentType,
		ContentEncoding: p.ContentEncoding,
		DeliveryMode:    uint8(p.DeliveryMode),
		Priority:        priority,
		CorrelationId:   p.Correlation(),
		ReplyTo:         p.ReplyTo,
		Expiration:      p.Expiration,
		MessageId:       p.MessageID,
		Timestamp:       p.Timestamp,
		Type:            p.Type,
		UserId:          p.UserID,
		AppId:           p.AppID,
		Body:            m.Body,
	}, nil
}

func copyTable(t map[string]interface{}) amqp.Table {
	if t == nil {
		return nil
	}

	c := make(amqp.Table, len(t))
	for k, v := range t {
		c[k] = v
	}

	return c
}
