package transport

import (
	"fmt"
	"math"
	"time"

	"github.com/streadway/amqp"
)

// Properties represents the properties of an AMQP message.
//
// String properties use the empty string for absent values, as the wire
// format does. The correlation id is kept both as the legacy byte sequence and
// as a string. DeliveryMode is the mode the message is going to be sent with,
// ReceivedDeliveryMode the one it arrived with.
type Properties struct {
	Headers              amqp.Table   `json:"application_headers"`
	ContentType          string       `json:"content_type,omitempty"`
	ContentEncoding      string       `json:"content_encoding,omitempty"`
	DeliveryMode         DeliveryMode `json:"delivery_mode,omitempty"`
	ReceivedDeliveryMode DeliveryMode `json:"received_delivery_mode,omitempty"`
	Priority             *int         `json:"priority,omitempty"`
	CorrelationID        []byte       `json:"correlation_id_bytes,omitempty"`
	CorrelationIDString  string       `json:"correlation_id,omitempty"`
	ReplyTo              string       `json:"reply_to,omitempty"`
	Expiration           string       `json:"expiration,omitempty"`
	MessageID            string       `json:"message_id,omitempty"`
	Timestamp            time.Time    `json:"timestamp"`
	Type                 string       `json:"type,omitempty"`
	UserID               string       `json:"user_id,omitempty"`
	AppID                string       `json:"app_id,omitempty"`
}

// NewProperties creates a new properties struct from the AMQP message.
func NewProperties(d amqp.Delivery) Properties {
	p := Properties{
		Headers:              copyTable(d.Headers),
		ContentType:          d.ContentType,
		ContentEncoding:      d.ContentEncoding,
		ReceivedDeliveryMode: deliveryModeFromWire(d.DeliveryMode),
		CorrelationIDString:  d.CorrelationId,
		ReplyTo:              d.ReplyTo,
		Expiration:           d.Expiration,
		MessageID:            d.MessageId,
		Timestamp:            d.Timestamp,
		Type:                 d.Type,
		UserID:               d.UserId,
		AppID:                d.AppId,
	}

	// A zero priority is not distinguishable from an absent one on the wire.
	if d.Priority != 0 {
		p.SetPriority(int(d.Priority))
	}

	return p
}

// SetPriority sets the priority property.
func (p *Properties) SetPriority(priority int) {
	p.Priority = &priority
}

// Correlation returns the correlation id, preferring the string form over the
// legacy byte sequence.
func (p Properties) Correlation() string {
	if p.CorrelationIDString != "" {
		return p.CorrelationIDString
	}

	return string(p.CorrelationID)
}

// PriorityOctet returns the priority as it is put on the wire. An absent
// priority is 0. Priorities outside of 0..255 are rejected.
func (p Properties) PriorityOctet() (uint8, error) {
	if p.Priority == nil {
		return 0, nil
	}

	if *p.Priority < 0 || *p.Priority > math.MaxUint8 {
		return 0, fmt.Errorf("priority %d out of range [0, %d]", *p.Priority, math.MaxUint8)
	}

	return uint8(*p.Priority), nil
}
