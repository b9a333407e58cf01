// Package routing holds the names under which the routing metadata of a
// message travels in its headers.
package routing

import (
	"github.com/corvus-ch/amqp-header-mapper/message"
	"github.com/streadway/amqp"
)

const (
	// KeyHeader is the header holding the routing key a message is published with.
	KeyHeader = "routingKey"

	// ExchangeHeader is the header holding the name of the exchange a message is published to.
	ExchangeHeader = "exchangeName"
)

// Destination represents the exchange and routing key of an amqp message.
type Destination struct {
	Exchange   string `json:"exchange"`
	RoutingKey string `json:"routing_key"`
}

// FromDelivery creates a new destination from the AMQP message.
func FromDelivery(d amqp.Delivery) Destination {
	return Destination{
		Exchange:   d.Exchange,
		RoutingKey: d.RoutingKey,
	}
}

// FromHeaders reads the destination from the given headers. Missing or nil
// entries result in the default exchange and an empty routing key.
func FromHeaders(h map[string]interface{}) Destination {
	return Destination{
		Exchange:   stringValue(h[ExchangeHeader]),
		RoutingKey: stringValue(h[KeyHeader]),
	}
}

// SetHeaders writes the destination into the given headers.
func (d Destination) SetHeaders(h map[string]interface{}) {
	h[ExchangeHeader] = d.Exchange
	h[KeyHeader] = d.RoutingKey
}

func stringValue(v interface{}) string {
	s, _ := message.Stringify(v)
	return s
}
