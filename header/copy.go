package header

import (
	"github.com/corvus-ch/amqp-header-mapper/message"
	"github.com/corvus-ch/amqp-header-mapper/routing"
	"github.com/corvus-ch/amqp-header-mapper/transport"
	"github.com/streadway/amqp"
)

// CopyHeaders copies headers into the property bag of msg.
//
// Headers named after an AMQP property or carrying the routing key or exchange
// name are skipped. Entries already in the property bag are never replaced.
func CopyHeaders(msg *transport.Message, headers map[string]interface{}) *transport.Message {
	if msg.Properties.Headers == nil {
		msg.Properties.Headers = make(amqp.Table, len(headers))
	}

	for key, value := range headers {
		if IsProperty(key) || key == routing.KeyHeader || key == routing.ExchangeHeader {
			continue
		}
		if _, exists := msg.Properties.Headers[key]; exists {
			continue
		}
		msg.Properties.Headers[key] = value
	}

	return msg
}

// CopyMessageHeaders copies headers into the headers of msg, replacing
// existing ones. The exchange pattern is skipped.
func CopyMessageHeaders(msg *message.Message, headers map[string]interface{}) *message.Message {
	for key, value := range headers {
		if key == message.ExchangePattern {
			continue
		}
		msg.SetHeader(key, value)
	}

	return msg
}
