package header

import (
	"strconv"

	"github.com/corvus-ch/amqp-header-mapper/message"
	"github.com/corvus-ch/amqp-header-mapper/transport"
)

// SetBasicPropertiesFromHeaders sets the AMQP properties of msg from the
// headers named after them. Other headers are ignored, see CopyHeaders.
//
// A nil header clears its property. Priority and delivery mode must be base-10
// integers and the delivery mode must be 1 or 2. On error, msg is left as it
// was.
func SetBasicPropertiesFromHeaders(msg *transport.Message, headers map[string]interface{}) (*transport.Message, error) {
	p := msg.Properties

	for key, value := range headers {
		s, ok := message.Stringify(value)

		switch key {
		case ContentEncoding:
			p.ContentEncoding = s
		case ContentType:
			p.ContentType = s
		case MessageID:
			p.MessageID = s
		case CorrelationID:
			p.CorrelationID = nil
			if ok {
				p.CorrelationID = []byte(s)
			}
			p.CorrelationIDString = s
		case AppID:
			p.AppID = s
		case Expiration:
			p.Expiration = s
		case Priority:
			p.Priority = nil
			if ok {
				priority, err := parseInt(key, s)
				if err != nil {
					return nil, err
				}
				p.SetPriority(priority)
			}
		case ReplyTo:
			p.ReplyTo = s
		case DeliveryMode:
			p.DeliveryMode = 0
			if ok {
				mode, err := parseDeliveryMode(key, s)
				if err != nil {
					return nil, err
				}
				p.DeliveryMode = mode
			}
		case Type:
			p.Type = s
		}
	}

	msg.Properties = p

	return msg, nil
}

// SetBasicPropertiesToHeaders writes the AMQP properties of amqpMsg into the
// headers of msg. All properties are written, absent ones as nil.
//
// AMQP does not tell an empty string property from an absent one, so a string
// property set from a header holding "" is written back as nil. The correlation
// id is the exception, its byte form keeps the empty value.
func SetBasicPropertiesToHeaders(msg *message.Message, amqpMsg *transport.Message) *message.Message {
	p := amqpMsg.Properties

	msg.SetHeader(MessageID, optional(p.MessageID))
	msg.SetHeader(CorrelationID, optional(p.CorrelationIDString))
	if _, ok := msg.HeaderString(CorrelationID); !ok {
		var correlationID interface{}
		if p.CorrelationID != nil {
			correlationID = string(p.CorrelationID)
		}
		msg.SetHeader(CorrelationID, correlationID)
	}
	msg.SetHeader(AppID, optional(p.AppID))
	msg.SetHeader(ContentEncoding, optional(p.ContentEncoding))
	msg.SetHeader(ContentType, optional(p.ContentType))
	msg.SetHeader(Expiration, optional(p.Expiration))

	var priority interface{}
	if p.Priority != nil {
		priority = *p.Priority
	}
	msg.SetHeader(Priority, priority)

	msg.SetHeader(ReplyTo, optional(p.ReplyTo))

	var deliveryMode interface{}
	if p.ReceivedDeliveryMode.IsSet() {
		deliveryMode = p.ReceivedDeliveryMode.Int()
	}
	msg.SetHeader(DeliveryMode, deliveryMode)

	msg.SetHeader(Type, optional(p.Type))

	return msg
}

func optional(s string) interface{} {
	if s == "" {
		return nil
	}

	return s
}

func parseInt(name, s string) (int, error) {
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, NewFormatError(name, s, err)
	}

	return int(i), nil
}

func parseDeliveryMode(name, s string) (transport.DeliveryMode, error) {
	code, err := parseInt(name, s)
	if err != nil {
		return 0, err
	}

	mode, ok := transport.DeliveryModeFromInt(code)
	if !ok {
		return 0, NewInvalidEnumValueError(name, code)
	}

	return mode, nil
}
