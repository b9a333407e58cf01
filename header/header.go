// Package header translates between the protocol properties of an AMQP
// message and the headers of a routed message.
//
// Ten AMQP basic properties are known by name. Going to AMQP, headers with one
// of these names set the matching property while all other headers are copied
// into the property bag of the AMQP message. Coming from AMQP, every property
// is written into the headers of the routed message, whether set or not.
//
// The functions mutate and return the message they are given. They hold no
// state and do no synchronisation of their own.
package header

// The settable AMQP basic properties.
const (
	ContentType     = "contentType"
	ContentEncoding = "contentEncoding"
	Priority        = "priority"
	MessageID       = "messageId"
	CorrelationID   = "correlationId"
	AppID           = "appId"
	ReplyTo         = "replyTo"
	Expiration      = "expiration"
	DeliveryMode    = "deliveryMode"
	Type            = "type"
)

// Properties lists the header names of all mapped AMQP properties.
var Properties = []string{
	ContentType,
	ContentEncoding,
	Priority,
	MessageID,
	CorrelationID,
	AppID,
	ReplyTo,
	Expiration,
	DeliveryMode,
	Type,
}

// IsProperty returns true if name is the header name of an AMQP property.
// The comparison is case-sensitive.
func IsProperty(name string) bool {
	switch name {
	case ContentType, ContentEncoding, Priority, MessageID, CorrelationID,
		AppID, ReplyTo, Expiration, DeliveryMode, Type:
		return true
	}

	return false
}
