// Package message holds the routed message, the representation a message has
// while it travels between the endpoints of a route.
package message

import "fmt"

// ExchangePattern is the header holding the exchange pattern of the message.
// It is control metadata of the routed message and never part of its content.
const ExchangePattern = "exchangePattern"

// Pattern tells whether the sender of a message expects a reply.
type Pattern string

const (
	// InOnly marks a message not expecting a reply.
	InOnly Pattern = "InOnly"

	// InOut marks a message expecting a reply.
	InOut Pattern = "InOut"
)

// Message is a routed message. Its headers are an open mapping, the names of
// the AMQP properties are nothing more than reserved strings by convention.
type Message struct {
	Headers map[string]interface{}
	Body    []byte
}

// New creates a new message with an empty set of headers.
func New(body []byte) *Message {
	return &Message{
		Headers: make(map[string]interface{}),
		Body:    body,
	}
}

// Header returns the value of the named header and whether it is present.
func (m *Message) Header(name string) (interface{}, bool) {
	v, ok := m.Headers[name]
	return v, ok
}

// HeaderString returns the named header converted to a string. The second
// return value is false if the header is missing or nil.
func (m *Message) HeaderString(name string) (string, bool) {
	return Stringify(m.Headers[name])
}

// Stringify returns the string form of a header value: byte slices as their
// bytes, anything else in its fmt form. The second return value is false for nil.
func Stringify(v interface{}) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		return s, true
	case []byte:
		return string(s), true
	default:
		return fmt.Sprint(s), true
	}
}

// SetHeader sets the named header, replacing any existing value.
func (m *Message) SetHeader(name string, value interface{}) {
	if m.Headers == nil {
		m.Headers = make(map[string]interface{})
	}
	m.Headers[name] = value
}

// Pattern returns the exchange pattern of the message. Messages without one
// are treated as InOnly.
func (m *Message) Pattern() Pattern {
	if p, ok := m.HeaderString(ExchangePattern); ok && Pattern(p) == InOut {
		return InOut
	}

	return InOnly
}

// SetPattern sets the exchange pattern of the message.
func (m *Message) SetPattern(p Pattern) {
	m.SetHeader(ExchangePattern, string(p))
}
