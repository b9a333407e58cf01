// Package translate combines the header mapping functions to translate whole
// messages in either direction.
package translate

import (
	"time"

	"github.com/bketelsen/logr"
	"github.com/corvus-ch/amqp-header-mapper/collector"
	"github.com/corvus-ch/amqp-header-mapper/header"
	"github.com/corvus-ch/amqp-header-mapper/message"
	"github.com/corvus-ch/amqp-header-mapper/routing"
	"github.com/corvus-ch/amqp-header-mapper/transport"
	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

// Option configures a Translator.
type Option func(*Translator)

// WithMessageID makes the translator assign an id generated by gen to
// messages sent to AMQP without a message id.
func WithMessageID(gen func() string) Option {
	return func(t *Translator) {
		t.messageID = gen
	}
}

// Translator translates messages between AMQP and routed messages.
type Translator struct {
	log       logr.Logger
	messageID func() string
}

// New creates a new translator.
func New(l logr.Logger, opts ...Option) *Translator {
	t := &Translator{log: l}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Inbound translates a routed message into an AMQP message ready to be
// published to the returned destination.
func (t *Translator) Inbound(m *message.Message) (*transport.Message, routing.Destination, error) {
	defer observe(collector.Inbound, time.Now())

	tm, err := header.SetBasicPropertiesFromHeaders(transport.New(m.Body), m.Headers)
	if err != nil {
		collector.ErrorCounter.WithLabelValues(errorKind(err)).Inc()
		return nil, routing.Destination{}, errors.WithMessage(err, "failed to set AMQP properties")
	}
	header.CopyHeaders(tm, m.Headers)

	if tm.Properties.MessageID == "" && t.messageID != nil {
		tm.Properties.MessageID = t.messageID()
		t.log.V(1).Infof("Assigned message id %s", tm.Properties.MessageID)
	}

	properties, copied := 0, len(tm.Properties.Headers)
	for key := range m.Headers {
		if header.IsProperty(key) {
			properties++
		}
	}
	count(collector.Inbound, properties, copied, len(m.Headers)-properties-copied)

	dest := routing.FromHeaders(m.Headers)
	t.log.Infof("Translated %d header(s) for exchange %q with routing key %q.", len(m.Headers), dest.Exchange, dest.RoutingKey)

	return tm, dest, nil
}

// Outbound translates a message received from AMQP into a routed message.
func (t *Translator) Outbound(d amqp.Delivery) *message.Message {
	return t.OutboundMessage(transport.FromDelivery(d), routing.FromDelivery(d))
}

// OutboundMessage translates an AMQP message, received from dest, into a
// routed message.
//
// The property bag is copied before the properties are set, so properties win
// over bag entries of the same name. The exchange pattern is InOut if the
// message asks for a reply.
func (t *Translator) OutboundMessage(tm *transport.Message, dest routing.Destination) *message.Message {
	defer observe(collector.Outbound, time.Now())

	m := message.New(tm.Body)

	header.CopyMessageHeaders(m, tm.Properties.Headers)
	header.SetBasicPropertiesToHeaders(m, tm)

	if tm.Properties.ReplyTo != "" {
		m.SetPattern(message.InOut)
	} else {
		m.SetPattern(message.InOnly)
	}
	dest.SetHeaders(m.Headers)

	copied := 0
	for key := range tm.Properties.Headers {
		if !overwritten(key) {
			copied++
		}
	}
	count(collector.Outbound, len(header.Properties), copied, len(tm.Properties.Headers)-copied)
	t.log.Infof("Translated message from exchange %q with routing key %q.", dest.Exchange, dest.RoutingKey)

	return m
}

// overwritten tells if a bag entry gets replaced by the outbound translation.
func overwritten(key string) bool {
	switch key {
	case message.ExchangePattern, routing.KeyHeader, routing.ExchangeHeader:
		return true
	}

	return header.IsProperty(key)
}

func count(direction string, properties, copied, skipped int) {
	collector.HeaderCounter.WithLabelValues(direction, collector.Property).Add(float64(properties))
	collector.HeaderCounter.WithLabelValues(direction, collector.Copied).Add(float64(copied))
	collector.HeaderCounter.WithLabelValues(direction, collector.Skipped).Add(float64(skipped))
}

func observe(direction string, start time.Time) {
	collector.TranslationDuration.WithLabelValues(direction).Observe(time.Since(start).Seconds())
}

func errorKind(err error) string {
	switch errors.Cause(err).(type) {
	case *header.FormatError:
		return "format"
	case *header.InvalidEnumValueError:
		return "invalid_enum_value"
	default:
		return "unknown"
	}
}
