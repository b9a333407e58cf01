package transport

import (
	"strconv"

	"github.com/streadway/amqp"
)

// DeliveryMode represents the AMQP delivery mode property. The zero value
// means the property is not set.
type DeliveryMode uint8

const (
	// NonPersistent messages may be lost on broker restart.
	NonPersistent = DeliveryMode(amqp.Transient)

	// Persistent messages are written to disk by the broker.
	Persistent = DeliveryMode(amqp.Persistent)
)

// DeliveryModeFromInt returns the delivery mode for the given code. The second
// return value is false if the code is neither 1 nor 2.
func DeliveryModeFromInt(code int) (DeliveryMode, bool) {
	switch code {
	case NonPersistent.Int():
		return NonPersistent, true
	case Persistent.Int():
		return Persistent, true
	}

	return 0, false
}

// IsSet returns true if the delivery mode is one of the known modes.
func (m DeliveryMode) IsSet() bool {
	return m == NonPersistent || m == Persistent
}

// Int returns the code of the delivery mode.
func (m DeliveryMode) Int() int {
	return int(m)
}

func (m DeliveryMode) String() string {
	switch m {
	case NonPersistent:
		return "non-persistent"
	case Persistent:
		return "persistent"
	case 0:
		return "unset"
	default:
		return "DeliveryMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// deliveryModeFromWire maps the raw octet received over the wire, dropping
// values the protocol does not define.
func deliveryModeFromWire(v uint8) DeliveryMode {
	if m := DeliveryMode(v); m.IsSet() {
		return m
	}

	return 0
}
