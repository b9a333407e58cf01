package message_test

import (
	"testing"

	"github.com/corvus-ch/amqp-header-mapper/message"
	"github.com/stretchr/testify/assert"
)

var headerStringTests = []struct {
	name  string
	value interface{}
	want  string
	ok    bool
}{
	{"nil", nil, "", false},
	{"string", "lorem", "lorem", true},
	{"emptyString", "", "", true},
	{"bytes", []byte("ipsum"), "ipsum", true},
	{"int", 42, "42", true},
	{"bool", true, "true", true},
}

func TestMessage_HeaderString(t *testing.T) {
	for _, test := range headerStringTests {
		t.Run(test.name, func(t *testing.T) {
			m := message.New(nil)
			m.SetHeader("key", test.value)

			s, ok := m.HeaderString("key")
			assert.Equal(t, test.want, s)
			assert.Equal(t, test.ok, ok)
		})
	}
}

func TestStringify(t *testing.T) {
	for _, test := range headerStringTests {
		t.Run(test.name, func(t *testing.T) {
			s, ok := message.Stringify(test.value)
			assert.Equal(t, test.want, s)
			assert.Equal(t, test.ok, ok)
		})
	}
}

func TestMessage_HeaderStringMissing(t *testing.T) {
	_, ok := message.New(nil).HeaderString("missing")
	assert.False(t, ok)
}

func TestMessage_SetHeaderNilMap(t *testing.T) {
	m := &message.Message{}
	m.SetHeader("key", "value")

	v, ok := m.Header("key")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestMessage_Pattern(t *testing.T) {
	m := message.New(nil)
	assert.Equal(t, message.InOnly, m.Pattern())

	m.SetPattern(message.InOut)
	assert.Equal(t, message.InOut, m.Pattern())
	assert.Equal(t, "InOut", m.Headers[message.ExchangePattern])

	m.SetHeader(message.ExchangePattern, "bogus")
	assert.Equal(t, message.InOnly, m.Pattern())
}
