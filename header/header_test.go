package header_test

import (
	"testing"

	"github.com/corvus-ch/amqp-header-mapper/header"
	"github.com/stretchr/testify/assert"
)

func TestIsProperty(t *testing.T) {
	for _, name := range header.Properties {
		t.Run(name, func(t *testing.T) {
			assert.True(t, header.IsProperty(name))
		})
	}

	for _, name := range []string{"", "ContentType", "content-type", "routingKey", "exchangeName", "x-tenant"} {
		assert.False(t, header.IsProperty(name), name)
	}
}

func TestProperties(t *testing.T) {
	assert.Len(t, header.Properties, 10)
	assert.ElementsMatch(t, []string{
		"contentType",
		"contentEncoding",
		"priority",
		"messageId",
		"correlationId",
		"appId",
		"replyTo",
		"expiration",
		"deliveryMode",
		"type",
	}, header.Properties)
}
