package input_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/corvus-ch/amqp-header-mapper/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formatFromFilenameTests = []struct {
	name     string
	filename string
	format   input.Format
	err      string
}{
	{"properties", "headers.properties", input.Properties, ""},
	{"yaml", "headers.yaml", input.YAML, ""},
	{"yml", "/tmp/headers.YML", input.YAML, ""},
	{"json", "headers.json", input.JSON, ""},
	{"unknown", "headers.txt", "", `unknown format "txt"`},
	{"none", "headers", "", `cannot derive format from file name "headers"`},
}

func TestFormatFromFilename(t *testing.T) {
	for _, test := range formatFromFilenameTests {
		t.Run(test.name, func(t *testing.T) {
			f, err := input.FormatFromFilename(test.filename)
			if test.err != "" {
				assert.EqualError(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.format, f)
		})
	}
}

var decodeHeadersTests = []struct {
	name   string
	format input.Format
	data   string
	want   map[string]interface{}
}{
	{
		"properties",
		input.Properties,
		"# comment\ncontentType = text/plain\npriority=5\nx-tenant: acme\n",
		map[string]interface{}{"contentType": "text/plain", "priority": "5", "x-tenant": "acme"},
	},
	{
		"yaml",
		input.YAML,
		"contentType: text/plain\npriority: 5\ncorrelationId: ~\nx-flag: true\n",
		map[string]interface{}{"contentType": "text/plain", "priority": 5, "correlationId": nil, "x-flag": true},
	},
	{
		"json",
		input.JSON,
		`{"contentType": "text/plain", "priority": 5, "correlationId": null}`,
		map[string]interface{}{"contentType": "text/plain", "priority": json.Number("5"), "correlationId": nil},
	},
	{
		"jsonNull",
		input.JSON,
		`null`,
		map[string]interface{}{},
	},
	{
		"emptyYAML",
		input.YAML,
		"",
		map[string]interface{}{},
	},
}

func TestDecodeHeaders(t *testing.T) {
	for _, test := range decodeHeadersTests {
		t.Run(test.name, func(t *testing.T) {
			h, err := input.DecodeHeaders(strings.NewReader(test.data), test.format)
			require.NoError(t, err)
			assert.Equal(t, test.want, h)
		})
	}
}

func TestDecodeHeadersInvalid(t *testing.T) {
	_, err := input.DecodeHeaders(strings.NewReader("{"), input.JSON)
	assert.EqualError(t, err, "failed to parse JSON: unexpected EOF")

	_, err = input.DecodeHeaders(strings.NewReader(""), input.Format("xml"))
	assert.EqualError(t, err, `unknown format "xml"`)
}
