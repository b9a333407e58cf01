package main_test

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"testing"

	"bou.ke/monkey"
	"github.com/urfave/cli"
	main "github.com/corvus-ch/amqp-header-mapper"
	"github.com/corvus-ch/amqp-header-mapper/header"
	"github.com/corvus-ch/amqp-header-mapper/message"
	"github.com/corvus-ch/amqp-header-mapper/translate"
	buffered "github.com/corvus-ch/logr/buffered"
	"github.com/stretchr/testify/assert"
)

// inboundError returns the error of translating a message with the given headers.
func inboundError(headers map[string]interface{}) error {
	m := message.New(nil)
	m.Headers = headers
	_, _, err := translate.New(buffered.New(0)).Inbound(m)

	return err
}

var exitErrHandlerTests = []struct {
	name string
	err  error
	out  string
	exit string
}{
	{
		"noError",
		nil,
		"",
		"",
	},
	{
		"formatError",
		inboundError(map[string]interface{}{header.Priority: "high"}),
		"invalid value \"high\" for header priority: strconv.ParseInt: parsing \"high\": invalid syntax\nfailed to set AMQP properties\n",
		"os.Exit called with: 1",
	},
	{
		"invalidEnumValue",
		inboundError(map[string]interface{}{header.DeliveryMode: 7}),
		"unknown value 7 for header deliveryMode\nfailed to set AMQP properties\n",
		"os.Exit called with: 1",
	},
	{
		"unwrappedFormatError",
		header.NewFormatError(header.Priority, "99999999999", fmt.Errorf("value out of range")),
		"invalid value \"99999999999\" for header priority: value out of range\n",
		"os.Exit called with: 1",
	},
	{
		"exitCode",
		cli.NewExitError(header.NewInvalidEnumValueError(header.DeliveryMode, 0).Error(), 3),
		"unknown value 0 for header deliveryMode\n",
		"os.Exit called with: 3",
	},
	{
		"silentExitCode",
		cli.NewExitError("", 42),
		"",
		"os.Exit called with: 42",
	},
}

func TestExitErrHandler(t *testing.T) {
	log.SetFlags(0)
	patch := monkey.Patch(os.Exit, func(code int) {
		panic(fmt.Sprintf("os.Exit called with: %v", code))
	})
	defer patch.Unpatch()
	for _, test := range exitErrHandlerTests {
		t.Run(test.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log.SetOutput(buf)
			defer log.SetOutput(os.Stderr)

			h := func() {
				main.ExitErrHandler(nil, test.err)
			}
			if test.exit == "" {
				h()
			} else {
				assert.PanicsWithValue(t, test.exit, h, "os.Exit was not called")
			}
			assert.Equal(t, test.out, buf.String())
		})
	}
}
