package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bketelsen/logr"
	"github.com/urfave/cli"
	"github.com/corvus-ch/amqp-header-mapper/collector"
	"github.com/corvus-ch/amqp-header-mapper/config"
	"github.com/corvus-ch/amqp-header-mapper/input"
	logfactory "github.com/corvus-ch/amqp-header-mapper/log"
	"github.com/corvus-ch/amqp-header-mapper/message"
	"github.com/corvus-ch/amqp-header-mapper/routing"
	"github.com/corvus-ch/amqp-header-mapper/translate"
	"github.com/corvus-ch/amqp-header-mapper/transport"
	"github.com/corvus-ch/amqp-header-mapper/transport/amqp091"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// flags is the list of global flags known to the application.
var flags = []cli.Flag{
	cli.StringFlag{
		Name:  "configuration, c",
		Usage: "Location of configuration file",
	},
	cli.BoolFlag{
		Name:  "verbose, V",
		Usage: "Enable verbose mode (logs to stderr)",
	},
	cli.BoolFlag{
		Name:  "no-datetime",
		Usage: "prevents the output of date and time in the logs.",
	},
	cli.BoolFlag{
		Name:  "indent",
		Usage: "Indent the JSON output",
	},
}

// Names of the AMQP client libraries messages can be converted with.
const (
	clientStreadway = "streadway"
	clientAmqp091   = "amqp091"
)

var clientFlag = cli.StringFlag{
	Name:  "client",
	Value: clientStreadway,
	Usage: "AMQP client library the message is converted with (streadway or amqp091)",
}

var commands = []cli.Command{
	{
		Name:   "to-amqp",
		Usage:  "Map a set of headers onto the properties of an AMQP message",
		Action: ToAmqp,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "headers, H",
				Usage: "Read the headers from `FILE` instead of STDIN",
			},
			cli.StringFlag{
				Name:  "format, f",
				Usage: "Format of the headers (properties, yaml or json). Derived from the file name if omitted.",
			},
			cli.BoolFlag{
				Name:  "generate-message-id, g",
				Usage: "Assign a random message id if the headers do not contain one",
			},
			clientFlag,
		},
	},
	{
		Name:   "from-amqp",
		Usage:  "Map the properties of a received AMQP message onto a set of headers",
		Action: FromAmqp,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "delivery, d",
				Usage: "Read the JSON description of the delivery from `FILE` instead of STDIN",
			},
			clientFlag,
		},
	},
}

func main() {
	NewApp().Run(os.Args)
}

// NewApp creates a new application instance.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "amqp-header-mapper"
	app.Usage = "Translate between AMQP message properties and message headers"
	app.Authors = []cli.Author{
		{"Christian Häusler", "haeusler.christian@mac.com"},
	}
	app.Version = "0.1.0"
	app.Flags = flags
	app.Commands = commands
	app.ExitErrHandler = ExitErrHandler

	return app
}

type amqpOutput struct {
	routing.Destination
	Properties transport.Properties `json:"properties"`
}

type headersOutput struct {
	Headers map[string]interface{} `json:"headers"`
	Body    string                 `json:"body"`
}

// ToAmqp is the action of the to-amqp command.
func ToAmqp(c *cli.Context) error {
	cfg, l, err := LoadConfiguration(c)
	if err != nil {
		return err
	}

	format, err := headerFormat(c.String("headers"), c.String("format"))
	if err != nil {
		return err
	}

	r, err := input.Open(c.String("headers"))
	if err != nil {
		return errors.WithMessage(err, "failed to open headers")
	}
	defer r.Close()

	h, err := input.DecodeHeaders(r, format)
	if err != nil {
		return err
	}

	var opts []translate.Option
	if cfg.GenerateMessageID() || c.Bool("generate-message-id") {
		opts = append(opts, translate.WithMessageID(func() string {
			return uuid.New().String()
		}))
	}

	m := message.New(nil)
	m.Headers = h
	tm, dest, err := translate.New(l, opts...).Inbound(m)
	if err != nil {
		return err
	}

	if err := publishable(c.String("client"), tm); err != nil {
		return errors.WithMessage(err, "failed to create publishing")
	}

	if err := write(c.App.Writer, cfg.Indent(), amqpOutput{dest, tm.Properties}); err != nil {
		return err
	}

	return writeMetrics(cfg, l)
}

// FromAmqp is the action of the from-amqp command.
func FromAmqp(c *cli.Context) error {
	cfg, l, err := LoadConfiguration(c)
	if err != nil {
		return err
	}

	r, err := input.Open(c.String("delivery"))
	if err != nil {
		return errors.WithMessage(err, "failed to open delivery")
	}
	defer r.Close()

	tm, dest, err := readDelivery(c.String("client"), r)
	if err != nil {
		return err
	}

	m := translate.New(l).OutboundMessage(tm, dest)
	if err := write(c.App.Writer, cfg.Indent(), headersOutput{m.Headers, string(m.Body)}); err != nil {
		return err
	}

	return writeMetrics(cfg, l)
}

// LoadConfiguration loads the configuration file and applies the global flags on top of it.
func LoadConfiguration(c *cli.Context) (*config.Config, logr.Logger, error) {
	cfg, err := config.LoadAndParse(c.GlobalString("configuration"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed parsing configuration: %s", err)
	}

	if c.GlobalBool("verbose") {
		cfg.Logs.Verbose = true
	}
	if c.GlobalBool("no-datetime") {
		cfg.Logs.NoDateTime = true
	}
	if c.GlobalBool("indent") {
		cfg.Output.Indent = true
	}

	l, err := logfactory.NewFromConfig(cfg, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	return cfg, l, nil
}

func ExitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}

	code := 1

	if err.Error() != "" {
		if _, ok := err.(cli.ErrorFormatter); ok {
			log.Printf("%+v\n", err)
		} else {
			log.Println(err)
		}
	}

	if exitErr, ok := err.(cli.ExitCoder); ok {
		code = exitErr.ExitCode()
	}

	os.Exit(code)
}

// readDelivery decodes a delivery the way the given client receives it.
func readDelivery(client string, r io.Reader) (*transport.Message, routing.Destination, error) {
	switch client {
	case clientStreadway:
		d, err := input.DecodeDelivery(r)
		if err != nil {
			return nil, routing.Destination{}, err
		}
		return transport.FromDelivery(d), routing.FromDelivery(d), nil
	case clientAmqp091:
		d, err := input.DecodeAmqp091Delivery(r)
		if err != nil {
			return nil, routing.Destination{}, err
		}
		return amqp091.FromDelivery(d), amqp091.Destination(d), nil
	}

	return nil, routing.Destination{}, unknownClient(client)
}

// publishable checks that the given client accepts the message for publishing.
func publishable(client string, tm *transport.Message) error {
	var err error
	switch client {
	case clientStreadway:
		_, err = tm.Publishing()
	case clientAmqp091:
		_, err = amqp091.Publishing(tm)
	default:
		err = unknownClient(client)
	}

	return err
}

func unknownClient(name string) error {
	return fmt.Errorf("unknown client %q", name)
}

func headerFormat(filename, name string) (input.Format, error) {
	if name != "" {
		return input.ParseFormat(name)
	}

	if filename == "" || filename == "-" {
		return input.Properties, nil
	}

	return input.FormatFromFilename(filename)
}

func write(w io.Writer, indent bool, v interface{}) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(v)
}

func writeMetrics(cfg *config.Config, l logr.Logger) error {
	if !cfg.HasMetricsTextfile() {
		return nil
	}

	l.V(1).Infof("Writing metrics to %s", cfg.MetricsTextfile())
	if err := collector.WriteTextfile(cfg.MetricsTextfile()); err != nil {
		return errors.WithMessage(err, "failed to write metrics")
	}

	return nil
}
