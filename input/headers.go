// Package input decodes the header sets and AMQP deliveries handed to the
// command line tool.
package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a header set.
type Format string

const (
	Properties Format = "properties"
	YAML       Format = "yaml"
	JSON       Format = "json"
)

// ParseFormat returns the format of the given name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case Properties, YAML, JSON:
		return f, nil
	case "yml":
		return YAML, nil
	}

	return "", fmt.Errorf("unknown format %q", name)
}

// FormatFromFilename derives the format from the extension of the file name.
func FormatFromFilename(filename string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot derive format from file name %q", filename)
	}

	return ParseFormat(ext)
}

// Open opens the named file for reading. An empty name or "-" refers to STDIN.
func Open(filename string) (io.ReadCloser, error) {
	if filename == "" || filename == "-" {
		return ioutil.NopCloser(os.Stdin), nil
	}

	return os.Open(filename)
}

// DecodeHeaders reads a set of headers in the given format.
func DecodeHeaders(r io.Reader, f Format) (map[string]interface{}, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to read headers")
	}

	h := make(map[string]interface{})

	switch f {
	case Properties:
		p, err := properties.Load(data, properties.UTF8)
		if err != nil {
			return nil, errors.WithMessage(err, "failed to parse properties")
		}
		for k, v := range p.Map() {
			h[k] = v
		}

	case YAML:
		if err := yaml.Unmarshal(data, &h); err != nil {
			return nil, errors.WithMessage(err, "failed to parse YAML")
		}

	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&h); err != nil {
			return nil, errors.WithMessage(err, "failed to parse JSON")
		}

	default:
		return nil, fmt.Errorf("unknown format %q", string(f))
	}

	if h == nil {
		h = make(map[string]interface{})
	}

	return h, nil
}
