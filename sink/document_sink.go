package sink

import (
	"chat-lens/domain"
	"chat-lens/errors"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts "table", "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownFormat, s)
	}
}

// DocumentSink encodes the whole report as one JSON or YAML document.
type DocumentSink struct {
	out    io.Writer
	format Format
}

func NewDocumentSink(out io.Writer, format Format) (DocumentSink, error) {
	if format != FormatJSON && format != FormatYAML {
		return DocumentSink{}, fmt.Errorf("%w: %q", errors.ErrUnknownFormat, format)
	}
	return DocumentSink{out: out, format: format}, nil
}

func (s DocumentSink) Write(_ context.Context, report domain.Report) error {
	switch s.format {
	case FormatYAML:
		encoder := yaml.NewEncoder(s.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return err
		}
		return encoder.Close()
	default:
		encoder := json.NewEncoder(s.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}
}
