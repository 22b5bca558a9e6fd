// Package render writes run results in different formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/ezrec/mipslet/emulator"
	"github.com/ezrec/mipslet/translate"
)

var f = translate.From

var (
	ErrFormatUnknown = errors.New(f("output format unknown"))
)

// Renderer defines the interface for rendering run results.
type Renderer interface {
	// Render writes the result of a run to the provided writer.
	Render(result emulator.RunResult, output io.Writer) error

	// Format returns the name of the output format.
	Format() string
}

var renderers = map[string]func() Renderer{
	"text": NewTextRenderer,
	"json": NewJSONRenderer,
	"yaml": NewYAMLRenderer,
}

// Formats returns the names of the known output formats.
func Formats() []string {
	formats := make([]string, 0, len(renderers))
	for name := range renderers {
		formats = append(formats, name)
	}
	slices.Sort(formats)
	return formats
}

// NewRenderer returns the renderer of a format.
func NewRenderer(format string) (Renderer, error) {
	create, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormatUnknown, format)
	}

	return create(), nil
}
