package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/mipslet/emulator"
)

// YAMLRenderer renders run results as a YAML document.
type YAMLRenderer struct{}

func NewYAMLRenderer() Renderer {
	return &YAMLRenderer{}
}

func (r *YAMLRenderer) Render(result emulator.RunResult, output io.Writer) error {
	enc := yaml.NewEncoder(output)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}

func (r *YAMLRenderer) Format() string {
	return "yaml"
}
