package render

import (
	"encoding/json"
	"io"

	"github.com/ezrec/mipslet/emulator"
)

// JSONRenderer renders run results in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(result emulator.RunResult, output io.Writer) error {
	return json.NewEncoder(output).Encode(result)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
