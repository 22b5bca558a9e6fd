package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/mipslet/emulator"
)

// TextRenderer writes a short human readable report: the run status, then
// the final value of every used register.
type TextRenderer struct{}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Render(result emulator.RunResult, output io.Writer) error {
	var report strings.Builder

	if result.Diagnostic == "" {
		report.WriteString(f("halted after %d steps", result.Steps))
	} else {
		report.WriteString(f("failed at line %d after %d steps: %v", result.Line, result.Steps, result.Diagnostic))
	}
	report.WriteString("\n")

	if len(result.Used) == 0 {
		report.WriteString(f("no registers used"))
		report.WriteString("\n")
	} else {
		report.WriteString(f("registers used:"))
		report.WriteString("\n")
		for _, index := range result.Used {
			fmt.Fprintf(&report, "%5s = %d\n", fmt.Sprintf("$%d", index), result.Registers[index])
		}
	}

	_, err := io.WriteString(output, report.String())
	return err
}

func (r *TextRenderer) Format() string {
	return "text"
}
