package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/rolldice/internal/config"
	"github.com/shinji-kodama/rolldice/internal/dice"
	"github.com/shinji-kodama/rolldice/internal/model"
	"github.com/shinji-kodama/rolldice/internal/render"
)

// rollResult is the structured (JSON/YAML) form of one roll.
type rollResult struct {
	RollID  string `json:"rollId" yaml:"rollId"`
	Count   int    `json:"count" yaml:"count"`
	Faces   []int  `json:"faces" yaml:"faces"`
	Total   int    `json:"total" yaml:"total"`
	Seed    int64  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Diagram string `json:"diagram" yaml:"diagram"`
}

// newRollResult builds the structured result. The seed is included when
// the source exposes one, so a clock-seeded roll can be replayed.
func newRollResult(rolls model.RollSet, diagram string, src dice.Source) rollResult {
	result := rollResult{
		RollID:  uuid.NewString(),
		Count:   len(rolls),
		Faces:   rolls.Ints(),
		Total:   rolls.Total(),
		Diagram: diagram,
	}
	if seeded, ok := src.(interface{ Seed() int64 }); ok {
		result.Seed = seeded.Seed()
	}
	return result
}

// printRollResult writes the result in the requested format.
func printRollResult(w io.Writer, format config.Format, result rollResult, styler *render.Styler) error {
	switch format {
	case config.FormatJSON:
		return printRollResultJSON(w, result)
	case config.FormatYAML:
		return printRollResultYAML(w, result)
	default:
		printRollResultText(w, result, styler)
		return nil
	}
}

// printRollResultText prints a blank line followed by the diagram, each
// row newline-terminated.
func printRollResultText(w io.Writer, result rollResult, styler *render.Styler) {
	fmt.Fprintf(w, "\n%s\n", styler.Apply(result.Diagram))
}

func printRollResultJSON(w io.Writer, result rollResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize result JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printRollResultYAML(w io.Writer, result rollResult) error {
	data, err := yaml.Marshal(&result)
	if err != nil {
		return fmt.Errorf("failed to serialize result YAML: %w", err)
	}
	fmt.Fprint(w, string(data))
	return nil
}
