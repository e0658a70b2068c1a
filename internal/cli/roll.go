package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shinji-kodama/rolldice/internal/config"
	"github.com/shinji-kodama/rolldice/internal/dice"
	"github.com/shinji-kodama/rolldice/internal/model"
	"github.com/shinji-kodama/rolldice/internal/render"
)

// Prompt is printed before reading the die count from stdin.
const Prompt = "How many dice would you like to roll? (1-6) "

// runRoll is the main logic of the root command: read the die count,
// validate it, roll, render and print.
func runRoll(cmd *cobra.Command, args []string, cfg config.Config, source sourceFactory) error {
	out := cmd.OutOrStdout()

	// Step 1: Obtain the raw die count, from the argument or the prompt.
	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		// Structured output keeps stdout machine-readable, so the prompt
		// goes to stderr in that case.
		promptOut := out
		if cfg.Format != config.FormatText {
			promptOut = cmd.ErrOrStderr()
		}
		line, err := promptCount(cmd.InOrStdin(), promptOut)
		if err != nil {
			return model.WrapCLIError(model.ExitInvalidInput, "failed to read die count", err)
		}
		raw = line
	}

	// Step 2: Validate. No retry: an invalid answer ends the run.
	count, err := dice.ParseCount(raw)
	if err != nil {
		VerboseLog("Rejected die count %q", strings.TrimSpace(raw))
		return model.WrapCLIError(model.ExitInvalidInput, model.InvalidInputMessage, err)
	}

	// Step 3: Roll.
	src := source(cfg.Seed)
	if seeded, ok := src.(interface{ Seed() int64 }); ok {
		VerboseLog("Rolling %d dice with seed %d", count, seeded.Seed())
	}
	rolls, err := src.Roll(count)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidInput, "failed to roll dice", err)
	}
	VerboseLog("Rolled %s", rolls)

	// Step 4: Render each face and compose the diagram.
	table := render.TableFor(cfg.StandardFour)
	diagram := render.Compose(table.Glyphs(rolls))

	// Step 5: Print.
	result := newRollResult(rolls, diagram, src)
	styler := render.NewStyler(out, useColor(cfg.Color, out))
	return printRollResult(out, cfg.Format, result, styler)
}

// promptCount writes Prompt to w and reads one line from r.
// A closed stdin is not an error: the partial (possibly empty) line is
// returned and left to validation.
func promptCount(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, Prompt)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}

// useColor resolves a colour mode against the output writer. In auto
// mode colour is used only when w is a terminal.
func useColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return false
	}
}
