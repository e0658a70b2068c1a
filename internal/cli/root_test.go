// root_test.go drives the root command end to end through
// cobra's injectable stdin/stdout/stderr, with a fixed roll source so the
// printed diagram is known in advance.
package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/rolldice/internal/dice"
	"github.com/shinji-kodama/rolldice/internal/model"
	"github.com/shinji-kodama/rolldice/internal/render"
)

// runResult captures everything a single invocation produced.
type runResult struct {
	code   model.ExitCode
	stdout string
	stderr string
}

// fixedSource returns a factory that always replays rolls.
func fixedSource(rolls ...model.FaceValue) sourceFactory {
	return func(int64) dice.Source { return dice.Fixed(rolls) }
}

// execute runs the root command with the given stdin and arguments.
func execute(t *testing.T, source sourceFactory, stdin string, args ...string) runResult {
	t.Helper()

	cmd := newRootCommand(source)
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// A nil slice makes cobra fall back to os.Args, which holds the
	// test binary's own flags.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	code := Run(cmd)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// expectedDiagram composes the classic diagram for rolls.
func expectedDiagram(rolls ...model.FaceValue) string {
	return render.Compose(render.ClassicTable.Glyphs(rolls))
}

// TestRoot_FourDice is the documented example: "4" with rolls [6,5,3,2].
func TestRoot_FourDice(t *testing.T) {
	res := execute(t, fixedSource(6, 5, 3, 2), "4\n")

	require.Equal(t, model.ExitSuccess, res.code)
	assert.Equal(t, Prompt+"\n"+expectedDiagram(6, 5, 3, 2)+"\n", res.stdout)
	assert.Empty(t, res.stderr)

	lines := strings.Split(strings.TrimPrefix(res.stdout, Prompt+"\n"), "\n")
	assert.Equal(t, "******************* RESULTS *******************", lines[0])
}

// TestRoot_SixDice verifies the widest diagram.
func TestRoot_SixDice(t *testing.T) {
	res := execute(t, fixedSource(1, 2, 3, 4, 5, 6), " 6 \n")

	require.Equal(t, model.ExitSuccess, res.code)
	body := strings.TrimSuffix(strings.TrimPrefix(res.stdout, Prompt+"\n"), "\n")
	lines := strings.Split(body, "\n")
	require.Len(t, lines, render.Height+1)
	for _, line := range lines {
		assert.Equal(t, 71, render.DisplayWidth(line))
	}
}

// TestRoot_InvalidInput verifies exit code 1, the fixed message on stdout
// and no diagram, for every kind of rejected input.
func TestRoot_InvalidInput(t *testing.T) {
	inputs := []string{"", "\n", "0\n", "7\n", "abc\n", "3.5\n", "1 2\n"}

	for _, input := range inputs {
		t.Run(strings.TrimSpace(input), func(t *testing.T) {
			res := execute(t, fixedSource(1, 1, 1, 1, 1, 1), input)

			assert.Equal(t, model.ExitInvalidInput, res.code)
			assert.Equal(t, Prompt+model.InvalidInputMessage+"\n", res.stdout)
			assert.NotContains(t, res.stdout, render.Title)
			assert.Empty(t, res.stderr)
		})
	}
}

// TestRoot_PositionalCount verifies that an argument skips the prompt.
func TestRoot_PositionalCount(t *testing.T) {
	res := execute(t, fixedSource(3, 3), "", "2")

	require.Equal(t, model.ExitSuccess, res.code)
	assert.Equal(t, "\n"+expectedDiagram(3, 3)+"\n", res.stdout)
	assert.NotContains(t, res.stdout, Prompt)
}

func TestRoot_PositionalInvalid(t *testing.T) {
	res := execute(t, fixedSource(1), "", "9")

	assert.Equal(t, model.ExitInvalidInput, res.code)
	assert.Equal(t, model.InvalidInputMessage+"\n", res.stdout)
}

func TestRoot_TooManyArgs(t *testing.T) {
	res := execute(t, fixedSource(1), "", "1", "2")

	assert.Equal(t, model.ExitInvalidInput, res.code)
	assert.Contains(t, res.stderr, "Error:")
}

// TestRoot_StandardFour verifies the flag swaps in the four-corner face.
func TestRoot_StandardFour(t *testing.T) {
	res := execute(t, fixedSource(4), "1\n", "--standard-four")

	require.Equal(t, model.ExitSuccess, res.code)
	want := render.Compose(render.StandardTable().Glyphs(model.RollSet{4}))
	assert.Equal(t, Prompt+"\n"+want+"\n", res.stdout)
}

// TestRoot_JSON verifies the structured result and that the prompt moves
// to stderr so stdout stays valid JSON.
func TestRoot_JSON(t *testing.T) {
	res := execute(t, fixedSource(6, 5, 3, 2), "4\n", "--json")
	require.Equal(t, model.ExitSuccess, res.code)

	var got rollResult
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, 4, got.Count)
	assert.Equal(t, []int{6, 5, 3, 2}, got.Faces)
	assert.Equal(t, 16, got.Total)
	assert.Equal(t, expectedDiagram(6, 5, 3, 2), got.Diagram)
	assert.Zero(t, got.Seed, "fixed sources have no seed")

	_, err := uuid.Parse(got.RollID)
	assert.NoError(t, err)
	assert.Equal(t, Prompt, res.stderr)
}

func TestRoot_YAML(t *testing.T) {
	res := execute(t, fixedSource(2, 6), "", "2", "--format", "yaml")
	require.Equal(t, model.ExitSuccess, res.code)

	var got rollResult
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, []int{2, 6}, got.Faces)
	assert.Equal(t, 8, got.Total)
	assert.Equal(t, expectedDiagram(2, 6), got.Diagram)
}

// TestRoot_JSONInvalidInput verifies that structured runs report the
// rejected count as a JSON error on stderr and keep stdout empty.
func TestRoot_JSONInvalidInput(t *testing.T) {
	res := execute(t, fixedSource(1), "", "0", "--json")

	assert.Equal(t, model.ExitInvalidInput, res.code)
	assert.Empty(t, res.stdout)

	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stderr), &got))
	assert.Equal(t, model.InvalidInputMessage, got["error"]["message"])
	assert.Equal(t, model.ErrInvalidInput.Error(), got["error"]["detail"])
}

// TestRoot_Seeded verifies that the production roller is reproducible and
// reports its seed.
func TestRoot_Seeded(t *testing.T) {
	first := execute(t, newRoller, "", "5", "--seed", "42", "--json")
	second := execute(t, newRoller, "", "5", "--seed", "42", "--json")
	require.Equal(t, model.ExitSuccess, first.code)
	require.Equal(t, model.ExitSuccess, second.code)

	var a, b rollResult
	require.NoError(t, json.Unmarshal([]byte(first.stdout), &a))
	require.NoError(t, json.Unmarshal([]byte(second.stdout), &b))

	assert.Equal(t, a.Faces, b.Faces)
	assert.Equal(t, a.Diagram, b.Diagram)
	assert.Equal(t, int64(42), a.Seed)
	assert.NotEqual(t, a.RollID, b.RollID)
}

// TestRoot_ColorAlways verifies that forced colour emits ANSI codes while
// auto on a non-terminal leaves the diagram untouched.
func TestRoot_ColorAlways(t *testing.T) {
	res := execute(t, fixedSource(5), "", "1", "--color", "always")
	require.Equal(t, model.ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "\x1b[")

	plain := execute(t, fixedSource(5), "", "1", "--color", "auto")
	require.Equal(t, model.ExitSuccess, plain.code)
	assert.Equal(t, "\n"+expectedDiagram(5)+"\n", plain.stdout, "a buffer is not a terminal")
}

func TestRoot_InvalidFlagValue(t *testing.T) {
	res := execute(t, fixedSource(1), "", "1", "--color", "rainbow")

	assert.Equal(t, model.ExitConfigError, res.code)
	assert.Contains(t, res.stderr, "invalid flag value")
	assert.Empty(t, res.stdout)
}

// TestRoot_ConfigFile verifies that config file values apply and that an
// explicit flag still wins over them.
func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rolldice.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nstandard_four: true\n"), 0o644))

	res := execute(t, fixedSource(4), "", "1", "--config", path)
	require.Equal(t, model.ExitSuccess, res.code)
	var got rollResult
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, render.Compose(render.StandardTable().Glyphs(model.RollSet{4})), got.Diagram)

	res = execute(t, fixedSource(4), "", "1", "--config", path, "--format", "text")
	require.Equal(t, model.ExitSuccess, res.code)
	assert.True(t, strings.HasPrefix(res.stdout, "\n"+render.Center(render.Title, render.Width, "*")))
}

func TestRoot_MissingConfigFile(t *testing.T) {
	res := execute(t, fixedSource(1), "", "1", "--config", filepath.Join(t.TempDir(), "missing.toml"))

	assert.Equal(t, model.ExitConfigError, res.code)
	assert.Contains(t, res.stderr, "config file not found")
}

// TestRoot_EnvOverride verifies ROLLDICE_* variables between file and flags.
func TestRoot_EnvOverride(t *testing.T) {
	t.Setenv("ROLLDICE_FORMAT", "yaml")

	res := execute(t, fixedSource(1), "", "1")
	require.Equal(t, model.ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "faces:")

	res = execute(t, fixedSource(1), "", "1", "--format", "text")
	require.Equal(t, model.ExitSuccess, res.code)
	assert.Equal(t, "\n"+expectedDiagram(1)+"\n", res.stdout)
}
