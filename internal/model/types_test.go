package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFaceValue_IsValid checks that only 1..6 pass validation.
func TestFaceValue_IsValid(t *testing.T) {
	for f := FaceValue(1); f <= Sides; f++ {
		assert.True(t, f.IsValid(), "face %d should be valid", f)
	}
	assert.False(t, FaceValue(0).IsValid())
	assert.False(t, FaceValue(7).IsValid())
	assert.False(t, FaceValue(-1).IsValid())
}

func TestRollSet_TotalAndString(t *testing.T) {
	rolls := RollSet{6, 5, 3, 2}

	assert.Equal(t, 16, rolls.Total())
	assert.Equal(t, "6,5,3,2", rolls.String())
	assert.Equal(t, []int{6, 5, 3, 2}, rolls.Ints())
}

// TestRollSet_Validate covers length bounds and per-die face bounds.
func TestRollSet_Validate(t *testing.T) {
	tests := []struct {
		name     string
		rolls    RollSet
		hasError bool
	}{
		{"single die", RollSet{1}, false},
		{"six dice", RollSet{1, 2, 3, 4, 5, 6}, false},
		{"empty", RollSet{}, true},
		{"nil", nil, true},
		{"seven dice", RollSet{1, 1, 1, 1, 1, 1, 1}, true},
		{"face zero", RollSet{3, 0}, true},
		{"face seven", RollSet{7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rolls.Validate()
			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRollSet_ValidateWrapsInvalidCount(t *testing.T) {
	err := RollSet{}.Validate()
	assert.True(t, errors.Is(err, ErrInvalidCount))
}

// TestCLIError_Error verifies message formatting with and without a
// wrapped error.
func TestCLIError_Error(t *testing.T) {
	plain := NewCLIError(ExitInvalidInput, "bad count")
	assert.Equal(t, "bad count", plain.Error())
	assert.Nil(t, plain.Unwrap())

	inner := errors.New("boom")
	wrapped := WrapCLIError(ExitConfigError, "loading config", inner)
	assert.Equal(t, "loading config: boom", wrapped.Error())
	assert.Equal(t, ExitConfigError, wrapped.Code)
}

// TestCLIError_ErrorsAs verifies that CLIError participates in the
// standard errors.As / errors.Is chain.
func TestCLIError_ErrorsAs(t *testing.T) {
	err := WrapCLIError(ExitInvalidInput, InvalidInputMessage, ErrInvalidInput)

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, ExitInvalidInput, cliErr.Code)
	assert.True(t, IsInvalidInput(err))
	assert.False(t, IsInvalidInput(errors.New("other")))
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, int(ExitSuccess))
	assert.Equal(t, 1, int(ExitInvalidInput))
	assert.Equal(t, 2, int(ExitConfigError))
}
