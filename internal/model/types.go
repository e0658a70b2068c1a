// Package model defines the domain types for the rolldice CLI.
//
// All entities in this package are transient: a RollSet is created by the
// dice package, rendered by the render package and printed by the cli
// package within a single run.
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinDice is the smallest number of dice a user may roll.
	MinDice = 1

	// MaxDice is the largest number of dice a user may roll.
	MaxDice = 6

	// Sides is the number of faces on every die.
	Sides = 6
)

// InvalidInputMessage is the corrective message shown to the user when the
// die count cannot be accepted. It is printed verbatim on stdout.
const InvalidInputMessage = "Invalid input. Please restart app and enter a number 1 to 6."

// ErrInvalidInput is returned by the input validator when the trimmed
// die-count text is not one of "1" through "6".
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidCount indicates a roll was requested for a die count outside
// MinDice..MaxDice.
var ErrInvalidCount = fmt.Errorf("die count must be between %d and %d", MinDice, MaxDice)

// FaceValue is the result of rolling a single six-sided die.
// Valid values are 1 through 6 inclusive.
type FaceValue int

// IsValid reports whether the face value is within 1..Sides.
func (f FaceValue) IsValid() bool {
	return f >= 1 && f <= Sides
}

// String returns the decimal representation of the face value.
func (f FaceValue) String() string {
	return strconv.Itoa(int(f))
}

// RollSet is the ordered sequence of face values for one invocation.
// Order is roll order and is preserved through rendering.
type RollSet []FaceValue

// Total returns the sum of all face values in the set.
func (r RollSet) Total() int {
	total := 0
	for _, f := range r {
		total += int(f)
	}
	return total
}

// Ints returns the face values as plain integers, which is the form used
// in structured (JSON/YAML) output.
func (r RollSet) Ints() []int {
	out := make([]int, len(r))
	for i, f := range r {
		out[i] = int(f)
	}
	return out
}

// Validate checks the set length and every face value.
func (r RollSet) Validate() error {
	if len(r) < MinDice || len(r) > MaxDice {
		return fmt.Errorf("roll set has %d dice: %w", len(r), ErrInvalidCount)
	}
	for i, f := range r {
		if !f.IsValid() {
			return fmt.Errorf("roll set: die %d has face %d out of range (1-%d)", i, int(f), Sides)
		}
	}
	return nil
}

// String returns a comma-separated list of the face values, e.g. "6,5,3,2".
func (r RollSet) String() string {
	parts := make([]string, len(r))
	for i, f := range r {
		parts[i] = f.String()
	}
	return strings.Join(parts, ",")
}

// ExitCode defines the CLI exit codes. Scripts can rely on these to tell
// a successful roll from a rejected die count.
type ExitCode int

const (
	// ExitSuccess indicates the dice were rolled and the diagram printed.
	ExitSuccess ExitCode = 0

	// ExitInvalidInput indicates the die count was rejected. This is also
	// the code used for otherwise unclassified errors.
	ExitInvalidInput ExitCode = 1

	// ExitConfigError indicates a config file, environment override or
	// flag value could not be used.
	ExitConfigError ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// IsInvalidInput reports whether err is (or wraps) ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
