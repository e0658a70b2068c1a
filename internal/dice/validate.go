package dice

import (
	"strings"

	"github.com/shinji-kodama/rolldice/internal/model"
)

// validCounts lists the only literal strings accepted as a die count.
// Matching on literals rather than strconv.Atoi rejects forms such as
// "+3", "03" and "3.0" that a numeric parse would let through.
var validCounts = map[string]int{
	"1": 1,
	"2": 2,
	"3": 3,
	"4": 4,
	"5": 5,
	"6": 6,
}

// ParseCount validates raw user input and returns the number of dice to roll.
//
// Surrounding whitespace (including the trailing newline from a terminal
// read) is stripped first. The remaining text must be exactly one of
// "1".."6"; anything else returns model.ErrInvalidInput.
func ParseCount(raw string) (int, error) {
	n, ok := validCounts[strings.TrimSpace(raw)]
	if !ok {
		return 0, model.ErrInvalidInput
	}
	return n, nil
}
