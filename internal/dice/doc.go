// Package dice implements die-count validation and roll generation for the
// rolldice CLI.
//
// Validation is single-shot: ParseCount either returns a count in 1..6 or
// model.ErrInvalidInput, and the caller decides how to terminate. Rolls are
// drawn from a math/rand source that is either seeded from the clock or from
// an explicit seed, so a run can be reproduced with --seed.
package dice
