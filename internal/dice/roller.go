package dice

import (
	"math/rand"
	"time"

	"github.com/shinji-kodama/rolldice/internal/model"
)

// Source produces roll sets. The driver depends on this interface so tests
// can substitute a fixed sequence for the random roller.
type Source interface {
	Roll(n int) (model.RollSet, error)
}

// Roller draws independent, uniformly distributed six-sided die rolls.
//
// Roller is not safe for concurrent use; rolldice owns exactly one per run.
type Roller struct {
	rng  *rand.Rand
	seed int64
}

// NewRoller creates a roller. A zero seed means "seed from the clock",
// which gives a different sequence on every run. Any other seed makes
// the sequence reproducible.
func NewRoller(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Roller{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually used, which is useful in verbose output
// when the seed was derived from the clock.
func (r *Roller) Seed() int64 {
	return r.seed
}

// Roll returns n face values in roll order. Each die is sampled with
// replacement, so repeated values are expected.
func (r *Roller) Roll(n int) (model.RollSet, error) {
	if n < model.MinDice || n > model.MaxDice {
		return nil, model.ErrInvalidCount
	}

	rolls := make(model.RollSet, n)
	for i := range rolls {
		rolls[i] = rollDie(r.rng)
	}
	return rolls, nil
}

// rollDie rolls a single six-sided die.
func rollDie(rng *rand.Rand) model.FaceValue {
	return model.FaceValue(rng.Intn(model.Sides) + 1)
}

// Fixed is a Source that replays a predetermined roll set. Roll returns the
// first n values, so one Fixed can serve any count up to its length.
type Fixed model.RollSet

// Roll returns the first n values of the fixed sequence.
func (f Fixed) Roll(n int) (model.RollSet, error) {
	if n < model.MinDice || n > model.MaxDice || n > len(f) {
		return nil, model.ErrInvalidCount
	}
	rolls := make(model.RollSet, n)
	copy(rolls, f[:n])
	if err := rolls.Validate(); err != nil {
		return nil, err
	}
	return rolls, nil
}
