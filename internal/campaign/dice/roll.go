// Package dice implements the audited dice rolls behind every gate and
// engine in the day loop. Expressions follow the NdM or NdM±K form and
// every roll returns its individual dice: nothing is rolled hidden.
package dice

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

var exprPattern = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// Result captures a resolved dice expression with its full audit trail.
type Result struct {
	Expression string `json:"expression"`
	Dice       []int  `json:"dice"`
	Modifier   int    `json:"modifier"`
	Total      int    `json:"total"`
	Label      string `json:"label,omitempty"`
}

// Roller rolls dice from a single random source. A fixed seed replays a
// campaign run roll for roll.
type Roller struct {
	rng *rand.Rand
}

// NewRoller returns a roller seeded with the provided seed.
func NewRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// NewRollerFromRng returns a roller that draws from an existing source.
func NewRollerFromRng(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Roll parses and resolves a dice expression such as "2d6" or "1d8+2".
func (r *Roller) Roll(expression, label string) (Result, error) {
	expr := strings.ToLower(strings.TrimSpace(expression))
	m := exprPattern.FindStringSubmatch(expr)
	if m == nil {
		return Result{}, apperrors.WithMetadata(apperrors.CodeDiceInvalidExpression,
			"invalid dice expression", map[string]string{"expression": expression})
	}

	count, _ := strconv.Atoi(m[1])
	sides, _ := strconv.Atoi(m[2])
	modifier := 0
	if m[3] != "" {
		modifier, _ = strconv.Atoi(m[3])
	}
	if sides < 1 {
		return Result{}, apperrors.WithMetadata(apperrors.CodeDiceInvalidExpression,
			"dice must have at least one side", map[string]string{"expression": expression})
	}

	return r.roll(count, sides, modifier, expression, label), nil
}

func (r *Roller) roll(count, sides, modifier int, expression, label string) Result {
	dice := make([]int, count)
	total := modifier
	for i := range dice {
		value := r.rng.Intn(sides) + 1
		dice[i] = value
		total += value
	}
	return Result{
		Expression: expression,
		Dice:       dice,
		Modifier:   modifier,
		Total:      total,
		Label:      label,
	}
}

// D6 rolls a single six-sided die.
func (r *Roller) D6(label string) Result {
	return r.roll(1, 6, 0, "1d6", label)
}

// TwoD6 rolls two six-sided dice.
func (r *Roller) TwoD6(label string) Result {
	return r.roll(2, 6, 0, "2d6", label)
}
