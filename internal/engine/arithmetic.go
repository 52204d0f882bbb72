// Package engine holds the interactive demo logic: the arithmetic round
// generator, the quiz and math-game state machines, the keyword chatbot and
// the library browsers. Nothing here locks; each session is owned by a
// single caller that serializes its actions.
package engine

import (
	"fmt"
	"math/rand/v2"

	"skillcycle/internal/domain"
)

// OptionCount is the number of choices presented per arithmetic round.
const OptionCount = 4

// Operator is one of the closed set of arithmetic operations.
type Operator string

const (
	OpAdd      Operator = "add"
	OpMultiply Operator = "multiply"
)

// Symbol returns the display glyph.
func (o Operator) Symbol() string {
	if o == OpMultiply {
		return "×"
	}
	return "+"
}

// ArithmeticProblem is an immutable two-operand problem.
type ArithmeticProblem struct {
	A  int
	B  int
	Op Operator
}

// Result applies the operator; it is never stored separately.
func (p ArithmeticProblem) Result() int {
	if p.Op == OpMultiply {
		return p.A * p.B
	}
	return p.A + p.B
}

func (p ArithmeticProblem) String() string {
	return fmt.Sprintf("%d %s %d", p.A, p.Op.Symbol(), p.B)
}

// OptionSet is a shuffled set of distinct answers containing the correct one
// exactly once.
type OptionSet struct {
	Values       []int
	CorrectIndex int
}

// Correct returns the correct value.
func (o OptionSet) Correct() int {
	return o.Values[o.CorrectIndex]
}

type ProblemConfig struct {
	AddMax int
	MulMax int
}

// DistractorConfig bounds distractor sampling. Offsets are drawn from
// [-Window, Window) around the correct answer.
type DistractorConfig struct {
	Window      int
	MaxAttempts int
}

func DefaultProblemConfig() ProblemConfig {
	return ProblemConfig{AddMax: 50, MulMax: 12}
}

func DefaultDistractorConfig() DistractorConfig {
	return DistractorConfig{Window: 10, MaxAttempts: 1000}
}

// Generator produces arithmetic problems and their option sets.
type Generator struct {
	rnd         *rand.Rand
	problems    ProblemConfig
	distractors DistractorConfig
}

// NewGenerator returns a Generator. A nil rnd is replaced by a randomly
// seeded source.
func NewGenerator(problems ProblemConfig, distractors DistractorConfig, rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = newRand()
	}
	return &Generator{rnd: rnd, problems: problems, distractors: distractors}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Problem draws an operator uniformly, then operands from the operator's range.
func (g *Generator) Problem() ArithmeticProblem {
	op := OpAdd
	upper := g.problems.AddMax
	if g.rnd.IntN(2) == 1 {
		op = OpMultiply
		upper = g.problems.MulMax
	}
	return ArithmeticProblem{
		A:  g.rnd.IntN(upper) + 1,
		B:  g.rnd.IntN(upper) + 1,
		Op: op,
	}
}

// Options draws three distinct positive distractors around correct by
// rejection sampling and returns them shuffled together with correct.
func (g *Generator) Options(correct int) (OptionSet, error) {
	if correct < 1 {
		return OptionSet{}, domain.NewInvalidInputError(fmt.Sprintf("correct answer must be positive, got %d", correct))
	}
	window := g.distractors.Window
	if candidateCount(correct, window) < OptionCount-1 {
		return OptionSet{}, domain.NewDegenerateRangeError(correct, window, 0)
	}

	values := make([]int, 0, OptionCount)
	values = append(values, correct)
	for attempts := 0; len(values) < OptionCount; attempts++ {
		if attempts >= g.distractors.MaxAttempts {
			return OptionSet{}, domain.NewDegenerateRangeError(correct, window, attempts)
		}
		wrong := correct + g.rnd.IntN(2*window) - window
		if wrong < 1 || contains(values, wrong) {
			continue
		}
		values = append(values, wrong)
	}

	g.rnd.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	set := OptionSet{Values: values}
	for i, v := range values {
		if v == correct {
			set.CorrectIndex = i
		}
	}
	return set, nil
}

// candidateCount counts the positive values other than correct reachable
// with an offset in [-window, window).
func candidateCount(correct, window int) int {
	if window < 1 {
		return 0
	}
	lo := max(1, correct-window)
	hi := correct + window - 1
	if hi < lo {
		return 0
	}
	n := hi - lo + 1
	if correct >= lo && correct <= hi {
		n--
	}
	return n
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
