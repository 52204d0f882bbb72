package engine

// State is the lifecycle position of a quiz or game session.
type State string

const (
	StateNotStarted      State = "not_started"
	StateInProgress      State = "in_progress"
	StateAwaitingAdvance State = "awaiting_advance"
	StateCompleted       State = "completed"
)

// Tier is a qualitative band of a final score.
type Tier string

const (
	TierTop    Tier = "top"
	TierMiddle Tier = "middle"
	TierBottom Tier = "bottom"
)

type Verdict struct {
	Tier    Tier   `json:"tier"`
	Message string `json:"message"`
}

// VerdictPolicy thresholds the fraction of correct answers.
type VerdictPolicy struct {
	TopThreshold    float64
	MiddleThreshold float64
	TopMessage      string
	MiddleMessage   string
	BottomMessage   string
}

func DefaultVerdictPolicy() VerdictPolicy {
	return VerdictPolicy{
		TopThreshold:    0.8,
		MiddleThreshold: 0.5,
		TopMessage:      "Excellent work!",
		MiddleMessage:   "Good effort!",
		BottomMessage:   "Keep practicing!",
	}
}

// Judge maps correct/total onto a tier. Thresholds are inclusive.
func (p VerdictPolicy) Judge(correct, total int) Verdict {
	var fraction float64
	if total > 0 {
		fraction = float64(correct) / float64(total)
	}
	switch {
	case fraction >= p.TopThreshold:
		return Verdict{Tier: TierTop, Message: p.TopMessage}
	case fraction >= p.MiddleThreshold:
		return Verdict{Tier: TierMiddle, Message: p.MiddleMessage}
	default:
		return Verdict{Tier: TierBottom, Message: p.BottomMessage}
	}
}
