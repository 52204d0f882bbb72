package config

import "skillcycle/internal/engine"

// Problems maps the operand bounds onto the problem generator.
func (c GameConfig) Problems() engine.ProblemConfig {
	return engine.ProblemConfig{AddMax: c.AddMax, MulMax: c.MulMax}
}

func (c GameConfig) Distractors() engine.DistractorConfig {
	return engine.DistractorConfig{Window: c.DistractorWindow, MaxAttempts: c.DistractorAttempts}
}

func (c GameConfig) MathGame() engine.MathGameConfig {
	return engine.MathGameConfig{
		Scoring:   engine.Scoring{BasePoints: c.BasePoints, StreakBonus: c.StreakBonus},
		MaxRounds: c.MaxRounds,
	}
}

func (c QuizConfig) Quiz() engine.QuizConfig {
	return engine.QuizConfig{
		PointValue: c.PointValue,
		Verdicts: engine.VerdictPolicy{
			TopThreshold:    c.TopThreshold,
			MiddleThreshold: c.MiddleThreshold,
			TopMessage:      c.TopMessage,
			MiddleMessage:   c.MiddleMessage,
			BottomMessage:   c.BottomMessage,
		},
	}
}

func (c ChatConfig) Timing() engine.ChatTiming {
	return engine.ChatTiming{MinDelay: c.MinDelay, MaxDelay: c.MaxDelay}
}
