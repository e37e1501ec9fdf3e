package engine

type FatigueRisk string

const (
	FatigueLow    FatigueRisk = "low"
	FatigueMedium FatigueRisk = "medium"
	FatigueHigh   FatigueRisk = "high"
)

const (
	baselineMotivation = 50
	fatigueWindow      = 5
	motivationDeadband = 5.0
)

type MotivationReport struct {
	CurrentLevel    int         `json:"currentLevel"`
	Trend           Trend       `json:"trend"`
	FatigueRisk     FatigueRisk `json:"fatigueRisk"`
	Recommendations []string    `json:"recommendations,omitempty"`
}

// TrackMotivationLevel scores each session and reports on the latest one.
func TrackMotivationLevel(sessions []ActivityRecord) MotivationReport {
	if len(sessions) == 0 {
		return MotivationReport{
			CurrentLevel: baselineMotivation,
			Trend:        TrendStable,
			FatigueRisk:  FatigueLow,
		}
	}

	scores := make([]float64, len(sessions))
	for i, s := range sessions {
		scores[i] = sessionMotivation(s)
	}

	current := scores[len(scores)-1]
	trend := TrendStable
	if len(scores) > 1 {
		prev := scores[len(scores)-2]
		if current > prev+motivationDeadband {
			trend = TrendImproving
		} else if current < prev-motivationDeadband {
			trend = TrendDeclining
		}
	}

	risk := FatigueLow
	switch avg := mean(lastN(scores, fatigueWindow)); {
	case avg < 30:
		risk = FatigueHigh
	case avg < 60:
		risk = FatigueMedium
	}

	return MotivationReport{
		CurrentLevel:    int(current),
		Trend:           trend,
		FatigueRisk:     risk,
		Recommendations: motivationAdvice(risk, trend, current),
	}
}

func sessionMotivation(s ActivityRecord) float64 {
	score := float64(baselineMotivation)
	if s.Completed {
		score += 20
	}
	if s.CompletionRate > 0.8 {
		score += 15
	}
	if s.CompletionRate < 0.3 {
		score -= 20
	}
	if s.EngagementLevel > 80 {
		score += 10
	}
	if s.EngagementLevel < 40 {
		score -= 15
	}
	if s.PlannedDuration > 0 {
		ratio := s.ActualDuration / s.PlannedDuration
		if ratio > 1.2 {
			score -= 10
		}
		if ratio < 0.5 {
			score -= 5
		}
	}
	return clamp(score, 0, 100)
}

func motivationAdvice(risk FatigueRisk, trend Trend, level float64) []string {
	advice := []string{}
	switch risk {
	case FatigueHigh:
		advice = append(advice,
			"Take a longer break before your next session",
			"Switch to light review instead of new material")
	case FatigueMedium:
		advice = append(advice, "Keep sessions shorter and add a short break every 25 minutes")
	}
	if trend == TrendDeclining {
		advice = append(advice, "Revisit your goals and pick one small win for today")
	}
	if level >= 80 {
		advice = append(advice, "Great momentum: try a more challenging topic")
	}
	if len(advice) == 0 {
		advice = append(advice, "Keep up your current routine")
	}
	return advice
}
