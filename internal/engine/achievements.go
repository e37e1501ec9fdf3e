package engine

import (
	"slices"
	"time"
)

type Action string

const (
	ActionDailyLogin     Action = "daily-login"
	ActionTopicCompleted Action = "topic-completed"
	ActionXPGained       Action = "xp-gained"
)

// EventData carries the optional details of a tracked event.
type EventData struct {
	Topic      string     `json:"topic,omitempty"`
	Difficulty SkillLevel `json:"difficulty,omitempty"`
	Streak     int        `json:"streak,omitempty"`
	XP         int        `json:"xp,omitempty"`
}

const (
	AchievementWeekStreak    = "week-streak"
	AchievementMonthStreak   = "month-streak"
	AchievementFirstTopic    = "first-topic"
	AchievementAdvancedTopic = "advanced-topic"
	AchievementXP1000        = "xp-1000"
)

type achievementRule struct {
	def     Achievement
	action  Action
	trigger func(p Profile, ev EventData) bool
}

func streakOf(p Profile, ev EventData) int {
	if ev.Streak > p.CurrentStreak {
		return ev.Streak
	}
	return p.CurrentStreak
}

var achievementRules = []achievementRule{
	{
		def: Achievement{
			ID: AchievementWeekStreak, Title: "Week Warrior",
			Description: "Learned seven days in a row", Icon: "🔥",
			XPReward: 100, Category: CategoryStreak,
		},
		action:  ActionDailyLogin,
		trigger: func(p Profile, ev EventData) bool { return streakOf(p, ev) >= 7 },
	},
	{
		def: Achievement{
			ID: AchievementMonthStreak, Title: "Unstoppable",
			Description: "Learned thirty days in a row", Icon: "🏆",
			XPReward: 500, Category: CategoryStreak,
		},
		action:  ActionDailyLogin,
		trigger: func(p Profile, ev EventData) bool { return streakOf(p, ev) >= 30 },
	},
	{
		def: Achievement{
			ID: AchievementFirstTopic, Title: "First Steps",
			Description: "Completed the first topic", Icon: "🎯",
			XPReward: 50, Category: CategoryLearning,
		},
		action:  ActionTopicCompleted,
		trigger: func(p Profile, ev EventData) bool { return len(p.CompletedTopics) > 0 || ev.Topic != "" },
	},
	{
		def: Achievement{
			ID: AchievementAdvancedTopic, Title: "Challenge Accepted",
			Description: "Completed an advanced-difficulty topic", Icon: "🧠",
			XPReward: 200, Category: CategorySkill,
		},
		action:  ActionTopicCompleted,
		trigger: func(_ Profile, ev EventData) bool { return ev.Difficulty == Advanced },
	},
	{
		def: Achievement{
			ID: AchievementXP1000, Title: "XP Master",
			Description: "Earned 1000 XP", Icon: "⭐",
			XPReward: 150, Category: CategoryLearning,
		},
		action:  ActionXPGained,
		trigger: func(p Profile, _ EventData) bool { return p.TotalXP >= 1000 },
	},
}

// AchievementCatalog lists every achievement the rules can unlock.
func AchievementCatalog() []Achievement {
	out := make([]Achievement, 0, len(achievementRules))
	for _, r := range achievementRules {
		out = append(out, r.def)
	}
	return out
}

// ApplyEvent returns a copy of p with the event's own effect applied: the
// reported streak, the completed topic or the gained XP. Achievement rules
// are evaluated against the result.
func ApplyEvent(p Profile, action Action, ev EventData) Profile {
	out := p.Clone()
	switch action {
	case ActionDailyLogin:
		if ev.Streak > 0 {
			out.CurrentStreak = ev.Streak
		}
	case ActionTopicCompleted:
		if ev.Topic != "" && !slices.Contains(out.CompletedTopics, ev.Topic) {
			out.CompletedTopics = append(out.CompletedTopics, ev.Topic)
		}
	case ActionXPGained:
		if ev.XP > 0 {
			out.TotalXP += ev.XP
		}
		out.Level = LevelForXP(out.TotalXP)
	}
	return out
}

// CheckAchievements returns the achievements the event unlocks. Ids already
// on the profile are never returned again.
func (e *Engine) CheckAchievements(p Profile, action Action, ev EventData, now time.Time) []Achievement {
	unlocked := []Achievement{}
	for _, rule := range achievementRules {
		if rule.action != action || p.HasAchievement(rule.def.ID) {
			continue
		}
		if !rule.trigger(p, ev) {
			continue
		}
		a := rule.def
		a.UnlockedAt = now
		unlocked = append(unlocked, a)
	}
	return unlocked
}

// ApplyAchievements returns a copy of p with the new achievements recorded
// and their XP rewards added. Duplicates are dropped.
func ApplyAchievements(p Profile, unlocked []Achievement) Profile {
	out := p.Clone()
	for _, a := range unlocked {
		if out.HasAchievement(a.ID) {
			continue
		}
		out.Achievements = append(out.Achievements, a)
		if a.XPReward > 0 {
			out.TotalXP += a.XPReward
		}
	}
	out.Level = LevelForXP(out.TotalXP)
	return out
}
