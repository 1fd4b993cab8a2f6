package domain

import "time"

// AchievementKey identifies a badge in the achievement catalogue.
type AchievementKey string

const (
	AchievementFirstSteps          AchievementKey = "first_steps"
	AchievementConsistencyChampion AchievementKey = "consistency_champion"
	AchievementMarathonMaster      AchievementKey = "marathon_master"
	AchievementCenturyClub         AchievementKey = "century_club"
	AchievementEarlyBird           AchievementKey = "early_bird"
	AchievementNightOwl            AchievementKey = "night_owl"
)

// Achievement thresholds.
const (
	ConsistencyStreakDays = 7
	MarathonSessionMins   = 120
	CenturyClubMinutes    = 100 * 60
	EarlyBirdBeforeHour   = 8
	NightOwlFromHour      = 22
)

// Achievement is a catalogue entry.
type Achievement struct {
	Key         AchievementKey
	Title       string
	Description string
}

// UnlockedAchievement records when a user earned an achievement.
type UnlockedAchievement struct {
	Key        AchievementKey
	UnlockedAt time.Time
}

// AchievementStatus is a catalogue entry as seen by one user.
type AchievementStatus struct {
	Achievement
	Unlocked   bool
	UnlockedAt *time.Time
}

// AchievementCatalogue lists every achievement in display order.
var AchievementCatalogue = []Achievement{
	{Key: AchievementFirstSteps, Title: "First Steps", Description: "Complete your first study session"},
	{Key: AchievementConsistencyChampion, Title: "Consistency Champion", Description: "Study for 7 days in a row"},
	{Key: AchievementMarathonMaster, Title: "Marathon Master", Description: "Complete a 2-hour study session"},
	{Key: AchievementCenturyClub, Title: "Century Club", Description: "Complete 100 total hours"},
	{Key: AchievementEarlyBird, Title: "Early Bird", Description: "Start a session before 8 AM"},
	{Key: AchievementNightOwl, Title: "Night Owl", Description: "Study after 10 PM"},
}

// SessionAchievements returns the keys a single session earns on its own.
// startHour is the local hour the session started.
func SessionAchievements(s *StudySession, startHour int) []AchievementKey {
	keys := []AchievementKey{AchievementFirstSteps}
	if s.DurationMinutes >= MarathonSessionMins {
		keys = append(keys, AchievementMarathonMaster)
	}
	if startHour < EarlyBirdBeforeHour {
		keys = append(keys, AchievementEarlyBird)
	}
	if startHour >= NightOwlFromHour {
		keys = append(keys, AchievementNightOwl)
	}
	return keys
}

// StatsAchievements returns the keys earned by the aggregate counters.
func StatsAchievements(stats StudyStats) []AchievementKey {
	var keys []AchievementKey
	if stats.TotalSessions > 0 {
		keys = append(keys, AchievementFirstSteps)
	}
	if stats.CurrentStreak >= ConsistencyStreakDays {
		keys = append(keys, AchievementConsistencyChampion)
	}
	if stats.TotalMinutes >= CenturyClubMinutes {
		keys = append(keys, AchievementCenturyClub)
	}
	return keys
}
