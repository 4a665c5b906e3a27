package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// Goal is a user's study target. At least one of WeeklyHoursTarget,
// WeeklyLessonsTarget or TotalRequiredLessons is guaranteed present by the
// creation form; the engine only reads goals.
type Goal struct {
	ID                   uuid.UUID  `json:"id"`
	UserID               uuid.UUID  `json:"uid"`
	CourseID             *uuid.UUID `json:"course_id,omitempty"`
	WeeklyHoursTarget    *float64   `json:"weekly_hours_target,omitempty"`
	WeeklyLessonsTarget  *int       `json:"weekly_lessons_target,omitempty"`
	StudyDaysPerWeek     int        `json:"study_days_per_week"`
	TotalRequiredLessons *int       `json:"total_required_lessons,omitempty"`
	MilestoneName        *string    `json:"milestone_name,omitempty"`
	MilestoneDate        *time.Time `json:"milestone_date,omitempty"`
	AvgHoursPerLesson    *float64   `json:"avg_hours_per_lesson,omitempty"`
	IsActive             bool       `json:"is_active"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// StudySession is a single logged study activity. Append-only from the
// engine's perspective.
type StudySession struct {
	ID              int64      `json:"id"`
	UserID          uuid.UUID  `json:"uid"`
	GoalID          *uuid.UUID `json:"goal_id,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	DurationMinutes int        `json:"duration_minutes"`
	Notes           string     `json:"notes,omitempty"`
}

// GoalOutcome is the immutable weekly snapshot of a goal's progress.
// Unique per (GoalID, WeekStart); written only by the freeze service.
// LessonsCompleted is a proxy: one session counts as one lesson.
type GoalOutcome struct {
	ID               int64     `json:"id"`
	GoalID           uuid.UUID `json:"goal_id"`
	WeekStart        time.Time `json:"week_start"`
	WeekEnd          time.Time `json:"week_end"`
	HoursCompleted   float64   `json:"hours_completed"`
	LessonsCompleted int       `json:"lessons_completed"`
	HoursTarget      *float64  `json:"hours_target,omitempty"`
	LessonsTarget    *int      `json:"lessons_target,omitempty"`
	Completed        bool      `json:"completed"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type RuleKind string

const (
	RuleTotalHours     RuleKind = "total_hours"
	RuleGoalsCompleted RuleKind = "goals_completed"
	RuleWeeklyStreak   RuleKind = "weekly_streak"
	// RuleUnknown marks catalog rows whose rule_type was not recognised at
	// load time. Such rules are never eligible.
	RuleUnknown RuleKind = "unknown"
)

// AchievementRule is the typed form of a catalog row's rule_type and
// rule_params. Only the field matching Kind is meaningful.
type AchievementRule struct {
	Kind           RuleKind `json:"kind"`
	ThresholdHours float64  `json:"threshold_hours,omitempty"`
	GoalsRequired  int      `json:"goals_required,omitempty"`
	WeeksRequired  int      `json:"weeks_required,omitempty"`
}

type Achievement struct {
	ID          int             `json:"id"`
	Code        string          `json:"code"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Icon        string          `json:"icon,omitempty"`
	Rule        AchievementRule `json:"rule"`
}

// UserAchievement records a single unlock, unique per (UserID, AchievementID).
type UserAchievement struct {
	ID            int64     `json:"id"`
	UserID        uuid.UUID `json:"uid"`
	AchievementID int       `json:"achievement_id"`
	Code          string    `json:"code"`
	Title         string    `json:"title"`
	AwardedAt     time.Time `json:"awarded_at"`
}

// StatsSnapshot is a transient aggregate produced fresh on every call,
// never persisted.
type StatsSnapshot struct {
	TotalMinutes       int `json:"total_minutes"`
	CompletedGoalCount int `json:"completed_goals"`
	WeeklyStreakWeeks  int `json:"weekly_streak_weeks"`
}

// PacingReport carries required rates and the projected completion date for
// one goal. Rate pointers use nil for "inapplicable" (missing milestone
// fields) and +Inf for "deadline passed with work remaining".
type PacingReport struct {
	WeeksUntilMilestone *float64
	LessonsPerWeek      *float64
	HoursPerWeek        *float64
	LessonsPerDay       *float64
	HoursPerDay         *float64
	ProjectedCompletion *time.Time
}
