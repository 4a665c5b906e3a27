package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/TereBts/studystar/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type LogSessionRequest struct {
	GoalID          *uuid.UUID
	StartedAt       time.Time `validate:"required"`
	DurationMinutes int       `validate:"required,min=1,max=1440"`
	Notes           string    `validate:"max=2000"`
}

// FreezeOptions selects the window to freeze. When WeekStart/WeekEnd are nil
// the previous calendar week relative to Today (in the freeze timezone) is
// used, and the run is skipped entirely unless Today is a Monday. Today is
// always injected by the caller so the operation stays deterministic.
type FreezeOptions struct {
	WeekStart *time.Time
	WeekEnd   *time.Time
	DryRun    bool
	Today     time.Time
}

// FreezeResult reports how many outcome rows were inserted vs overwritten.
// WeekStart/WeekEnd are nil when the run was skipped by the Monday throttle.
type FreezeResult struct {
	Created   int        `json:"created"`
	Updated   int        `json:"updated"`
	WeekStart *time.Time `json:"week_start"`
	WeekEnd   *time.Time `json:"week_end"`
}

// GoalProgress is everything the goal detail surface shows: recent frozen
// history, pacing figures, and any achievements unlocked by this visit.
type GoalProgress struct {
	Goal      *entity.Goal
	Outcomes  []entity.GoalOutcome
	Pacing    *entity.PacingReport
	NewAwards []entity.UserAchievement
}

// DashboardStats is the dashboard summary: the stats snapshot plus the
// current week's hours and latest unlocks.
type DashboardStats struct {
	Snapshot      *entity.StatsSnapshot
	WeekStart     time.Time
	WeekEnd       time.Time
	HoursThisWeek float64
	RecentAwards  []entity.UserAchievement
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type StatsServiceI interface {
	// Builds a fresh snapshot of the user's lifetime stats as of today
	UserStats(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.StatsSnapshot, error)
	// Builds the dashboard summary for the week containing today
	Dashboard(ctx context.Context, uid uuid.UUID, today time.Time) (*DashboardStats, error)
}

type FreezeServiceI interface {
	// Snapshots one week of every active goal's activity into outcome rows
	Freeze(ctx context.Context, opts FreezeOptions) (*FreezeResult, error)
}

type AchievementsServiceI interface {
	// Grants any newly satisfied achievements, returning only this call's awards
	Evaluate(ctx context.Context, uid uuid.UUID, now time.Time) ([]entity.UserAchievement, error)
}

type PacingServiceI interface {
	// Builds required weekly/daily rates and the projected completion date
	Report(ctx context.Context, goal *entity.Goal, lessonsCompleted int, now time.Time) (*entity.PacingReport, error)
}

type GoalsServiceI interface {
	ListGoals(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error)
	// Freezes last week, evaluates achievements and assembles the detail view
	Progress(ctx context.Context, goalID, uid uuid.UUID, now time.Time) (*GoalProgress, error)
}

type SessionsServiceI interface {
	LogSession(ctx context.Context, uid uuid.UUID, req *LogSessionRequest) (*entity.StudySession, error)
}
