package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/TereBts/studystar/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type GoalsRepositoryI interface {
	// Searches goal with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Lists every active goal, for the weekly freeze pass
	ListActive(ctx context.Context) ([]*entity.Goal, error)
	// Lists active goals owned by user with uid
	ListActiveByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error)
}

type SessionsRepositoryI interface {
	// Creates new study session row, returns its id
	Create(ctx context.Context, session *entity.StudySession) (int64, error)
	// Sums logged minutes over user's whole history (0 when none)
	SumMinutesByUser(ctx context.Context, uid uuid.UUID) (int, error)
	// Sums logged minutes for user within [from, to] by start date
	SumMinutesByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) (int, error)
	// Provides start timestamps of all user's sessions, for streak counting
	ListStartTimesByUser(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
	// Sums minutes and counts sessions for a goal whose start date falls
	// within [from, to] inclusive
	AggregateByGoalAndDateRange(ctx context.Context, goalID uuid.UUID, from, to time.Time) (minutes, sessions int, err error)
	// Returns lifetime minutes, session count and earliest start for a goal.
	// firstStart is nil when the goal has no sessions
	GoalLifetime(ctx context.Context, goalID uuid.UUID) (minutes, sessions int, firstStart *time.Time, err error)
}

type OutcomesRepositoryI interface {
	// Upserts all outcomes by (goal_id, week_start) in a single transaction.
	// Reports how many rows were inserted vs overwritten
	UpsertBatch(ctx context.Context, outcomes []entity.GoalOutcome) (created, updated int, err error)
	// Counts completed outcome rows across the user's goals
	CountCompletedByUser(ctx context.Context, uid uuid.UUID) (int, error)
	// Lists most recent outcomes for a goal, ascending by week_start
	ListByGoal(ctx context.Context, goalID uuid.UUID, limit int) ([]entity.GoalOutcome, error)
	// Removes rows produced by the demo seeder (notes = 'seeded')
	DeleteSeeded(ctx context.Context) (int64, error)
}

type AchievementsRepositoryI interface {
	// Loads the full achievement catalog with typed, validated rules
	ListDefinitions(ctx context.Context) ([]entity.Achievement, error)
	// Provides the set of codes already awarded to user
	ListAwardedCodes(ctx context.Context, uid uuid.UUID) (map[string]struct{}, error)
	// Inserts an award row; ErrAlreadyAwarded on the uniqueness conflict
	CreateAward(ctx context.Context, uid uuid.UUID, achievementID int) (*entity.UserAchievement, error)
	// Lists user's awards, newest first
	ListAwardsByUser(ctx context.Context, uid uuid.UUID, limit int) ([]entity.UserAchievement, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
