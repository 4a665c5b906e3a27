package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/internal/repository"
)

var goalColumns = []string{
	"id", "user_id", "course_id", "weekly_hours_target", "weekly_lessons_target",
	"study_days_per_week", "total_required_lessons", "milestone_name", "milestone_date",
	"avg_hours_per_lesson", "is_active", "created_at", "updated_at",
}

func goalRow() []any {
	hoursTarget := 5.0
	return []any{
		goalID, userID, nil, &hoursTarget, (*int)(nil),
		5, (*int)(nil), (*string)(nil), (*time.Time)(nil),
		(*float64)(nil), true, time.Now(), time.Now(),
	}
}

func TestGetGoalByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	ctx := context.Background()
	query := `SELECT id, user_id, course_id,[\s\S]*FROM goals WHERE id = \$1;`
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goalID).
			WillReturnRows(pgxmock.NewRows(goalColumns).AddRow(goalRow()...))
		goal, err := repo.GetByID(ctx, goalID)
		require.NoError(t, err)
		assert.Equal(t, goalID, goal.ID)
		assert.Equal(t, userID, goal.UserID)
		require.NotNil(t, goal.WeeklyHoursTarget)
		assert.Equal(t, 5.0, *goal.WeeklyHoursTarget)
		assert.Nil(t, goal.MilestoneDate)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goalID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, goalID)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goalID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, goalID)
		assert.Error(t, err)
	})
}

func TestListActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	ctx := context.Background()
	query := `SELECT id, user_id, course_id,[\s\S]*FROM goals WHERE is_active = TRUE ORDER BY created_at;`
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows(goalColumns).AddRow(goalRow()...))
		goals, err := repo.ListActive(ctx)
		require.NoError(t, err)
		assert.Len(t, goals, 1)
	})
	t.Run("no active goals", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows(goalColumns))
		goals, err := repo.ListActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, goals)
	})
}
