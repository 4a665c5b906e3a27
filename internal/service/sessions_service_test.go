package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/internal/service"
	"github.com/TereBts/studystar/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestLogSession(t *testing.T) {
	ctx := context.Background()
	goal := &entity.Goal{
		ID:                uuid.New(),
		UserID:            uid,
		WeeklyHoursTarget: floatPtr(5),
		StudyDaysPerWeek:  5,
		IsActive:          true,
	}
	started := time.Now().Add(-2 * time.Hour)
	t.Run("success with goal", func(t *testing.T) {
		sessions := &fakeSessionsRepo{}
		ss := service.NewSessionsService(sessions, &fakeGoalsRepo{goals: []*entity.Goal{goal}})
		session, err := ss.LogSession(ctx, uid, &service.LogSessionRequest{
			GoalID:          &goal.ID,
			StartedAt:       started,
			DurationMinutes: 45,
			Notes:           "chapter 3",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), session.ID)
		assert.Equal(t, uid, session.UserID)
		assert.Equal(t, 45, session.DurationMinutes)
		require.NotNil(t, sessions.lastCreated)
		assert.Equal(t, goal.ID, *sessions.lastCreated.GoalID)
	})
	t.Run("success without goal", func(t *testing.T) {
		ss := service.NewSessionsService(&fakeSessionsRepo{}, &fakeGoalsRepo{})
		session, err := ss.LogSession(ctx, uid, &service.LogSessionRequest{
			StartedAt:       started,
			DurationMinutes: 30,
		})
		require.NoError(t, err)
		assert.Nil(t, session.GoalID)
	})
	t.Run("future start rejected", func(t *testing.T) {
		ss := service.NewSessionsService(&fakeSessionsRepo{}, &fakeGoalsRepo{})
		_, err := ss.LogSession(ctx, uid, &service.LogSessionRequest{
			StartedAt:       time.Now().Add(time.Hour),
			DurationMinutes: 30,
		})
		assert.ErrorIs(t, err, errorvalues.ErrSessionDateNotAllowed)
	})
	t.Run("unknown goal", func(t *testing.T) {
		unknown := uuid.New()
		ss := service.NewSessionsService(&fakeSessionsRepo{}, &fakeGoalsRepo{})
		_, err := ss.LogSession(ctx, uid, &service.LogSessionRequest{
			GoalID:          &unknown,
			StartedAt:       started,
			DurationMinutes: 30,
		})
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("foreign goal", func(t *testing.T) {
		ss := service.NewSessionsService(&fakeSessionsRepo{}, &fakeGoalsRepo{goals: []*entity.Goal{goal}})
		_, err := ss.LogSession(ctx, uuid.New(), &service.LogSessionRequest{
			GoalID:          &goal.ID,
			StartedAt:       started,
			DurationMinutes: 30,
		})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("validation failures", func(t *testing.T) {
		ss := service.NewSessionsService(&fakeSessionsRepo{}, &fakeGoalsRepo{})
		testCases := []struct {
			name string
			req  service.LogSessionRequest
		}{
			{
				name: "zero duration",
				req:  service.LogSessionRequest{StartedAt: started},
			},
			{
				name: "marathon duration",
				req:  service.LogSessionRequest{StartedAt: started, DurationMinutes: 2000},
			},
			{
				name: "missing start",
				req:  service.LogSessionRequest{DurationMinutes: 30},
			},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ss.LogSession(ctx, uid, &tc.req)
				assert.Error(t, err)
			})
		}
	})
}
