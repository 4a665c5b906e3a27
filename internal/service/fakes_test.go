package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/pkg/entity"
)

// In-memory repo fakes shared by the service tests. Each returns its
// configured data, or err when set.

type goalActivity struct {
	minutes  int
	sessions int
}

type fakeSessionsRepo struct {
	err         error
	totalMin    int
	weekMin     int
	starts      []time.Time
	perGoal     map[uuid.UUID]goalActivity
	lifeMin     int
	lifeCount   int
	firstStart  *time.Time
	nextID      int64
	lastCreated *entity.StudySession
}

func (f *fakeSessionsRepo) Create(ctx context.Context, session *entity.StudySession) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.lastCreated = session
	f.nextID++
	return f.nextID, nil
}

func (f *fakeSessionsRepo) SumMinutesByUser(ctx context.Context, uid uuid.UUID) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.totalMin, nil
}

func (f *fakeSessionsRepo) SumMinutesByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.weekMin, nil
}

func (f *fakeSessionsRepo) ListStartTimesByUser(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.starts, nil
}

func (f *fakeSessionsRepo) AggregateByGoalAndDateRange(ctx context.Context, goalID uuid.UUID, from, to time.Time) (int, int, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	a := f.perGoal[goalID]
	return a.minutes, a.sessions, nil
}

func (f *fakeSessionsRepo) GoalLifetime(ctx context.Context, goalID uuid.UUID) (int, int, *time.Time, error) {
	if f.err != nil {
		return 0, 0, nil, f.err
	}
	return f.lifeMin, f.lifeCount, f.firstStart, nil
}

type fakeGoalsRepo struct {
	err   error
	goals []*entity.Goal
}

func (f *fakeGoalsRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, errorvalues.ErrGoalNotFound
}

func (f *fakeGoalsRepo) ListActive(ctx context.Context) ([]*entity.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.goals, nil
}

func (f *fakeGoalsRepo) ListActiveByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	owned := make([]*entity.Goal, 0)
	for _, g := range f.goals {
		if g.UserID == uid {
			owned = append(owned, g)
		}
	}
	return owned, nil
}

type fakeOutcomesRepo struct {
	err            error
	completedCount int
	listed         []entity.GoalOutcome
	upserted       []entity.GoalOutcome
	upsertCalls    int
	created        int
	updated        int
}

func (f *fakeOutcomesRepo) UpsertBatch(ctx context.Context, outcomes []entity.GoalOutcome) (int, int, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	f.upsertCalls++
	f.upserted = outcomes
	return f.created, f.updated, nil
}

func (f *fakeOutcomesRepo) CountCompletedByUser(ctx context.Context, uid uuid.UUID) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.completedCount, nil
}

func (f *fakeOutcomesRepo) ListByGoal(ctx context.Context, goalID uuid.UUID, limit int) ([]entity.GoalOutcome, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.listed, nil
}

func (f *fakeOutcomesRepo) DeleteSeeded(ctx context.Context) (int64, error) {
	return 0, f.err
}

type fakeAchievementsRepo struct {
	err       error
	createErr error
	defs      []entity.Achievement
	awarded   map[string]struct{}
	codeByID  map[int]string
	nextID    int64
	awards    []entity.UserAchievement
}

func newFakeAchievementsRepo(defs []entity.Achievement) *fakeAchievementsRepo {
	codeByID := make(map[int]string, len(defs))
	for _, d := range defs {
		codeByID[d.ID] = d.Code
	}
	return &fakeAchievementsRepo{
		defs:     defs,
		awarded:  make(map[string]struct{}),
		codeByID: codeByID,
	}
}

func (f *fakeAchievementsRepo) ListDefinitions(ctx context.Context) ([]entity.Achievement, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.defs, nil
}

func (f *fakeAchievementsRepo) ListAwardedCodes(ctx context.Context, uid uuid.UUID) (map[string]struct{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	codes := make(map[string]struct{}, len(f.awarded))
	for c := range f.awarded {
		codes[c] = struct{}{}
	}
	return codes, nil
}

func (f *fakeAchievementsRepo) CreateAward(ctx context.Context, uid uuid.UUID, achievementID int) (*entity.UserAchievement, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	code := f.codeByID[achievementID]
	if _, have := f.awarded[code]; have {
		return nil, errorvalues.ErrAlreadyAwarded
	}
	f.awarded[code] = struct{}{}
	f.nextID++
	award := entity.UserAchievement{
		ID:            f.nextID,
		UserID:        uid,
		AchievementID: achievementID,
		AwardedAt:     time.Now(),
	}
	f.awards = append(f.awards, award)
	return &award, nil
}

func (f *fakeAchievementsRepo) ListAwardsByUser(ctx context.Context, uid uuid.UUID, limit int) ([]entity.UserAchievement, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.awards) > limit {
		return f.awards[len(f.awards)-limit:], nil
	}
	return f.awards, nil
}
