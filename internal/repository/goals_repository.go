package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/pkg/cleanup"
	"github.com/TereBts/studystar/pkg/entity"
)

const goalColumns = `id, user_id, course_id, weekly_hours_target, weekly_lessons_target,
		study_days_per_week, total_required_lessons, milestone_name, milestone_date,
		avg_hours_per_lesson, is_active, created_at, updated_at`

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(cfg DBConfig) *GoalsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for goalsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GoalsRepository{
		conn: pool,
	}
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	row := gr.conn.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1;`, id)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return goal, nil
}

func (gr *GoalsRepository) ListActive(ctx context.Context) ([]*entity.Goal, error) {
	rows, err := gr.conn.Query(ctx, `SELECT `+goalColumns+` FROM goals WHERE is_active = TRUE ORDER BY created_at;`)
	if err != nil {
		return nil, errors.New("listing active goals error: " + err.Error())
	}
	return collectGoals(rows)
}

func (gr *GoalsRepository) ListActiveByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error) {
	rows, err := gr.conn.Query(ctx, `SELECT `+goalColumns+` FROM goals WHERE user_id = $1 AND is_active = TRUE ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("listing user goals error: " + err.Error())
	}
	return collectGoals(rows)
}

func scanGoal(row pgx.Row) (*entity.Goal, error) {
	var g entity.Goal
	err := row.Scan(
		&g.ID, &g.UserID, &g.CourseID, &g.WeeklyHoursTarget, &g.WeeklyLessonsTarget,
		&g.StudyDaysPerWeek, &g.TotalRequiredLessons, &g.MilestoneName, &g.MilestoneDate,
		&g.AvgHoursPerLesson, &g.IsActive, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func collectGoals(rows pgx.Rows) ([]*entity.Goal, error) {
	defer rows.Close()
	goals := make([]*entity.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, errors.New("goal row parsing error: " + err.Error())
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected goal rows error: " + err.Error())
	}
	return goals, nil
}
