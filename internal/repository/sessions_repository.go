package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/pkg/cleanup"
	"github.com/TereBts/studystar/pkg/entity"
)

type SessionsRepository struct {
	conn PgConnection
}

func NewSessionsRepo(cfg DBConfig) *SessionsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for sessionsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for sessionsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &SessionsRepository{
		conn: pool,
	}
}

func NewSessionsRepoWithConn(conn PgConnection) *SessionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for sessionsRepo: " + err.Error())
	}
	return &SessionsRepository{
		conn: conn,
	}
}

func (sr *SessionsRepository) Create(ctx context.Context, session *entity.StudySession) (int64, error) {
	if session == nil {
		return 0, errors.New("session is nil")
	}
	row := sr.conn.QueryRow(
		ctx,
		`INSERT INTO study_sessions (user_id, goal_id, started_at, duration_minutes, notes) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		session.UserID,
		session.GoalID,
		session.StartedAt,
		session.DurationMinutes,
		session.Notes,
	)
	var id int64
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return 0, errorvalues.ErrGoalNotFound
			}
		}
		return 0, errors.New("creating session error: " + err.Error())
	}
	return id, nil
}

func (sr *SessionsRepository) SumMinutesByUser(ctx context.Context, uid uuid.UUID) (int, error) {
	row := sr.conn.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(duration_minutes), 0) FROM study_sessions WHERE user_id = $1;`,
		uid,
	)
	var minutes int
	if err := row.Scan(&minutes); err != nil {
		return 0, errors.New("summing user minutes error: " + err.Error())
	}
	return minutes, nil
}

func (sr *SessionsRepository) SumMinutesByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) (int, error) {
	row := sr.conn.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(duration_minutes), 0) FROM study_sessions WHERE user_id = $1 AND started_at::date >= $2 AND started_at::date <= $3;`,
		uid,
		from,
		to,
	)
	var minutes int
	if err := row.Scan(&minutes); err != nil {
		return 0, errors.New("summing user minutes for period error: " + err.Error())
	}
	return minutes, nil
}

func (sr *SessionsRepository) ListStartTimesByUser(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT started_at FROM study_sessions WHERE user_id = $1;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing session start times error: " + err.Error())
	}
	defer rows.Close()
	starts := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, errors.New("session start row parsing error: " + err.Error())
		}
		starts = append(starts, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected session rows error: " + err.Error())
	}
	return starts, nil
}

func (sr *SessionsRepository) AggregateByGoalAndDateRange(ctx context.Context, goalID uuid.UUID, from, to time.Time) (int, int, error) {
	row := sr.conn.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(duration_minutes), 0), COUNT(*) FROM study_sessions WHERE goal_id = $1 AND started_at::date >= $2 AND started_at::date <= $3;`,
		goalID,
		from,
		to,
	)
	var minutes, sessions int
	if err := row.Scan(&minutes, &sessions); err != nil {
		return 0, 0, errors.New("aggregating goal sessions error: " + err.Error())
	}
	return minutes, sessions, nil
}

func (sr *SessionsRepository) GoalLifetime(ctx context.Context, goalID uuid.UUID) (int, int, *time.Time, error) {
	row := sr.conn.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(duration_minutes), 0), COUNT(*), MIN(started_at) FROM study_sessions WHERE goal_id = $1;`,
		goalID,
	)
	var (
		minutes    int
		sessions   int
		firstStart *time.Time
	)
	if err := row.Scan(&minutes, &sessions, &firstStart); err != nil {
		return 0, 0, nil, errors.New("aggregating goal lifetime error: " + err.Error())
	}
	return minutes, sessions, firstStart, nil
}
