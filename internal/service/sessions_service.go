package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/internal/repository"
	"github.com/TereBts/studystar/pkg/entity"
)

type SessionsService struct {
	sessions repository.SessionsRepositoryI
	goals    repository.GoalsRepositoryI
}

func NewSessionsService(sessionsRepo repository.SessionsRepositoryI, goalsRepo repository.GoalsRepositoryI) *SessionsService {
	if sessionsRepo == nil || goalsRepo == nil {
		log.Fatal("on sessions service provided nil repos")
	}
	return &SessionsService{
		sessions: sessionsRepo,
		goals:    goalsRepo,
	}
}

func (ss *SessionsService) LogSession(ctx context.Context, uid uuid.UUID, req *LogSessionRequest) (*entity.StudySession, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	if req.StartedAt.After(time.Now()) {
		return nil, errorvalues.ErrSessionDateNotAllowed
	}
	if req.GoalID != nil {
		goal, err := ss.goals.GetByID(ctx, *req.GoalID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrGoalNotFound) {
				return nil, err
			}
			return nil, errors.New("goals repository error: " + err.Error())
		}
		if goal.UserID != uid {
			return nil, errorvalues.ErrWrongOwner
		}
	}
	session := entity.StudySession{
		UserID:          uid,
		GoalID:          req.GoalID,
		StartedAt:       req.StartedAt,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	id, err := ss.sessions.Create(ctx, &session)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	session.ID = id
	return &session, nil
}
