package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrGoalNotFound = errors.New("goal doesn't exists")
	ErrWrongOwner   = errors.New("resource has different owner")

	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidWeekRange = errors.New("week start and week end must be provided together")

	ErrOutcomeExists  = errors.New("outcome for this goal and week already exists")
	ErrAlreadyAwarded = errors.New("achievement already awarded to user")

	ErrSessionDateNotAllowed = errors.New("session start date in future is not allowed")
)
