package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/ryanwiwcharyk/moodlog/internal/model"
	"github.com/ryanwiwcharyk/moodlog/internal/repository"
	"github.com/ryanwiwcharyk/moodlog/pkg/auth"
)

// MoodServiceInterface defines the session and write-path operations the
// handlers call into.
type MoodServiceInterface interface {
	Register(username, email, password, confirmPassword string) (*model.User, error)
	Authenticate(email, password string) (*model.User, string, error)
	UserExistsByEmail(email string) (bool, error)
	GetUserByID(id uint) (*model.User, error)
	LogMood(userID, moodTypeID uint, thoughts string) (*model.UserMood, *model.MoodHistory, error)
	MoodTypes(ctx context.Context) ([]model.MoodType, error)
	MoodStyles() []model.MoodStyle
	History(userID uint) ([]model.MoodHistory, error)
	Calendar(userID uint, year int, month time.Month) ([]model.CalendarEntry, error)
}

// MoodService implements MoodServiceInterface. It owns validation and the
// ordering of storage calls; the repositories stay pure data access.
type MoodService struct {
	users     repository.UserRepositoryInterface
	moodTypes repository.MoodTypeRepositoryInterface
	moods     repository.MoodRepositoryInterface
	tokens    *auth.TokenManager
	cache     *MoodTypeCache
	logger    zerolog.Logger
}

// NewMoodService creates a new MoodService. cache may be nil when no Redis
// is configured; mood types are then read from storage every time.
func NewMoodService(
	users repository.UserRepositoryInterface,
	moodTypes repository.MoodTypeRepositoryInterface,
	moods repository.MoodRepositoryInterface,
	tokens *auth.TokenManager,
	cache *MoodTypeCache,
	logger zerolog.Logger,
) MoodServiceInterface {
	return &MoodService{
		users:     users,
		moodTypes: moodTypes,
		moods:     moods,
		tokens:    tokens,
		cache:     cache,
		logger:    logger,
	}
}

// Register creates a new user. No row is created on any validation failure,
// and a concurrent registration race on the same email is settled by the
// unique index: exactly one attempt wins.
func (s *MoodService) Register(username, email, password, confirmPassword string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if username == "" || email == "" ||
		strings.TrimSpace(password) == "" || strings.TrimSpace(confirmPassword) == "" {
		return nil, ErrValidation
	}
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}

	exists, err := s.users.UserExistsByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return nil, ErrDuplicateUser
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(&model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the check-then-insert race.
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Authenticate verifies credentials and issues a session token.
func (s *MoodService) Authenticate(email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

// UserExistsByEmail is the existence probe used before registration.
func (s *MoodService) UserExistsByEmail(email string) (bool, error) {
	return s.users.UserExistsByEmail(strings.TrimSpace(strings.ToLower(email)))
}

// GetUserByID loads the user behind a session token.
func (s *MoodService) GetUserByID(id uint) (*model.User, error) {
	return s.users.GetUserByID(id)
}

// LogMood records one mood event for the acting user: exactly one UserMood
// row and exactly one MoodHistory row, written in a single transaction with
// DateLogged set to the time of the call.
func (s *MoodService) LogMood(userID, moodTypeID uint, thoughts string) (*model.UserMood, *model.MoodHistory, error) {
	if !model.ValidMoodType(moodTypeID) {
		return nil, nil, ErrUnknownMoodType
	}

	userMood := &model.UserMood{
		UserID:     userID,
		MoodTypeID: moodTypeID,
		Thoughts:   thoughts,
	}
	history, err := s.moods.LogMood(userMood, time.Now().UTC())
	if err != nil {
		return nil, nil, fmt.Errorf("log mood: %w", err)
	}

	s.logger.Debug().
		Uint("user_id", userID).
		Uint("mood_type_id", moodTypeID).
		Msg("mood logged")
	return userMood, history, nil
}

// MoodTypes returns the complete fixed reference set in stable id order,
// through the cache when one is configured.
func (s *MoodService) MoodTypes(ctx context.Context) ([]model.MoodType, error) {
	if types, ok := s.cache.Get(ctx); ok {
		return types, nil
	}

	types, err := s.moodTypes.GetAllMoodTypes()
	if err != nil {
		return nil, fmt.Errorf("load mood types: %w", err)
	}

	s.cache.Set(ctx, types)
	return types, nil
}

// MoodStyles returns the mood-to-style mapping the calendar legend renders.
func (s *MoodService) MoodStyles() []model.MoodStyle {
	return model.MoodCatalog()
}

// History returns the full append-only mood history for one user.
func (s *MoodService) History(userID uint) ([]model.MoodHistory, error) {
	return s.moods.GetHistoryForUser(userID)
}

// Calendar returns one entry per history row whose DateLogged falls in the
// given month, each resolved to the correct mood type id. A user with no
// logged moods gets an empty list.
func (s *MoodService) Calendar(userID uint, year int, month time.Month) ([]model.CalendarEntry, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return s.moods.GetCalendar(userID, start, end)
}
