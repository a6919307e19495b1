package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ryanwiwcharyk/moodlog/internal/model"
	"github.com/ryanwiwcharyk/moodlog/internal/repository"
	"github.com/ryanwiwcharyk/moodlog/pkg/auth"
)

func newTestService() (MoodServiceInterface, *repository.MemoryUserRepository, *repository.MemoryMoodRepository, *auth.TokenManager) {
	users := repository.NewMemoryUserRepository()
	moodTypes := repository.NewMemoryMoodTypeRepository()
	moods := repository.NewMemoryMoodRepository()
	tokens := auth.NewTokenManager("test-secret", "moodlog-test", time.Hour)
	svc := NewMoodService(users, moodTypes, moods, tokens, nil, zerolog.Nop())
	return svc, users, moods, tokens
}

func TestRegisterBlankFieldsCreateNoUser(t *testing.T) {
	tests := []struct {
		name                                       string
		username, email, password, confirmPassword string
	}{
		{"blank username", "", "ann@x.com", "pw123", "pw123"},
		{"blank email", "ann", "", "pw123", "pw123"},
		{"blank password", "ann", "ann@x.com", "", "pw123"},
		{"blank confirm", "ann", "ann@x.com", "pw123", ""},
		{"whitespace password", "ann", "ann@x.com", "   ", "   "},
		{"whitespace confirm", "ann", "ann@x.com", "pw123", "   "},
		{"all blank", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _, _ := newTestService()
			_, err := svc.Register(tt.username, tt.email, tt.password, tt.confirmPassword)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			all, _ := users.GetAllUsers()
			if len(all) != 0 {
				t.Fatalf("expected no user rows, got %d", len(all))
			}
		})
	}
}

func TestRegisterPasswordMismatchCreatesNoUser(t *testing.T) {
	svc, users, _, _ := newTestService()
	_, err := svc.Register("ann", "ann@x.com", "pw123", "pw456")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	all, _ := users.GetAllUsers()
	if len(all) != 0 {
		t.Fatalf("expected no user rows, got %d", len(all))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users, _, _ := newTestService()

	if _, err := svc.Register("ann", "ann@x.com", "pw123", "pw123"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	_, err := svc.Register("bob", "ann@x.com", "pw456", "pw456")
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}

	all, _ := users.GetAllUsers()
	if len(all) != 1 {
		t.Fatalf("expected exactly one user row, got %d", len(all))
	}
	if all[0].Username != "ann" {
		t.Fatalf("expected the first registration to win, got %q", all[0].Username)
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	if _, err := svc.Register("ann", "Ann@X.com", "pw123", "pw123"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register("bob", "ann@x.com", "pw456", "pw456"); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser for differently-cased email, got %v", err)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, users, _, _ := newTestService()

	user, err := svc.Register("ann", "ann@x.com", "pw123", "pw123")
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	stored, err := users.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.PasswordHash == "pw123" || stored.PasswordHash == "" {
		t.Fatal("password must not be stored in plaintext")
	}
	if !auth.CheckPassword("pw123", stored.PasswordHash) {
		t.Fatal("stored hash does not verify against the original password")
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _, _, tokens := newTestService()

	user, err := svc.Register("ann", "ann@x.com", "pw123", "pw123")
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	got, token, err := svc.Authenticate("ann@x.com", "pw123")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, got.ID)
	}
	userID, err := tokens.Verify(token)
	if err != nil || userID != user.ID {
		t.Fatalf("token does not verify to the user: id=%d err=%v", userID, err)
	}

	if _, _, err := svc.Authenticate("ann@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := svc.Authenticate("nobody@x.com", "pw123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLogMoodWritesBothRows(t *testing.T) {
	svc, _, _, _ := newTestService()
	user, _ := svc.Register("ann", "ann@x.com", "pw123", "pw123")

	before := time.Now().UTC()
	userMood, history, err := svc.LogMood(user.ID, model.MoodHappy, "good day")
	if err != nil {
		t.Fatalf("log mood failed: %v", err)
	}

	if userMood.UserID != user.ID || history.UserID != user.ID {
		t.Fatal("both rows must be attributed to the acting user")
	}
	if history.UserMoodID != userMood.ID {
		t.Fatalf("history must reference the mood body: got %d, want %d", history.UserMoodID, userMood.ID)
	}
	if userMood.MoodTypeID != model.MoodHappy {
		t.Fatalf("expected mood type %d, got %d", model.MoodHappy, userMood.MoodTypeID)
	}
	if history.DateLogged.Before(before) {
		t.Fatalf("dateLogged %v precedes call time %v", history.DateLogged, before)
	}
}

func TestLogMoodTwiceCreatesDistinctRows(t *testing.T) {
	svc, _, moods, _ := newTestService()
	user, _ := svc.Register("ann", "ann@x.com", "pw123", "pw123")

	firstMood, firstHistory, err := svc.LogMood(user.ID, model.MoodHappy, "good day")
	if err != nil {
		t.Fatalf("first log failed: %v", err)
	}
	secondMood, secondHistory, err := svc.LogMood(user.ID, model.MoodHappy, "good day")
	if err != nil {
		t.Fatalf("second log failed: %v", err)
	}

	if firstMood.ID == secondMood.ID || firstHistory.ID == secondHistory.ID {
		t.Fatal("each log must create distinct rows")
	}
	history, _ := moods.GetHistoryForUser(user.ID)
	if len(history) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(history))
	}
}

func TestLogMoodUnknownType(t *testing.T) {
	svc, _, moods, _ := newTestService()
	user, _ := svc.Register("ann", "ann@x.com", "pw123", "pw123")

	for _, id := range []uint{0, 9, 100} {
		if _, _, err := svc.LogMood(user.ID, id, "hm"); !errors.Is(err, ErrUnknownMoodType) {
			t.Fatalf("expected ErrUnknownMoodType for id %d, got %v", id, err)
		}
	}
	history, _ := moods.GetHistoryForUser(user.ID)
	if len(history) != 0 {
		t.Fatalf("expected no history rows, got %d", len(history))
	}
}

func TestMoodTypesReturnsFixedSetInOrder(t *testing.T) {
	svc, _, _, _ := newTestService()

	types, err := svc.MoodTypes(context.Background())
	if err != nil {
		t.Fatalf("mood types failed: %v", err)
	}
	if len(types) != 8 {
		t.Fatalf("expected the complete 8-entry reference set, got %d", len(types))
	}
	for i, moodType := range types {
		if moodType.ID != uint(i+1) {
			t.Fatalf("expected stable id order, got id %d at position %d", moodType.ID, i)
		}
	}
}

func TestCalendarEmptyForNewUser(t *testing.T) {
	svc, _, _, _ := newTestService()
	user, _ := svc.Register("ann", "ann@x.com", "pw123", "pw123")

	now := time.Now().UTC()
	entries, err := svc.Calendar(user.ID, now.Year(), now.Month())
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty calendar, got %d entries", len(entries))
	}
}

func TestCalendarFiltersByMonthAndResolvesMoodType(t *testing.T) {
	svc, _, moods, _ := newTestService()
	user, _ := svc.Register("ann", "ann@x.com", "pw123", "pw123")

	inMonth := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	alsoInMonth := time.Date(2026, time.March, 31, 23, 0, 0, 0, time.UTC)
	outOfMonth := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	if _, err := moods.LogMood(&model.UserMood{UserID: user.ID, MoodTypeID: model.MoodHappy}, inMonth); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := moods.LogMood(&model.UserMood{UserID: user.ID, MoodTypeID: model.MoodCalm}, alsoInMonth); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := moods.LogMood(&model.UserMood{UserID: user.ID, MoodTypeID: model.MoodSad}, outOfMonth); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	entries, err := svc.Calendar(user.ID, 2026, time.March)
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries in March, got %d", len(entries))
	}
	if entries[0].MoodTypeID != model.MoodHappy || entries[1].MoodTypeID != model.MoodCalm {
		t.Fatalf("entries must resolve to the mood type id: got %d, %d", entries[0].MoodTypeID, entries[1].MoodTypeID)
	}
}

func TestCalendarScopedToUser(t *testing.T) {
	svc, _, _, _ := newTestService()
	ann, _ := svc.Register("ann", "ann@x.com", "pw123", "pw123")
	bob, _ := svc.Register("bob", "bob@x.com", "pw456", "pw456")

	if _, _, err := svc.LogMood(ann.ID, model.MoodExcited, ""); err != nil {
		t.Fatalf("log mood failed: %v", err)
	}

	now := time.Now().UTC()
	entries, err := svc.Calendar(bob.ID, now.Year(), now.Month())
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("bob must not see ann's moods, got %d entries", len(entries))
	}
}
