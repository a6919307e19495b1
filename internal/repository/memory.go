package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/ryanwiwcharyk/moodlog/internal/model"
)

// In-memory implementations of the repository interfaces. They back the
// service tests and any environment without a database, and they mimic the
// SQL store's semantics: unique email, id assignment, NotFound mapping.

// MemoryUserRepository implements UserRepositoryInterface in memory.
type MemoryUserRepository struct {
	mu     sync.Mutex
	users  map[uint]model.User
	nextID uint
}

// NewMemoryUserRepository creates an empty in-memory user store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uint]model.User)}
}

func (r *MemoryUserRepository) CreateUser(user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// The unique index on email is part of the contract.
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, ErrDuplicate
		}
	}

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return user, nil
}

func (r *MemoryUserRepository) UpdateUser(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return ErrNotFound
	}
	user.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) DeleteUser(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *MemoryUserRepository) GetAllUsers() ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *MemoryUserRepository) GetUserByID(id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) GetUserByEmail(email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) UserExistsByEmail(email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// MemoryMoodTypeRepository implements MoodTypeRepositoryInterface over the
// seeded catalog.
type MemoryMoodTypeRepository struct {
	types []model.MoodType
}

// NewMemoryMoodTypeRepository creates a reference store pre-seeded with the
// fixed mood catalog.
func NewMemoryMoodTypeRepository() *MemoryMoodTypeRepository {
	return &MemoryMoodTypeRepository{types: model.SeedMoodTypes()}
}

func (r *MemoryMoodTypeRepository) GetAllMoodTypes() ([]model.MoodType, error) {
	types := make([]model.MoodType, len(r.types))
	copy(types, r.types)
	return types, nil
}

func (r *MemoryMoodTypeRepository) GetMoodTypeByID(id uint) (*model.MoodType, error) {
	for _, moodType := range r.types {
		if moodType.ID == id {
			mt := moodType
			return &mt, nil
		}
	}
	return nil, ErrNotFound
}

// MemoryMoodRepository implements MoodRepositoryInterface in memory.
type MemoryMoodRepository struct {
	mu        sync.Mutex
	userMoods []model.UserMood
	histories []model.MoodHistory
	nextID    uint
}

// NewMemoryMoodRepository creates an empty in-memory mood store.
func NewMemoryMoodRepository() *MemoryMoodRepository {
	return &MemoryMoodRepository{}
}

func (r *MemoryMoodRepository) LogMood(userMood *model.UserMood, at time.Time) (*model.MoodHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	userMood.ID = r.nextID
	userMood.CreatedAt = at
	r.userMoods = append(r.userMoods, *userMood)

	r.nextID++
	history := model.MoodHistory{
		ID:         r.nextID,
		UserID:     userMood.UserID,
		UserMoodID: userMood.ID,
		DateLogged: at,
	}
	r.histories = append(r.histories, history)
	return &history, nil
}

func (r *MemoryMoodRepository) GetHistoryForUser(userID uint) ([]model.MoodHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := []model.MoodHistory{}
	for _, h := range r.histories {
		if h.UserID == userID {
			history = append(history, h)
		}
	}
	return history, nil
}

func (r *MemoryMoodRepository) GetCalendar(userID uint, start, end time.Time) ([]model.CalendarEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	moodTypeByUserMood := make(map[uint]uint, len(r.userMoods))
	for _, um := range r.userMoods {
		moodTypeByUserMood[um.ID] = um.MoodTypeID
	}

	entries := []model.CalendarEntry{}
	for _, h := range r.histories {
		if h.UserID != userID {
			continue
		}
		if h.DateLogged.Before(start) || !h.DateLogged.Before(end) {
			continue
		}
		entries = append(entries, model.CalendarEntry{
			Date:       h.DateLogged,
			MoodTypeID: moodTypeByUserMood[h.UserMoodID],
		})
	}
	return entries, nil
}
