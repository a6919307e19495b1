package repository

import (
	"errors"
	"time"

	"github.com/ryanwiwcharyk/moodlog/internal/model"
	"gorm.io/gorm"
)

// MoodTypeRepositoryInterface defines read access to the fixed mood
// reference table.
type MoodTypeRepositoryInterface interface {
	GetAllMoodTypes() ([]model.MoodType, error)
	GetMoodTypeByID(id uint) (*model.MoodType, error)
}

// MoodRepositoryInterface defines the write path for logged moods and the
// queries that feed the history and calendar views.
type MoodRepositoryInterface interface {
	LogMood(userMood *model.UserMood, at time.Time) (*model.MoodHistory, error)
	GetHistoryForUser(userID uint) ([]model.MoodHistory, error)
	GetCalendar(userID uint, start, end time.Time) ([]model.CalendarEntry, error)
}

// MoodTypeRepository implements MoodTypeRepositoryInterface over GORM.
type MoodTypeRepository struct {
	DB *gorm.DB
}

// NewMoodTypeRepository creates a new MoodTypeRepository.
func NewMoodTypeRepository(db *gorm.DB) MoodTypeRepositoryInterface {
	return &MoodTypeRepository{DB: db}
}

// GetAllMoodTypes returns the complete reference set in id order. The order
// is part of the contract: clients render the selection list from it as-is.
func (r *MoodTypeRepository) GetAllMoodTypes() ([]model.MoodType, error) {
	var types []model.MoodType
	if err := r.DB.Order("id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetMoodTypeByID retrieves one mood type.
func (r *MoodTypeRepository) GetMoodTypeByID(id uint) (*model.MoodType, error) {
	var moodType model.MoodType
	if err := r.DB.First(&moodType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &moodType, nil
}

// MoodRepository implements MoodRepositoryInterface over GORM.
type MoodRepository struct {
	DB *gorm.DB
}

// NewMoodRepository creates a new MoodRepository.
func NewMoodRepository(db *gorm.DB) MoodRepositoryInterface {
	return &MoodRepository{DB: db}
}

// LogMood inserts the UserMood body and its MoodHistory entry in a single
// transaction. Either both rows land or neither does; a crash mid-write can
// no longer leave an orphaned UserMood with no history entry.
func (r *MoodRepository) LogMood(userMood *model.UserMood, at time.Time) (*model.MoodHistory, error) {
	var history model.MoodHistory
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userMood).Error; err != nil {
			return err
		}
		history = model.MoodHistory{
			UserID:     userMood.UserID,
			UserMoodID: userMood.ID,
			DateLogged: at,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}
	return &history, nil
}

// GetHistoryForUser returns the full append-only history for one user,
// oldest first.
func (r *MoodRepository) GetHistoryForUser(userID uint) ([]model.MoodHistory, error) {
	var history []model.MoodHistory
	err := r.DB.Where("user_id = ?", userID).Order("date_logged ASC").Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

// GetCalendar returns one entry per history row in [start, end), resolved to
// the mood type id through the UserMood body rather than the history row id.
func (r *MoodRepository) GetCalendar(userID uint, start, end time.Time) ([]model.CalendarEntry, error) {
	entries := []model.CalendarEntry{}
	err := r.DB.Model(&model.MoodHistory{}).
		Select("mood_histories.date_logged AS date, user_moods.mood_type_id AS mood_type_id").
		Joins("JOIN user_moods ON user_moods.id = mood_histories.user_mood_id").
		Where("mood_histories.user_id = ? AND mood_histories.date_logged >= ? AND mood_histories.date_logged < ?",
			userID, start, end).
		Order("mood_histories.date_logged ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
