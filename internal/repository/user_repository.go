package repository

import (
	"errors"

	"github.com/ryanwiwcharyk/moodlog/internal/model"
	"gorm.io/gorm"
)

// UserRepositoryInterface defines the interface for user repository operations.
// Any backing store implementing this set is swappable without service changes;
// tests use an in-memory fake.
type UserRepositoryInterface interface {
	CreateUser(user *model.User) (*model.User, error)
	UpdateUser(user *model.User) error
	DeleteUser(id uint) error
	GetAllUsers() ([]model.User, error)
	GetUserByID(id uint) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	UserExistsByEmail(email string) (bool, error)
}

// UserRepository implements UserRepositoryInterface over GORM.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{DB: db}
}

// CreateUser adds a new user to the database. A unique-index violation on
// email is reported as ErrDuplicate.
func (r *UserRepository) CreateUser(user *model.User) (*model.User, error) {
	result := r.DB.Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, result.Error
	}
	return user, nil
}

// UpdateUser saves changes to an existing user.
func (r *UserRepository) UpdateUser(user *model.User) error {
	return r.DB.Save(user).Error
}

// DeleteUser removes a user by id.
func (r *UserRepository) DeleteUser(id uint) error {
	result := r.DB.Delete(&model.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAllUsers retrieves every registered user.
func (r *UserRepository) GetAllUsers() ([]model.User, error) {
	var users []model.User
	if err := r.DB.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserByID retrieves a single user by id.
func (r *UserRepository) GetUserByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a single user by email.
func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UserExistsByEmail is the existence probe used before registration inserts.
// The unique index still backs it up under concurrent registrations.
func (r *UserRepository) UserExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.DB.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
