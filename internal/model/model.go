package model

import "time"

// User is the root of ownership for all mood records.
// Passwords are stored only as bcrypt hashes; the raw secret is never
// persisted, logged, or echoed back.
type User struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Username     string    `json:"username" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MoodType is a row of the fixed mood reference table. The table is seeded
// at migration time from the catalog and never mutated afterwards.
type MoodType struct {
	ID    uint   `json:"id" gorm:"primarykey"`
	Label string `json:"label" gorm:"uniqueIndex;not null"`
	Code  int    `json:"code" gorm:"not null"`
}

// UserMood is the body of one logged mood event: which mood, whose, and the
// free-text thoughts that went with it.
type UserMood struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	MoodTypeID uint      `json:"mood_type_id" gorm:"not null"`
	Thoughts   string    `json:"thoughts"`
	CreatedAt  time.Time `json:"created_at"`
}

// MoodHistory is the append-only log of when a UserMood occurred.
// Rows are created at log time and never updated or deleted.
type MoodHistory struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	UserMoodID uint      `json:"user_mood_id" gorm:"not null"`
	DateLogged time.Time `json:"date_logged" gorm:"not null;index"`
}

// CalendarEntry feeds the calendar view: one entry per history row, carrying
// the day it was logged and the mood type it resolved to.
type CalendarEntry struct {
	Date       time.Time `json:"date"`
	MoodTypeID uint      `json:"mood_type_id"`
}
