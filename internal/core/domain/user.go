package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrInvalidXPAmount    = errors.New("xp amount cannot be negative")
)

// XPPerLevel is the amount of current XP that advances the user one level.
const XPPerLevel = 100

type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Avatar       string    `json:"avatar,omitempty" db:"avatar"`
	PasswordHash string    `json:"-" db:"password_hash"`
	XP           int       `json:"xp" db:"xp"`
	TotalXP      int       `json:"total_xp" db:"total_xp"`
	Level        int       `json:"level" db:"level"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

func NewUser(id, email, name string) (*User, error) {
	email = strings.TrimSpace(email)

	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	now := time.Now().UTC()
	return &User{
		ID:        id,
		Email:     strings.ToLower(email),
		Name:      strings.TrimSpace(name),
		Level:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (u *User) SetPassword(plainPassword string) error {
	if utf8.RuneCountInString(plainPassword) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), 12)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (u *User) CheckPassword(plainPassword string) error {
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plainPassword)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// AddXP credits completion XP and recalculates the level.
// One level per XPPerLevel points of current XP.
func (u *User) AddXP(amount int) error {
	if amount < 0 {
		return ErrInvalidXPAmount
	}

	u.XP += amount
	u.TotalXP += amount
	u.Level = u.XP/XPPerLevel + 1
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (u *User) UpdateProfile(name, avatar string) {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		u.Name = trimmed
	}
	if avatar != "" {
		u.Avatar = avatar
	}
	u.UpdatedAt = time.Now().UTC()
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
