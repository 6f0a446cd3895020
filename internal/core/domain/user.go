package domain

import (
	"time"

	"github.com/google/uuid"
)

type Language string

const (
	LanguageEN Language = "en"
	LanguagePT Language = "pt"
	LanguageES Language = "es"
	LanguageFR Language = "fr"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageEN, LanguagePT, LanguageES, LanguageFR:
		return true
	}
	return false
}

// LanguageOrFallback returns the stored language, defaulting to English for
// records created before the column existed.
func LanguageOrFallback(l Language) Language {
	if l.Valid() {
		return l
	}
	return LanguageEN
}

type User struct {
	ID                int
	UUID              uuid.UUID
	Email             string `validate:"required,email,max=255"`
	FirstName         string `validate:"max=100"`
	LastName          string `validate:"max=100"`
	Language          Language
	EncryptedPassword string `validate:"required"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
