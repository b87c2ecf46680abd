package domain

import "time"

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
	LanguageRussian Language = "ru"
)

// ParseLanguage falls back to English for anything outside the supported set.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LanguageSpanish:
		return LanguageSpanish
	case LanguageRussian:
		return LanguageRussian
	}
	return LanguageEnglish
}

// User is a chat requester. Identity is the anonymous chat id; there is no
// signup or authentication surface.
type User struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Language  Language `json:"language"`
	CreatedOn time.Time `json:"created_on"`
}
