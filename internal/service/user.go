package service

import (
	"context"
	"errors"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/repository"
)

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) RegisterContact(ctx context.Context, user *domain.User) error {
	if user.Language == "" {
		user.Language = domain.LanguageEnglish
	}
	return s.users.Upsert(ctx, user)
}

func (s *userService) SetLanguage(ctx context.Context, requesterID int64, lang domain.Language) error {
	return s.users.SetLanguage(ctx, requesterID, lang)
}

// Language returns the requester's stored preference, falling back to English
// for unknown requesters so rendering never blocks on the database.
func (s *userService) Language(ctx context.Context, requesterID int64) domain.Language {
	user, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("failed to load user language", "requester_id", requesterID, "error", err)
		}
		return domain.LanguageEnglish
	}
	return user.Language
}
