package usecase

import (
	"errors"

	"codetutor-backend/internal/apperror"
	"codetutor-backend/internal/auth/domain"
	"codetutor-backend/internal/auth/repository"

	"gorm.io/gorm"
)

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo       repository.UserRepository
	projectCounter ProjectCounter
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository, projectCounter ProjectCounter) UserUsecase {
	return &userUsecase{
		userRepo:       userRepo,
		projectCounter: projectCounter,
	}
}

func (u *userUsecase) GetOrCreateUser(clerkUserID, email, username string) (*domain.User, error) {
	user, err := u.userRepo.FindByClerkID(clerkUserID)
	if err != nil {
		return nil, err
	}

	if user != nil {
		changed := false
		if email != "" && user.Email != email {
			user.Email = email
			changed = true
		}
		if username != "" && user.Username != username {
			user.Username = username
			changed = true
		}
		if changed {
			if err := u.userRepo.Update(user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}

	if email == "" {
		return nil, apperror.InvalidArgument("email is required to create a user")
	}

	user = &domain.User{
		ClerkUserID: clerkUserID,
		Email:       email,
		Username:    username,
	}
	if err := u.userRepo.Create(user); err != nil {
		// Two first-time requests can race on the unique subject-id index.
		// The loser re-fetches the row the winner inserted.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, findErr := u.userRepo.FindByClerkID(clerkUserID)
			if findErr != nil {
				return nil, findErr
			}
			if existing != nil {
				return existing, nil
			}
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) GetMe(user *domain.User) (*domain.User, error) {
	count, err := u.projectCounter.CountByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	user.ProjectCount = int(count)
	return user, nil
}
