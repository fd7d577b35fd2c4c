package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/foodkart/foodkart/internal/domain/errors"
	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/domain/repository"
	pkgAuth "github.com/foodkart/foodkart/internal/pkg/auth"
)

const minPasswordLength = 6

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new account and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || !ValidateEmail(email) || len(password) < minPasswordLength {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if role == "" {
		role = model.RoleUser
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// FederatedLogin signs in an account attested by an identity provider. The
// account is keyed by email; a first-time visitor is registered on the spot
// with a throwaway password, so provider accounts can never log in with a
// password they never set.
func (u *AuthUseCase) FederatedLogin(ctx context.Context, name, email, avatar string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !ValidateEmail(email) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if errors.Is(err, domainErrors.ErrNotFound) {
		hash, hashErr := u.hasher.Hash(uuid.NewString())
		if hashErr != nil {
			return nil, "", hashErr
		}
		if name = strings.TrimSpace(name); name == "" {
			name = "Guest"
		}
		usr, err = u.users.Create(ctx, &model.User{
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			Role:         model.RoleUser,
			Avatar:       avatar,
		})
	}
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// ProfileUpdate carries the self-service editable fields.
type ProfileUpdate struct {
	Name    string
	Email   string
	Avatar  string
	Phone   string
	Address string
}

// UpdateDetails updates the caller's own profile.
func (u *AuthUseCase) UpdateDetails(ctx context.Context, userID int64, update ProfileUpdate) (*model.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		usr.Name = strings.TrimSpace(update.Name)
	}
	if update.Email != "" {
		email := strings.ToLower(strings.TrimSpace(update.Email))
		if !ValidateEmail(email) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		usr.Email = email
	}
	if update.Avatar != "" {
		usr.Avatar = update.Avatar
	}
	if update.Phone != "" {
		usr.Phone = update.Phone
	}
	if update.Address != "" {
		usr.Address = update.Address
	}

	return u.users.Update(ctx, usr)
}

// UpdatePassword changes the caller's password after checking the current one.
func (u *AuthUseCase) UpdatePassword(ctx context.Context, userID int64, current, next string) (string, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, current); err != nil {
		return "", domainErrors.ErrInvalidCredentials
	}
	if len(next) < minPasswordLength {
		return "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(next)
	if err != nil {
		return "", err
	}
	usr.PasswordHash = hash
	if _, err := u.users.Update(ctx, usr); err != nil {
		return "", err
	}

	return u.tokens.IssueToken(usr.ID)
}

// Users lists all accounts for the back office.
func (u *AuthUseCase) Users(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// UpdateUser lets an administrator edit any account, including its role.
func (u *AuthUseCase) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	return u.users.Update(ctx, user)
}

// DeleteUser removes an account.
func (u *AuthUseCase) DeleteUser(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}
