package commands

import (
	"context"

	"campusbook/internal/domain/user"
	"campusbook/internal/infra"
	"campusbook/internal/pkg/errs"
	"campusbook/internal/pkg/jwt"
	"campusbook/internal/pkg/password"
	"campusbook/internal/usecase/queries"
	"campusbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, p RegisterParams) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, p RegisterParams) (*AuthResult, error) {
	email, err := user.NewEmail(p.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := user.ValidatePlainPassword(p.Password); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	role := user.RoleStudent
	if p.Role != "" {
		role, err = user.NewRole(p.Role)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	hash, err := password.HashPassword(p.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity, err := user.NewUser(p.Name, email, hash, role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if txErr := tx.Users().Create(ctx, entity); txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(txErr, ErrStorageUnavailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.issueToken(entity.ID(), entity.Role())
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	account, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	if err := password.ComparePassword(account.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	return a.issueToken(account.ID, role)
}

func (a *authCommandsImpl) issueToken(userID uuid.UUID, role user.Role) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		UserID:      userID,
		Role:        role,
		AccessToken: token,
	}, nil
}

// TokenValidator is what the auth middleware depends on, keeping the HTTP
// layer off the jwt package directly.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
