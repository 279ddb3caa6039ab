package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"atlas/internal/apperr"
	"atlas/internal/database"
	"atlas/internal/model"
	"atlas/internal/store"
)

var (
	hashPassword   = HashPassword
	createUser     = store.CreateUser
	getUserByEmail = store.GetUserByEmail
)

// RegisterUser creates an active user. A taken email is a Conflict that
// answers 400.
func RegisterUser(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("RegisterUser hash: %w", err)
	}
	user, err := createUser(ctx, db, &model.User{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	})
	if errors.Is(err, store.ErrDuplicate) {
		return nil, apperr.Wrap(apperr.Conflict("Email already registered").WithStatus(http.StatusBadRequest), err)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// AuthenticateUser checks email and password. Unknown email, wrong password
// and inactive account fail identically.
func AuthenticateUser(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	invalid := apperr.Unauthorized("Invalid credentials")

	user, err := getUserByEmail(ctx, db, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(password, user.PasswordHash) || !user.IsActive {
		return nil, invalid
	}
	return user, nil
}

// ResolveUser turns a bearer token into the active user it names.
func ResolveUser(ctx context.Context, db database.DB, tm *TokenManager, token string) (*model.User, error) {
	invalid := apperr.Unauthorized("Could not validate credentials")

	email, err := tm.Resolve(token)
	if err != nil {
		return nil, apperr.Wrap(invalid, err)
	}
	user, err := getUserByEmail(ctx, db, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.Unauthorized("Inactive user")
	}
	return user, nil
}
