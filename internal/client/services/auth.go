// Package services contains application services for the marine field client:
// authentication and session restore, boat list fetching and filtering, and
// contract resolution.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MustafaTekin48/marine-field-app/internal/client/api"
	"github.com/MustafaTekin48/marine-field-app/internal/client/models"
	"github.com/MustafaTekin48/marine-field-app/internal/client/repositories/credentials"
	"github.com/MustafaTekin48/marine-field-app/internal/dbx"
)

// AuthService defines authentication operations for the client.
//
// Contract:
//   - Login: authenticate against the ERP and persist the token locally.
//   - Restore: rebuild a session from the locally stored token.
//   - Logout: erase locally stored credentials.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.Session, error)
	Restore(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote API client
// and a local SQL database for the stored token.
type authService struct {
	client api.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client api.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getCredentialsRepo() credentials.Repository {
	return credentials.NewSQLiteRepository(a.db)
}

// Login authenticates against the ERP, extracts the role set from the access
// token, and persists token and username for the next start. The returned
// session is read-only for its whole lifetime.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.Session, error) {
	token, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.saveCredentials(ctx, username, token); err != nil {
		return nil, fmt.Errorf("credential saving error: %w", err)
	}

	return &models.Session{
		Username: username,
		Token:    token,
		Roles:    RolesFromToken(token),
	}, nil
}

// saveCredentials persists username and token in a single transaction.
func (a *authService) saveCredentials(ctx context.Context, username, token string) error {
	repo := a.getCredentialsRepo()

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := repo.Set(ctx, "username", []byte(username)); err != nil {
			return err
		}
		return repo.Set(ctx, "token", []byte(token))
	})
}

// Restore rebuilds a session from the stored token, if any. Roles are
// re-derived from the token claims. Returns ErrNoSavedSession when the
// store is empty.
func (a *authService) Restore(ctx context.Context) (*models.Session, error) {
	repo := a.getCredentialsRepo()

	token, err := repo.Get(ctx, "token")
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, ErrNoSavedSession
	}
	username, err := repo.Get(ctx, "username")
	if err != nil {
		return nil, err
	}

	a.client.SetToken(string(token))

	return &models.Session{
		Username: string(username),
		Token:    string(token),
		Roles:    RolesFromToken(string(token)),
	}, nil
}

// Logout wipes locally stored credentials.
func (a *authService) Logout(ctx context.Context) error {
	return a.getCredentialsRepo().Clear(ctx)
}

// RolesFromToken extracts the role claim from the access token without
// signature verification; the client holds no signing key and only needs
// the claims for menu gating, never for authorization decisions. A single
// string claim becomes a one-element set; a missing or unreadable claim
// becomes an empty set. Roles are lower-cased.
func RolesFromToken(token string) []string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	switch v := claims["role"].(type) {
	case string:
		return []string{strings.ToLower(v)}
	case []any:
		roles := make([]string, 0, len(v))
		for _, r := range v {
			if s, ok := r.(string); ok {
				roles = append(roles, strings.ToLower(s))
			}
		}
		return roles
	default:
		return nil
	}
}
