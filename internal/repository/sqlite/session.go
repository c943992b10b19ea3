package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/auth"
	"portfolio/internal/domain"
)

// sweepExpiredSessions deletes sessions whose expiry has passed. Called
// lazily before login and token resolution rather than on a timer, so
// the table stays bounded without background machinery.
func (r *Repository) sweepExpiredSessions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE expires_at <= ?`, nowISO())
	if err != nil {
		return fmt.Errorf("failed to sweep expired sessions: %w", err)
	}
	return nil
}

// VerifyAdminPassword reports whether password matches any stored admin
// credential. Used by the staging gate, which has a shared password but
// no identity.
func (r *Repository) VerifyAdminPassword(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, nil
	}

	rows, err := r.db.QueryContext(ctx, `SELECT password_hash FROM admins`)
	if err != nil {
		return false, fmt.Errorf("failed to query admin credentials: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return false, fmt.Errorf("failed to scan admin credential: %w", err)
		}
		if auth.VerifyPassword(password, hash) {
			return true, nil
		}
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("error iterating admin credentials: %w", err)
	}

	return false, nil
}

// LoginAdmin verifies credentials and issues a session. Returns nil for
// any credential failure; an unknown email and a wrong password are
// indistinguishable to the caller.
func (r *Repository) LoginAdmin(ctx context.Context, email, password string) (*domain.AdminSession, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, nil
	}

	if err := r.sweepExpiredSessions(ctx); err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash FROM admins WHERE email = ?
	`, email)

	var (
		admin domain.AdminUser
		hash  string
	)
	err := row.Scan(&admin.ID, &admin.Email, &hash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	if !auth.VerifyPassword(password, hash) {
		return nil, nil
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now().UTC()
	expiresAt := now.AddDate(0, 0, r.sessionTTLDays).Format(time.RFC3339)

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO admin_sessions (admin_id, token, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, admin.ID, token, now.Format(time.RFC3339), expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &domain.AdminSession{Token: token, User: admin, ExpiresAt: expiresAt}, nil
}

// AdminBySessionToken resolves a session token to its admin. Returns nil
// for unknown, revoked, or expired tokens.
func (r *Repository) AdminBySessionToken(ctx context.Context, token string) (*domain.AdminUser, error) {
	if token == "" {
		return nil, nil
	}

	if err := r.sweepExpiredSessions(ctx); err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT a.id, a.email
		FROM admin_sessions s
		JOIN admins a ON a.id = s.admin_id
		WHERE s.token = ? AND s.expires_at > ?
	`, token, nowISO())

	var admin domain.AdminUser
	err := row.Scan(&admin.ID, &admin.Email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session token: %w", err)
	}

	return &admin, nil
}

// RevokeAdminSession deletes a session. Revoking an unknown token is not
// an error.
func (r *Repository) RevokeAdminSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
