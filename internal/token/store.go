package token

import (
	"context"
	"errors"
	"time"
)

// ErrInvalid menandakan token tidak dikenal, kedaluwarsa, atau sudah dicabut.
var ErrInvalid = errors.New("invalid token")

// Store menyimpan sesi aktif per-token. Logout mencabut satu jti saja,
// sesi lain milik user yang sama tetap berlaku.
type Store interface {
	Save(ctx context.Context, jti string, userID uint, ttl time.Duration) error
	Resolve(ctx context.Context, jti string) (uint, error)
	Revoke(ctx context.Context, jti string) error
}
