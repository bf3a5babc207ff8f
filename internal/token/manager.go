package token

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager menerbitkan dan memverifikasi bearer token. Token berbentuk JWT
// HS256 dengan jti acak yang didaftarkan ke Store; verifikasi butuh tanda
// tangan valid DAN jti yang masih terdaftar, sehingga tiap token dapat
// dicabut satu per satu.
type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store
}

func NewManager(secret string, ttl time.Duration, store Store) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
	}
}

func (m *Manager) Issue(ctx context.Context, userID uint) (string, error) {
	jti := uuid.NewString()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"jti": jti,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", err
	}

	if err := m.store.Save(ctx, jti, userID, m.ttl); err != nil {
		return "", err
	}

	return signed, nil
}

// Authenticate mengembalikan user pemilik token beserta jti sesinya.
func (m *Manager) Authenticate(ctx context.Context, tokenString string) (uint, string, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, "", ErrInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalid
	}

	sub, ok1 := claims["sub"].(float64)
	jti, ok2 := claims["jti"].(string)
	if !ok1 || !ok2 || jti == "" {
		return 0, "", ErrInvalid
	}

	userID, err := m.store.Resolve(ctx, jti)
	if err != nil {
		return 0, "", err
	}
	if userID != uint(sub) {
		return 0, "", ErrInvalid
	}

	return userID, jti, nil
}

func (m *Manager) Revoke(ctx context.Context, jti string) error {
	return m.store.Revoke(ctx, jti)
}
