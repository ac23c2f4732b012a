package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jannofresh/jannofresh-api/internal/domain/apperr"
)

// JWTManager issues and verifies the stateless bearer tokens used for
// authentication. There is no server-side session or revocation list; expiry
// is the only lifecycle bound, and logout is a client-side token discard.
type JWTManager struct {
	Secret  []byte
	Expires time.Duration
}

func NewJWTManager(secret string, expires time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), Expires: expires}
}

// Claims carries the user identifier in the "id" claim.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given user id with the configured expiry.
func (m *JWTManager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.Expires)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

// Verify validates signature and expiry and returns the user id. Any failure
// is reported as apperr.ErrInvalidToken; the underlying cause is wrapped for
// logging but never shown to clients.
func (m *JWTManager) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return "", errors.Join(apperr.ErrInvalidToken, err)
	}
	if !tkn.Valid || claims.UserID == "" {
		return "", apperr.ErrInvalidToken
	}
	return claims.UserID, nil
}
