package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by a session token. The subject is the account ID.
type Claims struct {
	jwt.RegisteredClaims
}

// MintToken creates a signed session token for the given account, issued at
// now and valid for the given window.
func MintToken(accountID uint, key []byte, validity time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(accountID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	})

	return token.SignedString(key)
}

// VerifyToken checks a token's signature and expiry against the given time
// and returns the subject account ID. It is a pure function of
// (token, now, key): absent or tampered tokens fail with ErrUnauthenticated,
// well-signed but stale tokens with ErrTokenExpired.
func VerifyToken(tokenString string, key []byte, now time.Time) (uint, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrUnauthenticated
	}
	if !token.Valid {
		return 0, ErrUnauthenticated
	}

	accountID, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, ErrUnauthenticated
	}

	return uint(accountID), nil
}
