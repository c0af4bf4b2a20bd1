package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer mints and verifies the bearer tokens handed out at signup and
// login. The signing secret comes from configuration at process start;
// rotating it invalidates every outstanding token, which is the only
// revocation mechanism this system has (tokens carry no expiry and no
// session state is kept server-side).
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Token creates a signed token bound to the given user ID.
func (i *Issuer) Token(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID, // "sub" (Subject) is the standard claim for User ID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify parses and validates a token string, returning the user ID it
// was minted for.
func (i *Issuer) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but our HMAC scheme.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		return 0, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		// JSON numbers arrive as float64.
		userIDFloat, ok := claims["sub"].(float64)
		if !ok {
			return 0, errors.New("invalid subject claim")
		}
		return int64(userIDFloat), nil
	}

	return 0, errors.New("invalid token")
}
