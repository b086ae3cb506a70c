package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// AdminClaims carries the admin flag and nothing else. The token is
// transport for the login gate's state across stateless requests, not an
// identity: there are no users in this system.
type AdminClaims struct {
	Admin bool `json:"admin"`
	jwt.StandardClaims
}

func jwtKey() []byte {
	return []byte(os.Getenv("JWT_KEY"))
}

// GenerateAdminJWT mints a short-lived admin token. The short expiry stands
// in for the original site's logged-out-on-reload behavior; there is no
// refresh flow.
func GenerateAdminJWT() (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	claims := &AdminClaims{
		Admin: true,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "cedar_lux_site",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtKey())
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ValidateAdminJWT(tokenStr string) (*AdminClaims, error) {
	claims := &AdminClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})

	if err != nil {
		if err == jwt.ErrSignatureInvalid {
			return nil, errors.New("invalid token signature")
		}
		if err.Error() == "Token is expired" {
			return nil, errors.New("token has expired")
		}
		return nil, err
	}

	if !token.Valid || !claims.Admin {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
