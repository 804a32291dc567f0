package jwtmw

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the iss claim of every access token this service signs.
const Issuer = "rivalradar"

// AccessClaims is the payload of an access token.
// Subject carries the user ID in decimal.
type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the subject as a user ID. Zero and non-numeric subjects are rejected.
func (c *AccessClaims) UserID() (uint, bool) {
	id, err := strconv.ParseUint(c.Subject, 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parserOptions() []jwt.ParserOption {
	return []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	}
}
