package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenPayload is what callers provide when minting a token.
type AccessTokenPayload struct {
	UserID   uint
	Email    string
	Username string
	JTI      string
}

// AccessTokenClaims is the JWT claim set carried by access tokens.
type AccessTokenClaims struct {
	UserID   uint   `json:"uid"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
