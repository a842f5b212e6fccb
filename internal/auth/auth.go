package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of account roles. Anything else is rejected at
// validation time so free-text roles never reach the store.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Session identifies a logged-in browser: the user it belongs to and the
// role captured at login time.
type Session struct {
	UserID int64
	Role   Role
}

// SessionCodec turns a Session into the signed cookie value and back.
type SessionCodec interface {
	Encode(session Session) (string, error)
	Decode(token string) (Session, error)
}

// AuthService performs authentication-related business logic.
type AuthService interface {
	Authenticate(dto LoginDTO) (Session, error)
	EncodeSession(session Session) (string, error)
	DecodeSession(token string) (Session, error)
}

// SessionClaims are the JWT claims carried in the session cookie.
type SessionClaims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTSessionCodec signs session cookies with HS256.
type JWTSessionCodec struct {
	Secret []byte
	TTL    time.Duration
}
