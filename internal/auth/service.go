package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/frahmantamala/inventory-tracker/internal"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type CredentialRepository interface {
	GetCredentialsForUsername(username string) (passwordHash string, userID int64, role string, err error)
}

// Service is the main auth service with dependencies
type Service struct {
	credentialRepo CredentialRepository
	codec          SessionCodec
}

// NewService creates a new auth service
func NewService(credentialRepo CredentialRepository, codec SessionCodec) *Service {
	return &Service{
		credentialRepo: credentialRepo,
		codec:          codec,
	}
}

// NewJWTSessionCodec creates a session codec signing with the given secret.
func NewJWTSessionCodec(secret string, ttl time.Duration) *JWTSessionCodec {
	return &JWTSessionCodec{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

// Authenticate validates credentials and returns the session to establish.
// Unknown username and wrong password collapse into the same error so login
// failures never reveal which usernames exist.
func (s *Service) Authenticate(dto LoginDTO) (Session, error) {
	if err := dto.Validate(); err != nil {
		return Session{}, err
	}

	storedHash, userID, role, err := s.credentialRepo.GetCredentialsForUsername(dto.Username)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return Session{}, internal.ErrInvalidCredentials
		}
		return Session{}, internal.NewInternalError("credential lookup failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(dto.Password)); err != nil {
		return Session{}, internal.ErrInvalidCredentials
	}

	return Session{
		UserID: userID,
		Role:   Role(role),
	}, nil
}

// EncodeSession turns a session into its signed cookie value.
func (s *Service) EncodeSession(session Session) (string, error) {
	return s.codec.Encode(session)
}

// DecodeSession verifies a cookie value and returns the session it carries.
func (s *Service) DecodeSession(token string) (Session, error) {
	return s.codec.Decode(token)
}

// Encode signs the session claims with HS256.
func (c *JWTSessionCodec) Encode(session Session) (string, error) {
	now := time.Now()

	claims := &SessionClaims{
		UserID: session.UserID,
		Role:   string(session.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(session.UserID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.Secret)
}

// Decode validates the signed cookie value and returns the session.
func (c *JWTSessionCodec) Decode(tokenString string) (Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, internal.ErrSessionRequired
		}
		return Session{}, internal.ErrSessionRequired.WithCause(err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return Session{}, internal.ErrSessionRequired
	}

	session := Session{
		UserID: claims.UserID,
		Role:   Role(claims.Role),
	}
	if !session.Role.Valid() {
		return Session{}, internal.ErrSessionRequired
	}

	return session, nil
}

// HashPassword creates a bcrypt hash of the password
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
