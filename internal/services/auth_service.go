package services

import (
	"time"

	"transfer-backend/internal/domain"
	"transfer-backend/internal/domain/models"
	"transfer-backend/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo  repositories.UserRepository
	JWTSecret []byte
	TokenTTL  time.Duration
}

func (s AuthService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

// Login verifies credentials and issues an HS256 token. Unknown email and bad
// password are indistinguishable to the caller.
func (s AuthService) Login(email, password string) (models.User, string, error) {
	user, hash, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, "", domain.UnauthorizedError{Msg: "invalid email or password"}
		}
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return models.User{}, "", domain.UnauthorizedError{Msg: "invalid email or password"}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL()).Unix(),
	})
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return models.User{}, "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}

	return user, signed, nil
}

// Register creates an admin account. Back-office only; there is no public
// self-registration.
func (s AuthService) Register(email, password, name string) (models.User, error) {
	exists, err := s.UserRepo.EmailExists(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	if name == "" {
		name = "Admin"
	}
	id, err := s.UserRepo.Create(email, string(hash), name, "admin")
	if err != nil {
		return models.User{}, err
	}

	return models.User{ID: id, Email: email, Name: name, Role: "admin"}, nil
}

// ParseToken validates a bearer token and returns its claims.
func (s AuthService) ParseToken(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.UnauthorizedError{Msg: "unexpected signing method"}
		}
		return s.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.UnauthorizedError{Msg: "invalid token", Err: err}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.UnauthorizedError{Msg: "invalid token claims"}
	}
	return claims, nil
}
