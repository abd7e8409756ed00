package services

import (
	"testing"
	"time"

	"transfer-backend/internal/domain"
	"transfer-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testUserQuery = `(?s)SELECT id, email, name, role, password_hash, created_at.*FROM users.*WHERE email = \?`

func userRowWithPassword(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "email", "name", "role", "password_hash", "created_at"}).
		AddRow(1, "admin@example.com", "Admin", "admin", string(hash), time.Now())
}

func TestAuthServiceLoginIssuesToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(testUserQuery).
		WithArgs("admin@example.com").
		WillReturnRows(userRowWithPassword(t, "sekrit-pass"))

	secret := []byte("test-secret")
	svc := AuthService{UserRepo: repositories.UserRepository{DB: db}, JWTSecret: secret}

	user, token, err := svc.Login("admin@example.com", "sekrit-pass")
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", user.Email)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, float64(1), claims["user_id"])
	require.Equal(t, "admin", claims["role"])
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(testUserQuery).
		WithArgs("admin@example.com").
		WillReturnRows(userRowWithPassword(t, "sekrit-pass"))

	svc := AuthService{UserRepo: repositories.UserRepository{DB: db}, JWTSecret: []byte("test-secret")}
	_, _, err = svc.Login("admin@example.com", "wrong")
	require.True(t, domain.IsUnauthorized(err), "expected UnauthorizedError, got %v", err)
}

func TestAuthServiceLoginUnknownEmailLooksLikeBadPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(testUserQuery).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role", "password_hash", "created_at"}))

	svc := AuthService{UserRepo: repositories.UserRepository{DB: db}, JWTSecret: []byte("test-secret")}
	_, _, err = svc.Login("ghost@example.com", "whatever")
	require.True(t, domain.IsUnauthorized(err), "expected UnauthorizedError, got %v", err)
	require.Equal(t, "invalid email or password", err.Error())
}

func TestAuthServiceRegisterRejectsDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE email = \?`).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	svc := AuthService{UserRepo: repositories.UserRepository{DB: db}, JWTSecret: []byte("test-secret")}
	_, err = svc.Register("admin@example.com", "sekrit-pass", "")
	require.True(t, domain.IsValidation(err), "expected ValidationError, got %v", err)
}

func TestAuthServiceParseTokenRejectsForeignSignature(t *testing.T) {
	svc := AuthService{JWTSecret: []byte("right-secret")}

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	raw, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	_, err = svc.ParseToken(raw)
	require.True(t, domain.IsUnauthorized(err), "expected UnauthorizedError, got %v", err)
}
