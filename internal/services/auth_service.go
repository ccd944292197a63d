package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mindmatehq/mindmate/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthTokenTTL bounds every issued credential to 24 hours.
const AuthTokenTTL = 24 * time.Hour

type AuthClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID string) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users     AuthUserRepository
	secretKey []byte
}

func NewAuthService(users AuthUserRepository, secretKey []byte) *AuthService {
	return &AuthService{users: users, secretKey: secretKey}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (service *AuthService) Register(email string, password string, fullName string, age *int) (string, models.User, error) {
	normalized := NormalizeEmail(email)

	exists, err := service.users.ExistsByNormalizedEmail(normalized)
	if err != nil {
		return "", models.User{}, fmt.Errorf("check email uniqueness: %w", err)
	}
	if exists {
		return "", models.User{}, ErrDuplicateEmail
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        normalized,
		PasswordHash: string(passwordHash),
		FullName:     strings.TrimSpace(fullName),
		Age:          age,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		// The unique index is the last line of defense against a
		// concurrent registration with the same address.
		return "", models.User{}, ErrDuplicateEmail
	}

	token, err := service.IssueToken(&user)
	if err != nil {
		return "", models.User{}, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

// Login deliberately reports the same error for an unknown address and a
// wrong password.
func (service *AuthService) Login(email string, password string) (string, models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := service.IssueToken(&user)
	if err != nil {
		return "", models.User{}, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (service *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(AuthTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(service.secretKey)
}

// Authenticate resolves a bearer token back to its user, distinguishing an
// expired credential from a malformed or forged one.
func (service *AuthService) Authenticate(rawToken string) (models.User, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return service.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.User{}, ErrTokenExpired
		}
		return models.User{}, ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return models.User{}, ErrTokenInvalid
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return models.User{}, ErrTokenExpired
	}

	user, err := service.users.FindByID(claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("resolve token subject: %w", err)
	}
	return user, nil
}
