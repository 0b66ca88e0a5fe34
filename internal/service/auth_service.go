package service

import (
	"errors"
	"fmt"
	"time"

	"campus-canteen/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionTTL  = 24 * time.Hour
	RoleManager = "manager"
)

var _ AuthServiceInterface = (*AuthService)(nil)

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users  UserRepository
	secret []byte
}

func NewAuthService(users UserRepository, secret []byte) *AuthService {
	return &AuthService{users: users, secret: secret}
}

func (s *AuthService) Signup(fullname, contact, email, password string) (*domain.User, error) {
	if fullname == "" || contact == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.users.GetUserByEmail(email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:         email,
		FullName:      fullname,
		ContactNumber: contact,
		PasswordHash:  string(hash),
		CreatedAt:     time.Now(),
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	_ = s.users.TouchUserLogin(email)

	token, err := s.sign(email, "")
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) ManagerLogin(email, password string) (string, *domain.Manager, error) {
	manager, err := s.users.GetManagerByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrManagerNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	_ = s.users.TouchManagerLogin(email)

	token, err := s.sign(email, RoleManager)
	if err != nil {
		return "", nil, err
	}
	return token, manager, nil
}

func (s *AuthService) sign(email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
