package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"mindcare/internal/cache"
	"mindcare/internal/config"
	"mindcare/internal/model"
	"mindcare/internal/repository"
)

const minPasswordLength = 8

// AuthService handles registration, login and token validation for every role
type AuthService struct {
	users     repository.UserRepo
	tokens    cache.TokenCache
	jwtSecret []byte
	ttl       time.Duration
	demo      map[string]model.DemoAccount
	now       func() time.Time
}

// NewAuthService creates a new auth service. demo is the fallback credential
// table consulted when an email is not in the user store.
func NewAuthService(users repository.UserRepo, tokens cache.TokenCache, cfg config.JWTConfig, demo []model.DemoAccount) *AuthService {
	table := make(map[string]model.DemoAccount, len(demo))
	for _, acc := range demo {
		table[normalizeEmail(acc.Email)] = acc
	}
	return &AuthService{
		users:     users,
		tokens:    tokens,
		jwtSecret: []byte(cfg.Secret),
		ttl:       cfg.TTL,
		demo:      table,
		now:       time.Now,
	}
}

// Register creates a student account and logs it in
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error) {
	user, err := s.newUser(ctx, &model.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     model.RoleStudent,
		College:  req.College,
	})
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// Login validates credentials and returns a signed token
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	email = normalizeEmail(email)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user, err = s.provisionDemo(ctx, email, password)
		if err != nil {
			return nil, err
		}
	} else if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		return nil, fmt.Errorf("%w: account is disabled", ErrForbidden)
	}

	now := s.now()
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("failed to record last login")
	}

	return s.issue(user)
}

// provisionDemo creates the account for a demo credential on first login
func (s *AuthService) provisionDemo(ctx context.Context, email, password string) (*model.User, error) {
	acc, ok := s.demo[email]
	if !ok || subtle.ConstantTimeCompare([]byte(acc.Password), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}

	user, err := s.newUser(ctx, &model.CreateUserRequest{
		Email:    acc.Email,
		Password: acc.Password,
		Name:     acc.Name,
		Role:     acc.Role,
		College:  acc.College,
	})
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"user_id": user.ID, "role": user.Role}).Info("provisioned demo account")
	return user, nil
}

func (s *AuthService) newUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	email := normalizeEmail(req.Email)
	// Reject display-name forms such as "Bob <bob@x.edu>"
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}
	if req.Role != model.RoleAdmin && strings.TrimSpace(req.College) == "" {
		return nil, fmt.Errorf("%w: college is required", ErrInvalidInput)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		Role:         req.Role,
		College:      strings.TrimSpace(req.College),
		Active:       true,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicateKey {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issue(user *model.User) (*model.LoginResponse, error) {
	now := s.now()
	claims := &model.UserClaims{
		UserID:  user.ID,
		Role:    user.Role,
		College: user.College,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token: tokenString,
		User:  user,
	}, nil
}

// ValidateToken parses a JWT and rejects revoked tokens and tokens whose
// owner is disabled, gone, or no longer matches the role and college claimed
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		log.WithError(err).Error("failed to check token revocation")
		return nil, ErrInvalidToken
	}
	if revoked {
		return nil, ErrInvalidToken
	}

	// Claims go stale once the account is disabled or moves college
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		log.WithError(err).WithField("user_id", claims.UserID).Error("failed to load token owner")
		return nil, ErrInvalidToken
	}
	if user == nil || !user.Active || user.Role != claims.Role || user.College != claims.College {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Logout revokes the token until it would have expired anyway
func (s *AuthService) Logout(ctx context.Context, claims *model.UserClaims) error {
	if claims.ExpiresAt == nil {
		return nil
	}
	return s.tokens.Revoke(ctx, claims.ID, claims.ExpiresAt.Sub(s.now()))
}

// HashPassword returns a bcrypt hash of password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
