package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mindcare/internal/model"
)

func TestAuth_RegisterAndLogin(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	resp, err := e.auth.Register(ctx, &model.RegisterRequest{
		Email:    " New.Student@Riverside.edu ",
		Password: "longenough",
		College:  testCollege,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.User.Role != model.RoleStudent || resp.User.Email != "new.student@riverside.edu" {
		t.Fatalf("unexpected user %+v", resp.User)
	}
	if resp.User.Name != "new.student" {
		t.Errorf("default name = %q", resp.User.Name)
	}

	claims, err := e.auth.ValidateToken(ctx, resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != resp.User.ID || claims.College != testCollege || claims.ID == "" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := e.auth.Login(ctx, "new.student@riverside.edu", "longenough"); err != nil {
		t.Errorf("Login: %v", err)
	}
	if _, err := e.auth.Login(ctx, "new.student@riverside.edu", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v", err)
	}
}

func TestAuth_RegisterValidation(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	_, _ = e.auth.Register(ctx, &model.RegisterRequest{Email: "a@b.edu", Password: "password1", College: testCollege})

	tests := []struct {
		name string
		req  model.RegisterRequest
		want error
	}{
		{"short password", model.RegisterRequest{Email: "x@b.edu", Password: "short", College: testCollege}, ErrInvalidInput},
		{"bad email", model.RegisterRequest{Email: "not-an-email", Password: "password1", College: testCollege}, ErrInvalidInput},
		{"display name form", model.RegisterRequest{Email: "Bob <bob@b.edu>", Password: "password1", College: testCollege}, ErrInvalidInput},
		{"missing college", model.RegisterRequest{Email: "y@b.edu", Password: "password1"}, ErrInvalidInput},
		{"duplicate", model.RegisterRequest{Email: "A@B.edu", Password: "password1", College: testCollege}, ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.auth.Register(ctx, &tt.req); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAuth_DemoAccountIsProvisioned(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	if _, err := e.auth.Login(ctx, "demo.student@demo.edu", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong demo password err = %v", err)
	}

	resp, err := e.auth.Login(ctx, "demo.student@demo.edu", "student123")
	if err != nil {
		t.Fatalf("demo login: %v", err)
	}
	if resp.User.Role != model.RoleStudent || resp.User.College != "Demo College" {
		t.Errorf("provisioned user = %+v", resp.User)
	}

	stored, _ := e.users.GetByEmail(ctx, "demo.student@demo.edu")
	if stored == nil || stored.PasswordHash == "" || stored.LastLoginAt == nil {
		t.Fatalf("demo user not stored correctly: %+v", stored)
	}

	// Second login goes through the stored bcrypt hash
	if _, err := e.auth.Login(ctx, "demo.student@demo.edu", "student123"); err != nil {
		t.Errorf("second demo login: %v", err)
	}
}

func TestAuth_UnknownEmail(t *testing.T) {
	e := newTestEnv()
	if _, err := e.auth.Login(context.Background(), "ghost@nowhere.edu", "whatever1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v", err)
	}
}

func TestAuth_DisabledAccount(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	resp, err := e.auth.Register(ctx, &model.RegisterRequest{Email: "off@b.edu", Password: "password1", College: testCollege})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.userSvc.SetActive(ctx, claimsFor(admin), resp.User.ID, false); err != nil {
		t.Fatal(err)
	}
	if _, err := e.auth.Login(ctx, "off@b.edu", "password1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestAuth_LogoutRevokesToken(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	resp, err := e.auth.Register(ctx, &model.RegisterRequest{Email: "bye@b.edu", Password: "password1", College: testCollege})
	if err != nil {
		t.Fatal(err)
	}
	claims, err := e.auth.ValidateToken(ctx, resp.Token)
	if err != nil {
		t.Fatal(err)
	}

	if err := e.auth.Logout(ctx, claims); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if ttl := e.tokens.Revoked[claims.ID]; ttl != time.Hour {
		t.Errorf("revocation ttl = %v, want 1h", ttl)
	}
	if _, err := e.auth.ValidateToken(ctx, resp.Token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("revoked token err = %v", err)
	}
}

func TestAuth_RejectsBadTokens(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &model.UserClaims{
		UserID: "stu-1",
		Role:   model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "x",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
	})
	signed, err := foreign.SignedString([]byte("someone-else"))
	if err != nil {
		t.Fatal(err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &model.UserClaims{
		UserID: "stu-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "y",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(-time.Minute)),
		},
	})
	expiredStr, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	for name, token := range map[string]string{
		"garbage":      "not.a.jwt",
		"foreign key":  signed,
		"expired":      expiredStr,
		"empty string": "",
	} {
		if _, err := e.auth.ValidateToken(ctx, token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: err = %v", name, err)
		}
	}
}
