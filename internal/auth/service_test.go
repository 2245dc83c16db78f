package auth

import (
	"context"
	"testing"
)

func TestEnsureAccountHashesPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)
	ctx := context.Background()

	password := "Password@123"
	if err := service.EnsureAccount(ctx, "home@example.com", password); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["home@example.com"]
	if user == nil {
		t.Fatal("account not created")
	}
	if user.PasswordHash == password {
		t.Fatal("password was stored in plain text")
	}
}

func TestEnsureAccountIdempotent(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)
	ctx := context.Background()

	if err := service.EnsureAccount(ctx, "home@example.com", "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := repo.users["home@example.com"]

	// Restart with the same email must not replace the account.
	if err := service.EnsureAccount(ctx, "home@example.com", "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.users["home@example.com"] != first {
		t.Error("seed replaced an existing account")
	}
}

func TestEnsureAccountMissingCredentials(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if err := service.EnsureAccount(context.Background(), "", "secret"); err == nil {
		t.Fatal("expected error for missing email")
	}
	if err := service.EnsureAccount(context.Background(), "home@example.com", ""); err == nil {
		t.Fatal("expected error for missing password")
	}
}

func TestLogin(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)
	ctx := context.Background()

	if err := service.EnsureAccount(ctx, "home@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Login(ctx, "home@example.com", "Password@123"); err != nil {
		t.Fatalf("valid login failed: %v", err)
	}
	if _, err := service.Login(ctx, "home@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login(ctx, "nobody@example.com", "Password@123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
