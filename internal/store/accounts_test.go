package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/appdate/appdate/internal/models"
)

func TestKVAccountsPreloadAdmin(t *testing.T) {
	kv := newTestKV(t)
	repo := NewAccountRepository(kv, zerolog.Nop())

	accounts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected preloaded admin only, got %d accounts", len(accounts))
	}
	if accounts[0] != models.AdminAccount() {
		t.Errorf("unexpected preloaded account: %+v", accounts[0])
	}
}

func TestKVAccountsCorruptBlobResets(t *testing.T) {
	kv := newTestKV(t)
	if err := kv.Put("appdate.accounts", []byte("][")); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	repo := NewAccountRepository(kv, zerolog.Nop())
	accounts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("expected recovery, got error: %v", err)
	}
	if len(accounts) != 1 || accounts[0].Email != "admin@rtu.edu.ph" {
		t.Errorf("expected reset to admin-only collection, got %+v", accounts)
	}
}

func TestKVAccountsAppendPersists(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	repo := NewAccountRepository(kv, zerolog.Nop())
	account := models.Account{
		Name: "Lian", Email: "2024-200500@rtu.edu.ph",
		DOB: "2005-01-02", Course: "BSCS", Password: "secret123",
	}
	if err := repo.Append(ctx, account); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	reloaded := NewAccountRepository(kv, zerolog.Nop())
	accounts, _ := reloaded.List(ctx)
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[1] != account {
		t.Errorf("round trip changed the account: %+v", accounts[1])
	}
}

func TestCSVAccountsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.csv")
	ctx := context.Background()

	repo := NewCSVAccountRepository(path, zerolog.Nop())

	// First use creates the file with the admin account.
	accounts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(accounts) != 1 || accounts[0].Name != "admin" {
		t.Fatalf("expected preloaded admin, got %+v", accounts)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("store file was not created: %v", err)
	}

	account := models.Account{
		Name: "O'Brien, Pat", Email: "2024-200123@rtu.edu.ph",
		DOB: "2004-12-31", Course: "BSIT", Password: `pa"ss`,
	}
	if err := repo.Append(ctx, account); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	reloaded := NewCSVAccountRepository(path, zerolog.Nop())
	accounts, _ = reloaded.List(ctx)
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[1] != account {
		t.Errorf("quoted fields did not survive the round trip: %+v", accounts[1])
	}
}
