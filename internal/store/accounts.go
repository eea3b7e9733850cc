package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/appdate/appdate/internal/export"
	"github.com/appdate/appdate/internal/models"
	"github.com/appdate/appdate/internal/storage"
)

const accountsKey = "appdate.accounts"

// AccountRepository owns an account collection. Two implementations exist
// for the same schema: the key-value-backed store used by the web flow, and
// the CSV-file-backed store used by the accounts CLI.
type AccountRepository interface {
	List(ctx context.Context) ([]models.Account, error)
	Append(ctx context.Context, account models.Account) error
}

type kvAccountRepository struct {
	kv  *storage.Store
	log zerolog.Logger

	mu sync.Mutex
}

// NewAccountRepository creates the key-value-backed account store. An empty
// or corrupt store resets to the preloaded admin account.
func NewAccountRepository(kv *storage.Store, log zerolog.Logger) AccountRepository {
	return &kvAccountRepository{kv: kv, log: log}
}

func (r *kvAccountRepository) List(ctx context.Context) ([]models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *kvAccountRepository) Append(ctx context.Context, account models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return err
	}
	accounts = append(accounts, account)
	return r.save(accounts)
}

func (r *kvAccountRepository) load() ([]models.Account, error) {
	raw, err := r.kv.Get(accountsKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			defaults := []models.Account{models.AdminAccount()}
			if err := r.save(defaults); err != nil {
				return nil, err
			}
			return defaults, nil
		}
		return nil, err
	}

	var accounts []models.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		r.log.Warn().Err(err).Msg("Invalid account data in storage, resetting")
		defaults := []models.Account{models.AdminAccount()}
		if err := r.save(defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if len(accounts) == 0 {
		accounts = []models.Account{models.AdminAccount()}
	}
	return accounts, nil
}

func (r *kvAccountRepository) save(accounts []models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return r.kv.Put(accountsKey, raw)
}

type csvAccountRepository struct {
	path string
	log  zerolog.Logger

	mu sync.Mutex
}

// NewCSVAccountRepository creates the file-backed account store used by the
// accounts CLI. It reads and rewrites the same CSV schema the exporter
// produces, and preloads the admin account on first use.
func NewCSVAccountRepository(path string, log zerolog.Logger) AccountRepository {
	return &csvAccountRepository{path: path, log: log}
}

func (r *csvAccountRepository) List(ctx context.Context) ([]models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *csvAccountRepository) Append(ctx context.Context, account models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return err
	}
	accounts = append(accounts, account)
	return export.WriteFile(r.path, accounts)
}

func (r *csvAccountRepository) load() ([]models.Account, error) {
	accounts, err := export.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			defaults := []models.Account{models.AdminAccount()}
			if err := export.WriteFile(r.path, defaults); err != nil {
				return nil, err
			}
			return defaults, nil
		}
		r.log.Warn().Err(err).Str("path", r.path).Msg("Invalid accounts CSV, resetting")
		defaults := []models.Account{models.AdminAccount()}
		if err := export.WriteFile(r.path, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if len(accounts) == 0 {
		accounts = []models.Account{models.AdminAccount()}
	}
	return accounts, nil
}
