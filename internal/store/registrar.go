package store

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/appdate/appdate/internal/export"
	"github.com/appdate/appdate/internal/models"
	"github.com/appdate/appdate/internal/validation"
)

// Registrar is the single registration/login service shared by the web flow
// and the accounts CLI, so the validation rules cannot drift between the two
// entry points.
type Registrar struct {
	accounts AccountRepository
	log      zerolog.Logger

	// exportPath, when set, receives a full CSV export of the account
	// collection after every successful registration.
	exportPath string
}

// NewRegistrar creates a registrar over the given account store. exportPath
// may be empty to disable the CSV export step (the CLI store already writes
// CSV itself).
func NewRegistrar(accounts AccountRepository, exportPath string, log zerolog.Logger) *Registrar {
	return &Registrar{
		accounts:   accounts,
		exportPath: exportPath,
		log:        log,
	}
}

// Register validates the request and appends the new account. The stored
// email is trimmed and lowercased.
func (g *Registrar) Register(ctx context.Context, req *models.RegisterRequest) (*models.Account, error) {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, &ValidationError{Message: "Please fill all required fields."}
		}
		return nil, err
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.IsValidRTUEmail(email) {
		return nil, ErrInvalidRTUEmail
	}

	accounts, err := g.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if strings.ToLower(a.Email) == email {
			return nil, ErrDuplicateEmail
		}
	}

	account := models.Account{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		DOB:      req.DOB,
		Course:   req.Course,
		Password: req.Password,
	}
	if err := g.accounts.Append(ctx, account); err != nil {
		g.log.Error().Err(err).Str("email", email).Msg("Failed to persist account")
		return nil, err
	}

	if g.exportPath != "" {
		all := append(accounts, account)
		if err := export.WriteFile(g.exportPath, all); err != nil {
			g.log.Error().Err(err).Str("path", g.exportPath).Msg("Failed to export accounts CSV")
			return nil, err
		}
	}

	return &account, nil
}

// Login finds the account by lowercased email and checks the password.
func (g *Registrar) Login(ctx context.Context, req *models.LoginRequest) (*models.Account, error) {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, &ValidationError{Message: "Please fill both email and password."}
		}
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	accounts, err := g.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if strings.ToLower(a.Email) != email {
			continue
		}
		if a.Password != req.Password {
			return nil, ErrWrongPassword
		}
		account := a
		return &account, nil
	}

	return nil, ErrAccountNotFound
}
