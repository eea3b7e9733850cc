// Package cli implements the interactive accounts session: a line-based
// register/login loop against the CSV-file account store.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/appdate/appdate/internal/models"
	"github.com/appdate/appdate/internal/store"
)

// Session reads commands from in and writes prompts and results to out. The
// loop ends on "exit" or end of input.
type Session struct {
	in        *bufio.Scanner
	out       io.Writer
	registrar *store.Registrar
}

func New(in io.Reader, out io.Writer, registrar *store.Registrar) *Session {
	return &Session{
		in:        bufio.NewScanner(in),
		out:       out,
		registrar: registrar,
	}
}

// Run drives the register/login/exit loop until exit or EOF.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to APPDATE Registration/Login System")

	for {
		choice, ok := s.ask(`Type "register" or "login" (or "exit"): `)
		if !ok {
			return s.in.Err()
		}

		switch strings.ToLower(choice) {
		case "exit":
			return nil
		case "register":
			s.register(ctx)
		case "login":
			s.login(ctx)
		}
	}
}

func (s *Session) register(ctx context.Context) {
	req := &models.RegisterRequest{}

	var ok bool
	if req.Name, ok = s.ask("Full Name: "); !ok {
		return
	}
	if req.Email, ok = s.ask("Email: "); !ok {
		return
	}
	if req.DOB, ok = s.ask("Date of Birth (YYYY-MM-DD): "); !ok {
		return
	}
	if req.Course, ok = s.ask("Course: "); !ok {
		return
	}
	if req.Password, ok = s.ask("Password: "); !ok {
		return
	}
	if req.ConfirmPassword, ok = s.ask("Confirm Password: "); !ok {
		return
	}

	if _, err := s.registrar.Register(ctx, req); err != nil {
		switch {
		case store.IsValidation(err):
			fmt.Fprintln(s.out, "Please fill all fields.")
		case errors.Is(err, store.ErrPasswordMismatch):
			fmt.Fprintln(s.out, "Passwords do not match.")
		case errors.Is(err, store.ErrInvalidRTUEmail):
			fmt.Fprintln(s.out, "Invalid RTU email.")
		case errors.Is(err, store.ErrDuplicateEmail):
			fmt.Fprintln(s.out, "Email already exists.")
		default:
			fmt.Fprintf(s.out, "Registration failed: %v\n", err)
		}
		return
	}

	fmt.Fprintln(s.out, "Registration successful! Account saved to CSV.")
}

func (s *Session) login(ctx context.Context) {
	req := &models.LoginRequest{}

	var ok bool
	if req.Email, ok = s.ask("Email: "); !ok {
		return
	}
	if req.Password, ok = s.ask("Password: "); !ok {
		return
	}

	account, err := s.registrar.Login(ctx, req)
	if err != nil {
		switch {
		case store.IsValidation(err):
			fmt.Fprintln(s.out, "Please fill both email and password.")
		case errors.Is(err, store.ErrAccountNotFound):
			fmt.Fprintln(s.out, "No account found with that email.")
		case errors.Is(err, store.ErrWrongPassword):
			fmt.Fprintln(s.out, "Incorrect password.")
		default:
			fmt.Fprintf(s.out, "Login failed: %v\n", err)
		}
		return
	}

	fmt.Fprintf(s.out, "Welcome, %s! You are logged in.\n", account.Name)
}

func (s *Session) ask(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
