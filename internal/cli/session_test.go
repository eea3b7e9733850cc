package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/appdate/appdate/internal/store"
)

func newTestSession(t *testing.T, input string) (*Session, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.csv")
	accounts := store.NewCSVAccountRepository(path, zerolog.Nop())
	registrar := store.NewRegistrar(accounts, "", zerolog.Nop())

	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, registrar), out
}

func TestSessionExit(t *testing.T) {
	s, out := newTestSession(t, "exit\n")
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Welcome to APPDATE Registration/Login System") {
		t.Error("missing welcome banner")
	}
}

func TestSessionEndsOnEOF(t *testing.T) {
	s, _ := newTestSession(t, "")
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestSessionRegisterThenLogin(t *testing.T) {
	input := strings.Join([]string{
		"register",
		"Lian",
		"2024-200500@rtu.edu.ph",
		"2005-01-02",
		"BSCS",
		"secret123",
		"secret123",
		"login",
		"2024-200500@rtu.edu.ph",
		"secret123",
		"exit",
	}, "\n") + "\n"

	s, out := newTestSession(t, input)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Registration successful! Account saved to CSV.") {
		t.Errorf("missing registration confirmation:\n%s", got)
	}
	if !strings.Contains(got, "Welcome, Lian! You are logged in.") {
		t.Errorf("missing login greeting:\n%s", got)
	}
}

func TestSessionRegisterErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{
			name:  "password mismatch",
			input: []string{"register", "Lian", "2024-200500@rtu.edu.ph", "2005-01-02", "BSCS", "a12345", "b12345"},
			want:  "Passwords do not match.",
		},
		{
			name:  "invalid email",
			input: []string{"register", "Lian", "2023-200500@rtu.edu.ph", "2005-01-02", "BSCS", "a12345", "a12345"},
			want:  "Invalid RTU email.",
		},
		{
			name:  "missing fields",
			input: []string{"register", "Lian", "", "2005-01-02", "BSCS", "a12345", "a12345"},
			want:  "Please fill all fields.",
		},
		{
			name:  "duplicate email",
			input: []string{"register", "Admin Again", "admin@rtu.edu.ph", "2000-01-01", "BSIT", "a12345", "a12345"},
			want:  "Email already exists.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Join(append(tt.input, "exit"), "\n") + "\n"
			s, out := newTestSession(t, input)
			if err := s.Run(context.Background()); err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestSessionLoginErrors(t *testing.T) {
	input := strings.Join([]string{
		"login", "ghost@rtu.edu.ph", "pw",
		"login", "admin@rtu.edu.ph", "wrong",
		"exit",
	}, "\n") + "\n"

	s, out := newTestSession(t, input)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "No account found with that email.") {
		t.Errorf("missing unknown-account message:\n%s", got)
	}
	if !strings.Contains(got, "Incorrect password.") {
		t.Errorf("missing wrong-password message:\n%s", got)
	}
}
