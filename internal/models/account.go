package models

// Account is a registered user. Passwords are stored as entered; there is no
// hashing in this system (see DESIGN.md).
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	DOB      string `json:"dob"` // ISO YYYY-MM-DD
	Course   string `json:"course"`
	Password string `json:"password"`
}

// AdminAccount is the default account preloaded into an empty account store.
func AdminAccount() Account {
	return Account{
		Name:     "admin",
		Email:    "admin@rtu.edu.ph",
		DOB:      "2006-09-19",
		Course:   "BSIT",
		Password: "admin1234",
	}
}

// RegisterRequest carries the fields of the registration form.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	DOB             string `json:"dob" validate:"required"`
	Course          string `json:"course" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
