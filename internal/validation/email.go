package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// The RTU email rule is shared by the web registration flow and the accounts
// CLI so the two cannot drift.
const (
	rtuDomain     = "@rtu.edu.ph"
	rtuAdminEmail = "admin" + rtuDomain
	rtuYear       = "2024"
	rtuNumberMin  = 200001
	rtuNumberMax  = 200999
)

var sixDigits = regexp.MustCompile(`^\d{6}$`)

// IsValidRTUEmail reports whether email is an accepted institutional address:
// exactly admin@rtu.edu.ph, or <year>-<number>@rtu.edu.ph where the year is
// the literal enrollment year and the 6-digit number lies in the student
// number range.
func IsValidRTUEmail(email string) bool {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return false
	}
	if e == rtuAdminEmail {
		return true
	}
	if !strings.HasSuffix(e, rtuDomain) {
		return false
	}

	prefix := strings.SplitN(e, "@", 2)[0] // e.g. 2024-200123
	parts := strings.Split(prefix, "-")
	if len(parts) != 2 {
		return false
	}
	if parts[0] != rtuYear {
		return false
	}
	if !sixDigits.MatchString(parts[1]) {
		return false
	}

	num, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return num >= rtuNumberMin && num <= rtuNumberMax
}
