package validation

import "testing"

func TestIsValidRTUEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"admin@rtu.edu.ph", true},
		{"ADMIN@RTU.EDU.PH", true},
		{"  admin@rtu.edu.ph  ", true},
		{"2024-200500@rtu.edu.ph", true},
		{"2024-200001@rtu.edu.ph", true},
		{"2024-200999@rtu.edu.ph", true},

		{"", false},
		{"2024-200000@rtu.edu.ph", false}, // below range
		{"2024-201000@rtu.edu.ph", false}, // above range
		{"2024-199999@rtu.edu.ph", false},
		{"2023-200500@rtu.edu.ph", false}, // wrong year
		{"2024-20050@rtu.edu.ph", false},  // 5 digits
		{"2024-2005000@rtu.edu.ph", false},
		{"2024-2005ab@rtu.edu.ph", false},
		{"2024200500@rtu.edu.ph", false}, // no dash
		{"2024-200500@gmail.com", false}, // wrong domain
		{"admin@gmail.com", false},
		{"2024-200-500@rtu.edu.ph", false}, // extra dash
	}

	for _, tt := range tests {
		if got := IsValidRTUEmail(tt.email); got != tt.want {
			t.Errorf("IsValidRTUEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
