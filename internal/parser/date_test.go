package parser

import (
	"testing"
)

// TestValidateDate tests the YYYY-MM-DD validator
func TestValidateDate(t *testing.T) {
	tests := []struct {
		date     string
		expected bool
	}{
		{"2025-06-22", true},
		{"2025-6-22", true},
		{"2025-06-2", true},
		{"2024-02-29", true},
		{"2025-02-29", false},
		{"2025-13-01", false},
		{"2025/06/22", false},
		{"22-06-2025", false},
		{"2025-06-22T12:00:00", false},
		{"random_string", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("date_"+tt.date, func(t *testing.T) {
			if got := ValidateDate(tt.date); got != tt.expected {
				t.Errorf("ValidateDate(%q) = %v, want %v", tt.date, got, tt.expected)
			}
		})
	}
}

// TestNormalizeDate tests conversion to the zero-padded form
func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    string
		wantErr bool
	}{
		{name: "already canonical", date: "2025-06-22", want: "2025-06-22"},
		{name: "unpadded month", date: "2025-6-22", want: "2025-06-22"},
		{name: "unpadded month and day", date: "2025-6-2", want: "2025-06-02"},
		{name: "invalid", date: "not_even_a_date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("NormalizeDate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}
