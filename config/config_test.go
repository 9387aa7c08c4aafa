package config

import (
	"testing"
	"time"
)

func TestParseExpiry_ValidValues(t *testing.T) {
	tests := []struct {
		expiresIn string
		want      time.Duration
	}{
		{expiresIn: "30s", want: 30 * time.Second},
		{expiresIn: "15m", want: 15 * time.Minute},
		{expiresIn: "2h", want: 2 * time.Hour},
		{expiresIn: "7d", want: 7 * 24 * time.Hour},
		{expiresIn: " 60s ", want: 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.expiresIn, func(t *testing.T) {
			got, err := ParseExpiry(tt.expiresIn)
			if err != nil {
				t.Fatalf("ParseExpiry(%q) returned error: %v", tt.expiresIn, err)
			}
			if got != tt.want {
				t.Fatalf("ParseExpiry(%q) = %v, want %v", tt.expiresIn, got, tt.want)
			}
		})
	}
}

func TestParseExpiry_InvalidValues(t *testing.T) {
	tests := []string{"", "7", "d7", "7x", "1.5h", "m", "-5m", "7 d"}

	for _, expiresIn := range tests {
		t.Run(expiresIn, func(t *testing.T) {
			if _, err := ParseExpiry(expiresIn); err == nil {
				t.Fatalf("ParseExpiry(%q) should have failed", expiresIn)
			}
		})
	}
}
