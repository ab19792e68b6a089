package util

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple words", input: "Vitamin C 1000", expected: "vitamin-c-1000"},
		{name: "punctuation collapses", input: "  Omega-3 -- Fish   Oil!! ", expected: "omega-3-fish-oil"},
		{name: "non latin letters kept", input: "ویتامین د", expected: "ویتامین-د"},
		{name: "only symbols", input: "***", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.input); got != tt.expected {
				t.Fatalf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "0912 123 4567", expected: "09121234567"},
		{input: "+98 (912) 123-4567", expected: "+989121234567"},
		{input: "98+912", expected: "98912"},
	}

	for _, tt := range tests {
		if got := NormalizePhone(tt.input); got != tt.expected {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGenerateNumericCode(t *testing.T) {
	t.Parallel()

	code, err := GenerateNumericCode(6)
	if err != nil {
		t.Fatalf("GenerateNumericCode returned error: %v", err)
	}
	if !regexp.MustCompile(`^[0-9]{6}$`).MatchString(code) {
		t.Fatalf("GenerateNumericCode(6) = %q, want six digits", code)
	}

	if _, err := GenerateNumericCode(0); err == nil {
		t.Fatal("GenerateNumericCode(0) should fail")
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC)
	number, err := GenerateOrderNumber(now)
	if err != nil {
		t.Fatalf("GenerateOrderNumber returned error: %v", err)
	}
	if !strings.HasPrefix(number, "PH-20261016-") {
		t.Fatalf("GenerateOrderNumber = %q, want PH-20261016- prefix", number)
	}
	if len(number) != len("PH-20261016-")+6 {
		t.Fatalf("GenerateOrderNumber = %q, unexpected length", number)
	}
}

func TestHashToken(t *testing.T) {
	t.Parallel()

	const want = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got := HashToken("hello"); got != want {
		t.Fatalf("HashToken(hello) = %s, want %s", got, want)
	}
	if Checksum([]byte("hello")) != want {
		t.Fatal("Checksum should match HashToken for the same bytes")
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
