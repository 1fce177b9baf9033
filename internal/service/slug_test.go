package service

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single word", input: "Payslips", expected: "payslips"},
		{name: "multi word", input: "News And Info", expected: "news-and-info"},
		{name: "collapses whitespace", input: "  Pay   History  ", expected: "pay-history"},
		{name: "already lower", input: "faqs", expected: "faqs"},
		{name: "empty", input: "", expected: ""},
		{name: "blank", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPageURLFromLabel(t *testing.T) {
	if got := PageURLFromLabel("Pay History"); got != "/pay-history" {
		t.Fatalf("expected /pay-history, got %q", got)
	}
}
