package chat

import (
	"strings"
	"testing"
)

func TestResponder_Reply(t *testing.T) {
	r := NewResponder()

	tests := []struct {
		message string
		want    string
	}{
		{"Hello there", "Hello! How can I assist"},
		{"hey", "Hello! How can I assist"},
		{"Can you recommend something?", "top-rated disinfectants"},
		{"what does it cost", "Prices vary by product"},
		{"I want to buy this", "Pay with Amazon"},
		{"how about shipping?", "Shipping is handled by Amazon"},
		{"I need support", "automated assistant"},
	}

	for _, tt := range tests {
		got := r.Reply(tt.message)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Reply(%q) = %q, want reply containing %q", tt.message, got, tt.want)
		}
	}
}

func TestResponder_Fallback(t *testing.T) {
	r := NewResponder()
	got := r.Reply("what is the meaning of life")
	if !strings.Contains(got, "still learning") {
		t.Errorf("Reply = %q, want the fallback", got)
	}
}

func TestResponder_MatchesWholeWordsOnly(t *testing.T) {
	r := NewResponder()
	// "shipping" contains "hi" but must not trip the greeting.
	got := r.Reply("shipping")
	if !strings.Contains(got, "Shipping is handled by Amazon") {
		t.Errorf("Reply(\"shipping\") = %q, want the shipping reply", got)
	}
}
