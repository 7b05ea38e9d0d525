package visitors

import "testing"

func TestCounter(t *testing.T) {
	c := NewCounter(120)
	if got := c.Current(); got != 120 {
		t.Errorf("Current = %d, want 120", got)
	}
	if got := c.Increment(); got != 121 {
		t.Errorf("Increment = %d, want 121", got)
	}
	if got := c.Current(); got != 121 {
		t.Errorf("Current = %d, want 121", got)
	}
}

func TestCounter_NegativeBase(t *testing.T) {
	if got := NewCounter(-5).Current(); got != 0 {
		t.Errorf("Current = %d, want 0", got)
	}
}
