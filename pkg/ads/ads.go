package ads

import "time"

// Slot is one rotating ad surface: texts shown in order, each for its paired
// display duration, looping forever.
type Slot struct {
	Name      string
	Texts     []string
	Durations []time.Duration
}

// Valid reports whether texts and durations pair up one-to-one. An invalid
// slot never rotates.
func (s Slot) Valid() bool {
	return len(s.Texts) > 0 && len(s.Texts) == len(s.Durations)
}

// Cycle is the wall time of one full rotation.
func (s Slot) Cycle() time.Duration {
	var total time.Duration
	for _, d := range s.Durations {
		total += d
	}
	return total
}

// At returns the text active after the given elapsed time, looping over the
// schedule. Invalid slots return "".
func (s Slot) At(elapsed time.Duration) string {
	if !s.Valid() || s.Cycle() <= 0 {
		return ""
	}
	if elapsed < 0 {
		elapsed = 0
	}
	rem := elapsed % s.Cycle()
	for i, d := range s.Durations {
		if rem < d {
			return s.Texts[i]
		}
		rem -= d
	}
	return s.Texts[0]
}

// TopSlot is the header ad rotation.
func TopSlot() Slot {
	return Slot{
		Name: "top",
		Texts: []string{
			"Your Ad Here - Promote Your Products!",
			"Special Discount - Save 20% Today!",
			"Limited Time Offer - Buy One Get One Free!",
			"New Products Just Added!",
			"Shop Our Best Sellers!",
		},
		Durations: []time.Duration{
			27 * time.Second,
			27 * time.Second,
			3 * time.Second,
			10 * time.Second,
			5 * time.Second,
		},
	}
}

// BottomSlot is the footer ad rotation.
func BottomSlot() Slot {
	return Slot{
		Name: "bottom",
		Texts: []string{
			"Bottom Ad 1 - Exclusive Deals!",
			"Bottom Ad 2 - Free Shipping on Orders Over $50!",
			"Bottom Ad 3 - New Arrivals Just In!",
			"Bottom Ad 4 - Flash Sale - 3 Seconds Only!",
			"Bottom Ad 5 - Clearance Sale!",
			"Bottom Ad 6 - Buy More, Save More!",
			"Bottom Ad 7 - Limited Stock Available!",
			"Bottom Ad 8 - Last Chance Offers!",
		},
		Durations: []time.Duration{
			8300 * time.Millisecond,
			8300 * time.Millisecond,
			8300 * time.Millisecond,
			3 * time.Second,
			8300 * time.Millisecond,
			8300 * time.Millisecond,
			8300 * time.Millisecond,
			3 * time.Second,
		},
	}
}
