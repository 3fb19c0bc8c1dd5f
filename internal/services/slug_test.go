package services_test

import (
	"testing"

	"seastore/internal/services"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Red Snapper":   "red-snapper",
		"Tuna!! 2kg":    "tuna-2kg",
		"salmon":        "salmon",
		"King  Crab":    "king--crab", // double space keeps both hyphens
		"Prawns (Lrg.)": "prawns-lrg",
	}
	for in, want := range cases {
		if got := services.Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
	// Deterministic: same input, same output.
	if services.Slugify("Red Snapper") != services.Slugify("Red Snapper") {
		t.Fatal("slugify must be pure")
	}
}
