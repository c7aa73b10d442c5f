package canon

import "testing"

func TestFold(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Mumbai ", "mumbai"},
		{"Sea   View", "sea view"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Fold(tc.in); got != tc.want {
			t.Fatalf("Fold(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains("Luxurious 3 BHK Apartment", "apartment") {
		t.Fatal("case-insensitive substring expected")
	}
	if Contains("Villa", "plot") {
		t.Fatal("unexpected match")
	}
	if !Contains("anything", "") {
		t.Fatal("empty needle matches everything")
	}
}

func TestEqualFold(t *testing.T) {
	if !EqualFold("MUMBAI", " mumbai ") {
		t.Fatal("expected fold-equal")
	}
	if EqualFold("Pune", "Punee") {
		t.Fatal("unexpected equality")
	}
}
