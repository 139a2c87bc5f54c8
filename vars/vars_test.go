package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 10000); n != 10000 {
		t.Fatalf("got %v", n)
	}
	if n := FirstNonZero(3, 0, 10000); n != 3 {
		t.Fatalf("got %v", n)
	}
	if s := FirstNonZero[string](); s != "" {
		t.Fatalf("got %v", s)
	}
}

func TestStrToBool(t *testing.T) {
	for _, s := range []string{"true", "Y", " on ", "1"} {
		if !StrToBool(s) {
			t.Fatalf("%q", s)
		}
	}
	for _, s := range []string{"false", "n", "0", "foo", ""} {
		if StrToBool(s) {
			t.Fatalf("%q", s)
		}
	}
}
