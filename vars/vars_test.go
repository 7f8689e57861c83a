package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero("", "main", "entry"); got != "main" {
		t.Fatalf("got %q", got)
	}
	if got := FirstNonZero(0, 0); got != 0 {
		t.Fatalf("got %d", got)
	}
}

func TestDerefOrZero(t *testing.T) {
	n := 4
	if got := DerefOrZero(&n); got != 4 {
		t.Fatalf("got %d", got)
	}
	if got := DerefOrZero[int](nil); got != 0 {
		t.Fatalf("got %d", got)
	}
}

func TestStrToBool(t *testing.T) {
	for str, want := range map[string]bool{
		"true": true,
		"Y":    true,
		"no":   false,
		"?":    false,
	} {
		if got := StrToBool(str); got != want {
			t.Fatalf("%s: got %v", str, got)
		}
	}
}
