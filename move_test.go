package twisty

import (
	"errors"
	"testing"
)

func TestParseMove_AllTokens(t *testing.T) {
	cases := []struct {
		token string
		want  Move
	}{
		{"R", Move{AxisX, 1, CW}},
		{"L", Move{AxisX, -1, CCW}},
		{"U", Move{AxisY, 1, CW}},
		{"D", Move{AxisY, -1, CCW}},
		{"F", Move{AxisZ, 1, CW}},
		{"B", Move{AxisZ, -1, CCW}},
		{"M", Move{AxisX, 0, CCW}},
		{"E", Move{AxisY, 0, CCW}},
		{"S", Move{AxisZ, 0, CW}},
	}

	for _, c := range cases {
		got, err := ParseMove(c.token)
		if err != nil {
			t.Errorf("ParseMove(%q) returned error: %v", c.token, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", c.token, got, c.want)
		}

		primed, err := ParseMove(c.token + "'")
		if err != nil {
			t.Errorf("ParseMove(%q') returned error: %v", c.token, err)
			continue
		}
		if primed != got.Inverse() {
			t.Errorf("ParseMove(%q') = %+v, want inverse of %+v", c.token, primed, got)
		}
	}
}

func TestParseMove_Distinct(t *testing.T) {
	// All 18 legal moves must map to unique (axis, slice, direction) values.
	seen := make(map[Move]string)
	for _, token := range []string{"R", "L", "U", "D", "F", "B", "M", "E", "S"} {
		for _, suffix := range []string{"", "'"} {
			m, err := ParseMove(token + suffix)
			if err != nil {
				t.Fatalf("ParseMove(%q): %v", token+suffix, err)
			}
			if prev, dup := seen[m]; dup {
				t.Errorf("%q and %q map to the same move %+v", prev, token+suffix, m)
			}
			seen[m] = token + suffix
		}
	}
	if len(seen) != 18 {
		t.Errorf("expected 18 distinct moves, got %d", len(seen))
	}
}

func TestParseMove_InvalidToken(t *testing.T) {
	for _, bad := range []string{"", "X", "R2", "RR", "Q'", "R''"} {
		if _, err := ParseMove(bad); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) = %v, want ErrInvalidNotation", bad, err)
		}
	}
}

func TestParseMove_Lowercase(t *testing.T) {
	m, err := ParseMove("r'")
	if err != nil {
		t.Fatalf("ParseMove(r'): %v", err)
	}
	if m != RPrime {
		t.Errorf("ParseMove(r') = %+v, want RPrime", m)
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for _, m := range AllMoves {
		parsed, err := ParseMove(m.Notation())
		if err != nil {
			t.Errorf("ParseMove(%q): %v", m.Notation(), err)
			continue
		}
		if parsed != m {
			t.Errorf("round trip of %q = %+v, want %+v", m.Notation(), parsed, m)
		}
	}
}

func TestParseMoves_RejectsInvalidToken(t *testing.T) {
	if _, err := ParseMoves("R U X' F"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseMoves with bad token = %v, want ErrInvalidNotation", err)
	}
}

func TestFormatMoves(t *testing.T) {
	got := FormatMoves(SexyMove)
	if got != "R U R' U'" {
		t.Errorf("FormatMoves(SexyMove) = %q, want %q", got, "R U R' U'")
	}
	if FormatMoves(nil) != "" {
		t.Error("FormatMoves(nil) should be empty")
	}
}

func TestInverseSequence(t *testing.T) {
	moves, err := ParseMoves("U R F")
	if err != nil {
		t.Fatal(err)
	}
	got := FormatMoves(InverseSequence(moves))
	if got != "F' R' U'" {
		t.Errorf("InverseSequence(U R F) = %q, want %q", got, "F' R' U'")
	}
}
