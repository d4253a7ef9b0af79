package move

import "testing"

func TestQuarterTurnsExpansion(t *testing.T) {
	cases := []struct {
		m    Move
		want []Face
	}{
		{Move{R, CW}, []Face{R}},
		{Move{R, Half}, []Face{R, R}},
		{Move{R, CCW}, []Face{R, R, R}},
	}
	for _, c := range cases {
		got := c.m.QuarterTurns()
		if len(got) != len(c.want) {
			t.Fatalf("%v: got %v, want %v", c.m, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("%v: got %v, want %v", c.m, got, c.want)
			}
		}
	}
}

func TestInverseUndoes(t *testing.T) {
	for _, f := range Faces {
		for _, turn := range []Turn{CW, CCW, Half} {
			m := Move{Face: f, Turn: turn}
			inv := m.Inverse()
			if turn != Half && inv.Turn == turn {
				t.Errorf("%v: inverse turn unchanged", m)
			}
			if turn == Half && inv.Turn != Half {
				t.Errorf("%v: half turn's inverse should stay Half, got %v", m, inv.Turn)
			}
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for _, f := range Faces {
		for _, turn := range []Turn{CW, CCW, Half} {
			m := Move{Face: f, Turn: turn}
			got, err := ParseMove(m.Notation())
			if err != nil {
				t.Fatalf("ParseMove(%q): %v", m.Notation(), err)
			}
			if got != m {
				t.Errorf("round trip %v -> %q -> %v", m, m.Notation(), got)
			}
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, s := range []string{"", "X", "R3", "RR"} {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q) should have failed", s)
		}
	}
}

func TestParseSequence(t *testing.T) {
	ms, err := ParseSequence("R U R' U'")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	want := []Move{{R, CW}, {U, CW}, {R, CCW}, {U, CCW}}
	if len(ms) != len(want) {
		t.Fatalf("got %d moves, want %d", len(ms), len(want))
	}
	for i := range ms {
		if ms[i] != want[i] {
			t.Errorf("move %d: got %v, want %v", i, ms[i], want[i])
		}
	}
}

func TestFormatQuarterTurns(t *testing.T) {
	got := FormatQuarterTurns([]Face{R, R, R, U})
	if got != "RRRU" {
		t.Errorf("FormatQuarterTurns: got %q, want %q", got, "RRRU")
	}
}

func TestPhase2MovesStayInGenerator(t *testing.T) {
	allowedHalfOnly := map[Face]bool{L: true, R: true, F: true, B: true}
	for _, m := range Phase2Moves {
		if allowedHalfOnly[m.Face] && m.Turn != Half {
			t.Errorf("Phase2Moves contains non-half turn of %v: %v", m.Face, m)
		}
	}
}
