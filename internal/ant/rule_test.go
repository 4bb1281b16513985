package ant

import "testing"

func TestParseRule(t *testing.T) {
	r, err := ParseRule("RL")
	if err != nil {
		t.Fatalf("ParseRule(RL) failed: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("Expected length 2, got %d", r.Len())
	}
	if r.Turn(0) != TurnRight {
		t.Errorf("Expected turn 0 to be R, got %v", r.Turn(0))
	}
	if r.Turn(1) != TurnLeft {
		t.Errorf("Expected turn 1 to be L, got %v", r.Turn(1))
	}
}

func TestParseRuleLowercase(t *testing.T) {
	r, err := ParseRule("rLlR")
	if err != nil {
		t.Fatalf("ParseRule(rLlR) failed: %v", err)
	}
	if r.String() != "RLLR" {
		t.Errorf("Expected RLLR, got %s", r.String())
	}
}

func TestParseRuleTrimsWhitespace(t *testing.T) {
	r, err := ParseRule("  RL \n")
	if err != nil {
		t.Fatalf("ParseRule with whitespace failed: %v", err)
	}
	if r.String() != "RL" {
		t.Errorf("Expected RL, got %s", r.String())
	}
}

func TestParseRuleRejectsInvalid(t *testing.T) {
	invalid := []string{"", "   ", "RLX", "12", "R L", "left"}
	for _, s := range invalid {
		if _, err := ParseRule(s); err == nil {
			t.Errorf("ParseRule(%q) should fail", s)
		}
	}
}

func TestParseRuleSingleColor(t *testing.T) {
	// N=1 is the smallest legal rule
	r, err := ParseRule("L")
	if err != nil {
		t.Fatalf("ParseRule(L) failed: %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Expected length 1, got %d", r.Len())
	}
}

func TestRuleRoundTrip(t *testing.T) {
	for _, s := range []string{"L", "R", "RL", "LLRR", "LRRRRRLLR"} {
		r := MustParseRule(s)
		if r.String() != s {
			t.Errorf("Round trip of %q gave %q", s, r.String())
		}
	}
}

func TestMustParseRulePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseRule on bad input should panic")
		}
	}()
	MustParseRule("RLQ")
}
