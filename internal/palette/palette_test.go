package palette

import "testing"

func TestGenerateLength(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		p := Generate(n, 42)
		if p.Len() != n {
			t.Errorf("Generate(%d) returned %d colors", n, p.Len())
		}
	}
}

func TestGenerateDistinct(t *testing.T) {
	p := Generate(64, 7)

	seen := make(map[string]bool)
	for _, c := range p {
		if seen[c] {
			t.Errorf("Duplicate color %s", c)
		}
		seen[c] = true
	}
}

func TestGenerateExcludesBackground(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		for _, c := range Generate(8, seed) {
			if c == Background {
				t.Fatalf("Seed %d produced the background color", seed)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p1 := Generate(6, 12345)
	p2 := Generate(6, 12345)

	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("Color %d differs for same seed: %s vs %s", i, p1[i], p2[i])
		}
	}
}

func TestGenerateWellFormed(t *testing.T) {
	for _, c := range Generate(16, 99) {
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("Malformed hex color %q", c)
		}
	}
}
