package haversine

import (
	"bytes"
	"testing"
)

func TestGenerateUniform_Deterministic(t *testing.T) {
	a := GenerateUniform(100, 42)
	b := GenerateUniform(100, 42)

	if len(a.Pairs) != 100 {
		t.Fatalf("expected 100 pairs, got %d", len(a.Pairs))
	}

	for i := range a.Pairs {
		if a.Pairs[i] != b.Pairs[i] {
			t.Fatalf("pair %d differs across runs with the same seed", i)
		}
	}
}

func TestGenerateUniform_SeedVariation(t *testing.T) {
	a := GenerateUniform(100, 1)
	b := GenerateUniform(100, 2)

	same := 0
	for i := range a.Pairs {
		if a.Pairs[i] == b.Pairs[i] {
			same++
		}
	}

	if same == len(a.Pairs) {
		t.Error("different seeds produced identical data")
	}
}

func TestGenerateUniform_Bounds(t *testing.T) {
	data := GenerateUniform(1_000, 7)

	for i, p := range data.Pairs {
		for _, x := range []float64{p.X0, p.X1} {
			if x < XLow || x > XHigh {
				t.Fatalf("pair %d: x out of bounds: %v", i, x)
			}
		}

		for _, y := range []float64{p.Y0, p.Y1} {
			if y < YLow || y > YHigh {
				t.Fatalf("pair %d: y out of bounds: %v", i, y)
			}
		}
	}
}

func TestGenerateCluster_Deterministic(t *testing.T) {
	a := GenerateCluster(500, 42)
	b := GenerateCluster(500, 42)

	if len(a.Pairs) != 500 {
		t.Fatalf("expected 500 pairs, got %d", len(a.Pairs))
	}

	for i := range a.Pairs {
		if a.Pairs[i] != b.Pairs[i] {
			t.Fatalf("pair %d differs across runs with the same seed", i)
		}
	}
}

func TestGenerateCluster_Bounds(t *testing.T) {
	data := GenerateCluster(1_000, 7)

	for i, p := range data.Pairs {
		for _, x := range []float64{p.X0, p.X1} {
			if x < XLow || x > XHigh {
				t.Fatalf("pair %d: x out of bounds: %v", i, x)
			}
		}

		for _, y := range []float64{p.Y0, p.Y1} {
			if y < YLow || y > YHigh {
				t.Fatalf("pair %d: y out of bounds: %v", i, y)
			}
		}
	}
}

func TestClusterSize_Schedule(t *testing.T) {
	tests := []struct {
		pairs int
		want  int
	}{
		{1, 4},
		{1_000, 4},
		{1_001, 8},
		{100_000, 8},
		{100_001, 16},
		{1_000_000, 16},
		{1_000_001, 32},
		{10_000_000, 32},
		{10_000_001, 64},
	}

	for _, tt := range tests {
		if got := clusterSize(tt.pairs); got != tt.want {
			t.Errorf("clusterSize(%d): expected %d, got %d",
				tt.pairs, tt.want, got)
		}
	}
}

// TestWriteJSON_Roundtrip verifies generated data survives serialization and
// the custom deserializer without losing a single bit.
func TestWriteJSON_Roundtrip(t *testing.T) {
	data := GenerateUniform(50, 42)

	var buf bytes.Buffer

	if err := WriteJSON(&buf, data); err != nil {
		t.Fatalf("write error: %v", err)
	}

	parsed, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(parsed.Pairs) != len(data.Pairs) {
		t.Fatalf("expected %d pairs, got %d", len(data.Pairs), len(parsed.Pairs))
	}

	for i := range data.Pairs {
		if parsed.Pairs[i] != data.Pairs[i] {
			t.Errorf("pair %d: expected %+v, got %+v",
				i, data.Pairs[i], parsed.Pairs[i])
		}
	}
}
