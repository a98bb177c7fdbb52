package haversine

import (
	"strings"
	"testing"
)

func TestParse_Data(t *testing.T) {
	input := `{
        "pairs": [
            {
                "x0": 33.645001259581676,
                "y0": -22.58786090058659,
                "x1": -7.917869055261946,
                "y1": 50.3982354259912
            },
            {
                "x0": 177.74381301443074,
                "y0": 67.14837062236548,
                "x1": 176.66072571102146,
                "y1": 62.52409931003097
            }
        ]
    }`

	want := []Pair{
		{
			X0: 33.645001259581676,
			Y0: -22.58786090058659,
			X1: -7.917869055261946,
			Y1: 50.3982354259912,
		},
		{
			X0: 177.74381301443074,
			Y0: 67.14837062236548,
			X1: 176.66072571102146,
			Y1: 62.52409931003097,
		},
	}

	data, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(data.Pairs) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(data.Pairs))
	}

	for i, pair := range data.Pairs {
		if pair != want[i] {
			t.Errorf("pair %d: expected %+v, got %+v", i, want[i], pair)
		}
	}
}

func TestParse_MemberOrderAndWhitespace(t *testing.T) {
	// Members shuffled, whitespace scattered around every token.
	input := `{ "pairs" : [ {
        "y0"   : 67.14837062236548,
        "x0": 177.74381301443074    ,
        "x1"   : 176.66072571102146   ,
        "y1": 62.52409931003097
    } ] }`

	data, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	want := Pair{
		X0: 177.74381301443074,
		Y0: 67.14837062236548,
		X1: 176.66072571102146,
		Y1: 62.52409931003097,
	}

	if len(data.Pairs) != 1 || data.Pairs[0] != want {
		t.Errorf("expected %+v, got %+v", want, data.Pairs)
	}
}

func TestParse_Tolerances(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pairs int
	}{
		{
			name:  "empty array",
			input: `{"pairs": []}`,
			pairs: 0,
		},
		{
			name: "trailing comma",
			input: `{"pairs": [
                {"x0": 1, "y0": 2, "x1": 3, "y1": 4},
            ]}`,
			pairs: 1,
		},
		{
			name:  "any top-level key",
			input: `{"points": [{"x0": 1, "y0": 2, "x1": 3, "y1": 4}]}`,
			pairs: 1,
		},
		{
			name:  "trailing bytes ignored",
			input: `{"pairs": [{"x0": 1, "y0": 2, "x1": 3, "y1": 4}]} garbage`,
			pairs: 1,
		},
		{
			name:  "scientific notation",
			input: `{"pairs": [{"x0": 1.5e2, "y0": -2E-1, "x1": +3.0, "y1": .5}]}`,
			pairs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if len(data.Pairs) != tt.pairs {
				t.Errorf("expected %d pairs, got %d", tt.pairs, len(data.Pairs))
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: ``,
			want:  "parse error",
		},
		{
			name:  "not an object",
			input: `[1, 2, 3]`,
			want:  "parse error",
		},
		{
			name:  "missing coordinate",
			input: `{"pairs": [{"x0": 1, "y0": 2, "x1": 3, "x1": 4}]}`,
			want:  "missing a coordinate",
		},
		{
			name:  "unterminated member name",
			input: `{"pairs`,
			want:  "unterminated member name",
		},
		{
			name:  "bad number",
			input: `{"pairs": [{"x0": nope, "y0": 2, "x1": 3, "y1": 4}]}`,
			want:  "expected number",
		},
		{
			name:  "malformed number",
			input: `{"pairs": [{"x0": 1.2.3, "y0": 2, "x1": 3, "y1": 4}]}`,
			want:  "malformed number",
		},
		{
			name:  "unterminated array",
			input: `{"pairs": [{"x0": 1, "y0": 2, "x1": 3, "y1": 4}`,
			want:  "parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected parse error")
			}

			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got: %v", tt.want, err)
			}
		})
	}
}

// TestParse_ErrorOffset verifies positions are reported for debugging.
func TestParse_ErrorOffset(t *testing.T) {
	_, err := Parse([]byte(`{"pairs": [}]}`))
	if err == nil {
		t.Fatal("expected parse error")
	}

	if !strings.Contains(err.Error(), "offset") {
		t.Errorf("expected offset in error, got: %v", err)
	}
}
