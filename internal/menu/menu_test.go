package menu

import (
	"strings"
	"testing"
)

func run(t *testing.T, input string) string {
	t.Helper()
	var out strings.Builder
	if err := New(strings.NewReader(input), &out, 6).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestMenuSessions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "brinell to tensile",
			input: "1\n1\n200\n0\n0\n",
			want:  []string{"Mechanical Properties", "→ Estimated UTS: 690 MPa", "Goodbye."},
		},
		{
			name:  "reprompts on bad numbers",
			input: "1\n1\nabc\n-5\n200\n0\n0\n",
			want:  []string{"Please enter a numeric value.", "Value must be positive.", "690 MPa"},
		},
		{
			name:  "domain error continues",
			input: "1\n3\n10\n3\n40\n0\n0\n",
			want:  []string{"✗ HRC must be in the range 20-55", "→ Brinell hardness: 371 HB"},
		},
		{
			name:  "composite slab layers",
			input: "2\n4\n100\n2\n0.1\n0.5\n0.05\n0.1\n0\n0\n",
			want:  []string{"Number of layers", "Layer 2 conductivity", "→ Heat flux: 142.857 W/m²"},
		},
		{
			name:  "caps the layer count",
			input: "2\n4\n100\n1e19\n1e12\n1\n0.1\n0.5\n0\n0\n",
			want:  []string{"At most 100 layers.", "→ Heat flux: 500 W/m²"},
		},
		{
			name:  "optional default",
			input: "5\n1\n2\n8\n4\n\n0\n0\n",
			want:  []string{"Exponent n [2]", "→ Solidification time: 8 s"},
		},
		{
			name:  "galvanic lists metals",
			input: "4\n4\nzinc\n\ncopper\n0\n0\n",
			want:  []string{"Available: magnesium, zinc", "A value is required.", "Anode (corrodes): zinc"},
		},
		{
			name:  "invalid choice",
			input: "9\nx\n1\n99\n0\n0\n",
			want:  []string{"Invalid choice.", "[0] ← Back"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertContains(t, run(t, tt.input), tt.want...)
		})
	}
}

func TestMenuEOF(t *testing.T) {
	for _, input := range []string{"", "1\n", "1\n1\n", "2\n4\n100\n2\n0.1\n"} {
		out := run(t, input)
		if strings.Contains(out, "Goodbye.") {
			t.Errorf("EOF should end without the exit message: %q", input)
		}
	}
}
