package calc

import "testing"

func TestFormatCanonicalizes(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{source: "1+2", want: "1 + 2"},
		{source: "(1+2)*3", want: "(1 + 2) * 3"},
		{source: "(1*2)+3", want: "1 * 2 + 3"},
		{source: "((1-2))-3", want: "1 - 2 - 3"},
		{source: "1-(2-3)", want: "1 - (2 - 3)"},
		{source: "8/(4/2)", want: "8 / (4 / 2)"},
		{source: "1+(2*3)", want: "1 + 2 * 3"},
		{source: "  (7) ", want: "7"},
		{source: "007*(1+0)", want: "007 * (1 + 0)"},
	}

	for _, tc := range cases {
		got := Format(parseOrFail(t, tc.source))
		if got != tc.want {
			t.Fatalf("format %q: expected %q, got %q", tc.source, tc.want, got)
		}
		if again := Format(parseOrFail(t, got)); again != got {
			t.Fatalf("format is not stable for %q: %q", got, again)
		}
	}
}

func TestDumpListsNodes(t *testing.T) {
	got := Dump(parseOrFail(t, "1 + 2 * 3"))
	want := "BinaryOp +\n  Number 1\n  BinaryOp *\n    Number 2\n    Number 3"
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}
