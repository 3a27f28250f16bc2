package method

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Method
	}{
		{"GET", GET},
		{"HEAD", HEAD},
		{"POST", POST},
		{"PUT", PUT},
		{"DELETE", DELETE},
		{"CONNECT", CONNECT},
		{"OPTIONS", OPTIONS},
		{"TRACE", TRACE},
		{"PATCH", PATCH},
		{"PROPFIND", Unknown},
		{"G", Unknown},
		{"", Unknown},
		{"get", Unknown}, // Parse expects the upper-cased token the tokenizer already has
	}

	for _, c := range cases {
		if got := Parse(c.in); got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestString(t *testing.T) {
	if GET.String() != "GET" {
		t.Errorf("GET.String() = %q, want GET", GET.String())
	}
	if Method(255).String() != "UNKNOWN" {
		t.Errorf("Method(255).String() = %q, want UNKNOWN", Method(255).String())
	}
}
