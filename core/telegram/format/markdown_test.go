package format

import "testing"

func TestEscapeMarkdownV2(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain text", "plain text"},
		{"a-b.c", `a\-b\.c`},
		{"*bold* _it_", `\*bold\* \_it\_`},
		{`back\slash`, `back\\slash`},
		{"", ""},
	}
	for _, c := range cases {
		if got := EscapeMarkdownV2(c.in); got != c.want {
			t.Fatalf("EscapeMarkdownV2(%q) = %q, expected %q", c.in, got, c.want)
		}
	}
}
