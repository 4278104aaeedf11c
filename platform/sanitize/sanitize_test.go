package sanitize

import "testing"

func TestStripHTML(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"<b>bold</b> text", "bold text"},
		{"<script>alert(1)</script>after", "alert(1)after"},
		{"&lt;img src=x&gt;encoded", "encoded"},
		{"  padded  ", "padded"},
		{"", ""},
	}
	for _, c := range cases {
		if got := StripHTML(c.in); got != c.want {
			t.Fatalf("StripHTML(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFileStem(t *testing.T) {
	if got := FileStem("Ramesh Kulkarni", 24); got != "RameshKulkarni" {
		t.Fatalf("got %q", got)
	}
	if got := FileStem("../../etc/passwd", 24); got != "etcpasswd" {
		t.Fatalf("got %q", got)
	}
	if got := FileStem("abcdefghij", 4); got != "abcd" {
		t.Fatalf("cap not applied, got %q", got)
	}
	if got := FileStem("!!!", 24); got != "lead" {
		t.Fatalf("expected fallback stem, got %q", got)
	}
}
