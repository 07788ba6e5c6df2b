package source

import "testing"

func TestSpanText(t *testing.T) {
	css := "a { color: red }"
	tests := []struct {
		span Span
		want string
	}{
		{Span{Start: 0, End: 1}, "a"},
		{Span{Start: 4, End: 9}, "color"},
		{Span{Start: 15, End: 40}, "}"},
		{Span{Start: 50, End: 60}, ""},
		{Span{Start: 3, End: 3}, ""},
	}
	for _, tt := range tests {
		if got := tt.span.Text(css); got != tt.want {
			t.Errorf("%s.Text() = %q, want %q", tt.span, got, tt.want)
		}
	}
}

func TestSpanLen(t *testing.T) {
	if got := (Span{Start: 2, End: 7}).Len(); got != 5 {
		t.Fatalf("Len() = %d", got)
	}
	inverted := Span{Start: 7, End: 2}
	if !inverted.Empty() || inverted.Len() != 0 {
		t.Fatalf("inverted span must be empty")
	}
	if s := (Span{Start: 1, End: 4}).String(); s != "1-4" {
		t.Fatalf("String() = %q", s)
	}
}
