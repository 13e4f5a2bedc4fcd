package goarith

import "testing"

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"42", 42},
		{"123", 123},
		{"1+2", 3},
		{"1-2", -1},
		{"(1+2)-3", 0},
		{"1-2-3", 2},
		{"1+2+3", 6},
		{"10+20", 30},
		{"2-(1+1)", 0},
		{"((1+2)-(3-4))+5", 9},
		{"1 + 2", 3},
	}
	for _, test := range tests {
		expr, err := Parse(test.input)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", test.input, err)
			continue
		}
		if got := Eval(expr); got != test.want {
			t.Errorf("want %d for %q but got %d", test.want, test.input, got)
		}
	}
}

func TestEvalTree(t *testing.T) {
	tests := []struct {
		expr *Expr
		want int64
	}{
		{Number(7), 7},
		{Add(Number(1), Number(2)), 3},
		{Sub(Add(Number(1), Number(2)), Number(3)), 0},
		{Sub(Number(1), Sub(Number(2), Number(3))), 2},
	}
	for _, test := range tests {
		if got := Eval(test.expr); got != test.want {
			t.Errorf("want %d for %v but got %d", test.want, test.expr, got)
		}
	}
}
