package goarith

// Eval reduces a well-formed tree to its value. It cannot fail; no
// overflow checking is done.
func Eval(e *Expr) int64 {
	switch e.Type {
	case ExprAdd:
		return Eval(e.Left) + Eval(e.Right)
	case ExprSub:
		return Eval(e.Left) - Eval(e.Right)
	default:
		return e.Value
	}
}
