package main

// A builtin is a Go function operating directly on the stack. Builtins fail
// only when an operand is missing (or, for division, zero); operands popped
// before such a failure stay popped.
type builtin struct {
	name string
	fn   func(s *stack) error
}

// builtins is the fixed operator table of one interpreter. It is built once by
// newBuiltins and never modified afterwards.
type builtins struct {
	ops   []builtin
	index map[string]int
}

func (bs builtins) lookup(name string) (func(s *stack) error, bool) {
	if i, defined := bs.index[name]; defined {
		return bs.ops[i].fn, true
	}
	return nil, false
}

func (bs builtins) names() []string {
	names := make([]string, len(bs.ops))
	for i, op := range bs.ops {
		names[i] = op.name
	}
	return names
}

func newBuiltins() builtins {
	ops := []builtin{
		//// Integer Operations

		// Symbol   Name         Function
		//    +     add          pop top 2 elements of stack, add, push
		//    -     subtract     pop x then y, push y - x
		//    *     multiply     pop top 2 elements of stack, multiply, push
		//    /     divide       pop x then y, push y / x
		//   mod    modulus      pop x then y, push y % x
		{"+", arithmetic("+", func(x, y int32) int32 { return x + y })},
		{"-", arithmetic("-", func(x, y int32) int32 { return y - x })},
		{"*", arithmetic("*", func(x, y int32) int32 { return x * y })},
		{"/", division("/", func(x, y int32) int32 { return y / x })},
		{"mod", division("mod", func(x, y int32) int32 { return y % x })},

		// Name     Function
		// negate   pop top of stack, push its negation
		// abs      pop top of stack, push its absolute value
		// max      pop top 2 elements of stack, push the greater
		// min      pop top 2 elements of stack, push the lesser
		{"negate", unary("negate", func(a int32) int32 { return -a })},
		{"abs", unary("abs", func(a int32) int32 {
			if a < 0 {
				return -a
			}
			return a
		})},
		{"max", arithmetic("max", func(x, y int32) int32 {
			if x > y {
				return x
			}
			return y
		})},
		{"min", arithmetic("min", func(x, y int32) int32 {
			if x < y {
				return x
			}
			return y
		})},

		//// Stack Operations

		// Name   Stack effect
		// dup    ( a -- a a )
		// swap   ( b a -- a b )
		// rot    ( c b a -- b a c )
		// drop   ( a -- )
		// nip    ( b a -- a )
		// tuck   ( b a -- a b a )
		// over   ( b a -- b a b )
		{"dup", dup},
		{"swap", swap},
		{"rot", rot},
		{"drop", drop},
		{"nip", nip},
		{"tuck", tuck},
		{"over", over},

		//// Comparison Operations

		// Pop a then b, push -1 if "b relation a" holds, 0 otherwise.
		{"=", comparison("=", func(a, b int32) bool { return b == a })},
		{"!=", comparison("!=", func(a, b int32) bool { return b != a })},
		{">", comparison(">", func(a, b int32) bool { return b > a })},
		{"<", comparison("<", func(a, b int32) bool { return b < a })},
		{">=", comparison(">=", func(a, b int32) bool { return b >= a })},
		{"<=", comparison("<=", func(a, b int32) bool { return b <= a })},

		// Name         Function
		// clearstack   discard every element of the stack
		// invert       pop top of stack, push -1 if it was 0, else 0
		{"clearstack", func(s *stack) error { s.clear(); return nil }},
		{"invert", unary("invert", func(a int32) int32 { return boolCell(a == 0) })},
	}

	index := make(map[string]int, len(ops))
	for i, op := range ops {
		index[op.name] = i
	}
	return builtins{ops, index}
}

func arithmetic(name string, op func(x, y int32) int32) func(s *stack) error {
	return func(s *stack) error {
		x, err := s.pop("first argument for " + name)
		if err != nil {
			return err
		}
		y, err := s.pop("second argument for " + name)
		if err != nil {
			return err
		}
		s.push(op(x, y))
		return nil
	}
}

func division(name string, op func(x, y int32) int32) func(s *stack) error {
	return func(s *stack) error {
		x, err := s.pop("first argument for " + name)
		if err != nil {
			return err
		}
		y, err := s.pop("second argument for " + name)
		if err != nil {
			return err
		}
		if x == 0 {
			return errDivideByZero
		}
		s.push(op(x, y))
		return nil
	}
}

func comparison(name string, rel func(a, b int32) bool) func(s *stack) error {
	return func(s *stack) error {
		a, err := s.pop("first argument for " + name)
		if err != nil {
			return err
		}
		b, err := s.pop("second argument for " + name)
		if err != nil {
			return err
		}
		s.push(boolCell(rel(a, b)))
		return nil
	}
}

func unary(name string, op func(a int32) int32) func(s *stack) error {
	return func(s *stack) error {
		a, err := s.pop("argument for " + name)
		if err != nil {
			return err
		}
		s.push(op(a))
		return nil
	}
}

func dup(s *stack) error {
	a, err := s.pop("argument for dup")
	if err != nil {
		return err
	}
	s.push(a)
	s.push(a)
	return nil
}

func swap(s *stack) error {
	a, err := s.pop("first argument for swap")
	if err != nil {
		return err
	}
	b, err := s.pop("second argument for swap")
	if err != nil {
		return err
	}
	s.push(a)
	s.push(b)
	return nil
}

func rot(s *stack) error {
	a, err := s.pop("first argument for rot")
	if err != nil {
		return err
	}
	b, err := s.pop("second argument for rot")
	if err != nil {
		return err
	}
	c, err := s.pop("third argument for rot")
	if err != nil {
		return err
	}
	s.push(b)
	s.push(a)
	s.push(c)
	return nil
}

func drop(s *stack) error {
	_, err := s.pop("argument for drop")
	return err
}

func nip(s *stack) error {
	a, err := s.pop("first argument for nip")
	if err != nil {
		return err
	}
	if _, err := s.pop("second argument for nip"); err != nil {
		return err
	}
	s.push(a)
	return nil
}

func tuck(s *stack) error {
	a, err := s.pop("first argument for tuck")
	if err != nil {
		return err
	}
	b, err := s.pop("second argument for tuck")
	if err != nil {
		return err
	}
	s.push(a)
	s.push(b)
	s.push(a)
	return nil
}

func over(s *stack) error {
	a, err := s.pop("first argument for over")
	if err != nil {
		return err
	}
	b, err := s.pop("second argument for over")
	if err != nil {
		return err
	}
	s.push(b)
	s.push(a)
	s.push(b)
	return nil
}

// boolCell encodes truth the Forth way: all bits set for true.
func boolCell(b bool) int32 {
	if b {
		return -1
	}
	return 0
}
