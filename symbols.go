package main

// symbols assigns ids to names in first-definition order, so that listings
// come out the same way every time regardless of map iteration order.
type symbols struct {
	strings []string
	symbols map[string]uint
}

func (sym symbols) symbol(s string) uint {
	return sym.symbols[s]
}

func (sym *symbols) symbolicate(s string) (id uint, defined bool) {
	id, defined = sym.symbols[s]
	if !defined {
		if sym.symbols == nil {
			sym.symbols = make(map[string]uint)
		}
		id = uint(len(sym.strings)) + 1
		sym.strings = append(sym.strings, s)
		sym.symbols[s] = id
	}
	return id, defined
}

func (sym symbols) names() []string {
	return append([]string(nil), sym.strings...)
}

// words is the user dictionary: each name maps to the tokens it expands to.
type words struct {
	symbols
	bodies [][]string
}

// define binds name to a private copy of body, returning any prior body.
// Bodies are replaced, never modified, so a caller holding a body from
// lookup keeps a stable snapshot even if the word is redefined under it.
func (ws *words) define(name string, body []string) (prev []string, redefined bool) {
	id, redefined := ws.symbolicate(name)
	body = append([]string(nil), body...)
	if i := int(id) - 1; i < len(ws.bodies) {
		prev, ws.bodies[i] = ws.bodies[i], body
	} else {
		ws.bodies = append(ws.bodies, body)
	}
	return prev, redefined
}

func (ws words) lookup(name string) ([]string, bool) {
	if id := ws.symbol(name); id != 0 {
		return ws.bodies[id-1], true
	}
	return nil, false
}

// constants binds names to values popped at definition time.
type constants struct {
	symbols
	values []int32
}

func (cs *constants) define(name string, val int32) (prev int32, redefined bool) {
	id, redefined := cs.symbolicate(name)
	if i := int(id) - 1; i < len(cs.values) {
		prev, cs.values[i] = cs.values[i], val
	} else {
		cs.values = append(cs.values, val)
	}
	return prev, redefined
}

func (cs constants) lookup(name string) (int32, bool) {
	if id := cs.symbol(name); id != 0 {
		return cs.values[id-1], true
	}
	return 0, false
}
