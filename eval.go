package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The interpreter evaluates one line at a time. A line is split on single
// spaces; consecutive spaces yield blank tokens, which are skipped. Each token
// is then offered to the evalRules in order, and the first rule that claims it
// decides what it means. So earlier rules shadow later ones: a user word named
// "dup" hides the builtin, and a constant named "5" hides the literal.

// tokenCursor walks the tokens of one line or of one word body. Multi-token
// constructs, like definitions and string literals, consume from the same
// cursor as the dispatch loop.
type tokenCursor struct {
	tokens []string
	i      int
}

func tokenize(line string) *tokenCursor {
	tokens := strings.Split(line, " ")
	for i, tok := range tokens {
		tokens[i] = strings.TrimSpace(tok)
	}
	return &tokenCursor{tokens: tokens}
}

func (tc *tokenCursor) next() (string, bool) {
	if tc.i >= len(tc.tokens) {
		return "", false
	}
	tok := tc.tokens[tc.i]
	tc.i++
	return tok, true
}

// name returns the next non-blank token.
func (tc *tokenCursor) name() (string, bool) {
	for {
		if tok, ok := tc.next(); !ok || tok != "" {
			return tok, ok
		}
	}
}

type evalRule struct {
	name string
	eval func(it *Interp, tok string, in *tokenCursor) (bool, error)
}

var evalRules [10]evalRule

func init() {
	// installed here rather than in a var initializer, since evalWord refers
	// back to the table through evalTokens
	evalRules = [...]evalRule{
		{"blank", (*Interp).evalBlank},
		{"define", (*Interp).evalDefine},
		{"print", (*Interp).evalPrint},
		{"words", (*Interp).evalWords},
		{"constant", (*Interp).evalConstant},
		{"string", (*Interp).evalString},
		{"call", (*Interp).evalWord},
		{"builtin", (*Interp).evalBuiltin},
		{"const", (*Interp).evalConstRef},
		{"literal", (*Interp).evalLiteral},
	}
}

func (it *Interp) evalTokens(in *tokenCursor) error {
	for {
		tok, ok := in.next()
		if !ok {
			return nil
		}
		if err := it.evalToken(tok, in); err != nil {
			return err
		}
	}
}

func (it *Interp) evalToken(tok string, in *tokenCursor) error {
	for _, rule := range evalRules {
		handled, err := rule.eval(it, tok, in)
		if err != nil {
			return err
		}
		if handled {
			if tok != "" {
				it.logf("#", "%v %q -- %v", rule.name, tok, it.stack)
			}
			return nil
		}
	}
	return unknownTokenError(tok)
}

func (it *Interp) evalBlank(tok string, in *tokenCursor) (bool, error) {
	return tok == "", nil
}

// Symbol   Name     Function
//   :      define   read a name and then every token up to ";" as the
//                   body of a new word, replacing any prior definition
func (it *Interp) evalDefine(tok string, in *tokenCursor) (bool, error) {
	if tok != ":" {
		return false, nil
	}
	name, ok := in.name()
	if !ok {
		return true, errUnterminatedDefinition
	}
	if !validWordName(name) {
		return true, wordNameError(name)
	}

	var body []string
	for {
		tok, ok := in.next()
		if !ok {
			return true, errUnterminatedDefinition
		}
		if tok == ";" {
			break
		}
		if tok != "" {
			body = append(body, tok)
		}
	}

	if prev, redefined := it.words.define(name, body); redefined {
		it.logf(":", "redefine %v %q (was %q)", name, body, prev)
	} else {
		it.logf(":", "define %v %q", name, body)
	}
	return true, nil
}

// Word names may be anything that would not otherwise read as a number.
func validWordName(name string) bool {
	_, err := strconv.ParseInt(name, 10, 32)
	return err != nil
}

// Symbol   Name    Function
//   .      print   print the whole stack, bottom to top
func (it *Interp) evalPrint(tok string, in *tokenCursor) (bool, error) {
	if tok != "." {
		return false, nil
	}
	return true, it.printStack()
}

func (it *Interp) printStack() error {
	_, err := fmt.Fprintf(it.out, "> %v\n", it.stack)
	return err
}

// Name    Function
// words   list builtin operators, then user words in definition order
func (it *Interp) evalWords(tok string, in *tokenCursor) (bool, error) {
	if tok != "words" {
		return false, nil
	}
	names := append(it.builtins.names(), it.words.names()...)
	_, err := io.WriteString(it.out, strings.Join(names, " ")+"\n")
	return true, err
}

// Name       Function
// constant   read a name, pop top of stack, and bind the value to the name
func (it *Interp) evalConstant(tok string, in *tokenCursor) (bool, error) {
	if tok != "constant" {
		return false, nil
	}
	name, ok := in.name()
	if !ok {
		return true, errMissingConstantName
	}
	val, err := it.stack.pop("value for constant " + name)
	if err != nil {
		return true, err
	}
	if prev, redefined := it.consts.define(name, val); redefined {
		it.logf(":", "redefine constant %v = %v (was %v)", name, val, prev)
	} else {
		it.logf(":", "define constant %v = %v", name, val)
	}
	return true, nil
}

// Symbol   Name     Function
//   ."     string   print every token up to one ending in a double quote
func (it *Interp) evalString(tok string, in *tokenCursor) (bool, error) {
	if tok != `."` {
		return false, nil
	}
	var parts []string
	for {
		tok, ok := in.next()
		if !ok {
			return true, errUnterminatedString
		}
		if strings.HasSuffix(tok, `"`) {
			if tok != `"` {
				parts = append(parts, strings.TrimSuffix(tok, `"`))
			}
			break
		}
		parts = append(parts, tok)
	}
	_, err := io.WriteString(it.out, strings.Join(parts, " ")+"\n")
	return true, err
}

func (it *Interp) evalWord(tok string, in *tokenCursor) (bool, error) {
	body, defined := it.words.lookup(tok)
	if !defined {
		return false, nil
	}
	return true, it.call(tok, body)
}

// call runs a word body with its own cursor against the shared stack and
// tables. Nesting is bounded by maxDepth, so that a word defined in terms of
// itself fails rather than exhausting the Go stack.
func (it *Interp) call(name string, body []string) error {
	if it.depth >= it.maxDepth {
		return recursionError{name, it.depth}
	}
	it.depth++
	defer func() { it.depth-- }()
	if it.logfn != nil {
		defer it.withLogPrefix("  ")()
	}

	err := it.evalTokens(&tokenCursor{tokens: body})
	if err != nil {
		if _, isWordErr := err.(wordError); !isWordErr {
			err = wordError{name, err}
		}
	}
	return err
}

func (it *Interp) evalBuiltin(tok string, in *tokenCursor) (bool, error) {
	fn, defined := it.builtins.lookup(tok)
	if !defined {
		return false, nil
	}
	return true, fn(&it.stack)
}

func (it *Interp) evalConstRef(tok string, in *tokenCursor) (bool, error) {
	val, defined := it.consts.lookup(tok)
	if !defined {
		return false, nil
	}
	it.stack.push(val)
	return true, nil
}

func (it *Interp) evalLiteral(tok string, in *tokenCursor) (bool, error) {
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return true, unknownTokenError(tok)
	}
	it.stack.push(int32(n))
	return true, nil
}
