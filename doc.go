/* Package main: a small Forth-like interpreter.

The interpreter reads a line at a time, splits it on spaces, and evaluates each
token against a stack of 32-bit integers. Tokens are tried against the
following, in order, and the first match wins:

	:         begin a word definition  : name token... ;
	.         print the stack          > [1, 2, 3]
	words     list every known word
	constant  pop the stack into a named constant   100 constant HUNDRED
	."        print text up to a closing quote      ." hello world"
	<word>    run a user defined word
	<op>      run a builtin operator
	<const>   push a constant's value
	<number>  push a decimal literal

Builtin operators:

	+ - * / mod          pop x then y, push y op x
	negate abs           unary arithmetic
	max min              pop two, push the greater or the lesser
	= != > < >= <=       pop a then b, push -1 if b rel a, else 0
	invert               push -1 if the popped value was 0, else 0
	dup swap rot drop nip tuck over clearstack

Since user words are looked up first, they may shadow builtins:

	: dup 42 ;
	3 dup .
	> [3, 42]

That includes uses within the word's own body, so a word that mentions its own
name recurses until it hits the nesting limit (see -max-depth) and fails.

Evaluation of a line stops at its first error; whatever happened to the stack
before then is kept. Definitions made before the error are kept too.

Source files named on the command line are evaluated first, followed by
standard input. A line reading "exit" ends the session.
*/
package main
