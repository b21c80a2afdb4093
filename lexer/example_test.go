package lexer_test

import (
	"errors"
	"fmt"

	"github.com/luxluth/stp/lexer"
)

func ExampleScan() {
	cfg := lexer.NewBuilder().
		DigitSeparator('_').
		AddSymbols('(', ')', ';').
		AddOperators('=', '+').
		Build()

	tokens, err := lexer.Scan(`let x = 0xFF + 1_000;`, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, tok := range tokens {
		fmt.Println(tok)
	}
	// Output:
	// WORD(let) at 1:1
	// WORD(x) at 1:5
	// OPERATOR(=) at 1:7
	// NUMBER/HEX(FF) at 1:9
	// OPERATOR(+) at 1:14
	// NUMBER/SEQ(1000) at 1:16
	// SYMBOL(;) at 1:21
}

func ExampleScan_char() {
	_, err := lexer.Scan(`'ab'`, nil)
	fmt.Println(err)
	fmt.Println(errors.Is(err, lexer.ErrNotAValidChar))

	tokens, _ := lexer.Scan(`'ab'`, lexer.NewBuilder().CharAsString(true).Build())
	fmt.Println(tokens[0])
	// Output:
	// no valid character at 1:1
	// true
	// STRING(ab) at 1:1
}
