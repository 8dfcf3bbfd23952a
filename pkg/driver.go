package texide

import (
	"fmt"
	"io"
	"os"
)

// Driver wires together a Lexer, State, and Expander over a source file
// and drives expansion to completion, printing each fully expanded token
// as it is produced.
type Driver struct {
	// ParName overrides the control sequence name synthesized for a
	// paragraph break (two or more consecutive newlines). Defaults to
	// "par" if empty.
	ParName string
}

// NewDriver returns a Driver with default settings.
func NewDriver() *Driver {
	return &Driver{ParName: "par"}
}

// Run tokenizes and expands the contents of filename, writing one line
// per output token to out.
func (d *Driver) Run(filename string, out io.Writer) error {
	f, err := os.Open(filename)
	if err != nil {
		return NewIOError(err)
	}
	defer f.Close()

	lexer := NewLexer(f, filename)
	if d.ParName != "" {
		lexer.ParName = d.ParName
	}

	state := NewState(nil)
	RegisterDefaultPrimitives(state.Primitives)

	root := NewLexerStream(lexer, state.Categories)
	state.Root = root

	expander := NewExpander(state)

	for {
		tok, err := expander.Next()
		if err != nil {
			return err
		}

		if tok == nil {
			return nil
		}

		fmt.Fprintln(out, tok.String())
	}
}
