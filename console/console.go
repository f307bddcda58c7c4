// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package console

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/ezrec/p101/machine"
)

// Token aliases for keyboards without the printing-unit glyphs.
var _aliases = map[string]string{
	".": ",",
	"x": "×",
	"/": "÷",
	"v": "√",
	"=": "◊",
	"s": "↓",
	"t": "↑",
	"w": "↕",
}

// ParseToken resolves a keyboard alias, then decodes the key.
func ParseToken(token string) (key machine.Key, err error) {
	if alias, ok := _aliases[token]; ok {
		token = alias
	}

	return machine.ParseKey(token)
}

// Session state. One machine fed from a line-oriented token stream.
type Session struct {
	Verbose bool             // If set, enables verbose logging.
	Machine *machine.Machine // The machine under the keyboard.

	Input  io.Reader // Token stream, one token per line.
	Output io.Writer // Printing unit paper.
}

// NewSession creates a session around a fresh machine.
func NewSession(input io.Reader, output io.Writer) (s *Session) {
	s = &Session{
		Machine: machine.New(),
		Input:   input,
		Output:  output,
	}

	return
}

// Run feeds tokens until the input is exhausted. Tokens that decode to
// no key are discarded, which also swallows blank lines and `#`
// comment lines in script files. Machine conditions print as `error:`
// lines and the session carries on; only an input error ends the run.
func (s *Session) Run() error {
	s.Machine.Verbose = s.Verbose

	await := false
	scanner := bufio.NewScanner(s.Input)
	for scanner.Scan() {
		line := scanner.Text()

		if await {
			await = false
			s.setDecimals(line)
			continue
		}

		key, err := ParseToken(line)
		if err != nil {
			if s.Verbose {
				log.Printf("console: discard %q", line)
			}
			continue
		}

		await = s.press(key)
	}

	return scanner.Err()
}

// press feeds one key and prints whatever the machine answers.
func (s *Session) press(key machine.Key) (await bool) {
	out, err := s.Machine.Press(key)
	if err != nil {
		fmt.Fprintf(s.Output, "error: %v\n", err)
		return
	}

	if out != "" {
		fmt.Fprintln(s.Output, out)
	}

	switch key {
	case machine.KEY_DECIMALS:
		// The count arrives on the next line.
		await = true
	case machine.KEY_DEBUG:
		fmt.Fprint(s.Output, s.Machine.String())
	}

	return
}

// setDecimals applies the follow-up line after the decimals key.
func (s *Session) setDecimals(line string) {
	n, err := strconv.Atoi(line)
	if err != nil {
		if s.Verbose {
			log.Printf("console: discard %q", line)
		}
		return
	}

	err = s.Machine.SetDecimals(n)
	if err != nil {
		fmt.Fprintf(s.Output, "error: %v\n", err)
	}
}
