package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"mdcrypt/internal/mdcrypt"
)

// TerminalPrompter asks for passwords on the controlling terminal with
// echo disabled. When stdin is not a terminal (tests, pipes) it falls
// back to plain line reads.
type TerminalPrompter struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

// NewTerminalPrompter creates a prompter on stdin/stderr.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{in: os.Stdin, out: os.Stderr, reader: bufio.NewReader(os.Stdin)}
}

var _ mdcrypt.PasswordPrompter = (*TerminalPrompter)(nil)

// PromptPassword asks the user for a password, confirming it when
// requested and collecting a hint when encrypting. An empty password
// or end of input counts as cancellation.
func (p *TerminalPrompter) PromptPassword(title string, encrypting bool, confirm bool, seed mdcrypt.PasswordAndHint) (mdcrypt.PasswordAndHint, error) {
	fmt.Fprintf(p.out, "%s\n", title)
	if seed.Hint != "" {
		fmt.Fprintf(p.out, "Hint: %s\n", seed.Hint)
	}

	password, err := p.readSecret("Password: ")
	if err != nil {
		return mdcrypt.PasswordAndHint{}, err
	}
	if password == "" {
		return mdcrypt.PasswordAndHint{}, mdcrypt.ErrPromptCancelled
	}

	if confirm {
		again, err := p.readSecret("Confirm password: ")
		if err != nil {
			return mdcrypt.PasswordAndHint{}, err
		}
		if again != password {
			return mdcrypt.PasswordAndHint{}, fmt.Errorf("passwords do not match")
		}
	}

	hint := seed.Hint
	if encrypting {
		hint, err = p.readLine("Hint (optional): ")
		if err != nil {
			return mdcrypt.PasswordAndHint{}, err
		}
	}

	return mdcrypt.PasswordAndHint{Password: password, Hint: hint}, nil
}

// readSecret reads a line with echo disabled when stdin is a terminal.
func (p *TerminalPrompter) readSecret(label string) (string, error) {
	fmt.Fprint(p.out, label)

	fd := int(p.in.Fd())
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", mdcrypt.ErrPromptCancelled
		}
		return string(data), nil
	}
	return p.readRawLine()
}

// readLine reads a plain, echoed line.
func (p *TerminalPrompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	return p.readRawLine()
}

func (p *TerminalPrompter) readRawLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", mdcrypt.ErrPromptCancelled
	}
	return strings.TrimRight(line, "\r\n"), nil
}
