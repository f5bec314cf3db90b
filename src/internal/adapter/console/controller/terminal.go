package controller

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalSecretReader reads passwords with echo turned off.
type TerminalSecretReader struct {
	fd  int
	out io.Writer
}

// NewTerminalSecretReader returns false when file is not a terminal, in which
// case passwords are read as ordinary lines.
func NewTerminalSecretReader(file *os.File, out io.Writer) (*TerminalSecretReader, bool) {
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return nil, false
	}
	return &TerminalSecretReader{fd: fd, out: out}, true
}

func (r *TerminalSecretReader) ReadSecret(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	secret, err := term.ReadPassword(r.fd)
	fmt.Fprintln(r.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return string(secret), nil
}
