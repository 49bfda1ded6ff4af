package keystore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TermPrompter asks on the terminal. Passphrases are read without echo when
// stdin is a terminal.
type TermPrompter struct {
	in  *os.File
	out io.Writer
	r   *bufio.Reader
}

func NewTermPrompter() *TermPrompter {
	return &TermPrompter{in: os.Stdin, out: os.Stderr, r: bufio.NewReader(os.Stdin)}
}

func (p *TermPrompter) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("ошибка чтения ответа: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "д", "да":
		return true, nil
	}
	return false, nil
}

func (p *TermPrompter) Passphrase(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	fd := int(p.in.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		return string(b), nil
	}

	line, err := p.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
