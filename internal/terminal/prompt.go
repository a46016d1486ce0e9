// Package terminal reads interactive input: plain lines and secrets typed without echo.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks questions on Out and reads answers from In.
// When In is a terminal, secrets are read with echo disabled.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	r *bufio.Reader
}

// Stdio returns a Prompter bound to the process's stdin and stderr.
func Stdio() *Prompter {
	return &Prompter{In: os.Stdin, Out: os.Stderr}
}

func (p *Prompter) reader() *bufio.Reader {
	if p.r == nil {
		p.r = bufio.NewReader(p.In)
	}
	return p.r
}

// fd returns the descriptor of In when it is a terminal.
func (p *Prompter) fd() (int, bool) {
	f, ok := p.In.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// Interactive reports whether the user can be asked anything.
func (p *Prompter) Interactive() bool {
	_, ok := p.fd()
	return ok
}

// Line prints label and returns the trimmed answer.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.Out, "%s: ", label)
	line, err := p.reader().ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(line), nil
}

// LineOr returns current when it is set, otherwise prompts for it.
func (p *Prompter) LineOr(current, label string) (string, error) {
	if strings.TrimSpace(current) != "" {
		return strings.TrimSpace(current), nil
	}
	return p.Line(label)
}

// Secret prints label and reads an answer without echoing it.
// Piped input is read as a plain line. The value is not trimmed.
func (p *Prompter) Secret(label string) (string, error) {
	fmt.Fprintf(p.Out, "%s: ", label)
	if fd, ok := p.fd(); ok {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(p.Out)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
		}
		return string(b), nil
	}
	line, err := p.reader().ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
