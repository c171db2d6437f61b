// Package prompt reads operator answers one line at a time.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter writes a label to Out and reads the answer from In.
type Prompter struct {
	In  *bufio.Reader
	Out io.Writer

	// Style decorates labels before they are written.
	Style func(string) string
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: bufio.NewReader(in), Out: out}
}

// Ask returns the trimmed answer. A final line without a trailing newline
// still counts; io.EOF is only returned once input is exhausted.
func (p *Prompter) Ask(label string) (string, error) {
	if p.Style != nil {
		label = p.Style(label)
	}
	fmt.Fprint(p.Out, label)

	line, err := p.In.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskNonEmpty asks until a non-empty answer is given.
func (p *Prompter) AskNonEmpty(label string) (string, error) {
	for {
		answer, err := p.Ask(label)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

// YesNo asks until the answer is y, yes, n or no (any case).
func (p *Prompter) YesNo(label string) (bool, error) {
	for {
		answer, err := p.Ask(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.Out, "Please enter 'yes' or 'no'.")
	}
}
