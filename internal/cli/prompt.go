package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// errInputClosed is returned once the input stream has no more lines.
var errInputClosed = errors.New("input closed")

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return p.scanner.Text(), nil
}

// askPositive repeats question until the answer is a positive integer.
func (p *prompter) askPositive(question string) (int, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		n, err := parsePositive(answer)
		if err == nil {
			return n, nil
		}
		warn.Fprintf(p.out, "%q: %v\n", answer, err)
	}
}

func (p *prompter) askYesNo(question string) (bool, error) {
	answer, err := p.ask(question + " (y/n) ")
	if err != nil {
		return false, err
	}
	return !isNegative(answer), nil
}
