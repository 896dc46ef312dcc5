package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads whitespace separated answers from an input stream and keeps
// asking until an answer passes validation.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Prompter{scanner: scanner, out: out}
}

// next returns the next token, or io.ErrUnexpectedEOF when input ends.
func (p *Prompter) next() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return p.scanner.Text(), nil
}

// Int prompts until an integer accepted by validate is read. notNumber is
// printed for tokens that are not integers; validate's error is printed for
// rejected values.
func (p *Prompter) Int(prompt, notNumber string, validate func(int) error) (int, error) {
	for {
		fmt.Fprint(p.out, prompt)
		tok, err := p.next()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			if notNumber != "" {
				fmt.Fprintln(p.out, notNumber)
			}
			continue
		}
		if validate != nil {
			if err := validate(n); err != nil {
				fmt.Fprintln(p.out, err.Error())
				continue
			}
		}
		return n, nil
	}
}

// Float prompts until a number accepted by validate is read. A decimal comma
// is accepted as well as a decimal point.
func (p *Prompter) Float(prompt, notNumber string, validate func(float64) error) (float64, error) {
	for {
		fmt.Fprint(p.out, prompt)
		tok, err := p.next()
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(strings.Replace(tok, ",", ".", 1), 64)
		if err != nil {
			if notNumber != "" {
				fmt.Fprintln(p.out, notNumber)
			}
			continue
		}
		if validate != nil {
			if err := validate(f); err != nil {
				fmt.Fprintln(p.out, err.Error())
				continue
			}
		}
		return f, nil
	}
}
