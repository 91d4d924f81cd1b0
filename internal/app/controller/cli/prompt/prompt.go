package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter reads operator input line by line. EOF on the input reads
// as an empty line, so a closed stdin behaves like pressing Enter.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

func (p *Prompter) ReadLine(label string) (string, error) {
	fmt.Fprint(p.writer, label)

	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error while reading console input: %w", err)
	}

	return strings.TrimSpace(line), nil
}
