package cli

import (
	"bufio"
	stderrors "errors"
	"io"
	"strings"
)

// ErrInputClosed is returned when input ends before a value was entered
var ErrInputClosed = stderrors.New("input closed before a value was entered")

// LineReader supplies interactive answers one line at a time
type LineReader interface {
	ReadLine() (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

// NewLineReader reads lines from r
func NewLineReader(r io.Reader) LineReader {
	return &scannerReader{scanner: bufio.NewScanner(r)}
}

func (s *scannerReader) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return s.scanner.Text(), nil
}

// promptUntilValue asks question until a non-blank answer is given
func promptUntilValue(printer *Printer, reader LineReader, question string) (string, error) {
	for {
		printer.Infoln(question)
		printer.Plain(">> ")

		line, err := reader.ReadLine()
		if err != nil {
			return "", err
		}
		if value := strings.TrimSpace(line); value != "" {
			return value, nil
		}
	}
}

// argOrPrompt returns the first argument, or asks for it when absent
func argOrPrompt(printer *Printer, reader LineReader, args []string, question string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	return promptUntilValue(printer, reader, question)
}

// joinedArgsOrPrompt joins every argument into one text, or asks for it when blank
func joinedArgsOrPrompt(printer *Printer, reader LineReader, args []string, question string) (string, error) {
	if text := strings.TrimSpace(strings.Join(args, " ")); text != "" {
		return text, nil
	}
	return promptUntilValue(printer, reader, question)
}
