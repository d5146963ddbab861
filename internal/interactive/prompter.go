package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"
)

// ErrInputClosed is returned when the operator input ends before an answer
var ErrInputClosed = errors.New("input stream closed")

// Asker asks the operator one question, showing def as the suggested answer.
// An empty return value means the operator accepted the default.
type Asker interface {
	Ask(label string, def string) (string, error)
}

// NewAsker picks a survey prompt when in is a terminal and a plain line
// reader otherwise, so piped answers keep working.
func NewAsker(in *os.File, out *os.File) Asker {
	if term.IsTerminal(int(in.Fd())) {
		return &SurveyAsker{in: in, out: out, errOut: os.Stderr}
	}
	return NewLineAsker(in, out)
}

// SurveyAsker prompts through survey
type SurveyAsker struct {
	in     terminal.FileReader
	out    terminal.FileWriter
	errOut io.Writer
}

// Ask shows a survey input with def prefilled as the default
func (a *SurveyAsker) Ask(label string, def string) (string, error) {
	prompt := &survey.Input{
		Message: label + ":",
		Default: def,
	}

	var answer string
	if err := survey.AskOne(prompt, &answer, survey.WithStdio(a.in, a.out, a.errOut)); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", fmt.Errorf("prompt cancelled: %w", err)
		}
		return "", err
	}

	return strings.TrimSpace(answer), nil
}

// LineAsker reads answers line by line from a reader
type LineAsker struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineAsker creates an asker reading from in and prompting on out
func NewLineAsker(in io.Reader, out io.Writer) *LineAsker {
	return &LineAsker{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask prints "label: (def) " and reads one line
func (a *LineAsker) Ask(label string, def string) (string, error) {
	if _, err := fmt.Fprintf(a.out, "%s: (%s) ", label, def); err != nil {
		return "", err
	}

	input, err := a.reader.ReadString('\n')
	if err != nil {
		// a final unterminated line still counts as an answer
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}

	return strings.TrimSpace(input), nil
}
