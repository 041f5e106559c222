package adapter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	m "github.com/mouse-blink/handcheck/internal/model"
)

// LinePrompter asks questions over plain line-oriented streams. It is used
// when stdin is not a terminal and by tests.
type LinePrompter struct {
	out   io.Writer
	lines <-chan string

	once sync.Once
	in   io.Reader
	feed chan string
}

// NewLinePrompter creates a LinePrompter reading answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: in, out: out}
}

// start launches the single reader goroutine lazily so a prompter that is never
// used never touches stdin.
func (p *LinePrompter) start() {
	p.once.Do(func() {
		p.feed = make(chan string)
		p.lines = p.feed

		go func() {
			defer close(p.feed)

			scanner := bufio.NewScanner(p.in)
			for scanner.Scan() {
				p.feed <- scanner.Text()
			}
		}()
	})
}

func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	p.start()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}

		return strings.TrimSpace(line), nil
	}
}

// Confirm asks until the operator gives a recognisable answer. End of input
// is treated as skip so a closed stdin never hangs a run.
func (p *LinePrompter) Confirm(ctx context.Context, q Question) (Verdict, error) {
	if q.Instruction != "" {
		p.printf("\n%s\n", q.Instruction)
	}

	for {
		p.printf("%s [p]ass / [f]ail / [s]kip: ", q.Text)

		line, err := p.readLine(ctx)
		if err == io.EOF {
			p.printf("\n")
			return Verdict{Status: m.Skip, Note: "no operator input"}, nil
		}

		if err != nil {
			return Verdict{}, err
		}

		status, ok := parseAnswer(line)
		if !ok {
			p.printf("Please answer pass, fail or skip.\n")
			continue
		}

		if status != m.Fail {
			return Verdict{Status: status}, nil
		}

		p.printf("What went wrong? (optional): ")

		note, err := p.readLine(ctx)
		if err != nil && err != io.EOF {
			return Verdict{}, err
		}

		return Verdict{Status: m.Fail, Note: note}, nil
	}
}

// Pause waits for a line (usually just Enter).
func (p *LinePrompter) Pause(ctx context.Context, message string) error {
	p.printf("%s [press Enter] ", message)

	_, err := p.readLine(ctx)
	if err == io.EOF {
		return nil
	}

	return err
}

// Interactive is true: answers come from a person.
func (p *LinePrompter) Interactive() bool {
	return true
}

func (p *LinePrompter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func parseAnswer(line string) (m.Status, bool) {
	switch strings.ToLower(line) {
	case "p", "pass", "y", "yes", "ok":
		return m.Pass, true
	case "f", "fail", "n", "no":
		return m.Fail, true
	case "s", "skip":
		return m.Skip, true
	default:
		return m.Skip, false
	}
}
