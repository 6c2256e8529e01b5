// Package console implements the interactive prompts of the simulator.
// Invalid answers are re-prompted here and never reach the simulation.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"agelife/internal/core"
	"agelife/internal/life"
)

const (
	affirmative = "yes"
	negative    = "no"
)

// Prompter reads answers from a line-oriented input and writes prompts.
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	stopWord string
}

// New returns a Prompter reading from in and writing to out. stopWord ends
// a manual-mode simulation.
func New(in io.Reader, out io.Writer, stopWord string) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, stopWord: stopWord}
}

// Out returns the writer prompts are printed to.
func (p *Prompter) Out() io.Writer { return p.out }

// Printf writes formatted text to the prompt output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Line prints prompt and returns the next input line without its newline.
// A final line without a trailing newline is still returned; io.EOF is
// reported only when no input is left.
func (p *Prompter) Line(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	return p.readLine()
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// YesNo asks prompt until the answer is "yes" or "no".
func (p *Prompter) YesNo(prompt string) (bool, error) {
	fmt.Fprint(p.out, prompt)
	for {
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case affirmative:
			return true, nil
		case negative:
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer yes or no.")
	}
}

// Speed shows the speed menu and returns a choice in [1,4].
func (p *Prompter) Speed() (life.Speed, error) {
	fmt.Fprintln(p.out, "\nYou choose how fast to run the simulation.")
	fmt.Fprintln(p.out, "\t1 = As fast as this chip can go!")
	fmt.Fprintln(p.out, "\t2 = Not too fast; this is a school zone.")
	fmt.Fprintln(p.out, "\t3 = Nice and slow so I can watch everything that happens.")
	fmt.Fprintln(p.out, "\t4 = Wait for user to hit enter between generations.")
	fmt.Fprint(p.out, "Your choice: ")
	for {
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && life.Speed(n).Valid() {
			return life.Speed(n), nil
		}
		fmt.Fprintf(p.out, "\nPlease enter your choice between %d and %d: ", int(life.SpeedFast), int(life.SpeedManual))
	}
}

// Open asks for a file name until open succeeds. Only errors wrapping
// core.ErrUnreadableSource are re-prompted; anything else is returned with
// the name that produced it.
func (p *Prompter) Open(open func(name string) error) (string, error) {
	for {
		name, err := p.Line("Please enter filename: ")
		if err != nil {
			return "", err
		}
		name = strings.TrimSpace(name)
		err = open(name)
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, core.ErrUnreadableSource) {
			return name, err
		}
		fmt.Fprintln(p.out, "Unable to open file. Please try again.")
	}
}

// Poll never reports console events; the console cannot interrupt a timed run.
func (p *Prompter) Poll() core.Event { return core.EventNone }

// Await waits for the manual-mode continue line. An empty line or any other
// text advances, the stop word cancels. Running out of input cancels too.
func (p *Prompter) Await(ctx context.Context) (core.Event, error) {
	if err := ctx.Err(); err != nil {
		return core.EventCancel, err
	}
	line, err := p.Line(fmt.Sprintf("Hit [enter] to continue (or %q to end the simulation): ", p.stopWord))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return core.EventCancel, nil
		}
		return core.EventCancel, err
	}
	if strings.TrimSpace(line) == p.stopWord {
		return core.EventCancel, nil
	}
	return core.EventAdvance, nil
}
