// Package console drives a tip form from line-oriented text commands.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mmynk/tipsplit/internal/format"
	"github.com/mmynk/tipsplit/internal/form"
)

const help = `Commands:
  bill <amount>   commit the bill amount
  type <text>     type into the bill field without committing
  commit          commit the typed bill text
  + | plus        add a person to the split
  - | minus       remove a person from the split
  slider <0..1>   move the tip slider
  tip <0..100>    set the tip percentage
  show            print the current totals
  help            print this help
  quit            leave
`

// Console reads commands from in and writes results to out.
type Console struct {
	in     io.Reader
	out    io.Writer
	prompt bool
	state  form.State
}

// New creates a Console around an initial form. When prompt is set a "> "
// prompt is printed before each command.
func New(in io.Reader, out io.Writer, state form.State, prompt bool) *Console {
	return &Console{in: in, out: out, prompt: prompt, state: state}
}

// State returns the current form.
func (c *Console) State() form.State {
	return c.state
}

// Run processes commands until quit, end of input, or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	if c.prompt {
		fmt.Fprint(c.out, help)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.prompt {
			fmt.Fprint(c.out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		done, err := c.Exec(scanner.Text())
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
		if done {
			return nil
		}
	}
}

// Exec runs a single command line. It reports done when the line asks to quit.
func (c *Console) Exec(line string) (done bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprint(c.out, help)
		return false, nil
	case "show":
		c.render()
		return false, nil
	case "bill":
		next, err := form.CommitBill(c.state, strings.Join(args, " "))
		c.state = next
		if err != nil {
			return false, err
		}
	case "type":
		c.state = form.EditBill(c.state, strings.Join(args, " "))
	case "commit":
		next, err := form.CommitBill(c.state, c.state.BillText)
		c.state = next
		if err != nil {
			return false, err
		}
	case "+", "plus":
		c.state = form.IncrementSplit(c.state)
	case "-", "minus":
		c.state = form.DecrementSplit(c.state)
	case "slider":
		pos, err := oneFloat(cmd, args)
		if err != nil {
			return false, err
		}
		if pos < 0 || pos > 1 {
			return false, fmt.Errorf("slider position must be between 0 and 1")
		}
		c.state = form.MoveSlider(c.state, pos)
	case "tip":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: tip <0..100>")
		}
		pct, err := strconv.Atoi(strings.TrimSuffix(args[0], "%"))
		if err != nil {
			return false, fmt.Errorf("tip must be a whole percentage: %q", args[0])
		}
		c.state = form.SetTipPercentage(c.state, pct)
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}

	slog.Debug("Console command", "command", cmd, "split", c.state.SplitCount, "tip_percentage", c.state.TipPercentage)
	c.render()
	return false, nil
}

func (c *Console) render() {
	s := c.state
	fmt.Fprintf(c.out, "Total per person: %s\n", format.Currency(s.TotalPerPerson))
	fmt.Fprintf(c.out, "Split: %d\n", s.SplitCount)
	fmt.Fprintf(c.out, "Tip: %s (%s)\n", format.Amount(s.TipAmount), format.Percentage(s.TipPercentage))
	if !s.Actionable {
		fmt.Fprintln(c.out, "Enter a bill amount with: bill <amount>")
	}
}

func oneFloat(cmd string, args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s <number>", cmd)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%s expects a number: %q", cmd, args[0])
	}
	return v, nil
}
