// Command tipsplit computes tips and per-person totals from the terminal.
//
//	tipsplit calc -bill 100 -split 4 -tip 15
//	tipsplit calc -remote http://localhost:8080 -bill 100 -split 4
//	tipsplit console
//	tipsplit hash-key <api key>
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"connectrpc.com/connect"
	"github.com/mattn/go-isatty"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/tipsplit/internal/auth"
	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/console"
	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/format"
	"github.com/mmynk/tipsplit/internal/middleware"
	"github.com/mmynk/tipsplit/pkg/api"
	"github.com/mmynk/tipsplit/pkg/api/apiconnect"
	"github.com/mmynk/tipsplit/pkg/logging"
)

const usage = `usage: tipsplit <command> [flags]

commands:
  calc      compute tip and per-person total
  console   interactive tip form
  hash-key  print a bcrypt hash for an API key
`

func main() {
	logging.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "tipsplit:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "calc":
		return runCalc(ctx, args[1:], stdout)
	case "console":
		return runConsole(ctx, args[1:], stdin, stdout)
	case "hash-key":
		return runHashKey(args[1:], stdout)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stdout, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runCalc(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	bill := fs.String("bill", "", "bill amount")
	split := fs.Int("split", 1, "number of people")
	tip := fs.Int("tip", 15, "tip percentage (0-100)")
	remote := fs.String("remote", "", "compute on a tipsplit server at this URL")
	apiKey := fs.String("api-key", os.Getenv("TIPSPLIT_API_KEY"), "API key for -remote")
	if err := fs.Parse(args); err != nil {
		return err
	}

	amount, err := form.ParseBill(*bill)
	if err != nil {
		return err
	}
	if *split < calculator.MinSplitCount {
		return fmt.Errorf("split must be at least %d", calculator.MinSplitCount)
	}
	pct := calculator.ClampTipPercentage(*tip)

	if *remote != "" {
		return calcRemote(ctx, *remote, *apiKey, amount, *split, pct, stdout)
	}

	tipAmount := calculator.CalculateTip(amount, pct)
	perPerson := calculator.CalculateTotalPerPerson(amount, *split, pct)
	printBreakdown(stdout, *split, pct, format.Amount(tipAmount), format.Currency(perPerson))
	return nil
}

func calcRemote(ctx context.Context, baseURL, apiKey string, amount float64, split, pct int, stdout io.Writer) error {
	client := apiconnect.NewTipServiceClient(http.DefaultClient, baseURL)

	req := connect.NewRequest(&api.CalculateRequest{
		BillAmount:    amount,
		SplitCount:    split,
		TipPercentage: pct,
	})
	if apiKey != "" {
		req.Header().Set(middleware.APIKeyHeader, apiKey)
	}

	resp, err := client.Calculate(ctx, req)
	if err != nil {
		slog.Debug("Remote calculate failed", "url", baseURL, "error", err)
		return fmt.Errorf("remote calculate: %w", err)
	}
	b := resp.Msg.Breakdown
	printBreakdown(stdout, b.SplitCount, b.TipPercentage, b.TipDisplay, b.TotalPerPersonDisplay)
	return nil
}

func printBreakdown(w io.Writer, split, pct int, tip, perPerson string) {
	fmt.Fprintf(w, "Total per person: %s\n", perPerson)
	fmt.Fprintf(w, "Split: %d\n", split)
	fmt.Fprintf(w, "Tip: %s (%s)\n", tip, format.Percentage(pct))
}

func runConsole(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	steps := fs.Int("steps", form.DefaultSliderSteps, "intermediate slider stops (0 for continuous)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	prompt := false
	if f, ok := stdin.(*os.File); ok {
		prompt = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	c := console.New(stdin, stdout, form.New(form.WithSliderSteps(*steps)), prompt)
	err := c.Run(ctx)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func runHashKey(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("hash-key", flag.ContinueOnError)
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tipsplit hash-key [-cost n] <api key>")
	}

	hash, err := auth.HashAPIKey(fs.Arg(0), *cost)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, hash)
	return nil
}
