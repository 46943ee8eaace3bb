package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fkhayef/discountsplit/internal/allocation"
	"github.com/fkhayef/discountsplit/internal/bill"
	"github.com/fkhayef/discountsplit/internal/config"
	"github.com/fkhayef/discountsplit/internal/logging"
	"github.com/fkhayef/discountsplit/internal/share"
)

type calcOptions struct {
	participants []*bill.Participant
	title        string
	before       float64
	after        *float64
	step         float64
	channel      string
	asJSON       bool
	verbose      bool
}

func runCalc(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts, err := parseCalcFlags(args, stderr, cfg.Split.DefaultStep)
	if err != nil {
		return err
	}

	logCfg := cfg.Log
	if !opts.verbose {
		logCfg.Level = "warn"
	}
	logger := logging.NewWithWriter(stderr, logCfg)
	svc := bill.NewService(allocation.New(logger), cfg.Split.DefaultStep, logger)

	req := &bill.CalculateRequest{
		Title:        opts.title,
		Participants: opts.participants,
		TotalAfter:   opts.after,
		Step:         &opts.step,
	}
	if opts.before > 0 {
		req.TotalBefore = &opts.before
	}

	calc, err := svc.Calculate(context.Background(), req)
	if err != nil {
		return err
	}

	summary := svc.Summary(calc)
	var link string
	if opts.channel != "" {
		if link, err = share.Link(share.Channel(opts.channel), summary); err != nil {
			return err
		}
	}

	if opts.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if link == "" {
			return enc.Encode(calc.ToResponse())
		}
		return enc.Encode(struct {
			*bill.CalculationResponse
			Link string `json:"link"`
		}{calc.ToResponse(), link})
	}

	fmt.Fprintln(stdout, summary)
	if link != "" {
		fmt.Fprintln(stdout, "")
		fmt.Fprintln(stdout, link)
	}
	return nil
}

func parseCalcFlags(args []string, stderr io.Writer, defaultStep float64) (*calcOptions, error) {
	opts := &calcOptions{}

	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Func("p", "participant as Name=Price or Price (repeatable, order is kept)", func(v string) error {
		p, err := parseParticipant(v)
		if err != nil {
			return err
		}
		opts.participants = append(opts.participants, p)
		return nil
	})
	fs.StringVar(&opts.title, "title", "", "summary title")
	fs.Float64Var(&opts.before, "before", 0, "total before discount (used only when prices sum to 0)")
	fs.Func("after", "total after discount (required)", func(v string) error {
		after, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid total %q", v)
		}
		opts.after = &after
		return nil
	})
	fs.Float64Var(&opts.step, "step", defaultStep, "rounding step")
	fs.StringVar(&opts.channel, "share", "", "print a share link for whatsapp or telegram")
	fs.BoolVar(&opts.asJSON, "json", false, "print the calculation as JSON")
	fs.BoolVar(&opts.verbose, "v", false, "log at the configured level instead of warnings only")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &usageError{msg: fmt.Sprintf("unexpected arguments: %s", strings.Join(fs.Args(), " "))}
	}
	if len(opts.participants) == 0 {
		return nil, &usageError{msg: "at least one -p participant is required"}
	}
	if opts.after == nil {
		return nil, &usageError{msg: "-after is required"}
	}
	return opts, nil
}

func parseParticipant(v string) (*bill.Participant, error) {
	name, priceStr := "", v
	if i := strings.LastIndex(v, "="); i >= 0 {
		name, priceStr = strings.TrimSpace(v[:i]), v[i+1:]
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(priceStr), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", priceStr)
	}
	return &bill.Participant{Name: name, Price: price}, nil
}
