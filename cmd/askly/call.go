package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/germanamz/askly/pkg/config"
	"github.com/germanamz/askly/pkg/dispatch"
	"github.com/germanamz/askly/pkg/provider"
)

func runCall(args []string) error {
	fs := flag.NewFlagSet("call", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: askly call [flags] <prompt>\n\nMake a one-off completion call.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	providerName := fs.String("provider", "", "provider to use (default: config default_provider)")
	configPath := fs.String("config", "", "config file path (default: per-user config dir)")
	model := fs.String("model", "", "model override")
	maxTokens := fs.Int("max-tokens", 0, "max tokens override")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return errors.New("call: a prompt is required")
	}
	prompt := strings.Join(fs.Args(), " ")

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	name, _, _ := cfg.Resolve(*providerName)

	p, err := dispatch.New(name, cfg)
	if err != nil {
		return err
	}

	fmt.Println(dimStyle.Render("provider: " + name))

	res, err := p.Complete(context.Background(), prompt, provider.Options{
		Model:     *model,
		MaxTokens: *maxTokens,
	})
	if err != nil {
		return err
	}

	fmt.Println(renderMarkdown(res.Text))

	if res.Usage != nil {
		fmt.Println(dimStyle.Render(fmtUsage(res.Usage)))
	}

	return nil
}
