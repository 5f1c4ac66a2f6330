package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/germanamz/askly/pkg/config"
	"github.com/germanamz/askly/pkg/dispatch"
	"github.com/germanamz/askly/pkg/provider"
)

const probePrompt = "Say 'Hello from askly!' and nothing else."

func runTest(args []string) error {
	fs := flag.NewFlagSet("test", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: askly test [flags]\n\nProbe every configured provider with a fixed prompt.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "config file path (default: per-user config dir)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	fmt.Println("Testing all providers...")
	fmt.Println()

	// One provider at a time; a failure is reported and the sweep moves on.
	for _, name := range cfg.ProviderNames() {
		fmt.Println(dimStyle.Render("testing " + name + "..."))

		p, err := dispatch.New(name, cfg)
		if err != nil {
			fmt.Println("  " + errorStyle.Render("✗") + " failed: " + err.Error())
			fmt.Println()
			continue
		}

		res, err := p.Complete(context.Background(), probePrompt, provider.Options{MaxTokens: 50})
		if err != nil {
			fmt.Println("  " + errorStyle.Render("✗") + " failed: " + err.Error())
			fmt.Println()
			continue
		}

		fmt.Println("  " + successStyle.Render("✓") + " response: " + truncate(res.Text, 100))
		if res.Usage != nil {
			fmt.Println("  " + dimStyle.Render(fmt.Sprintf("tokens: %d", res.Usage.TotalTokens)))
		}
		fmt.Println()
	}

	return nil
}
