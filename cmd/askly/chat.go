package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/germanamz/askly/pkg/config"
	"github.com/germanamz/askly/pkg/dispatch"
	"github.com/germanamz/askly/pkg/provider"
	"github.com/germanamz/askly/pkg/session"
)

func runChat(args []string) error {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: askly chat [flags]\n\nStart an interactive chat session.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	providerName := fs.String("provider", "", "provider to use (default: config default_provider)")
	configPath := fs.String("config", "", "config file path (default: per-user config dir)")
	model := fs.String("model", "", "model override")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	name, _, _ := cfg.Resolve(*providerName)

	p, err := dispatch.New(name, cfg)
	if err != nil {
		return err
	}

	sess := session.New()

	fmt.Println(bannerStyle.Render(
		"askly chat\n\nprovider: " + name + "\ntype \"exit\" or press Ctrl+C to quit"))

	for {
		var input string

		err := huh.NewInput().
			Title(userPrefixStyle.Render("You")).
			Value(&input).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				break
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit":
			fmt.Println(warnStyle.Render("Goodbye!"))
			printSessionUsage(p, sess)
			return nil
		}

		sess.AddUserMessage(input)

		// Only the latest turn is sent; the provider never sees the
		// accumulated transcript.
		res, err := p.Complete(context.Background(), input, provider.Options{Model: *model})
		if err != nil {
			fmt.Println(errorStyle.Render("error: " + err.Error()))
			continue
		}

		sess.AddAssistantMessage(res.Text)

		fmt.Println(assistantPrefixStyle.Render("Assistant:") + " " + renderMarkdown(res.Text))

		if res.Usage != nil {
			fmt.Println(dimStyle.Render(fmt.Sprintf("(%d tokens)", res.Usage.TotalTokens)))
		}
	}

	fmt.Println(warnStyle.Render("Goodbye!"))
	printSessionUsage(p, sess)

	return nil
}

// printSessionUsage reports the session's accumulated token usage when the
// provider tracks it.
func printSessionUsage(p provider.Completer, sess *session.Session) {
	ur, ok := p.(provider.UsageReporter)
	if !ok {
		return
	}

	tracker := ur.UsageTracker()
	if tracker.Count() == 0 {
		return
	}

	total := tracker.Total()
	fmt.Println(dimStyle.Render(fmt.Sprintf("session: %d messages, %d tokens over %d calls",
		sess.Len(), total.TotalTokens, tracker.Count())))
}
