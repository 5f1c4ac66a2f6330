package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/germanamz/askly/pkg/config"
)

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: askly init [flags]\n\nWrite the default configuration file.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "config file path (default: per-user config dir)")
	force := fs.Bool("force", false, "overwrite an existing config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Println(warnStyle.Render("config already exists at: " + path))
		fmt.Println("Use -force to overwrite")
		return nil
	}

	if err := config.Save(config.Default(), path); err != nil {
		return err
	}

	fmt.Println(successStyle.Render("config created at: " + path))
	fmt.Println("\nDon't forget to set your API keys:")
	fmt.Println("  export OPENAI_API_KEY='sk-...'")
	fmt.Println("  export ANTHROPIC_API_KEY='sk-ant-...'")

	return nil
}
