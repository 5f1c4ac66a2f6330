package main

import (
	"fmt"
	"os"
)

func main() {
	// Secrets live in the environment; a local .env is a convenience, not
	// a requirement.
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "init":
		err = runInit(os.Args[2:])
	case "call":
		err = runCall(os.Args[2:])
	case "chat":
		err = runChat(os.Args[2:])
	case "test":
		err = runTest(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: askly <command> [flags]

A minimal LLM agent CLI for OpenAI, Anthropic, and self-hosted completion servers.

Commands:
  init    Write the default configuration file
  call    Make a one-off completion call
  chat    Start an interactive chat session
  test    Probe every configured provider with a fixed prompt

Run "askly <command> -h" for command flags.
`)
}
