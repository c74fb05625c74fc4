package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/calcagent/calcagent/core/agent"
)

func main() {
	query := flag.String("query", "", "Optional one-shot query. If omitted, interactive mode is used.")
	model := flag.String("model", "gpt-4o-mini", "Model name used for tool-calling execution.")
	fallback := flag.Bool("fallback", false, "Enable deterministic fallback only when LLM execution fails.")
	timeout := flag.Duration("timeout", 0, "Optional per-request timeout for model calls (0 disables).")
	verbose := flag.Bool("verbose", false, "Emit structured request/response logs to stderr.")
	flag.Parse()

	configureLogging(*verbose)

	options := []agent.Option{
		agent.WithModel(*model),
		agent.WithTimeout(*timeout),
	}
	// Only an explicit flag overrides the DETERMINISTIC_FALLBACK env default.
	if *fallback {
		options = append(options, agent.WithDeterministicFallback(true))
	}

	calculator, err := agent.New(options...)
	if err != nil {
		fmt.Println(agent.SetupMessage)
		os.Exit(1)
	}

	ctx := context.Background()

	if *query != "" {
		fmt.Println(calculator.Ask(ctx, *query))
		return
	}

	runInteractive(ctx, calculator)
}

// runInteractive reads queries line by line until EOF or an exit command.
func runInteractive(ctx context.Context, calculator *agent.Agent) {
	fmt.Println("Hello! I am the Calculator Agent. Ask me arithmetic questions.")
	fmt.Println("Type 'exit' or 'quit' to stop.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "exit", "quit":
			fmt.Println("Goodbye.")
			return
		}

		fmt.Println(calculator.Ask(ctx, input))
	}
}

// configureLogging keeps the interactive output clean by default; -verbose
// raises the level so the logging middleware's entries become visible.
func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
