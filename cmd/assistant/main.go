// Package main is the interactive CLI for the travel assistant.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/travel-assistant/travel-assistant-service/internal/agent"
	"github.com/travel-assistant/travel-assistant-service/internal/catalog"
	"github.com/travel-assistant/travel-assistant-service/internal/config"
	"github.com/travel-assistant/travel-assistant-service/internal/infrastructure/timeutil"
	"github.com/travel-assistant/travel-assistant-service/internal/search"
)

// demoQueries showcases the assistant's capabilities in demo mode.
var demoQueries = []string{
	"Find me a round-trip to Tokyo in August with Star Alliance airlines only. I want to avoid overnight layovers.",
	"Do UAE passport holders need a visa for Japan?",
	"What is the refund policy for tickets?",
	"Show me direct flights to Paris",
}

var rootCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Conversational travel assistant",
	Long:  "A conversational assistant for flight search and travel policy questions.",
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildAgent()
		if err != nil {
			return err
		}
		runInteractive(a)
		return nil
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a set of sample queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildAgent()
		if err != nil {
			return err
		}
		runDemo(a)
		return nil
	},
}

func main() {
	// Console logging at warn level keeps the chat transcript readable.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(demoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildAgent loads the catalog and wires the assistant pipeline.
func buildAgent() (*agent.Agent, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.Data.FlightsFile)
	if err != nil {
		return nil, fmt.Errorf("load flight catalog: %w", err)
	}

	searcher := search.NewSearcher(cat, timeutil.NewRealClock(), cfg.Assistant.MaxResults)

	return agent.New(searcher,
		agent.WithMaxHistoryTurns(cfg.Assistant.MaxHistoryTurns),
	), nil
}

// runInteractive reads utterances from stdin until quit/exit.
func runInteractive(a *agent.Agent) {
	printWelcome()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit", "q":
			fmt.Println("\nThank you for using the travel assistant. Safe travels!")
			return
		case "reset":
			a.Reset()
			fmt.Println("Conversation history cleared.")
			continue
		case "help":
			printSampleQueries()
			continue
		}

		reply := a.Chat(context.Background(), input)
		fmt.Printf("\nAssistant: %s\n\n", reply)
	}
}

// runDemo plays the canned queries one by one.
func runDemo(a *agent.Agent) {
	fmt.Println("DEMO MODE - Running sample queries")

	for i, query := range demoQueries {
		fmt.Printf("\n=== Demo query %d/%d ===\n", i+1, len(demoQueries))
		fmt.Printf("User: %s\n\n", query)
		fmt.Printf("Assistant: %s\n", a.Chat(context.Background(), query))
	}

	fmt.Println("\nDemo completed.")
}

func printWelcome() {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Welcome to the Travel Assistant!")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
	fmt.Println("I can help you with:")
	fmt.Println("  - Finding flights based on your preferences")
	fmt.Println("  - Answering visa requirement questions")
	fmt.Println("  - Explaining refund and cancellation policies")
	fmt.Println()
	fmt.Println("Type 'quit' to end the conversation, 'reset' to clear history,")
	fmt.Println("or 'help' for sample queries.")
	fmt.Println(strings.Repeat("=", 60))
}

func printSampleQueries() {
	fmt.Println("\nSample queries to try:")
	for _, q := range demoQueries {
		fmt.Println("  -", q)
	}
	fmt.Println()
}
