package agent

import (
	"context"
	"strings"
	"sync"

	"github.com/travel-assistant/travel-assistant-service/internal/infrastructure/logger"
)

// DefaultMaxHistoryTurns bounds the dialogue history kept per agent.
const DefaultMaxHistoryTurns = 20

// fallbackReply is returned when the policy pipeline fails or is not
// configured. The agent degrades, it never panics on collaborator failure.
const fallbackReply = "I'm sorry, I can't look that up right now. Please try again later, or ask me about flights instead."

// flightIntentKeywords route an utterance to the flight pipeline when any of
// them appears. Everything else goes to the policy pipeline.
var flightIntentKeywords = []string{
	"flight",
	"fly ",
	"round-trip",
	"round trip",
	"layover",
	"nonstop",
	"non-stop",
	"direct",
	"airline",
	"ticket to",
	"trip to",
}

// Turn is one entry in the dialogue history.
type Turn struct {
	Role    string // "user" or "assistant"
	Content string
}

// Agent is the orchestration shell. It dispatches each utterance to one of
// the two tools and records the exchange. The flight pipeline never sees the
// dialogue history: searches are pure functions of the single utterance.
type Agent struct {
	flights  FlightSearcher
	policy   *PolicyAnswerer
	log      *logger.Logger
	maxTurns int

	mu      sync.Mutex
	history []Turn
}

// Option configures an Agent.
type Option func(*Agent)

// WithPolicyAnswerer enables the policy question-answering tool.
// Without it, policy questions receive the fallback reply.
func WithPolicyAnswerer(p *PolicyAnswerer) Option {
	return func(a *Agent) { a.policy = p }
}

// WithMaxHistoryTurns bounds the dialogue history length.
func WithMaxHistoryTurns(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxTurns = n
		}
	}
}

// WithLogger sets the agent's logger.
func WithLogger(l *logger.Logger) Option {
	return func(a *Agent) { a.log = l }
}

// New creates an Agent dispatching to the given flight searcher.
func New(flights FlightSearcher, opts ...Option) *Agent {
	a := &Agent{
		flights:  flights,
		log:      logger.Nop(),
		maxTurns: DefaultMaxHistoryTurns,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Chat processes one user utterance and returns the assistant's reply.
func (a *Agent) Chat(ctx context.Context, input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return "Please tell me what you're looking for."
	}

	var reply string
	if isFlightQuery(input) {
		a.log.WithTool("flight_search").Debug().Msg("Dispatching utterance")
		reply = a.flights.InterpretAndSearch(input)
	} else {
		a.log.WithTool("policy_search").Debug().Msg("Dispatching utterance")
		reply = a.answerPolicy(ctx, input)
	}

	a.remember(input, reply)
	return reply
}

// History returns a copy of the dialogue history, oldest first.
func (a *Agent) History() []Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Turn, len(a.history))
	copy(out, a.history)
	return out
}

// Reset clears the dialogue history.
func (a *Agent) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = nil
}

func (a *Agent) answerPolicy(ctx context.Context, question string) string {
	if a.policy == nil {
		return fallbackReply
	}

	answer, err := a.policy.Answer(ctx, question)
	if err != nil {
		a.log.Warn().Err(err).Msg("Policy pipeline failed, degrading to fallback reply")
		return fallbackReply
	}
	return answer
}

func (a *Agent) remember(input, reply string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.history = append(a.history,
		Turn{Role: "user", Content: input},
		Turn{Role: "assistant", Content: reply},
	)

	// Drop oldest turns beyond the bound, two at a time to keep pairs intact.
	if max := a.maxTurns * 2; len(a.history) > max {
		a.history = a.history[len(a.history)-max:]
	}
}

// isFlightQuery decides which tool handles the utterance.
func isFlightQuery(input string) bool {
	lowered := strings.ToLower(input)
	for _, kw := range flightIntentKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
