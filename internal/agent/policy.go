package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/travel-assistant/travel-assistant-service/internal/infrastructure/retry"
)

// DefaultPolicyTopK is the number of knowledge-base chunks retrieved per
// policy question.
const DefaultPolicyTopK = 4

// policyPromptTemplate is the fixed prompt for policy answering. Anything
// smarter than this template is out of scope; the LLM is a black box.
const policyPromptTemplate = `You are a helpful travel assistant. Answer the question using only the context below. If the context does not contain the answer, say so honestly.

Context:
%s

Question: %s

Answer:`

// PolicyAnswerer answers travel-policy questions (visa rules, refund and
// cancellation policies, alliance benefits) by retrieving knowledge-base
// context and asking the completion service.
type PolicyAnswerer struct {
	llm      LLMClient
	store    VectorSearcher
	topK     int
	retryCfg retry.Config
}

// NewPolicyAnswerer creates a PolicyAnswerer over the given collaborators.
// topK <= 0 falls back to DefaultPolicyTopK.
func NewPolicyAnswerer(llm LLMClient, store VectorSearcher, topK int) *PolicyAnswerer {
	if topK <= 0 {
		topK = DefaultPolicyTopK
	}
	return &PolicyAnswerer{
		llm:      llm,
		store:    store,
		topK:     topK,
		retryCfg: retry.CollaboratorConfig,
	}
}

// Answer retrieves context for the question and completes the fixed prompt.
// Collaborator calls are retried with backoff; a final failure is returned to
// the agent, which degrades to a fallback reply.
func (p *PolicyAnswerer) Answer(ctx context.Context, question string) (string, error) {
	docs, err := retry.DoWithResult(ctx, func() ([]Document, error) {
		return p.store.Search(ctx, question, p.topK)
	}, p.retryCfg)
	if err != nil {
		return "", fmt.Errorf("policy context lookup: %w", err)
	}

	prompt := buildPolicyPrompt(question, docs)

	answer, err := retry.DoWithResult(ctx, func() (string, error) {
		return p.llm.Complete(ctx, prompt)
	}, p.retryCfg)
	if err != nil {
		return "", fmt.Errorf("policy completion: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

// buildPolicyPrompt fills the fixed template with retrieved context.
func buildPolicyPrompt(question string, docs []Document) string {
	var context string
	if len(docs) == 0 {
		context = "(no relevant context found)"
	} else {
		chunks := make([]string, 0, len(docs))
		for _, d := range docs {
			chunks = append(chunks, d.Content)
		}
		context = strings.Join(chunks, "\n\n")
	}
	return fmt.Sprintf(policyPromptTemplate, context, question)
}
