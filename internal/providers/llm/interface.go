package llm

import (
    "context"
)

// Client is the single text-completion capability used by the storyteller
// and judge roles. Any provider implementation should satisfy this.
type Client interface {
    Complete(ctx context.Context, prompt string, opts Options) (string, error)
}

// Options bound one completion call. Temperature 0 means near-deterministic
// output; the judge relies on that to keep approvals reproducible.
type Options struct {
    MaxTokens   int
    Temperature float64
}
