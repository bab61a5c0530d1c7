package llm

import "fmt"

// ConfigError reports a missing or unusable credential. It is produced by
// NewFromEnv before any network call is attempted, so the CLI can print a
// remediation message instead of failing deep inside a provider call.
type ConfigError struct {
    Message string
}

func (e *ConfigError) Error() string { return e.Message }

// ProviderError wraps a completion call that failed on the provider side
// (network, rate limit, malformed response). It is never retried or
// recovered; callers let it propagate and abort the session.
type ProviderError struct {
    Provider string
    Err      error
}

func (e *ProviderError) Error() string {
    return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
