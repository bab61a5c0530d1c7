package llm

import (
    "fmt"
    "os"
    "strings"
)

// NewFromEnv returns a Client based on environment variables.
// Supported providers:
// - LLM_PROVIDER=openai|gemini|anthropic|mock
// - For OpenAI:    OPENAI_API_KEY, optional OPENAI_API_BASE, optional LLM_MODEL
// - For Gemini:    GOOGLE_API_KEY, optional LLM_MODEL
// - For Anthropic: ANTHROPIC_API_KEY, optional LLM_MODEL
// If LLM_PROVIDER is unset, the provider is auto-detected by key presence.
// A missing credential is a *ConfigError; there is no silent mock fallback.
func NewFromEnv() (Client, error) {
    prov := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
    switch prov {
    case "openai":
        return openAIFromEnv()
    case "gemini":
        return geminiFromEnv()
    case "anthropic":
        return anthropicFromEnv()
    case "mock":
        return &MockClient{}, nil
    case "":
        // Auto-detect by API key presence.
        if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
            return openAIFromEnv()
        }
        if key := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")); key != "" {
            return geminiFromEnv()
        }
        if key := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")); key != "" {
            return anthropicFromEnv()
        }
        return nil, &ConfigError{Message: "Missing OPENAI_API_KEY. Please set it in your environment or .env file."}
    default:
        return nil, &ConfigError{Message: fmt.Sprintf("unknown LLM_PROVIDER %q (want openai, gemini, anthropic or mock)", prov)}
    }
}

func openAIFromEnv() (Client, error) {
    key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
    if key == "" {
        return nil, &ConfigError{Message: "Missing OPENAI_API_KEY. Please set it in your environment or .env file."}
    }
    return &OpenAIClient{
        APIKey:  key,
        Model:   getModelWithDefault("LLM_MODEL", "gpt-4o-mini"),
        BaseURL: strings.TrimRight(os.Getenv("OPENAI_API_BASE"), "/"),
    }, nil
}

func geminiFromEnv() (Client, error) {
    key := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
    if key == "" {
        return nil, &ConfigError{Message: "Missing GOOGLE_API_KEY. Please set it in your environment or .env file."}
    }
    return &GeminiClient{APIKey: key, Model: getModelWithDefault("LLM_MODEL", "gemini-1.5-flash")}, nil
}

func anthropicFromEnv() (Client, error) {
    key := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
    if key == "" {
        return nil, &ConfigError{Message: "Missing ANTHROPIC_API_KEY. Please set it in your environment or .env file."}
    }
    return &AnthropicClient{APIKey: key, Model: getModelWithDefault("LLM_MODEL", "claude-3-5-sonnet-latest")}, nil
}

func getModelWithDefault(envKey, def string) string {
    if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
        return v
    }
    return def
}
