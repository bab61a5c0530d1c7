package llm

import (
    "context"
    "errors"

    genai "github.com/google/generative-ai-go/genai"
    "google.golang.org/api/option"
)

// GeminiClient implements Client on the official generative-ai-go SDK.
type GeminiClient struct {
    APIKey string
    Model  string
}

func (c *GeminiClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
    client, err := genai.NewClient(ctx, option.WithAPIKey(c.APIKey))
    if err != nil {
        return "", &ProviderError{Provider: "gemini", Err: err}
    }
    defer client.Close()

    model := client.GenerativeModel(c.Model)
    if opts.MaxTokens > 0 {
        model.SetMaxOutputTokens(int32(opts.MaxTokens))
    }
    model.SetTemperature(float32(opts.Temperature))

    resp, err := model.GenerateContent(ctx, genai.Text(prompt))
    if err != nil {
        return "", &ProviderError{Provider: "gemini", Err: err}
    }
    txt := firstText(resp)
    if txt == "" {
        return "", &ProviderError{Provider: "gemini", Err: errors.New("no text candidates")}
    }
    return txt, nil
}

func firstText(r *genai.GenerateContentResponse) string {
    if r == nil {
        return ""
    }
    for _, c := range r.Candidates {
        if c.Content == nil {
            continue
        }
        for _, part := range c.Content.Parts {
            if t, ok := part.(genai.Text); ok {
                return string(t)
            }
        }
    }
    return ""
}
