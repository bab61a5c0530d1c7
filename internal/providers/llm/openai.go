package llm

import (
    "context"
    "errors"

    openai "github.com/openai/openai-go"
    "github.com/openai/openai-go/option"
)

// OpenAIClient implements Client using the official openai-go SDK
// (chat completions, non-streaming).
type OpenAIClient struct {
    APIKey  string
    Model   string
    BaseURL string
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
    reqOpts := []option.RequestOption{option.WithAPIKey(c.APIKey)}
    if c.BaseURL != "" {
        reqOpts = append(reqOpts, option.WithBaseURL(c.BaseURL))
    }
    client := openai.NewClient(reqOpts...)

    params := openai.ChatCompletionNewParams{
        Model:    openai.ChatModel(c.Model),
        Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
    }
    if opts.MaxTokens > 0 {
        params.MaxTokens = openai.Int(int64(opts.MaxTokens))
    }
    params.Temperature = openai.Float(opts.Temperature)

    resp, err := client.Chat.Completions.New(ctx, params)
    if err != nil {
        return "", &ProviderError{Provider: "openai", Err: err}
    }
    if len(resp.Choices) == 0 {
        return "", &ProviderError{Provider: "openai", Err: errors.New("empty choices")}
    }
    return resp.Choices[0].Message.Content, nil
}
