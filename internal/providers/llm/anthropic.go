package llm

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "net/http"
    "os"
)

// AnthropicClient implements Client against the Messages API. There is no
// official dependency here; the payload shape is small enough to inline.
type AnthropicClient struct {
    APIKey string
    Model  string
}

func (c *AnthropicClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
    maxTokens := opts.MaxTokens
    if maxTokens <= 0 {
        maxTokens = 1024
    }
    body := map[string]any{
        "model":       c.Model,
        "max_tokens":  maxTokens,
        "temperature": opts.Temperature,
        "messages": []map[string]any{{
            "role":    "user",
            "content": []map[string]string{{"type": "text", "text": prompt}},
        }},
    }
    var resp struct {
        Content []struct {
            Text string `json:"text"`
        } `json:"content"`
    }
    if err := c.postJSON(ctx, body, &resp); err != nil {
        return "", &ProviderError{Provider: "anthropic", Err: err}
    }
    if len(resp.Content) == 0 {
        return "", &ProviderError{Provider: "anthropic", Err: errors.New("no content")}
    }
    return resp.Content[0].Text, nil
}

func (c *AnthropicClient) postJSON(ctx context.Context, body any, out any) error {
    b, _ := json.Marshal(body)
    url := os.Getenv("ANTHROPIC_API_URL")
    if url == "" {
        url = "https://api.anthropic.com/v1/messages"
    }
    req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
    req.Header.Set("x-api-key", c.APIKey)
    req.Header.Set("anthropic-version", "2023-06-01")
    req.Header.Set("content-type", "application/json")
    res, err := http.DefaultClient.Do(req)
    if err != nil {
        return err
    }
    defer res.Body.Close()
    if res.StatusCode < 200 || res.StatusCode >= 300 {
        var eresp map[string]any
        _ = json.NewDecoder(res.Body).Decode(&eresp)
        return fmt.Errorf("anthropic status %d: %v", res.StatusCode, eresp)
    }
    return json.NewDecoder(res.Body).Decode(out)
}
