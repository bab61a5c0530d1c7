package llm

import (
    "context"
    "strings"
)

// MockClient is used for offline runs and tests. With no script it answers
// judge-looking prompts with an approving verdict and everything else with
// a canned story; with a script it replays Responses in order, repeating
// the last one once exhausted.
type MockClient struct {
    Responses []string
    Err       error

    // Prompts records every prompt seen, in call order.
    Prompts []string

    calls int
}

func (m *MockClient) Complete(_ context.Context, prompt string, _ Options) (string, error) {
    if m.Err != nil {
        return "", m.Err
    }
    m.Prompts = append(m.Prompts, prompt)
    if len(m.Responses) == 0 {
        if strings.Contains(prompt, `"approved"`) {
            return `{"approved": true, "feedback": []}`, nil
        }
        return "Once upon a time, a small lantern-fish hummed the reef to sleep. The end.", nil
    }
    i := m.calls
    if i >= len(m.Responses) {
        i = len(m.Responses) - 1
    }
    m.calls++
    return m.Responses[i], nil
}
