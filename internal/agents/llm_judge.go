package agents

import (
    "context"
    "fmt"
    "strings"

    "github.com/example/bedtime-storyteller/internal/models"
    "github.com/example/bedtime-storyteller/internal/providers/llm"
)

const judgeMaxTokens = 600

// LLMJudge asks a completion client to review a draft and parses the reply
// into a Verdict. Temperature defaults to 0 so approvals stay reproducible.
type LLMJudge struct{ Client llm.Client }

func (j *LLMJudge) Judge(ctx context.Context, request string, story string) (*models.Verdict, string, error) {
    prompt := buildJudgePrompt(request, story)
    raw, err := j.Client.Complete(ctx, prompt, llm.Options{
        MaxTokens:   judgeMaxTokens,
        Temperature: floatFromEnv("JUDGE_TEMPERATURE", 0),
    })
    if err != nil {
        return nil, "", err
    }
    return ParseVerdict(raw), raw, nil
}

func buildJudgePrompt(request string, story string) string {
    return fmt.Sprintf(`You are Zhen, a careful quality reviewer ensuring bedtime stories are
safe, clear, and engaging for children ages 5 to 10.

Evaluate the story below against these criteria:
1. Safety & Appropriateness: No frightening imagery, violence, or mature themes.
2. Clarity & Structure: Simple language, clear beginning-middle-end.
3. Engagement & Warmth: Positive tone, comforting bedtime atmosphere.
4. Alignment: Addresses the user's request faithfully.

Respond with a strict JSON object (no extra text) containing:
- "approved": boolean
- "feedback": array of short, imperative sentences explaining what to change.
  Return an empty array if the story is already excellent.

User request:
%s

Draft story:
%s`, strings.TrimSpace(request), strings.TrimSpace(story))
}
