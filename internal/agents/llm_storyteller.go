package agents

import (
    "context"
    "fmt"
    "strings"

    "github.com/example/bedtime-storyteller/internal/providers/llm"
)

const storyMaxTokens = 450

// LLMStoryteller generates story drafts through a completion client.
type LLMStoryteller struct{ Client llm.Client }

func (s *LLMStoryteller) Tell(ctx context.Context, request string, revisionNotes string) (string, error) {
    prompt := buildStoryPrompt(request, revisionNotes)
    raw, err := s.Client.Complete(ctx, prompt, llm.Options{
        MaxTokens:   storyMaxTokens,
        Temperature: floatFromEnv("STORY_TEMPERATURE", 0.6),
    })
    if err != nil {
        return "", err
    }
    return strings.TrimSpace(raw), nil
}

const storyGuidelines = `You are Starry the Bedtime Storyteller. Craft a calm, uplifting story
suitable for children ages 5 to 10 using gentle vocabulary and a clear
beginning, middle, and end. Follow the user's request closely while
keeping the tale wholesome, kind, and no longer than 12 sentences.

Include:
- A relatable main character kids can root for.
- A small challenge that teaches a positive lesson.
- Cozy sensory details that make the bedtime setting feel safe.

Avoid:
- Scary elements, violence, or anything that could cause nightmares.
- Complex language, sarcasm, or jokes that kids might not understand.`

func buildStoryPrompt(request string, revisionNotes string) string {
    sections := []string{
        storyGuidelines,
        "User request:\n" + strings.TrimSpace(request),
    }
    if revisionNotes != "" {
        sections = append(sections, fmt.Sprintf(`Our bedtime story judge shared this report on the previous draft.
Revise the story so it still feels cozy while addressing every issue raised.

Judge report:
%s`, strings.TrimSpace(revisionNotes)))
    }
    sections = append(sections, "Reply with only the bedtime story text.")
    return strings.Join(sections, "\n\n")
}
