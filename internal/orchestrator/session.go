package orchestrator

import (
    "context"
    "errors"
    "strings"

    log "github.com/sirupsen/logrus"

    "github.com/example/bedtime-storyteller/internal/agents"
    "github.com/example/bedtime-storyteller/internal/models"
)

// DefaultMaxRounds bounds a session when the caller does not say otherwise.
const DefaultMaxRounds = 3

// ErrEmptyRequest is returned before any completion call when the story
// request is empty or whitespace.
var ErrEmptyRequest = errors.New("story request is empty")

// Session runs the generate-judge-revise loop for one story request.
// It owns all per-session state; rounds execute strictly in order.
type Session struct {
    Storyteller agents.Storyteller
    Judge       agents.Judge
    MaxRounds   int
}

// New wires a session. maxRounds <= 0 falls back to DefaultMaxRounds.
func New(storyteller agents.Storyteller, judge agents.Judge, maxRounds int) *Session {
    if maxRounds <= 0 {
        maxRounds = DefaultMaxRounds
    }
    return &Session{Storyteller: storyteller, Judge: judge, MaxRounds: maxRounds}
}

// Run generates a story, has it judged, and revises until the judge approves
// or MaxRounds is exhausted. Completion failures abort immediately with no
// partial result; only judge-output parsing is recovered (inside the judge).
func (s *Session) Run(ctx context.Context, request string) (*models.SessionResult, error) {
    if strings.TrimSpace(request) == "" {
        return nil, ErrEmptyRequest
    }

    var (
        revisionNotes string
        lastStory     string
        lastVerdict   *models.Verdict
        lastRaw       string
    )

    for round := 1; round <= s.MaxRounds; round++ {
        log.WithField("round", round).Debug("generating story draft")
        story, err := s.Storyteller.Tell(ctx, request, revisionNotes)
        if err != nil {
            return nil, err
        }

        verdict, raw, err := s.Judge.Judge(ctx, request, story)
        if err != nil {
            return nil, err
        }
        log.WithFields(log.Fields{
            "round":    round,
            "approved": verdict.Approved,
            "feedback": len(verdict.Feedback),
        }).Debug("judge verdict")

        lastStory, lastVerdict, lastRaw = story, verdict, raw

        if verdict.Approved {
            return &models.SessionResult{
                Story:       story,
                Approved:    true,
                Verdict:     verdict,
                RawJudge:    raw,
                RoundsTaken: round,
            }, nil
        }
        revisionNotes = ComposeRevisionNotes(verdict, raw)
    }

    return &models.SessionResult{
        Story:       lastStory,
        Approved:    false,
        Verdict:     lastVerdict,
        RawJudge:    lastRaw,
        RoundsTaken: s.MaxRounds,
    }, nil
}
