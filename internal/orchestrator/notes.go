package orchestrator

import (
    "strings"

    "github.com/example/bedtime-storyteller/internal/models"
)

// ComposeRevisionNotes blends the judge's normalized feedback and raw report
// into the revision input for the next draft. Pure: same inputs, same string.
// The action-items block is omitted entirely when there is no feedback; the
// full report block is always present.
func ComposeRevisionNotes(verdict *models.Verdict, rawJudge string) string {
    var parts []string

    if verdict != nil && len(verdict.Feedback) > 0 {
        var b strings.Builder
        b.WriteString("Action items from the judge:")
        for _, note := range verdict.Feedback {
            b.WriteString("\n- ")
            b.WriteString(note)
        }
        parts = append(parts, b.String())
    }

    parts = append(parts, "Full judge report JSON:\n"+strings.TrimSpace(rawJudge))

    return strings.TrimSpace(strings.Join(parts, "\n\n"))
}
