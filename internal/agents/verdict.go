package agents

import (
    "encoding/json"
    "strings"

    "github.com/example/bedtime-storyteller/internal/models"
)

// malformedJudgeNote is the single feedback entry used when the judge reply
// is not valid JSON. The raw reply is always preserved alongside it.
const malformedJudgeNote = "Judge response was not valid JSON."

// rawVerdict defers field decoding so each one can be validated on its own:
// a reply that is valid JSON but has a missing or non-boolean "approved" is
// still a verdict, just not an approving one.
type rawVerdict struct {
    Approved    json.RawMessage `json:"approved"`
    Feedback    json.RawMessage `json:"feedback"`
    RawResponse string          `json:"raw_response"`
}

// ParseVerdict turns the judge's raw reply into a well-formed Verdict.
// It never fails: malformed input becomes a not-approved Verdict with an
// explanatory note, so a bad judge round can never crash a session.
func ParseVerdict(raw string) *models.Verdict {
    var rv rawVerdict
    if err := json.Unmarshal([]byte(raw), &rv); err != nil {
        return &models.Verdict{
            Approved:    false,
            Feedback:    []string{malformedJudgeNote},
            RawResponse: raw,
        }
    }

    v := &models.Verdict{
        Approved: approvedFlag(rv.Approved),
        Feedback: normalizeFeedback(rv.Feedback),
    }
    if rv.RawResponse != "" {
        v.RawResponse = rv.RawResponse
    } else {
        v.RawResponse = raw
    }
    return v
}

// approvedFlag counts only an explicit JSON boolean true; a missing field,
// null, or any other type reads as not approved.
func approvedFlag(raw json.RawMessage) bool {
    if len(raw) == 0 {
        return false
    }
    var b bool
    if err := json.Unmarshal(raw, &b); err != nil {
        return false
    }
    return b
}

// normalizeFeedback accepts either an array (string elements kept, trimmed,
// empties dropped, order preserved) or a single non-empty string (wrapped).
// Anything else normalizes to an empty slice.
func normalizeFeedback(raw json.RawMessage) []string {
    if len(raw) == 0 {
        return []string{}
    }
    var items []any
    if err := json.Unmarshal(raw, &items); err == nil {
        out := make([]string, 0, len(items))
        for _, item := range items {
            s, ok := item.(string)
            if !ok {
                continue
            }
            if t := strings.TrimSpace(s); t != "" {
                out = append(out, t)
            }
        }
        return out
    }
    var single string
    if err := json.Unmarshal(raw, &single); err == nil {
        if t := strings.TrimSpace(single); t != "" {
            return []string{t}
        }
    }
    return []string{}
}
