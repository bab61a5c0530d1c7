package agents

import (
    "encoding/json"
    "reflect"
    "testing"
)

func TestParseVerdictApproved(t *testing.T) {
    raw := `{"approved": true, "feedback": []}`
    v := ParseVerdict(raw)
    if !v.Approved {
        t.Fatalf("expected approved verdict, got %+v", v)
    }
    if len(v.Feedback) != 0 {
        t.Fatalf("expected no feedback, got %v", v.Feedback)
    }
    if v.RawResponse != raw {
        t.Fatalf("raw response not preserved: %q", v.RawResponse)
    }
}

func TestParseVerdictMalformedJSON(t *testing.T) {
    for _, raw := range []string{"looks fine", "", "{truncated", "```json\n{}\n```"} {
        v := ParseVerdict(raw)
        if v.Approved {
            t.Fatalf("malformed input %q must not approve", raw)
        }
        if !reflect.DeepEqual(v.Feedback, []string{"Judge response was not valid JSON."}) {
            t.Fatalf("unexpected fallback feedback for %q: %v", raw, v.Feedback)
        }
        if v.RawResponse != raw {
            t.Fatalf("raw response must equal original text, got %q", v.RawResponse)
        }
    }
}

func TestParseVerdictApprovedFlagVariants(t *testing.T) {
    tests := []struct {
        name string
        raw  string
        want bool
    }{
        {"explicit true", `{"approved": true}`, true},
        {"explicit false", `{"approved": false}`, false},
        {"missing", `{"feedback": ["tighten the ending"]}`, false},
        {"string true", `{"approved": "true"}`, false},
        {"number", `{"approved": 1}`, false},
        {"null", `{"approved": null}`, false},
    }
    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            if got := ParseVerdict(tc.raw).Approved; got != tc.want {
                t.Fatalf("approved = %v, want %v", got, tc.want)
            }
        })
    }
}

func TestParseVerdictFeedbackNormalization(t *testing.T) {
    tests := []struct {
        name string
        raw  string
        want []string
    }{
        {
            "array keeps order and trims",
            `{"approved": false, "feedback": ["  too scary ", "shorten it"]}`,
            []string{"too scary", "shorten it"},
        },
        {
            "array drops non-strings and empties",
            `{"approved": false, "feedback": ["keep", 7, "", "   ", null, "also keep"]}`,
            []string{"keep", "also keep"},
        },
        {
            "single string wraps",
            `{"approved": false, "feedback": " soften the wolf "}`,
            []string{"soften the wolf"},
        },
        {
            "empty string drops",
            `{"approved": false, "feedback": "   "}`,
            []string{},
        },
        {
            "missing field",
            `{"approved": false}`,
            []string{},
        },
        {
            "wrong type",
            `{"approved": false, "feedback": {"note": "nested"}}`,
            []string{},
        },
    }
    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            got := ParseVerdict(tc.raw).Feedback
            if !reflect.DeepEqual(got, tc.want) {
                t.Fatalf("feedback = %#v, want %#v", got, tc.want)
            }
        })
    }
}

// Re-normalizing an already-normalized feedback list must change nothing.
func TestFeedbackNormalizationIdempotent(t *testing.T) {
    first := ParseVerdict(`{"approved": false, "feedback": [" too scary ", "add a lullaby", ""]}`).Feedback
    encoded, err := json.Marshal(map[string]any{"approved": false, "feedback": first})
    if err != nil {
        t.Fatalf("marshal: %v", err)
    }
    second := ParseVerdict(string(encoded)).Feedback
    if !reflect.DeepEqual(first, second) {
        t.Fatalf("normalization not idempotent: %v vs %v", first, second)
    }
}

func TestParseVerdictRawResponseField(t *testing.T) {
    // A judge object that carries its own raw_response keeps it.
    v := ParseVerdict(`{"approved": false, "raw_response": "original"}`)
    if v.RawResponse != "original" {
        t.Fatalf("expected embedded raw_response, got %q", v.RawResponse)
    }
    // Normally the field is absent and the whole reply is retained.
    raw := `{"approved": false, "feedback": []}`
    if got := ParseVerdict(raw).RawResponse; got != raw {
        t.Fatalf("expected full reply as raw response, got %q", got)
    }
}
