package models

// Verdict is the structured outcome of judging one story draft.
// Verdicts are rebuilt from scratch every round, never merged.
type Verdict struct {
    Approved    bool     `json:"approved"`
    Feedback    []string `json:"feedback"`
    RawResponse string   `json:"raw_response"`
}

// SessionResult is what a storytelling session hands back to the caller:
// the last draft, the final verdict, and how many rounds it took (1-based).
type SessionResult struct {
    Story       string   `json:"story"`
    Approved    bool     `json:"approved"`
    Verdict     *Verdict `json:"verdict,omitempty"`
    RawJudge    string   `json:"raw_judge,omitempty"`
    RoundsTaken int      `json:"rounds_taken"`
}
