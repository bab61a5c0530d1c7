package agents

import (
    "context"

    "github.com/example/bedtime-storyteller/internal/models"
)

// Judge reviews one story draft against the user's request. It returns the
// structured verdict plus the judge's raw text, which is kept verbatim for
// revision notes and final reporting.
type Judge interface {
    Judge(ctx context.Context, request string, story string) (*models.Verdict, string, error)
}
