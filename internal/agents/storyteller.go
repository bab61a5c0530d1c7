package agents

import (
    "context"
)

// Storyteller produces a bedtime story draft for a request. revisionNotes is
// empty on the first round and carries the composed judge notes afterwards.
type Storyteller interface {
    Tell(ctx context.Context, request string, revisionNotes string) (string, error)
}
