package recommend

import (
	"context"

	"solar-sizing/internal/sizing"
)

// Message is one turn of the conversation forwarded to the model.
// History travels as an explicit parameter on every call; there is no
// ambient session state on this side of the boundary.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Client produces a natural-language recommendation for a sizing
// snapshot. Implementations are stateless per call. The returned text
// is opaque: callers display it and never parse or act on it.
type Client interface {
	Recommend(ctx context.Context, snap sizing.Snapshot, query string, history []Message) (string, error)
}
