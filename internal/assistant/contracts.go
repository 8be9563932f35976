package assistant

import "context"

// Assistant answers the chat messages the interpreter declined as
// NotACommand. Implementations call the remote AI backend; tests stub it.
type Assistant interface {
	Reply(ctx context.Context, message string) (string, error)
}
