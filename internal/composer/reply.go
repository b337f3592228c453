package composer

import (
	"context"
	"fmt"
	"time"
)

// ImagesOnlyReply is the assistant's answer to an image-only submission.
const ImagesOnlyReply = "I received your images. Let me know which component we should adjust."

// ReplyFor returns the canned assistant answer for a trimmed user text.
func ReplyFor(trimmed string) string {
	if trimmed == "" {
		return ImagesOnlyReply
	}
	return fmt.Sprintf("I received your message: \"%s\" and will update the requested component.", trimmed)
}

// Replier produces the assistant's answer to a submission. Implementations
// must return promptly with ctx.Err() once ctx is cancelled.
type Replier interface {
	Reply(ctx context.Context, text string) (string, error)
}

// SimulatedReplier answers with ReplyFor after a fixed delay.
type SimulatedReplier struct {
	Delay time.Duration
}

// Reply waits Delay (or until ctx is done) and returns the canned answer.
func (r SimulatedReplier) Reply(ctx context.Context, text string) (string, error) {
	if r.Delay > 0 {
		timer := time.NewTimer(r.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}
	return ReplyFor(text), nil
}

// ReplierFunc adapts a function to Replier.
type ReplierFunc func(ctx context.Context, text string) (string, error)

// Reply calls f.
func (f ReplierFunc) Reply(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}
