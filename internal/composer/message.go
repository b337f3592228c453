package composer

import (
	"slices"
	"time"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ImageRef points a committed message at one of its images.
type ImageRef struct {
	ID     string // ID of the attachment the image was committed from
	Name   string
	Handle Handle // Message-owned; never shared with the staging area
}

// Message is one turn in the log. Messages are never mutated after append.
type Message struct {
	ID        string
	Role      Role
	Content   string
	CreatedAt time.Time
	Images    []ImageRef
}

// HasImages reports whether the message carries any images.
func (m Message) HasImages() bool {
	return len(m.Images) > 0
}

// messageLog is the append-only history.
type messageLog struct {
	messages []Message
}

func (l *messageLog) append(m Message) {
	m.Images = slices.Clone(m.Images)
	l.messages = append(l.messages, m)
}

func (l *messageLog) len() int {
	return len(l.messages)
}

// snapshot returns a deep copy safe to hand to the renderer.
func (l *messageLog) snapshot() []Message {
	out := make([]Message, len(l.messages))
	for i, m := range l.messages {
		m.Images = slices.Clone(m.Images)
		out[i] = m
	}
	return out
}

// handles returns every image handle held by history.
func (l *messageLog) handles() []Handle {
	var hs []Handle
	for _, m := range l.messages {
		for _, img := range m.Images {
			hs = append(hs, img.Handle)
		}
	}
	return hs
}
