package social

import (
	"time"

	"github.com/google/uuid"
)

// NoticeKind tells auth notices apart from publish notices.
type NoticeKind string

const (
	KindAuth    NoticeKind = "auth"
	KindPublish NoticeKind = "publish"
)

// Notice is the human-readable record an adapter emits for each call.
// Title and Description are empty for auth notices.
type Notice struct {
	ID          string     `json:"id"`
	Network     string     `json:"network"`
	Kind        NoticeKind `json:"kind"`
	Text        string     `json:"text"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	At          time.Time  `json:"at"`
}

// NewAuthNotice builds an auth notice for network.
func NewAuthNotice(network, text string) Notice {
	return Notice{
		ID:      uuid.NewString(),
		Network: network,
		Kind:    KindAuth,
		Text:    text,
		At:      time.Now().UTC(),
	}
}

// NewPublishNotice builds a publish notice for network echoing c.
func NewPublishNotice(network, text string, c Content) Notice {
	return Notice{
		ID:          uuid.NewString(),
		Network:     network,
		Kind:        KindPublish,
		Text:        text,
		Title:       c.Title(),
		Description: c.Description(),
		At:          time.Now().UTC(),
	}
}
