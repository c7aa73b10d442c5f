package events

import (
	"context"
)

// ProfileStateChanged is emitted after a profile's favorites, compare
// list or session mutates.
type ProfileStateChanged struct {
	ProfileID string
	Kind      string // favorites | compare | session
	Action    string // toggle | add | remove | clear | login | logout
	ListingID string // set for listing-scoped actions
}

type Publisher interface {
	PublishProfileStateChanged(ctx context.Context, evt ProfileStateChanged)
	SubscribeProfileStateChanged() <-chan ProfileStateChanged
}

type inMemory struct{ ch chan ProfileStateChanged }

func NewInMemory(buffer int) Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &inMemory{ch: make(chan ProfileStateChanged, buffer)}
}

// Publish never blocks a request; events are dropped when the buffer is
// full.
func (m *inMemory) PublishProfileStateChanged(_ context.Context, evt ProfileStateChanged) {
	select {
	case m.ch <- evt:
	default:
	}
}

func (m *inMemory) SubscribeProfileStateChanged() <-chan ProfileStateChanged { return m.ch }
