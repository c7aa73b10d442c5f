package audit

import (
	"context"
	"log"

	"github.com/nestfinder/browse-api/internal/events"
)

// Trail consumes profile state-change events and writes them to the log.
// Swap this with a real analytics sink if one ever materializes.
type Trail struct {
	Pub events.Publisher
}

func (t *Trail) Run(ctx context.Context) {
	sub := t.Pub.SubscribeProfileStateChanged()
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-sub:
			if evt.ListingID != "" {
				log.Printf("[INFO] audit: profile=%s %s.%s listing=%s", evt.ProfileID, evt.Kind, evt.Action, evt.ListingID)
			} else {
				log.Printf("[INFO] audit: profile=%s %s.%s", evt.ProfileID, evt.Kind, evt.Action)
			}
		}
	}
}
