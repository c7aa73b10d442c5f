package events

import (
	"context"
	"testing"
)

func TestPublishSubscribe(t *testing.T) {
	pub := NewInMemory(4)
	pub.PublishProfileStateChanged(context.Background(), ProfileStateChanged{
		ProfileID: "p1", Kind: "favorites", Action: "toggle", ListingID: "L1001",
	})
	select {
	case evt := <-pub.SubscribeProfileStateChanged():
		if evt.ProfileID != "p1" || evt.ListingID != "L1001" {
			t.Fatalf("got %+v", evt)
		}
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	pub := NewInMemory(1)
	ctx := context.Background()
	// second publish overflows the buffer and must be dropped, not block
	pub.PublishProfileStateChanged(ctx, ProfileStateChanged{ProfileID: "a"})
	pub.PublishProfileStateChanged(ctx, ProfileStateChanged{ProfileID: "b"})
	evt := <-pub.SubscribeProfileStateChanged()
	if evt.ProfileID != "a" {
		t.Fatalf("expected first event kept, got %+v", evt)
	}
}
