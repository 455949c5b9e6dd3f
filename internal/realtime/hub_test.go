package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesMatchingEvents(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("user_credits", Filter{Column: "user_id", Equals: "u-1"})
	defer sub.Unsubscribe()

	hub.Publish(Event{
		Table:   "user_credits",
		Type:    ChangeUpdate,
		Payload: map[string]any{"user_id": "u-1", "balance": int64(40)},
	})

	event := <-sub.C
	assert.Equal(t, ChangeUpdate, event.Type)
	assert.Equal(t, int64(40), event.Payload["balance"])
}

func TestSubscribeFiltersOtherRows(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("user_credits", Filter{Column: "user_id", Equals: "u-1"})
	defer sub.Unsubscribe()

	hub.Publish(Event{Table: "user_credits", Type: ChangeUpdate, Payload: map[string]any{"user_id": "u-2"}})
	hub.Publish(Event{Table: "brands", Type: ChangeInsert, Payload: map[string]any{"user_id": "u-1"}})

	select {
	case e := <-sub.C:
		t.Fatalf("unexpected event delivered: %+v", e)
	default:
	}
}

func TestEventsArriveInPublishOrder(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("user_credits", Filter{})
	defer sub.Unsubscribe()

	for i := 1; i <= 3; i++ {
		hub.Publish(Event{
			Table:   "user_credits",
			Type:    ChangeUpdate,
			Payload: map[string]any{"balance": int64(i * 10)},
		})
	}

	var got []int64
	for i := 0; i < 3; i++ {
		e := <-sub.C
		got = append(got, e.Payload["balance"].(int64))
	}
	assert.Equal(t, []int64{10, 20, 30}, got)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("images", Filter{})
	sub.Unsubscribe()

	_, open := <-sub.C
	assert.False(t, open)

	// Publishing after unsubscribe must not panic.
	hub.Publish(Event{Table: "images", Type: ChangeInsert})

	// Double unsubscribe is safe.
	sub.Unsubscribe()
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("user_credits", Filter{})
	defer sub.Unsubscribe()

	// Overfill the subscription buffer; Publish must return regardless.
	for i := 0; i < 64; i++ {
		hub.Publish(Event{Table: "user_credits", Type: ChangeUpdate, Payload: map[string]any{"balance": int64(i)}})
	}

	require.NotPanics(t, func() {
		hub.Publish(Event{Table: "user_credits", Type: ChangeUpdate})
	})
}
