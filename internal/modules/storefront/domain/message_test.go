package domain

import (
	"testing"
	"time"
)

func TestNewMessageStampsUTC(t *testing.T) {
	before := time.Now().UTC()
	msg := NewMessage(TopicMenuFragment, "menu", ActionFragment, map[string]any{"html": "<div/>"})
	after := time.Now().UTC()

	if msg.Topic != TopicMenuFragment || msg.Entity != "menu" || msg.Action != ActionFragment {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.Timestamp.Before(before) || msg.Timestamp.After(after) {
		t.Fatalf("expected timestamp between %v and %v, got %v", before, after, msg.Timestamp)
	}
	if msg.Timestamp.Location() != time.UTC {
		t.Fatal("expected UTC timestamp")
	}
}

func TestFragmentTopic(t *testing.T) {
	cases := []struct {
		region   string
		expected string
	}{
		{region: "menu", expected: "menu.fragment"},
		{region: " schedule ", expected: "schedule.fragment"},
		{region: "", expected: ""},
	}

	for _, tc := range cases {
		if got := FragmentTopic(tc.region); got != tc.expected {
			t.Fatalf("region %q: expected %q, got %q", tc.region, tc.expected, got)
		}
	}
}
