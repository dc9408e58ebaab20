package conversation

import "testing"

func TestLogAppendMonotonicIDs(t *testing.T) {
	l := NewLog()
	a := l.Append(SenderUser, "one", nil)
	b := l.Append(SenderAssistant, "two", nil)
	c := l.Append(SenderUser, "three", nil)

	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Fatalf("ids not monotonically increasing: %d %d %d", a.ID, b.ID, c.ID)
	}

	msgs := l.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len=%d, want 3", len(msgs))
	}
	for i, want := range []string{"one", "two", "three"} {
		if msgs[i].Text != want {
			t.Fatalf("msgs[%d].Text=%q, want %q", i, msgs[i].Text, want)
		}
	}
}

func TestLogRemoveKeepsOrder(t *testing.T) {
	l := NewLog()
	l.Append(SenderUser, "keep-1", nil)
	victim := l.Append(SenderAssistant, "drop", nil)
	l.Append(SenderUser, "keep-2", nil)

	if !l.Remove(victim.ID) {
		t.Fatal("Remove should find the message")
	}
	if l.Remove(victim.ID) {
		t.Fatal("second Remove must report false")
	}

	msgs := l.Messages()
	if len(msgs) != 2 || msgs[0].Text != "keep-1" || msgs[1].Text != "keep-2" {
		t.Fatalf("unexpected log after remove: %+v", msgs)
	}
}

func TestConfirmActionGuards(t *testing.T) {
	l := NewLog()
	plain := l.Append(SenderAssistant, "no action", nil)
	prop := l.Append(SenderAssistant, "proposal", &PendingAction{
		Kind:   ActionHabit,
		Title:  "meditation",
		Status: StatusPending,
	})

	if _, ok := l.ConfirmAction(9999); ok {
		t.Fatal("confirming a missing id must fail")
	}
	if _, ok := l.ConfirmAction(plain.ID); ok {
		t.Fatal("confirming a message without an action must fail")
	}

	action, ok := l.ConfirmAction(prop.ID)
	if !ok {
		t.Fatal("first confirm should succeed")
	}
	if action.Title != "meditation" {
		t.Fatalf("action.Title=%q", action.Title)
	}

	// 已确认的提案不可再次确认。
	if _, ok := l.ConfirmAction(prop.ID); ok {
		t.Fatal("second confirm must fail")
	}

	got, _ := l.Get(prop.ID)
	if got.Action.Status != StatusConfirmed {
		t.Fatalf("stored status=%s, want confirmed", got.Action.Status)
	}
}

func TestLatestPending(t *testing.T) {
	l := NewLog()
	if _, ok := l.LatestPending(); ok {
		t.Fatal("empty log has no pending proposal")
	}

	first := l.Append(SenderAssistant, "p1", &PendingAction{Kind: ActionTask, Title: "a", Status: StatusPending})
	second := l.Append(SenderAssistant, "p2", &PendingAction{Kind: ActionHabit, Title: "b", Status: StatusPending})

	got, ok := l.LatestPending()
	if !ok || got.ID != second.ID {
		t.Fatalf("LatestPending=%v ok=%v, want id %d", got.ID, ok, second.ID)
	}

	l.ConfirmAction(second.ID)
	got, ok = l.LatestPending()
	if !ok || got.ID != first.ID {
		t.Fatalf("LatestPending after confirm=%v, want id %d", got.ID, first.ID)
	}
}

func TestLogRestore(t *testing.T) {
	l := NewLog()
	l.Restore([]Message{
		{ID: 4, Text: "old-a", Sender: SenderUser},
		{ID: 7, Text: "old-b", Sender: SenderAssistant},
	})

	next := l.Append(SenderUser, "new", nil)
	if next.ID != 8 {
		t.Fatalf("next id=%d after restore, want 8", next.ID)
	}
	if l.Len() != 3 {
		t.Fatalf("Len=%d, want 3", l.Len())
	}
}

func TestMessagesReturnsCopies(t *testing.T) {
	l := NewLog()
	m := l.Append(SenderAssistant, "prop", &PendingAction{Kind: ActionTask, Title: "x", Status: StatusPending})

	snapshot := l.Messages()
	snapshot[0].Action.Status = StatusConfirmed

	stored, _ := l.Get(m.ID)
	if stored.Action.Status != StatusPending {
		t.Fatal("mutating a snapshot must not leak into the log")
	}
}
