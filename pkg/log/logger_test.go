package log

import (
	"sync"
	"testing"
	"time"
)

type captureLogger struct {
	mu     sync.Mutex
	events []Event
}

func (c *captureLogger) Log(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureLogger) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(Event{Timestamp: time.Now(), Category: CategoryAccess})
}

func TestOrNoop(t *testing.T) {
	if _, ok := OrNoop(nil).(NoopLogger); !ok {
		t.Errorf("OrNoop(nil) should return NoopLogger")
	}

	c := &captureLogger{}
	if OrNoop(c) != Logger(c) {
		t.Errorf("OrNoop should return the given logger")
	}
}

func TestMultiLogger(t *testing.T) {
	a := &captureLogger{}
	b := &captureLogger{}
	m := NewMultiLogger(a, nil, b)

	m.Log(Event{SessionID: "s1", Category: CategoryState})
	m.Log(Event{SessionID: "s2", Category: CategoryState})

	if got := len(a.Events()); got != 2 {
		t.Errorf("first logger got %d events, want 2", got)
	}
	if got := len(b.Events()); got != 2 {
		t.Errorf("second logger got %d events, want 2", got)
	}
}

func TestCategoryAndOpParsing(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"discovery", CategoryDiscovery},
		{"ACCESS", CategoryAccess},
		{"State", CategoryState},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if err != nil {
				t.Fatalf("ParseCategory(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseCategory("bogus"); err == nil {
		t.Error("expected error for unknown category")
	}

	op, err := ParseOp("set")
	if err != nil || op != OpSet {
		t.Errorf("ParseOp(set) = %v, %v", op, err)
	}
	if _, err := ParseOp("delete"); err == nil {
		t.Error("expected error for unknown op")
	}
	if OpGet.String() != "GET" || CategoryDiscovery.String() != "DISCOVERY" {
		t.Error("unexpected names")
	}
}

func TestEventFailed(t *testing.T) {
	if (Event{Access: &AccessEvent{}}).Failed() {
		t.Error("access without error should not be failed")
	}
	if !(Event{Access: &AccessEvent{Error: "boom"}}).Failed() {
		t.Error("access with error should be failed")
	}
	if !(Event{Discovery: &DiscoveryEvent{Error: "no entries"}}).Failed() {
		t.Error("discovery with error should be failed")
	}
	if (Event{StateChange: &StateChangeEvent{NewState: "OPEN"}}).Failed() {
		t.Error("state change should never be failed")
	}
}

func TestEncodeDecodeAccessEvent(t *testing.T) {
	sel := int64(2)
	in := Event{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC),
		SessionID: "abc",
		Device:    "Basler_a2A1920",
		Category:  CategoryAccess,
		Access: &AccessEvent{
			Op:            OpSet,
			Property:      "Gain-DigitalAll",
			Feature:       "Gain",
			Selector:      "GainSelector",
			SelectorValue: &sel,
			Value:         int64(-42),
			Duration:      3 * time.Millisecond,
		},
	}

	data, err := EncodeEvent(in)
	if err != nil {
		t.Fatalf("EncodeEvent: %v", err)
	}
	out, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}

	if !out.Timestamp.Equal(in.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", out.Timestamp, in.Timestamp)
	}
	if out.Access == nil {
		t.Fatal("Access payload missing")
	}
	if out.Access.Property != "Gain-DigitalAll" || out.Access.Op != OpSet {
		t.Errorf("unexpected access payload: %+v", out.Access)
	}
	if out.Access.SelectorValue == nil || *out.Access.SelectorValue != 2 {
		t.Errorf("SelectorValue = %v, want 2", out.Access.SelectorValue)
	}
	if v, ok := out.Access.Value.(int64); !ok || v != -42 {
		t.Errorf("Value = %#v, want int64(-42)", out.Access.Value)
	}
	if out.Access.Duration != 3*time.Millisecond {
		t.Errorf("Duration = %v", out.Access.Duration)
	}
}

func TestDecodeEventGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error for invalid CBOR")
	}
}
