package events

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/streadway/amqp"
)

func TestEventRoundTrip(t *testing.T) {
	e := New(TypeResumeProcessed, "user-1", "resume-1", "req-1", time.Date(2026, time.January, 30, 22, 0, 0, 0, time.UTC))
	e.OverallScore = 4
	e.MatchCount = 2

	payload, err := Encode(e)
	if err != nil {
		t.Fatalf("encode event: %v", err)
	}
	got, err := Decode(payload)
	if err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if !reflect.DeepEqual(got, e) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, e)
	}
	if got.OccurredAt != "2026-01-30T22:00:00Z" || got.Version != 1 {
		t.Fatalf("unexpected stamp: %+v", got)
	}
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (f *fakeChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error { return nil }

func TestAMQPPublisherRoutesByType(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, exchange: "resume_events"}

	e := New(TypeResumeDeleted, "u1", "r1", "", time.Now())
	if err := p.Publish(context.Background(), e); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if ch.exchange != "resume_events" || ch.key != TypeResumeDeleted {
		t.Fatalf("unexpected routing %s/%s", ch.exchange, ch.key)
	}
	if ch.msg.ContentType != "application/json" || ch.msg.DeliveryMode != amqp.Persistent {
		t.Fatalf("unexpected publishing %+v", ch.msg)
	}
	got, err := Decode(ch.msg.Body)
	if err != nil || got.ResumeID != "r1" {
		t.Fatalf("unexpected body %s: %v", ch.msg.Body, err)
	}
}

func TestPublishBestEffortSwallowsErrors(t *testing.T) {
	p := &AMQPPublisher{ch: &fakeChannel{err: errors.New("channel closed")}, exchange: "x"}
	PublishBestEffort(context.Background(), p, New(TypeResumeProcessed, "u", "r", "", time.Now()))
	PublishBestEffort(context.Background(), nil, Event{})
	if err := (NopPublisher{}).Publish(context.Background(), Event{}); err != nil {
		t.Fatalf("nop publisher returned %v", err)
	}
}

func TestAMQPPublisherHonorsCanceledContext(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, exchange: "x"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Publish(ctx, Event{Type: TypeResumeProcessed}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if ch.key != "" {
		t.Fatalf("nothing should be published")
	}
}
