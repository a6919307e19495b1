package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeGenerator resolves with a fixed result or error, optionally blocking
// until released so tests can observe the pending state.
type fakeGenerator struct {
	result  string
	err     error
	release chan struct{}
}

func (g *fakeGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if g.release != nil {
		select {
		case <-g.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return g.result, g.err
}

func TestSendAppendsPendingThenResolves(t *testing.T) {
	gen := &fakeGenerator{result: "stay hydrated", release: make(chan struct{})}
	svc := NewPromptService(gen, time.Minute, zerolog.Nop())

	entry, err := svc.Send(1, "rough morning")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if entry.Status != PromptPending {
		t.Fatalf("expected pending entry, got %s", entry.Status)
	}

	listed := svc.List(1)
	if len(listed) != 1 || listed[0].Status != PromptPending {
		t.Fatalf("pending entry must be visible immediately: %+v", listed)
	}

	close(gen.release)
	svc.Wait()

	listed = svc.List(1)
	if len(listed) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(listed))
	}
	if listed[0].Status != PromptDone || listed[0].Result != "stay hydrated" {
		t.Fatalf("expected resolved entry, got %+v", listed[0])
	}
}

func TestSendReturnsStableSnapshot(t *testing.T) {
	// An instant generator resolves entries as fast as Send appends them.
	// The returned copy must be taken under the lock, so it always shows
	// the pending state regardless of how quickly resolution lands.
	svc := NewPromptService(&fakeGenerator{result: "ok"}, time.Minute, zerolog.Nop())

	for i := 0; i < 500; i++ {
		entry, err := svc.Send(1, "quick one")
		if err != nil {
			t.Fatalf("send %d failed: %v", i, err)
		}
		if entry.Status != PromptPending {
			t.Fatalf("send %d: returned copy must be the pending snapshot, got %s", i, entry.Status)
		}
	}
	svc.Wait()

	for _, entry := range svc.List(1) {
		if entry.Status != PromptDone {
			t.Fatalf("expected all entries resolved, got %+v", entry)
		}
	}
}

func TestSendEmptyPrompt(t *testing.T) {
	svc := NewPromptService(&fakeGenerator{}, time.Minute, zerolog.Nop())

	if _, err := svc.Send(1, "   "); !errors.Is(err, ErrPromptEmpty) {
		t.Fatalf("expected ErrPromptEmpty, got %v", err)
	}
	if entries := svc.List(1); len(entries) != 0 {
		t.Fatalf("rejected prompt must not be appended, got %d entries", len(entries))
	}
}

func TestGeneratorErrorMarksEntryFailed(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream unavailable")}
	svc := NewPromptService(gen, time.Minute, zerolog.Nop())

	if _, err := svc.Send(1, "hello"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	svc.Wait()

	entries := svc.List(1)
	if len(entries) != 1 || entries[0].Status != PromptFailed {
		t.Fatalf("expected failed entry, got %+v", entries)
	}
	if entries[0].Error == "" {
		t.Fatal("failed entry must carry the error text")
	}
}

func TestNilGeneratorResolvesFailed(t *testing.T) {
	svc := NewPromptService(nil, time.Minute, zerolog.Nop())

	if _, err := svc.Send(1, "hello"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	svc.Wait()

	entries := svc.List(1)
	if len(entries) != 1 || entries[0].Status != PromptFailed {
		t.Fatalf("expected failed entry without a generator, got %+v", entries)
	}
}

func TestListIsPerUserInInsertionOrder(t *testing.T) {
	svc := NewPromptService(&fakeGenerator{result: "ok"}, time.Minute, zerolog.Nop())

	if _, err := svc.Send(1, "first"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := svc.Send(2, "other user"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := svc.Send(1, "second"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	svc.Wait()

	entries := svc.List(1)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for user 1, got %d", len(entries))
	}
	if entries[0].Prompt != "first" || entries[1].Prompt != "second" {
		t.Fatalf("entries must keep insertion order: %+v", entries)
	}
}
