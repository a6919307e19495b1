package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/ryanwiwcharyk/moodlog/pkg/ai"
)

// PromptStatus tracks a prompt entry through its lifecycle.
type PromptStatus string

const (
	PromptPending PromptStatus = "pending"
	PromptDone    PromptStatus = "done"
	PromptFailed  PromptStatus = "failed"
)

// PromptEntry is one prompt/response pair in a user's prompt log.
type PromptEntry struct {
	ID        int64        `json:"id"`
	UserID    uint         `json:"-"`
	Prompt    string       `json:"prompt"`
	Status    PromptStatus `json:"status"`
	Result    string       `json:"result,omitempty"`
	Error     string       `json:"error,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

const promptSystemPrompt = "You are a supportive journaling companion. " +
	"Respond briefly and kindly to the user's reflection."

// PromptService keeps an append-only, insertion-ordered log of prompt
// entries per user. A submitted prompt is visible immediately as pending and
// resolves in the background through the text-completion collaborator.
// The log is in-process only and is lost on restart.
type PromptService struct {
	mu        sync.Mutex
	entries   []*PromptEntry
	nextID    int64
	generator ai.TextGenerator
	timeout   time.Duration
	logger    zerolog.Logger
	wg        sync.WaitGroup
}

// NewPromptService creates a PromptService. generator may be nil when no AI
// provider is configured; submissions then resolve as failed.
func NewPromptService(generator ai.TextGenerator, timeout time.Duration, logger zerolog.Logger) *PromptService {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &PromptService{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// Send appends a pending entry for the user and starts resolving it. The
// returned copy reflects the pending state.
func (s *PromptService) Send(userID uint, prompt string) (PromptEntry, error) {
	if strings.TrimSpace(prompt) == "" {
		return PromptEntry{}, ErrPromptEmpty
	}

	s.mu.Lock()
	s.nextID++
	entry := &PromptEntry{
		ID:        s.nextID,
		UserID:    userID,
		Prompt:    prompt,
		Status:    PromptPending,
		CreatedAt: time.Now().UTC(),
	}
	s.entries = append(s.entries, entry)
	// Copy before releasing the lock: once resolve runs it mutates the
	// shared entry under the same mutex.
	out := *entry
	s.mu.Unlock()

	s.wg.Add(1)
	go s.resolve(out.ID, prompt)

	return out, nil
}

// List returns a snapshot of the user's entries in insertion order.
func (s *PromptService) List(userID uint) []PromptEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]PromptEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.UserID == userID {
			out = append(out, *entry)
		}
	}
	return out
}

// Wait blocks until all in-flight resolutions finish. Called on shutdown.
func (s *PromptService) Wait() {
	s.wg.Wait()
}

func (s *PromptService) resolve(id int64, prompt string) {
	defer s.wg.Done()

	var result string
	var err error
	if s.generator == nil {
		err = ErrNoGenerator
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		result, err = s.generator.GenerateText(ctx, promptSystemPrompt, prompt)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.entries {
		if entry.ID != id {
			continue
		}
		if err != nil {
			entry.Status = PromptFailed
			entry.Error = err.Error()
			s.logger.Warn().Int64("prompt_id", id).Err(err).Msg("prompt failed")
		} else {
			entry.Status = PromptDone
			entry.Result = result
		}
		return
	}
}
