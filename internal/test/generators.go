package test

import (
	"context"
	"sync"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

// GenerateCall stores arguments of a Generate invocation.
type GenerateCall struct {
	SystemPrompt string
	UserPrompt   string
}

// TextGeneratorStub returns a canned reply and records prompts.
type TextGeneratorStub struct {
	GenerateFn func(context.Context, string, string) (string, error)
	Reply      string
	Err        error

	mu    sync.Mutex
	Calls []GenerateCall
}

// Generate records the call and returns configured response.
func (s *TextGeneratorStub) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, GenerateCall{SystemPrompt: systemPrompt, UserPrompt: userPrompt})
	s.mu.Unlock()

	if s.GenerateFn != nil {
		return s.GenerateFn(ctx, systemPrompt, userPrompt)
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}

// Close satisfies clients that hold connections.
func (s *TextGeneratorStub) Close() error { return nil }

// CallCount returns number of Generate invocations.
func (s *TextGeneratorStub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}

// ProductCacheStub is an in-memory product cache.
type ProductCacheStub struct {
	mu    sync.Mutex
	Items map[string]model.Product
	Hits  int
	Sets  int
}

// Get returns cached product.
func (s *ProductCacheStub) Get(ctx context.Context, name string) (*model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Items[name]
	if !ok {
		return nil, false
	}
	s.Hits++
	return &p, true
}

// Set stores product.
func (s *ProductCacheStub) Set(ctx context.Context, product model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Items == nil {
		s.Items = make(map[string]model.Product)
	}
	s.Items[product.Name] = product
	s.Sets++
}

// OutcomeRecorderStub counts chat outcomes.
type OutcomeRecorderStub struct {
	mu     sync.Mutex
	Counts map[model.ChatOutcome]int
}

// ChatOutcome increments counter for outcome.
func (s *OutcomeRecorderStub) ChatOutcome(outcome model.ChatOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Counts == nil {
		s.Counts = make(map[model.ChatOutcome]int)
	}
	s.Counts[outcome]++
}

// Count returns recorded number of outcome.
func (s *OutcomeRecorderStub) Count(outcome model.ChatOutcome) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Counts[outcome]
}

// PublisherStub records published events.
type PublisherStub struct {
	PublishFn func(context.Context, model.OrderEvent) error

	mu     sync.Mutex
	Events []model.OrderEvent
}

// Publish records event or delegates to PublishFn.
func (s *PublisherStub) Publish(ctx context.Context, event model.OrderEvent) error {
	if s.PublishFn != nil {
		return s.PublishFn(ctx, event)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, event)
	return nil
}

// Close is a no-op.
func (s *PublisherStub) Close() error { return nil }

// Published returns a copy of recorded events.
func (s *PublisherStub) Published() []model.OrderEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.OrderEvent(nil), s.Events...)
}
