package llm_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"

	"github.com/visitnotes-lab/visitnotes/pkg/domain/model"
	"github.com/visitnotes-lab/visitnotes/pkg/service/llm"
)

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	deltas []string
}

func (x *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	return &gollem.Response{Texts: x.deltas}, nil
}

func (x *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	ch := make(chan *gollem.Response, len(x.deltas))
	for _, delta := range x.deltas {
		ch <- &gollem.Response{Texts: []string{delta}}
	}
	close(ch)
	return ch, nil
}

func (x *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, options ...gollem.GenerateOption) (*gollem.Response, error) {
	return x.GenerateContent(ctx, input...)
}

func (x *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, options ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return x.GenerateStream(ctx, input...)
}

func (x *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (x *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (x *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	deltas []string
}

func (x *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	return &mockLLMSession{deltas: x.deltas}, nil
}

func (x *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func TestModelSelection(t *testing.T) {
	svc := llm.NewWithClients(&mockLLMClient{}, &mockLLMClient{}, "gpt-4o-mini", "gpt-5")

	gt.Value(t, svc.Model(false)).Equal("gpt-4o-mini")
	gt.Value(t, svc.Model(true)).Equal("gpt-5")
}

func TestStreamCompletionRelaysDeltas(t *testing.T) {
	defaultClient := &mockLLMClient{deltas: []string{"Hello\n", "World", ""}}
	svc := llm.NewWithClients(defaultClient, &mockLLMClient{}, "gpt-4o-mini", "gpt-5")

	stream, err := svc.StreamCompletion(context.Background(), model.NewPrompt("Alice", "2026-08-01", "notes"), false)
	gt.NoError(t, err).Required()

	var got []string
	for delta := range stream {
		got = append(got, delta)
	}

	// Empty deltas are dropped, delivery order is preserved
	gt.Array(t, got).Equal([]string{"Hello\n", "World"})
}
