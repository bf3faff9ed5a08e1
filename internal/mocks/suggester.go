package mocks

import "context"

// MockSuggester returns a fixed suggestion and counts calls
type MockSuggester struct {
	SuggestFn  func(ctx context.Context) string
	Suggestion string
	Calls      int
}

// Suggest implements the service.Suggester interface
func (m *MockSuggester) Suggest(ctx context.Context) string {
	m.Calls++
	if m.SuggestFn != nil {
		return m.SuggestFn(ctx)
	}
	return m.Suggestion
}
