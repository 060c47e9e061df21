package middleware

import (
	"context"
	"regexp"

	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/aretw0/cellgrid/pkg/ports"
)

type redactMiddleware struct {
	next     ports.SessionStore
	patterns []*regexp.Regexp
}

// NewRedactionMiddleware creates a middleware that masks history text
// matching the patterns before it is persisted. Commands like
// "add a note saying <token>" put user text into history verbatim; this
// keeps secrets out of the backing store while the in-memory session
// stays untouched.
func NewRedactionMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.SessionStore) ports.SessionStore {
		return &redactMiddleware{next: next, patterns: patterns}
	}
}

func (m *redactMiddleware) Save(ctx context.Context, path string, state *domain.State) error {
	// Clone first so the engine's live state keeps the original text.
	cloned := state.Clone()
	for i := range cloned.History {
		cloned.History[i].Command = m.mask(cloned.History[i].Command)
		cloned.History[i].Message = m.mask(cloned.History[i].Message)
	}
	return m.next.Save(ctx, path, cloned)
}

func (m *redactMiddleware) mask(s string) string {
	for _, p := range m.patterns {
		s = p.ReplaceAllString(s, "***")
	}
	return s
}

func (m *redactMiddleware) Load(ctx context.Context, path string) (*domain.State, error) {
	return m.next.Load(ctx, path)
}

func (m *redactMiddleware) Delete(ctx context.Context, path string) error {
	return m.next.Delete(ctx, path)
}

func (m *redactMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
