package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/i18n"
	"github.com/niksmo/storefront/internal/core/port"
)

// PreferenceKey is the preference holding the chosen language.
const PreferenceKey = "language"

var ErrPersist = errors.New("failed to persist language preference")

// LanguageStore owns the current UI language. Every mutation is persisted
// before it becomes visible and is then broadcast to subscribers.
type LanguageStore struct {
	mu     sync.RWMutex
	lang   domain.Language
	prefs  port.PreferenceStore
	subs   map[int]func(i18n.Presentation)
	nextID int
}

// NewLanguageStore reads the persisted preference once. A missing,
// unreadable or unsupported value yields the fallback language.
func NewLanguageStore(
	ctx context.Context, prefs port.PreferenceStore, fallback domain.Language,
) (*LanguageStore, error) {
	const op = "NewLanguageStore"
	log := slog.With("op", op)

	if _, err := domain.ParseLanguage(string(fallback)); err != nil {
		return nil, fmt.Errorf("%s: fallback: %w", op, err)
	}

	s := &LanguageStore{
		lang:  fallback,
		prefs: prefs,
		subs:  make(map[int]func(i18n.Presentation)),
	}

	stored, ok, err := prefs.GetPreference(ctx, PreferenceKey)
	switch {
	case err != nil:
		log.Warn("failed to load language preference", "err", err)
	case !ok:
		log.Info("no language preference stored", "lang", fallback)
	default:
		l, err := domain.ParseLanguage(stored)
		if err != nil {
			log.Warn("ignore stored language preference", "err", err)
			break
		}
		s.lang = l
	}

	return s, nil
}

func (s *LanguageStore) Get() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

func (s *LanguageStore) Presentation() i18n.Presentation {
	return i18n.PresentationOf(s.Get())
}

func (s *LanguageStore) Set(
	ctx context.Context, l domain.Language,
) (i18n.Presentation, error) {
	const op = "LanguageStore.Set"

	if _, err := domain.ParseLanguage(string(l)); err != nil {
		return i18n.Presentation{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.update(ctx, op, func(domain.Language) domain.Language { return l })
}

// Toggle flips between French and Arabic.
func (s *LanguageStore) Toggle(ctx context.Context) (i18n.Presentation, error) {
	const op = "LanguageStore.Toggle"
	return s.update(ctx, op, domain.Language.Toggle)
}

// Subscribe registers fn for every later change and returns the function
// that removes it.
func (s *LanguageStore) Subscribe(fn func(i18n.Presentation)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
		})
	}
}

func (s *LanguageStore) update(
	ctx context.Context, op string, next func(domain.Language) domain.Language,
) (i18n.Presentation, error) {
	if err := ctx.Err(); err != nil {
		return i18n.Presentation{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	l := next(s.lang)
	if err := s.prefs.PutPreference(ctx, PreferenceKey, string(l)); err != nil {
		s.mu.Unlock()
		return i18n.Presentation{}, fmt.Errorf("%s: %w", op, errors.Join(ErrPersist, err))
	}
	s.lang = l
	subs := make([]func(i18n.Presentation), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	p := i18n.PresentationOf(l)
	for _, fn := range subs {
		fn(p)
	}
	return p, nil
}
