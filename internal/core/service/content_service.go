package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/smcs-alumni/alumni-portal/internal/core/domain"
	"github.com/smcs-alumni/alumni-portal/internal/core/ports"
)

// ContentService is the single CRUD engine behind announcements, events and
// featured alumni. The three kinds differ only in their field schema (the
// type parameter) and list policy (the ContentPolicy).
type ContentService[T any, PT domain.ContentPtr[T]] struct {
	repo   ports.ContentRepository[T]
	policy ports.ContentPolicy
	log    zerolog.Logger
	now    func() time.Time
}

func NewContentService[T any, PT domain.ContentPtr[T]](repo ports.ContentRepository[T], policy ports.ContentPolicy, log zerolog.Logger) *ContentService[T, PT] {
	return &ContentService[T, PT]{
		repo:   repo,
		policy: policy,
		log:    log.With().Str("kind", policy.Kind).Logger(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// List returns every record in the dashboard ordering.
func (s *ContentService[T, PT]) List(ctx context.Context) ([]*T, error) {
	return s.repo.List(ctx, s.policy.AdminList)
}

// PublicList returns the home-page view: sorted, capped, and for events
// restricted to dates at or after the current time.
func (s *ContentService[T, PT]) PublicList(ctx context.Context) ([]*T, error) {
	return s.repo.List(ctx, s.policy.PublicList(s.now()))
}

func (s *ContentService[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates required fields, stamps created_at = updated_at = now and
// returns the stored record including its assigned id.
func (s *ContentService[T, PT]) Create(ctx context.Context, doc *T) (*T, error) {
	if err := PT(doc).Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	meta := PT(doc).Meta()
	meta.ID = ""
	meta.CreatedAt = now
	meta.UpdatedAt = now

	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", s.policy.Kind, err)
	}
	meta.ID = id

	s.log.Info().Str("id", id).Msg("record created")
	return doc, nil
}

// Update replaces the record's fields, preserving created_at and bumping
// updated_at. A malformed id fails validation before the store is queried; a
// well-formed id with no record yields ErrNotFound.
func (s *ContentService[T, PT]) Update(ctx context.Context, id string, doc *T) (*T, error) {
	if err := PT(doc).Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	meta := PT(doc).Meta()
	meta.ID = id
	meta.CreatedAt = PT(existing).Meta().CreatedAt
	meta.UpdatedAt = s.now()

	if err := s.repo.Replace(ctx, id, doc); err != nil {
		return nil, fmt.Errorf("update %s: %w", s.policy.Kind, err)
	}

	s.log.Info().Str("id", id).Msg("record updated")
	return doc, nil
}

// Delete removes the record, reporting ErrNotFound when nothing matched.
func (s *ContentService[T, PT]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("id", id).Msg("record deleted")
	return nil
}
