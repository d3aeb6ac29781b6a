package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smcs-alumni/alumni-portal/internal/core/domain"
	"github.com/smcs-alumni/alumni-portal/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub repository: in-memory, honors ListQuery sort/filter/limit so the list
// policies can be exercised end to end.
// ---------------------------------------------------------------------------

type stubContentRepo[T any, PT domain.ContentPtr[T]] struct {
	items  map[string]*T
	seq    int
	less   func(field string, a, b *T) bool
	dateOf func(*T) time.Time // nil when the kind has no date filter
}

func newStubContentRepo[T any, PT domain.ContentPtr[T]](less func(field string, a, b *T) bool, dateOf func(*T) time.Time) *stubContentRepo[T, PT] {
	return &stubContentRepo[T, PT]{items: make(map[string]*T), less: less, dateOf: dateOf}
}

func (r *stubContentRepo[T, PT]) checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return nil
}

func (r *stubContentRepo[T, PT]) Insert(_ context.Context, doc *T) (string, error) {
	r.seq++
	id := fmt.Sprintf("%024x", r.seq)
	clone := *doc
	PT(&clone).Meta().ID = id
	r.items[id] = &clone
	return id, nil
}

func (r *stubContentRepo[T, PT]) FindByID(_ context.Context, id string) (*T, error) {
	if err := r.checkID(id); err != nil {
		return nil, err
	}
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *stubContentRepo[T, PT]) List(_ context.Context, q ports.ListQuery) ([]*T, error) {
	out := make([]*T, 0, len(r.items))
	for _, item := range r.items {
		if q.NotBefore != nil && r.dateOf != nil && r.dateOf(item).Before(*q.NotBefore) {
			continue
		}
		clone := *item
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if q.Ascending {
			return r.less(q.SortField, out[i], out[j])
		}
		return r.less(q.SortField, out[j], out[i])
	})
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *stubContentRepo[T, PT]) Replace(_ context.Context, id string, doc *T) error {
	if err := r.checkID(id); err != nil {
		return err
	}
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	clone := *doc
	PT(&clone).Meta().ID = id
	r.items[id] = &clone
	return nil
}

func (r *stubContentRepo[T, PT]) Delete(_ context.Context, id string) error {
	if err := r.checkID(id); err != nil {
		return err
	}
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// ---------------------------------------------------------------------------
// Per-kind helpers
// ---------------------------------------------------------------------------

func newAnnouncementSvc() *ContentService[domain.Announcement, *domain.Announcement] {
	repo := newStubContentRepo[domain.Announcement](func(field string, a, b *domain.Announcement) bool {
		if field == "date" {
			return a.Date.Before(b.Date)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	}, nil)
	return NewContentService[domain.Announcement](repo, AnnouncementPolicy, zerolog.Nop())
}

func newEventSvc() *ContentService[domain.Event, *domain.Event] {
	repo := newStubContentRepo[domain.Event](func(_ string, a, b *domain.Event) bool {
		return a.Date.Before(b.Date)
	}, func(e *domain.Event) time.Time { return e.Date })
	return NewContentService[domain.Event](repo, EventPolicy, zerolog.Nop())
}

func newAlumniSvc() *ContentService[domain.FeaturedAlumni, *domain.FeaturedAlumni] {
	repo := newStubContentRepo[domain.FeaturedAlumni](func(_ string, a, b *domain.FeaturedAlumni) bool {
		return a.GraduationYear < b.GraduationYear
	}, nil)
	return NewContentService[domain.FeaturedAlumni](repo, AlumniPolicy, zerolog.Nop())
}

func mustCreate[T any, PT domain.ContentPtr[T]](t *testing.T, svc *ContentService[T, PT], doc *T) *T {
	t.Helper()
	created, err := svc.Create(context.Background(), doc)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return created
}

func announcement(title string, date time.Time) *domain.Announcement {
	return &domain.Announcement{Title: title, Content: "body", Date: date}
}

// ---------------------------------------------------------------------------
// CRUD lifecycle
// ---------------------------------------------------------------------------

func TestContentService_CreateThenGet(t *testing.T) {
	svc := newAnnouncementSvc()

	created := mustCreate(t, svc, announcement("reunion", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "reunion" || got.Content != "body" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("createdAt changed between create and get")
	}
}

func TestContentService_Create_Validation(t *testing.T) {
	svc := newAnnouncementSvc()

	_, err := svc.Create(context.Background(), &domain.Announcement{Content: "body", Date: time.Now()})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestContentService_Update(t *testing.T) {
	svc := newAnnouncementSvc()
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	created := mustCreate(t, svc, announcement("before", base))

	svc.now = func() time.Time { return base.Add(time.Minute) }
	updated, err := svc.Update(context.Background(), created.ID, announcement("after", base))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "after" {
		t.Fatalf("title not updated: %s", updated.Title)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("createdAt must not change on update")
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatalf("expected updatedAt > createdAt, got %v <= %v", updated.UpdatedAt, updated.CreatedAt)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Title != "after" {
		t.Fatalf("update not persisted: %s", got.Title)
	}
}

func TestContentService_Update_MissingRequiredField(t *testing.T) {
	svc := newAnnouncementSvc()
	created := mustCreate(t, svc, announcement("title", time.Now().UTC()))

	_, err := svc.Update(context.Background(), created.ID, &domain.Announcement{Title: "only title"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestContentService_MalformedID(t *testing.T) {
	svc := newAnnouncementSvc()
	doc := announcement("x", time.Now().UTC())

	// Malformed ids are a validation failure, not a miss.
	if _, err := svc.Update(context.Background(), "not-hex", doc); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("update: expected ErrInvalidID, got %v", err)
	}
	if err := svc.Delete(context.Background(), "not-hex"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("delete: expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "not-hex"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("get: expected ErrInvalidID, got %v", err)
	}
}

func TestContentService_WellFormedUnknownID(t *testing.T) {
	svc := newAnnouncementSvc()
	doc := announcement("x", time.Now().UTC())
	unknown := "ffffffffffffffffffffffff"

	if _, err := svc.Update(context.Background(), unknown, doc); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), unknown); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestContentService_DeleteThenGet(t *testing.T) {
	svc := newAnnouncementSvc()
	created := mustCreate(t, svc, announcement("gone", time.Now().UTC()))

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List policies
// ---------------------------------------------------------------------------

func TestContentService_PublicList_AnnouncementsCapped(t *testing.T) {
	svc := newAnnouncementSvc()
	for i := 1; i <= 5; i++ {
		date := time.Date(2026, time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		mustCreate(t, svc, announcement(fmt.Sprintf("a%d", i), date))
	}

	items, err := svc.PublicList(context.Background())
	if err != nil {
		t.Fatalf("public list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Date.After(items[i-1].Date) {
			t.Fatalf("expected descending date order")
		}
	}
	if items[0].Title != "a5" {
		t.Fatalf("expected newest announcement first, got %s", items[0].Title)
	}
}

func TestContentService_PublicList_EventsFutureOnly(t *testing.T) {
	svc := newEventSvc()
	for _, date := range []time.Time{
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
	} {
		mustCreate(t, svc, &domain.Event{Title: date.Format("2006"), Description: "d", Date: date})
	}

	items, err := svc.PublicList(context.Background())
	if err != nil {
		t.Fatalf("public list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected only the future event, got %d items", len(items))
	}
	if items[0].Title != "2099" {
		t.Fatalf("expected the 2099 event, got %s", items[0].Title)
	}
}

func TestContentService_PublicList_EventsAscending(t *testing.T) {
	svc := newEventSvc()
	years := []int{2097, 2095, 2099, 2096}
	for _, y := range years {
		date := time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
		mustCreate(t, svc, &domain.Event{Title: date.Format("2006"), Description: "d", Date: date})
	}

	items, err := svc.PublicList(context.Background())
	if err != nil {
		t.Fatalf("public list: %v", err)
	}
	want := []string{"2095", "2096", "2097"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, title := range want {
		if items[i].Title != title {
			t.Fatalf("position %d: expected %s, got %s", i, title, items[i].Title)
		}
	}
}

func TestContentService_PublicList_AlumniDescendingCapped(t *testing.T) {
	svc := newAlumniSvc()
	for _, year := range []int{2020, 2022, 2021, 2023} {
		mustCreate(t, svc, &domain.FeaturedAlumni{Name: fmt.Sprintf("grad%d", year), GraduationYear: year, Bio: "bio"})
	}

	items, err := svc.PublicList(context.Background())
	if err != nil {
		t.Fatalf("public list: %v", err)
	}
	want := []int{2023, 2022, 2021}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, year := range want {
		if items[i].GraduationYear != year {
			t.Fatalf("position %d: expected %d, got %d", i, year, items[i].GraduationYear)
		}
	}
}

func TestContentService_AdminList_Unlimited(t *testing.T) {
	svc := newAlumniSvc()
	for year := 2000; year < 2010; year++ {
		mustCreate(t, svc, &domain.FeaturedAlumni{Name: "n", GraduationYear: year, Bio: "b"})
	}

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("admin list must not be capped, got %d", len(items))
	}
	if items[0].GraduationYear != 2009 {
		t.Fatalf("expected most recent year first, got %d", items[0].GraduationYear)
	}
}
