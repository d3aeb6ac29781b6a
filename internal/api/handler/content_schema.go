package handler

import (
	"fmt"
	"time"

	"github.com/smcs-alumni/alumni-portal/internal/core/domain"
	"github.com/smcs-alumni/alumni-portal/internal/core/ports"
)

// Request schemas for the three content kinds. Dates arrive as strings (the
// dashboard's date inputs send YYYY-MM-DD, scripted clients send RFC 3339)
// and are coerced here; required-field structure is enforced by validator
// tags, semantic validation by the domain types.

type announcementRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Date     string `json:"date" validate:"required"`
	ImageURL string `json:"imageUrl"`
}

type eventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
}

type alumniRequest struct {
	Name            string `json:"name" validate:"required"`
	GraduationYear  int    `json:"graduationYear" validate:"required,gt=1900"`
	Bio             string `json:"bio" validate:"required"`
	CurrentPosition string `json:"currentPosition"`
	Company         string `json:"company"`
	ImageURL        string `json:"imageUrl"`
}

// parseDate accepts RFC 3339 timestamps or bare calendar dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: date %q is not a valid date", domain.ErrValidation, s)
}

func decodeAnnouncement(r announcementRequest) (*domain.Announcement, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Announcement{
		Title:    r.Title,
		Content:  r.Content,
		Date:     date,
		ImageURL: r.ImageURL,
	}, nil
}

func decodeEvent(r eventRequest) (*domain.Event, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Event{
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
	}, nil
}

func decodeAlumni(r alumniRequest) (*domain.FeaturedAlumni, error) {
	return &domain.FeaturedAlumni{
		Name:            r.Name,
		GraduationYear:  r.GraduationYear,
		Bio:             r.Bio,
		CurrentPosition: r.CurrentPosition,
		Company:         r.Company,
		ImageURL:        r.ImageURL,
	}, nil
}

// Per-kind constructors binding schema, decoder and service together.

func NewAnnouncementHandler(svc ports.ContentService[domain.Announcement]) *ContentHandler[announcementRequest, domain.Announcement] {
	return NewContentHandler("announcements", svc, decodeAnnouncement)
}

func NewEventHandler(svc ports.ContentService[domain.Event]) *ContentHandler[eventRequest, domain.Event] {
	return NewContentHandler("events", svc, decodeEvent)
}

func NewAlumniHandler(svc ports.ContentService[domain.FeaturedAlumni]) *ContentHandler[alumniRequest, domain.FeaturedAlumni] {
	return NewContentHandler("featured_alumni", svc, decodeAlumni)
}
