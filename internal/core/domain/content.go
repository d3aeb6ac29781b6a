package domain

import (
	"fmt"
	"time"
)

// ContentMeta carries the fields shared by every content record. The store
// assigns ID on insert (it is excluded from bson so the persistence layer
// controls the `_id` representation); CreatedAt is written once and
// UpdatedAt on every successful mutation.
type ContentMeta struct {
	ID        string    `json:"id" bson:"-"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// Meta returns the embedded metadata. Promoted onto every content type so
// that *Announcement, *Event and *FeaturedAlumni satisfy Content.
func (m *ContentMeta) Meta() *ContentMeta { return m }

// Content is implemented by all managed content records.
type Content interface {
	Meta() *ContentMeta
	Validate() error
}

// ContentPtr constrains a pointer to a content record; it lets generic code
// reach the metadata and validation of a *T without reflection.
type ContentPtr[T any] interface {
	*T
	Content
}

// Announcement is a dated notice shown on the home page.
type Announcement struct {
	ContentMeta `bson:",inline"`
	Title       string    `json:"title" bson:"title"`
	Content     string    `json:"content" bson:"content"`
	Date        time.Time `json:"date" bson:"date"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
}

func (a *Announcement) Validate() error {
	switch {
	case a.Title == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case a.Content == "":
		return fmt.Errorf("%w: content is required", ErrValidation)
	case a.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	return nil
}

// Event is a scheduled gathering; only future-dated events appear publicly.
type Event struct {
	ContentMeta `bson:",inline"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Date        time.Time `json:"date" bson:"date"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
}

func (e *Event) Validate() error {
	switch {
	case e.Title == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case e.Description == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case e.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	return nil
}

// FeaturedAlumni is a spotlighted graduate profile.
type FeaturedAlumni struct {
	ContentMeta     `bson:",inline"`
	Name            string `json:"name" bson:"name"`
	GraduationYear  int    `json:"graduationYear" bson:"graduation_year"`
	Bio             string `json:"bio" bson:"bio"`
	CurrentPosition string `json:"currentPosition,omitempty" bson:"current_position,omitempty"`
	Company         string `json:"company,omitempty" bson:"company,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
}

func (f *FeaturedAlumni) Validate() error {
	switch {
	case f.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case f.GraduationYear == 0:
		return fmt.Errorf("%w: graduation year is required", ErrValidation)
	case f.Bio == "":
		return fmt.Errorf("%w: bio is required", ErrValidation)
	}
	return nil
}
