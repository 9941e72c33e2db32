package rmapi

import (
	"fmt"
	"time"
)

// CharacterStatus is the life status of a character.
type CharacterStatus string

const (
	StatusAlive   CharacterStatus = "Alive"
	StatusDead    CharacterStatus = "Dead"
	StatusUnknown CharacterStatus = "unknown"
)

// DisplayName returns the status as it should be shown to a user.
func (s CharacterStatus) DisplayName() string {
	switch s {
	case StatusAlive, StatusDead:
		return string(s)
	default:
		return "Unknown"
	}
}

// CharacterGender is the gender of a character.
type CharacterGender string

const (
	GenderFemale     CharacterGender = "Female"
	GenderMale       CharacterGender = "Male"
	GenderGenderless CharacterGender = "Genderless"
	GenderUnknown    CharacterGender = "unknown"
)

// DisplayName returns the gender as it should be shown to a user.
func (g CharacterGender) DisplayName() string {
	switch g {
	case GenderFemale, GenderMale, GenderGenderless:
		return string(g)
	default:
		return "Unknown"
	}
}

// Location represents a character's origin or last known location.
type Location struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url"  yaml:"url"`
}

// Character represents a single character resource. The identifier is
// assigned by the API and never changes.
type Character struct {
	ID       int             `json:"id"                yaml:"id"`
	Name     string          `json:"name"              yaml:"name"`
	Status   CharacterStatus `json:"status"            yaml:"status"`
	Species  string          `json:"species"           yaml:"species"`
	Type     string          `json:"type"              yaml:"type"`
	Gender   CharacterGender `json:"gender"            yaml:"gender"`
	Origin   Location        `json:"origin"            yaml:"origin"`
	Location Location        `json:"location"          yaml:"location"`
	Image    string          `json:"image"             yaml:"image"`
	Episode  []string        `json:"episode,omitempty" yaml:"episode,omitempty"`
	URL      string          `json:"url,omitempty"     yaml:"url,omitempty"`
	Created  time.Time       `json:"created"           yaml:"created"`
}

// PageInfo represents pagination information.
type PageInfo struct {
	Count int     `json:"count"          yaml:"count"`
	Pages int     `json:"pages"          yaml:"pages"`
	Next  *string `json:"next,omitempty" yaml:"next,omitempty"`
	Prev  *string `json:"prev,omitempty" yaml:"prev,omitempty"`
}

// ListResponse represents a paginated list response.
type ListResponse[T any] struct {
	Info    PageInfo `json:"info"    yaml:"info"`
	Results []T      `json:"results" yaml:"results"`
}

// CharactersPage represents one page of the character listing.
type CharactersPage = ListResponse[Character]

// Validate reports an error when the character lacks its identifier, which
// is what a body such as {} or null decodes to.
func (c *Character) Validate() error {
	if c.ID < 1 {
		return fmt.Errorf("%w: character id missing", ErrMalformedResponse)
	}

	return nil
}

// Validate reports an error unless the page carries its info block with a
// positive page count and a results array.
func (r *ListResponse[T]) Validate() error {
	if r.Info.Pages < 1 {
		return fmt.Errorf("%w: info.pages must be positive, got %d", ErrMalformedResponse, r.Info.Pages)
	}

	if r.Results == nil {
		return fmt.Errorf("%w: results missing", ErrMalformedResponse)
	}

	return nil
}
