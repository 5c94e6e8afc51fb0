package models

import (
	"fmt"
	"strings"

	"djwatch/internal/common"
)

// StarGlyph is the rating marker used on campaign pages.
const StarGlyph = "⭐"

// MaxNameLength is the exclusive upper bound on supporter name length in bytes.
const MaxNameLength = 100

// Supporter is one extracted supporter entry. An empty Comment means no
// comment was present; Stars of zero means no rating markers were found.
// The struct is comparable: two supporters are equal iff all three fields
// are equal.
type Supporter struct {
	Name    string `json:"name"`
	Comment string `json:"comment,omitempty"`
	Stars   int    `json:"stars,omitempty"`
}

// NewSupporter constructs a Supporter, enforcing the model invariants:
// the name is trimmed, non-empty, under MaxNameLength bytes, and free of
// the star glyph; the comment is trimmed with empty normalized to absent;
// stars must not be negative.
func NewSupporter(name, comment string, stars int) (Supporter, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return Supporter{}, common.NewValidationError("name", name, "cannot be empty")
	}
	if len(name) >= MaxNameLength {
		return Supporter{}, common.NewValidationError("name", name, fmt.Sprintf("must be shorter than %d bytes", MaxNameLength))
	}
	if strings.Contains(name, StarGlyph) {
		return Supporter{}, common.NewValidationError("name", name, "must not contain the rating marker")
	}
	if stars < 0 {
		return Supporter{}, common.NewValidationError("stars", stars, "cannot be negative")
	}

	return Supporter{
		Name:    name,
		Comment: strings.TrimSpace(comment),
		Stars:   stars,
	}, nil
}

// HasComment reports whether a comment is present
func (s Supporter) HasComment() bool {
	return s.Comment != ""
}

// HasStars reports whether a rating is present
func (s Supporter) HasStars() bool {
	return s.Stars > 0
}

// String renders the supporter for log output
func (s Supporter) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if s.HasStars() {
		fmt.Fprintf(&b, " (%d%s)", s.Stars, StarGlyph)
	}
	if s.HasComment() {
		fmt.Fprintf(&b, " - %q", s.Comment)
	}
	return b.String()
}
