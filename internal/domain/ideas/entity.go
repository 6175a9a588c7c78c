package ideas

import (
	"time"

	"github.com/bryanwahyu/ideaforge/internal/domain/analysis"
)

// IdeaID identifier type
type IdeaID string

// Domain enum, the category tag of an idea
type Domain string

const (
	DomainAI        Domain = "AI"
	DomainHealth    Domain = "Health"
	DomainFinTech   Domain = "FinTech"
	DomainEdTech    Domain = "EdTech"
	DomainAgriTech  Domain = "AgriTech"
	DomainECommerce Domain = "E-commerce"
	DomainOthers    Domain = "Others"
)

// Domains lists every recognized domain in display order.
var Domains = []Domain{
	DomainAI,
	DomainHealth,
	DomainFinTech,
	DomainEdTech,
	DomainAgriTech,
	DomainECommerce,
	DomainOthers,
}

// Valid reports whether d is one of the recognized domains.
func (d Domain) Valid() bool {
	for _, known := range Domains {
		if d == known {
			return true
		}
	}
	return false
}

const (
	// TitleLength is how many characters of the description make up the title.
	TitleLength = 50
	// MaxDescriptionLength is enforced at the HTTP boundary, not here.
	MaxDescriptionLength = 1000
)

// Aggregate Root: Idea
type Idea struct {
	ID          IdeaID             `json:"id"`
	OwnerID     string             `json:"userId"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Domain      Domain             `json:"domain"`
	CreatedAt   time.Time          `json:"createdAt"`
	Analysis    *analysis.Analysis `json:"analysis,omitempty"`
}

// Analyzed reports whether a feasibility report is attached.
func (i *Idea) Analyzed() bool { return i != nil && i.Analysis != nil }

// TitleFrom derives a title from a description: the description itself when it
// fits in TitleLength characters, otherwise the first TitleLength characters
// followed by "...". Counts runes, not bytes.
func TitleFrom(description string) string {
	r := []rune(description)
	if len(r) <= TitleLength {
		return description
	}
	return string(r[:TitleLength]) + "..."
}
