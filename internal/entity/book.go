package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AgeRestriction describes the audience a book is suitable for.
type AgeRestriction int16

const (
	AgeRestrictionMinor AgeRestriction = iota
	AgeRestrictionTeen
	AgeRestrictionAdult
)

var ageRestrictionNames = []string{"Minor", "Teen", "Adult"}

// AgeRestrictions lists every defined age restriction in ordinal order.
func AgeRestrictions() []AgeRestriction {
	return []AgeRestriction{AgeRestrictionMinor, AgeRestrictionTeen, AgeRestrictionAdult}
}

func (a AgeRestriction) String() string {
	if !a.Valid() {
		return "AgeRestriction(" + strconv.Itoa(int(a)) + ")"
	}
	return ageRestrictionNames[a]
}

// Valid reports whether a is one of the defined restrictions.
func (a AgeRestriction) Valid() bool {
	return a >= AgeRestrictionMinor && a <= AgeRestrictionAdult
}

// ParseAgeRestriction matches s against the restriction names ignoring case and
// surrounding whitespace.
func ParseAgeRestriction(s string) (AgeRestriction, bool) {
	i, ok := parseName(ageRestrictionNames, s)
	return AgeRestriction(i), ok
}

// EditionType is the print tier of a book.
type EditionType int16

const (
	EditionNormal EditionType = iota
	EditionPromo
	EditionGold
)

var editionTypeNames = []string{"Normal", "Promo", "Gold"}

// EditionTypes lists every defined edition type in ordinal order.
func EditionTypes() []EditionType {
	return []EditionType{EditionNormal, EditionPromo, EditionGold}
}

func (e EditionType) String() string {
	if !e.Valid() {
		return "EditionType(" + strconv.Itoa(int(e)) + ")"
	}
	return editionTypeNames[e]
}

// Valid reports whether e is one of the defined edition types.
func (e EditionType) Valid() bool {
	return e >= EditionNormal && e <= EditionGold
}

// ParseEditionType matches s against the edition names ignoring case and
// surrounding whitespace.
func ParseEditionType(s string) (EditionType, bool) {
	i, ok := parseName(editionTypeNames, s)
	return EditionType(i), ok
}

// Book is a row of the books table.
type Book struct {
	ID             int             `json:"id"`
	Title          string          `json:"title" validate:"required,max=50"`
	Description    string          `json:"description" validate:"max=1000"`
	Price          decimal.Decimal `json:"price" validate:"gte=0"`
	Copies         int             `json:"copies" validate:"gte=0"`
	ReleaseDate    *time.Time      `json:"release_date,omitempty"`
	AgeRestriction AgeRestriction  `json:"age_restriction" validate:"age_restriction"`
	EditionType    EditionType     `json:"edition_type" validate:"edition_type"`
	AuthorID       int             `json:"author_id" validate:"required,gt=0"`
}

func parseName(names []string, s string) (int, bool) {
	s = strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i, true
		}
	}
	return 0, false
}
