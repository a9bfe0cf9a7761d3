// models/criteria.go
package models

import (
	"fmt"
	"strings"
)

// ListCriteria is the typed filter set for the pokedex list endpoint. All
// supplied conditions combine with AND. Stat bounds are inclusive; a min of 0
// or a max of 255 is the stat's natural bound and is dropped from the
// predicate (same results, cheaper query).
type ListCriteria struct {
	Search   string `validate:"max=100"`
	Type1    string `validate:"max=20"`
	Type2    string `validate:"max=20"`
	EggGroup string `validate:"max=40"`

	MinHp      *int `validate:"omitempty,gte=0,lte=255"`
	MaxHp      *int `validate:"omitempty,gte=0,lte=255"`
	MinAttack  *int `validate:"omitempty,gte=0,lte=255"`
	MaxAttack  *int `validate:"omitempty,gte=0,lte=255"`
	MinDefense *int `validate:"omitempty,gte=0,lte=255"`
	MaxDefense *int `validate:"omitempty,gte=0,lte=255"`
	MinSpeed   *int `validate:"omitempty,gte=0,lte=255"`
	MaxSpeed   *int `validate:"omitempty,gte=0,lte=255"`

	Page  int `validate:"gte=1"`
	Limit int `validate:"gte=1,lte=200"`
}

// CacheKey is the full filter/sort/pagination signature. Identical queries
// within the TTL window must serve byte-identical payloads, so every field
// participates.
func (c ListCriteria) CacheKey() string {
	var b strings.Builder
	b.WriteString("pokemon:list:")
	b.WriteString(c.Search)
	for _, s := range []string{c.Type1, c.Type2, c.EggGroup} {
		b.WriteString(":")
		b.WriteString(s)
	}
	for _, p := range []*int{
		c.MinHp, c.MaxHp, c.MinAttack, c.MaxAttack,
		c.MinDefense, c.MaxDefense, c.MinSpeed, c.MaxSpeed,
	} {
		if p == nil {
			b.WriteString(":null")
		} else {
			fmt.Fprintf(&b, ":%d", *p)
		}
	}
	fmt.Fprintf(&b, ":page=%d:limit=%d", c.Page, c.Limit)
	return b.String()
}

// Pagination is the list-response envelope metadata.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}
