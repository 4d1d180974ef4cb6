package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchClause(t *testing.T) {
	spec := ListSpec{SearchFields: []string{"title", "description"}}

	tests := []struct {
		name     string
		term     string
		wantCond string
		wantArgs []any
	}{
		{
			name:     "two columns ORed",
			term:     "youth",
			wantCond: "title ILIKE ? OR description ILIKE ?",
			wantArgs: []any{"%youth%", "%youth%"},
		},
		{
			name:     "whitespace trimmed",
			term:     "  choir ",
			wantCond: "title ILIKE ? OR description ILIKE ?",
			wantArgs: []any{"%choir%", "%choir%"},
		},
		{
			name:     "empty term yields nothing",
			term:     "   ",
			wantCond: "",
			wantArgs: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, args := spec.SearchClause(tt.term)
			assert.Equal(t, tt.wantCond, cond)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSearchClauseNoSearchFields(t *testing.T) {
	spec := ListSpec{}
	cond, args := spec.SearchClause("anything")
	assert.Empty(t, cond)
	assert.Nil(t, args)
}

func TestOrderClause(t *testing.T) {
	spec := ListSpec{
		OrderFields: map[string]string{
			"date":  "date",
			"title": "title",
			"order": "ord",
		},
		DefaultOrder: "date DESC, created_at DESC",
	}

	tests := []struct {
		name     string
		ordering string
		want     string
	}{
		{
			name:     "empty falls back to default",
			ordering: "",
			want:     "date DESC, created_at DESC",
		},
		{
			name:     "descending prefix",
			ordering: "-date",
			want:     "date DESC, date DESC, created_at DESC",
		},
		{
			name:     "multiple fields keep order",
			ordering: "title,-date",
			want:     "title ASC, date DESC, date DESC, created_at DESC",
		},
		{
			name:     "unknown fields dropped silently",
			ordering: "password,-secret",
			want:     "date DESC, created_at DESC",
		},
		{
			name:     "api name maps to column",
			ordering: "order",
			want:     "ord ASC, date DESC, created_at DESC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spec.OrderClause(tt.ordering))
		})
	}
}
