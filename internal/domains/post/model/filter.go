package model

import "strings"

// PostFilter is the persistence-layer predicate for enumerating posts.
// A nil Published means no publish-state filter at all.
type PostFilter struct {
	Published *bool
	AuthorID  string
	Search    string
}

// ResolveVisibility decides the publish filter for a list request.
// An explicit published parameter always wins; otherwise anonymous and
// public callers get published-only, and includeUnpublished removes the
// filter entirely. List-level filtering is deliberately blunt: it never
// consults per-row ownership.
func ResolveVisibility(publishedParam *bool, includeUnpublished bool) *bool {
	if publishedParam != nil {
		return publishedParam
	}
	if !includeUnpublished {
		t := true
		return &t
	}
	return nil
}

// BuildFilter translates a list request into a persistence filter.
// Search terms are trimmed; a whitespace-only term is no search at all.
func BuildFilter(req ListPostsRequest) PostFilter {
	return PostFilter{
		Published: ResolveVisibility(req.Published, req.IncludeUnpublished),
		AuthorID:  req.AuthorID,
		Search:    strings.TrimSpace(req.Search),
	}
}
