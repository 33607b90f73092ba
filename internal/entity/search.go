package entity

import "errors"

var ErrInvalidSearch = errors.New("exactly one of q, title, author, isbn must be set")

type SearchKind int

const (
	SearchUndefined SearchKind = iota
	SearchKeyword
	SearchTitle
	SearchAuthorName
	SearchISBN
)

func (s SearchKind) String() string {
	switch s {
	case SearchKeyword:
		return "keyword"
	case SearchTitle:
		return "title"
	case SearchAuthorName:
		return "author"
	case SearchISBN:
		return "isbn"
	default:
		return "undefined"
	}
}

// BookSearch selects one book lookup. Exact switches title and author
// lookups from case-insensitive substring matching to equality.
type BookSearch struct {
	Kind  SearchKind
	Value string
	Exact bool
}

func NewBookSearch(keyword, title, author, isbn string, exact bool) (BookSearch, error) {
	var (
		search BookSearch
		set    int
	)

	for _, candidate := range []struct {
		kind  SearchKind
		value string
	}{
		{SearchKeyword, keyword},
		{SearchTitle, title},
		{SearchAuthorName, author},
		{SearchISBN, isbn},
	} {
		if candidate.value == "" {
			continue
		}
		set++
		search = BookSearch{Kind: candidate.kind, Value: candidate.value, Exact: exact}
	}

	if set != 1 {
		return BookSearch{}, ErrInvalidSearch
	}

	return search, nil
}
