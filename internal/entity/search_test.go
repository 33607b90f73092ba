package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBookSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                         string
		keyword, title, author, isbn string
		exact                        bool
		want                         BookSearch
		errRequire                   error
	}{
		{name: "keyword",
			keyword: "potter",
			want:    BookSearch{Kind: SearchKeyword, Value: "potter"}},

		{name: "exact title",
			title: "It",
			exact: true,
			want:  BookSearch{Kind: SearchTitle, Value: "It", Exact: true}},

		{name: "author",
			author: "king",
			want:   BookSearch{Kind: SearchAuthorName, Value: "king"}},

		{name: "isbn",
			isbn: "963-8386-87-0",
			want: BookSearch{Kind: SearchISBN, Value: "963-8386-87-0"}},

		{name: "nothing set",
			errRequire: ErrInvalidSearch},

		{name: "two set",
			title:      "It",
			author:     "King",
			errRequire: ErrInvalidSearch},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			search, err := NewBookSearch(test.keyword, test.title, test.author, test.isbn, test.exact)
			require.ErrorIs(t, err, test.errRequire)
			require.Equal(t, test.want, search)
		})
	}
}

func TestNotFoundKind(t *testing.T) {
	t.Parallel()

	require.True(t, errors.Is(ErrAuthorNotFound, ErrNotFound))
	require.True(t, errors.Is(ErrBookNotFound, ErrNotFound))
	require.False(t, errors.Is(ErrAuthorNotFound, ErrBookNotFound))
	require.False(t, errors.Is(ErrIsbnTaken, ErrNotFound))
}
