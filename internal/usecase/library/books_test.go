package library

import (
	"context"
	"testing"

	"github.com/project/catalog/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetBookByID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		requireBook entity.Book
		errRequire  error
	}{
		{name: "existing book",
			requireBook: potter()},
		{name: "unknown book",
			errRequire: entity.ErrBookNotFound},
		{name: "internal error",
			errRequire: errInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			env := initTest(t)

			env.booksRepo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(test.requireBook, test.errRequire)

			book, err := env.library.GetBookByID(env.ctx, 10)
			require.ErrorIs(t, err, test.errRequire)
			require.Equal(t, test.requireBook, book)
		})
	}
}

func TestGetAllBooks(t *testing.T) {
	t.Parallel()
	env := initTest(t)

	env.booksRepo.EXPECT().FindAll(gomock.Any()).Return([]entity.Book{potter()}, nil)

	books, err := env.library.GetAllBooks(env.ctx)
	require.NoError(t, err)
	require.Equal(t, []entity.Book{potter()}, books)
}

func TestCreateBook(t *testing.T) {
	t.Parallel()

	t.Run("author is resolved before save", func(t *testing.T) {
		t.Parallel()
		env := initTest(t)

		env.authorRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(rowling(), nil)
		env.booksRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, book entity.Book) (entity.Book, error) {
				require.True(t, book.IsNew())
				require.Equal(t, rowling(), book.Author)
				book.ID = 10
				return book, nil
			})

		book, err := env.library.CreateBook(env.ctx, "Harry Potter és a bölcsek köve", "963-8386-87-0", 1)
		require.NoError(t, err)
		require.Equal(t, potter(), book)
	})

	t.Run("unknown author stores nothing", func(t *testing.T) {
		t.Parallel()
		env := initTest(t)

		env.authorRepo.EXPECT().FindByID(gomock.Any(), int64(99)).Return(entity.Author{}, entity.ErrAuthorNotFound)
		env.booksRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		book, err := env.library.CreateBook(env.ctx, "It", "", 99)
		require.ErrorIs(t, err, entity.ErrNotFound)
		require.Empty(t, book)
	})

	t.Run("duplicate isbn surfaces as is", func(t *testing.T) {
		t.Parallel()
		env := initTest(t)

		env.authorRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(rowling(), nil)
		env.booksRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entity.Book{}, errInternal)

		_, err := env.library.CreateBook(env.ctx, "Harry Potter", "963-8386-87-0", 1)
		require.ErrorIs(t, err, errInternal)
		require.NotErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestUpdateBook(t *testing.T) {
	t.Parallel()

	kingID := king().ID
	missingID := int64(404)

	tests := []struct {
		name          string
		newAuthorID   *int64
		bookErr       error
		authorErr     error
		requireAuthor entity.Author
		errRequire    error
	}{
		{name: "author omitted keeps the original",
			newAuthorID:   nil,
			requireAuthor: rowling()},
		{name: "author replaced",
			newAuthorID:   &kingID,
			requireAuthor: king()},
		{name: "unknown new author",
			newAuthorID: &missingID,
			authorErr:   entity.ErrAuthorNotFound,
			errRequire:  entity.ErrAuthorNotFound},
		{name: "unknown book",
			bookErr:    entity.ErrBookNotFound,
			errRequire: entity.ErrBookNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			env := initTest(t)

			if test.bookErr != nil {
				env.booksRepo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(entity.Book{}, test.bookErr)
			} else {
				env.booksRepo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(potter(), nil)
			}

			if test.newAuthorID != nil && test.bookErr == nil {
				if test.authorErr != nil {
					env.authorRepo.EXPECT().FindByID(gomock.Any(), *test.newAuthorID).Return(entity.Author{}, test.authorErr)
				} else {
					env.authorRepo.EXPECT().FindByID(gomock.Any(), *test.newAuthorID).Return(king(), nil)
				}
			}

			if test.errRequire == nil {
				env.booksRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, book entity.Book) (entity.Book, error) {
						return book, nil
					})
			}

			book, err := env.library.UpdateBook(env.ctx, 10, "Harry Potter and the Philosopher's Stone", "", test.newAuthorID)
			require.ErrorIs(t, err, test.errRequire)
			if test.errRequire != nil {
				require.Empty(t, book)
				return
			}

			require.Equal(t, int64(10), book.ID)
			require.Equal(t, "Harry Potter and the Philosopher's Stone", book.Title)
			require.Empty(t, book.ISBN)
			require.Equal(t, test.requireAuthor, book.Author)
		})
	}
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()
		env := initTest(t)

		env.booksRepo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(potter(), nil)
		env.booksRepo.EXPECT().DeleteByID(gomock.Any(), int64(10)).Return(nil)

		require.NoError(t, env.library.DeleteBook(env.ctx, 10))
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()
		env := initTest(t)

		env.booksRepo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(entity.Book{}, entity.ErrBookNotFound)

		require.ErrorIs(t, env.library.DeleteBook(env.ctx, 10), entity.ErrNotFound)
	})
}

func TestGetAuthorOfBook(t *testing.T) {
	t.Parallel()

	t.Run("author of created book", func(t *testing.T) {
		t.Parallel()
		env := initTest(t)

		env.authorRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(rowling(), nil)
		env.booksRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, book entity.Book) (entity.Book, error) {
				book.ID = 10
				return book, nil
			})

		book, err := env.library.CreateBook(env.ctx, "Harry Potter", "963-8386-87-0", 1)
		require.NoError(t, err)

		env.booksRepo.EXPECT().FindByID(gomock.Any(), book.ID).Return(book, nil)

		author, err := env.library.GetAuthorOfBook(env.ctx, book.ID)
		require.NoError(t, err)
		require.Equal(t, rowling(), author)
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()
		env := initTest(t)

		env.booksRepo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(entity.Book{}, entity.ErrBookNotFound)

		author, err := env.library.GetAuthorOfBook(env.ctx, 3)
		require.ErrorIs(t, err, entity.ErrNotFound)
		require.Empty(t, author)
	})
}

func TestSearchBooks(t *testing.T) {
	t.Parallel()

	found := []entity.Book{potter()}

	tests := []struct {
		name      string
		search    entity.BookSearch
		expect    func(env testEnv)
		wantBooks []entity.Book
		errWant   error
	}{
		{name: "keyword",
			search: entity.BookSearch{Kind: entity.SearchKeyword, Value: "harry"},
			expect: func(env testEnv) {
				env.booksRepo.EXPECT().FindByTitleOrAuthorNameContaining(gomock.Any(), "harry").Return(found, nil)
			},
			wantBooks: found},
		{name: "title containing",
			search: entity.BookSearch{Kind: entity.SearchTitle, Value: "potter"},
			expect: func(env testEnv) {
				env.booksRepo.EXPECT().FindByTitleContainingIgnoreCase(gomock.Any(), "potter").Return(found, nil)
			},
			wantBooks: found},
		{name: "exact title",
			search: entity.BookSearch{Kind: entity.SearchTitle, Value: "It", Exact: true},
			expect: func(env testEnv) {
				env.booksRepo.EXPECT().FindByTitle(gomock.Any(), "It").Return(nil, nil)
			},
			wantBooks: []entity.Book{}},
		{name: "author containing",
			search: entity.BookSearch{Kind: entity.SearchAuthorName, Value: "rowl"},
			expect: func(env testEnv) {
				env.booksRepo.EXPECT().FindByAuthorNameContainingIgnoreCase(gomock.Any(), "rowl").Return(found, nil)
			},
			wantBooks: found},
		{name: "exact author",
			search: entity.BookSearch{Kind: entity.SearchAuthorName, Value: "J.K. Rowling", Exact: true},
			expect: func(env testEnv) {
				env.booksRepo.EXPECT().FindByAuthorName(gomock.Any(), "J.K. Rowling").Return(found, nil)
			},
			wantBooks: found},
		{name: "isbn hit",
			search: entity.BookSearch{Kind: entity.SearchISBN, Value: "963-8386-87-0"},
			expect: func(env testEnv) {
				env.booksRepo.EXPECT().FindByIsbn(gomock.Any(), "963-8386-87-0").Return(potter(), nil)
			},
			wantBooks: found},
		{name: "isbn miss",
			search: entity.BookSearch{Kind: entity.SearchISBN, Value: "0"},
			expect: func(env testEnv) {
				env.booksRepo.EXPECT().FindByIsbn(gomock.Any(), "0").Return(entity.Book{}, entity.ErrBookNotFound)
			},
			wantBooks: []entity.Book{}},
		{name: "undefined kind",
			search:  entity.BookSearch{},
			expect:  func(testEnv) {},
			errWant: entity.ErrInvalidSearch},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			env := initTest(t)
			test.expect(env)

			books, err := env.library.SearchBooks(env.ctx, test.search)
			require.ErrorIs(t, err, test.errWant)
			if test.errWant == nil {
				require.Equal(t, test.wantBooks, books)
			}
		})
	}
}
