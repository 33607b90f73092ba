package library

import (
	"context"
	"testing"

	"github.com/project/catalog/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetAllAuthors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		authors    []entity.Author
		errRequire error
	}{
		{name: "two authors",
			authors: []entity.Author{rowling(), king()}},
		{name: "internal error",
			errRequire: errInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			env := initTest(t)

			env.authorRepo.EXPECT().FindAll(gomock.Any()).Return(test.authors, test.errRequire)

			authors, err := env.library.GetAllAuthors(env.ctx)
			require.ErrorIs(t, err, test.errRequire)
			require.Equal(t, test.authors, authors)
		})
	}
}

func TestGetAuthorByID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		requireAuthor entity.Author
		errRequire    error
	}{
		{name: "existing author",
			requireAuthor: rowling()},
		{name: "unknown author",
			errRequire: entity.ErrAuthorNotFound},
		{name: "internal error",
			errRequire: errInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			env := initTest(t)

			env.authorRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(test.requireAuthor, test.errRequire)

			author, err := env.library.GetAuthorByID(env.ctx, 1)
			require.ErrorIs(t, err, test.errRequire)
			require.Equal(t, test.requireAuthor, author)
		})
	}
}

func TestCreateAuthorRoundTrip(t *testing.T) {
	t.Parallel()
	env := initTest(t)

	stored := map[int64]entity.Author{}
	env.authorRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, author entity.Author) (entity.Author, error) {
			require.True(t, author.IsNew())
			author.ID = int64(len(stored) + 1)
			stored[author.ID] = author
			return author, nil
		})
	env.authorRepo.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64) (entity.Author, error) {
			author, ok := stored[id]
			if !ok {
				return entity.Author{}, entity.ErrAuthorNotFound
			}
			return author, nil
		})

	created, err := env.library.CreateAuthor(env.ctx, "X")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := env.library.GetAuthorByID(env.ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "X", got.Name)
}

func TestCreateAuthorError(t *testing.T) {
	t.Parallel()
	env := initTest(t)

	env.authorRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entity.Author{}, errInternal)

	author, err := env.library.CreateAuthor(env.ctx, "X")
	require.ErrorIs(t, err, errInternal)
	require.Empty(t, author)
}

func TestUpdateAuthor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		findErr    error
		saveErr    error
		errRequire error
	}{
		{name: "rename"},
		{name: "unknown author",
			findErr:    entity.ErrAuthorNotFound,
			errRequire: entity.ErrNotFound},
		{name: "save failure",
			saveErr:    errInternal,
			errRequire: errInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			env := initTest(t)

			existing := king()
			if test.findErr != nil {
				env.authorRepo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(entity.Author{}, test.findErr)
			} else {
				env.authorRepo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(existing, nil)
				env.authorRepo.EXPECT().Save(gomock.Any(), entity.Author{ID: existing.ID, Name: "Richard Bachman"}).
					DoAndReturn(func(_ context.Context, author entity.Author) (entity.Author, error) {
						if test.saveErr != nil {
							return entity.Author{}, test.saveErr
						}
						return author, nil
					})
			}

			author, err := env.library.UpdateAuthor(env.ctx, existing.ID, "Richard Bachman")
			require.ErrorIs(t, err, test.errRequire)
			if test.errRequire == nil {
				require.Equal(t, "Richard Bachman", author.Name)
				require.Equal(t, existing.ID, author.ID)
			}
		})
	}
}

func TestDeleteAuthor(t *testing.T) {
	t.Parallel()

	t.Run("cascade through storage", func(t *testing.T) {
		t.Parallel()
		env := initTest(t)

		env.authorRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(rowling(), nil)
		env.authorRepo.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(nil)

		require.NoError(t, env.library.DeleteAuthor(env.ctx, 1))
	})

	t.Run("deleting twice fails both times after the first", func(t *testing.T) {
		t.Parallel()
		env := initTest(t)

		gomock.InOrder(
			env.authorRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(rowling(), nil),
			env.authorRepo.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(nil),
			env.authorRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entity.Author{}, entity.ErrAuthorNotFound).Times(2),
		)

		require.NoError(t, env.library.DeleteAuthor(env.ctx, 1))
		require.ErrorIs(t, env.library.DeleteAuthor(env.ctx, 1), entity.ErrNotFound)
		require.ErrorIs(t, env.library.DeleteAuthor(env.ctx, 1), entity.ErrNotFound)
	})
}

func TestGetBooksByAuthorID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		exists      bool
		existsErr   error
		books       []entity.Book
		requireLen  int
		errRequire  error
		expectBooks bool
	}{
		{name: "author with books",
			exists:      true,
			books:       []entity.Book{potter()},
			requireLen:  1,
			expectBooks: true},
		{name: "author without books",
			exists:      true,
			books:       nil,
			requireLen:  0,
			expectBooks: true},
		{name: "unknown author",
			exists:     false,
			errRequire: entity.ErrNotFound},
		{name: "internal error",
			existsErr:  errInternal,
			errRequire: errInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			env := initTest(t)

			env.authorRepo.EXPECT().ExistsByID(gomock.Any(), int64(1)).Return(test.exists, test.existsErr)
			if test.expectBooks {
				env.booksRepo.EXPECT().FindByAuthorID(gomock.Any(), int64(1)).Return(test.books, nil)
			}

			books, err := env.library.GetBooksByAuthorID(env.ctx, 1)
			require.ErrorIs(t, err, test.errRequire)
			if test.errRequire == nil {
				require.NotNil(t, books)
				require.Len(t, books, test.requireLen)
			}
		})
	}
}

func TestCountBooksByAuthorID(t *testing.T) {
	t.Parallel()

	t.Run("counted", func(t *testing.T) {
		t.Parallel()
		env := initTest(t)

		env.authorRepo.EXPECT().ExistsByID(gomock.Any(), int64(2)).Return(true, nil)
		env.booksRepo.EXPECT().CountByAuthorID(gomock.Any(), int64(2)).Return(int64(3), nil)

		count, err := env.library.CountBooksByAuthorID(env.ctx, 2)
		require.NoError(t, err)
		require.Equal(t, int64(3), count)
	})

	t.Run("unknown author", func(t *testing.T) {
		t.Parallel()
		env := initTest(t)

		env.authorRepo.EXPECT().ExistsByID(gomock.Any(), int64(2)).Return(false, nil)

		_, err := env.library.CountBooksByAuthorID(env.ctx, 2)
		require.ErrorIs(t, err, entity.ErrAuthorNotFound)
	})
}
