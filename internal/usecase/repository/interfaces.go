package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

type (
	AuthorRepository interface {
		FindAll(ctx context.Context) ([]entity.Author, error)
		FindByID(ctx context.Context, id int64) (entity.Author, error)
		Save(ctx context.Context, author entity.Author) (entity.Author, error)
		DeleteByID(ctx context.Context, id int64) error
		ExistsByID(ctx context.Context, id int64) (bool, error)
	}

	BooksRepository interface {
		FindAll(ctx context.Context) ([]entity.Book, error)
		FindByID(ctx context.Context, id int64) (entity.Book, error)
		Save(ctx context.Context, book entity.Book) (entity.Book, error)
		DeleteByID(ctx context.Context, id int64) error
		ExistsByID(ctx context.Context, id int64) (bool, error)

		FindByTitle(ctx context.Context, title string) ([]entity.Book, error)
		FindByTitleContainingIgnoreCase(ctx context.Context, title string) ([]entity.Book, error)
		FindByIsbn(ctx context.Context, isbn string) (entity.Book, error)
		FindByAuthorID(ctx context.Context, authorID int64) ([]entity.Book, error)
		FindByAuthorName(ctx context.Context, name string) ([]entity.Book, error)
		FindByAuthorNameContainingIgnoreCase(ctx context.Context, name string) ([]entity.Book, error)
		FindByTitleOrAuthorNameContaining(ctx context.Context, keyword string) ([]entity.Book, error)
		ExistsByIsbn(ctx context.Context, isbn string) (bool, error)
		CountByAuthorID(ctx context.Context, authorID int64) (int64, error)
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
		WithReadTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)

// DataBase is satisfied by *pgxpool.Pool and pgx.Tx alike.
type DataBase interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// executor returns the transaction bound to ctx, or db when there is none.
func executor(ctx context.Context, db DataBase) DataBase {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return db
}

func dbError(l *zap.Logger, err error, msg string) error {
	logger.CheckError(err, l, msg, zap.Error(err))
	return fmt.Errorf("%s: %w", msg, err)
}
