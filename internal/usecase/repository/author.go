package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/project/catalog/internal/entity"
	"go.uber.org/zap"
)

var _ AuthorRepository = (*authorRepository)(nil)

type authorRepository struct {
	logger *zap.Logger
	db     DataBase
}

func NewAuthorRepository(logger *zap.Logger, db DataBase) *authorRepository {
	return &authorRepository{
		logger: logger,
		db:     db,
	}
}

const selectAuthor = `
SELECT id, name, created_at, updated_at
FROM authors
`

func scanAuthor(row pgx.Row) (entity.Author, error) {
	var author entity.Author
	err := row.Scan(&author.ID, &author.Name, &author.CreatedAt, &author.UpdatedAt)
	return author, err
}

func (a *authorRepository) FindAll(ctx context.Context) ([]entity.Author, error) {
	const query = selectAuthor + `ORDER BY id`

	rows, err := executor(ctx, a.db).Query(ctx, query)
	if err != nil {
		return nil, dbError(a.logger, err, "select authors")
	}

	authors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Author, error) {
		return scanAuthor(row)
	})
	if err != nil {
		return nil, dbError(a.logger, err, "scan authors")
	}

	return authors, nil
}

func (a *authorRepository) FindByID(ctx context.Context, id int64) (entity.Author, error) {
	const query = selectAuthor + `WHERE id = $1`

	author, err := scanAuthor(executor(ctx, a.db).QueryRow(ctx, query, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Author{}, entity.ErrAuthorNotFound
	}

	if err != nil {
		return entity.Author{}, dbError(a.logger, err, fmt.Sprintf("select author %d", id))
	}

	return author, nil
}

func (a *authorRepository) Save(ctx context.Context, author entity.Author) (entity.Author, error) {
	if author.IsNew() {
		return a.insert(ctx, author)
	}
	return a.update(ctx, author)
}

func (a *authorRepository) insert(ctx context.Context, author entity.Author) (entity.Author, error) {
	const query = `
INSERT INTO authors (name)
VALUES ($1)
RETURNING id, created_at, updated_at
`
	result := entity.Author{
		Name: author.Name,
	}

	err := executor(ctx, a.db).QueryRow(ctx, query, author.Name).
		Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)

	if err != nil {
		return entity.Author{}, dbError(a.logger, err, "insert author")
	}

	return result, nil
}

func (a *authorRepository) update(ctx context.Context, author entity.Author) (entity.Author, error) {
	const query = `
UPDATE authors SET name = $1
WHERE id = $2
RETURNING created_at, updated_at
`
	result := author

	err := executor(ctx, a.db).QueryRow(ctx, query, author.Name, author.ID).
		Scan(&result.CreatedAt, &result.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Author{}, entity.ErrAuthorNotFound
	}

	if err != nil {
		return entity.Author{}, dbError(a.logger, err, fmt.Sprintf("update author %d", author.ID))
	}

	return result, nil
}

// DeleteByID removes the author. Its books go with it through the
// ON DELETE CASCADE foreign key.
func (a *authorRepository) DeleteByID(ctx context.Context, id int64) error {
	const query = `
DELETE FROM authors WHERE id = $1
`
	tag, err := executor(ctx, a.db).Exec(ctx, query, id)
	if err != nil {
		return dbError(a.logger, err, fmt.Sprintf("delete author %d", id))
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrAuthorNotFound
	}

	return nil
}

func (a *authorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `
SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)
`
	var exists bool
	if err := executor(ctx, a.db).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, dbError(a.logger, err, fmt.Sprintf("check author %d", id))
	}

	return exists, nil
}
