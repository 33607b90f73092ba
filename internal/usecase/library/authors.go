package library

import (
	"context"

	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
	"go.opentelemetry.io/otel/attribute"
)

func (l *libraryImpl) GetAllAuthors(ctx context.Context) ([]entity.Author, error) {
	span, traceID := spanOf(ctx)

	var authors []entity.Author
	err := l.transactor.WithReadTx(ctx, func(ctx context.Context) error {
		var txErr error
		authors, txErr = l.authorRepository.FindAll(ctx)
		return txErr
	})

	if log.ErrorGetAllAuthors(l.logger, err, "Failed listing authors", traceID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoGetAllAuthors(l.logger, "Listed authors", traceID, len(authors))
	return authors, nil
}

func (l *libraryImpl) GetAuthorByID(ctx context.Context, id int64) (entity.Author, error) {
	span, traceID := spanOf(ctx)
	span.SetAttributes(attribute.Int64("author_id", id))
	log.InfoGetAuthor(l.logger, "Start of getting author", traceID, id)

	var author entity.Author
	err := l.transactor.WithReadTx(ctx, func(ctx context.Context) error {
		var txErr error
		author, txErr = l.getAuthorByID(ctx, id)
		return txErr
	})

	if log.ErrorGetAuthor(l.logger, err, "Failed get author", traceID, id) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	log.InfoGetAuthor(l.logger, "Got the author", traceID, id)
	return author, nil
}

func (l *libraryImpl) CreateAuthor(ctx context.Context, name string) (entity.Author, error) {
	span, traceID := spanOf(ctx)
	log.InfoCreateAuthor(l.logger, "Start of create author", traceID, name)

	var author entity.Author
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		author, txErr = l.authorRepository.Save(ctx, entity.Author{
			Name: name,
		})
		return txErr
	})

	if log.ErrorCreateAuthor(l.logger, err, "Failed create author", traceID, name) {
		span.SetAttributes(attribute.String("author_name", name))
		span.RecordError(err)
		return entity.Author{}, err
	}

	span.SetAttributes(attribute.Int64("author_id", author.ID))
	log.InfoCreateAuthor(l.logger, "Created the author", traceID, name, author.ID)
	return author, nil
}

// UpdateAuthor only changes the name. Books stay attached to the author.
func (l *libraryImpl) UpdateAuthor(ctx context.Context, id int64, newName string) (entity.Author, error) {
	span, traceID := spanOf(ctx)
	span.SetAttributes(attribute.Int64("author_id", id))
	log.InfoUpdateAuthor(l.logger, "Start of update author", traceID, id, newName)

	var author entity.Author
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		existing, txErr := l.getAuthorByID(ctx, id)
		if txErr != nil {
			return txErr
		}

		existing.Name = newName
		author, txErr = l.authorRepository.Save(ctx, existing)
		return txErr
	})

	if log.ErrorUpdateAuthor(l.logger, err, "Failed update author", traceID, id, newName) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	log.InfoUpdateAuthor(l.logger, "Updated the author", traceID, id, newName)
	return author, nil
}

func (l *libraryImpl) DeleteAuthor(ctx context.Context, id int64) error {
	span, traceID := spanOf(ctx)
	span.SetAttributes(attribute.Int64("author_id", id))
	log.InfoDeleteAuthor(l.logger, "Start of delete author", traceID, id)

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		author, txErr := l.getAuthorByID(ctx, id)
		if txErr != nil {
			return txErr
		}

		return l.authorRepository.DeleteByID(ctx, author.ID)
	})

	if log.ErrorDeleteAuthor(l.logger, err, "Failed delete author", traceID, id) {
		span.RecordError(err)
		return err
	}

	log.InfoDeleteAuthor(l.logger, "Deleted the author with its books", traceID, id)
	return nil
}

// GetBooksByAuthorID returns an empty slice for an author without books.
func (l *libraryImpl) GetBooksByAuthorID(ctx context.Context, authorID int64) ([]entity.Book, error) {
	span, traceID := spanOf(ctx)
	span.SetAttributes(attribute.Int64("author_id", authorID))

	var books []entity.Book
	err := l.transactor.WithReadTx(ctx, func(ctx context.Context) error {
		if txErr := l.requireAuthor(ctx, authorID); txErr != nil {
			return txErr
		}

		var txErr error
		books, txErr = l.booksRepository.FindByAuthorID(ctx, authorID)
		return txErr
	})

	if log.ErrorGetAuthorBooks(l.logger, err, "Failed get author books", traceID, authorID) {
		span.RecordError(err)
		return nil, err
	}

	if books == nil {
		books = make([]entity.Book, 0)
	}

	log.InfoGetAuthorBooks(l.logger, "Got author books", traceID, authorID, len(books))
	return books, nil
}

func (l *libraryImpl) CountBooksByAuthorID(ctx context.Context, authorID int64) (int64, error) {
	span, traceID := spanOf(ctx)
	span.SetAttributes(attribute.Int64("author_id", authorID))

	var count int64
	err := l.transactor.WithReadTx(ctx, func(ctx context.Context) error {
		if txErr := l.requireAuthor(ctx, authorID); txErr != nil {
			return txErr
		}

		var txErr error
		count, txErr = l.booksRepository.CountByAuthorID(ctx, authorID)
		return txErr
	})

	if log.ErrorCountAuthorBooks(l.logger, err, "Failed count author books", traceID, authorID) {
		span.RecordError(err)
		return 0, err
	}

	log.InfoCountAuthorBooks(l.logger, "Counted author books", traceID, authorID, count)
	return count, nil
}

func (l *libraryImpl) requireAuthor(ctx context.Context, authorID int64) error {
	exists, err := l.authorRepository.ExistsByID(ctx, authorID)
	if err != nil {
		return err
	}

	if !exists {
		return entity.ErrAuthorNotFound
	}

	return nil
}
