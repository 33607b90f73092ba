package library

import (
	"context"
	"errors"

	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
	"go.opentelemetry.io/otel/attribute"
)

func (l *libraryImpl) GetAllBooks(ctx context.Context) ([]entity.Book, error) {
	span, traceID := spanOf(ctx)

	var books []entity.Book
	err := l.transactor.WithReadTx(ctx, func(ctx context.Context) error {
		var txErr error
		books, txErr = l.booksRepository.FindAll(ctx)
		return txErr
	})

	if log.ErrorGetAllBooks(l.logger, err, "Failed listing books", traceID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoGetAllBooks(l.logger, "Listed books", traceID, len(books))
	return books, nil
}

func (l *libraryImpl) GetBookByID(ctx context.Context, id int64) (entity.Book, error) {
	span, traceID := spanOf(ctx)
	span.SetAttributes(attribute.Int64("book_id", id))
	log.InfoGetBook(l.logger, "Start of getting book", traceID, id)

	var book entity.Book
	err := l.transactor.WithReadTx(ctx, func(ctx context.Context) error {
		var txErr error
		book, txErr = l.getBookByID(ctx, id)
		return txErr
	})

	if log.ErrorGetBook(l.logger, err, "Failed get book", traceID, id) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoGetBook(l.logger, "Got the book", traceID, id)
	return book, nil
}

// CreateBook resolves the author first. Nothing is stored when it does not exist.
func (l *libraryImpl) CreateBook(ctx context.Context, title, isbn string, authorID int64) (entity.Book, error) {
	span, traceID := spanOf(ctx)
	log.InfoCreateBook(l.logger, "Start of create book", traceID, title, authorID)

	var book entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		author, txErr := l.getAuthorByID(ctx, authorID)
		if txErr != nil {
			return txErr
		}

		book, txErr = l.booksRepository.Save(ctx, entity.Book{
			Title:  title,
			ISBN:   isbn,
			Author: author,
		})
		return txErr
	})

	if log.ErrorCreateBook(l.logger, err, "Failed create book", traceID, title, authorID) {
		span.SetAttributes(attribute.String("book_title", title), attribute.Int64("author_id", authorID))
		span.RecordError(err)
		return entity.Book{}, err
	}

	span.SetAttributes(attribute.Int64("book_id", book.ID))
	log.InfoCreateBook(l.logger, "Created the book", traceID, title, authorID, book.ID)
	return book, nil
}

func (l *libraryImpl) UpdateBook(
	ctx context.Context,
	id int64,
	newTitle, newIsbn string,
	newAuthorID *int64,
) (entity.Book, error) {
	span, traceID := spanOf(ctx)
	span.SetAttributes(attribute.Int64("book_id", id))
	log.InfoUpdateBook(l.logger, "Start of update book", traceID, id, newTitle)

	var book entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		existing, txErr := l.getBookByID(ctx, id)
		if txErr != nil {
			return txErr
		}

		existing.Title = newTitle
		existing.ISBN = newIsbn

		if newAuthorID != nil {
			existing.Author, txErr = l.getAuthorByID(ctx, *newAuthorID)
			if txErr != nil {
				return txErr
			}
		}

		book, txErr = l.booksRepository.Save(ctx, existing)
		return txErr
	})

	if log.ErrorUpdateBook(l.logger, err, "Failed update book", traceID, id, newTitle) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoUpdateBook(l.logger, "Updated the book", traceID, id, newTitle)
	return book, nil
}

func (l *libraryImpl) DeleteBook(ctx context.Context, id int64) error {
	span, traceID := spanOf(ctx)
	span.SetAttributes(attribute.Int64("book_id", id))
	log.InfoDeleteBook(l.logger, "Start of delete book", traceID, id)

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		book, txErr := l.getBookByID(ctx, id)
		if txErr != nil {
			return txErr
		}

		return l.booksRepository.DeleteByID(ctx, book.ID)
	})

	if log.ErrorDeleteBook(l.logger, err, "Failed delete book", traceID, id) {
		span.RecordError(err)
		return err
	}

	log.InfoDeleteBook(l.logger, "Deleted the book", traceID, id)
	return nil
}

func (l *libraryImpl) GetAuthorOfBook(ctx context.Context, bookID int64) (entity.Author, error) {
	span, traceID := spanOf(ctx)
	span.SetAttributes(attribute.Int64("book_id", bookID))
	log.InfoGetBookAuthor(l.logger, "Start of getting book author", traceID, bookID)

	var book entity.Book
	err := l.transactor.WithReadTx(ctx, func(ctx context.Context) error {
		var txErr error
		book, txErr = l.getBookByID(ctx, bookID)
		return txErr
	})

	if log.ErrorGetBookAuthor(l.logger, err, "Failed get book author", traceID, bookID) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	log.InfoGetBookAuthor(l.logger, "Got the book author", traceID, bookID, book.Author.ID)
	return book.Author, nil
}

// SearchBooks runs the lookup selected by search. Results keep storage order by id.
func (l *libraryImpl) SearchBooks(ctx context.Context, search entity.BookSearch) ([]entity.Book, error) {
	span, traceID := spanOf(ctx)
	kind := search.Kind.String()
	span.SetAttributes(attribute.String("search_kind", kind))

	var books []entity.Book
	err := l.transactor.WithReadTx(ctx, func(ctx context.Context) error {
		var txErr error
		books, txErr = l.search(ctx, search)
		return txErr
	})

	if log.ErrorSearchBooks(l.logger, err, "Failed search books", traceID, kind, search.Value) {
		span.RecordError(err)
		return nil, err
	}

	if books == nil {
		books = make([]entity.Book, 0)
	}

	log.InfoSearchBooks(l.logger, "Searched books", traceID, kind, search.Value, len(books))
	return books, nil
}

func (l *libraryImpl) search(ctx context.Context, search entity.BookSearch) ([]entity.Book, error) {
	switch search.Kind {
	case entity.SearchKeyword:
		return l.booksRepository.FindByTitleOrAuthorNameContaining(ctx, search.Value)
	case entity.SearchTitle:
		if search.Exact {
			return l.booksRepository.FindByTitle(ctx, search.Value)
		}
		return l.booksRepository.FindByTitleContainingIgnoreCase(ctx, search.Value)
	case entity.SearchAuthorName:
		if search.Exact {
			return l.booksRepository.FindByAuthorName(ctx, search.Value)
		}
		return l.booksRepository.FindByAuthorNameContainingIgnoreCase(ctx, search.Value)
	case entity.SearchISBN:
		book, err := l.booksRepository.FindByIsbn(ctx, search.Value)
		if errors.Is(err, entity.ErrNotFound) {
			return []entity.Book{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []entity.Book{book}, nil
	default:
		return nil, entity.ErrInvalidSearch
	}
}
