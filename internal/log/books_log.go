package log

import (
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

func InfoGetAllBooks(l *zap.Logger, msg string, traceID string, count int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int("count", count),
		zap.String("action", GetAllBooks))
}

func ErrorGetAllBooks(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", GetAllBooks))
}

func InfoGetBook(l *zap.Logger, msg string, traceID string, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("action", GetBook))
}

func ErrorGetBook(l *zap.Logger, err error, msg string, traceID string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", GetBook))
}

func InfoCreateBook(l *zap.Logger, msg string, traceID, title string, authorID int64, id ...int64) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("book_title", title),
			zap.Int64("author_id", authorID),
			zap.String("action", CreateBook))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", id[0]),
		zap.String("book_title", title),
		zap.Int64("author_id", authorID),
		zap.String("action", CreateBook))
}

func ErrorCreateBook(l *zap.Logger, err error, msg string, traceID, title string, authorID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.Int64("author_id", authorID),
		zap.Error(err),
		zap.String("action", CreateBook))
}

func InfoUpdateBook(l *zap.Logger, msg string, traceID string, bookID int64, newTitle string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("book_title", newTitle),
		zap.String("action", UpdateBook))
}

func ErrorUpdateBook(l *zap.Logger, err error, msg string, traceID string, bookID int64, newTitle string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("book_title", newTitle),
		zap.Error(err),
		zap.String("action", UpdateBook))
}

func InfoDeleteBook(l *zap.Logger, msg string, traceID string, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("action", DeleteBook))
}

func ErrorDeleteBook(l *zap.Logger, err error, msg string, traceID string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", DeleteBook))
}

func InfoGetBookAuthor(l *zap.Logger, msg string, traceID string, bookID int64, authorID ...int64) {
	if len(authorID) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.Int64("book_id", bookID),
			zap.String("action", GetBookAuthor))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Int64("author_id", authorID[0]),
		zap.String("action", GetBookAuthor))
}

func ErrorGetBookAuthor(l *zap.Logger, err error, msg string, traceID string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", GetBookAuthor))
}

func InfoSearchBooks(l *zap.Logger, msg string, traceID, kind, value string, count int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("search_kind", kind),
		zap.String("search_value", value),
		zap.Int("count", count),
		zap.String("action", SearchBooks))
}

func ErrorSearchBooks(l *zap.Logger, err error, msg string, traceID, kind, value string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("search_kind", kind),
		zap.String("search_value", value),
		zap.Error(err),
		zap.String("action", SearchBooks))
}

func InfoSeedCatalog(l *zap.Logger, msg string, isbn string) {
	logger.MakeInfo(l, msg,
		zap.String("isbn", isbn),
		zap.String("action", SeedCatalog))
}

func ErrorSeedCatalog(l *zap.Logger, err error, msg string, isbn string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("isbn", isbn),
		zap.Error(err),
		zap.String("action", SeedCatalog))
}
