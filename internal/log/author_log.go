package log

import (
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

func InfoGetAllAuthors(l *zap.Logger, msg string, traceID string, count int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int("count", count),
		zap.String("action", GetAllAuthors))
}

func ErrorGetAllAuthors(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", GetAllAuthors))
}

func InfoGetAuthor(l *zap.Logger, msg string, traceID string, authorID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", authorID),
		zap.String("action", GetAuthor))
}

func ErrorGetAuthor(l *zap.Logger, err error, msg string, traceID string, authorID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", authorID),
		zap.Error(err),
		zap.String("action", GetAuthor))
}

func InfoCreateAuthor(l *zap.Logger, msg string, traceID, authorName string, id ...int64) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("author_name", authorName),
			zap.String("action", CreateAuthor))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", id[0]),
		zap.String("author_name", authorName),
		zap.String("action", CreateAuthor))
}

func ErrorCreateAuthor(l *zap.Logger, err error, msg string, traceID, authorName string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_name", authorName),
		zap.Error(err),
		zap.String("action", CreateAuthor))
}

func InfoUpdateAuthor(l *zap.Logger, msg string, traceID string, authorID int64, newName string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", authorID),
		zap.String("author_name", newName),
		zap.String("action", UpdateAuthor))
}

func ErrorUpdateAuthor(l *zap.Logger, err error, msg string, traceID string, authorID int64, newName string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", authorID),
		zap.String("author_name", newName),
		zap.Error(err),
		zap.String("action", UpdateAuthor))
}

func InfoDeleteAuthor(l *zap.Logger, msg string, traceID string, authorID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", authorID),
		zap.String("action", DeleteAuthor))
}

func ErrorDeleteAuthor(l *zap.Logger, err error, msg string, traceID string, authorID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", authorID),
		zap.Error(err),
		zap.String("action", DeleteAuthor))
}

func InfoGetAuthorBooks(l *zap.Logger, msg string, traceID string, authorID int64, count int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", authorID),
		zap.Int("count", count),
		zap.String("action", GetAuthorBooks))
}

func ErrorGetAuthorBooks(l *zap.Logger, err error, msg string, traceID string, authorID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", authorID),
		zap.Error(err),
		zap.String("action", GetAuthorBooks))
}

func InfoCountAuthorBooks(l *zap.Logger, msg string, traceID string, authorID, count int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", authorID),
		zap.Int64("count", count),
		zap.String("action", CountAuthorBooks))
}

func ErrorCountAuthorBooks(l *zap.Logger, err error, msg string, traceID string, authorID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("author_id", authorID),
		zap.Error(err),
		zap.String("action", CountAuthorBooks))
}
