package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pashagolub/pgxmock/v4"
)

type txLayer uint

const (
	none txLayer = iota
	extract
)

type errLayer uint

const (
	null errLayer = iota
	db
	f
	beginTx
	commitTx
	rollBackTx
)

var errInternal = errors.New("internal error")

var testTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func insertTxInMock(ctx context.Context, mock pgxmock.PgxPoolIface) context.Context {
	mock.ExpectBegin()
	tx, _ := mock.Begin(ctx)
	ctx = context.WithValue(ctx, txInjector{}, tx)
	return ctx
}

func authorColumns() []string {
	return []string{"id", "name", "created_at", "updated_at"}
}

func bookColumns() []string {
	return []string{
		"id", "title", "isbn", "created_at", "updated_at",
		"author_id", "author_name", "author_created_at", "author_updated_at",
	}
}

func bookRow(rows *pgxmock.Rows, id int64, title, isbn string, authorID int64, authorName string) *pgxmock.Rows {
	return rows.AddRow(id, title, isbn, testTime, testTime, authorID, authorName, testTime, testTime)
}
