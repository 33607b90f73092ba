package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

type GetterTx interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var readOnly = pgx.TxOptions{AccessMode: pgx.ReadOnly}

var _ Transactor = (*transactorImpl)(nil)

type transactorImpl struct {
	logger *zap.Logger
	db     GetterTx
}

func NewTransactor(logger *zap.Logger, db GetterTx) *transactorImpl {
	return &transactorImpl{
		logger: logger,
		db:     db,
	}
}

// WithTx runs function inside one read-write transaction. Every gateway
// call made with the passed context joins it.
func (t *transactorImpl) WithTx(ctx context.Context, function func(ctx context.Context) error) error {
	return t.run(ctx, func(ctx context.Context) (pgx.Tx, error) {
		return t.db.Begin(ctx)
	}, function)
}

func (t *transactorImpl) WithReadTx(ctx context.Context, function func(ctx context.Context) error) error {
	return t.run(ctx, func(ctx context.Context) (pgx.Tx, error) {
		return t.db.BeginTx(ctx, readOnly)
	}, function)
}

func (t *transactorImpl) run(
	ctx context.Context,
	begin func(ctx context.Context) (pgx.Tx, error),
	function func(ctx context.Context) error,
) (txErr error) {
	if _, err := extractTx(ctx); err == nil {
		// already inside a transaction, join it
		return function(ctx)
	}

	ctxWithTx, tx, err := injectTx(ctx, begin)

	if err != nil {
		return fmt.Errorf("can not inject transaction, error: %w", err)
	}

	defer func() {
		if txErr != nil {
			err := tx.Rollback(ctxWithTx)
			logger.CheckError(err, t.logger, "failed rollback of tx", zap.Error(err))
			return
		}

		err := tx.Commit(ctxWithTx)
		if logger.CheckError(err, t.logger, "failed commit of tx", zap.Error(err)) {
			txErr = fmt.Errorf("commit tx: %w", err)
		}
	}()

	err = function(ctxWithTx)

	if err != nil {
		return fmt.Errorf("function execution error: %w", err)
	}

	return nil
}

type txInjector struct{}

var ErrTxNotFound = errors.New("tx not found in context")

func injectTx(ctx context.Context, begin func(ctx context.Context) (pgx.Tx, error)) (context.Context, pgx.Tx, error) {
	tx, err := begin(ctx)

	if err != nil {
		return nil, nil, err
	}

	return context.WithValue(ctx, txInjector{}, tx), tx, nil
}

func extractTx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(txInjector{}).(pgx.Tx)

	if !ok {
		return nil, ErrTxNotFound
	}

	return tx, nil
}
