package library

import (
	"context"
	"errors"

	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
)

const seedIsbn = "963-8386-87-0"

// SeedCatalog stores the demo catalog unless its book is already present.
// It reports whether anything was written.
func (l *libraryImpl) SeedCatalog(ctx context.Context) (bool, error) {
	var seeded bool
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		exists, txErr := l.booksRepository.ExistsByIsbn(ctx, seedIsbn)
		if txErr != nil || exists {
			return txErr
		}

		rowling, txErr := l.authorRepository.Save(ctx, entity.Author{Name: "J.K. Rowling"})
		if txErr != nil {
			return txErr
		}

		_, txErr = l.booksRepository.Save(ctx, entity.Book{
			Title:  "Harry Potter és a bölcsek köve",
			ISBN:   seedIsbn,
			Author: rowling,
		})
		if txErr != nil {
			return txErr
		}

		_, txErr = l.authorRepository.Save(ctx, entity.Author{Name: "Stephen King"})
		if txErr != nil {
			return txErr
		}

		seeded = true
		return nil
	})

	// another instance seeded concurrently
	if errors.Is(err, entity.ErrIsbnTaken) {
		seeded, err = false, nil
	}

	if log.ErrorSeedCatalog(l.logger, err, "Failed seeding catalog", seedIsbn) {
		return false, err
	}

	if seeded {
		log.InfoSeedCatalog(l.logger, "Seeded catalog", seedIsbn)
	} else {
		log.InfoSeedCatalog(l.logger, "Catalog already seeded", seedIsbn)
	}
	return seeded, nil
}
