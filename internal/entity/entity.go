package entity

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound = errors.New("not found")

	ErrAuthorNotFound = fmt.Errorf("author %w", ErrNotFound)
	ErrBookNotFound   = fmt.Errorf("book %w", ErrNotFound)

	ErrIsbnTaken = errors.New("isbn already taken")
)

// Author owns its books. The books are never stored on the author itself,
// they are looked up by author id.
type Author struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Book belongs to exactly one Author. An empty ISBN means the book has none.
type Book struct {
	ID        int64
	Title     string
	ISBN      string
	Author    Author
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Book) IsNew() bool {
	return b.ID == 0
}

func (a Author) IsNew() bool {
	return a.ID == 0
}
