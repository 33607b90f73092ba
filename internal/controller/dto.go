package controller

import (
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/catalog/internal/entity"
	"github.com/samber/lo"
)

const (
	maxNameLength  = 255
	maxTitleLength = 512
	maxIsbnLength  = 32
)

type authorRequest struct {
	Name string `json:"name"`
}

func (a authorRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required, validation.Length(1, maxNameLength)),
	)
}

type authorRef struct {
	ID *int64 `json:"id"`
}

type bookRequest struct {
	Title  string     `json:"title"`
	ISBN   *string    `json:"isbn"`
	Author *authorRef `json:"author"`
}

var errAuthorIDRequired = errors.New("author.id is required")

func (b bookRequest) validate(authorRequired bool) error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required, validation.Length(1, maxTitleLength)),
		validation.Field(&b.ISBN, validation.Length(1, maxIsbnLength)),
		validation.Field(&b.Author, validation.By(func(any) error {
			if authorRequired && b.authorID() == nil {
				return errAuthorIDRequired
			}
			return nil
		})),
	)
}

// authorID is nil when the request carries no author or an author without id.
func (b bookRequest) authorID() *int64 {
	if b.Author == nil {
		return nil
	}
	return b.Author.ID
}

type authorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookResponse struct {
	ID     int64          `json:"id"`
	Title  string         `json:"title"`
	ISBN   *string        `json:"isbn"`
	Author authorResponse `json:"author"`
}

type countResponse struct {
	AuthorID int64 `json:"author_id"`
	Count    int64 `json:"count"`
}

func toAuthorResponse(author entity.Author) authorResponse {
	return authorResponse{
		ID:   author.ID,
		Name: author.Name,
	}
}

func toBookResponse(book entity.Book) bookResponse {
	return bookResponse{
		ID:     book.ID,
		Title:  book.Title,
		ISBN:   lo.EmptyableToPtr(book.ISBN),
		Author: toAuthorResponse(book.Author),
	}
}

func toAuthorsResponse(authors []entity.Author) []authorResponse {
	return lo.Map(authors, func(author entity.Author, _ int) authorResponse {
		return toAuthorResponse(author)
	})
}

func toBooksResponse(books []entity.Book) []bookResponse {
	return lo.Map(books, func(book entity.Book, _ int) bookResponse {
		return toBookResponse(book)
	})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalidRequest(errors.New("id must be an integer"))
	}

	if err = validation.Validate(id, validation.Min(int64(1))); err != nil {
		return 0, invalidRequest(errors.New("id must be positive"))
	}

	return id, nil
}
