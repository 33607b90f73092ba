package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/project/catalog/internal/entity"
	"github.com/samber/lo"
)

func (i *implementation) GetAllBooks(c *gin.Context) {
	books, err := i.booksUseCase.GetAllBooks(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toBooksResponse(books))
}

func (i *implementation) GetBook(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	book, err := i.booksUseCase.GetBookByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(book))
}

func (i *implementation) CreateBook(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	if err := req.validate(true); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	book, err := i.booksUseCase.CreateBook(c.Request.Context(), req.Title, lo.FromPtr(req.ISBN), *req.authorID())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(book))
}

// UpdateBook keeps the current author when the body has no author.id.
func (i *implementation) UpdateBook(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req bookRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	if err = req.validate(false); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	book, err := i.booksUseCase.UpdateBook(c.Request.Context(), id, req.Title, lo.FromPtr(req.ISBN), req.authorID())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(book))
}

func (i *implementation) DeleteBook(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err = i.booksUseCase.DeleteBook(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (i *implementation) GetBookAuthor(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	author, err := i.booksUseCase.GetAuthorOfBook(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toAuthorResponse(author))
}

func (i *implementation) SearchBooks(c *gin.Context) {
	exact := false
	if raw, ok := c.GetQuery("exact"); ok {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			_ = c.Error(invalidRequest(err))
			return
		}
		exact = parsed
	}

	search, err := entity.NewBookSearch(
		c.Query("q"),
		c.Query("title"),
		c.Query("author"),
		c.Query("isbn"),
		exact,
	)
	if err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	books, err := i.booksUseCase.SearchBooks(c.Request.Context(), search)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toBooksResponse(books))
}
