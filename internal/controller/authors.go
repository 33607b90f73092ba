package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (i *implementation) GetAllAuthors(c *gin.Context) {
	authors, err := i.authorUseCase.GetAllAuthors(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toAuthorsResponse(authors))
}

func (i *implementation) GetAuthor(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	author, err := i.authorUseCase.GetAuthorByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toAuthorResponse(author))
}

func (i *implementation) CreateAuthor(c *gin.Context) {
	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	author, err := i.authorUseCase.CreateAuthor(c.Request.Context(), req.Name)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toAuthorResponse(author))
}

func (i *implementation) UpdateAuthor(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req authorRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		_ = c.Error(invalidRequest(err))
		return
	}

	author, err := i.authorUseCase.UpdateAuthor(c.Request.Context(), id, req.Name)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toAuthorResponse(author))
}

func (i *implementation) DeleteAuthor(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err = i.authorUseCase.DeleteAuthor(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (i *implementation) GetAuthorBooks(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	books, err := i.authorUseCase.GetBooksByAuthorID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toBooksResponse(books))
}

func (i *implementation) CountAuthorBooks(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	count, err := i.authorUseCase.CountBooksByAuthorID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, countResponse{AuthorID: id, Count: count})
}
