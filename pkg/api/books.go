package api

import (
	"errors"
	"log"
	"net/http"

	"bookshelf/pkg/bookstore"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	books *bookstore.Service
}

func NewBookHandler(books *bookstore.Service) *BookHandler {
	return &BookHandler{books: books}
}

func (h *BookHandler) Create(c *gin.Context) {
	var input bookstore.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, msgCreateFailed+". "+reasonBadPayload)
		return
	}

	id, err := h.books.Create(c.Request.Context(), input)
	if err != nil {
		if reason, ok := validationReason(err); ok {
			fail(c, http.StatusBadRequest, msgCreateFailed+". "+reason)
			return
		}
		log.Printf("Failed to create book: %v", err)
		fail(c, http.StatusInternalServerError, msgInsertFailed)
		return
	}

	success(c, http.StatusCreated, msgCreated, gin.H{"bookId": id})
}

func (h *BookHandler) List(c *gin.Context) {
	filter := bookstore.Filter{
		Name:     c.Query("name"),
		Reading:  c.Query("reading"),
		Finished: c.Query("finished"),
	}

	items, err := h.books.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("Failed to list books: %v", err)
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	success(c, http.StatusOK, "", gin.H{"books": items})
}

func (h *BookHandler) Get(c *gin.Context) {
	book, err := h.books.Get(c.Request.Context(), c.Param("bookId"))
	if errors.Is(err, bookstore.ErrNotFound) {
		fail(c, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		log.Printf("Failed to get book: %v", err)
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	success(c, http.StatusOK, "", gin.H{"book": book})
}

func (h *BookHandler) Update(c *gin.Context) {
	var input bookstore.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, msgUpdateFailed+". "+reasonBadPayload)
		return
	}

	err := h.books.Update(c.Request.Context(), c.Param("bookId"), input)
	if err != nil {
		if reason, ok := validationReason(err); ok {
			fail(c, http.StatusBadRequest, msgUpdateFailed+". "+reason)
			return
		}
		if errors.Is(err, bookstore.ErrNotFound) {
			fail(c, http.StatusNotFound, msgUpdateMissing)
			return
		}
		log.Printf("Failed to update book: %v", err)
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	success(c, http.StatusOK, msgUpdated, nil)
}

func (h *BookHandler) Delete(c *gin.Context) {
	err := h.books.Delete(c.Request.Context(), c.Param("bookId"))
	if errors.Is(err, bookstore.ErrNotFound) {
		fail(c, http.StatusNotFound, msgDeleteMissing)
		return
	}
	if err != nil {
		log.Printf("Failed to delete book: %v", err)
		fail(c, http.StatusInternalServerError, msgServerError)
		return
	}

	success(c, http.StatusOK, msgDeleted, nil)
}

func validationReason(err error) (string, bool) {
	switch {
	case errors.Is(err, bookstore.ErrMissingName):
		return reasonMissingName, true
	case errors.Is(err, bookstore.ErrReadPageExceedsPageCount):
		return reasonReadPage, true
	case errors.Is(err, bookstore.ErrNegativePages):
		return reasonNegativePages, true
	}
	var verr *bookstore.ValidationError
	if errors.As(err, &verr) {
		return reasonBadPayload, true
	}
	return "", false
}
