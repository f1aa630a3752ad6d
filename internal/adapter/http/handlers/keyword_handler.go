package handlers

import (
	"errors"
	"net/http"

	request "orcafacil/internal/adapter/http/dto/request"
	response "orcafacil/internal/adapter/http/dto/response"
	"orcafacil/internal/usecase"
	"orcafacil/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidKeywordPayload = pkg.NewDomainErrorSimple("INVALID_KEYWORD_INPUT", "Invalid keyword payload", http.StatusBadRequest)

// KeywordHandler maintains the expiry-keyword dictionary.

type KeywordHandler struct {
	usecase usecase.IKeywordUseCase
}

func NewKeywordHandler(uc usecase.IKeywordUseCase) *KeywordHandler {
	return &KeywordHandler{usecase: uc}
}

// CreateKeyword godoc
// @Summary Register a keyword with its expiry window
// @Accept json
// @Produce json
// @Param keyword body request.CreateKeywordRequest true "keyword"
// @Success 201 {object} response.KeywordResponse
// @Router /keywords [post]
func (h *KeywordHandler) CreateKeyword(c *gin.Context) {
	var payload request.CreateKeywordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidKeywordPayload.HTTPStatus, errInvalidKeywordPayload.ToHTTPError())
		return
	}

	k, err := h.usecase.Create(c.Request.Context(), payload.Palavra, payload.DiasExpiracao)
	if err != nil {
		appErr := mapKeywordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromKeyword(k))
}

// ListKeywords godoc
// @Summary List every keyword, active or not
// @Produce json
// @Success 200 {array} response.KeywordResponse
// @Router /keywords [get]
func (h *KeywordHandler) ListKeywords(c *gin.Context) {
	ks, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapKeywordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromKeywords(ks))
}

// UpdateKeywordAtiva godoc
// @Summary Activate or deactivate a keyword
// @Accept json
// @Produce json
// @Param id path string true "keyword id"
// @Param ativa body request.UpdateKeywordAtivaRequest true "active flag"
// @Success 200 {object} response.KeywordResponse
// @Router /keywords/{id}/ativa [patch]
func (h *KeywordHandler) UpdateKeywordAtiva(c *gin.Context) {
	var payload request.UpdateKeywordAtivaRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Ativa == nil {
		c.JSON(errInvalidKeywordPayload.HTTPStatus, errInvalidKeywordPayload.ToHTTPError())
		return
	}

	k, err := h.usecase.SetAtiva(c.Request.Context(), c.Param("id"), *payload.Ativa)
	if err != nil {
		appErr := mapKeywordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromKeyword(k))
}

func mapKeywordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidKeywordID), errors.Is(err, usecase.ErrInvalidPalavra), errors.Is(err, usecase.ErrInvalidDiasExpiracao):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrKeywordNotFound):
		return pkg.NewDomainErrorSimple("KEYWORD_NOT_FOUND", "Keyword not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
