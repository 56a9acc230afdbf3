package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/docs"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/pkg/apierrors"
)

// DocsHandler serves the OpenAPI document, rendered once on first request.
type DocsHandler struct {
	version string

	once     sync.Once
	document []byte
	err      error
}

func NewDocsHandler(version string) *DocsHandler {
	return &DocsHandler{version: version}
}

func (h *DocsHandler) OpenAPI(c *gin.Context) {
	h.once.Do(func() {
		h.document, h.err = docs.Build(h.version)
	})

	if h.err != nil {
		zap.L().Error("failed to build openapi document", zap.Error(h.err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDocs, middleware.GetLang(c)))
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", h.document)
}
