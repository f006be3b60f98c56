package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/document"
	"github.com/cmlabs-hris/hris-mobile-api/internal/handler/http/response"
)

type DocumentHandler interface {
	ListMyDocuments(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{
		documentService: documentService,
	}
}

// ListMyDocuments implements DocumentHandler.
func (h *documentHandlerImpl) ListMyDocuments(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	filter := document.DocumentFilter{
		Search: queryString(r, "search"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	}

	result, err := h.documentService.ListMyDocuments(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
