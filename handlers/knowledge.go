package handlers

import (
	"net/http"

	"scholaris/models"
	"scholaris/services/knowledge"
	"scholaris/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// KnowledgeHandler serves knowledge-base ingestion.
type KnowledgeHandler struct {
	Service knowledge.KnowledgeService
}

// NewKnowledgeHandler creates a new KnowledgeHandler.
func NewKnowledgeHandler(service knowledge.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{Service: service}
}

// HandleUploadDocument indexes (or re-indexes) a text document so query
// answers can be grounded in it.
func (h *KnowledgeHandler) HandleUploadDocument(c *gin.Context) {
	var req models.UploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid upload request", err.Error())
		return
	}
	if req.DocumentID == "" || req.Text == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid upload request", "document_id and text are required")
		return
	}

	chunks, err := h.Service.IngestDocument(c.Request.Context(), req.DocumentID, req.Text)
	if err != nil {
		zap.L().Error("document ingestion failed", zap.String("documentID", req.DocumentID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to index document", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.UploadDocumentResponse{DocumentID: req.DocumentID, Chunks: chunks})
}
