package handlers

import (
	"net/http"

	request "assistente_juridico/internal/adapter/http/dto/request"
	response "assistente_juridico/internal/adapter/http/dto/response"
	"assistente_juridico/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProcessHandler struct {
	usecase usecase.IProcessUseCase
}

func NewProcessHandler(uc usecase.IProcessUseCase) *ProcessHandler {
	return &ProcessHandler{usecase: uc}
}

// Generate godoc
// @Summary  Generate a process document from a chat
// @Description The process starts pending and completes (or fails) in the background.
// @Tags     processes
// @Accept   json
// @Produce  json
// @Param    id   path string true "chat id"
// @Param    body body request.GenerateProcessRequest true "title"
// @Success  202 {object} response.ProcessResponse
// @Security Bearer
// @Router   /v1/chats/{id}/processes [post]
func (h *ProcessHandler) Generate(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	var payload request.GenerateProcessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	p, err := h.usecase.Generate(c.Request.Context(), id, c.Param("id"), payload.Title)
	if err != nil {
		writeError(c, mapProcessError(err))
		return
	}
	c.JSON(http.StatusAccepted, response.FromProcess(p))
}

func (h *ProcessHandler) List(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromProcesses(h.usecase.List(c.Request.Context(), id.OwnerID)))
}

func (h *ProcessHandler) Get(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	p, err := h.usecase.Get(c.Request.Context(), id.OwnerID, c.Param("id"))
	if err != nil {
		writeError(c, mapProcessError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProcess(p))
}

func (h *ProcessHandler) Delete(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id.OwnerID, c.Param("id")); err != nil {
		writeError(c, mapProcessError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProcessHandler) Retry(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	p, err := h.usecase.Retry(c.Request.Context(), id.OwnerID, c.Param("id"))
	if err != nil {
		writeError(c, mapProcessError(err))
		return
	}
	c.JSON(http.StatusAccepted, response.FromProcess(p))
}

// Download godoc
// @Summary  Download link for a completed process
// @Tags     processes
// @Produce  json
// @Param    id path string true "process id"
// @Success  200 {object} response.DownloadResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /v1/processes/{id}/download [get]
func (h *ProcessHandler) Download(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	p, err := h.usecase.Get(ctx, id.OwnerID, c.Param("id"))
	if err != nil {
		writeError(c, mapProcessError(err))
		return
	}
	url, err := h.usecase.Download(ctx, id.OwnerID, p.ID)
	if err != nil {
		writeError(c, mapProcessError(err))
		return
	}
	c.JSON(http.StatusOK, response.DownloadResponse{FileName: p.FileName, DownloadURL: url})
}
