package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	request "assistente_juridico/internal/adapter/http/dto/request"
	response "assistente_juridico/internal/adapter/http/dto/response"
	"assistente_juridico/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the chat area: conversations, messages, the Vademecum
// consult and the attachment picker.
type ChatHandler struct {
	chats       usecase.IChatUseCase
	attachments usecase.IAttachmentUseCase
	maxFiles    int
	maxBytes    int64
}

func NewChatHandler(chats usecase.IChatUseCase, attachments usecase.IAttachmentUseCase, maxFiles int, maxBytes int64) *ChatHandler {
	return &ChatHandler{chats: chats, attachments: attachments, maxFiles: maxFiles, maxBytes: maxBytes}
}

func (h *ChatHandler) List(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromChatSummaries(h.chats.List(c.Request.Context(), id.OwnerID)))
}

// Create godoc
// @Summary  Open a chat in a legal module
// @Tags     chats
// @Accept   json
// @Produce  json
// @Param    body body request.CreateChatRequest true "module"
// @Success  201 {object} response.ChatResponse
// @Failure  403 {object} pkg.HTTPError
// @Security Bearer
// @Router   /v1/chats [post]
func (h *ChatHandler) Create(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	var payload request.CreateChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	chat, err := h.chats.CreateChat(c.Request.Context(), id, payload.ModuleKey)
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromChat(chat))
}

func (h *ChatHandler) Get(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	chat, err := h.chats.Get(c.Request.Context(), id.OwnerID, c.Param("id"))
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChat(chat))
}

func (h *ChatHandler) SetTitle(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	var payload request.ChatTitleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	chat, err := h.chats.SetTitle(c.Request.Context(), id.OwnerID, c.Param("id"), payload.Title)
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChat(chat))
}

func (h *ChatHandler) Archive(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	chat, err := h.chats.Archive(c.Request.Context(), id.OwnerID, c.Param("id"))
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChat(chat))
}

// SendMessage godoc
// @Summary  Send a message with the staged attachments
// @Description Returns 202 when sent; the assistant reply lands after a delay. A blank
// @Description message with nothing staged is ignored and returns 200 with the chat unchanged.
// @Tags     chats
// @Accept   json
// @Produce  json
// @Param    id   path string true "chat id"
// @Param    body body request.SendMessageRequest true "message"
// @Success  202 {object} response.ChatResponse
// @Success  200 {object} response.ChatResponse
// @Security Bearer
// @Router   /v1/chats/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	ctx := c.Request.Context()
	chatID := c.Param("id")
	staged := h.attachments.Take(id.OwnerID, chatID)
	chat, sent, err := h.chats.SendMessage(ctx, id.OwnerID, chatID, payload.Content, staged)
	if (err != nil || !sent) && len(staged) > 0 {
		h.attachments.Restore(ctx, id.OwnerID, chatID, staged)
	}
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	if !sent {
		c.JSON(http.StatusOK, response.FromChat(chat))
		return
	}
	c.JSON(http.StatusAccepted, response.FromChat(chat))
}

func (h *ChatHandler) VademecumSuggestions(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	laws, err := h.chats.VademecumSuggestions(c.Request.Context(), id.OwnerID, c.Param("id"))
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": laws})
}

func (h *ChatHandler) ConsultVademecum(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	var payload request.ConsultVademecumRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapChatError(usecase.ErrEmptyVademecumLaw))
		return
	}

	chat, err := h.chats.ConsultVademecum(c.Request.Context(), id.OwnerID, c.Param("id"), payload.Law)
	if err != nil {
		writeError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusAccepted, response.FromChat(chat))
}

func (h *ChatHandler) StagedAttachments(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if _, err := h.chats.Get(c.Request.Context(), id.OwnerID, c.Param("id")); err != nil {
		writeError(c, mapChatError(err))
		return
	}
	staged := h.attachments.Staged(id.OwnerID, c.Param("id"))
	c.JSON(http.StatusOK, response.FromStaged(staged, h.maxFiles, h.maxBytes))
}

// StageAttachments godoc
// @Summary  Replace the staged attachment selection
// @Description Multipart field "files". At most 5 files, 10MB in total, PDF/DOC/DOCX/TXT.
// @Tags     chats
// @Accept   multipart/form-data
// @Produce  json
// @Param    id    path     string true "chat id"
// @Param    files formData file   true "files"
// @Success  200 {object} response.StagedAttachmentsResponse
// @Failure  422 {object} pkg.HTTPError
// @Security Bearer
// @Router   /v1/chats/{id}/attachments [post]
func (h *ChatHandler) StageAttachments(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	headers := form.File["files"]
	uploads, closeAll, err := openUploads(headers)
	defer closeAll()
	if err != nil {
		zap.L().Error("[attachment][handler] open upload", zap.Error(err))
		writeError(c, internalError(err))
		return
	}

	chatID := c.Param("id")
	staged, err := h.attachments.Stage(c.Request.Context(), id, chatID, uploads)
	if err != nil {
		writeError(c, mapAttachmentError(err, h.maxFiles))
		return
	}
	c.JSON(http.StatusOK, response.FromStaged(staged, h.maxFiles, h.maxBytes))
}

func (h *ChatHandler) RemoveAttachment(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeError(c, mapAttachmentError(usecase.ErrAttachmentIndex, h.maxFiles))
		return
	}

	staged, err := h.attachments.Remove(c.Request.Context(), id.OwnerID, c.Param("id"), index)
	if err != nil {
		writeError(c, mapAttachmentError(err, h.maxFiles))
		return
	}
	c.JSON(http.StatusOK, response.FromStaged(staged, h.maxFiles, h.maxBytes))
}

func openUploads(headers []*multipart.FileHeader) ([]usecase.Upload, func(), error) {
	var opened []io.Closer
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	uploads := make([]usecase.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, err
		}
		opened = append(opened, f)
		uploads = append(uploads, usecase.Upload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}
	return uploads, closeAll, nil
}
