package routes

import (
	"assistente_juridico/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChats     = "/chats"
	PathProcesses = "/processes"
	PathMe        = "/me"
)

func addChatRoutes(rg *gin.RouterGroup, h *handlers.ChatHandler, processes *handlers.ProcessHandler) {
	chats := rg.Group(PathChats)
	{
		chats.GET("", h.List)
		chats.POST("", h.Create)
		chats.GET("/:id", h.Get)
		chats.PATCH("/:id/title", h.SetTitle)
		chats.POST("/:id/archive", h.Archive)
		chats.POST("/:id/messages", h.SendMessage)
		chats.GET("/:id/vademecum", h.VademecumSuggestions)
		chats.POST("/:id/vademecum", h.ConsultVademecum)
		chats.GET("/:id/attachments", h.StagedAttachments)
		chats.POST("/:id/attachments", h.StageAttachments)
		chats.DELETE("/:id/attachments/:index", h.RemoveAttachment)
		chats.POST("/:id/processes", processes.Generate)
	}
}

func addProcessRoutes(rg *gin.RouterGroup, h *handlers.ProcessHandler) {
	processes := rg.Group(PathProcesses)
	{
		processes.GET("", h.List)
		processes.GET("/:id", h.Get)
		processes.DELETE("/:id", h.Delete)
		processes.POST("/:id/retry", h.Retry)
		processes.GET("/:id/download", h.Download)
	}
}

func addProfileRoutes(rg *gin.RouterGroup, h *handlers.ProfileHandler) {
	me := rg.Group(PathMe)
	{
		me.GET("", h.Me)
		me.PATCH("", h.Update)
		me.PUT("/password", h.ChangePassword)
		me.POST("/subscription", h.ChangeSubscription)
		me.POST("/credits", h.AddCredits)
	}
}
