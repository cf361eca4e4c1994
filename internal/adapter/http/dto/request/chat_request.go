package request

type CreateChatRequest struct {
	ModuleKey string `json:"module_key" binding:"required"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type ChatTitleRequest struct {
	Title string `json:"title"`
}

type ConsultVademecumRequest struct {
	Law string `json:"law" binding:"required"`
}

type GenerateProcessRequest struct {
	Title string `json:"title"`
}
