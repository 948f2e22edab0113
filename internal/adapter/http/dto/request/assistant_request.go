package request

// AssistantMessageRequest is the payload for a question to the
// scripted assistant.
type AssistantMessageRequest struct {
	Message string `json:"message" binding:"required"`
}
