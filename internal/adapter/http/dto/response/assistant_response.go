package response

import (
	"cip_portal/internal/domain/entities"
	"cip_portal/internal/usecase"
)

type AssistantReplyResponse struct {
	Answer           string `json:"answer"`
	FollowUp         string `json:"follow_up,omitempty"`
	MarketingTrigger bool   `json:"marketing_trigger"`
}

func FromAssistantReply(r usecase.AssistantReply) AssistantReplyResponse {
	return AssistantReplyResponse{
		Answer:           r.Answer,
		FollowUp:         r.FollowUp,
		MarketingTrigger: r.MarketingTrigger,
	}
}

type MarketingTemplateResponse struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func FromMarketingTemplate(t entities.MarketingTemplate) MarketingTemplateResponse {
	return MarketingTemplateResponse{Kind: t.Kind, Title: t.Title, Content: t.Content}
}

func FromMarketingTemplates(ts []entities.MarketingTemplate) []MarketingTemplateResponse {
	out := make([]MarketingTemplateResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromMarketingTemplate(t))
	}
	return out
}
