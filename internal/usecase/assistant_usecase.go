package usecase

import (
	"context"
	"errors"
	"strings"

	"cip_portal/internal/domain/entities"
)

var (
	ErrEmptyMessage        = errors.New("message cannot be empty")
	ErrTemplateNotFound    = errors.New("template not found")
	ErrInvalidTemplateKind = errors.New("invalid template kind")
)

// AssistantReply is a scripted answer plus optional follow-up prompts.
type AssistantReply struct {
	Answer           string
	FollowUp         string
	MarketingTrigger bool
}

// IAssistantUseCase exposes the scripted compliance assistant. Replies
// come from a fixed keyword table; there is no model behind it.

type IAssistantUseCase interface {
	Reply(ctx context.Context, message string) (AssistantReply, error)
	Template(ctx context.Context, kind string) (entities.MarketingTemplate, error)
	Templates(ctx context.Context) ([]entities.MarketingTemplate, error)
}

type AssistantUseCase struct {
	knowledge []entities.KnowledgeBaseEntry
	templates []entities.MarketingTemplate
	fallback  string
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase() *AssistantUseCase {
	return &AssistantUseCase{
		knowledge: entities.DefaultKnowledgeBase(),
		templates: entities.DefaultMarketingTemplates(),
		fallback: "I can help with GSP storage rules, product shelf life, and marketing materials. " +
			"Try asking about storage conditions or promotional copy.",
	}
}

// Reply matches the message against the knowledge base by case
// insensitive keyword containment. First matching entry wins.
func (u *AssistantUseCase) Reply(ctx context.Context, message string) (AssistantReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return AssistantReply{}, ErrEmptyMessage
	}

	lowered := strings.ToLower(message)
	for _, entry := range u.knowledge {
		for _, kw := range entry.Keywords {
			if strings.Contains(lowered, kw) {
				return AssistantReply{
					Answer:           entry.Answer,
					FollowUp:         entry.FollowUp,
					MarketingTrigger: entry.MarketingTrigger,
				}, nil
			}
		}
	}
	return AssistantReply{Answer: u.fallback}, nil
}

func (u *AssistantUseCase) Template(ctx context.Context, kind string) (entities.MarketingTemplate, error) {
	kind = strings.TrimSpace(strings.ToLower(kind))
	if kind == "" {
		return entities.MarketingTemplate{}, ErrInvalidTemplateKind
	}
	for _, t := range u.templates {
		if t.Kind == kind {
			return t, nil
		}
	}
	return entities.MarketingTemplate{}, ErrTemplateNotFound
}

func (u *AssistantUseCase) Templates(ctx context.Context) ([]entities.MarketingTemplate, error) {
	return u.templates, nil
}
