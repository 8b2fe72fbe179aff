package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"reddit-pulse/internal/model"
)

// Labeler assigns a short human-readable name to a topic given its top
// terms. Labels are a presentation nicety; topic fitting never depends on
// them.
type Labeler interface {
	LabelTopic(ctx context.Context, terms []string) (string, error)
}

// OpenAIClient implements Labeler using the OpenAI Chat Completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAI(cfg Config) *OpenAIClient {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	if cfg.Model == "" {
		panic("OpenAI model must be specified")
	}
	return &OpenAIClient{client: c, model: cfg.Model}
}

func (o *OpenAIClient) LabelTopic(ctx context.Context, terms []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	sys := "You name discussion topics. Given the top terms of one topic from tech forum posts, answer with a 2-4 word name for the topic. Answer with the name only, no punctuation."
	user := fmt.Sprintf("Top terms: %s", strings.Join(terms, ", "))
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sys},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// LabelTopics attaches labels to a fitted topic list, best-effort. A
// failed call leaves that topic unlabeled.
func LabelTopics(ctx context.Context, labeler Labeler, ts []model.Topic) []model.Topic {
	if labeler == nil {
		return ts
	}
	for i := range ts {
		label, err := labeler.LabelTopic(ctx, ts[i].TopTerms)
		if err != nil {
			slog.Warn("ai: topic labeling failed", "topic", ts[i].Index, "err", err)
			continue
		}
		ts[i].Label = label
	}
	return ts
}
