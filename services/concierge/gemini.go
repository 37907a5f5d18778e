package concierge

import (
	"context"

	genai "github.com/google/generative-ai-go/genai"
)

// GeminiModel is the production ChatModel: each Start configures a fresh
// generative model with the system prompt and the search tool declared.
type GeminiModel struct {
	Client    *genai.Client
	ModelName string
}

func (g *GeminiModel) Start(history []*genai.Content) Conversation {
	model := g.Client.GenerativeModel(g.ModelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.Tools = []*genai.Tool{searchTool}

	chat := model.StartChat()
	chat.History = history
	return &geminiConversation{model: model, chat: chat}
}

type geminiConversation struct {
	model *genai.GenerativeModel
	chat  *genai.ChatSession
}

func (c *geminiConversation) Send(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	return c.chat.SendMessage(ctx, parts...)
}

func (c *geminiConversation) DisableTools() {
	c.model.ToolConfig = &genai.ToolConfig{
		FunctionCallingConfig: &genai.FunctionCallingConfig{Mode: genai.FunctionCallingNone},
	}
}
