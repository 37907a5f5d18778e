package concierge

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"stayfront/models"
)

// Server-side caps on what a client may feed into the model.
const (
	maxMessages   = 20
	maxMessageLen = 2000
)

// Known prompt-injection phrasings and control tokens are stripped from
// user text before it reaches the model, and from model text before it
// reaches the client.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+(all\s+|any\s+)?(previous|prior|above)\s+(instructions?|prompts?|rules?)`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+|any\s+)?(previous|prior|above)\s+(instructions?|prompts?|rules?)`),
	regexp.MustCompile(`(?i)you\s+are\s+now\s+(a|an|the)\s`),
	regexp.MustCompile(`(?i)\bsystem\s*prompt\b`),
	regexp.MustCompile(`(?i)^\s*(system|developer)\s*:`),
	regexp.MustCompile(`<\|[^|>]*\|>`),
	regexp.MustCompile(`\[(INST|/INST|SYS|/SYS)\]`),
}

var markdownPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\*\*([^*]*)\*\*`),
	regexp.MustCompile(`\*([^*]*)\*`),
	regexp.MustCompile("`([^`]*)`"),
	regexp.MustCompile(`(?m)^#{1,6}\s*`),
}

// sanitizeText removes injection phrasings and collapses excess whitespace.
func sanitizeText(text string) string {
	for _, re := range injectionPatterns {
		text = re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

// stripMarkdown flattens model formatting into plain text for the chat UI.
func stripMarkdown(text string) string {
	for _, re := range markdownPatterns {
		text = re.ReplaceAllString(text, "$1")
	}
	return strings.TrimSpace(text)
}

// sanitizeMessages enforces the role whitelist and the count/length caps.
// Only the most recent messages survive the cap.
func sanitizeMessages(messages []models.ChatMessage) []models.ChatMessage {
	cleaned := make([]models.ChatMessage, 0, len(messages))
	for _, m := range messages {
		if m.Role != "user" && m.Role != "assistant" {
			continue
		}
		content := m.Content
		if len(content) > maxMessageLen {
			// Back off to a rune boundary so the cut never produces
			// invalid UTF-8.
			cut := maxMessageLen
			for cut > 0 && !utf8.RuneStart(content[cut]) {
				cut--
			}
			content = content[:cut]
		}
		content = sanitizeText(content)
		if content == "" {
			continue
		}
		cleaned = append(cleaned, models.ChatMessage{Role: m.Role, Content: content})
	}
	if len(cleaned) > maxMessages {
		cleaned = cleaned[len(cleaned)-maxMessages:]
	}
	return cleaned
}
