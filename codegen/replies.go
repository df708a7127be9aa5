package codegen

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-botblock"
)

// replyStmts lowers one REPLY block into push statements via the
// per-reply-kind dispatch table. Absent fields fill in with documented
// fallback literals so generation never fails on a half-filled block;
// flexFactory names the generated factory for flex replies (empty when
// the message graph has no container for the block to reference).
func (g *Generator) replyStmts(data botblock.ReplyData, flexFactory string) ([]Stmt, bool) {
	switch data.Reply {
	case "text":
		text := data.Text
		if text == "" {
			text = "Hello!"
		}
		return []Stmt{Line("replies.push({ type: 'text', text: %s });", jsString(text))}, true
	case "image":
		content := fallbackURL(data.ContentURL)
		preview := data.PreviewURL
		if preview == "" {
			preview = content
		}
		return []Stmt{Line(
			"replies.push({ type: 'image', originalContentUrl: %s, previewImageUrl: %s });",
			jsString(content), jsString(preview),
		)}, true
	case "audio":
		duration := data.Duration
		if duration <= 0 {
			duration = 1000
		}
		return []Stmt{Line(
			"replies.push({ type: 'audio', originalContentUrl: %s, duration: %d });",
			jsString(fallbackURL(data.ContentURL)), duration,
		)}, true
	case "video":
		content := fallbackURL(data.ContentURL)
		preview := data.PreviewURL
		if preview == "" {
			preview = content
		}
		return []Stmt{Line(
			"replies.push({ type: 'video', originalContentUrl: %s, previewImageUrl: %s });",
			jsString(content), jsString(preview),
		)}, true
	case "location":
		title := data.Title
		if title == "" {
			title = "Location"
		}
		return []Stmt{Line(
			"replies.push({ type: 'location', title: %s, address: %s, latitude: %s, longitude: %s });",
			jsString(title), jsString(data.Address),
			trimFloat(data.Latitude), trimFloat(data.Longitude),
		)}, true
	case "sticker":
		packageID := data.PackageID
		stickerID := data.StickerID
		if packageID == "" || stickerID == "" {
			packageID, stickerID = "11537", "52002734"
		}
		return []Stmt{Line(
			"replies.push({ type: 'sticker', packageId: %s, stickerId: %s });",
			jsString(packageID), jsString(stickerID),
		)}, true
	case "template":
		return g.templateStmts(data), true
	case "quick-reply":
		return g.quickReplyStmts(data), true
	case "flex":
		altText := data.AltText
		if altText == "" {
			altText = "Flex message"
		}
		if flexFactory == "" {
			return []Stmt{
				Comment("no flex container found for this reply"),
				Line("replies.push({ type: 'text', text: %s });", jsString(altText)),
			}, true
		}
		return []Stmt{Line(
			"replies.push({ type: 'flex', altText: %s, contents: %s() });",
			jsString(altText), flexFactory,
		)}, true
	}
	return []Stmt{Comment("unsupported reply block: %s", data.Reply)}, false
}

func (g *Generator) templateStmts(data botblock.ReplyData) []Stmt {
	altText := data.AltText
	if altText == "" {
		altText = "Menu"
	}
	text := data.Text
	if text == "" {
		text = "Please select"
	}
	kind := data.Template
	if kind != "confirm" {
		kind = "buttons"
	}

	actions := data.Actions
	if max := g.limits.MaxTemplateActions; len(actions) > max {
		actions = actions[:max]
	}
	if len(actions) == 0 {
		actions = []botblock.ActionData{{Kind: "message", Label: "OK", Text: "OK"}}
	}
	actionLines := make([]Stmt, 0, len(actions))
	for _, action := range actions {
		actionLines = append(actionLines, Line("%s,", g.jsAction(action)))
	}

	template := []Stmt{Line("type: '%s',", kind)}
	if kind == "buttons" && data.Title != "" {
		template = append(template, Line("title: %s,", jsString(data.Title)))
	}
	template = append(template,
		Line("text: %s,", jsString(text)),
		Block("actions: [", "],", actionLines...),
	)

	return []Stmt{Block(
		"replies.push({",
		"});",
		Line("type: 'template',"),
		Line("altText: %s,", jsString(altText)),
		Block("template: {", "},", template...),
	)}
}

func (g *Generator) quickReplyStmts(data botblock.ReplyData) []Stmt {
	text := data.Text
	if text == "" {
		text = "Choose one"
	}
	actions := data.Actions
	if max := g.limits.MaxQuickReplyItems; len(actions) > max {
		actions = actions[:max]
	}
	if len(actions) == 0 {
		actions = []botblock.ActionData{{Kind: "message", Label: "OK", Text: "OK"}}
	}
	items := make([]Stmt, 0, len(actions))
	for _, action := range actions {
		items = append(items, Line("{ type: 'action', action: %s },", g.jsAction(action)))
	}
	return []Stmt{Block(
		"replies.push({",
		"});",
		Line("type: 'text',"),
		Line("text: %s,", jsString(text)),
		Block("quickReply: {", "},", Block("items: [", "],", items...)),
	)}
}

func fallbackURL(url string) string {
	if strings.TrimSpace(url) == "" {
		return "https://example.com/placeholder.png"
	}
	return url
}

func trimFloat(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", value), "0"), ".")
}
