package flex

import (
	"fmt"

	"github.com/goliatone/go-botblock"
)

// Document is a fully converted wire-format message: the alt text shown
// in chat lists plus the nested container tree.
type Document struct {
	AltText string         `json:"altText"`
	Root    map[string]any `json:"contents"`
}

// Message returns the complete platform message object wrapping the
// document.
func (d Document) Message() map[string]any {
	return map[string]any{
		"type":     "flex",
		"altText":  d.AltText,
		"contents": d.Root,
	}
}

// Converter lowers message-layout block subtrees into wire-format JSON.
// It never mutates the input graph and never fails: malformed blocks
// degrade to placeholder text elements.
type Converter struct {
	defaults Defaults
}

// NewConverter builds a converter using the documented attribute
// defaults.
func NewConverter() *Converter {
	return &Converter{defaults: DefaultAttributes()}
}

// ConvertContainer lowers a whole message rooted at a FLEX_CONTAINER
// block. Non-container roots degrade to a single bubble wrapping the
// converted element.
func (c *Converter) ConvertContainer(root botblock.Block, graph botblock.Graph) Document {
	data, ok := root.Data.(botblock.ContainerData)
	if !ok {
		return Document{
			AltText: c.defaults.AltText,
			Root: map[string]any{
				"type": "bubble",
				"body": map[string]any{
					"type":     "box",
					"layout":   "vertical",
					"contents": []map[string]any{c.Convert(root, graph)},
				},
			},
		}
	}

	altText := data.AltText
	if altText == "" {
		altText = c.defaults.AltText
	}

	switch data.Container {
	case "carousel":
		children := graph.ChildrenOf(root)
		bubbles := make([]map[string]any, 0, len(children))
		for _, child := range children {
			bubbles = append(bubbles, c.convertBubble(child, graph))
		}
		return Document{
			AltText: altText,
			Root:    map[string]any{"type": "carousel", "contents": bubbles},
		}
	default:
		return Document{AltText: altText, Root: c.convertBubble(root, graph)}
	}
}

// Convert lowers one block into its wire-format element. Children of
// layout blocks are converted recursively, preserving declared order
// exactly; order decides the rendered top-to-bottom / left-to-right
// layout.
func (c *Converter) Convert(block botblock.Block, graph botblock.Graph) map[string]any {
	switch data := block.Data.(type) {
	case botblock.ContainerData:
		return c.convertBubble(block, graph)
	case botblock.BoxData:
		return c.convertBox(block, data, graph)
	case botblock.ContentData:
		return c.convertContent(data)
	}
	return c.placeholder(block.Type)
}

func (c *Converter) convertBubble(block botblock.Block, graph botblock.Graph) map[string]any {
	out := map[string]any{"type": "bubble"}

	data, _ := block.Data.(botblock.ContainerData)
	emitString(out, "size", data.Size, c.defaults.BubbleSize)
	emitString(out, "direction", data.Direction, c.defaults.Direction)

	// first layout child becomes the body, second the footer; a leading
	// image child becomes the hero
	sections := []string{"body", "footer"}
	idx := 0
	for _, child := range graph.ChildrenOf(block) {
		if content, ok := child.Data.(botblock.ContentData); ok && content.Element == "image" && idx == 0 {
			if _, exists := out["hero"]; !exists {
				out["hero"] = c.convertContent(content)
				continue
			}
		}
		if idx >= len(sections) {
			break
		}
		out[sections[idx]] = c.Convert(child, graph)
		idx++
	}
	return out
}

func (c *Converter) convertBox(block botblock.Block, data botblock.BoxData, graph botblock.Graph) map[string]any {
	layout := data.Layout
	if layout == "" {
		layout = "vertical"
	}
	children := graph.ChildrenOf(block)
	contents := make([]map[string]any, 0, len(children))
	for _, child := range children {
		contents = append(contents, c.Convert(child, graph))
	}

	out := map[string]any{
		"type":     "box",
		"layout":   layout,
		"contents": contents,
	}
	emitString(out, "spacing", data.Spacing, c.defaults.Spacing)
	emitString(out, "margin", data.Margin, c.defaults.Margin)
	emitFlex(out, data.Flex, c.defaults.Flex)
	emitString(out, "width", data.Width, "")
	emitString(out, "height", data.Height, "")
	c.copyBackground(out, data.BackgroundColor)
	c.copyBorder(out, data.BorderColor, data.BorderWidth, data.CornerRadius)
	emitString(out, "paddingAll", data.PaddingAll, "")
	c.copyPosition(out, data.Position, data.OffsetTop, data.OffsetBottom, data.OffsetStart, data.OffsetEnd)
	emitString(out, "justifyContent", data.JustifyContent, "")
	emitString(out, "alignItems", data.AlignItems, "")
	return out
}

func (c *Converter) convertContent(data botblock.ContentData) map[string]any {
	switch data.Element {
	case "text":
		return c.convertText(data)
	case "button":
		return c.convertButton(data)
	case "image":
		return c.convertImage(data)
	case "icon":
		return c.convertIcon(data)
	case "separator":
		out := map[string]any{"type": "separator"}
		emitString(out, "margin", data.Margin, c.defaults.Margin)
		emitString(out, "color", data.Color, "")
		return out
	case "filler":
		out := map[string]any{"type": "filler"}
		emitFlex(out, data.Flex, c.defaults.Flex)
		return out
	}
	return c.placeholder(data.Element)
}

func (c *Converter) convertText(data botblock.ContentData) map[string]any {
	out := map[string]any{"type": "text", "text": data.Text}
	emitString(out, "size", data.Size, c.defaults.TextSize)
	emitString(out, "weight", data.Weight, c.defaults.TextWeight)
	emitString(out, "color", data.Color, c.defaults.TextColor)
	emitString(out, "align", data.Align, c.defaults.Align)
	emitString(out, "gravity", data.Gravity, c.defaults.Gravity)
	if data.Wrap != c.defaults.Wrap {
		out["wrap"] = data.Wrap
	}
	if data.MaxLines > 0 {
		out["maxLines"] = data.MaxLines
	}
	emitString(out, "margin", data.Margin, c.defaults.Margin)
	emitFlex(out, data.Flex, c.defaults.Flex)
	c.copyPosition(out, data.Position, data.OffsetTop, data.OffsetBottom, data.OffsetStart, data.OffsetEnd)
	return out
}

func (c *Converter) convertButton(data botblock.ContentData) map[string]any {
	out := map[string]any{"type": "button", "action": c.ConvertAction(data.Action)}
	emitString(out, "style", data.Style, c.defaults.ButtonStyle)
	emitString(out, "height", data.Height, c.defaults.ButtonHeight)
	emitString(out, "color", data.Color, "")
	emitString(out, "gravity", data.Gravity, c.defaults.Gravity)
	emitString(out, "margin", data.Margin, c.defaults.Margin)
	emitFlex(out, data.Flex, c.defaults.Flex)
	c.copyPosition(out, data.Position, data.OffsetTop, data.OffsetBottom, data.OffsetStart, data.OffsetEnd)
	return out
}

func (c *Converter) convertImage(data botblock.ContentData) map[string]any {
	url := data.URL
	if url == "" {
		url = c.defaults.ImageURL
	}
	out := map[string]any{"type": "image", "url": url}
	emitString(out, "size", data.Size, c.defaults.ImageSize)
	emitString(out, "aspectRatio", data.AspectRatio, c.defaults.AspectRatio)
	emitString(out, "aspectMode", data.AspectMode, c.defaults.AspectMode)
	emitString(out, "align", data.Align, c.defaults.Align)
	emitString(out, "gravity", data.Gravity, c.defaults.Gravity)
	emitString(out, "margin", data.Margin, c.defaults.Margin)
	emitFlex(out, data.Flex, c.defaults.Flex)
	c.copyPosition(out, data.Position, data.OffsetTop, data.OffsetBottom, data.OffsetStart, data.OffsetEnd)
	if data.Action != nil {
		out["action"] = c.ConvertAction(data.Action)
	}
	return out
}

func (c *Converter) convertIcon(data botblock.ContentData) map[string]any {
	url := data.URL
	if url == "" {
		url = c.defaults.ImageURL
	}
	out := map[string]any{"type": "icon", "url": url}
	emitString(out, "size", data.Size, c.defaults.IconSize)
	emitString(out, "margin", data.Margin, c.defaults.Margin)
	return out
}

// ConvertAction lowers one action to its wire form. A missing action or
// an unrecognized kind degrades to a labeled message action so the
// button is never silently dropped.
func (c *Converter) ConvertAction(action *botblock.ActionData) map[string]any {
	if action == nil {
		return map[string]any{
			"type":  "message",
			"label": c.defaults.ButtonLabel,
			"text":  c.defaults.ButtonLabel,
		}
	}
	label := action.Label
	if label == "" {
		label = c.defaults.ButtonLabel
	}
	switch action.Kind {
	case "message":
		text := action.Text
		if text == "" {
			text = label
		}
		return map[string]any{"type": "message", "label": label, "text": text}
	case "uri":
		uri := action.URI
		if uri == "" {
			uri = "https://example.com"
		}
		return map[string]any{"type": "uri", "label": label, "uri": uri}
	case "postback":
		out := map[string]any{"type": "postback", "label": label, "data": action.Data}
		if action.Text != "" {
			out["displayText"] = action.Text
		}
		return out
	case "camera":
		return map[string]any{"type": "camera", "label": label}
	case "camera-roll":
		return map[string]any{"type": "cameraRoll", "label": label}
	case "location":
		return map[string]any{"type": "location", "label": label}
	case "datetime-picker":
		out := map[string]any{"type": "datetimepicker", "label": label, "data": action.Data, "mode": action.Mode}
		if out["mode"] == "" {
			out["mode"] = "datetime"
		}
		emitString(out, "initial", action.Initial, "")
		emitString(out, "max", action.Max, "")
		emitString(out, "min", action.Min, "")
		return out
	case "rich-menu-switch":
		return map[string]any{
			"type":            "richmenuswitch",
			"richMenuAliasId": action.RichMenuID,
			"data":            action.Data,
		}
	case "clipboard":
		return map[string]any{"type": "clipboard", "label": label, "clipboardText": action.Clipboard}
	}
	return map[string]any{"type": "message", "label": label, "text": label}
}

func (c *Converter) placeholder(kind string) map[string]any {
	return map[string]any{
		"type": "text",
		"text": fmt.Sprintf("[unsupported block: %s]", kind),
	}
}

// ---- shared attribute copiers ----
//
// every element kind routes its shared sub-groups through these so no
// kind can silently forget to propagate a property

func (c *Converter) copyPosition(out map[string]any, position, top, bottom, start, end string) {
	emitString(out, "position", position, c.defaults.Position)
	emitString(out, "offsetTop", top, "")
	emitString(out, "offsetBottom", bottom, "")
	emitString(out, "offsetStart", start, "")
	emitString(out, "offsetEnd", end, "")
}

func (c *Converter) copyBorder(out map[string]any, color, width, radius string) {
	emitString(out, "borderColor", color, "")
	emitString(out, "borderWidth", width, "")
	emitString(out, "cornerRadius", radius, "")
}

func (c *Converter) copyBackground(out map[string]any, color string) {
	emitString(out, "backgroundColor", color, "")
}

func emitString(out map[string]any, key, value, def string) {
	if value != "" && value != def {
		out[key] = value
	}
}

func emitFlex(out map[string]any, value *int, def int) {
	if value != nil && *value != def {
		out["flex"] = *value
	}
}
