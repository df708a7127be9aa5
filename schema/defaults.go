package schema

import "github.com/goliatone/go-botblock"

var (
	logicOnly = []botblock.WorkspaceContext{botblock.ContextLogic}
	flexOnly  = []botblock.WorkspaceContext{botblock.ContextFlex}
)

// DefaultDefinitions returns the built-in block palette. The table is the
// single source for type ids, categories, defaults, and editor field
// metadata; both the editor and the compiler read it.
func DefaultDefinitions() []BlockDefinition {
	defs := []BlockDefinition{}
	defs = append(defs, eventDefinitions()...)
	defs = append(defs, replyDefinitions()...)
	defs = append(defs, controlDefinitions()...)
	defs = append(defs, settingDefinitions()...)
	defs = append(defs, flexDefinitions()...)
	return defs
}

func eventDefinitions() []BlockDefinition {
	event := func(id, label, kind string, tags ...string) BlockDefinition {
		return BlockDefinition{
			Type:     id,
			Label:    label,
			Category: botblock.CategoryEvent,
			Contexts: logicOnly,
			Defaults: map[string]any{"event": kind},
			Options: []ConfigOption{
				{Key: "match", Kind: KindString},
			},
			Tags: append([]string{"event"}, tags...),
		}
	}
	return []BlockDefinition{
		event("event-text-message", "Text Message Received", "text", "message"),
		event("event-image-message", "Image Message Received", "image", "message", "media"),
		event("event-audio-message", "Audio Message Received", "audio", "message", "media"),
		event("event-video-message", "Video Message Received", "video", "message", "media"),
		event("event-file-message", "File Message Received", "file", "message"),
		event("event-sticker-message", "Sticker Message Received", "sticker", "message"),
		event("event-postback", "Postback Received", "postback"),
		event("event-follow", "Bot Followed", "follow"),
		event("event-unfollow", "Bot Unfollowed", "unfollow"),
		event("event-member-joined", "Member Joined", "member-joined", "group"),
		event("event-member-left", "Member Left", "member-left", "group"),
	}
}

func replyDefinitions() []BlockDefinition {
	return []BlockDefinition{
		{
			Type: "reply-text", Label: "Send Text",
			Category: botblock.CategoryReply, Contexts: logicOnly,
			Defaults: map[string]any{"reply": "text", "text": "Hello!"},
			Options: []ConfigOption{
				{Key: "text", Kind: KindString, Default: "Hello!"},
			},
			Tags: []string{"reply"},
		},
		{
			Type: "reply-image", Label: "Send Image",
			Category: botblock.CategoryReply, Contexts: logicOnly,
			Defaults: map[string]any{"reply": "image"},
			Options: []ConfigOption{
				{Key: "originalContentUrl", Kind: KindURL},
				{Key: "previewImageUrl", Kind: KindURL},
			},
			Tags: []string{"reply", "media"},
		},
		{
			Type: "reply-audio", Label: "Send Audio",
			Category: botblock.CategoryReply, Contexts: logicOnly,
			Defaults: map[string]any{"reply": "audio", "duration": 1000},
			Options: []ConfigOption{
				{Key: "originalContentUrl", Kind: KindURL},
				{Key: "duration", Kind: KindNumber, Default: 1000},
			},
			Tags: []string{"reply", "media"},
		},
		{
			Type: "reply-video", Label: "Send Video",
			Category: botblock.CategoryReply, Contexts: logicOnly,
			Defaults: map[string]any{"reply": "video"},
			Options: []ConfigOption{
				{Key: "originalContentUrl", Kind: KindURL},
				{Key: "previewImageUrl", Kind: KindURL},
			},
			Tags: []string{"reply", "media"},
		},
		{
			Type: "reply-location", Label: "Send Location",
			Category: botblock.CategoryReply, Contexts: logicOnly,
			Defaults: map[string]any{"reply": "location", "title": "Location"},
			Options: []ConfigOption{
				{Key: "title", Kind: KindString, Default: "Location"},
				{Key: "address", Kind: KindString},
				{Key: "latitude", Kind: KindNumber},
				{Key: "longitude", Kind: KindNumber},
			},
			Tags: []string{"reply"},
		},
		{
			Type: "reply-sticker", Label: "Send Sticker",
			Category: botblock.CategoryReply, Contexts: logicOnly,
			Defaults: map[string]any{"reply": "sticker", "packageId": "11537", "stickerId": "52002734"},
			Options: []ConfigOption{
				{Key: "packageId", Kind: KindString, Default: "11537"},
				{Key: "stickerId", Kind: KindString, Default: "52002734"},
			},
			Tags: []string{"reply"},
		},
		{
			Type: "reply-template", Label: "Send Button Template",
			Category: botblock.CategoryReply, Contexts: logicOnly,
			Defaults: map[string]any{"reply": "template", "template": "buttons", "altText": "Menu", "title": "Menu", "text": "Please select"},
			Options: []ConfigOption{
				{Key: "template", Kind: KindEnum, Enum: []string{"buttons", "confirm"}, Default: "buttons"},
				{Key: "altText", Kind: KindString, Default: "Menu"},
				{Key: "title", Kind: KindString, VisibleWhen: "template=buttons"},
				{Key: "text", Kind: KindString, Default: "Please select"},
				{Key: "actions", Kind: KindActions},
			},
			Tags: []string{"reply", "interactive"},
		},
		{
			Type: "reply-quick-reply", Label: "Send Quick Reply",
			Category: botblock.CategoryReply, Contexts: logicOnly,
			Defaults: map[string]any{"reply": "quick-reply", "text": "Choose one"},
			Options: []ConfigOption{
				{Key: "text", Kind: KindString, Default: "Choose one"},
				{Key: "actions", Kind: KindActions},
			},
			Tags: []string{"reply", "interactive"},
		},
		{
			Type: "reply-flex", Label: "Send Flex Message",
			Category: botblock.CategoryReply, Contexts: logicOnly,
			Defaults: map[string]any{"reply": "flex", "altText": "Flex message"},
			Options: []ConfigOption{
				{Key: "altText", Kind: KindString, Default: "Flex message"},
				{Key: "flexBlockId", Kind: KindString},
			},
			Tags: []string{"reply", "flex"},
		},
	}
}

func controlDefinitions() []BlockDefinition {
	return []BlockDefinition{
		{
			Type: "control-if", Label: "Condition",
			Category: botblock.CategoryControl, Contexts: logicOnly,
			Defaults: map[string]any{"control": "if", "condition": "true"},
			Options: []ConfigOption{
				{Key: "condition", Kind: KindString, Default: "true"},
			},
			Tags: []string{"control"},
		},
		{
			Type: "control-loop", Label: "Repeat",
			Category: botblock.CategoryControl, Contexts: logicOnly,
			Defaults: map[string]any{"control": "loop", "times": 1},
			Options: []ConfigOption{
				{Key: "times", Kind: KindNumber, Default: 1},
			},
			Tags: []string{"control"},
		},
		{
			Type: "control-delay", Label: "Wait",
			Category: botblock.CategoryControl, Contexts: logicOnly,
			Defaults: map[string]any{"control": "delay", "seconds": 1.0},
			Options: []ConfigOption{
				{Key: "seconds", Kind: KindNumber, Default: 1.0},
			},
			Tags: []string{"control"},
		},
		{
			Type: "control-try", Label: "Try / Catch",
			Category: botblock.CategoryControl, Contexts: logicOnly,
			Defaults: map[string]any{"control": "try"},
			Tags:     []string{"control"},
		},
		{
			Type: "control-function", Label: "Function Stub",
			Category: botblock.CategoryControl, Contexts: logicOnly,
			Defaults: map[string]any{"control": "function", "name": "myFunction"},
			Options: []ConfigOption{
				{Key: "name", Kind: KindString, Default: "myFunction", Pattern: `^[A-Za-z_][A-Za-z0-9_]*$`},
			},
			Tags: []string{"control"},
		},
	}
}

func settingDefinitions() []BlockDefinition {
	return []BlockDefinition{
		{
			Type: "setting-constant", Label: "Bot Setting",
			Category: botblock.CategorySetting, Contexts: logicOnly,
			Defaults: map[string]any{"setting": "BOT_NAME", "value": "my-bot"},
			Options: []ConfigOption{
				{Key: "setting", Kind: KindString, Default: "BOT_NAME", Pattern: `^[A-Z][A-Z0-9_]*$`},
				{Key: "value", Kind: KindString, Default: "my-bot"},
			},
			Tags: []string{"setting"},
		},
	}
}

func flexDefinitions() []BlockDefinition {
	return []BlockDefinition{
		{
			Type: "flex-bubble", Label: "Bubble",
			Category: botblock.CategoryFlexContainer, Contexts: flexOnly,
			Defaults: map[string]any{"container": "bubble", "altText": "Flex message"},
			Options: []ConfigOption{
				{Key: "altText", Kind: KindString, Default: "Flex message"},
				{Key: "size", Kind: KindEnum, Enum: []string{"nano", "micro", "kilo", "mega", "giga"}, Default: "mega"},
				{Key: "direction", Kind: KindEnum, Enum: []string{"ltr", "rtl"}, Default: "ltr"},
			},
			Tags: []string{"flex", "container"},
		},
		{
			Type: "flex-carousel", Label: "Carousel",
			Category: botblock.CategoryFlexContainer, Contexts: flexOnly,
			Defaults: map[string]any{"container": "carousel", "altText": "Flex message"},
			Options: []ConfigOption{
				{Key: "altText", Kind: KindString, Default: "Flex message"},
			},
			Tags: []string{"flex", "container"},
		},
		{
			Type: "flex-box", Label: "Box",
			Category: botblock.CategoryFlexLayout, Contexts: flexOnly,
			Defaults: map[string]any{"layout": "vertical"},
			Options: []ConfigOption{
				{Key: "layout", Kind: KindEnum, Enum: []string{"horizontal", "vertical", "baseline"}, Default: "vertical"},
				{Key: "spacing", Kind: KindEnum, Enum: []string{"none", "xs", "sm", "md", "lg", "xl", "xxl"}, Default: "none"},
				{Key: "margin", Kind: KindEnum, Enum: []string{"none", "xs", "sm", "md", "lg", "xl", "xxl"}, Default: "none"},
				{Key: "backgroundColor", Kind: KindColor},
				{Key: "paddingAll", Kind: KindString, Pattern: `^\d+(px|%)$`},
			},
			Tags: []string{"flex", "layout"},
		},
		{
			Type: "flex-text", Label: "Text",
			Category: botblock.CategoryFlexContent, Contexts: flexOnly,
			Defaults: map[string]any{"element": "text", "text": "Text"},
			Options: []ConfigOption{
				{Key: "text", Kind: KindString, Default: "Text"},
				{Key: "size", Kind: KindEnum, Enum: []string{"xxs", "xs", "sm", "md", "lg", "xl", "xxl", "3xl", "4xl", "5xl"}, Default: "md"},
				{Key: "weight", Kind: KindEnum, Enum: []string{"regular", "bold"}, Default: "regular"},
				{Key: "color", Kind: KindColor, Default: "#000000"},
				{Key: "wrap", Kind: KindBoolean, Default: false},
				{Key: "maxLines", Kind: KindNumber},
			},
			Tags: []string{"flex", "content"},
		},
		{
			Type: "flex-button", Label: "Button",
			Category: botblock.CategoryFlexContent, Contexts: flexOnly,
			Defaults: map[string]any{"element": "button", "style": "link"},
			Options: []ConfigOption{
				{Key: "style", Kind: KindEnum, Enum: []string{"link", "primary", "secondary"}, Default: "link"},
				{Key: "height", Kind: KindEnum, Enum: []string{"sm", "md"}, Default: "md"},
				{Key: "color", Kind: KindColor, VisibleWhen: "style=primary"},
			},
			Tags: []string{"flex", "content", "interactive"},
		},
		{
			Type: "flex-image", Label: "Image",
			Category: botblock.CategoryFlexContent, Contexts: flexOnly,
			Defaults: map[string]any{"element": "image"},
			Options: []ConfigOption{
				{Key: "url", Kind: KindURL},
				{Key: "size", Kind: KindEnum, Enum: []string{"xxs", "xs", "sm", "md", "lg", "xl", "xxl", "3xl", "4xl", "5xl", "full"}, Default: "md"},
				{Key: "aspectRatio", Kind: KindString, Pattern: `^\d+(\.\d+)?:\d+(\.\d+)?$`, Default: "1:1"},
				{Key: "aspectMode", Kind: KindEnum, Enum: []string{"cover", "fit"}, Default: "fit"},
			},
			Tags: []string{"flex", "content", "media"},
		},
		{
			Type: "flex-icon", Label: "Icon",
			Category: botblock.CategoryFlexContent, Contexts: flexOnly,
			Defaults: map[string]any{"element": "icon"},
			Options: []ConfigOption{
				{Key: "url", Kind: KindURL},
				{Key: "size", Kind: KindEnum, Enum: []string{"xxs", "xs", "sm", "md", "lg", "xl", "xxl", "3xl", "4xl", "5xl"}, Default: "md"},
			},
			Tags: []string{"flex", "content"},
		},
		{
			Type: "flex-separator", Label: "Separator",
			Category: botblock.CategoryFlexContent, Contexts: flexOnly,
			Defaults: map[string]any{"element": "separator"},
			Options: []ConfigOption{
				{Key: "margin", Kind: KindEnum, Enum: []string{"none", "xs", "sm", "md", "lg", "xl", "xxl"}, Default: "none"},
				{Key: "color", Kind: KindColor},
			},
			Tags: []string{"flex", "content"},
		},
		{
			Type: "flex-filler", Label: "Filler",
			Category: botblock.CategoryFlexContent, Contexts: flexOnly,
			Defaults: map[string]any{"element": "filler"},
			Tags:     []string{"flex", "content"},
		},
	}
}
