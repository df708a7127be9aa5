package migrate

import "sort"

// aliasTable maps every historical block type string to its canonical
// type id. The canonical ids alias to themselves so lookups are a single
// table hit for both current and legacy inputs.
var aliasTable = map[string]string{
	// events
	"text_message_event":    "event-text-message",
	"on_text_message":       "event-text-message",
	"image_message_event":   "event-image-message",
	"audio_message_event":   "event-audio-message",
	"video_message_event":   "event-video-message",
	"file_message_event":    "event-file-message",
	"sticker_message_event": "event-sticker-message",
	"postback_event":        "event-postback",
	"follow_event":          "event-follow",
	"on_follow":             "event-follow",
	"unfollow_event":        "event-unfollow",
	"on_unfollow":           "event-unfollow",
	"member_joined_event":   "event-member-joined",
	"member_left_event":     "event-member-left",

	// replies
	"send_text":        "reply-text",
	"text_reply":       "reply-text",
	"send_image":       "reply-image",
	"send_audio":       "reply-audio",
	"send_video":       "reply-video",
	"send_location":    "reply-location",
	"send_sticker":     "reply-sticker",
	"send_template":    "reply-template",
	"send_quick_reply": "reply-quick-reply",
	"quick_reply":      "reply-quick-reply",
	"send_flex":        "reply-flex",
	"flex_reply":       "reply-flex",

	// controls
	"if_block":       "control-if",
	"condition":      "control-if",
	"loop_block":     "control-loop",
	"repeat":         "control-loop",
	"wait_block":     "control-delay",
	"delay":          "control-delay",
	"try_block":      "control-try",
	"function_block": "control-function",

	// settings
	"bot_setting": "setting-constant",

	// flex layout
	"flex_bubble":    "flex-bubble",
	"bubble":         "flex-bubble",
	"flex_carousel":  "flex-carousel",
	"carousel":       "flex-carousel",
	"flex_box":       "flex-box",
	"box":            "flex-box",
	"flex_text":      "flex-text",
	"flex_button":    "flex-button",
	"flex_image":     "flex-image",
	"flex_icon":      "flex-icon",
	"flex_separator": "flex-separator",
	"flex_filler":    "flex-filler",
}

// reverseTable maps canonical ids back to every historical alias, built
// once from aliasTable so the two directions cannot drift.
var reverseTable = buildReverse()

func buildReverse() map[string][]string {
	out := make(map[string][]string, len(aliasTable))
	for alias, canonical := range aliasTable {
		out[canonical] = append(out[canonical], alias)
	}
	for canonical := range out {
		sort.Strings(out[canonical])
	}
	return out
}

// CanonicalType resolves a possibly historical type string to its
// canonical id. Unknown strings pass through unchanged: an unrecognized
// legacy block keeps its identifier, it never fails.
func CanonicalType(blockType string) string {
	if canonical, ok := aliasTable[blockType]; ok {
		return canonical
	}
	return blockType
}

// Aliases returns every historical alias of a canonical type id, sorted.
// Editors use this for backward-compatible search and filtering.
func Aliases(canonical string) []string {
	aliases := reverseTable[canonical]
	out := make([]string, len(aliases))
	copy(out, aliases)
	return out
}
