package schema

import "github.com/goliatone/go-botblock"

// DecodeData lowers a keyed payload into the typed variant owned by the
// definition's category. Decoding is permissive: missing or mistyped
// fields fall back to zero values, never to errors, so a half-filled
// editor form still round-trips.
func DecodeData(def BlockDefinition, raw map[string]any) botblock.BlockData {
	switch def.Category {
	case botblock.CategoryEvent:
		return botblock.EventData{
			Event: pickString(raw, "event"),
			Match: pickString(raw, "match"),
		}
	case botblock.CategoryReply:
		return botblock.ReplyData{
			Reply:      pickString(raw, "reply"),
			Text:       pickString(raw, "text"),
			ContentURL: pickString(raw, "originalContentUrl"),
			PreviewURL: pickString(raw, "previewImageUrl"),
			Duration:   pickInt(raw, "duration"),
			Title:      pickString(raw, "title"),
			Address:    pickString(raw, "address"),
			Latitude:   pickFloat(raw, "latitude"),
			Longitude:  pickFloat(raw, "longitude"),
			PackageID:  pickString(raw, "packageId"),
			StickerID:  pickString(raw, "stickerId"),
			AltText:    pickString(raw, "altText"),
			Template:   pickString(raw, "template"),
			Actions:    pickActions(raw, "actions"),
			FlexID:     pickString(raw, "flexBlockId"),
		}
	case botblock.CategoryControl:
		return botblock.ControlData{
			Control:   pickString(raw, "control"),
			Condition: pickString(raw, "condition"),
			Times:     pickInt(raw, "times"),
			Seconds:   pickFloat(raw, "seconds"),
			Name:      pickString(raw, "name"),
		}
	case botblock.CategorySetting:
		return botblock.SettingData{
			Setting: pickString(raw, "setting"),
			Value:   pickString(raw, "value"),
		}
	case botblock.CategoryFlexContainer:
		return botblock.ContainerData{
			Container: pickString(raw, "container"),
			AltText:   pickString(raw, "altText"),
			Size:      pickString(raw, "size"),
			Direction: pickString(raw, "direction"),
		}
	case botblock.CategoryFlexLayout:
		return botblock.BoxData{
			Layout:          pickString(raw, "layout"),
			Spacing:         pickString(raw, "spacing"),
			Margin:          pickString(raw, "margin"),
			Flex:            pickIntPtr(raw, "flex"),
			Width:           pickString(raw, "width"),
			Height:          pickString(raw, "height"),
			BackgroundColor: pickString(raw, "backgroundColor"),
			BorderColor:     pickString(raw, "borderColor"),
			BorderWidth:     pickString(raw, "borderWidth"),
			CornerRadius:    pickString(raw, "cornerRadius"),
			PaddingAll:      pickString(raw, "paddingAll"),
			Position:        pickString(raw, "position"),
			OffsetTop:       pickString(raw, "offsetTop"),
			OffsetBottom:    pickString(raw, "offsetBottom"),
			OffsetStart:     pickString(raw, "offsetStart"),
			OffsetEnd:       pickString(raw, "offsetEnd"),
			JustifyContent:  pickString(raw, "justifyContent"),
			AlignItems:      pickString(raw, "alignItems"),
		}
	case botblock.CategoryFlexContent:
		return botblock.ContentData{
			Element:      pickString(raw, "element"),
			Text:         pickString(raw, "text"),
			Size:         pickString(raw, "size"),
			Weight:       pickString(raw, "weight"),
			Color:        pickString(raw, "color"),
			Align:        pickString(raw, "align"),
			Gravity:      pickString(raw, "gravity"),
			Wrap:         pickBool(raw, "wrap"),
			MaxLines:     pickInt(raw, "maxLines"),
			URL:          pickString(raw, "url"),
			AspectRatio:  pickString(raw, "aspectRatio"),
			AspectMode:   pickString(raw, "aspectMode"),
			Style:        pickString(raw, "style"),
			Height:       pickString(raw, "height"),
			Action:       pickAction(raw, "action"),
			Margin:       pickString(raw, "margin"),
			Flex:         pickIntPtr(raw, "flex"),
			Position:     pickString(raw, "position"),
			OffsetTop:    pickString(raw, "offsetTop"),
			OffsetBottom: pickString(raw, "offsetBottom"),
			OffsetStart:  pickString(raw, "offsetStart"),
			OffsetEnd:    pickString(raw, "offsetEnd"),
		}
	}
	return botblock.RawData{Fields: raw}
}

func pickString(rec map[string]any, key string) string {
	if value, ok := rec[key]; ok {
		if out, ok := value.(string); ok {
			return out
		}
	}
	return ""
}

func pickBool(rec map[string]any, key string) bool {
	if value, ok := rec[key]; ok {
		if out, ok := value.(bool); ok {
			return out
		}
	}
	return false
}

func pickInt(rec map[string]any, key string) int {
	switch value := rec[key].(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	}
	return 0
}

func pickIntPtr(rec map[string]any, key string) *int {
	if _, ok := rec[key]; !ok {
		return nil
	}
	v := pickInt(rec, key)
	return &v
}

func pickFloat(rec map[string]any, key string) float64 {
	switch value := rec[key].(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	}
	return 0
}

func pickAction(rec map[string]any, key string) *botblock.ActionData {
	obj, ok := rec[key].(map[string]any)
	if !ok {
		return nil
	}
	action := decodeAction(obj)
	return &action
}

func pickActions(rec map[string]any, key string) []botblock.ActionData {
	list, ok := rec[key].([]any)
	if !ok {
		return nil
	}
	out := make([]botblock.ActionData, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, decodeAction(obj))
		}
	}
	return out
}

func decodeAction(obj map[string]any) botblock.ActionData {
	kind := pickString(obj, "kind")
	if kind == "" {
		kind = pickString(obj, "type")
	}
	return botblock.ActionData{
		Kind:       kind,
		Label:      pickString(obj, "label"),
		Text:       pickString(obj, "text"),
		URI:        pickString(obj, "uri"),
		Data:       pickString(obj, "data"),
		Mode:       pickString(obj, "mode"),
		Initial:    pickString(obj, "initial"),
		Max:        pickString(obj, "max"),
		Min:        pickString(obj, "min"),
		RichMenuID: pickString(obj, "richMenuAliasId"),
		Clipboard:  pickString(obj, "clipboardText"),
	}
}
