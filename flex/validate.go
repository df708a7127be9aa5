package flex

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-botblock"
)

// PropertyResult is the outcome of one primitive check on one property.
type PropertyResult struct {
	Property string
	Valid    bool
	Message  string
	Severity string
}

func okProp(property string) PropertyResult {
	return PropertyResult{Property: property, Valid: true}
}

func badProp(property, severity, format string, args ...any) PropertyResult {
	return PropertyResult{
		Property: property,
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Validator checks value-level wire-format constraints. All ceilings and
// vocabularies come from its Limits table.
type Validator struct {
	limits Limits
}

// NewValidator builds a validator over the given limits table.
func NewValidator(limits Limits) *Validator {
	return &Validator{limits: limits}
}

// Limits exposes the table the validator was built with.
func (v *Validator) Limits() Limits { return v.limits }

// ---- primitive validators ----

func (v *Validator) color(property, value string) PropertyResult {
	if value == "" || colorPattern.MatchString(value) {
		return okProp(property)
	}
	return badProp(property, botblock.SeverityError, "%q is not a #RRGGBB color", value)
}

func (v *Validator) pixel(property, value string) PropertyResult {
	if value == "" || pixelPattern.MatchString(value) {
		return okProp(property)
	}
	return badProp(property, botblock.SeverityError, "%q is not a pixel value (e.g. 10px)", value)
}

func (v *Validator) sizeOrPercent(property, value string) PropertyResult {
	if value == "" || sizeOrPctPattern.MatchString(value) {
		return okProp(property)
	}
	return badProp(property, botblock.SeverityError, "%q is not a pixel or percentage value", value)
}

// offset accepts a spacing keyword or a signed pixel/percentage value.
func (v *Validator) offset(property, value string) PropertyResult {
	if value == "" || offsetPattern.MatchString(value) {
		return okProp(property)
	}
	for _, keyword := range v.limits.Spacings {
		if value == keyword {
			return okProp(property)
		}
	}
	return badProp(property, botblock.SeverityError, "%q is not a valid offset", value)
}

func (v *Validator) enum(property, value string, allowed []string) PropertyResult {
	if value == "" {
		return okProp(property)
	}
	for _, candidate := range allowed {
		if value == candidate {
			return okProp(property)
		}
	}
	return badProp(property, botblock.SeverityError,
		"%q is not one of %s", value, strings.Join(allowed, ", "))
}

func (v *Validator) httpsURL(property, value string, image bool) PropertyResult {
	if value == "" {
		return badProp(property, botblock.SeverityWarning, "no URL set; a placeholder will be used")
	}
	if len(value) > v.limits.MaxURLLength {
		return badProp(property, botblock.SeverityError,
			"URL exceeds %d characters", v.limits.MaxURLLength)
	}
	parsed, err := url.Parse(value)
	if err != nil || parsed.Scheme != "https" || parsed.Host == "" {
		return badProp(property, botblock.SeverityError, "%q is not an https URL", value)
	}
	if image {
		lower := strings.ToLower(parsed.Path)
		for _, ext := range v.limits.ImageExtensions {
			if strings.HasSuffix(lower, ext) {
				return okProp(property)
			}
		}
		return badProp(property, botblock.SeverityWarning,
			"image URL should end in %s", strings.Join(v.limits.ImageExtensions, ", "))
	}
	return okProp(property)
}

func (v *Validator) intRange(property string, value, min, max int) PropertyResult {
	if value < min || value > max {
		return badProp(property, botblock.SeverityError,
			"%d is outside the allowed range %d..%d", value, min, max)
	}
	return okProp(property)
}

func (v *Validator) textLength(property, value string) PropertyResult {
	if len(value) > v.limits.MaxTextLength {
		return badProp(property, botblock.SeverityError,
			"text exceeds the maximum length of %d characters", v.limits.MaxTextLength)
	}
	return okProp(property)
}

// ---- per-kind validators ----

// ValidateBox checks a FLEX_LAYOUT box payload.
func (v *Validator) ValidateBox(blockID string, data botblock.BoxData) botblock.ValidationResult {
	results := []PropertyResult{
		v.enum("layout", data.Layout, v.limits.Layouts),
		v.enum("spacing", data.Spacing, v.limits.Spacings),
		v.enum("margin", data.Margin, v.limits.Spacings),
		v.sizeOrPercent("width", data.Width),
		v.sizeOrPercent("height", data.Height),
		v.color("backgroundColor", data.BackgroundColor),
		v.color("borderColor", data.BorderColor),
		v.pixel("borderWidth", data.BorderWidth),
		v.sizeOrPercent("cornerRadius", data.CornerRadius),
		v.sizeOrPercent("paddingAll", data.PaddingAll),
		v.enum("position", data.Position, v.limits.Positions),
		v.offset("offsetTop", data.OffsetTop),
		v.offset("offsetBottom", data.OffsetBottom),
		v.offset("offsetStart", data.OffsetStart),
		v.offset("offsetEnd", data.OffsetEnd),
	}
	if data.Layout == "" {
		results = append(results, badProp("layout", botblock.SeverityError, "box requires a layout"))
	}
	if data.Flex != nil {
		results = append(results, v.intRange("flex", *data.Flex, 0, 5))
	}
	return v.fold(blockID, results)
}

// ValidateContent dispatches a FLEX_CONTENT payload to the validator for
// its declared element kind. Unknown kinds pass with a warning since the
// converter degrades them to a placeholder.
func (v *Validator) ValidateContent(blockID string, data botblock.ContentData) botblock.ValidationResult {
	switch data.Element {
	case "text":
		return v.validateText(blockID, data)
	case "button":
		return v.validateButton(blockID, data)
	case "image":
		return v.validateImage(blockID, data)
	case "icon":
		return v.validateIcon(blockID, data)
	case "separator":
		return v.fold(blockID, []PropertyResult{
			v.enum("margin", data.Margin, v.limits.Spacings),
			v.color("color", data.Color),
		})
	case "filler":
		results := []PropertyResult{}
		if data.Flex != nil {
			results = append(results, v.intRange("flex", *data.Flex, 0, 5))
		}
		return v.fold(blockID, results)
	}
	result := botblock.OK()
	result.Add(botblock.Diagnostic{
		Code:     botblock.DiagCodeInvalidProperty,
		Severity: botblock.SeverityWarning,
		Message:  fmt.Sprintf("unknown element kind %q; a placeholder will be emitted", data.Element),
		BlockID:  blockID,
		Field:    "element",
	})
	return result
}

func (v *Validator) validateText(blockID string, data botblock.ContentData) botblock.ValidationResult {
	results := []PropertyResult{
		v.textLength("text", data.Text),
		v.enum("size", data.Size, v.limits.Sizes),
		v.enum("weight", data.Weight, v.limits.Weights),
		v.color("color", data.Color),
		v.enum("align", data.Align, v.limits.Aligns),
		v.enum("gravity", data.Gravity, v.limits.Gravities),
		v.enum("margin", data.Margin, v.limits.Spacings),
	}
	results = append(results, v.commonContent(data)...)
	if data.Text == "" {
		results = append(results, badProp("text", botblock.SeverityWarning, "text is empty"))
	}
	if data.MaxLines != 0 {
		results = append(results, v.intRange("maxLines", data.MaxLines, 1, 100))
	}
	return v.fold(blockID, results)
}

func (v *Validator) validateButton(blockID string, data botblock.ContentData) botblock.ValidationResult {
	results := []PropertyResult{
		v.enum("style", data.Style, v.limits.ButtonStyles),
		v.enum("height", data.Height, v.limits.ButtonHeights),
		v.color("color", data.Color),
		v.enum("gravity", data.Gravity, v.limits.Gravities),
		v.enum("margin", data.Margin, v.limits.Spacings),
	}
	results = append(results, v.commonContent(data)...)
	if data.Action == nil {
		results = append(results, badProp("action", botblock.SeverityWarning,
			"button has no action; a fallback message action will be used"))
	} else {
		results = append(results, v.validateAction(*data.Action)...)
	}
	return v.fold(blockID, results)
}

func (v *Validator) validateImage(blockID string, data botblock.ContentData) botblock.ValidationResult {
	results := []PropertyResult{
		v.httpsURL("url", data.URL, true),
		v.enum("size", data.Size, v.limits.ImageSizes),
		v.enum("align", data.Align, v.limits.Aligns),
		v.enum("gravity", data.Gravity, v.limits.Gravities),
		v.enum("margin", data.Margin, v.limits.Spacings),
		v.enum("aspectMode", data.AspectMode, v.limits.AspectModes),
	}
	results = append(results, v.commonContent(data)...)
	if data.AspectRatio != "" && !aspectRatioPattern.MatchString(data.AspectRatio) {
		results = append(results, badProp("aspectRatio", botblock.SeverityError,
			"%q is not a width:height ratio (e.g. 1.51:1)", data.AspectRatio))
	}
	return v.fold(blockID, results)
}

func (v *Validator) validateIcon(blockID string, data botblock.ContentData) botblock.ValidationResult {
	results := []PropertyResult{
		v.httpsURL("url", data.URL, true),
		v.enum("size", data.Size, v.limits.IconSizes),
		v.enum("margin", data.Margin, v.limits.Spacings),
	}
	return v.fold(blockID, results)
}

func (v *Validator) commonContent(data botblock.ContentData) []PropertyResult {
	results := []PropertyResult{
		v.enum("position", data.Position, v.limits.Positions),
		v.offset("offsetTop", data.OffsetTop),
		v.offset("offsetBottom", data.OffsetBottom),
		v.offset("offsetStart", data.OffsetStart),
		v.offset("offsetEnd", data.OffsetEnd),
	}
	if data.Flex != nil {
		results = append(results, v.intRange("flex", *data.Flex, 0, 5))
	}
	return results
}

func (v *Validator) validateAction(action botblock.ActionData) []PropertyResult {
	results := []PropertyResult{
		v.enum("action.kind", action.Kind, v.limits.ActionKinds),
	}
	if action.Kind == "uri" {
		results = append(results, v.httpsURL("action.uri", action.URI, false))
	}
	return results
}

// ValidateContainer checks a FLEX_CONTAINER payload.
func (v *Validator) ValidateContainer(blockID string, data botblock.ContainerData, childCount int) botblock.ValidationResult {
	results := []PropertyResult{}
	switch data.Container {
	case "bubble":
		results = append(results,
			v.enum("size", data.Size, v.limits.BubbleSizes),
			v.enum("direction", data.Direction, v.limits.Directions),
		)
	case "carousel":
		if childCount > v.limits.MaxCarouselBubbles {
			results = append(results, badProp("contents", botblock.SeverityError,
				"carousel holds %d bubbles; the maximum is %d", childCount, v.limits.MaxCarouselBubbles))
		}
	default:
		results = append(results, badProp("container", botblock.SeverityError,
			"%q is not a container kind (bubble, carousel)", data.Container))
	}
	if len(data.AltText) > v.limits.MaxAltTextLength {
		results = append(results, badProp("altText", botblock.SeverityError,
			"alt text exceeds %d characters", v.limits.MaxAltTextLength))
	}
	return v.fold(blockID, results)
}

// ValidateDocument checks the global invariants of a fully converted
// document: required top-level fields, a legal root kind, the carousel
// item ceiling, and the serialized payload size ceiling.
func (v *Validator) ValidateDocument(doc Document) botblock.ValidationResult {
	result := botblock.OK()

	if doc.Root == nil {
		result.Add(botblock.Diagnostic{
			Code:     botblock.DiagCodeMissingField,
			Severity: botblock.SeverityError,
			Message:  "document has no root container",
			Field:    "contents",
		})
		return result
	}

	rootKind, _ := doc.Root["type"].(string)
	switch rootKind {
	case "bubble":
	case "carousel":
		if contents, ok := doc.Root["contents"].([]map[string]any); ok && len(contents) > v.limits.MaxCarouselBubbles {
			result.Add(botblock.Diagnostic{
				Code:     botblock.DiagCodeTooManyItems,
				Severity: botblock.SeverityError,
				Message:  fmt.Sprintf("carousel holds %d bubbles; the maximum is %d", len(contents), v.limits.MaxCarouselBubbles),
				Field:    "contents",
			})
		}
	default:
		result.Add(botblock.Diagnostic{
			Code:     botblock.DiagCodeInvalidRoot,
			Severity: botblock.SeverityError,
			Message:  fmt.Sprintf("root container must be bubble or carousel, got %q", rootKind),
			Field:    "type",
		})
	}

	if doc.AltText == "" {
		result.Add(botblock.Diagnostic{
			Code:     botblock.DiagCodeMissingField,
			Severity: botblock.SeverityWarning,
			Message:  "document has no alt text",
			Field:    "altText",
		})
	} else if len(doc.AltText) > v.limits.MaxAltTextLength {
		result.Add(botblock.Diagnostic{
			Code:     botblock.DiagCodeTooLong,
			Severity: botblock.SeverityError,
			Message:  fmt.Sprintf("alt text exceeds %d characters", v.limits.MaxAltTextLength),
			Field:    "altText",
		})
	}

	// payload ceiling estimated from the serialized form
	if raw, err := json.Marshal(doc.Message()); err == nil && len(raw) > v.limits.MaxPayloadBytes {
		result.Add(botblock.Diagnostic{
			Code:     botblock.DiagCodePayloadTooLarge,
			Severity: botblock.SeverityError,
			Message:  fmt.Sprintf("serialized document is %d bytes; the maximum is %d", len(raw), v.limits.MaxPayloadBytes),
		})
	}

	result.Sort()
	return result
}

func (v *Validator) fold(blockID string, results []PropertyResult) botblock.ValidationResult {
	out := botblock.OK()
	for _, r := range results {
		if r.Valid {
			continue
		}
		out.Add(botblock.Diagnostic{
			Code:     codeForProperty(r),
			Severity: r.Severity,
			Message:  r.Message,
			BlockID:  blockID,
			Field:    r.Property,
		})
	}
	out.Sort()
	return out
}

func codeForProperty(r PropertyResult) string {
	switch {
	case strings.Contains(r.Message, "not one of"):
		return botblock.DiagCodeInvalidEnum
	case strings.Contains(r.Message, "URL"):
		return botblock.DiagCodeInvalidURL
	case strings.Contains(r.Message, "range"):
		return botblock.DiagCodeOutOfRange
	case strings.Contains(r.Message, "length") || strings.Contains(r.Message, "characters"):
		return botblock.DiagCodeTooLong
	case strings.Contains(r.Message, "maximum is"):
		return botblock.DiagCodeTooManyItems
	}
	return botblock.DiagCodeInvalidPattern
}
