// Package flex validates message-layout blocks against the platform's
// published wire-format limits and lowers them into the nested JSON
// document the messaging API accepts.
package flex

import "regexp"

// Limits is the single constants table for every numeric ceiling and
// enumerated vocabulary the wire format defines. A platform spec revision
// is applied here and nowhere else.
type Limits struct {
	MaxCarouselBubbles int
	MaxPayloadBytes    int
	MaxAltTextLength   int
	MaxTextLength      int
	MaxURLLength       int
	MaxTemplateActions int
	MaxQuickReplyItems int
	MaxLoopIterations  int

	ImageExtensions []string

	Sizes         []string
	ImageSizes    []string
	IconSizes     []string
	Weights       []string
	Layouts       []string
	Spacings      []string
	Aligns        []string
	Gravities     []string
	ButtonStyles  []string
	ButtonHeights []string
	AspectModes   []string
	Positions     []string
	BubbleSizes   []string
	Directions    []string
	ActionKinds   []string
}

// DefaultLimits returns the published platform limits.
func DefaultLimits() Limits {
	sizes := []string{"xxs", "xs", "sm", "md", "lg", "xl", "xxl", "3xl", "4xl", "5xl"}
	spacings := []string{"none", "xs", "sm", "md", "lg", "xl", "xxl"}
	return Limits{
		MaxCarouselBubbles: 10,
		MaxPayloadBytes:    50 * 1024,
		MaxAltTextLength:   400,
		MaxTextLength:      5000,
		MaxURLLength:       2000,
		MaxTemplateActions: 4,
		MaxQuickReplyItems: 13,
		MaxLoopIterations:  100,

		ImageExtensions: []string{".jpg", ".jpeg", ".png"},

		Sizes:         sizes,
		ImageSizes:    append(append([]string{}, sizes...), "full"),
		IconSizes:     sizes,
		Weights:       []string{"regular", "bold"},
		Layouts:       []string{"horizontal", "vertical", "baseline"},
		Spacings:      spacings,
		Aligns:        []string{"start", "end", "center"},
		Gravities:     []string{"top", "bottom", "center"},
		ButtonStyles:  []string{"link", "primary", "secondary"},
		ButtonHeights: []string{"sm", "md"},
		AspectModes:   []string{"cover", "fit"},
		Positions:     []string{"relative", "absolute"},
		BubbleSizes:   []string{"nano", "micro", "kilo", "mega", "giga"},
		Directions:    []string{"ltr", "rtl"},
		ActionKinds: []string{
			"message", "uri", "postback", "camera", "camera-roll",
			"location", "datetime-picker", "rich-menu-switch", "clipboard",
		},
	}
}

var (
	colorPattern       = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	pixelPattern       = regexp.MustCompile(`^\d+px$`)
	sizeOrPctPattern   = regexp.MustCompile(`^\d+(\.\d+)?(px|%)$`)
	offsetPattern      = regexp.MustCompile(`^-?\d+(\.\d+)?(px|%)$`)
	aspectRatioPattern = regexp.MustCompile(`^\d+(\.\d+)?:\d+(\.\d+)?$`)
)
