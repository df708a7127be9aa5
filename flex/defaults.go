package flex

// Defaults records the documented default of every optional wire-format
// attribute. The converter never emits an attribute whose value equals
// its default (wire-format economy); validators use the same table to
// fill blanks before checking.
type Defaults struct {
	TextSize     string
	TextWeight   string
	TextColor    string
	Align        string
	Gravity      string
	Wrap         bool
	Spacing      string
	Margin       string
	Flex         int
	ButtonStyle  string
	ButtonHeight string
	ImageSize    string
	IconSize     string
	AspectRatio  string
	AspectMode   string
	BubbleSize   string
	Direction    string
	Position     string
	AltText      string
	ImageURL     string
	ButtonLabel  string
}

// DefaultAttributes returns the documented attribute defaults.
func DefaultAttributes() Defaults {
	return Defaults{
		TextSize:     "md",
		TextWeight:   "regular",
		TextColor:    "#000000",
		Align:        "start",
		Gravity:      "top",
		Wrap:         false,
		Spacing:      "none",
		Margin:       "none",
		Flex:         1,
		ButtonStyle:  "link",
		ButtonHeight: "md",
		ImageSize:    "md",
		IconSize:     "md",
		AspectRatio:  "1:1",
		AspectMode:   "fit",
		BubbleSize:   "mega",
		Direction:    "ltr",
		Position:     "relative",

		// fallback literals used when a required value was left blank
		AltText:     "Flex message",
		ImageURL:    "https://example.com/placeholder.png",
		ButtonLabel: "Button",
	}
}
