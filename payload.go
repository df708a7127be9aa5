package botblock

// BlockData is the tagged payload carried by a block instance. Each
// category has one concrete shape so per-category dispatch tables stay
// exhaustive; payloads the registry cannot type land in RawData.
type BlockData interface {
	DataCategory() Category
}

// EventData configures an EVENT block: which platform webhook event the
// handler listens for, plus an optional match condition for message events.
type EventData struct {
	Event string `json:"event" yaml:"event"`
	Match string `json:"match,omitempty" yaml:"match,omitempty"`
}

func (EventData) DataCategory() Category { return CategoryEvent }

// ActionData is one platform action attached to a button, template column,
// or quick-reply item.
type ActionData struct {
	Kind       string `json:"kind" yaml:"kind"`
	Label      string `json:"label,omitempty" yaml:"label,omitempty"`
	Text       string `json:"text,omitempty" yaml:"text,omitempty"`
	URI        string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Data       string `json:"data,omitempty" yaml:"data,omitempty"`
	Mode       string `json:"mode,omitempty" yaml:"mode,omitempty"`
	Initial    string `json:"initial,omitempty" yaml:"initial,omitempty"`
	Max        string `json:"max,omitempty" yaml:"max,omitempty"`
	Min        string `json:"min,omitempty" yaml:"min,omitempty"`
	RichMenuID string `json:"richMenuAliasId,omitempty" yaml:"richMenuAliasId,omitempty"`
	Clipboard  string `json:"clipboardText,omitempty" yaml:"clipboardText,omitempty"`
}

// ReplyData configures a REPLY block. Only the fields relevant to the
// declared reply kind are consulted; the rest stay zero.
type ReplyData struct {
	Reply      string       `json:"reply" yaml:"reply"`
	Text       string       `json:"text,omitempty" yaml:"text,omitempty"`
	ContentURL string       `json:"originalContentUrl,omitempty" yaml:"originalContentUrl,omitempty"`
	PreviewURL string       `json:"previewImageUrl,omitempty" yaml:"previewImageUrl,omitempty"`
	Duration   int          `json:"duration,omitempty" yaml:"duration,omitempty"`
	Title      string       `json:"title,omitempty" yaml:"title,omitempty"`
	Address    string       `json:"address,omitempty" yaml:"address,omitempty"`
	Latitude   float64      `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude  float64      `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	PackageID  string       `json:"packageId,omitempty" yaml:"packageId,omitempty"`
	StickerID  string       `json:"stickerId,omitempty" yaml:"stickerId,omitempty"`
	AltText    string       `json:"altText,omitempty" yaml:"altText,omitempty"`
	Template   string       `json:"template,omitempty" yaml:"template,omitempty"`
	Actions    []ActionData `json:"actions,omitempty" yaml:"actions,omitempty"`
	FlexID     string       `json:"flexBlockId,omitempty" yaml:"flexBlockId,omitempty"`
}

func (ReplyData) DataCategory() Category { return CategoryReply }

// ControlData configures a CONTROL block: conditional, bounded loop,
// delay, try/catch, or named-function stub.
type ControlData struct {
	Control   string  `json:"control" yaml:"control"`
	Condition string  `json:"condition,omitempty" yaml:"condition,omitempty"`
	Times     int     `json:"times,omitempty" yaml:"times,omitempty"`
	Seconds   float64 `json:"seconds,omitempty" yaml:"seconds,omitempty"`
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
}

func (ControlData) DataCategory() Category { return CategoryControl }

// SettingData is one named bot-level setting emitted as a constant in the
// generated source.
type SettingData struct {
	Setting string `json:"setting" yaml:"setting"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
}

func (SettingData) DataCategory() Category { return CategorySetting }

// ContainerData configures a FLEX_CONTAINER block (bubble or carousel).
type ContainerData struct {
	Container string `json:"container" yaml:"container"`
	AltText   string `json:"altText,omitempty" yaml:"altText,omitempty"`
	Size      string `json:"size,omitempty" yaml:"size,omitempty"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
}

func (ContainerData) DataCategory() Category { return CategoryFlexContainer }

// BoxData configures a FLEX_LAYOUT block (a box). Pointer fields
// distinguish "user left it blank" from an explicit zero.
type BoxData struct {
	Layout          string `json:"layout" yaml:"layout"`
	Spacing         string `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	Margin          string `json:"margin,omitempty" yaml:"margin,omitempty"`
	Flex            *int   `json:"flex,omitempty" yaml:"flex,omitempty"`
	Width           string `json:"width,omitempty" yaml:"width,omitempty"`
	Height          string `json:"height,omitempty" yaml:"height,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	BorderColor     string `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	BorderWidth     string `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty"`
	CornerRadius    string `json:"cornerRadius,omitempty" yaml:"cornerRadius,omitempty"`
	PaddingAll      string `json:"paddingAll,omitempty" yaml:"paddingAll,omitempty"`
	Position        string `json:"position,omitempty" yaml:"position,omitempty"`
	OffsetTop       string `json:"offsetTop,omitempty" yaml:"offsetTop,omitempty"`
	OffsetBottom    string `json:"offsetBottom,omitempty" yaml:"offsetBottom,omitempty"`
	OffsetStart     string `json:"offsetStart,omitempty" yaml:"offsetStart,omitempty"`
	OffsetEnd       string `json:"offsetEnd,omitempty" yaml:"offsetEnd,omitempty"`
	JustifyContent  string `json:"justifyContent,omitempty" yaml:"justifyContent,omitempty"`
	AlignItems      string `json:"alignItems,omitempty" yaml:"alignItems,omitempty"`
}

func (BoxData) DataCategory() Category { return CategoryFlexLayout }

// ContentData configures a FLEX_CONTENT block: text, button, image, icon,
// separator, or filler.
type ContentData struct {
	Element      string      `json:"element" yaml:"element"`
	Text         string      `json:"text,omitempty" yaml:"text,omitempty"`
	Size         string      `json:"size,omitempty" yaml:"size,omitempty"`
	Weight       string      `json:"weight,omitempty" yaml:"weight,omitempty"`
	Color        string      `json:"color,omitempty" yaml:"color,omitempty"`
	Align        string      `json:"align,omitempty" yaml:"align,omitempty"`
	Gravity      string      `json:"gravity,omitempty" yaml:"gravity,omitempty"`
	Wrap         bool        `json:"wrap,omitempty" yaml:"wrap,omitempty"`
	MaxLines     int         `json:"maxLines,omitempty" yaml:"maxLines,omitempty"`
	URL          string      `json:"url,omitempty" yaml:"url,omitempty"`
	AspectRatio  string      `json:"aspectRatio,omitempty" yaml:"aspectRatio,omitempty"`
	AspectMode   string      `json:"aspectMode,omitempty" yaml:"aspectMode,omitempty"`
	Style        string      `json:"style,omitempty" yaml:"style,omitempty"`
	Height       string      `json:"height,omitempty" yaml:"height,omitempty"`
	Action       *ActionData `json:"action,omitempty" yaml:"action,omitempty"`
	Margin       string      `json:"margin,omitempty" yaml:"margin,omitempty"`
	Flex         *int        `json:"flex,omitempty" yaml:"flex,omitempty"`
	Position     string      `json:"position,omitempty" yaml:"position,omitempty"`
	OffsetTop    string      `json:"offsetTop,omitempty" yaml:"offsetTop,omitempty"`
	OffsetBottom string      `json:"offsetBottom,omitempty" yaml:"offsetBottom,omitempty"`
	OffsetStart  string      `json:"offsetStart,omitempty" yaml:"offsetStart,omitempty"`
	OffsetEnd    string      `json:"offsetEnd,omitempty" yaml:"offsetEnd,omitempty"`
}

func (ContentData) DataCategory() Category { return CategoryFlexContent }

// RawData carries the untyped payload of a block whose type the registry
// does not know. Conversion and generation degrade it to safe fallbacks
// instead of failing.
type RawData struct {
	Fields map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
}

func (RawData) DataCategory() Category { return CategoryUnknown }
