package codegen

// eventSpec describes how one declared event kind maps onto the
// platform's webhook payload: the generated handler's base name, the
// trigger the dispatcher keys on, and the payload fields available
// inside the handler body.
type eventSpec struct {
	kind    string
	handler string
	trigger string // event.type value
	message string // event.message.type value when trigger is "message"
	payload []Stmt
	// terminal events never send replies: the peer is gone
	terminal bool
}

// eventTable is the per-event dispatch table, in declaration order.
var eventTable = []eventSpec{
	{
		kind: "text", handler: "handleTextMessage",
		trigger: "message", message: "text",
		payload: []Stmt{Line("const text = event.message.text;")},
	},
	{
		kind: "image", handler: "handleImageMessage",
		trigger: "message", message: "image",
		payload: []Stmt{Line("const messageId = event.message.id;")},
	},
	{
		kind: "audio", handler: "handleAudioMessage",
		trigger: "message", message: "audio",
		payload: []Stmt{Line("const messageId = event.message.id;")},
	},
	{
		kind: "video", handler: "handleVideoMessage",
		trigger: "message", message: "video",
		payload: []Stmt{Line("const messageId = event.message.id;")},
	},
	{
		kind: "file", handler: "handleFileMessage",
		trigger: "message", message: "file",
		payload: []Stmt{
			Line("const messageId = event.message.id;"),
			Line("const fileName = event.message.fileName;"),
		},
	},
	{
		kind: "sticker", handler: "handleStickerMessage",
		trigger: "message", message: "sticker",
		payload: []Stmt{
			Line("const packageId = event.message.packageId;"),
			Line("const stickerId = event.message.stickerId;"),
		},
	},
	{
		kind: "postback", handler: "handlePostback",
		trigger: "postback",
		payload: []Stmt{Line("const data = event.postback.data;")},
	},
	{
		kind: "follow", handler: "handleFollow",
		trigger: "follow",
		payload: []Stmt{Line("const userId = event.source.userId;")},
	},
	{
		kind: "unfollow", handler: "handleUnfollow",
		trigger: "unfollow",
		payload:  []Stmt{Line("const userId = event.source.userId;")},
		terminal: true,
	},
	{
		kind: "member-joined", handler: "handleMemberJoined",
		trigger: "memberJoined",
		payload: []Stmt{Line("const members = event.joined.members;")},
	},
	{
		kind: "member-left", handler: "handleMemberLeft",
		trigger: "memberLeft",
		payload: []Stmt{Line("const members = event.left.members;")},
	},
}

func lookupEvent(kind string) (eventSpec, bool) {
	for _, spec := range eventTable {
		if spec.kind == kind {
			return spec, true
		}
	}
	return eventSpec{}, false
}

// defaultEventSpec is the synthesized text-message handler used when the
// logic graph declares replies but no events, so replies are never
// orphaned.
func defaultEventSpec() eventSpec {
	spec, _ := lookupEvent("text")
	return spec
}
