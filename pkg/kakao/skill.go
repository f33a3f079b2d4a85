// Package kakao models the Kakao i Open Builder skill wire format.
package kakao

// Version is the only template version the skill server speaks.
const Version = "2.0"

// ActionMessage is the quick reply action that echoes text into the chat.
const ActionMessage = "message"

// SkillPayload is the inbound webhook body. Open Builder sends many more
// blocks (bot, intent, action, contexts); only the parts the game needs are
// modeled and the rest is ignored on decode.
type SkillPayload struct {
	UserRequest UserRequest `json:"userRequest"`
}

// UserRequest carries the utterance and the user that typed it.
type UserRequest struct {
	User      User   `json:"user"`
	Utterance string `json:"utterance" validate:"required"`
}

// User identifies the chat user. The ID is an opaque bot-scoped key.
type User struct {
	ID string `json:"id" validate:"required"`
}

// SkillResponse is the outbound webhook body.
type SkillResponse struct {
	Version  string   `json:"version"`
	Template Template `json:"template"`
}

// Template holds the rendered outputs plus optional quick replies.
type Template struct {
	Outputs      []Output     `json:"outputs"`
	QuickReplies []QuickReply `json:"quickReplies,omitempty"`
}

// Output wraps a single bubble. Only simpleText bubbles are used.
type Output struct {
	SimpleText SimpleText `json:"simpleText"`
}

// SimpleText is a plain text bubble.
type SimpleText struct {
	Text string `json:"text"`
}

// QuickReply renders a tappable button under the bubble.
type QuickReply struct {
	Label       string `json:"label"`
	Action      string `json:"action"`
	MessageText string `json:"messageText"`
}

// SimpleTextResponse builds a skill response with one text bubble.
func SimpleTextResponse(text string) SkillResponse {
	return SkillResponse{
		Version: Version,
		Template: Template{
			Outputs: []Output{{SimpleText: SimpleText{Text: text}}},
		},
	}
}

// WithQuickReplies returns a copy of the response with the given buttons
// attached.
func (r SkillResponse) WithQuickReplies(replies ...QuickReply) SkillResponse {
	r.Template.QuickReplies = replies
	return r
}

// Message builds a message-action quick reply whose tap types messageText
// into the chat.
func Message(label, messageText string) QuickReply {
	return QuickReply{
		Label:       label,
		Action:      ActionMessage,
		MessageText: messageText,
	}
}
