package game

// ReplyKind names the resolved route for logging and metrics labels.
type ReplyKind string

const (
	KindHelp             ReplyKind = "help"
	KindCancel           ReplyKind = "cancel"
	KindInfo             ReplyKind = "info"
	KindStats            ReplyKind = "stats"
	KindJobPrompt        ReplyKind = "job_prompt"
	KindJobAssigned      ReplyKind = "job_assigned"
	KindJobDenied        ReplyKind = "job_denied"
	KindAllocatePrompt   ReplyKind = "allocate_prompt"
	KindAllocateApplied  ReplyKind = "allocate_applied"
	KindAllocateDenied   ReplyKind = "allocate_denied"
	KindAdventurePrompt  ReplyKind = "adventure_prompt"
	KindAdventureResult  ReplyKind = "adventure_result"
	KindAdventureDenied  ReplyKind = "adventure_denied"
	KindEnhanceSuccess   ReplyKind = "enhance_success"
	KindEnhanceFailure   ReplyKind = "enhance_failure"
	KindEnhanceDenied    ReplyKind = "enhance_denied"
	KindAttendance       ReplyKind = "attendance"
	KindAttendanceRepeat ReplyKind = "attendance_repeat"
	KindReprompt         ReplyKind = "reprompt"
	KindUnknown          ReplyKind = "unknown"
)

// Choice is one quick-reply button: the label shown to the user and the
// message injected into the chat when pressed.
type Choice struct {
	Label       string
	MessageText string
}

// Reply is the transport-agnostic response descriptor returned by the
// dispatcher. QuickReplies is non-empty only when the reply offers a fixed
// menu of follow-up inputs.
type Reply struct {
	Kind         ReplyKind
	Text         string
	QuickReplies []Choice
}
