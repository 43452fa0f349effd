package dialogs

import "github.com/m3rciful/classbot/core/telegram/state"

// Dialog states. A session holds exactly one of these at a time, which is
// what keeps the conversation modes mutually exclusive: entering a dialog
// replaces whatever state the user was in before.
const (
	StateSelectingSubject state.State = "selecting_subject"
	StateViewingSubject   state.State = "viewing_subject"
	StateFilteringByDate  state.State = "filtering_by_date"

	StateAddingExamName    state.State = "adding_exam_name"
	StateAddingExamDate    state.State = "adding_exam_date"
	StateAddingExamTime    state.State = "adding_exam_time"
	StateAddingExamContent state.State = "adding_exam_content"
	StateAddingExamVerify  state.State = "adding_exam_verify"

	StateDeletingExam state.State = "deleting_exam"

	StatePendingBroadcast state.State = "pending_broadcast"
	StateConfirmBroadcast state.State = "confirm_broadcast"
)

// Session temp-data keys. selected_subject outlives the picker state: it
// is cleared only when a document is accepted or a new selection dialog
// starts, so an upload can arrive after the text dialog has ended.
const (
	tmpSelectedSubject  = "selected_subject"
	tmpExamName         = "exam_name"
	tmpExamDate         = "exam_date"
	tmpExamTime         = "exam_time"
	tmpExamContent      = "exam_content"
	tmpBroadcastMessage = "broadcast_message"
)
