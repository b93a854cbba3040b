package appointment

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// StatusInfo is the single presentation mapping for an appointment status:
// the display label and the UI tone every screen renders it with.
type StatusInfo struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

var statusTable = map[Status]StatusInfo{
	StatusScheduled:  {Label: "Scheduled", Tone: "info"},
	StatusConfirmed:  {Label: "Confirmed", Tone: "success"},
	StatusInProgress: {Label: "In Progress", Tone: "warning"},
	StatusCompleted:  {Label: "Completed", Tone: "neutral"},
	StatusCancelled:  {Label: "Cancelled", Tone: "error"},
}

func (s Status) IsValid() bool {
	_, ok := statusTable[s]
	return ok
}

// Info returns the presentation mapping for s. Unrecognized statuses get a
// muted fallback rather than an error.
func (s Status) Info() StatusInfo {
	if info, ok := statusTable[s]; ok {
		return info
	}
	return StatusInfo{Label: string(s), Tone: "muted"}
}

// Statuses lists the recognized statuses in display order.
func Statuses() []Status {
	return []Status{StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled}
}
