package request

import vo "github.com/saase/requesthub/internal/domain/request/valueobjects"

type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
	StepRejected  StepState = "rejected"
)

// ProgressStep is one entry of the client hub timeline.
type ProgressStep struct {
	Name  string    `json:"name"`
	State StepState `json:"state"`
}

var progressStepNames = []string{
	"Request Submitted",
	"AI Analysis",
	"Development Review",
	"Finance Review",
	"Client Approval",
	"Implementation",
}

// Progress derives the timeline from the status and whether an AI summary exists.
func Progress(s vo.RequestStatus, hasSummary bool) []ProgressStep {
	// index of the current step; everything before it is completed
	current := 1
	switch {
	case s.IsPending() && hasSummary:
		current = 2
	case s == vo.StatusRejected:
		current = 2
	case s == vo.StatusAccepted:
		current = 4
	case s == vo.StatusClientApproved:
		current = 5
	case s == vo.StatusImplementation:
		current = len(progressStepNames)
	}

	steps := make([]ProgressStep, len(progressStepNames))
	for i, name := range progressStepNames {
		state := StepPending
		switch {
		case i < current:
			state = StepCompleted
		case i == current && s == vo.StatusRejected:
			state = StepRejected
		case i == current:
			state = StepCurrent
		}
		steps[i] = ProgressStep{Name: name, State: state}
	}
	return steps
}
