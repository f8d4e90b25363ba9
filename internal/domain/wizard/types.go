package wizard

// Step identifies the single active screen of the booking workflow.
type Step string

const (
	StepDate         Step = "date"
	StepDetails      Step = "details"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

func (s Step) String() string {
	return string(s)
}

func (s Step) IsValid() bool {
	switch s {
	case StepDate, StepDetails, StepPayment, StepConfirmation:
		return true
	default:
		return false
	}
}

// ActionLabel is the human-readable title of the primary action on each step.
func (s Step) ActionLabel() string {
	switch s {
	case StepDate:
		return "Next"
	case StepDetails:
		return "Proceed to payment"
	case StepPayment:
		return "Complete transaction"
	case StepConfirmation:
		return "Track your reservation"
	default:
		return "Next"
	}
}

// Result is how a finished workflow reports back to the host screen.
type Result string

const (
	ResultCompleted Result = "completed"
	ResultCancelled Result = "cancelled"
)

// CancellationPolicy is static marketing copy for now; there is no policy
// engine behind it.
const CancellationPolicy = "If you cancel up to 2 days in advance, you'll receive a full refund."

// ConfirmationMessage is shown once the booking request has been accepted.
const ConfirmationMessage = "Your reservation request has been successfully submitted. You will be notified once it is approved."
