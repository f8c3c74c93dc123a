package request

import (
	"github.com/PlayLink-CC/playlink-sub000/internal/wizard"
)

// WizardStepRequest carries the current form snapshot alongside a step
// action, the way the browser posts the whole form on every transition.
type WizardStepRequest struct {
	Form *wizard.Form `json:"form"`
}
