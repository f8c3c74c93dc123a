package response

import (
	"github.com/PlayLink-CC/playlink-sub000/internal/wizard"
)

type DraftResponse struct {
	ID        string      `json:"id"`
	Step      int         `json:"step"`
	StepName  string      `json:"stepName"`
	Form      wizard.Form `json:"form"`
	CanSubmit bool        `json:"canSubmit"`
}

func DraftToResponse(draft *wizard.Draft) *DraftResponse {
	step := draft.Step()
	return &DraftResponse{
		ID:        draft.ID.String(),
		Step:      int(step),
		StepName:  step.String(),
		Form:      draft.Form(),
		CanSubmit: step == wizard.StepImages,
	}
}
