package request

type CreatePricingRuleRequest struct {
	DayOfWeek  *int    `json:"dayOfWeek,omitempty" validate:"omitempty,min=0,max=6"`
	StartHour  int     `json:"startHour" validate:"min=0,max=23"`
	EndHour    int     `json:"endHour" validate:"min=1,max=24,gtfield=StartHour"`
	Multiplier float64 `json:"multiplier" validate:"required,gt=0"`
	Label      string  `json:"label,omitempty" validate:"max=100"`
}
