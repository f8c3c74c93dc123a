package request

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type ReplyReviewRequest struct {
	Reply string `json:"reply" validate:"required,max=2000"`
}
