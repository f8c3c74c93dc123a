package response

import (
	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
)

type SessionResponse struct {
	Authenticated bool                      `json:"authenticated"`
	User          *entity.AuthenticatedUser `json:"user,omitempty"`
}
