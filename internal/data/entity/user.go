package entity

type AccountType string

const (
	AccountTypePlayer     AccountType = "USER"
	AccountTypeVenueOwner AccountType = "VENUE_OWNER"
)

// AuthenticatedUser is the session-scoped identity returned by the
// marketplace authenticate endpoint.
type AuthenticatedUser struct {
	ID          int64       `json:"id"`
	Email       string      `json:"email"`
	FullName    string      `json:"fullName"`
	AccountType AccountType `json:"accountType"`
	City        string      `json:"city"`
}

func (u *AuthenticatedUser) IsVenueOwner() bool {
	return u != nil && u.AccountType == AccountTypeVenueOwner
}
