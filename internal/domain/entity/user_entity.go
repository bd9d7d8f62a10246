package entity

// User is the aggregate root for the user domain.
// SubscribedToUserIDs is an ordered list of user ids this user follows;
// the list may contain duplicates but never the user's own id.
type User struct {
	ID                  string   `json:"id"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	SubscribedToUserIDs []string `json:"subscribedToUserIds"`
}

// IsSubscribedTo reports whether the user's subscription list contains id.
func (u *User) IsSubscribedTo(id string) bool {
	for _, s := range u.SubscribedToUserIDs {
		if s == id {
			return true
		}
	}
	return false
}
