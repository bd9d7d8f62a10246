package entity

// Post is authored content owned by a single user. Posts are deleted
// together with their owning user.
type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"userId"`
}
