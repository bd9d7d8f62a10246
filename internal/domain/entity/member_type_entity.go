package entity

// MemberType describes a membership tier. The set of member types is fixed
// and seeded at startup; only Discount and MonthPostsLimit are mutable.
type MemberType struct {
	ID              string `json:"id"`
	Discount        int    `json:"discount"`
	MonthPostsLimit int    `json:"monthPostsLimit"`
}
