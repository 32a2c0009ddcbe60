package domain

// User is the console's read-only view of an account owned by the user
// service. Timestamp fields carry the upstream's serialized values verbatim;
// the console never interprets them.
type User struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Address     string   `json:"address,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Enabled     bool     `json:"enabled"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
	FullName    string   `json:"fullName,omitempty"`
}
