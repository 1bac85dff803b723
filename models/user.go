package models

// Role distinguishes customers from back-office admins.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Address is an optional saved delivery address.
type Address struct {
	ID     string `json:"id"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// User is an identity record in the registered-users list. No password
// is stored; sign-in is a mock email+role lookup.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Mobile     string    `json:"mobile,omitempty"`
	Addresses  []Address `json:"addresses,omitempty"`
	IsVerified bool      `json:"is_verified"`
}

// Session is the single signed-in identity for this storefront instance.
type Session struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"is_authenticated"`
}
