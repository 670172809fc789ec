package models

// DefaultLocation is assigned to accounts and employees without an explicit one.
const DefaultLocation = "Surgut"

// Account represents a credential record used for web login.
// Accounts are seeded externally and are read-only for this service.
// Passwords are stored and compared in plaintext.
type Account struct {
	Login    string // Login is the unique account login.
	Password string // Password is the account password, stored in plaintext.
	Name     string // Name is the display name of the account holder.
	Role     string // Role is one of the fixed restaurant roles.
	Location string // Location is the restaurant location, defaults to DefaultLocation.
}
