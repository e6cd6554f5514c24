package entity

// Admin is the single-credential login record. The password is stored and
// compared in plaintext; no token or session is issued.
type Admin struct {
	ID       string
	User     string
	Password string
}
