package dto

// SessionResponse is returned when a session was established; Redirect names
// the page the client should navigate to.
type SessionResponse struct {
	Token    string `json:"token"`
	Redirect string `json:"redirect"`
}
