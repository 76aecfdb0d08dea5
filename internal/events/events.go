package events

// EventNewUser is the only event the realtime channel carries.
const EventNewUser = "newUser"

// NewUser is the payload broadcast to viewers after a successful
// registration.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsOnline bool   `json:"isOnline"`
}

// Envelope frames every message written to a websocket session.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}
