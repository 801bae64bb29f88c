package models

import "time"

// UserID identifies a chat user. Roster entries whose chat account is unknown
// carry -1.
type UserID int64

// Intent constants
const (
	IntentNone        = ""
	IntentHelp        = "help"
	IntentListSites   = "sites"
	IntentWhoIs       = "whois"
	IntentPingOne     = "ping_one"
	IntentPingPresent = "ping_present"
	IntentPingAll     = "ping_all"
)

// Domain types

type Moderator struct {
	ID   UserID `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Roster maps a canonical site ID to its moderators in insertion order.
type Roster map[string][]Moderator

// RosterDocument is the on-disk shape of a roster file. Other top-level keys
// are allowed and ignored.
type RosterDocument struct {
	Moderators Roster `json:"moderators" yaml:"moderators"`
}

// Message is a chat message as seen by the dispatcher. Content is the rendered
// text; Source is the raw markdown when the transport has it.
type Message struct {
	ID      int64
	RoomID  int64
	OwnerID UserID
	Owner   string
	Content string
	Source  string
	Time    time.Time
}

// Request types

type CommandRequest struct {
	PosterID UserID `json:"poster_id"`
	Content  string `json:"content"`
	Source   string `json:"source,omitempty"`
}

// Response types

type CommandResponse struct {
	Intent string `json:"intent"`
	Reply  string `json:"reply"`
}

type SiteSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Moderators int    `json:"moderators"`
}

type SitesResponse struct {
	Sites []SiteSummary `json:"sites"`
}

type SiteModeratorsResponse struct {
	Site       string      `json:"site"`
	Name       string      `json:"name"`
	Moderators []Moderator `json:"moderators"`
}

type ReloadResponse struct {
	Sites    int       `json:"sites"`
	LoadedAt time.Time `json:"loaded_at"`
}

type RoomPresence struct {
	Present  []UserID `json:"present"`
	Pingable []UserID `json:"pingable"`
}

type PresenceResponse struct {
	Primary   RoomPresence  `json:"primary"`
	Secondary *RoomPresence `json:"secondary,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
