package model

// Settings holds the destination channel and the registered roster.
// An empty Channel means no destination has been chosen yet.
type Settings struct {
	Channel string   `json:"channel"`
	Users   []string `json:"registered_users"`
}

// Clone returns a copy that shares no memory with s.
func (s Settings) Clone() Settings {
	users := make([]string, len(s.Users))
	copy(users, s.Users)
	return Settings{Channel: s.Channel, Users: users}
}
