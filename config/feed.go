package config

// FeedConfig points at the local directory of hand-maintained schedule
// files loaded at startup. An empty Dir disables the initial load.
type FeedConfig struct {
	Dir string `json:"dir"`
}
