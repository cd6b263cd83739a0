// Package entities defines the domain types shared by the search pipeline.
package entities

import "strings"

// Entity is a user profile returned by the primary location search.
// Entities are immutable once received.
type Entity struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`      // Display handle, also the enrichment key
	AvatarURL string `json:"avatar_url"` // Avatar image reference
	HTMLURL   string `json:"html_url"`   // Public profile page
}

// Handles returns the display handles of the given entities in order.
func Handles(list []Entity) []string {
	handles := make([]string, 0, len(list))
	for i := range list {
		handles = append(handles, list[i].Login)
	}
	return handles
}

// NormalizeLocation trims surrounding whitespace from user-entered location text.
func NormalizeLocation(location string) string {
	return strings.TrimSpace(location)
}
