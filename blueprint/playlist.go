package blueprint

// CandidateSong is an unresolved (title, artist) recommendation before the
// catalog lookup. The pair is its natural key; there is no persistent identity.
type CandidateSong struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Recommendations is what the recommendation generator hands downstream.
// An empty Songs slice together with a non-empty Error field is a signalled
// failure, not a valid empty playlist.
type Recommendations struct {
	PlaylistName string          `json:"playlistName"`
	Songs        []CandidateSong `json:"songs"`
	Error        string          `json:"error,omitempty"`
}

// ResolvedTrack is a candidate that has been matched to a real spotify catalog
// entry with playable metadata.
type ResolvedTrack struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Artist            string        `json:"artist"`
	Album             string        `json:"album,omitempty"`
	DurationSeconds   int           `json:"duration_seconds"`
	DurationFormatted string        `json:"duration"`
	ExternalURL       string        `json:"external_url"`
	URI               string        `json:"uri"`
	Cover             string        `json:"cover,omitempty"`
	Preview           string        `json:"preview,omitempty"`
	SourceCandidate   CandidateSong `json:"source_candidate"`
}

// Playlist is the assembled result of one generation request. It is built
// once, returned to the caller and discarded; nothing is persisted server side.
type Playlist struct {
	Name                 string          `json:"name"`
	Image                string          `json:"image,omitempty"`
	TotalTracks          int             `json:"total_tracks"`
	TotalDurationMinutes int             `json:"total_duration_minutes"`
	Tracks               []ResolvedTrack `json:"tracks"`
}

// PublishResult is returned after a playlist has been created on the user's
// spotify account.
type PublishResult struct {
	PlaylistURL string `json:"playlistUrl"`
	PlaylistID  string `json:"playlistId"`
}
