package phonetics

// apiEntry represents a single entry from the phonetic-data API response.
// The API returns an array of entries (one per etymology).
type apiEntry struct {
	Word      string        `json:"word"`
	Phonetics []apiPhonetic `json:"phonetics"`
}

// apiPhonetic represents one phonetic object. Both fields are optional.
type apiPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}
