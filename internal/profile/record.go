package profile

import "time"

// Record is one student's saved profile. Name is free text and may be
// empty; the choice fields each hold one of a small fixed set of options
// or are absent. A record with no choices is valid.
type Record struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Age    string `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
	Theme  string `json:"theme,omitempty"`

	// SavedAt is stamped by the store on every save; callers cannot set it.
	SavedAt time.Time `json:"savedAt"`
}
