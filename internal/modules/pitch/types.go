package pitch

import "errors"

// GeneratePitchDTO is the inbound body for POST /generate-pitch.
// user_id and idea_title are required; the idea reference fields link the
// pitch back to a validated idea when one exists.
type GeneratePitchDTO struct {
	UserID          string `json:"user_id"`
	IdeaSource      string `json:"idea_source"`
	IdeaID          string `json:"idea_id"`
	IdeaTitle       string `json:"idea_title"`
	IdeaDescription string `json:"idea_description"`
}

var requiredResultKeys = []string{"executive_summary", "slides"}

var errSavePitch = errors.New("failed to save pitch")
