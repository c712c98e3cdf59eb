package domain

import "time"

// CodeStructure is the generated website source. It is embedded by value in a Project.
type CodeStructure struct {
	HTML string `json:"html" bson:"html" validate:"required"`
	CSS  string `json:"css" bson:"css" validate:"required"`
	JS   string `json:"js" bson:"js"`
}

// Project is a saved prompt together with the website generated from it.
// It is storage-agnostic and shared by the repository, service and HTTP layers.
type Project struct {
	ID        string        `json:"id"`
	Prompt    string        `json:"prompt"`
	Code      CodeStructure `json:"code"`
	CreatedAt time.Time     `json:"created_at"`
}

// CreateProjectInput is what a caller supplies to save a project.
type CreateProjectInput struct {
	Prompt string        `json:"prompt" validate:"required,min=10,max=2000"`
	Code   CodeStructure `json:"code"`
}

const (
	MinPromptLength = 10
	MaxPromptLength = 2000

	DefaultListLimit = 10
	MaxListLimit     = 50
)

// NormalizeLimit returns limit when it is within [1, MaxListLimit], otherwise
// DefaultListLimit. Out of range values are not an error.
func NormalizeLimit(limit int) int {
	if limit < 1 || limit > MaxListLimit {
		return DefaultListLimit
	}
	return limit
}
