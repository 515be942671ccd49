package resumes

import "time"

// Resume is an uploaded document together with its analysis.
type Resume struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	Filename             string    `json:"filename"`
	MimeType             string    `json:"mimeType"`
	SizeBytes            int64     `json:"sizeBytes"`
	StorageKey           string    `json:"storageKey,omitempty"`
	OriginalText         string    `json:"originalText"`
	TechnicalSkills      []string  `json:"technicalSkills"`
	SoftSkills           []string  `json:"softSkills"`
	ExtractedSkills      []string  `json:"extractedSkills"`
	OverallScore         int       `json:"overallScore"`
	SkillMatchPercentage int       `json:"skillMatchPercentage"`
	FormatQuality        int       `json:"formatQuality"`
	KeywordDensity       int       `json:"keywordDensity"`
	CreatedAt            time.Time `json:"createdAt"`
}
