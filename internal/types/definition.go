package types

// SubmissionDefinition is a named form layout describing which sections
// apply to a submission workspace.
type SubmissionDefinition struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	IsDefault bool                `json:"isDefault"`
	Sections  []SubmissionSection `json:"sections,omitempty"`
}

// SectionVisibility controls where a section is shown.
type SectionVisibility struct {
	Main  string `json:"main,omitempty"`
	Other string `json:"other,omitempty"`
}

// SubmissionSection is one panel of a submission form.
type SubmissionSection struct {
	ID         string             `json:"id"`
	Header     string             `json:"header,omitempty"`
	Type       string             `json:"sectionType"`
	Mandatory  bool               `json:"mandatory"`
	Visibility *SectionVisibility `json:"visibility,omitempty"`
}
