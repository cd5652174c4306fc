package services

import (
	"fmt"
	"strings"
	"text/template"

	"planpilot/internal/domain"
)

// DefaultContinuationTemplate renders the prompt sent when auto-continue
// resumes a session
const DefaultContinuationTemplate = `Continue with the next step of plan #{{.Plan.ID}} "{{.Plan.Title}}".

Step #{{.Step.ID}} (position {{.Step.SortOrder}}): {{.Step.Content}}
{{- if .Step.Comment}}
Note: {{.Step.Comment}}
{{- end}}
{{- if .Goals}}

Goals:
{{- range .Goals}}
- [{{if eq .Status "done"}}x{{else}} {{end}}] #{{.ID}} {{.Content}}
{{- end}}
{{- end}}
{{- if .WaitReason}}

The wait on this step is over: {{.WaitReason}}
{{- end}}
{{- if .Detail}}

Triggered by: {{.Detail}}
{{- end}}

When a goal is finished mark it done. When the step is complete, mark it done and move on.`

// ContinuationData is what the continuation template can reference
type ContinuationData struct {
	Detail     string
	Goals      []domain.Goal
	Plan       domain.Plan
	Step       domain.Step
	WaitReason string
}

// Composer renders continuation prompts
type Composer struct {
	tmpl *template.Template
}

// NewComposer parses text as the continuation template. Empty text selects
// DefaultContinuationTemplate.
func NewComposer(text string) (*Composer, error) {
	if strings.TrimSpace(text) == "" {
		text = DefaultContinuationTemplate
	}
	tmpl, err := template.New("continuation").Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse continuation template: %w", err)
	}
	return &Composer{tmpl: tmpl}, nil
}

// Compose renders the prompt for data
func (c *Composer) Compose(data ContinuationData) (string, error) {
	var b strings.Builder
	if err := c.tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render continuation: %w", err)
	}
	return strings.TrimSpace(b.String()), nil
}
