package bootstrap

import "strings"

// Placeholders expanded in Rule.New.
const (
	ProjectPlaceholder = "{project}"
	AccountPlaceholder = "{account}"
)

// Rule is a literal text substitution.
type Rule struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// Step rewrites one file with an ordered list of rules.
type Step struct {
	// File is relative to the workspace root.
	File string `yaml:"file"`
	// Rules are applied in order; a later rule sees the output of earlier ones.
	Rules []Rule `yaml:"rules"`
	// Optional steps are skipped when File does not exist.
	Optional bool `yaml:"optional"`
}

// Plan is the full set of edits bootstrap performs.
type Plan struct {
	// RootManifest must exist at the workspace root.
	RootManifest string `yaml:"rootManifest"`
	// TaskRunnerDir must exist at the workspace root.
	TaskRunnerDir string `yaml:"taskRunnerDir"`
	// TemplateDir is renamed to the project name after all steps ran.
	TemplateDir string `yaml:"templateDir"`
	// Steps run in order.
	Steps []Step `yaml:"steps"`
	// Cleanup lists paths removed by the cleanup run.
	Cleanup []string `yaml:"cleanup"`
}

// DefaultPlan returns the edits for the Go workspace template.
func DefaultPlan() Plan {
	return Plan{
		RootManifest:  "go.work",
		TaskRunnerDir: "xtask",
		TemplateDir:   "template",
		Steps: []Step{
			{
				File: "go.work",
				Rules: []Rule{
					{Old: "/fast", New: "/" + AccountPlaceholder},
					{Old: "template", New: ProjectPlaceholder},
				},
			},
			{
				// The module path carries the organization, so it is rewritten too.
				File: "template/go.mod",
				Rules: []Rule{
					{Old: "/fast", New: "/" + AccountPlaceholder},
					{Old: "template", New: ProjectPlaceholder},
				},
			},
			{
				File: "README.md",
				Rules: []Rule{
					{Old: "/fast", New: "/" + AccountPlaceholder},
					{Old: "/template", New: "/" + ProjectPlaceholder},
					{Old: "${projectName}", New: ProjectPlaceholder},
				},
			},
			{
				File: ".github/semantic.yml",
				Rules: []Rule{
					{Old: "/fast/template", New: "/" + AccountPlaceholder + "/" + ProjectPlaceholder},
				},
			},
			{
				File:     "go.work.sum",
				Rules:    []Rule{{Old: "template", New: ProjectPlaceholder}},
				Optional: true,
			},
		},
		Cleanup: []string{".github/workflows/ci-bootstrap.yml"},
	}
}

// WithDefaults fills unset fields from DefaultPlan. Nil Steps or Cleanup
// take the defaults; an explicitly empty list is kept.
func (p Plan) WithDefaults() Plan {
	def := DefaultPlan()
	if p.Steps == nil {
		p.Steps = def.Steps
	}
	if p.Cleanup == nil {
		p.Cleanup = def.Cleanup
	}
	if p.RootManifest == "" {
		p.RootManifest = def.RootManifest
	}
	if p.TaskRunnerDir == "" {
		p.TaskRunnerDir = def.TaskRunnerDir
	}
	if p.TemplateDir == "" {
		p.TemplateDir = def.TemplateDir
	}
	return p
}

// Expand returns the step with placeholders in each Rule.New replaced.
// Expansion is a single pass, so inserted names are never expanded again.
func (s Step) Expand(project ProjectName, account AccountName) Step {
	r := strings.NewReplacer(
		ProjectPlaceholder, string(project),
		AccountPlaceholder, string(account),
	)
	out := Step{File: s.File, Optional: s.Optional, Rules: make([]Rule, len(s.Rules))}
	for i, rule := range s.Rules {
		out.Rules[i] = Rule{Old: rule.Old, New: r.Replace(rule.New)}
	}
	return out
}
