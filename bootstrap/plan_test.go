package bootstrap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStepExpand(t *testing.T) {
	var got []Step
	for _, s := range DefaultPlan().Steps {
		got = append(got, s.Expand("demo", "alice"))
	}

	want := []Step{
		{File: "go.work", Rules: []Rule{{"/fast", "/alice"}, {"template", "demo"}}},
		{File: "template/go.mod", Rules: []Rule{{"/fast", "/alice"}, {"template", "demo"}}},
		{File: "README.md", Rules: []Rule{{"/fast", "/alice"}, {"/template", "/demo"}, {"${projectName}", "demo"}}},
		{File: ".github/semantic.yml", Rules: []Rule{{"/fast/template", "/alice/demo"}}},
		{File: "go.work.sum", Rules: []Rule{{"template", "demo"}}, Optional: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expanded steps mismatch (-want +got):\n%s", diff)
	}
}

func TestStepExpand_SinglePass(t *testing.T) {
	step := Step{File: "f", Rules: []Rule{{Old: "x", New: "{account}"}}}
	got := step.Expand("demo", AccountName(ProjectPlaceholder))
	if got.Rules[0].New != ProjectPlaceholder {
		t.Errorf("New = %q, want the inserted account left unexpanded", got.Rules[0].New)
	}
}

func TestPlanWithDefaults(t *testing.T) {
	p := Plan{Steps: []Step{{File: "only.txt"}}}.WithDefaults()
	if p.RootManifest != "go.work" || p.TaskRunnerDir != "xtask" || p.TemplateDir != "template" {
		t.Errorf("defaults not applied: %+v", p)
	}
	if len(p.Steps) != 1 {
		t.Errorf("steps replaced: %+v", p.Steps)
	}
}

func TestPlanWithDefaults_NilLists(t *testing.T) {
	def := DefaultPlan()

	p := Plan{TemplateDir: "skeleton"}.WithDefaults()
	if diff := cmp.Diff(def.Steps, p.Steps); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(def.Cleanup, p.Cleanup); diff != "" {
		t.Errorf("cleanup mismatch (-want +got):\n%s", diff)
	}

	empty := Plan{Steps: []Step{}, Cleanup: []string{}}.WithDefaults()
	if len(empty.Steps) != 0 || len(empty.Cleanup) != 0 {
		t.Errorf("explicit empty lists replaced: %+v", empty)
	}
}
