package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"planpilot/internal/domain"
	"planpilot/internal/logging"
	"planpilot/internal/services"
	"planpilot/internal/theme"
)

// PlanCmd manages plans
type PlanCmd struct {
	Add    PlanAddCmd    `cmd:"add" help:"Create a plan, optionally with steps and goals"`
	Done   PlanDoneCmd   `cmd:"done" help:"Mark a plan done"`
	List   PlanListCmd   `cmd:"list" aliases:"ls" help:"List plans" default:"1"`
	Rm     PlanRmCmd     `cmd:"rm" help:"Delete a plan with its steps and goals"`
	Show   PlanShowCmd   `cmd:"show" help:"Show a plan with its steps and goals"`
	Update PlanUpdateCmd `cmd:"update" help:"Update plan fields"`
}

// planFile is the YAML document accepted by "plan add --file"
type planFile struct {
	Content string         `yaml:"content"`
	Steps   []planFileStep `yaml:"steps"`
	Title   string         `yaml:"title"`
}

type planFileStep struct {
	Content  string   `yaml:"content"`
	Executor string   `yaml:"executor"`
	Goals    []string `yaml:"goals"`
}

// PlanAddCmd creates a plan
type PlanAddCmd struct {
	Activate bool     `help:"Activate the new plan for the current session"`
	Content  string   `help:"Plan description" short:"c"`
	Executor string   `help:"Executor of the --step steps" enum:"ai,human" default:"ai"`
	File     string   `help:"Read the plan tree from a YAML file" type:"existingfile"`
	Steps    []string `name:"step" help:"Step content (repeatable)" short:"s"`
	Title    string   `arg:"" optional:"" help:"Plan title"`
}

// AfterApply validates that a title source is given
func (p *PlanAddCmd) AfterApply() error {
	if p.File == "" && strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("a plan title is required (or use --file)")
	}
	return nil
}

// Run executes the add command
func (p *PlanAddCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing plan add command", "title", p.Title, "file", p.File, "steps", len(p.Steps))

	plan, err := p.newPlan()
	if err != nil {
		return err
	}

	ctx := context.Background()
	result, err := cli.Container.TaskService.CreatePlan(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if p.Activate {
		cwd, _ := os.Getwd()
		err := cli.Container.TaskService.Activate(ctx, services.ActivateParams{
			Cwd:       cwd,
			PlanID:    result.PlanID,
			SessionID: cli.Session,
		})
		if err != nil {
			return fmt.Errorf("plan #%d created but not activated: %w", result.PlanID, err)
		}
	}

	if cli.JSON() {
		return printJSON(cli.Out(), map[string]any{
			"activated": p.Activate,
			"goal_ids":  result.GoalIDs,
			"plan_id":   result.PlanID,
			"step_ids":  result.StepIDs,
		})
	}

	fmt.Fprintf(cli.Out(), "Created plan %s with %d steps and %d goals\n",
		theme.IDStyle.Render(fmt.Sprintf("#%d", result.PlanID)), result.StepCount, result.GoalCount)
	if p.Activate {
		fmt.Fprintf(cli.Out(), "Activated for session %s\n", cli.Session)
	}
	return nil
}

func (p *PlanAddCmd) newPlan() (domain.NewPlan, error) {
	var plan domain.NewPlan
	if p.File != "" {
		data, err := os.ReadFile(p.File)
		if err != nil {
			return plan, fmt.Errorf("failed to read plan file: %w", err)
		}
		var doc planFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return plan, fmt.Errorf("failed to parse plan file %s: %w", p.File, err)
		}
		plan.Title = doc.Title
		plan.Content = doc.Content
		for _, s := range doc.Steps {
			executor, err := domain.ParseExecutor(s.Executor)
			if err != nil {
				return plan, err
			}
			plan.Steps = append(plan.Steps, domain.NewStep{Content: s.Content, Executor: executor, Goals: s.Goals})
		}
	}

	// Flags override the file
	if strings.TrimSpace(p.Title) != "" {
		plan.Title = p.Title
	}
	if p.Content != "" {
		plan.Content = p.Content
	}
	for _, content := range p.Steps {
		plan.Steps = append(plan.Steps, domain.NewStep{Content: content, Executor: domain.Executor(p.Executor)})
	}
	return plan, nil
}

// PlanListCmd lists plans
type PlanListCmd struct {
	Desc  bool   `help:"Reverse the sort order"`
	Order string `help:"Sort key: id, title, created or updated" enum:"id,title,created,updated" default:"id"`
}

// Run executes the list command
func (p *PlanListCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing plan list command", "order", p.Order, "desc", p.Desc)

	plans, err := cli.Container.TaskService.ListPlans(context.Background(), p.Order, p.Desc)
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}

	if cli.JSON() {
		views := make([]planView, len(plans))
		for i, plan := range plans {
			views[i] = newPlanView(plan)
		}
		return printJSON(cli.Out(), views)
	}

	w := newTable(cli.Out())
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tUPDATED")
	for _, plan := range plans {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			plan.ID,
			plan.Status,
			plan.Title,
			plan.UpdatedAt.Local().Format(timeLayout))
	}
	w.Flush()

	fmt.Fprintf(cli.Out(), "\nTotal: %d plans\n", len(plans))
	return nil
}

// PlanShowCmd shows one plan tree
type PlanShowCmd struct {
	ID int64 `arg:"" help:"Plan id"`
}

// Run executes the show command
func (p *PlanShowCmd) Run(cli *CLI) error {
	detail, err := cli.Container.TaskService.GetPlanDetail(context.Background(), p.ID)
	if err != nil {
		return err
	}

	if cli.JSON() {
		return printJSON(cli.Out(), newPlanDetailView(detail))
	}

	w := cli.Out()
	palette := cli.Container.Palette
	now := cli.Container.Clock.Now()
	printPlanHeader(w, palette, detail.Plan)
	if len(detail.Steps) == 0 {
		fmt.Fprintln(w, theme.MutedStyle.Render("  (no steps)"))
		return nil
	}
	fmt.Fprintln(w)
	for _, step := range detail.Steps {
		printStepLine(w, palette, step, now)
		printGoalLines(w, palette, detail.GoalsByStep[step.ID], "       ")
	}
	return nil
}

// PlanUpdateCmd updates plan fields. Empty flags leave the field unchanged.
type PlanUpdateCmd struct {
	ClearComment bool   `help:"Remove the plan comment" xor:"comment"`
	Comment      string `help:"Set the plan comment" xor:"comment"`
	Content      string `help:"Set the plan description"`
	ID           int64  `arg:"" help:"Plan id"`
	Status       string `help:"Set the status explicitly (todo or done)"`
	Title        string `help:"Set the plan title"`
}

// Run executes the update command
func (p *PlanUpdateCmd) Run(cli *CLI) error {
	var update domain.PlanUpdate
	if p.Title != "" {
		update.Title = &p.Title
	}
	if p.Content != "" {
		update.Content = &p.Content
	}
	if p.Comment != "" || p.ClearComment {
		update.Comment = &p.Comment
	}
	if p.Status != "" {
		status, err := domain.ParseStatus(p.Status)
		if err != nil {
			return err
		}
		update.Status = &status
	}

	cs, err := cli.Container.TaskService.UpdatePlan(context.Background(), p.ID, update)
	if err != nil {
		return err
	}
	return printResult(cli, newChangeViews(cs), fmt.Sprintf("Plan #%d updated", p.ID), cs)
}

// PlanDoneCmd marks a plan done
type PlanDoneCmd struct {
	ID int64 `arg:"" help:"Plan id"`
}

// Run executes the done command
func (p *PlanDoneCmd) Run(cli *CLI) error {
	status := domain.StatusDone
	cs, err := cli.Container.TaskService.UpdatePlan(context.Background(), p.ID, domain.PlanUpdate{Status: &status})
	if err != nil {
		return err
	}
	summary := fmt.Sprintf("Plan #%d done", p.ID)
	if cs.ActivePlanCleared() {
		summary += " (active plan cleared)"
	}
	return printResult(cli, newChangeViews(cs), summary, cs)
}

// PlanRmCmd deletes a plan
type PlanRmCmd struct {
	ID int64 `arg:"" help:"Plan id"`
}

// Run executes the rm command
func (p *PlanRmCmd) Run(cli *CLI) error {
	logging.Logger.Info("Deleting plan", "id", p.ID)

	cs, err := cli.Container.TaskService.DeletePlan(context.Background(), p.ID)
	if err != nil {
		return err
	}
	return printResult(cli, newChangeViews(cs), fmt.Sprintf("Plan #%d deleted", p.ID), cs)
}
