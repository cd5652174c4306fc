package cmd

import (
	"context"
	"fmt"
	"time"

	"planpilot/internal/domain"
	"planpilot/internal/logging"
	"planpilot/internal/services"
	"planpilot/internal/theme"
)

// StepCmd manages the steps of a plan
type StepCmd struct {
	Add    StepAddCmd    `cmd:"add" help:"Insert steps into a plan"`
	Done   StepDoneCmd   `cmd:"done" help:"Mark a step done"`
	List   StepListCmd   `cmd:"list" aliases:"ls" help:"List the steps of a plan"`
	Move   StepMoveCmd   `cmd:"move" aliases:"mv" help:"Move a step to another position"`
	Rm     StepRmCmd     `cmd:"rm" help:"Delete steps with their goals"`
	Show   StepShowCmd   `cmd:"show" help:"Show a step with its goals"`
	Unwait StepUnwaitCmd `cmd:"unwait" help:"Remove the wait marker of a step"`
	Update StepUpdateCmd `cmd:"update" help:"Update step fields"`
	Wait   StepWaitCmd   `cmd:"wait" help:"Defer auto-continue for a step"`
}

// StepAddCmd inserts steps
type StepAddCmd struct {
	// Positional order: plan id, then contents
	PlanID   int64    `arg:"" help:"Plan id"`
	Contents []string `arg:"" help:"Step contents"`

	At       int    `help:"1-based position to insert at (0 appends)" default:"0"`
	Executor string `help:"Who carries the steps out" enum:"ai,human" default:"ai"`
}

// Run executes the add command
func (s *StepAddCmd) Run(cli *CLI) error {
	params := services.AddStepsParams{
		Contents: s.Contents,
		Executor: s.Executor,
		PlanID:   s.PlanID,
	}
	if s.At > 0 {
		params.Position = &s.At
	}

	ids, cs, err := cli.Container.TaskService.AddSteps(context.Background(), params)
	if err != nil {
		return err
	}
	if cli.JSON() {
		return printJSON(cli.Out(), map[string]any{"changes": newChangeViews(cs), "step_ids": ids})
	}
	return printResult(cli, nil, fmt.Sprintf("Added steps %s to plan #%d", domain.FormatIDs(ids), s.PlanID), cs)
}

// StepListCmd lists the steps of a plan
type StepListCmd struct {
	PlanID int64 `arg:"" help:"Plan id"`
}

// Run executes the list command
func (s *StepListCmd) Run(cli *CLI) error {
	steps, err := cli.Container.TaskService.ListSteps(context.Background(), s.PlanID)
	if err != nil {
		return err
	}

	if cli.JSON() {
		views := make([]stepView, len(steps))
		for i, step := range steps {
			views[i] = newStepView(step, nil)
		}
		return printJSON(cli.Out(), views)
	}

	now := cli.Container.Clock.Now()
	w := newTable(cli.Out())
	fmt.Fprintln(w, "POS\tID\tSTATUS\tEXECUTOR\tWAIT\tCONTENT")
	for _, step := range steps {
		wait := ""
		if wt := step.Wait(); wt.Pending(now) {
			wait = wt.Until.Local().Format(timeLayout)
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
			step.SortOrder,
			step.ID,
			step.Status,
			step.Executor,
			wait,
			step.Content)
	}
	w.Flush()

	fmt.Fprintf(cli.Out(), "\nTotal: %d steps\n", len(steps))
	return nil
}

// StepShowCmd shows a step
type StepShowCmd struct {
	ID int64 `arg:"" help:"Step id"`
}

// Run executes the show command
func (s *StepShowCmd) Run(cli *CLI) error {
	ctx := context.Background()
	step, err := cli.Container.TaskService.GetStep(ctx, s.ID)
	if err != nil {
		return err
	}
	goals, err := cli.Container.TaskService.ListGoals(ctx, s.ID)
	if err != nil {
		return err
	}

	if cli.JSON() {
		return printJSON(cli.Out(), newStepView(*step, goals))
	}

	w := cli.Out()
	palette := cli.Container.Palette
	printStepLine(w, palette, *step, cli.Container.Clock.Now())
	if wait := step.Wait(); wait != nil && wait.Reason != "" {
		fmt.Fprintln(w, "     "+theme.LabelStyle.Render("wait reason: ")+wait.Reason)
	}
	printGoalLines(w, palette, goals, "     ")
	return nil
}

// StepMoveCmd moves a step
type StepMoveCmd struct {
	ID int64 `arg:"" help:"Step id"`
	To int   `arg:"" help:"Target 1-based position (clamped to the plan)"`
}

// Run executes the move command
func (s *StepMoveCmd) Run(cli *CLI) error {
	if err := cli.Container.TaskService.MoveStep(context.Background(), s.ID, s.To); err != nil {
		return err
	}
	if cli.JSON() {
		return printJSON(cli.Out(), map[string]any{"step_id": s.ID, "position": s.To})
	}
	fmt.Fprintf(cli.Out(), "Step #%d moved to position %d\n", s.ID, s.To)
	return nil
}

// StepRmCmd deletes steps
type StepRmCmd struct {
	IDs []int64 `arg:"" name:"id" help:"Step ids"`
}

// Run executes the rm command
func (s *StepRmCmd) Run(cli *CLI) error {
	logging.Logger.Info("Deleting steps", "ids", domain.FormatIDs(s.IDs))

	cs, err := cli.Container.TaskService.DeleteSteps(context.Background(), s.IDs)
	if err != nil {
		return err
	}
	return printResult(cli, newChangeViews(cs), fmt.Sprintf("Deleted steps %s", domain.FormatIDs(s.IDs)), cs)
}

// StepUpdateCmd updates step fields. Empty flags leave the field unchanged.
type StepUpdateCmd struct {
	ClearComment bool   `help:"Remove the step comment" xor:"comment"`
	Comment      string `help:"Set the step comment" xor:"comment"`
	Content      string `help:"Set the step content"`
	Executor     string `help:"Set who carries the step out (ai or human)"`
	ID           int64  `arg:"" help:"Step id"`
	Status       string `help:"Set the status explicitly (todo or done)"`
}

// Run executes the update command
func (s *StepUpdateCmd) Run(cli *CLI) error {
	var update domain.StepUpdate
	if s.Content != "" {
		update.Content = &s.Content
	}
	if s.Comment != "" || s.ClearComment {
		update.Comment = &s.Comment
	}
	if s.Executor != "" {
		executor, err := domain.ParseExecutor(s.Executor)
		if err != nil {
			return err
		}
		update.Executor = &executor
	}
	if s.Status != "" {
		status, err := domain.ParseStatus(s.Status)
		if err != nil {
			return err
		}
		update.Status = &status
	}

	cs, err := cli.Container.TaskService.UpdateStep(context.Background(), s.ID, update)
	if err != nil {
		return err
	}
	return printResult(cli, newChangeViews(cs), fmt.Sprintf("Step #%d updated", s.ID), cs)
}

// StepDoneCmd marks a step done
type StepDoneCmd struct {
	AllGoals bool  `help:"Complete the step's pending goals first" short:"a"`
	ID       int64 `arg:"" help:"Step id"`
}

// Run executes the done command
func (s *StepDoneCmd) Run(cli *CLI) error {
	cs, err := cli.Container.TaskService.SetStepDone(context.Background(), s.ID, s.AllGoals)
	if err != nil {
		return err
	}
	return printResult(cli, newChangeViews(cs), fmt.Sprintf("Step #%d done", s.ID), cs)
}

// StepWaitCmd sets a wait marker
type StepWaitCmd struct {
	ID     int64         `arg:"" help:"Step id"`
	Delay  time.Duration `arg:"" help:"How long to wait (e.g. 90s, 15m)"`
	Reason string        `help:"Why the step waits (shown in the continuation)" short:"r"`
}

// Run executes the wait command
func (s *StepWaitCmd) Run(cli *CLI) error {
	wait, err := cli.Container.TaskService.SetStepWait(context.Background(), s.ID, s.Delay, s.Reason)
	if err != nil {
		return err
	}
	if cli.JSON() {
		return printJSON(cli.Out(), waitView{Reason: wait.Reason, Until: wait.Until})
	}
	fmt.Fprintf(cli.Out(), "%s Step #%d waits until %s\n",
		cli.Container.Palette.Wait(), s.ID, wait.Until.Local().Format(timeLayout))
	return nil
}

// StepUnwaitCmd clears a wait marker
type StepUnwaitCmd struct {
	ID int64 `arg:"" help:"Step id"`
}

// Run executes the unwait command
func (s *StepUnwaitCmd) Run(cli *CLI) error {
	if err := cli.Container.TaskService.ClearStepWait(context.Background(), s.ID); err != nil {
		return err
	}
	if cli.JSON() {
		return printJSON(cli.Out(), map[string]any{"step_id": s.ID, "wait": nil})
	}
	fmt.Fprintf(cli.Out(), "Step #%d no longer waits\n", s.ID)
	return nil
}
