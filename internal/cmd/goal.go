package cmd

import (
	"context"
	"fmt"

	"planpilot/internal/domain"
	"planpilot/internal/logging"
)

// GoalCmd manages the goals of a step
type GoalCmd struct {
	Add    GoalAddCmd    `cmd:"add" help:"Add goals to a step"`
	List   GoalListCmd   `cmd:"list" aliases:"ls" help:"List the goals of a step"`
	Rm     GoalRmCmd     `cmd:"rm" help:"Delete goals"`
	Set    GoalSetCmd    `cmd:"set" help:"Set the status of goals"`
	Update GoalUpdateCmd `cmd:"update" help:"Update goal fields"`
}

// GoalAddCmd adds goals
type GoalAddCmd struct {
	StepID   int64    `arg:"" help:"Step id"`
	Contents []string `arg:"" help:"Goal contents"`
}

// Run executes the add command
func (g *GoalAddCmd) Run(cli *CLI) error {
	ids, cs, err := cli.Container.TaskService.AddGoals(context.Background(), g.StepID, g.Contents)
	if err != nil {
		return err
	}
	if cli.JSON() {
		return printJSON(cli.Out(), map[string]any{"changes": newChangeViews(cs), "goal_ids": ids})
	}
	return printResult(cli, nil, fmt.Sprintf("Added goals %s to step #%d", domain.FormatIDs(ids), g.StepID), cs)
}

// GoalListCmd lists goals
type GoalListCmd struct {
	StepID int64 `arg:"" help:"Step id"`
}

// Run executes the list command
func (g *GoalListCmd) Run(cli *CLI) error {
	goals, err := cli.Container.TaskService.ListGoals(context.Background(), g.StepID)
	if err != nil {
		return err
	}
	if cli.JSON() {
		return printJSON(cli.Out(), newGoalViews(goals))
	}
	printGoalLines(cli.Out(), cli.Container.Palette, goals, "")
	fmt.Fprintf(cli.Out(), "\nTotal: %d goals\n", len(goals))
	return nil
}

// GoalSetCmd sets goal statuses in one transaction
type GoalSetCmd struct {
	Status string  `arg:"" help:"New status" enum:"todo,done"`
	IDs    []int64 `arg:"" name:"id" help:"Goal ids"`
}

// Run executes the set command
func (g *GoalSetCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing goal set command", "status", g.Status, "ids", domain.FormatIDs(g.IDs))

	cs, err := cli.Container.TaskService.SetGoalsStatus(context.Background(), g.IDs, g.Status)
	if err != nil {
		return err
	}
	return printResult(cli, newChangeViews(cs), fmt.Sprintf("Goals %s set to %s", domain.FormatIDs(g.IDs), g.Status), cs)
}

// GoalUpdateCmd updates goal fields. Empty flags leave the field unchanged.
type GoalUpdateCmd struct {
	ClearComment bool   `help:"Remove the goal comment" xor:"comment"`
	Comment      string `help:"Set the goal comment" xor:"comment"`
	Content      string `help:"Set the goal content"`
	ID           int64  `arg:"" help:"Goal id"`
	Status       string `help:"Set the status (todo or done)"`
}

// Run executes the update command
func (g *GoalUpdateCmd) Run(cli *CLI) error {
	var update domain.GoalUpdate
	if g.Content != "" {
		update.Content = &g.Content
	}
	if g.Comment != "" || g.ClearComment {
		update.Comment = &g.Comment
	}
	if g.Status != "" {
		status, err := domain.ParseStatus(g.Status)
		if err != nil {
			return err
		}
		update.Status = &status
	}

	cs, err := cli.Container.TaskService.UpdateGoal(context.Background(), g.ID, update)
	if err != nil {
		return err
	}
	return printResult(cli, newChangeViews(cs), fmt.Sprintf("Goal #%d updated", g.ID), cs)
}

// GoalRmCmd deletes goals
type GoalRmCmd struct {
	IDs []int64 `arg:"" name:"id" help:"Goal ids"`
}

// Run executes the rm command
func (g *GoalRmCmd) Run(cli *CLI) error {
	cs, err := cli.Container.TaskService.DeleteGoals(context.Background(), g.IDs)
	if err != nil {
		return err
	}
	return printResult(cli, newChangeViews(cs), fmt.Sprintf("Deleted goals %s", domain.FormatIDs(g.IDs)), cs)
}
