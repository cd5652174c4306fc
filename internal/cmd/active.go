package cmd

import (
	"context"
	"fmt"
	"os"

	"planpilot/internal/domain"
	"planpilot/internal/logging"
	"planpilot/internal/services"
	"planpilot/internal/theme"
)

// ActiveCmd manages the active plan of a session
type ActiveCmd struct {
	Clear ActiveClearCmd `cmd:"clear" help:"Clear the session's active plan"`
	Set   ActiveSetCmd   `cmd:"set" help:"Activate a plan for the session"`
	Show  ActiveShowCmd  `cmd:"show" help:"Show the session's active plan" default:"1"`
}

// ActiveSetCmd activates a plan
type ActiveSetCmd struct {
	Cwd      string `help:"Working directory recorded on the plan (defaults to the current one)"`
	PlanID   int64  `arg:"" help:"Plan id"`
	Takeover bool   `help:"Take the plan over from another session"`
}

// Run executes the set command
func (a *ActiveSetCmd) Run(cli *CLI) error {
	cwd := a.Cwd
	if cwd == "" {
		cwd, _ = os.Getwd()
	}

	err := cli.Container.TaskService.Activate(context.Background(), services.ActivateParams{
		Cwd:       cwd,
		PlanID:    a.PlanID,
		SessionID: cli.Session,
		Takeover:  a.Takeover,
	})
	if err != nil {
		return err
	}

	if cli.JSON() {
		return printJSON(cli.Out(), map[string]any{"plan_id": a.PlanID, "session_id": cli.Session})
	}
	fmt.Fprintf(cli.Out(), "Plan #%d is active for session %s\n", a.PlanID, cli.Session)
	return nil
}

// ActiveShowCmd shows the active plan
type ActiveShowCmd struct{}

// Run executes the show command
func (a *ActiveShowCmd) Run(cli *CLI) error {
	ctx := context.Background()
	active, err := cli.Container.TaskService.GetActivePlan(ctx, cli.Session)
	if err != nil {
		return err
	}
	if active == nil {
		if cli.JSON() {
			return printJSON(cli.Out(), nil)
		}
		fmt.Fprintf(cli.Out(), "Session %s has no active plan\n", cli.Session)
		return nil
	}

	plan, err := cli.Container.TaskService.GetPlan(ctx, active.PlanID)
	if err != nil {
		return err
	}

	if cli.JSON() {
		return printJSON(cli.Out(), map[string]any{
			"plan":       newPlanView(*plan),
			"session_id": active.SessionID,
			"updated_at": active.UpdatedAt,
		})
	}
	printPlanHeader(cli.Out(), cli.Container.Palette, *plan)
	fmt.Fprintln(cli.Out(), theme.MutedStyle.Render(fmt.Sprintf("active for %s since %s",
		active.SessionID, active.UpdatedAt.Local().Format(timeLayout))))
	return nil
}

// ActiveClearCmd clears the active plan
type ActiveClearCmd struct{}

// Run executes the clear command
func (a *ActiveClearCmd) Run(cli *CLI) error {
	removed, err := cli.Container.TaskService.Deactivate(context.Background(), cli.Session)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Active plan clear requested", "session", cli.Session, "removed", removed)

	if cli.JSON() {
		return printJSON(cli.Out(), map[string]any{"removed": removed, "session_id": cli.Session})
	}
	if removed {
		fmt.Fprintf(cli.Out(), "Active plan cleared for session %s\n", cli.Session)
	} else {
		fmt.Fprintf(cli.Out(), "Session %s had no active plan\n", cli.Session)
	}
	return nil
}

// NextCmd shows what the session should work on next
type NextCmd struct{}

// Run executes the next command
func (n *NextCmd) Run(cli *CLI) error {
	work, err := cli.Container.TaskService.Next(context.Background(), cli.Session)
	if err != nil {
		return err
	}

	if cli.JSON() {
		return printJSON(cli.Out(), newNextView(work))
	}

	w := cli.Out()
	palette := cli.Container.Palette
	printPlanHeader(w, palette, work.Plan)
	fmt.Fprintln(w)
	if work.Step == nil {
		fmt.Fprintln(w, palette.Status(domain.StatusDone)+" every step is done")
		return nil
	}
	printStepLine(w, palette, *work.Step, cli.Container.Clock.Now())
	printGoalLines(w, palette, work.Goals, "     ")
	return nil
}
