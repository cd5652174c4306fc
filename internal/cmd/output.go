package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"planpilot/internal/domain"
	"planpilot/internal/services"
	"planpilot/internal/theme"
)

const timeLayout = "2006-01-02 15:04:05"

type planView struct {
	Comment   string    `json:"comment,omitempty"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ID        int64     `json:"id"`
	Status    string    `json:"status"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

type waitView struct {
	Reason string    `json:"reason,omitempty"`
	Until  time.Time `json:"until"`
}

type goalView struct {
	Comment string `json:"comment,omitempty"`
	Content string `json:"content"`
	ID      int64  `json:"id"`
	Status  string `json:"status"`
	StepID  int64  `json:"step_id"`
}

type stepView struct {
	Comment  string     `json:"comment,omitempty"`
	Content  string     `json:"content"`
	Executor string     `json:"executor"`
	Goals    []goalView `json:"goals,omitempty"`
	ID       int64      `json:"id"`
	PlanID   int64      `json:"plan_id"`
	Position int        `json:"position"`
	Status   string     `json:"status"`
	Wait     *waitView  `json:"wait,omitempty"`
}

type planDetailView struct {
	planView
	Steps []stepView `json:"steps"`
}

type nextView struct {
	Finished bool      `json:"finished"`
	Plan     planView  `json:"plan"`
	Step     *stepView `json:"step,omitempty"`
}

type changeView struct {
	At     time.Time `json:"at"`
	Entity string    `json:"entity"`
	From   string    `json:"from"`
	ID     int64     `json:"id"`
	Reason string    `json:"reason"`
	To     string    `json:"to"`
}

func newPlanView(p domain.Plan) planView {
	return planView{
		Comment:   p.Comment,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		ID:        p.ID,
		Status:    string(p.Status),
		Title:     p.Title,
		UpdatedAt: p.UpdatedAt,
	}
}

func newGoalViews(goals []domain.Goal) []goalView {
	views := make([]goalView, len(goals))
	for i, g := range goals {
		views[i] = goalView{
			Comment: g.Comment,
			Content: g.Content,
			ID:      g.ID,
			Status:  string(g.Status),
			StepID:  g.StepID,
		}
	}
	return views
}

func newStepView(s domain.Step, goals []domain.Goal) stepView {
	v := stepView{
		Comment:  s.Comment,
		Content:  s.Content,
		Executor: string(s.Executor),
		Goals:    newGoalViews(goals),
		ID:       s.ID,
		PlanID:   s.PlanID,
		Position: s.SortOrder,
		Status:   string(s.Status),
	}
	if w := s.Wait(); w != nil {
		v.Wait = &waitView{Reason: w.Reason, Until: w.Until}
	}
	return v
}

func newPlanDetailView(d *domain.PlanDetail) planDetailView {
	steps := make([]stepView, len(d.Steps))
	for i, s := range d.Steps {
		steps[i] = newStepView(s, d.GoalsByStep[s.ID])
	}
	return planDetailView{planView: newPlanView(d.Plan), Steps: steps}
}

func newNextView(work *services.NextWork) nextView {
	v := nextView{Finished: work.Step == nil, Plan: newPlanView(work.Plan)}
	if work.Step != nil {
		step := newStepView(*work.Step, work.Goals)
		v.Step = &step
	}
	return v
}

func newChangeViews(cs domain.ChangeSet) []changeView {
	views := make([]changeView, len(cs.Changes))
	for i, c := range cs.Changes {
		views[i] = changeView{
			At:     c.At,
			Entity: string(c.EntityType),
			From:   c.From,
			ID:     c.EntityID,
			Reason: c.Reason,
			To:     c.To,
		}
	}
	return views
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// printResult writes either the JSON payload or the human summary followed
// by the status changes the operation caused
func printResult(cli *CLI, payload any, summary string, cs domain.ChangeSet) error {
	w := cli.Out()
	if cli.JSON() {
		return printJSON(w, payload)
	}
	if summary != "" {
		fmt.Fprintln(w, summary)
	}
	printChanges(w, cli.Container.Palette, cs)
	return nil
}

func printChanges(w io.Writer, palette *theme.Palette, cs domain.ChangeSet) {
	for _, c := range cs.Changes {
		to := c.To
		if s, err := domain.ParseStatus(c.To); err == nil {
			to = palette.StatusWord(s)
		}
		fmt.Fprintf(w, "  %s %s: %s -> %s %s\n",
			c.EntityType,
			theme.IDStyle.Render(fmt.Sprintf("#%d", c.EntityID)),
			c.From,
			to,
			theme.MutedStyle.Render("("+c.Reason+")"))
	}
}

func printGoalLines(w io.Writer, palette *theme.Palette, goals []domain.Goal, indent string) {
	for _, g := range goals {
		line := fmt.Sprintf("%s%s %s %s", indent, palette.Status(g.Status), theme.IDStyle.Render(fmt.Sprintf("#%d", g.ID)), g.Content)
		if g.Comment != "" {
			line += " " + theme.MutedStyle.Render("// "+g.Comment)
		}
		fmt.Fprintln(w, line)
	}
}

func printStepLine(w io.Writer, palette *theme.Palette, s domain.Step, now time.Time) {
	line := fmt.Sprintf("  %s %d. %s %s [%s]",
		palette.Status(s.Status),
		s.SortOrder,
		theme.IDStyle.Render(fmt.Sprintf("#%d", s.ID)),
		s.Content,
		palette.Executor(s.Executor))
	if wait := s.Wait(); wait.Pending(now) {
		line += " " + palette.Wait() + " " + theme.WaitStyle.Render("until "+wait.Until.Local().Format(timeLayout))
	}
	fmt.Fprintln(w, line)
	if s.Comment != "" {
		fmt.Fprintln(w, "     "+theme.MutedStyle.Render("// "+s.Comment))
	}
}

func printPlanHeader(w io.Writer, palette *theme.Palette, p domain.Plan) {
	fmt.Fprintf(w, "%s %s %s\n",
		palette.Status(p.Status),
		theme.IDStyle.Render(fmt.Sprintf("#%d", p.ID)),
		theme.TitleStyle.Render(p.Title))
	if p.Content != "" {
		fmt.Fprintln(w, p.Content)
	}
	if p.Comment != "" {
		fmt.Fprintln(w, theme.MutedStyle.Render("// "+p.Comment))
	}
}
