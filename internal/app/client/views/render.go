package views

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/finance"
	"dropops/internal/domain/progress"
	"dropops/internal/domain/task"
	"dropops/internal/domain/waitlist"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Renderer печатает экраны в таблицу, JSON или YAML.
type Renderer struct {
	out    io.Writer
	format string
	now    func() time.Time
}

func NewRenderer(out io.Writer, format string) *Renderer {
	if format == "" {
		format = FormatTable
	}
	return &Renderer{out: out, format: format, now: time.Now}
}

var (
	bold  = color.New(color.Bold).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

var statusColor = map[airdrop.Status]*color.Color{
	airdrop.StatusTracking: color.New(color.FgCyan),
	airdrop.StatusActive:   color.New(color.FgGreen),
	airdrop.StatusSnapshot: color.New(color.FgYellow),
	airdrop.StatusClaimed:  color.New(color.FgMagenta),
	airdrop.StatusDropped:  color.New(color.FgHiBlack),
}

// structured writes v as JSON or YAML and reports whether it did.
func (r *Renderer) structured(v any) (bool, error) {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

func (r *Renderer) table() *tabwriter.Writer {
	return tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
}

func (r *Renderer) Dashboard(d Dashboard) error {
	if ok, err := r.structured(d); ok {
		return err
	}
	if len(d.Rows) == 0 {
		fmt.Fprintln(r.out, faint("No airdrops yet. Add one with `dropops airdrop create`."))
		return nil
	}

	w := r.table()
	fmt.Fprintln(w, bold("ID\tNAME\tNETWORK\tSTATUS\tEST. VALUE\tPROGRESS\tADDED"))
	for _, row := range d.Rows {
		a := row.Airdrop
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.Name, opt(a.Network), status(a.Status), opt(a.EstimatedVal),
			bar(row.Progress), humanize.RelTime(a.CreatedAt, r.now(), "ago", "from now"))
	}
	return w.Flush()
}

func (r *Renderer) Airdrop(a *airdrop.Airdrop) error {
	if ok, err := r.structured(a); ok {
		return err
	}
	if a == nil {
		fmt.Fprintln(r.out, faint("Airdrop not found."))
		return nil
	}

	w := r.table()
	fmt.Fprintf(w, "%s\t%s\n", bold("Name"), a.Name)
	fmt.Fprintf(w, "ID\t%s\n", a.ID)
	fmt.Fprintf(w, "Status\t%s\n", status(a.Status))
	fmt.Fprintf(w, "Network\t%s\n", opt(a.Network))
	fmt.Fprintf(w, "Website\t%s\n", opt(a.Website))
	fmt.Fprintf(w, "Funds\t%s\n", opt(a.Funds))
	fmt.Fprintf(w, "Estimated TGE\t%s\n", opt(a.EstimatedTGE))
	fmt.Fprintf(w, "Estimated value\t%s\n", opt(a.EstimatedVal))
	fmt.Fprintf(w, "Farming points\t%s\n", opt(a.FarmingPoints))
	fmt.Fprintf(w, "Period\t%s .. %s\n", opt(a.StartDate), opt(a.EndDate))
	fmt.Fprintf(w, "Tasks\t%s\n", opt(a.TasksSummary))
	fmt.Fprintf(w, "Notes\t%s\n", opt(a.Notes))
	fmt.Fprintf(w, "Schema\tv%d\n", a.SchemaVersion)
	return w.Flush()
}

func (r *Renderer) Detail(d Detail) error {
	if ok, err := r.structured(d); ok {
		return err
	}
	if err := r.Airdrop(d.Airdrop); err != nil || d.Airdrop == nil {
		return err
	}
	fmt.Fprintln(r.out)
	if err := r.Steps(StepList{Steps: d.Steps, Progress: d.Progress}); err != nil {
		return err
	}
	if len(d.Tasks) > 0 {
		fmt.Fprintln(r.out)
		return r.taskTable(d.Tasks)
	}
	return nil
}

func (r *Renderer) Steps(l StepList) error {
	if ok, err := r.structured(l); ok {
		return err
	}
	fmt.Fprintf(r.out, "%s %s\n", bold("Steps"), faint(fmt.Sprintf("%d/%d completed", l.Progress.Completed, l.Progress.Total)))
	if len(l.Steps) == 0 {
		fmt.Fprintln(r.out, faint("No steps yet."))
		return nil
	}

	w := r.table()
	for _, s := range l.Steps {
		fmt.Fprintf(w, "%s\t%s\t%s\n", check(s.IsCompleted), s.Title, faint(s.ID))
	}
	return w.Flush()
}

func (r *Renderer) Finance(f Finance) error {
	if ok, err := r.structured(f); ok {
		return err
	}
	if len(f.Airdrops) == 0 {
		fmt.Fprintln(r.out, faint("No airdrops to track costs for."))
		return nil
	}

	w := r.table()
	fmt.Fprintln(w, bold("AIRDROP\tCOST\tREWARD\tP/L\tROI"))
	for _, s := range f.Airdrops {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Name,
			money(s.Totals.TotalCost), money(s.Totals.ClaimedReward), pl(s.Totals.ProfitLoss), roi(s.Totals.ROIPercent))
	}
	p := f.Portfolio
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", bold("TOTAL"),
		money(p.TotalCost), money(p.ClaimedReward), pl(p.ProfitLoss), roi(p.ROIPercent))
	if err := w.Flush(); err != nil {
		return err
	}

	entries := false
	for _, s := range f.Airdrops {
		entries = entries || len(s.Entries) > 0
	}
	if !entries {
		return nil
	}

	fmt.Fprintln(r.out)
	w = r.table()
	fmt.Fprintln(w, bold("ID\tAIRDROP\tTYPE\tAMOUNT\tADDED"))
	for _, s := range f.Airdrops {
		for _, e := range s.Entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, s.Name, e.CostType, entryAmount(e),
				humanize.RelTime(e.CreatedAt, r.now(), "ago", "from now"))
		}
	}
	return w.Flush()
}

func (r *Renderer) Tasks(t Tasks) error {
	if ok, err := r.structured(t); ok {
		return err
	}
	fmt.Fprintf(r.out, "%s %s\n", bold("Daily checklist"),
		faint(fmt.Sprintf("%d of %d completed", t.Progress.Completed, t.Progress.Total)))
	if len(t.Tasks) == 0 {
		fmt.Fprintln(r.out, faint("No tasks yet. Add your first task with `dropops task add`."))
		return nil
	}
	return r.taskTable(t.Tasks)
}

func (r *Renderer) taskTable(tasks []task.Task) error {
	w := r.table()
	for _, t := range tasks {
		last := ""
		if t.LastCompletedAt != nil {
			last = "done " + humanize.RelTime(*t.LastCompletedAt, r.now(), "ago", "from now")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", check(t.IsCompleted), t.Title, t.Type, faint(last), faint(t.ID))
	}
	return w.Flush()
}

func (r *Renderer) Waitlist(items []waitlist.Item) error {
	if ok, err := r.structured(items); ok {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(r.out, faint("Waitlist is empty."))
		return nil
	}

	w := r.table()
	fmt.Fprintln(w, bold("ID\tPROJECT\tTYPE\tDATE"))
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", it.ID, it.ProjectName, strings.ToUpper(string(it.ItemType)), opt(it.Date))
	}
	return w.Flush()
}

func (r *Renderer) Farming(list []airdrop.Airdrop) error {
	if ok, err := r.structured(list); ok {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(r.out, faint("No airdrops yet."))
		return nil
	}

	w := r.table()
	fmt.Fprintln(w, bold("ID\tNAME\tSTATUS\tPOINTS\tPERIOD"))
	for _, a := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s .. %s\n", a.ID, a.Name, status(a.Status),
			opt(a.FarmingPoints), opt(a.StartDate), opt(a.EndDate))
	}
	return w.Flush()
}

// Value prints any other result (created rows, identities).
func (r *Renderer) Value(v any) error {
	if ok, err := r.structured(v); ok {
		return err
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = r.out.Write(data)
	return err
}

func opt(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func status(s airdrop.Status) string {
	if c, ok := statusColor[s]; ok {
		return c.Sprint(s)
	}
	return string(s)
}

func check(done bool) string {
	if done {
		return green("[x]")
	}
	return "[ ]"
}

func bar(p progress.Summary) string {
	if p.Total == 0 {
		return faint("-")
	}
	const width = 10
	filled := p.Percent * width / 100
	return fmt.Sprintf("%s%s %d%%", strings.Repeat("#", filled), strings.Repeat(".", width-filled), p.Percent)
}

func money(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}

func pl(v float64) string {
	s := money(v)
	switch {
	case v > 0:
		return green("+" + s)
	case v < 0:
		return red("-$" + humanize.CommafWithDigits(-v, 2))
	}
	return s
}

func roi(v float64) string {
	s := humanize.FtoaWithDigits(v, 1) + "%"
	if v < 0 {
		return red(s)
	}
	return s
}

func entryAmount(e finance.Entry) string {
	if e.CostType.IsReward() {
		return green("+" + money(e.Amount))
	}
	return money(e.Amount)
}
