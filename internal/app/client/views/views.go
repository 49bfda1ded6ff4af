package views

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/finance"
	"dropops/internal/domain/progress"
	"dropops/internal/domain/step"
	"dropops/internal/domain/task"
	"dropops/internal/domain/waitlist"
)

var ErrNotFound = errors.New("not found")

// Views загружают данные экранов. Ошибки чтения логируются, экран
// показывается пустым; ошибки записи возвращаются вызывающему.
type Views struct {
	remote Remote
	log    *slog.Logger
	now    func() time.Time
}

func New(remote Remote, log *slog.Logger) *Views {
	return &Views{
		remote: remote,
		log:    log.With("component", "views"),
		now:    time.Now,
	}
}

// DashboardQuery holds the dashboard filters. SortByValue orders by the
// parsed estimated value instead of creation time.
type DashboardQuery struct {
	Status      airdrop.Status
	Network     string
	SortByValue bool
	Desc        bool
}

type DashboardRow struct {
	Airdrop  airdrop.Airdrop  `json:"airdrop"`
	Progress progress.Summary `json:"progress"`
}

type Dashboard struct {
	Rows []DashboardRow `json:"rows"`
}

func (v *Views) Dashboard(ctx context.Context, q DashboardQuery) Dashboard {
	items, err := v.remote.ListAirdrops(ctx, airdrop.Filter{
		Status:  q.Status,
		Network: q.Network,
		OrderBy: "created_at",
		Desc:    true,
	}, true)
	if err != nil {
		v.log.Error("failed to load airdrops", "error", err)
		items = nil
	}

	if q.SortByValue {
		sortItems(items, airdrop.EstimatedValue, q.Desc)
	}

	rows := make([]DashboardRow, len(items))
	for i, it := range items {
		rows[i] = DashboardRow{Airdrop: it.Airdrop, Progress: step.Progress(it.Steps)}
	}
	return Dashboard{Rows: rows}
}

// sortItems orders items the way airdrop.SortByAmount orders airdrops.
func sortItems(items []AirdropItem, field func(airdrop.Airdrop) *string, desc bool) {
	list := make([]airdrop.Airdrop, len(items))
	byID := make(map[string]AirdropItem, len(items))
	for i, it := range items {
		list[i] = it.Airdrop
		byID[it.ID] = it
	}
	airdrop.SortByAmount(list, field, desc)
	for i, a := range list {
		items[i] = byID[a.ID]
	}
}

// CreateAirdrop stores a together with its non-blank initial steps.
func (v *Views) CreateAirdrop(ctx context.Context, a airdrop.Airdrop, steps []string) (*AirdropItem, error) {
	created, err := v.remote.CreateAirdrop(ctx, a, step.Titles(steps))
	if err != nil {
		return nil, fmt.Errorf("create airdrop: %w", err)
	}
	return created, nil
}

type Detail struct {
	Airdrop  *airdrop.Airdrop `json:"airdrop"`
	Steps    []step.Step      `json:"steps"`
	Tasks    []task.Task      `json:"tasks"`
	Progress progress.Summary `json:"progress"`
}

func (v *Views) Detail(ctx context.Context, id string) Detail {
	d := Detail{Steps: []step.Step{}, Tasks: []task.Task{}}

	a, err := v.remote.GetAirdrop(ctx, id)
	if err != nil {
		v.log.Error("failed to load airdrop", "airdrop_id", id, "error", err)
		return d
	}
	d.Airdrop = a

	if steps, err := v.remote.ListSteps(ctx, id); err != nil {
		v.log.Error("failed to load steps", "airdrop_id", id, "error", err)
	} else {
		d.Steps = steps
	}
	if tasks, err := v.remote.ListTasks(ctx, task.Filter{AirdropID: id}); err != nil {
		v.log.Error("failed to load tasks", "airdrop_id", id, "error", err)
	} else {
		d.Tasks = tasks
	}

	d.Progress = step.Progress(d.Steps)
	return d
}

func (v *Views) UpdateAirdrop(ctx context.Context, id string, patch airdrop.Patch) (*airdrop.Airdrop, error) {
	a, err := v.remote.UpdateAirdrop(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update airdrop: %w", err)
	}
	return a, nil
}

func (v *Views) DeleteAirdrop(ctx context.Context, id string) error {
	if err := v.remote.DeleteAirdrop(ctx, id); err != nil {
		return fmt.Errorf("delete airdrop: %w", err)
	}
	return nil
}

// StepList is the step list of the detail screen.
type StepList struct {
	Steps    []step.Step      `json:"steps"`
	Progress progress.Summary `json:"progress"`
}

func newStepList(steps []step.Step) StepList {
	return StepList{Steps: steps, Progress: step.Progress(steps)}
}

func (v *Views) loadSteps(ctx context.Context, airdropID string) []step.Step {
	steps, err := v.remote.ListSteps(ctx, airdropID)
	if err != nil {
		v.log.Error("failed to load steps", "airdrop_id", airdropID, "error", err)
		return []step.Step{}
	}
	return steps
}

func (v *Views) AddSteps(ctx context.Context, airdropID string, titles []string) (StepList, error) {
	titles = step.Titles(titles)
	if len(titles) == 0 {
		return StepList{}, fmt.Errorf("%w: step title is required", step.ErrInvalidInput)
	}
	if _, err := v.remote.AddSteps(ctx, airdropID, titles); err != nil {
		return StepList{}, fmt.Errorf("add steps: %w", err)
	}
	return newStepList(v.loadSteps(ctx, airdropID)), nil
}

// ToggleStep flips the step locally and returns the local list without
// waiting for the server; a failed write is only logged.
func (v *Views) ToggleStep(ctx context.Context, airdropID, stepID string) (StepList, error) {
	steps := v.loadSteps(ctx, airdropID)

	i := indexOf(steps, func(s step.Step) bool { return s.ID == stepID })
	if i < 0 {
		return newStepList(steps), fmt.Errorf("step %s: %w", stepID, ErrNotFound)
	}

	done := !steps[i].IsCompleted
	step.Patch{IsCompleted: &done}.Apply(&steps[i])

	if _, err := v.remote.UpdateStep(ctx, stepID, step.Patch{IsCompleted: &done}); err != nil {
		v.log.Error("failed to update step", "step_id", stepID, "error", err)
	}
	return newStepList(steps), nil
}

func (v *Views) DeleteStep(ctx context.Context, airdropID, stepID string) (StepList, error) {
	steps := v.loadSteps(ctx, airdropID)

	i := indexOf(steps, func(s step.Step) bool { return s.ID == stepID })
	if i < 0 {
		return newStepList(steps), fmt.Errorf("step %s: %w", stepID, ErrNotFound)
	}
	steps = append(steps[:i], steps[i+1:]...)

	if err := v.remote.DeleteStep(ctx, stepID); err != nil {
		v.log.Error("failed to delete step", "step_id", stepID, "error", err)
	}
	return newStepList(steps), nil
}

type Finance struct {
	Airdrops  []finance.AirdropSummary `json:"airdrops"`
	Portfolio finance.Totals           `json:"portfolio"`
}

func (v *Views) Finance(ctx context.Context) Finance {
	empty := Finance{Airdrops: []finance.AirdropSummary{}}

	items, err := v.remote.ListAirdrops(ctx, airdrop.Filter{OrderBy: "name"}, false)
	if err != nil {
		v.log.Error("failed to load airdrops", "error", err)
		return empty
	}
	refs := make([]finance.Ref, len(items))
	for i, it := range items {
		refs[i] = finance.Ref{ID: it.ID, Name: it.Name}
	}

	entries, err := v.remote.ListFinance(ctx, "")
	if err != nil {
		v.log.Error("failed to load finance entries", "error", err)
		entries = nil
	}

	summaries := finance.Summarize(refs, entries)
	return Finance{Airdrops: summaries, Portfolio: finance.Portfolio(summaries)}
}

// AddFinance validates and stores e, then re-fetches the finance screen.
func (v *Views) AddFinance(ctx context.Context, e finance.Entry) (Finance, error) {
	if err := e.Validate(); err != nil {
		return Finance{}, err
	}
	if _, err := v.remote.CreateFinance(ctx, e); err != nil {
		return Finance{}, fmt.Errorf("add finance entry: %w", err)
	}
	return v.Finance(ctx), nil
}

func (v *Views) DeleteFinance(ctx context.Context, id string) (Finance, error) {
	if err := v.remote.DeleteFinance(ctx, id); err != nil {
		return Finance{}, fmt.Errorf("delete finance entry: %w", err)
	}
	return v.Finance(ctx), nil
}

// Tasks is the daily checklist: tasks without an airdrop, newest first.
type Tasks struct {
	Tasks    []task.Task      `json:"tasks"`
	Progress progress.Summary `json:"progress"`
}

func newTasks(tasks []task.Task) Tasks {
	return Tasks{Tasks: tasks, Progress: task.Progress(tasks)}
}

func (v *Views) loadTasks(ctx context.Context) []task.Task {
	tasks, err := v.remote.ListTasks(ctx, task.Filter{DailyOnly: true})
	if err != nil {
		v.log.Error("failed to load tasks", "error", err)
		return []task.Task{}
	}
	return tasks
}

func (v *Views) Tasks(ctx context.Context) Tasks {
	return newTasks(v.loadTasks(ctx))
}

func (v *Views) AddTask(ctx context.Context, t task.Task) (Tasks, error) {
	if t.Type == "" {
		t.Type = task.TypeOneTime
	}
	if err := t.Validate(); err != nil {
		return Tasks{}, err
	}
	if _, err := v.remote.CreateTask(ctx, t); err != nil {
		return Tasks{}, fmt.Errorf("add task: %w", err)
	}
	return v.Tasks(ctx), nil
}

// ToggleTask flips the task locally, stamping or clearing the completion time.
func (v *Views) ToggleTask(ctx context.Context, id string) (Tasks, error) {
	tasks := v.loadTasks(ctx)

	i := indexOf(tasks, func(t task.Task) bool { return t.ID == id })
	if i < 0 {
		return newTasks(tasks), fmt.Errorf("task %s: %w", id, ErrNotFound)
	}

	done := !tasks[i].IsCompleted
	patch := task.Patch{IsCompleted: &done}
	patch.Apply(&tasks[i], v.now())

	if _, err := v.remote.UpdateTask(ctx, id, patch); err != nil {
		v.log.Error("failed to update task", "task_id", id, "error", err)
	}
	return newTasks(tasks), nil
}

func (v *Views) DeleteTask(ctx context.Context, id string) (Tasks, error) {
	tasks := v.loadTasks(ctx)

	i := indexOf(tasks, func(t task.Task) bool { return t.ID == id })
	if i < 0 {
		return newTasks(tasks), fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	tasks = append(tasks[:i], tasks[i+1:]...)

	if err := v.remote.DeleteTask(ctx, id); err != nil {
		v.log.Error("failed to delete task", "task_id", id, "error", err)
	}
	return newTasks(tasks), nil
}

func (v *Views) loadWaitlist(ctx context.Context) []waitlist.Item {
	items, err := v.remote.ListWaitlist(ctx)
	if err != nil {
		v.log.Error("failed to load waitlist", "error", err)
		return []waitlist.Item{}
	}
	return items
}

// Waitlist returns the items ordered by date, undated last.
func (v *Views) Waitlist(ctx context.Context) []waitlist.Item {
	items := v.loadWaitlist(ctx)
	waitlist.Sort(items)
	return items
}

func (v *Views) AddWaitlist(ctx context.Context, it waitlist.Item) ([]waitlist.Item, error) {
	if it.ItemType == "" {
		it.ItemType = waitlist.TypeProject
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	if _, err := v.remote.CreateWaitlist(ctx, it); err != nil {
		return nil, fmt.Errorf("add waitlist item: %w", err)
	}
	return v.Waitlist(ctx), nil
}

func (v *Views) ChangeWaitlistType(ctx context.Context, id string, t waitlist.ItemType) ([]waitlist.Item, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	items := v.Waitlist(ctx)

	i := indexOf(items, func(it waitlist.Item) bool { return it.ID == id })
	if i < 0 {
		return items, fmt.Errorf("waitlist item %s: %w", id, ErrNotFound)
	}
	patch := waitlist.Patch{ItemType: &t}
	patch.Apply(&items[i])

	if _, err := v.remote.UpdateWaitlist(ctx, id, patch); err != nil {
		v.log.Error("failed to update waitlist item", "item_id", id, "error", err)
	}
	return items, nil
}

func (v *Views) DeleteWaitlist(ctx context.Context, id string) ([]waitlist.Item, error) {
	items := v.Waitlist(ctx)

	i := indexOf(items, func(it waitlist.Item) bool { return it.ID == id })
	if i < 0 {
		return items, fmt.Errorf("waitlist item %s: %w", id, ErrNotFound)
	}
	items = append(items[:i], items[i+1:]...)

	if err := v.remote.DeleteWaitlist(ctx, id); err != nil {
		v.log.Error("failed to delete waitlist item", "item_id", id, "error", err)
	}
	return items, nil
}

// Farming lists airdrops by name, optionally sorted by parsed farming points.
func (v *Views) Farming(ctx context.Context, sortByPoints, desc bool) []airdrop.Airdrop {
	items, err := v.remote.ListAirdrops(ctx, airdrop.Filter{OrderBy: "name"}, false)
	if err != nil {
		v.log.Error("failed to load airdrops", "error", err)
		return []airdrop.Airdrop{}
	}

	list := make([]airdrop.Airdrop, len(items))
	for i, it := range items {
		list[i] = it.Airdrop
	}
	if sortByPoints {
		airdrop.SortByAmount(list, airdrop.FarmingPoints, desc)
	}
	return list
}

// SetFarmingPoints updates the points of one airdrop and re-fetches the list.
func (v *Views) SetFarmingPoints(ctx context.Context, id, points string) ([]airdrop.Airdrop, error) {
	if _, err := v.remote.UpdateAirdrop(ctx, id, airdrop.Patch{FarmingPoints: &points}); err != nil {
		return nil, fmt.Errorf("update farming points: %w", err)
	}
	return v.Farming(ctx, false, false), nil
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, it := range items {
		if match(it) {
			return i
		}
	}
	return -1
}
