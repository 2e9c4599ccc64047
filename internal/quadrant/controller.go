package quadrant

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// ErrTogglePending rejects a second toggle on a cell whose first toggle
	// has not resolved yet. No queuing: the operator retries once the cell
	// settles.
	ErrTogglePending = errors.New("a toggle for this cell is already in flight")

	// ErrNoGrid means no grid is loaded, either because Load was never called
	// or because the last load failed.
	ErrNoGrid = errors.New("no grid loaded")
)

// Collaborator is the authoritative record store the controller talks to.
type Collaborator interface {
	ListEmployees(ctx context.Context, teamID uint) ([]Employee, error)
	QueryAbsences(ctx context.Context, teamID uint, window DateWindow) ([]AbsenceRecord, error)
	ToggleAbsence(ctx context.Context, employeeID uint, day time.Time) error
	InsertAbsenceRange(ctx context.Context, employeeID uint, start, end time.Time, vacationType string) error
}

// Renderer projects controller state for the operator. Implementations must
// not call back into the controller.
type Renderer interface {
	RenderGrid(grid *Grid)
	RenderError(err error)
}

// Notifier surfaces mutation outcomes to the operator: Info for brief
// acknowledgements, Alert for failures that must not be missed.
type Notifier interface {
	Info(message string)
	Alert(message string)
}

type cellKey struct {
	employeeID uint
	day        string
}

// Controller owns the in-memory absence state behind the grid and executes
// single-day toggles and range insertions against the collaborator with an
// optimistic-update / rollback protocol. All state transitions happen under
// one lock; only the stretch where a request is in flight is concurrent.
type Controller struct {
	collab   Collaborator
	renderer Renderer
	notifier Notifier
	logger   *logrus.Logger

	mu        sync.Mutex
	teamID    uint
	window    DateWindow
	employees []Employee
	index     *AbsenceIndex
	grid      *Grid
	pending   map[cellKey]struct{}
	gen       uint64
	loaded    bool
}

func NewController(collab Collaborator, renderer Renderer, notifier Notifier, logger *logrus.Logger) *Controller {
	if logger == nil {
		logger = logrus.New()
	}
	return &Controller{
		collab:   collab,
		renderer: renderer,
		notifier: notifier,
		logger:   logger,
		pending:  make(map[cellKey]struct{}),
	}
}

// Load fetches the employee list and absence set for a team/window and
// rebuilds the grid from scratch. A completed load supersedes the visual
// effect of any toggle still in flight. On fetch failure an error placeholder
// is rendered in place of the grid; there is no automatic retry.
func (c *Controller) Load(ctx context.Context, teamID uint, window DateWindow) error {
	employees, err := c.collab.ListEmployees(ctx, teamID)
	if err != nil {
		return c.failLoad(fmt.Errorf("fetching employees: %w", err))
	}
	records, err := c.collab.QueryAbsences(ctx, teamID, window)
	if err != nil {
		return c.failLoad(fmt.Errorf("fetching absences: %w", err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.teamID = teamID
	c.window = window
	c.applyLocked(employees, records)
	return nil
}

// Reload re-fetches the currently displayed team/window.
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	if !c.loaded {
		c.mu.Unlock()
		return ErrNoGrid
	}
	teamID, window := c.teamID, c.window
	c.mu.Unlock()

	return c.Load(ctx, teamID, window)
}

// Toggle flips the absence flag of one cell. The cell is presented with the
// flipped value immediately; the absence set itself is only touched once the
// collaborator acknowledges. A rejection reverts the visual flip and leaves
// the set untouched.
func (c *Controller) Toggle(ctx context.Context, employeeID uint, day time.Time) error {
	day = DayOf(day)
	key := cellKey{employeeID: employeeID, day: day.Format(ISODate)}

	c.mu.Lock()
	if !c.loaded {
		c.mu.Unlock()
		return ErrNoGrid
	}
	if !c.window.Contains(day) {
		c.mu.Unlock()
		return fmt.Errorf("day %s is outside the displayed window", key.day)
	}
	if _, inFlight := c.pending[key]; inFlight {
		c.mu.Unlock()
		return ErrTogglePending
	}
	wasAbsent := c.index.IsAbsent(employeeID, day)
	c.pending[key] = struct{}{}
	gen := c.gen
	c.grid.setAbsent(employeeID, day, !wasAbsent)
	c.renderer.RenderGrid(c.grid)
	c.mu.Unlock()

	err := c.collab.ToggleAbsence(ctx, employeeID, day)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, key)

	if c.gen != gen {
		// A full rebuild completed while the toggle was in flight; its render
		// wins for this cell. The acknowledgement only settles the pending
		// mark, the absence set was already replaced wholesale.
		if err != nil {
			c.alert(fmt.Sprintf("Toggle of %s failed: %v", key.day, err))
			return fmt.Errorf("toggle rejected: %w", err)
		}
		return nil
	}

	if err != nil {
		c.grid.setAbsent(employeeID, day, wasAbsent)
		c.renderer.RenderGrid(c.grid)
		c.alert(fmt.Sprintf("Toggle of %s failed and was reverted: %v", key.day, err))
		return fmt.Errorf("toggle rejected: %w", err)
	}

	// Commit touches only this cell. No full rebuild here: another cell's
	// toggle may still be in flight, and rebuilding from the confirmed set
	// would wipe its optimistic flip off the render.
	if wasAbsent {
		c.index.Remove(employeeID, day)
	} else {
		c.index.Add(employeeID, day)
	}
	c.grid.setAbsent(employeeID, day, !wasAbsent)
	c.renderer.RenderGrid(c.grid)
	c.info(fmt.Sprintf("Saved: %s toggled for employee %d", key.day, employeeID))
	return nil
}

// InsertRange records a contiguous absence span in a single request. No
// optimistic paint: the range may fall partly outside the displayed window,
// so success triggers a full re-fetch of the visible grid instead. Overlap
// detection belongs to the collaborator; a rejection is only surfaced.
func (c *Controller) InsertRange(ctx context.Context, employeeID uint, start, end time.Time, vacationType string) error {
	start, end = DayOf(start), DayOf(end)
	if end.Before(start) {
		return fmt.Errorf("range end %s before start %s", end.Format(ISODate), start.Format(ISODate))
	}

	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()
	if !loaded {
		return ErrNoGrid
	}

	if err := c.collab.InsertAbsenceRange(ctx, employeeID, start, end, vacationType); err != nil {
		c.alert(fmt.Sprintf("Range %s..%s rejected: %v", start.Format(ISODate), end.Format(ISODate), err))
		return fmt.Errorf("range insert rejected: %w", err)
	}

	if err := c.Reload(ctx); err != nil {
		return err
	}
	c.info(fmt.Sprintf("Range %s..%s recorded for employee %d", start.Format(ISODate), end.Format(ISODate), employeeID))
	return nil
}

// Grid returns the currently rendered grid, or nil when none is loaded.
func (c *Controller) Grid() *Grid {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid
}

// Window returns the currently displayed window.
func (c *Controller) Window() DateWindow {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window
}

// IsAbsent answers from the confirmed absence set, not the optimistic view.
func (c *Controller) IsAbsent(employeeID uint, day time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return false
	}
	return c.index.IsAbsent(employeeID, DayOf(day))
}

func (c *Controller) applyLocked(employees []Employee, records []AbsenceRecord) {
	c.employees = employees
	c.index = NewAbsenceIndex(records)
	c.grid = BuildGrid(employees, c.window.Days(), c.index)
	c.loaded = true
	c.gen++
	c.renderer.RenderGrid(c.grid)
}

func (c *Controller) failLoad(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.grid = nil
	c.gen++
	c.logger.WithError(err).Error("grid load failed")
	c.renderer.RenderError(err)
	return err
}

func (c *Controller) info(message string) {
	if c.notifier != nil {
		c.notifier.Info(message)
	}
}

func (c *Controller) alert(message string) {
	if c.notifier != nil {
		c.notifier.Alert(message)
	}
}
