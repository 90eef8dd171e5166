// Package selection owns a user's in-progress course selection: it keeps the
// ordered list of chosen codes, derives the credit total and its status
// against the configured range, persists drafts, and gates submission.
//
// An Engine belongs to a single session and is not safe for concurrent use.
package selection

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/lehigh-university-libraries/registrar/internal/catalog"
	"github.com/lehigh-university-libraries/registrar/internal/storage"
)

// ErrStorage wraps any failure of the underlying store. Operations that
// return it have still updated the in-memory selection.
var ErrStorage = errors.New("storage unavailable")

// Engine holds the selected course codes for one session.
type Engine struct {
	catalog  *catalog.Catalog
	store    storage.Store
	config   Config
	selected []string
	now      func() time.Time
	logger   *slog.Logger
}

type Option func(*Engine)

// WithClock overrides the time source used for submission timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine with an empty selection. A nil store is replaced by
// an in-memory one.
func New(cat *catalog.Catalog, store storage.Store, cfg Config, opts ...Option) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		store = storage.NewMemory()
	}

	e := &Engine{
		catalog:  cat,
		store:    store,
		config:   cfg,
		selected: []string{},
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Config() Config {
	return e.config
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Selected returns a copy of the selected codes in selection order.
func (e *Engine) Selected() []string {
	return slices.Clone(e.selected)
}

func (e *Engine) IsSelected(code string) bool {
	return slices.Contains(e.selected, code)
}

// Toggle removes code if it is selected and appends it otherwise. No range
// check is applied.
func (e *Engine) Toggle(code string) {
	if idx := slices.Index(e.selected, code); idx >= 0 {
		e.selected = slices.Delete(e.selected, idx, idx+1)
		e.logger.Debug("Course removed", "code", code)
		return
	}
	if _, ok := e.catalog.Lookup(code); !ok {
		e.logger.Debug("Selected code not in catalog", "code", code)
	}
	e.selected = append(e.selected, code)
	e.logger.Debug("Course added", "code", code)
}

// Reset empties the selection without touching storage.
func (e *Engine) Reset() {
	e.selected = []string{}
}

// TotalCredits sums the credits of the selected courses. Codes missing from
// the catalog count as zero.
func (e *Engine) TotalCredits() int {
	total := 0
	for _, code := range e.selected {
		if course, ok := e.catalog.Lookup(code); ok {
			total += course.Credits
		}
	}
	return total
}

// Classify places total relative to the configured range.
func (e *Engine) Classify(total int) Status {
	return e.config.Range().Classify(total)
}

func (e *Engine) Status() Status {
	return e.Classify(e.TotalCredits())
}

func (e *Engine) CanSubmit() bool {
	return e.Status() == Valid
}

// Summary is the derived state a front end renders.
type Summary struct {
	Selected []string
	Total    int
	Status   Status
	Range    CreditRange
	Hint     string
}

func (e *Engine) Summary() Summary {
	total := e.TotalCredits()
	r := e.config.Range()
	return Summary{
		Selected: e.Selected(),
		Total:    total,
		Status:   r.Classify(total),
		Range:    r,
		Hint:     r.Hint(total),
	}
}

// ExportSelection resolves the selection to full records in selection order.
// Codes missing from the catalog are left out.
func (e *Engine) ExportSelection() []catalog.Course {
	resolved, unknown := e.catalog.Resolve(e.selected)
	if len(unknown) > 0 {
		e.logger.Debug("Unknown codes excluded from export", "codes", unknown)
	}
	return resolved
}

// SaveDraft encodes the selection and writes it under the draft key. The
// blob is returned even when the write fails; the error then wraps ErrStorage.
func (e *Engine) SaveDraft() ([]byte, error) {
	blob, err := EncodeDraft(e.selected)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}

	if err := e.store.Set(e.config.DraftKey(), blob); err != nil {
		e.logger.Warn("Unable to save draft", "key", e.config.DraftKey(), "err", err)
		return blob, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	e.logger.Info("Draft saved", "key", e.config.DraftKey(), "courses", len(e.selected))
	return blob, nil
}

// LoadDraft replaces the selection with the codes in blob. On
// ErrMalformedDraft the current selection is kept.
func (e *Engine) LoadDraft(blob []byte) error {
	codes, err := DecodeDraft(blob)
	if err != nil {
		return err
	}
	e.selected = codes
	return nil
}

// Restore loads the persisted draft, if any. A missing draft leaves the
// selection empty and is not an error.
func (e *Engine) Restore() error {
	blob, err := e.store.Get(e.config.DraftKey())
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		e.logger.Warn("Unable to read draft", "key", e.config.DraftKey(), "err", err)
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if err := e.LoadDraft(blob); err != nil {
		e.logger.Warn("Ignoring stored draft", "key", e.config.DraftKey(), "err", err)
		return err
	}

	e.logger.Debug("Draft restored", "key", e.config.DraftKey(), "courses", len(e.selected))
	return nil
}

// ClearDraft empties the selection and removes the persisted draft.
func (e *Engine) ClearDraft() error {
	e.Reset()
	if err := e.store.Delete(e.config.DraftKey()); err != nil {
		e.logger.Warn("Unable to remove draft", "key", e.config.DraftKey(), "err", err)
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	e.logger.Info("Draft cleared", "key", e.config.DraftKey())
	return nil
}
