package selection

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/lehigh-university-libraries/registrar/internal/catalog"
	"github.com/lehigh-university-libraries/registrar/internal/storage"
)

var fixedTime = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

// failingStore rejects every operation.
type failingStore struct{}

var errDiskFull = errors.New("quota exceeded")

func (failingStore) Get(string) ([]byte, error) { return nil, errDiskFull }
func (failingStore) Set(string, []byte) error   { return errDiskFull }
func (failingStore) Delete(string) error        { return errDiskFull }
func (failingStore) Close() error               { return nil }

func newTestEngine(t *testing.T, store storage.Store) *Engine {
	t.Helper()
	e, err := New(catalog.Default(), store, DefaultConfig(),
		WithClock(func() time.Time { return fixedTime }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e
}

func selectAll(e *Engine, codes ...string) {
	for _, code := range codes {
		e.Toggle(code)
	}
}

func TestNewValidatesInputs(t *testing.T) {
	if _, err := New(nil, nil, DefaultConfig()); err == nil {
		t.Error("Expected error for nil catalog")
	}
	if _, err := New(catalog.Default(), nil, Config{MinCredits: 30, MaxCredits: 10, KeyPrefix: "k"}); err == nil {
		t.Error("Expected error for inverted range")
	}
	e, err := New(catalog.Default(), nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Expected nil store to be accepted, got %v", err)
	}
	if len(e.Selected()) != 0 {
		t.Errorf("Expected empty selection, got %v", e.Selected())
	}
}

func TestToggle(t *testing.T) {
	e := newTestEngine(t, nil)

	selectAll(e, "CS101", "AI502", "IS701")
	if !reflect.DeepEqual(e.Selected(), []string{"CS101", "AI502", "IS701"}) {
		t.Fatalf("Expected append order, got %v", e.Selected())
	}
	if e.TotalCredits() != 8 {
		t.Errorf("Expected 8 credits, got %d", e.TotalCredits())
	}

	e.Toggle("AI502")
	if !reflect.DeepEqual(e.Selected(), []string{"CS101", "IS701"}) {
		t.Errorf("Expected AI502 removed, got %v", e.Selected())
	}
	if e.IsSelected("AI502") {
		t.Error("Expected AI502 not selected")
	}

	e.Toggle("AI502")
	if !reflect.DeepEqual(e.Selected(), []string{"CS101", "IS701", "AI502"}) {
		t.Errorf("Expected AI502 re-appended at the end, got %v", e.Selected())
	}
}

func TestToggleTwiceIsNoOp(t *testing.T) {
	e := newTestEngine(t, nil)
	selectAll(e, "CS101", "CS102")
	before := e.TotalCredits()

	e.Toggle("SEC404")
	e.Toggle("SEC404")

	if e.TotalCredits() != before {
		t.Errorf("Expected total %d, got %d", before, e.TotalCredits())
	}
	if !reflect.DeepEqual(e.Selected(), []string{"CS101", "CS102"}) {
		t.Errorf("Unexpected selection %v", e.Selected())
	}
}

func TestToggleAllowsOutOfRange(t *testing.T) {
	e := newTestEngine(t, nil)
	for _, course := range e.Catalog().Courses() {
		e.Toggle(course.Code)
	}
	if e.Status() != Over {
		t.Errorf("Expected Over, got %s", e.Status())
	}
	if len(e.Selected()) != e.Catalog().Len() {
		t.Errorf("Expected every course selected, got %d", len(e.Selected()))
	}
}

func TestTotalCreditsMatchesSelectedSet(t *testing.T) {
	e := newTestEngine(t, nil)
	courses := e.Catalog().Courses()
	rng := rand.New(rand.NewSource(42))
	selected := make(map[string]int)

	for i := 0; i < 500; i++ {
		course := courses[rng.Intn(len(courses))]
		e.Toggle(course.Code)
		if _, ok := selected[course.Code]; ok {
			delete(selected, course.Code)
		} else {
			selected[course.Code] = course.Credits
		}

		expected := 0
		for _, credits := range selected {
			expected += credits
		}
		if got := e.TotalCredits(); got != expected {
			t.Fatalf("Step %d: expected %d credits, got %d", i, expected, got)
		}
		if len(e.Selected()) != len(selected) {
			t.Fatalf("Step %d: expected %d codes, got %d", i, len(selected), len(e.Selected()))
		}
	}
}

func TestUnknownCodesCountAsZero(t *testing.T) {
	e := newTestEngine(t, nil)
	selectAll(e, "CS101", "GONE99")

	if e.TotalCredits() != 3 {
		t.Errorf("Expected 3 credits, got %d", e.TotalCredits())
	}

	exported := e.ExportSelection()
	if len(exported) != 1 || exported[0].Code != "CS101" {
		t.Errorf("Expected only CS101 exported, got %+v", exported)
	}
}

func TestExportSelectionKeepsOrder(t *testing.T) {
	e := newTestEngine(t, nil)
	selectAll(e, "IS704", "CS101", "AI503")

	exported := e.ExportSelection()
	expected := []catalog.Course{
		{Code: "IS704", Title: "Internship / Project Lab", Credits: 4, Domain: "Interdisciplinary"},
		{Code: "CS101", Title: "Programming I: C/C++", Credits: 3, Domain: "Core"},
		{Code: "AI503", Title: "Deep Learning", Credits: 4, Domain: "AI"},
	}
	if !reflect.DeepEqual(exported, expected) {
		t.Errorf("Expected %+v, got %+v", expected, exported)
	}
	if len(e.Selected()) != 3 {
		t.Error("Expected export not to mutate selection")
	}
}

func TestSummary(t *testing.T) {
	e := newTestEngine(t, nil)
	selectAll(e, "CS102", "CS105")

	s := e.Summary()
	if s.Total != 8 || s.Status != Under || s.Hint != "Under minimum: add 8 credit(s)." {
		t.Errorf("Unexpected summary %+v", s)
	}
	if s.Range != (CreditRange{Min: 16, Max: 27}) {
		t.Errorf("Unexpected range %+v", s.Range)
	}
	if e.CanSubmit() {
		t.Error("Expected CanSubmit false")
	}
}

func TestSaveAndRestoreDraft(t *testing.T) {
	store := storage.NewMemory()
	e := newTestEngine(t, store)
	selectAll(e, "SE201", "HM601", "DS504")

	blob, err := e.SaveDraft()
	if err != nil {
		t.Fatalf("SaveDraft failed: %v", err)
	}
	if string(blob) != `["SE201","HM601","DS504"]` {
		t.Errorf("Unexpected blob %s", blob)
	}

	stored, err := store.Get("course_reg_draft_v1")
	if err != nil || string(stored) != string(blob) {
		t.Fatalf("Expected blob under draft key, got %s (%v)", stored, err)
	}

	restored := newTestEngine(t, store)
	if err := restored.Restore(); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if !reflect.DeepEqual(restored.Selected(), e.Selected()) {
		t.Errorf("Expected %v, got %v", e.Selected(), restored.Selected())
	}
}

func TestLoadDraftRoundTrip(t *testing.T) {
	e := newTestEngine(t, nil)
	selectAll(e, "TM303", "CS101", "SYS402", "GONE1")
	blob, err := e.SaveDraft()
	if err != nil {
		t.Fatal(err)
	}

	other := newTestEngine(t, nil)
	if err := other.LoadDraft(blob); err != nil {
		t.Fatalf("LoadDraft failed: %v", err)
	}
	if !reflect.DeepEqual(other.Selected(), e.Selected()) {
		t.Errorf("Expected %v, got %v", e.Selected(), other.Selected())
	}
}

func TestLoadDraftWithNullElementKeepsSelection(t *testing.T) {
	e := newTestEngine(t, nil)
	selectAll(e, "CS101")

	if err := e.LoadDraft([]byte(`["CS102", null]`)); !errors.Is(err, ErrMalformedDraft) {
		t.Fatalf("Expected ErrMalformedDraft, got %v", err)
	}
	if !reflect.DeepEqual(e.Selected(), []string{"CS101"}) {
		t.Errorf("Expected selection unchanged, got %v", e.Selected())
	}
}

func TestLoadMalformedDraftKeepsSelection(t *testing.T) {
	e := newTestEngine(t, nil)
	selectAll(e, "CS101", "CS102")

	err := e.LoadDraft([]byte(`{"not": "an array"}`))
	if !errors.Is(err, ErrMalformedDraft) {
		t.Fatalf("Expected ErrMalformedDraft, got %v", err)
	}
	if !reflect.DeepEqual(e.Selected(), []string{"CS101", "CS102"}) {
		t.Errorf("Expected selection unchanged, got %v", e.Selected())
	}
}

func TestRestore(t *testing.T) {
	t.Run("missing draft", func(t *testing.T) {
		e := newTestEngine(t, storage.NewMemory())
		if err := e.Restore(); err != nil {
			t.Errorf("Expected nil, got %v", err)
		}
		if len(e.Selected()) != 0 {
			t.Errorf("Expected empty selection, got %v", e.Selected())
		}
	})

	t.Run("malformed draft", func(t *testing.T) {
		store := storage.NewMemory()
		_ = store.Set("course_reg_draft_v1", []byte("not json"))
		e := newTestEngine(t, store)
		e.Toggle("CS101")

		if err := e.Restore(); !errors.Is(err, ErrMalformedDraft) {
			t.Errorf("Expected ErrMalformedDraft, got %v", err)
		}
		if !reflect.DeepEqual(e.Selected(), []string{"CS101"}) {
			t.Errorf("Expected selection unchanged, got %v", e.Selected())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		e := newTestEngine(t, failingStore{})
		err := e.Restore()
		if !errors.Is(err, ErrStorage) || !errors.Is(err, errDiskFull) {
			t.Errorf("Expected ErrStorage wrapping the store error, got %v", err)
		}
	})
}

func TestClearDraft(t *testing.T) {
	store := storage.NewMemory()
	e := newTestEngine(t, store)
	selectAll(e, "CS101", "CS102")
	if _, err := e.SaveDraft(); err != nil {
		t.Fatal(err)
	}

	if err := e.ClearDraft(); err != nil {
		t.Fatalf("ClearDraft failed: %v", err)
	}
	if len(e.Selected()) != 0 {
		t.Errorf("Expected empty selection, got %v", e.Selected())
	}
	if _, err := store.Get("course_reg_draft_v1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected draft removed, got %v", err)
	}
}

func TestStorageFailuresDegrade(t *testing.T) {
	e := newTestEngine(t, failingStore{})
	selectAll(e, "CS101")

	blob, err := e.SaveDraft()
	if !errors.Is(err, ErrStorage) {
		t.Errorf("Expected ErrStorage from SaveDraft, got %v", err)
	}
	if string(blob) != `["CS101"]` {
		t.Errorf("Expected blob to be returned anyway, got %s", blob)
	}

	if !errors.Is(err, errDiskFull) {
		t.Errorf("Expected store error to be kept in the chain, got %v", err)
	}

	err = e.ClearDraft()
	if !errors.Is(err, ErrStorage) || !errors.Is(err, errDiskFull) {
		t.Errorf("Expected ErrStorage wrapping the store error from ClearDraft, got %v", err)
	}
	if len(e.Selected()) != 0 {
		t.Errorf("Expected selection cleared despite storage failure, got %v", e.Selected())
	}
}
