package dashboard

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/i474232898/weather-tickler/internal/scene"
	"github.com/i474232898/weather-tickler/internal/store"
	"github.com/i474232898/weather-tickler/internal/weather"
)

// Lookuper runs one fetch-and-derive cycle. *weather.Service satisfies it.
type Lookuper interface {
	Lookup(ctx context.Context, query string) (weather.ViewModel, error)
}

// Presenter receives the scene hook whenever a new view is applied.
type Presenter interface {
	ApplyScene(hook scene.Hook)
}

// Result describes the outcome of one search.
type Result struct {
	RequestID string            `json:"requestId"`
	Seq       uint64            `json:"seq"`
	View      weather.ViewModel `json:"view"`
	// Applied is false when a newer search was issued before this one
	// completed; the view was returned but not shown.
	Applied bool `json:"applied"`
}

// Controller owns the dashboard state and is its only writer.
type Controller struct {
	lookup    Lookuper
	state     *store.ViewState
	presenter Presenter
}

// NewController wires a controller. presenter may be nil.
func NewController(lookup Lookuper, state *store.ViewState, presenter Presenter) *Controller {
	return &Controller{
		lookup:    lookup,
		state:     state,
		presenter: presenter,
	}
}

// State exposes the state container to readers.
func (c *Controller) State() *store.ViewState {
	return c.state
}

// CurrentQuery returns the query of the latest search, or "" before the first.
func (c *Controller) CurrentQuery() string {
	return c.state.Snapshot().Query
}

// Search runs a query and applies its result if it is still the latest.
func (c *Controller) Search(ctx context.Context, query string) (Result, error) {
	reqID := uuid.NewString()
	seq := c.state.Begin(query)
	log.Printf("INFO: search %s seq=%d query=%q", reqID, seq, query)

	vm, err := c.lookup.Lookup(ctx, query)
	if err != nil {
		if c.state.Fail(seq, err) {
			log.Printf("ERROR: search %s seq=%d failed: %v", reqID, seq, err)
		} else {
			log.Printf("INFO: search %s seq=%d failed after being superseded: %v", reqID, seq, err)
		}
		return Result{RequestID: reqID, Seq: seq}, err
	}

	res := Result{RequestID: reqID, Seq: seq, View: vm}
	if !c.state.Commit(seq, vm) {
		log.Printf("INFO: search %s seq=%d superseded by seq=%d; discarding", reqID, seq, c.state.Latest())
		return res, nil
	}
	res.Applied = true

	if c.presenter != nil {
		c.presenter.ApplyScene(vm.Hook())
	}
	return res, nil
}

// HookRecorder is a Presenter that keeps the last applied hook.
type HookRecorder struct {
	mu   sync.RWMutex
	hook *scene.Hook
}

func NewHookRecorder() *HookRecorder {
	return &HookRecorder{}
}

func (r *HookRecorder) ApplyScene(hook scene.Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hook = &hook
}

// Last returns the most recent hook, if any.
func (r *HookRecorder) Last() (scene.Hook, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.hook == nil {
		return scene.Hook{}, false
	}
	return *r.hook, true
}
