package events

import (
	"slices"
	"sync"

	"launchdash/models"
)

// Handler computes the chart for an output from the current widget values. Handlers must not
// keep or modify the selection.
type Handler func(sel models.FilterSelection) *models.ChartSpec

type binding struct {
	output  string
	inputs  []string
	handler Handler
}

// Dispatcher holds the current widget state and re-runs the handlers watching whichever inputs
// change, publishing their charts on the hub.
type Dispatcher struct {
	mu        sync.Mutex
	selection models.FilterSelection
	bindings  []binding
	hub       *EventHub
}

func NewDispatcher(initial models.FilterSelection, hub *EventHub) *Dispatcher {
	return &Dispatcher{
		selection: initial,
		hub:       hub,
	}
}

// Bind registers handler as the producer of output, re-run whenever one of inputs changes.
func (d *Dispatcher) Bind(output string, handler Handler, inputs ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bindings = append(d.bindings, binding{output, inputs, handler})
}

func (d *Dispatcher) Selection() models.FilterSelection {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selection
}

func (d *Dispatcher) Hub() *EventHub {
	return d.hub
}

// Update stores sel as the current widget state and runs every handler watching an input that
// changed. It returns the outputs that were re-rendered, in binding order.
func (d *Dispatcher) Update(sel models.FilterSelection) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	changed := d.selection.ChangedInputs(sel)
	d.selection = sel
	if len(changed) == 0 {
		return nil
	}

	var outputs []string
	for _, b := range d.bindings {
		if !watches(b, changed) {
			continue
		}
		d.run(b)
		outputs = append(outputs, b.output)
	}
	return outputs
}

// Refresh runs every handler against the current selection.
func (d *Dispatcher) Refresh() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	outputs := make([]string, 0, len(d.bindings))
	for _, b := range d.bindings {
		d.run(b)
		outputs = append(outputs, b.output)
	}
	return outputs
}

func (d *Dispatcher) run(b binding) {
	spec := b.handler(d.selection)
	if d.hub != nil {
		d.hub.Broadcast(&Event{Output: b.output, Spec: spec})
	}
}

func watches(b binding, changed []string) bool {
	for _, input := range changed {
		if slices.Contains(b.inputs, input) {
			return true
		}
	}
	return false
}
