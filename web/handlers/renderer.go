package handlers

import (
	"html/template"
	"net/http"

	ds "github.com/starfederation/datastar-go/datastar"
	"launchdash/events"
)

type Renderer interface {
	Templates() *template.Template
	// Handlers are the POST endpoints the page sends signals to.
	Handlers() map[string]http.HandlerFunc
	Data(clientID string) map[string]interface{}
	Subscribe(clientID string) (<-chan *events.Event, func())
	PatchOnEvent(sse *ds.ServerSentEventGenerator, event *events.Event) error
}
