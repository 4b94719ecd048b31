package mascot

import "github.com/lixenwraith/cassette/events"

// PointerHandler routes pointer-move events to tracking mascots.
// Register it on the event router alongside the idle scheduler.
type PointerHandler struct {
	mascots []*Mascot
}

// NewPointerHandler creates a handler feeding the given mascots
func NewPointerHandler(mascots ...*Mascot) *PointerHandler {
	return &PointerHandler{mascots: mascots}
}

// HandleEvent implements events.Handler
func (h *PointerHandler) HandleEvent(ev events.Event) {
	p, ok := ev.Payload.(*events.PointerPayload)
	if !ok {
		return
	}
	for _, m := range h.mascots {
		m.PointerMoved(p.X, p.Y)
	}
}

// EventTypes implements events.Handler
func (h *PointerHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventPointerMoved}
}
