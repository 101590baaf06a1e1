package audio

import (
	"github.com/lixenwraith/light-blaster/event"
)

// Player is the playback surface the handler drives
type Player interface {
	Play(s event.SoundType) bool
}

// Handler routes sound requests raised during a tick to a Player
type Handler struct {
	player Player
}

func NewHandler(p Player) *Handler {
	return &Handler{player: p}
}

func (h *Handler) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

func (h *Handler) HandleEvent(ev event.GameEvent) {
	if h.player == nil {
		return
	}
	if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		h.player.Play(p.Sound)
	}
}
