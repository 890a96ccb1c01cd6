package control

import "fmt"

// EventType is what a click event does.
type EventType uint8

const (
	EventKey         EventType = iota // press a game key
	EventLauncher                     // trigger a launcher action
	EventSwitchLayer                  // toggle a layer; Key is the layer UUID
)

var eventTypeNames = [...]string{"key", "launcher_event", "switch_layer"}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", t)
}

func (t EventType) MarshalText() ([]byte, error) {
	if int(t) >= len(eventTypeNames) {
		return nil, fmt.Errorf("control: invalid event type %d", t)
	}
	return []byte(eventTypeNames[t]), nil
}

func (t *EventType) UnmarshalText(b []byte) error {
	return unmarshalEnum(b, eventTypeNames[:], (*uint8)(t), "event type")
}

// ClickEvent binds a button to an action. Two events are the same binding
// when Type and Key match.
type ClickEvent struct {
	Type EventType `json:"type"`
	Key  string    `json:"key"`
}
