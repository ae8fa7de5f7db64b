package tracker

import "sync"

// EventRecorder keeps the emitted events in memory.
type EventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *EventRecorder) Emit(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *EventRecorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// EventsOf returns the recorded events of the given type.
func (r *EventRecorder) EventsOf(typ EventType) (events []Event) {
	for _, e := range r.Events() {
		if e.Type == typ {
			events = append(events, e)
		}
	}
	return events
}

func (r *EventRecorder) Messages() (messages []string) {
	for _, e := range r.Events() {
		messages = append(messages, e.Message)
	}
	return messages
}

func (r *EventRecorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
