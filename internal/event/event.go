// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие симуляции. Data несёт одну из структур из types.go.
type Event struct {
	Type EventType
	Data any
}

// Listener — подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher доставляет события синхронно, в порядке подписки,
// в том же потоке, что и тик симуляции.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на события нескольких типов.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

func (d *Dispatcher) SubscribeFunc(f func(Event), types ...EventType) {
	d.Subscribe(ListenerFunc(f), types...)
}

// Dispatch — отправка события всем подписчикам. Подписки, сделанные
// во время доставки, получат только следующие события.
func (d *Dispatcher) Dispatch(e Event) {
	listeners := d.listeners[e.Type]
	for _, l := range listeners {
		l.OnEvent(e)
	}
}

// Count — число подписчиков на тип события.
func (d *Dispatcher) Count(t EventType) int {
	return len(d.listeners[t])
}
