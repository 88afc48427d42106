// internal/utils/clock.go
package utils

import "time"

// Clock отдаёт показания монотонных часов в миллисекундах.
type Clock interface {
	Ticks() int64
}

// MonotonicClock считает миллисекунды с момента создания.
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Ticks возвращает время с запуска в миллисекундах.
func (c *MonotonicClock) Ticks() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock: часы, которые двигаются только вручную. Используются в тестах.
type ManualClock struct {
	now int64
}

func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Ticks() int64 {
	return c.now
}

// Advance сдвигает часы на ms миллисекунд.
func (c *ManualClock) Advance(ms int64) {
	c.now += ms
}

// Set устанавливает абсолютное показание.
func (c *ManualClock) Set(ms int64) {
	c.now = ms
}

// PausableClock останавливает время на паузе: после Resume показания
// продолжаются с того же места, поэтому перезарядки не истекают на паузе.
type PausableClock struct {
	src      Clock
	paused   bool
	pausedAt int64
	offset   int64
}

func NewPausableClock(src Clock) *PausableClock {
	return &PausableClock{src: src}
}

func (c *PausableClock) Ticks() int64 {
	if c.paused {
		return c.pausedAt - c.offset
	}
	return c.src.Ticks() - c.offset
}

func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.pausedAt = c.src.Ticks()
	c.paused = true
}

func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.offset += c.src.Ticks() - c.pausedAt
	c.paused = false
}

func (c *PausableClock) Paused() bool {
	return c.paused
}
