package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies a sound effect.
type Sound int

const (
	SoundNone Sound = iota
	SoundJump
	SoundBonus
	SoundMilestone
	SoundHit
	SoundGameOver
)

// SoundFor maps a simulation event to its sound effect.
func SoundFor(e core.Event) Sound {
	switch e.Type {
	case core.EventJumpStarted:
		return SoundJump
	case core.EventBonusCollected:
		return SoundBonus
	case core.EventMilestone:
		return SoundMilestone
	case core.EventObstacleHit:
		return SoundHit
	case core.EventGameOver:
		return SoundGameOver
	default:
		return SoundNone
	}
}

// Streamer builds a fresh streamer for the sound at the given volume.
func Streamer(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundJump:
		st = jumpSound(rate)
	case SoundBonus:
		st = bonusSound(rate)
	case SoundMilestone:
		st = milestoneSound(rate)
	case SoundHit:
		st = hitSound(rate)
	case SoundGameOver:
		st = gameOverSound(rate)
	default:
		return nil
	}
	return newVolume(st, volume)
}

// Manager plays sounds for events on the system speaker.
// A Manager that failed to initialize, or was created disabled, ignores events.
type Manager struct {
	mu      sync.Mutex
	enabled bool
	ready   bool
	volume  float64
	logger  *log.Logger
}

// NewManager creates a manager. Nothing is opened until Init.
func NewManager(enabled bool, volume float64, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{enabled: enabled, volume: volume, logger: logger}
}

// Init opens the speaker. On failure audio is disabled for the rest of
// the session and the error is returned for the caller to report.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || m.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		m.enabled = false
		m.logger.Warn("audio disabled", "err", err)
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	m.ready = true
	return nil
}

// Enabled reports whether sounds will actually play.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled && m.ready
}

// HandleEvent plays the sound for e, if any. It never blocks on playback.
func (m *Manager) HandleEvent(e core.Event) {
	s := SoundFor(e)
	if s == SoundNone {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled || !m.ready {
		return
	}
	speaker.Play(Streamer(s, sampleRate, m.volume))
}

// HandleEvents plays the sounds for a batch of events.
func (m *Manager) HandleEvents(events []core.Event) {
	for _, e := range events {
		m.HandleEvent(e)
	}
}

// Close stops playback and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.ready = false
}
