// Package game owns the wave progression state machine: it sequences
// capture → analyze → judge → animation → advance-or-end, keeps score and the
// per-wave countdown, and exposes the whole thing to a presentation layer as
// snapshot updates plus a one-shot navigation signal.
package game

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/tatianab/snapwave/internal/analyzer"
	"github.com/tatianab/snapwave/internal/camera"
	"github.com/tatianab/snapwave/internal/judge"
	"github.com/tatianab/snapwave/internal/models"
)

// Snapshot is the complete presentation-facing state at one point in time.
type Snapshot struct {
	ScoreText         string
	TimerText         string
	HintText          string
	CameraFaceText    string
	WaveName          string
	CaptureEnabled    bool
	PreviewVisible    bool
	AwaitingAnimation bool
	Ended             bool
	Preview           *camera.PreviewInfo
}

// Session runs one game: a fixed wave set played until cleared, failed, or
// timed out. All state lives behind one mutex; camera and analyzer work runs
// on goroutines and re-acquires the mutex before committing anything, so
// there is a single logical mutation path.
type Session struct {
	camera   camera.Service
	saver    camera.Saver
	analyzer analyzer.Analyzer
	waveSet  *models.WaveSet

	ctx    context.Context
	cancel context.CancelFunc

	updates  *broadcaster
	navigate chan string

	tick time.Duration

	mu             sync.Mutex
	waveIndex      int
	requires       []models.EnemyRequirement
	timeLeft       float64
	score          int
	busy           bool
	ended          bool
	pending        *bool
	useFront       bool
	previewVisible bool
	previewInfo    *camera.PreviewInfo
	timerStop      chan struct{}
}

// Option tweaks session construction.
type Option func(*Session)

// WithTickInterval overrides the countdown resolution. Mostly for tests.
func WithTickInterval(d time.Duration) Option {
	return func(s *Session) { s.tick = d }
}

// New starts a session on the first wave. The countdown is already running
// when New returns.
func New(cam camera.Service, saver camera.Saver, an analyzer.Analyzer, ws *models.WaveSet, opts ...Option) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		camera:   cam,
		saver:    saver,
		analyzer: an,
		waveSet:  ws,
		ctx:      ctx,
		cancel:   cancel,
		updates:  newBroadcaster(),
		navigate: make(chan string, 1),
		tick:     100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	s.waveIndex = -1
	s.nextWaveLocked()
	s.publishLocked()
	s.mu.Unlock()
	return s
}

// Subscribe returns a channel of state snapshots and a cancel func. The
// current snapshot is delivered first.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	return s.updates.subscribeFirst(snap)
}

// Snapshot returns the current presentation state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Navigate yields the target scene id exactly once, when the game ends. The
// channel is closed after that single emission.
func (s *Session) Navigate() <-chan string {
	return s.navigate
}

// StartPreview asks the camera for a live preview. A failure is logged and
// leaves the state unchanged so the player can retry.
func (s *Session) StartPreview() {
	s.mu.Lock()
	if s.ended || s.camera.IsPreviewRunning() {
		s.mu.Unlock()
		return
	}
	front := s.useFront
	s.mu.Unlock()

	go func() {
		info, err := s.camera.StartPreview(s.ctx, front)
		if err != nil {
			log.Printf("start preview: %v", err)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.ended {
			return
		}
		s.previewVisible = true
		s.previewInfo = info
		s.publishLocked()
	}()
}

// Capture takes one photo from the running preview and judges it. Concurrent
// requests are ignored while one is in flight; the judged outcome parks in
// pending until AnimationFinished commits it.
func (s *Session) Capture() {
	s.mu.Lock()
	if s.ended || s.busy || !s.camera.IsPreviewRunning() {
		s.mu.Unlock()
		return
	}
	s.busy = true
	s.previewVisible = false
	requires := s.requires
	s.publishLocked()
	s.mu.Unlock()

	go s.runCapture(requires)
}

func (s *Session) runCapture(requires []models.EnemyRequirement) {
	win := false
	frame, err := s.camera.CaptureUpright(s.ctx, true)
	if err == nil {
		if s.saver != nil {
			s.saver.Save(frame.JPEG)
		}
		var analysis *models.PhotoAnalysis
		analysis, err = s.analyzer.Analyze(s.ctx, frame.JPEG)
		if err == nil {
			win, _ = judge.Check(analysis, requires)
		}
	}
	if err != nil {
		// Fail closed: an erroring photo never grants a win.
		log.Printf("capture pipeline: %v (judged as loss)", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		// The game ended while the photo was in flight; drop the result.
		return
	}
	outcome := win
	s.pending = &outcome
	s.publishLocked()
}

// AnimationFinished commits the pending judged outcome once the presentation
// layer's result animation has played. No-op when nothing is pending.
func (s *Session) AnimationFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return
	}
	win := *s.pending
	s.pending = nil
	s.busy = false
	if s.ended {
		// The outcome is discarded, but subscribers still need to see the
		// pending/busy flags clear.
		s.publishLocked()
		return
	}
	if win {
		s.onWaveClearedLocked()
	} else {
		s.endGameLocked(s.waveSet.GameOverScene)
	}
	s.publishLocked()
}

// ToggleCamera flips between front and back facing. A running preview is
// stopped and restarted with the new facing.
func (s *Session) ToggleCamera() {
	s.mu.Lock()
	s.useFront = !s.useFront
	restart := s.camera.IsPreviewRunning()
	if restart {
		s.previewVisible = false
	}
	s.publishLocked()
	s.mu.Unlock()

	if restart {
		s.camera.StopPreview()
		s.StartPreview()
	}
}

// Close tears the session down: cancels in-flight work, stops the countdown
// and the preview, and closes the update stream. Safe to call more than once.
func (s *Session) Close() {
	s.cancel()
	s.mu.Lock()
	s.stopTimerLocked()
	s.mu.Unlock()
	s.camera.StopPreview()
	s.updates.close()
}

func (s *Session) nextWaveLocked() {
	if s.ended {
		return
	}
	s.stopTimerLocked()

	s.waveIndex++
	if s.waveIndex >= len(s.waveSet.Waves) {
		s.endGameLocked(s.waveSet.GameClearScene)
		return
	}

	wave := s.waveSet.Waves[s.waveIndex]
	s.requires = wave.Enemies
	s.timeLeft = math.Max(1, wave.TimeLimitSec)
	s.startTimerLocked()
}

func (s *Session) onWaveClearedLocked() {
	if s.waveIndex >= 0 && s.waveIndex < len(s.waveSet.Waves) {
		s.score += s.waveSet.Waves[s.waveIndex].TotalEnemyCount()
	}
	s.nextWaveLocked()
}

// endGameLocked is idempotent: the ended latch guarantees a single
// navigation emission no matter how many terminal transitions race.
func (s *Session) endGameLocked(scene string) {
	if s.ended {
		return
	}
	s.ended = true
	s.stopTimerLocked()
	s.navigate <- scene
	close(s.navigate)
	s.publishLocked()
}

func (s *Session) startTimerLocked() {
	stop := make(chan struct{})
	s.timerStop = stop
	go s.runTimer(stop)
}

func (s *Session) stopTimerLocked() {
	if s.timerStop != nil {
		close(s.timerStop)
		s.timerStop = nil
	}
}

// runTimer decrements the wave countdown by real elapsed time until the wave
// changes, the game ends, or the clock hits zero. Each wave gets its own
// timer goroutine; the stop handle identity check drops stale ticks.
func (s *Session) runTimer(stop chan struct{}) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.mu.Lock()
			if s.ended || s.timerStop != stop {
				s.mu.Unlock()
				return
			}
			s.timeLeft = math.Max(0, s.timeLeft-dt)
			if s.timeLeft <= 0 {
				s.endGameLocked(s.waveSet.GameOverScene)
				s.mu.Unlock()
				return
			}
			s.publishLocked()
			s.mu.Unlock()
		}
	}
}

func (s *Session) snapshotLocked() Snapshot {
	face := "Back"
	if s.useFront {
		face = "Front"
	}
	waveName := ""
	if s.waveIndex >= 0 && s.waveIndex < len(s.waveSet.Waves) {
		waveName = s.waveSet.Waves[s.waveIndex].Name
	}
	return Snapshot{
		ScoreText:         fmt.Sprintf("Score: %d", s.score),
		TimerText:         fmt.Sprintf("Time: %d", int(math.Ceil(math.Max(0, s.timeLeft)))),
		HintText:          models.HintText(s.requires),
		CameraFaceText:    face,
		WaveName:          waveName,
		CaptureEnabled:    !s.busy && !s.ended,
		PreviewVisible:    s.previewVisible,
		AwaitingAnimation: s.pending != nil,
		Ended:             s.ended,
		Preview:           s.previewInfo,
	}
}

func (s *Session) publishLocked() {
	s.updates.publish(s.snapshotLocked())
}
