// Package chrome keeps the presentation state of page furniture: the page
// loader, dropdown menus and password visibility toggles.
package chrome

import (
	"sync"
	"time"
)

const (
	LoaderID        = "page-loader"
	HideClass       = "hide"
	LoaderReadyWait = 300 * time.Millisecond
)

// Loader is the full-page loading overlay. Hiding is idempotent.
type Loader struct {
	mu     sync.Mutex
	hidden bool
	timer  *time.Timer
}

func NewLoader() *Loader {
	return &Loader{}
}

// Ready schedules the loader to hide after LoaderReadyWait.
func (l *Loader) Ready() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.hidden || l.timer != nil {
		return
	}
	l.timer = time.AfterFunc(LoaderReadyWait, l.hide)
}

// Stop cancels a pending hide. The loader of a page that was navigated away
// from is stopped so its timer does not outlive it.
func (l *Loader) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer != nil {
		l.timer.Stop()
	}
}

// Loaded hides the loader right away.
func (l *Loader) Loaded() {
	l.hide()
}

func (l *Loader) hide() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hidden = true
}

func (l *Loader) Hidden() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hidden
}

// Classes returns the loader's CSS classes.
func (l *Loader) Classes() []string {
	if l.Hidden() {
		return []string{HideClass}
	}
	return []string{}
}
