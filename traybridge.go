package traybridge

import (
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ExitTrayUnavailable is returned by Run when a tray icon was requested but
// the host platform cannot display one. The event loop is never entered.
const ExitTrayUnavailable = -1

// App is the application lifecycle shell. It owns the toolkit's
// application, tray, and menu objects and the event queue shared with
// polling hosts.
//
// Usage contract: configure with the setters, call Run exactly once on the
// thread designated as the GUI thread, then drain events with PollEvent and
// stop the loop with RequestQuit from any other goroutine. Calling Run
// twice, or any method after Cleanup, is a caller error; the shell guards
// these with sentinels rather than faulting, but the behavior is otherwise
// unspecified.
//
//export TrayApp
type App struct {
	toolkit Toolkit
	queue   *eventQueue

	mu           sync.Mutex
	appID        string
	organization string
	iconData     []byte
	iconFormat   string
	trayEnabled  bool
	pending      []pendingMenuItem
	loopStarted  bool
	runCalled    bool
	running      bool
	cleaned      bool
}

// New creates an App backed by the system tray toolkit.
//
//export TrayAppNew
func New() *App {
	return NewWithToolkit(newSystrayToolkit())
}

// NewWithToolkit creates an App driving the given toolkit. It exists so
// hosts and tests can substitute their own Toolkit implementation.
func NewWithToolkit(tk Toolkit) *App {
	return &App{
		toolkit: tk,
		queue:   &eventQueue{},
	}
}

// SetAppID sets the application identifier shown to the host platform.
// Idempotent; the last value before Run wins. Empty means unset.
func (a *App) SetAppID(id string) {
	a.mu.Lock()
	a.appID = id
	a.mu.Unlock()
}

// SetOrganizationName sets the organization name the platform's settings
// mechanism files this application under. Empty means unset.
func (a *App) SetOrganizationName(name string) {
	a.mu.Lock()
	a.organization = name
	a.mu.Unlock()
}

// SetIcon stores encoded image bytes and a format hint ("png", "jpeg",
// "ico", ...). Decoding is deferred to Run; undecodable data degrades to no
// icon and is never an error.
func (a *App) SetIcon(data []byte, format string) {
	a.mu.Lock()
	a.iconData = append([]byte(nil), data...)
	a.iconFormat = format
	a.mu.Unlock()
}

// InitTray requests that a tray icon with a context menu be created during
// Run. Must be called before Run to take effect.
func (a *App) InitTray() {
	a.mu.Lock()
	a.trayEnabled = true
	a.mu.Unlock()
}

// AddMenuItem registers a context-menu entry. Each trigger of the entry
// enqueues one EventMenuItemClicked carrying id. An empty id is replaced
// with a generated UUID. The effective id is returned.
//
// Before the loop starts, registrations are staged and replayed in order at
// loop start. Afterwards they are funneled to the toolkit goroutine and
// applied immediately.
func (a *App) AddMenuItem(text, id string) string {
	if id == "" {
		id = uuid.NewString()
	}

	a.mu.Lock()
	if !a.loopStarted {
		a.pending = append(a.pending, pendingMenuItem{text: text, id: id})
		a.mu.Unlock()
		return id
	}
	a.mu.Unlock()

	a.toolkit.Post(func() {
		a.attachMenuItem(text, id)
	})
	return id
}

// Run enters the toolkit's blocking event loop and returns its exit code.
// If a tray icon was requested and the platform reports no tray support,
// Run returns ExitTrayUnavailable without entering the loop.
func (a *App) Run(args []string) int {
	a.mu.Lock()
	if a.runCalled || a.cleaned {
		a.mu.Unlock()
		logrus.WithFields(logrus.Fields{
			"function": "Run",
		}).Error("Run called on an already-run or cleaned-up App")
		return ExitTrayUnavailable
	}
	a.runCalled = true
	appID, organization := a.appID, a.organization
	iconData, iconFormat := a.iconData, a.iconFormat
	trayEnabled := a.trayEnabled
	a.mu.Unlock()

	suppressToolkitWarnings()

	a.toolkit.ApplyMetadata(appID, organization)
	icon := decodeIcon(iconData, iconFormat)

	if trayEnabled && !a.toolkit.TrayAvailable() {
		logrus.WithFields(logrus.Fields{
			"function": "Run",
		}).Error("Tray requested but the platform has no tray support")
		return ExitTrayUnavailable
	}

	a.mu.Lock()
	a.running = true
	a.mu.Unlock()

	code := a.toolkit.Run(args, func() {
		if !trayEnabled {
			a.markLoopStarted()
			return
		}
		a.toolkit.InitTray(icon, a.handleActivation)
		for _, item := range a.markLoopStarted() {
			a.attachMenuItem(item.text, item.id)
		}
	})

	a.mu.Lock()
	a.running = false
	a.mu.Unlock()
	return code
}

// markLoopStarted flips the staging switch and takes the staged items in
// one critical section, so a concurrent AddMenuItem either lands in the
// returned batch or goes through the post-loop path. Never both, never
// neither.
func (a *App) markLoopStarted() []pendingMenuItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loopStarted = true
	items := a.pending
	a.pending = nil
	return items
}

// PollEvent removes and returns the oldest queued event, or an Event with
// Type EventNone when the queue is empty. Never blocks; safe to call from
// any goroutine while the loop is enqueueing.
//
//export TrayAppPollEvent
func (a *App) PollEvent() Event {
	return a.queue.pop()
}

// RequestQuit asks the event loop to terminate. Safe from any goroutine:
// the actual quit is posted to the toolkit goroutine rather than executed
// in place. Before Run has started the loop it is a no-op.
//
//export TrayAppRequestQuit
func (a *App) RequestQuit() {
	a.mu.Lock()
	running := a.running
	a.mu.Unlock()
	if !running {
		logrus.WithFields(logrus.Fields{
			"function": "RequestQuit",
		}).Debug("Quit requested before the loop started, nothing to quit")
		return
	}
	a.toolkit.Post(func() {
		a.toolkit.Quit()
	})
}

// Cleanup releases the tray, menu, and application objects. Safe under
// partial initialization (InitTray never called) and safe to call twice.
//
//export TrayAppCleanup
func (a *App) Cleanup() {
	a.mu.Lock()
	if a.cleaned {
		a.mu.Unlock()
		return
	}
	a.cleaned = true
	a.pending = nil
	a.mu.Unlock()

	a.toolkit.Teardown()
}

// handleActivation maps tray activation reasons onto queued events. Context
// activations are consumed by the toolkit's native menu display and produce
// nothing; unknown reasons are ignored.
func (a *App) handleActivation(reason ActivationReason) {
	switch reason {
	case ActivationTrigger:
		a.queue.push(Event{Type: EventTrayClicked})
	case ActivationDoubleClick:
		a.queue.push(Event{Type: EventTrayDoubleClicked})
	}
}

// attachMenuItem wires one menu entry to the event queue. Runs in toolkit
// context. The trigger closure captures its own copy of id, so every
// drained event is independent of the registration call.
func (a *App) attachMenuItem(text, id string) {
	a.toolkit.AddMenuItem(text, id, func() {
		a.queue.push(Event{Type: EventMenuItemClicked, MenuID: id})
	})
}

// suppressToolkitWarnings quiets the bridge's own logging unless debugging
// was requested, the analogue of the original toolkit warning filters.
func suppressToolkitWarnings() {
	if os.Getenv("TRAYBRIDGE_DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.ErrorLevel)
}
