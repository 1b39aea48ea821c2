package traybridge

import (
	"os"
	"runtime"
	"sync"

	"github.com/getlantern/systray"
	"github.com/sirupsen/logrus"
)

// systrayToolkit is the production Toolkit backed by
// github.com/getlantern/systray. systray locks the Run caller to its OS
// thread; all post-run mutations are funneled through a dispatch channel
// drained by a single goroutine owned by the loop, which keeps menu
// construction and quit requests serialized in one context.
//
// systray consumes every tray activation natively to open the context menu
// (the ActivationContext reason in the bridge's policy), so this backend
// surfaces no tray click events; the activation handler is kept for
// platforms and forks that deliver primary activations.
type systrayToolkit struct {
	dispatch chan func()
	done     chan struct{}
	quitOnce sync.Once

	appID        string
	organization string
	onActivate   func(ActivationReason)
}

func newSystrayToolkit() *systrayToolkit {
	return &systrayToolkit{
		dispatch: make(chan func(), 16),
		done:     make(chan struct{}),
	}
}

func (t *systrayToolkit) ApplyMetadata(appID, organization string) {
	t.appID = appID
	t.organization = organization
}

// TrayAvailable probes for a usable status area. On Linux a tray needs a
// running display server; elsewhere the platform shell always provides one.
func (t *systrayToolkit) TrayAvailable() bool {
	if runtime.GOOS == "linux" {
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}

func (t *systrayToolkit) Run(args []string, start func()) int {
	logrus.WithFields(logrus.Fields{
		"function": "Run",
		"args":     len(args),
	}).Debug("Entering systray event loop")

	systray.Run(func() {
		go t.drainDispatch()
		start()
	}, func() {
		t.quitOnce.Do(func() { close(t.done) })
	})
	return 0
}

// drainDispatch services cross-thread posts for the lifetime of the loop.
func (t *systrayToolkit) drainDispatch() {
	for {
		select {
		case fn := <-t.dispatch:
			fn()
		case <-t.done:
			return
		}
	}
}

func (t *systrayToolkit) InitTray(icon []byte, onActivate func(ActivationReason)) {
	t.onActivate = onActivate
	if len(icon) > 0 {
		systray.SetIcon(icon)
	}
	if t.appID != "" {
		systray.SetTitle(t.appID)
		tooltip := t.appID
		if t.organization != "" {
			tooltip = t.organization + " " + t.appID
		}
		systray.SetTooltip(tooltip)
	}
}

func (t *systrayToolkit) AddMenuItem(text, id string, onTrigger func()) {
	item := systray.AddMenuItem(text, text)
	logrus.WithFields(logrus.Fields{
		"function": "AddMenuItem",
		"id":       id,
	}).Debug("Tray menu item attached")

	// ClickedCh fires on its own goroutine; funnel triggers back into the
	// dispatch context so handlers observe the same serialization as every
	// other toolkit mutation.
	go func() {
		for {
			select {
			case _, ok := <-item.ClickedCh:
				if !ok {
					return
				}
				t.Post(onTrigger)
			case <-t.done:
				return
			}
		}
	}()
}

func (t *systrayToolkit) Post(fn func()) {
	select {
	case t.dispatch <- fn:
	case <-t.done:
		// Loop already ended; the command has nowhere to run.
	}
}

func (t *systrayToolkit) Quit() {
	systray.Quit()
}

func (t *systrayToolkit) Teardown() {
	t.quitOnce.Do(func() { close(t.done) })
	t.onActivate = nil
}
