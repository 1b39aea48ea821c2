package traybridge

import (
	"sync"
)

// ---------------------------------------------------------------------------
// fakeToolkit is a scripted Toolkit for tests: it runs the event loop on the
// Run caller, services posted commands like the production dispatch
// goroutine, and lets tests simulate tray activations and menu triggers.
// ---------------------------------------------------------------------------

type fakeMenuItem struct {
	text      string
	id        string
	onTrigger func()
}

type fakeToolkit struct {
	mu           sync.Mutex
	available    bool
	appID        string
	organization string
	trayInited   bool
	icon         []byte
	onActivate   func(ActivationReason)
	items        []fakeMenuItem
	teardowns    int

	dispatch chan func()
	quit     chan struct{}
	quitOnce sync.Once
}

func newFakeToolkit() *fakeToolkit {
	return &fakeToolkit{
		available: true,
		dispatch:  make(chan func(), 64),
		quit:      make(chan struct{}),
	}
}

func (f *fakeToolkit) ApplyMetadata(appID, organization string) {
	f.mu.Lock()
	f.appID = appID
	f.organization = organization
	f.mu.Unlock()
}

func (f *fakeToolkit) TrayAvailable() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.available
}

func (f *fakeToolkit) Run(args []string, start func()) int {
	start()
	for {
		select {
		case fn := <-f.dispatch:
			fn()
		case <-f.quit:
			return 0
		}
	}
}

func (f *fakeToolkit) InitTray(icon []byte, onActivate func(ActivationReason)) {
	f.mu.Lock()
	f.trayInited = true
	f.icon = icon
	f.onActivate = onActivate
	f.mu.Unlock()
}

func (f *fakeToolkit) AddMenuItem(text, id string, onTrigger func()) {
	f.mu.Lock()
	f.items = append(f.items, fakeMenuItem{text: text, id: id, onTrigger: onTrigger})
	f.mu.Unlock()
}

func (f *fakeToolkit) Post(fn func()) {
	select {
	case f.dispatch <- fn:
	case <-f.quit:
	}
}

func (f *fakeToolkit) Quit() {
	f.quitOnce.Do(func() { close(f.quit) })
}

func (f *fakeToolkit) Teardown() {
	f.mu.Lock()
	f.teardowns++
	f.mu.Unlock()
}

// activate simulates a tray activation delivered in toolkit context.
func (f *fakeToolkit) activate(reason ActivationReason) {
	f.mu.Lock()
	handler := f.onActivate
	f.mu.Unlock()
	if handler != nil {
		f.Post(func() { handler(reason) })
	}
}

// triggerItem simulates the user selecting the menu entry registered with
// id. Reports whether such an entry exists.
func (f *fakeToolkit) triggerItem(id string) bool {
	f.mu.Lock()
	var onTrigger func()
	for _, item := range f.items {
		if item.id == id {
			onTrigger = item.onTrigger
			break
		}
	}
	f.mu.Unlock()

	if onTrigger == nil {
		return false
	}
	f.Post(onTrigger)
	return true
}

func (f *fakeToolkit) snapshotItems() []fakeMenuItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeMenuItem(nil), f.items...)
}

func (f *fakeToolkit) itemCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func (f *fakeToolkit) teardownCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.teardowns
}

func (f *fakeToolkit) trayInitialized() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.trayInited
}

func (f *fakeToolkit) trayIcon() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.icon
}

func (f *fakeToolkit) metadata() (string, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.appID, f.organization
}
