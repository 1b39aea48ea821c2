package traybridge

// Toolkit abstracts the GUI toolkit the bridge drives. The production
// implementation wraps github.com/getlantern/systray; tests substitute a
// fake that simulates tray activations and menu triggers.
//
// Threading contract: Run blocks its caller and owns the toolkit context.
// InitTray, AddMenuItem, and Quit must execute in that context — either
// inside the start callback passed to Run, or via Post. ApplyMetadata and
// TrayAvailable are called before the loop starts. Post and Teardown are
// safe from any goroutine.
type Toolkit interface {
	// ApplyMetadata records the application id and organization name the
	// host platform should associate with the process.
	ApplyMetadata(appID, organization string)

	// TrayAvailable reports whether the platform can display a tray icon.
	TrayAvailable() bool

	// Run enters the blocking event loop. start is invoked once in toolkit
	// context as soon as the loop is live. Run returns the loop's exit code.
	Run(args []string, start func()) int

	// InitTray creates the tray icon and its context menu. icon holds
	// encoded image bytes, or nil for no icon. onActivate fires in toolkit
	// context for every tray activation.
	InitTray(icon []byte, onActivate func(ActivationReason))

	// AddMenuItem appends an entry to the tray context menu. onTrigger
	// fires in toolkit context each time the entry is selected.
	AddMenuItem(text, id string, onTrigger func())

	// Post schedules fn to run in toolkit context at the next opportunity.
	Post(fn func())

	// Quit terminates the event loop. Must run in toolkit context.
	Quit()

	// Teardown releases tray, menu, and application resources. Safe to call
	// under partial initialization and more than once.
	Teardown()
}

// pendingMenuItem is a menu registration staged before the event loop
// exists, replayed in order once the loop starts.
type pendingMenuItem struct {
	text string
	id   string
}
