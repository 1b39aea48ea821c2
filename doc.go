// Package traybridge exposes system-tray and application-lifecycle
// primitives to host processes written in other languages.
//
// The bridge has two halves: an event bridge — a mutex-guarded FIFO of
// discrete UI events written from the toolkit's callback context and
// drained by a polling caller on any other thread — and a lifecycle shell
// that configures the toolkit application, stands up the tray icon and its
// context menu, and owns the blocking event loop.
//
// # Getting Started
//
// Configure the shell, then run the loop on the thread designated as the
// GUI thread while another goroutine polls:
//
//	app := traybridge.New()
//	app.SetAppID("example")
//	app.SetOrganizationName("opd-ai")
//	app.InitTray()
//	app.AddMenuItem("Settings", "settings")
//	app.AddMenuItem("Quit", "quit")
//
//	go func() {
//	    for {
//	        ev := app.PollEvent()
//	        switch ev.Type {
//	        case traybridge.EventMenuItemClicked:
//	            if ev.MenuID == "quit" {
//	                app.RequestQuit()
//	            }
//	        case traybridge.EventNone:
//	            time.Sleep(50 * time.Millisecond)
//	        }
//	    }
//	}()
//
//	code := app.Run(os.Args)
//	app.Cleanup()
//
// # Core Types
//
//   - [App]: lifecycle shell owning the toolkit, tray, and menu objects
//   - [Event]: tagged UI event drained via [App.PollEvent]
//   - [Toolkit]: seam abstracting the GUI toolkit (testing support)
//
// # Threading
//
// Run blocks its caller for the whole application lifetime and is the only
// blocking operation. PollEvent never blocks; an empty queue yields the
// EventNone sentinel. RequestQuit is safe from any goroutine: it posts the
// quit to the toolkit's own context instead of touching loop state from a
// foreign thread. Events are observed in the exact order their triggering
// interactions occurred.
//
// # Tray Availability
//
// When a tray was requested but the platform cannot display one, Run
// returns [ExitTrayUnavailable] without entering the loop. A failed icon
// decode merely drops the icon.
//
// # C API Bindings
//
// The capi subpackage exposes the same surface as a flat C function table.
// Build with -buildmode=c-shared; see the capi package documentation for
// the ownership rules of poll-returned strings.
package traybridge
