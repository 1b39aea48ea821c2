package main

/*
#include <stdlib.h>

// Event types returned by tray_app_poll_event, matching the Go EventType.
typedef enum tray_app_event_type {
    TRAY_APP_EVENT_NONE = 0,
    TRAY_APP_EVENT_TRAY_CLICKED = 1,
    TRAY_APP_EVENT_TRAY_DOUBLE_CLICKED = 2,
    TRAY_APP_EVENT_MENU_ITEM_CLICKED = 3,
} tray_app_event_type;
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/opd-ai/traybridge"
	"github.com/sirupsen/logrus"
)

// This is the main package required for building as c-shared.
// It provides C-compatible wrappers for the Go traybridge implementation.

func main() {} // Required for c-shared build mode

// Global instance registry mapping opaque handles to App instances.
var (
	appInstances = make(map[int]*traybridge.App)
	nextAppID    = 1
	appMutex     sync.RWMutex
)

// lookupApp resolves an opaque handle to its App, tolerating nil and
// unknown handles.
func lookupApp(handle unsafe.Pointer) (*traybridge.App, bool) {
	if handle == nil {
		return nil, false
	}
	appMutex.RLock()
	defer appMutex.RUnlock()
	app, exists := appInstances[*(*int)(handle)]
	return app, exists
}

// tray_app_new creates a new bridge instance and returns an opaque handle,
// or NULL on failure. Release with tray_app_cleanup.
//
//export tray_app_new
func tray_app_new() unsafe.Pointer {
	app := traybridge.New()

	appMutex.Lock()
	defer appMutex.Unlock()

	instanceID := nextAppID
	nextAppID++
	appInstances[instanceID] = app

	handle := new(int)
	*handle = instanceID
	return unsafe.Pointer(handle)
}

// tray_app_set_app_id sets the application identifier. The string is
// borrowed; it is copied before this call returns.
//
//export tray_app_set_app_id
func tray_app_set_app_id(handle unsafe.Pointer, id *C.char) {
	app, exists := lookupApp(handle)
	if !exists || id == nil {
		return
	}
	app.SetAppID(C.GoString(id))
}

// tray_app_set_organization_name sets the organization name consumed by the
// host platform's settings mechanism.
//
//export tray_app_set_organization_name
func tray_app_set_organization_name(handle unsafe.Pointer, name *C.char) {
	app, exists := lookupApp(handle)
	if !exists || name == nil {
		return
	}
	app.SetOrganizationName(C.GoString(name))
}

// tray_app_set_icon stores encoded image bytes and a format hint ("png",
// "jpeg", "ico", ...). Decoding happens during tray_app_run; undecodable
// data degrades to no icon.
//
//export tray_app_set_icon
func tray_app_set_icon(handle unsafe.Pointer, data *C.uchar, size C.size_t, format *C.char) {
	app, exists := lookupApp(handle)
	if !exists || data == nil || size == 0 {
		return
	}
	app.SetIcon(C.GoBytes(unsafe.Pointer(data), C.int(size)), C.GoString(format))
}

// tray_app_init_tray requests a tray icon with a context menu. Must be
// called before tray_app_run to take effect.
//
//export tray_app_init_tray
func tray_app_init_tray(handle unsafe.Pointer) {
	app, exists := lookupApp(handle)
	if !exists {
		return
	}
	app.InitTray()
}

// tray_app_add_menu_item registers a context-menu entry. Each trigger
// enqueues one TRAY_APP_EVENT_MENU_ITEM_CLICKED carrying a fresh copy of
// id. Items registered before tray_app_run are applied in registration
// order when the loop starts.
//
//export tray_app_add_menu_item
func tray_app_add_menu_item(handle unsafe.Pointer, text *C.char, id *C.char) {
	app, exists := lookupApp(handle)
	if !exists {
		return
	}
	app.AddMenuItem(C.GoString(text), C.GoString(id))
}

// tray_app_run enters the blocking event loop on the calling thread, which
// becomes the GUI thread. Returns -1 if a tray was requested but the
// platform has no tray support, otherwise the loop's exit code.
//
//export tray_app_run
func tray_app_run(handle unsafe.Pointer, argc C.int, argv **C.char) C.int {
	app, exists := lookupApp(handle)
	if !exists {
		logrus.WithFields(logrus.Fields{
			"function": "tray_app_run",
		}).Error("Run called with an invalid handle")
		return C.int(traybridge.ExitTrayUnavailable)
	}
	return C.int(app.Run(goArgs(argc, argv)))
}

// tray_app_poll_event removes and returns the oldest queued event without
// blocking. Returns TRAY_APP_EVENT_NONE when the queue is empty. For
// TRAY_APP_EVENT_MENU_ITEM_CLICKED, *menu_id receives an owned C string the
// caller must release exactly once with tray_app_free_string; for every
// other result *menu_id is set to NULL. Safe from any thread.
//
//export tray_app_poll_event
func tray_app_poll_event(handle unsafe.Pointer, menu_id **C.char) C.tray_app_event_type {
	if menu_id != nil {
		*menu_id = nil
	}
	app, exists := lookupApp(handle)
	if !exists {
		return C.TRAY_APP_EVENT_NONE
	}

	ev := app.PollEvent()
	if ev.Type == traybridge.EventMenuItemClicked && menu_id != nil {
		*menu_id = C.CString(ev.MenuID)
	}
	return C.tray_app_event_type(ev.Type)
}

// tray_app_request_quit asks the event loop to terminate. Safe from any
// thread: the quit executes on the GUI thread at the next opportunity. A
// no-op if the loop has not started.
//
//export tray_app_request_quit
func tray_app_request_quit(handle unsafe.Pointer) {
	app, exists := lookupApp(handle)
	if !exists {
		return
	}
	app.RequestQuit()
}

// tray_app_cleanup releases the tray, menu, and application objects and
// invalidates the handle. Calling it twice, or on a handle whose tray was
// never initialized, is safe.
//
//export tray_app_cleanup
func tray_app_cleanup(handle unsafe.Pointer) {
	if handle == nil {
		return
	}

	appMutex.Lock()
	defer appMutex.Unlock()

	instanceID := *(*int)(handle)
	if app, exists := appInstances[instanceID]; exists {
		app.Cleanup()
		delete(appInstances, instanceID)
	}
}

// tray_app_free_string releases a string previously returned through
// tray_app_poll_event. Accepts NULL. Must be called exactly once per
// returned string; the allocation belongs to this library's allocator.
//
//export tray_app_free_string
func tray_app_free_string(str *C.char) {
	if str == nil {
		return
	}
	C.free(unsafe.Pointer(str))
}

// goArgs converts argc/argv into a Go argument slice, skipping NULL
// entries.
func goArgs(argc C.int, argv **C.char) []string {
	if argv == nil || argc <= 0 {
		return nil
	}
	args := make([]string, 0, int(argc))
	for _, arg := range unsafe.Slice(argv, int(argc)) {
		if arg != nil {
			args = append(args, C.GoString(arg))
		}
	}
	return args
}
