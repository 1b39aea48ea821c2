// Package main provides C API bindings for traybridge, enabling a host
// process written in another language to drive the tray and application
// lifecycle through a flat, stable function table.
//
// # Build Instructions
//
// To build as a C shared library:
//
//	go build -buildmode=c-shared -o libtraybridge.so ./capi/
//
// This generates:
//   - libtraybridge.so: the shared library
//   - libtraybridge.h: auto-generated C header with function declarations
//
// # C API Usage
//
//	void *app = tray_app_new();
//	tray_app_set_app_id(app, "example");
//	tray_app_set_organization_name(app, "opd-ai");
//	tray_app_set_icon(app, icon_bytes, icon_len, "png");
//	tray_app_init_tray(app);
//	tray_app_add_menu_item(app, "Settings", "settings");
//	tray_app_add_menu_item(app, "Quit", "quit");
//
//	// On a worker thread: drain events and request shutdown.
//	char *menu_id = NULL;
//	int type = tray_app_poll_event(app, &menu_id);
//	if (type == TRAY_APP_EVENT_MENU_ITEM_CLICKED) {
//	    handle_menu(menu_id);
//	    tray_app_free_string(menu_id);
//	}
//	tray_app_request_quit(app);
//
//	// On the GUI thread: block in the loop, then release everything.
//	int code = tray_app_run(app, argc, argv);
//	tray_app_cleanup(app);
//
// # Ownership
//
// Strings passed INTO the API are borrowed: they are copied before the call
// returns and the caller keeps ownership. The menu id string written by
// tray_app_poll_event is the one allocation that crosses the boundary
// outward: ownership transfers to the caller, who must release it exactly
// once with tray_app_free_string. It was allocated by this library's
// allocator, so freeing it any other way is undefined. tray_app_free_string
// accepts NULL, so defensive callers may release unconditionally.
//
// # Thread Safety
//
// tray_app_run must be called on the thread the host designates as the GUI
// thread and blocks until the loop exits. tray_app_poll_event,
// tray_app_add_menu_item, and tray_app_request_quit are safe from any other
// thread while the loop runs. Every entry point tolerates a NULL or unknown
// handle by no-op-ing or returning a sentinel; nothing faults across the
// ABI.
//
// # Exit Codes
//
// tray_app_run returns -1 when a tray was requested but the platform has no
// tray support (the loop is never entered), otherwise the event loop's own
// exit code; 0 is a normal quit.
package main
