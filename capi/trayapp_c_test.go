package main

import (
	"testing"
)

// TestHandleLifecycle exercises creation and cleanup of bridge handles.
func TestHandleLifecycle(t *testing.T) {
	handle := tray_app_new()
	if handle == nil {
		t.Fatal("tray_app_new returned NULL")
	}

	appMutex.RLock()
	_, exists := appInstances[*(*int)(handle)]
	appMutex.RUnlock()
	if !exists {
		t.Error("New handle not present in the instance registry")
	}

	tray_app_cleanup(handle)

	appMutex.RLock()
	_, exists = appInstances[*(*int)(handle)]
	appMutex.RUnlock()
	if exists {
		t.Error("Handle still registered after cleanup")
	}

	// Double cleanup must be safe.
	tray_app_cleanup(handle)
}

// TestDistinctHandles verifies each constructor call yields an independent
// instance.
func TestDistinctHandles(t *testing.T) {
	h1 := tray_app_new()
	h2 := tray_app_new()
	defer tray_app_cleanup(h1)
	defer tray_app_cleanup(h2)

	if *(*int)(h1) == *(*int)(h2) {
		t.Error("Two handles share one instance ID")
	}
}

// TestNilHandleTolerance verifies every entry point no-ops or returns a
// sentinel on a NULL handle instead of faulting.
func TestNilHandleTolerance(t *testing.T) {
	tray_app_set_app_id(nil, nil)
	tray_app_set_organization_name(nil, nil)
	tray_app_set_icon(nil, nil, 0, nil)
	tray_app_init_tray(nil)
	tray_app_add_menu_item(nil, nil, nil)
	tray_app_request_quit(nil)
	tray_app_cleanup(nil)
	tray_app_free_string(nil)

	if code := tray_app_run(nil, 0, nil); code != -1 {
		t.Errorf("tray_app_run(NULL) = %d, want -1", code)
	}

	if typ := tray_app_poll_event(nil, nil); typ != 0 {
		t.Errorf("tray_app_poll_event(NULL) = %d, want TRAY_APP_EVENT_NONE", typ)
	}
}

// TestStaleHandleTolerance verifies a cleaned-up handle behaves like an
// unknown one.
func TestStaleHandleTolerance(t *testing.T) {
	handle := tray_app_new()
	tray_app_cleanup(handle)

	tray_app_init_tray(handle)
	tray_app_request_quit(handle)
	if code := tray_app_run(handle, 0, nil); code != -1 {
		t.Errorf("tray_app_run on stale handle = %d, want -1", code)
	}
	if typ := tray_app_poll_event(handle, nil); typ != 0 {
		t.Errorf("poll on stale handle = %d, want TRAY_APP_EVENT_NONE", typ)
	}
}

// TestPollEventEmptyQueue verifies the None sentinel on a fresh handle and
// that repeated polling stays safe, including with a NULL out-param.
func TestPollEventEmptyQueue(t *testing.T) {
	handle := tray_app_new()
	defer tray_app_cleanup(handle)

	for i := 0; i < 5; i++ {
		if typ := tray_app_poll_event(handle, nil); typ != 0 {
			t.Fatalf("poll %d = %d, want TRAY_APP_EVENT_NONE", i, typ)
		}
	}
}

// TestPreRunConfiguration verifies configuration entry points accept nil
// string arguments on a live handle (empty means unset).
func TestPreRunConfiguration(t *testing.T) {
	handle := tray_app_new()
	defer tray_app_cleanup(handle)

	tray_app_set_app_id(handle, nil)
	tray_app_set_organization_name(handle, nil)
	tray_app_set_icon(handle, nil, 0, nil)
	tray_app_init_tray(handle)
	tray_app_add_menu_item(handle, nil, nil)

	// Quit before run is a documented no-op.
	tray_app_request_quit(handle)

	if typ := tray_app_poll_event(handle, nil); typ != 0 {
		t.Errorf("poll after configuration = %d, want TRAY_APP_EVENT_NONE", typ)
	}
}

// TestGoArgs tests the degenerate argc/argv conversions reachable without
// cgo in test files; string-carrying conversions are covered by the host
// side of the ABI.
func TestGoArgs(t *testing.T) {
	if got := goArgs(0, nil); got != nil {
		t.Errorf("goArgs(0, nil) = %v, want nil", got)
	}
	if got := goArgs(-1, nil); got != nil {
		t.Errorf("goArgs(-1, nil) = %v, want nil", got)
	}
}
