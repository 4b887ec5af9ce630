package testsupport

import "sync"

// LaunchCall records one browser launch request.
type LaunchCall struct {
	Browser string
	URL     string
}

// RecordingLauncher captures launches instead of starting processes.
type RecordingLauncher struct {
	mu    sync.Mutex
	calls []LaunchCall
}

func (l *RecordingLauncher) Launch(browser, url string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, LaunchCall{Browser: browser, URL: url})
}

// Calls returns a copy of the recorded launches.
func (l *RecordingLauncher) Calls() []LaunchCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LaunchCall, len(l.calls))
	copy(out, l.calls)
	return out
}
