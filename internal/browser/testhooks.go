package browser

import "os/exec"

// SetStartForTests replaces the process starter used by l.
func (l *Launcher) SetStartForTests(fn func(*exec.Cmd) error) {
	l.start = fn
}
