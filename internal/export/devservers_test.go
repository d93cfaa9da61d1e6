package export

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	ps "github.com/mitchellh/go-ps"
)

type fakeProcess struct {
	pid int
	exe string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 1 }
func (p fakeProcess) Executable() string { return p.exe }

func TestDetectIn(t *testing.T) {
	procs := []ps.Process{
		fakeProcess{900, "vite"},
		fakeProcess{12, "bash"},
		fakeProcess{40, "node"},
		fakeProcess{41, "node.exe"},
		fakeProcess{77, "nodemon"},
		fakeProcess{300, "pnpm"},
	}

	want := []DevServer{
		{PID: 40, Executable: "node"},
		{PID: 41, Executable: "node"},
		{PID: 300, Executable: "pnpm"},
		{PID: 900, Executable: "vite"},
	}
	if diff := cmp.Diff(want, detectIn(procs)); diff != "" {
		t.Errorf("detectIn() mismatch (-want +got):\n%s", diff)
	}

	if got := detectIn([]ps.Process{fakeProcess{1, "init"}}); got != nil {
		t.Errorf("detectIn() = %v, want nil", got)
	}
}

func TestDevServerString(t *testing.T) {
	if got := (DevServer{PID: 7, Executable: "bun"}).String(); got != "bun (pid 7)" {
		t.Errorf("String() = %q", got)
	}
}
