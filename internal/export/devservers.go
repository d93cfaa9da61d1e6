package export

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// devServerExecutables are process names that usually serve a web UI under
// development.
var devServerExecutables = []string{
	"node", "bun", "deno", "vite", "next-server", "npm", "pnpm", "yarn",
}

// DevServer is a running process that may pick up an exported theme file.
type DevServer struct {
	PID        int    `json:"pid"`
	Executable string `json:"executable"`
}

func (d DevServer) String() string {
	return fmt.Sprintf("%s (pid %d)", d.Executable, d.PID)
}

// DetectDevServers lists running JavaScript toolchain processes. Export uses
// it to tell the user whether a hot-reloading dev server will see the file.
func DetectDevServers() ([]DevServer, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	return detectIn(processes), nil
}

func detectIn(processes []ps.Process) []DevServer {
	var found []DevServer
	for _, p := range processes {
		exe := strings.TrimSuffix(filepath.Base(p.Executable()), ".exe")
		if slices.Contains(devServerExecutables, exe) {
			found = append(found, DevServer{PID: p.Pid(), Executable: exe})
		}
	}
	slices.SortFunc(found, func(a, b DevServer) int { return a.PID - b.PID })
	return found
}
