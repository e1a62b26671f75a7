package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const x11SocketDir = "/tmp/.X11-unix"

var (
	readDirFn     = os.ReadDir
	statFn        = os.Stat
	userHomeDirFn = os.UserHomeDir
)

// SessionEnv holds configured fallbacks for the X11 session variables.
type SessionEnv struct {
	Display    string
	XAuthority string
}

// Apply fills DISPLAY and XAUTHORITY in env when they are missing. Values
// already present in env win over configured fallbacks; when neither is set
// the newest X socket and ~/.Xauthority are used.
func (s SessionEnv) Apply(env []string) []string {
	display := strings.TrimSpace(envLookup(env, "DISPLAY"))
	xauthority := strings.TrimSpace(envLookup(env, "XAUTHORITY"))

	if display == "" {
		display = strings.TrimSpace(s.Display)
	}
	if xauthority == "" {
		xauthority = strings.TrimSpace(s.XAuthority)
	}
	if display == "" {
		display = detectDisplayFromSockets(x11SocketDir)
	}
	if xauthority == "" {
		home := strings.TrimSpace(envLookup(env, "HOME"))
		if home == "" {
			if h, err := userHomeDirFn(); err == nil {
				home = h
			}
		}
		if home != "" {
			candidate := filepath.Join(home, ".Xauthority")
			if _, err := statFn(candidate); err == nil {
				xauthority = candidate
			}
		}
	}

	if display != "" {
		env = upsertEnv(env, "DISPLAY", display)
	}
	if xauthority != "" {
		env = upsertEnv(env, "XAUTHORITY", xauthority)
	}
	return env
}

// ApplyToProcess exports the resolved DISPLAY and XAUTHORITY into the
// current process so in-process X11 clients see them.
func (s SessionEnv) ApplyToProcess() error {
	env := s.Apply(os.Environ())
	for _, key := range []string{"DISPLAY", "XAUTHORITY"} {
		value := envLookup(env, key)
		if value == "" || value == os.Getenv(key) {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return nil
}

func detectDisplayFromSockets(dir string) string {
	entries, err := readDirFn(dir)
	if err != nil {
		return ""
	}

	var displays []int
	for _, entry := range entries {
		name := entry.Name()
		if len(name) < 2 || name[0] != 'X' {
			continue
		}
		n, err := strconv.Atoi(name[1:])
		if err != nil {
			continue
		}
		displays = append(displays, n)
	}

	if len(displays) == 0 {
		return ""
	}
	sort.Ints(displays)
	return fmt.Sprintf(":%d", displays[len(displays)-1])
}

func envLookup(env []string, key string) string {
	prefix := key + "="
	for _, e := range env {
		if strings.HasPrefix(e, prefix) {
			return strings.TrimPrefix(e, prefix)
		}
	}
	return ""
}

func upsertEnv(env []string, key string, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
