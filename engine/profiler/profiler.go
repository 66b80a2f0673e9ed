//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// Build-tag-gated span profiler. Compile with -tags profile to record
// render-phase spans; the default build compiles the no-op variant.

type span struct {
	Name    string
	StartNS int64
	EndNS   int64
}

type ring struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	spans []span
}

var rb ring

// Init must be called once with a capacity (#spans) before Start records
// anything. Example: profiler.Init(1 << 16)
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	rb.cap = uint64(capacity)
	rb.spans = make([]span, capacity)
	rb.write.Store(0)
	rb.ready.Store(true)
}

// Start begins a scope and returns an end func to be deferred or called at
// scope exit.
func Start(name string) func() {
	if !rb.ready.Load() {
		return func() {}
	}
	start := time.Now().UnixNano()
	return func() {
		end := time.Now().UnixNano()
		if end < start {
			end = start
		}
		i := rb.write.Add(1) - 1
		rb.spans[i%rb.cap] = span{Name: name, StartNS: start, EndNS: end}
	}
}

// Dump writes recorded spans as a speedscope event profile and returns the
// file path.
func Dump() (string, error) {
	n := rb.write.Load()
	if n == 0 {
		return "", fmt.Errorf("profiler: no spans to dump")
	}
	if n > rb.cap {
		n = rb.cap
	}
	path := filepath.Join(os.TempDir(), "briar.profile.speedscope.json")
	if err := writeSpeedscope(rb.spans[:n], path); err != nil {
		return "", err
	}
	return path, nil
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssEvent struct {
	Type  string `json:"type"`
	Frame int    `json:"frame"`
	At    int64  `json:"at"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssFile struct {
	Schema string `json:"$schema"`
	Shared struct {
		Frames []ssFrame `json:"frames"`
	} `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
}

func writeSpeedscope(spans []span, path string) error {
	frameIDs := map[string]int{}
	var out ssFile
	out.Schema = "https://www.speedscope.app/file-format-schema.json"

	prof := ssProfile{Type: "evented", Name: "briar render", Unit: "nanoseconds"}
	prof.StartValue = spans[0].StartNS
	prof.EndValue = spans[0].EndNS
	for _, s := range spans {
		id, ok := frameIDs[s.Name]
		if !ok {
			id = len(out.Shared.Frames)
			frameIDs[s.Name] = id
			out.Shared.Frames = append(out.Shared.Frames, ssFrame{Name: s.Name})
		}
		if s.StartNS < prof.StartValue {
			prof.StartValue = s.StartNS
		}
		if s.EndNS > prof.EndValue {
			prof.EndValue = s.EndNS
		}
		prof.Events = append(prof.Events,
			ssEvent{Type: "O", Frame: id, At: s.StartNS},
			ssEvent{Type: "C", Frame: id, At: s.EndNS},
		)
	}
	out.Profiles = []ssProfile{prof}

	data, err := json.Marshal(&out)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
