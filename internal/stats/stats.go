// Package stats tracks how many commands rtkwrap has rewritten, keyed by
// the command's head token. The engine never counts anything itself; the
// hook records a tally after each rewrite decision.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hpkotak/rtkwrap/internal/config"
)

// Recorder accumulates rewrite counts. Implementations must be safe for
// concurrent use.
type Recorder interface {
	Record(head string) error
}

// Nop discards all records.
type Nop struct{}

func (Nop) Record(string) error { return nil }

// Path returns the tally file path (~/.rtkwrap/stats.json).
func Path() string {
	return filepath.Join(config.Dir(), "stats.json")
}

// FileRecorder persists the tally as a JSON object of head→count. Each
// Record is a read-modify-write under a mutex, which is enough for the
// single hook process; concurrent hook processes may lose the odd count,
// and that is acceptable for a usage tally.
type FileRecorder struct {
	mu   sync.Mutex
	path string
}

func NewFileRecorder(path string) *FileRecorder {
	return &FileRecorder{path: path}
}

// Record increments the count for head and writes the tally back out.
func (r *FileRecorder) Record(head string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := readCounts(r.path)
	counts[head]++

	data, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creating stats dir: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// Load reads the tally file. A missing file is an empty tally, not an
// error; a corrupt file is reported.
func Load(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]int{}, nil
		}
		return nil, fmt.Errorf("reading stats: %w", err)
	}

	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("parsing stats: %w", err)
	}
	if counts == nil {
		counts = map[string]int{}
	}
	return counts, nil
}

// readCounts is the forgiving variant used on the write path: a missing or
// corrupt tally starts over rather than blocking new records.
func readCounts(path string) map[string]int {
	counts, err := Load(path)
	if err != nil {
		return map[string]int{}
	}
	return counts
}
