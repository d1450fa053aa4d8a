package stats

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestFileRecorderRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stats.json")
	r := NewFileRecorder(path)

	for _, head := range []string{"cat", "git", "cat", "ls", "cat"} {
		if err := r.Record(head); err != nil {
			t.Fatalf("record %q: %v", head, err)
		}
	}

	counts, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := map[string]int{"cat": 3, "git": 1, "ls": 1}
	for head, n := range want {
		if counts[head] != n {
			t.Errorf("counts[%q] = %d, want %d", head, counts[head], n)
		}
	}
}

func TestFileRecorderCorruptFileStartsOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := NewFileRecorder(path)
	if err := r.Record("cat"); err != nil {
		t.Fatalf("record: %v", err)
	}

	counts, err := Load(path)
	if err != nil {
		t.Fatalf("load after record: %v", err)
	}
	if counts["cat"] != 1 {
		t.Errorf("counts[cat] = %d, want 1", counts["cat"])
	}
}

func TestFileRecorderConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	r := NewFileRecorder(path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Record("git"); err != nil {
				t.Errorf("record: %v", err)
			}
		}()
	}
	wg.Wait()

	counts, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if counts["git"] != 20 {
		t.Errorf("counts[git] = %d, want 20", counts["git"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	counts, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("counts = %v, want empty", counts)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for corrupt stats file")
	}
}

func TestNopRecorder(t *testing.T) {
	if err := (Nop{}).Record("anything"); err != nil {
		t.Errorf("nop record: %v", err)
	}
}
