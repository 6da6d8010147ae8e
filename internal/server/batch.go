package server

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/yhzion/comment-stripper-mcp/stripper"
)

// BatchStatus is one snapshot of a directory batch. Snapshots are sent
// by value over the progress channel, so readers never observe a
// half-updated batch.
type BatchStatus struct {
	BatchID   string `json:"batchId"`
	Directory string `json:"directory"`
	Total     int    `json:"total"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
	Current   string `json:"current,omitempty"`
	Done      bool   `json:"done"`
}

type batch struct {
	mu     sync.Mutex
	status BatchStatus
	// events carries status snapshots to progress watchers and is closed
	// when the batch finishes. The buffer absorbs bursts; a full buffer
	// drops intermediate snapshots rather than stalling the workers.
	events chan BatchStatus
}

func (b *batch) update(mutate func(*BatchStatus)) {
	b.mu.Lock()
	mutate(&b.status)
	snapshot := b.status
	b.mu.Unlock()

	select {
	case b.events <- snapshot:
	default:
	}
}

func (b *batch) snapshot() BatchStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

type batchRegistry struct {
	mu      sync.RWMutex
	batches map[string]*batch
	nextID  atomic.Int64
}

func newBatchRegistry() *batchRegistry {
	return &batchRegistry{batches: make(map[string]*batch)}
}

func (r *batchRegistry) create(directory string, total int) *batch {
	b := &batch{
		status: BatchStatus{
			BatchID:   fmt.Sprintf("batch-%d", r.nextID.Add(1)),
			Directory: directory,
			Total:     total,
		},
		events: make(chan BatchStatus, 64),
	}

	r.mu.Lock()
	r.batches[b.status.BatchID] = b
	r.mu.Unlock()
	return b
}

func (r *batchRegistry) get(id string) (*batch, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.batches[id]
	return b, ok
}

type stripDirectoryRequest struct {
	Directory  string   `json:"directory"`
	Extensions []string `json:"extensions,omitempty"`
	Normalize  bool     `json:"normalize,omitempty"`
}

type stripDirectoryResponse struct {
	BatchID string `json:"batchId"`
	Total   int    `json:"total"`
}

// handleStripDirectory walks the requested tree, answers immediately
// with a batch id and file count, and strips the files on a bounded
// worker pool in the background. Progress is observable on the
// websocket endpoint under the returned id.
func (s *Server) handleStripDirectory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req stripDirectoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Directory == "" {
		writeError(w, http.StatusBadRequest, "directory is required")
		return
	}

	files, err := collectFiles(req.Directory, req.Extensions)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to walk directory: %v", err))
		return
	}

	b := s.batches.create(req.Directory, len(files))
	go s.runBatch(b, files, req.Normalize)

	writeJSON(w, http.StatusAccepted, stripDirectoryResponse{
		BatchID: b.snapshot().BatchID,
		Total:   len(files),
	})
}

// collectFiles gathers the strippable files under root. An explicit
// extension list narrows the walk; otherwise every supported extension
// is taken.
func collectFiles(root string, extensions []string) ([]string, error) {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[normalizeExt(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Dot directories like .git hold nothing strippable.
			if name := d.Name(); name != "." && len(name) > 1 && name[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		if !stripper.SupportedExtension(ext) {
			return nil
		}
		if len(allowed) > 0 && !allowed[normalizeExt(ext)] {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func normalizeExt(ext string) string {
	return strings.TrimPrefix(strings.ToLower(ext), ".")
}

// runBatch strips the files in place with a fixed-size worker pool and
// closes the batch's event channel when done.
func (s *Server) runBatch(b *batch, files []string, normalize bool) {
	defer func() {
		b.update(func(st *BatchStatus) {
			st.Current = ""
			st.Done = true
		})
		close(b.events)
	}()

	workers := s.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	queue := make(chan string)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range queue {
				b.update(func(st *BatchStatus) { st.Current = path })

				switch stripInPlace(path, normalize) {
				case stripResultChanged:
					b.update(func(st *BatchStatus) { st.Processed++ })
				case stripResultUnchanged:
					b.update(func(st *BatchStatus) { st.Skipped++ })
				case stripResultFailed:
					b.update(func(st *BatchStatus) { st.Failed++ })
				}
			}
		}()
	}

	for _, f := range files {
		queue <- f
	}
	close(queue)
	wg.Wait()
}

type stripResult int

const (
	stripResultChanged stripResult = iota
	stripResultUnchanged
	stripResultFailed
)

func stripInPlace(path string, normalize bool) stripResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return stripResultFailed
	}

	cleaned := stripper.StripCommentsByFileType(path, string(content))
	if normalize {
		cleaned = stripper.Normalize(cleaned)
	}

	if cleaned == string(content) {
		return stripResultUnchanged
	}

	if err := os.WriteFile(path, []byte(cleaned), 0o644); err != nil {
		return stripResultFailed
	}
	return stripResultChanged
}
