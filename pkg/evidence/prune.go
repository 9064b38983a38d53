package evidence

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// PruneResult reports one retention pass.
type PruneResult struct {
	Deleted []string // bundle names removed, oldest first
	Kept    int      // bundles remaining
	Errors  []string // per-bundle deletion failures, pass continued
}

// Prune deletes the oldest bundles beyond keep. Bundle names encode their
// creation time, so ascending name order is creation order. keep <= 0
// disables pruning entirely. A failed deletion is recorded and the pass
// continues; prune failures never block future runs.
func (s *Store) Prune(keep int) PruneResult {
	var res PruneResult
	if keep <= 0 {
		return res
	}

	entries, err := os.ReadDir(s.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return res
		}
		res.Errors = append(res.Errors, fmt.Sprintf("list evidence root: %v", err))
		return res
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	excess := len(names) - keep
	if excess <= 0 {
		res.Kept = len(names)
		return res
	}

	for _, name := range names[:excess] {
		if err := os.RemoveAll(filepath.Join(s.Root, name)); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("delete %s: %v", name, err))
			continue
		}
		res.Deleted = append(res.Deleted, name)
	}
	res.Kept = len(names) - len(res.Deleted)
	return res
}
