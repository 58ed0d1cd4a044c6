package service

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"namedup-service/internal/dedup/model"
)

var (
	ErrThreshold   = errors.New("threshold must be in [0, 100]")
	ErrDuplicateID = errors.New("duplicate record id")
)

// edge links two indexes into the live record slice. Kept internal so the
// union-find works on ints; IDs only appear in the exported result.
type edge struct {
	i, j  int
	score int
}

// FindDuplicates scores every distinct pair of records and merges
// transitively linked matches into groups. A matches B and B matches C puts
// all three in one group even if A-C alone is below threshold; grouping
// favors recall on purpose. All pairs are evaluated, O(n²); fine for tens
// of thousands of rows, which is the documented ceiling.
func FindDuplicates(records []model.Record, opt model.Options) (model.Result, error) {
	if opt.Threshold < 0 || opt.Threshold > 100 {
		return model.Result{}, fmt.Errorf("%w: got %d", ErrThreshold, opt.Threshold)
	}

	res := model.Result{
		Groups: []model.Group{},
		Pairs:  []model.PairScore{},
		Total:  len(records),
	}

	seen := make(map[string]struct{}, len(records))
	live := make([]model.Record, 0, len(records))
	for i, r := range records {
		if _, dup := seen[r.ID]; dup {
			return model.Result{}, fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
		r.Seq = i
		if r.Norm == "" {
			r.Norm = Normalize(r.Name)
		}
		if r.Norm == "" {
			res.Skipped = append(res.Skipped, r.ID)
			continue
		}
		live = append(live, r)
	}
	res.Compared = len(live)

	edges := scorePairs(live, opt.Threshold, opt.Workers)
	for _, e := range edges {
		a, b := live[e.i].ID, live[e.j].ID
		if b < a {
			a, b = b, a
		}
		res.Pairs = append(res.Pairs, model.PairScore{A: a, B: b, Score: e.score})
	}

	res.Groups = buildGroups(live, edges)
	if err := verifyPartition(res.Groups); err != nil {
		return model.Result{}, err
	}
	return res, nil
}

// scorePairs evaluates every unordered pair once. Work is striped over the
// first index and each worker writes only its own rows, so the merged edge
// list comes out in pair-enumeration order no matter how goroutines are
// scheduled.
func scorePairs(recs []model.Record, threshold, workers int) []edge {
	n := len(recs)
	if n < 2 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n-1 {
		workers = n - 1
	}

	rows := make([][]edge, n)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < n-1; i += workers {
				var out []edge
				for j := i + 1; j < n; j++ {
					if s := Score(recs[i].Norm, recs[j].Norm); s >= threshold {
						out = append(out, edge{i: i, j: j, score: s})
					}
				}
				rows[i] = out
			}
		}(w)
	}
	wg.Wait()

	var edges []edge
	for _, row := range rows {
		edges = append(edges, row...)
	}
	return edges
}

// buildGroups runs the transitive-closure step: connected components over
// the retained edges, singletons dropped, representative score = weakest
// edge inside the component.
func buildGroups(recs []model.Record, edges []edge) []model.Group {
	uf := newUnionFind(len(recs))
	for _, e := range edges {
		uf.union(e.i, e.j)
	}

	members := make(map[int][]int)
	for i := range recs {
		root := uf.find(i)
		members[root] = append(members[root], i)
	}
	weakest := make(map[int]int)
	for _, e := range edges {
		root := uf.find(e.i)
		if cur, ok := weakest[root]; !ok || e.score < cur {
			weakest[root] = e.score
		}
	}

	groups := make([]model.Group, 0, len(members))
	for root, idx := range members {
		if len(idx) < 2 {
			continue
		}
		g := model.Group{Score: weakest[root], Members: make([]string, 0, len(idx))}
		// idx is ascending, which is input order for the live slice
		for _, i := range idx {
			g.Members = append(g.Members, recs[i].ID)
		}
		groups = append(groups, g)
	}

	// strongest group first; equal scores ordered by smallest member ID
	sort.Slice(groups, func(a, b int) bool {
		if groups[a].Score != groups[b].Score {
			return groups[a].Score > groups[b].Score
		}
		return smallestMember(groups[a]) < smallestMember(groups[b])
	})
	return groups
}

func smallestMember(g model.Group) string {
	min := g.Members[0]
	for _, id := range g.Members[1:] {
		if id < min {
			min = id
		}
	}
	return min
}

// verifyPartition guards the one-group-per-record invariant. A hit here is a
// grouping bug, not bad input, and must not reach reporting.
func verifyPartition(groups []model.Group) error {
	seen := make(map[string]struct{})
	for _, g := range groups {
		for _, id := range g.Members {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("internal: record %q assigned to more than one group", id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}
