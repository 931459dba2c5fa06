package memory

import (
	"context"
	"sort"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type HitRepo struct {
	s *Store
}

func (r *HitRepo) SaveBatch(_ context.Context, hits []domain.Hit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.hits = append(r.s.hits, hits...)
	return nil
}

func (r *HitRepo) ViewStats(_ context.Context, params domain.ViewStatsParams) ([]domain.ViewStats, error) {
	uris := make(map[string]struct{}, len(params.URIs))
	for _, u := range params.URIs {
		uris[u] = struct{}{}
	}

	type key struct{ app, uri string }
	total := make(map[key]int)
	ips := make(map[key]map[string]struct{})

	r.s.mu.RLock()
	for _, h := range r.s.hits {
		if h.Timestamp.Before(params.Start) || h.Timestamp.After(params.End) {
			continue
		}
		if _, ok := uris[h.URI]; len(uris) > 0 && !ok {
			continue
		}
		k := key{h.App, h.URI}
		total[k]++
		if ips[k] == nil {
			ips[k] = make(map[string]struct{})
		}
		ips[k][h.IP] = struct{}{}
	}
	r.s.mu.RUnlock()

	res := make([]domain.ViewStats, 0, len(total))
	for k, n := range total {
		if params.Unique {
			n = len(ips[k])
		}
		res = append(res, domain.ViewStats{App: k.app, URI: k.uri, Hits: n})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Hits != res[j].Hits {
			return res[i].Hits > res[j].Hits
		}
		if res[i].App != res[j].App {
			return res[i].App < res[j].App
		}
		return res[i].URI < res[j].URI
	})

	return res, nil
}
