package service

import (
	"context"
	"sync"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/dto"
	"golang.org/x/sync/errgroup"
)

// Counter is any service able to count its records
// Counter 可统计记录数的服务
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// DashboardService 仪表盘统计服务
type DashboardService interface {
	// Stats counts every registered entity type concurrently
	// Stats 并发统计所有已注册实体类型的记录数
	Stats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type dashboardService struct {
	counters map[string]Counter
}

// NewDashboardService counters keyed by entity kind
// NewDashboardService 以实体类型为键的计数器
func NewDashboardService(counters map[string]Counter) DashboardService {
	return &dashboardService{counters: counters}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	var (
		mu  sync.Mutex
		out = &dto.DashboardStatsDTO{Counts: make(map[string]int64, len(s.counters))}
	)

	g, gctx := errgroup.WithContext(ctx)
	for kind, counter := range s.counters {
		g.Go(func() error {
			n, err := counter.Count(gctx)
			if err != nil {
				return err
			}
			mu.Lock()
			out.Counts[kind] = n
			out.Total += n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, mapError(err)
	}
	return out, nil
}
