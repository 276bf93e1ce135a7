package service

import (
	"context"
	"errors"
	"testing"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/pkg/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countFunc func(ctx context.Context) (int64, error)

func (f countFunc) Count(ctx context.Context) (int64, error) {
	return f(ctx)
}

func constCount(n int64) Counter {
	return countFunc(func(context.Context) (int64, error) { return n, nil })
}

func TestDashboardService_Stats(t *testing.T) {
	svc := NewDashboardService(map[string]Counter{
		"memo":    constCount(3),
		"todo":    constCount(4),
		"article": constCount(0),
	})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"memo": 3, "todo": 4, "article": 0}, stats.Counts)
	assert.Equal(t, int64(7), stats.Total)
}

func TestDashboardService_StatsError(t *testing.T) {
	svc := NewDashboardService(map[string]Counter{
		"memo": constCount(3),
		"todo": countFunc(func(context.Context) (int64, error) { return 0, errors.New("connection refused") }),
	})

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, code.ErrorDBQuery)
}
