package postgres

import (
	"testing"
	"time"

	"pharmacy/internal/domain/entity"
	"pharmacy/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatsFromRows(t *testing.T) {
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	rows := []model.OrderStatusCountRow{
		{Status: string(entity.OrderStatusPending), Count: 4},
		{Status: string(entity.OrderStatusDelivered), Count: 7},
		{Status: string(entity.OrderStatusRefunded), Count: 1},
	}
	revenue := model.OrderRevenueRow{
		GrossRevenue:  decimal.RequireFromString("1250.50"),
		RefundedTotal: decimal.RequireFromString("300.25"),
	}

	stats := orderStatsFromRows(rows, revenue, &from, nil)

	require.Len(t, stats.CountByStatus, len(entity.AllOrderStatuses))
	assert.Equal(t, int64(4), stats.CountByStatus[entity.OrderStatusPending])
	assert.Equal(t, int64(7), stats.CountByStatus[entity.OrderStatusDelivered])
	assert.Equal(t, int64(0), stats.CountByStatus[entity.OrderStatusShipped])
	assert.Equal(t, int64(0), stats.CountByStatus[entity.OrderStatusCancelled])
	assert.Equal(t, int64(12), stats.TotalOrders)
	assert.True(t, stats.NetRevenue.Equal(decimal.RequireFromString("950.25")), "net %s", stats.NetRevenue)
	assert.Equal(t, &from, stats.From)
	assert.Nil(t, stats.To)
}

func TestOrderStatsFromRows_NoOrders(t *testing.T) {
	stats := orderStatsFromRows(nil, model.OrderRevenueRow{GrossRevenue: decimal.Zero, RefundedTotal: decimal.Zero}, nil, nil)

	assert.Zero(t, stats.TotalOrders)
	assert.True(t, stats.NetRevenue.IsZero())
	for _, status := range entity.AllOrderStatuses {
		count, ok := stats.CountByStatus[status]
		assert.True(t, ok, "missing %s", status)
		assert.Zero(t, count)
	}
}
