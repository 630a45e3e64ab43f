package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepoCounts(t *testing.T) {
	since := time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)

	t.Run("activos", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAnalyticsRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT COUNT(*) FROM employees WHERE is_active = TRUE`,
		)).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

		n, err := repo.CountActive(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, n)
	})

	t.Run("altas recientes incluyen inactivos", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAnalyticsRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT COUNT(*) FROM employees WHERE start_date >= $1::date`,
		)).WithArgs(since).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))

		n, err := repo.CountHiresSince(context.Background(), since)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	})

	t.Run("bajas recientes solo inactivos", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAnalyticsRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT COUNT(*) FROM employees WHERE is_active = FALSE AND end_date >= $1::date`,
		)).WithArgs(since).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

		n, err := repo.CountDeparturesSince(context.Background(), since)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("rango salarial con extremos inclusive", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAnalyticsRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT COUNT(*) FROM employees WHERE is_active = TRUE AND salary BETWEEN $1 AND $2`,
		)).WithArgs(int64(300_001), int64(600_000)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

		n, err := repo.CountActiveSalaryBetween(context.Background(), 300_001, 600_000)
		require.NoError(t, err)
		assert.Equal(t, 7, n)
	})
}

func TestAnalyticsRepoDepartmentBreakdown(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAnalyticsRepository(mock)

	mock.ExpectQuery(`GROUP BY department`).
		WillReturnRows(pgxmock.NewRows([]string{"department", "count"}).
			AddRow("Engineering", 12).
			AddRow("Sales", 4))

	out, err := repo.DepartmentBreakdown(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Engineering", out[0].Department)
	assert.Equal(t, 12, out[0].Count)
}

func TestAnalyticsRepoMonthlySeries(t *testing.T) {
	t.Run("altas por mes de start_date", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAnalyticsRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(`to_char(start_date, 'YYYY-MM')`)).
			WillReturnRows(pgxmock.NewRows([]string{"month", "count"}).
				AddRow("2024-01", 3).
				AddRow("2024-02", 1))

		out, err := repo.MonthlyHires(context.Background())
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "2024-01", out[0].Month)
		assert.Equal(t, 3, out[0].Count)
	})

	t.Run("bajas por mes de end_date", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAnalyticsRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(`to_char(end_date, 'YYYY-MM')`)).
			WillReturnRows(pgxmock.NewRows([]string{"month", "count"}).
				AddRow("2024-02", 2))

		out, err := repo.MonthlyDepartures(context.Background())
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "2024-02", out[0].Month)
	})
}
