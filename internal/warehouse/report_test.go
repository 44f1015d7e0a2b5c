package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediastack-labs/mediaforge/internal/adapter"
)

// mockAdapter routes the Adapter interface through a sqlmock database.
type mockAdapter struct {
	db *sql.DB
}

func (m *mockAdapter) Connect(ctx context.Context, cfg adapter.Config) error { return nil }
func (m *mockAdapter) Close() error                                          { return m.db.Close() }
func (m *mockAdapter) DialectName() string                                   { return "mock" }

func (m *mockAdapter) Exec(ctx context.Context, query string) error {
	_, err := m.db.ExecContext(ctx, query)
	return err
}

func (m *mockAdapter) Query(ctx context.Context, query string) (*adapter.Rows, error) {
	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return &adapter.Rows{Rows: rows}, nil
}

func (m *mockAdapter) LoadCSV(ctx context.Context, tableName, filePath string) error {
	return fmt.Errorf("not supported")
}

func (m *mockAdapter) TableCount(ctx context.Context, tableName string) (int64, error) {
	row := m.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %q`, tableName))
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func newMock(t *testing.T) (*mockAdapter, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &mockAdapter{db: db}, mock
}

func TestReport(t *testing.T) {
	a, mock := newMock(t)

	mock.ExpectQuery(`SELECT COUNT(*) FROM "audience_demographics"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1200))
	mock.ExpectQuery(`SELECT COUNT(*) FROM "campaign_performance"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5000))

	mock.ExpectQuery(queryRelationships).WillReturnRows(
		sqlmock.NewRows([]string{"a", "b", "c", "d", "e", "f"}).
			AddRow(1200, 1180, 1500, 420, 380, 150))

	mock.ExpectQuery(queryAgeGroups).WillReturnRows(
		sqlmock.NewRows([]string{"age_group", "count"}).
			AddRow("25-34", 300).
			AddRow("35-44", 280))

	mock.ExpectQuery(queryConsent).WillReturnRows(
		sqlmock.NewRows([]string{"consent_status", "count"}).
			AddRow("granted", 900).
			AddRow("denied", 300))

	mock.ExpectQuery(queryChannels).WillReturnRows(
		sqlmock.NewRows([]string{"channel", "impr", "clicks", "conv", "cost", "ctr", "roi"}).
			AddRow("search", 120000, 4200, 310, 15400.50, 0.035, 2.4).
			AddRow("social", 98000, 2900, 180, 9100.25, 0.029, 1.8))

	summary, err := Report(context.Background(), a, []string{"audience_demographics", "campaign_performance"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, "mock", summary.Dialect)

	require.Len(t, summary.Tables, 2)
	assert.Equal(t, LoadedTable{Name: "audience_demographics", Rows: 1200}, summary.Tables[0])
	assert.Equal(t, LoadedTable{Name: "campaign_performance", Rows: 5000}, summary.Tables[1])

	require.Len(t, summary.Relationships, 7)
	assert.Equal(t, Stat{Name: "audiences", Value: 1200}, summary.Relationships[0])
	assert.InDelta(t, 1.25, summary.Relationships[6].Value, 1e-9)

	require.Len(t, summary.AgeGroups, 2)
	assert.Equal(t, Distribution{Value: "25-34", Count: 300}, summary.AgeGroups[0])

	require.Len(t, summary.Consent, 2)
	assert.Equal(t, Distribution{Value: "granted", Count: 900}, summary.Consent[0])

	require.Len(t, summary.Channels, 2)
	assert.Equal(t, "search", summary.Channels[0].Channel)
	assert.Equal(t, int64(120000), summary.Channels[0].Impressions)
	assert.InDelta(t, 2.4, summary.Channels[0].AvgROI, 1e-9)
}

func TestReportDistinctRunIDs(t *testing.T) {
	for i := 0; i < 2; i++ {
		a, mock := newMock(t)
		mock.ExpectQuery(queryRelationships).WillReturnRows(
			sqlmock.NewRows([]string{"a", "b", "c", "d", "e", "f"}).
				AddRow(0, 0, 0, 0, 0, 0))
		mock.ExpectQuery(queryAgeGroups).WillReturnRows(sqlmock.NewRows([]string{"v", "c"}))
		mock.ExpectQuery(queryConsent).WillReturnRows(sqlmock.NewRows([]string{"v", "c"}))
		mock.ExpectQuery(queryChannels).WillReturnRows(sqlmock.NewRows([]string{"ch", "i", "cl", "co", "cost", "ctr", "roi"}))

		summary, err := Report(context.Background(), a, nil)
		require.NoError(t, err)
		assert.Empty(t, summary.Tables)
		assert.Empty(t, summary.Channels)
		assert.NotEmpty(t, summary.RunID)
	}
}

func TestReportQueryError(t *testing.T) {
	a, mock := newMock(t)
	mock.ExpectQuery(queryRelationships).WillReturnError(fmt.Errorf("table missing"))

	_, err := Report(context.Background(), a, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relationship query failed")
}
