package warehouse

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mediastack-labs/mediaforge/internal/adapter"
)

// Stat is one named numeric result in the relationship section.
type Stat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Distribution is one bucket of a value-count breakdown.
type Distribution struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// ChannelPerformance aggregates campaign performance per media channel.
type ChannelPerformance struct {
	Channel     string  `json:"channel"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Cost        float64 `json:"cost"`
	AvgCTR      float64 `json:"avg_ctr"`
	AvgROI      float64 `json:"avg_roi"`
}

// Summary is the full data summary report.
type Summary struct {
	RunID         string               `json:"run_id"`
	Dialect       string               `json:"dialect"`
	Tables        []LoadedTable        `json:"tables"`
	Relationships []Stat               `json:"relationships"`
	AgeGroups     []Distribution       `json:"age_groups"`
	Consent       []Distribution       `json:"consent"`
	Channels      []ChannelPerformance `json:"channels"`
}

// Queries used by the reporter. CSV-loaded columns may be TEXT depending on
// the adapter, so every aggregate casts explicitly.
const (
	queryRelationships = `SELECT
    (SELECT COUNT(DISTINCT audience_id) FROM audience_demographics),
    (SELECT COUNT(DISTINCT audience_id) FROM audience_segments),
    (SELECT COUNT(*) FROM audience_segments),
    (SELECT COUNT(DISTINCT segment_id) FROM campaign_performance),
    (SELECT COUNT(DISTINCT creative_id) FROM campaign_performance),
    (SELECT COUNT(DISTINCT campaign_id) FROM attribution_events)`

	queryAgeGroups = `SELECT age_group, COUNT(*) FROM audience_demographics GROUP BY age_group ORDER BY COUNT(*) DESC, age_group`

	queryConsent = `SELECT consent_status, COUNT(*) FROM consent_privacy GROUP BY consent_status ORDER BY COUNT(*) DESC, consent_status`

	queryChannels = `SELECT media_channel,
    SUM(CAST(impressions AS BIGINT)),
    SUM(CAST(clicks AS BIGINT)),
    SUM(CAST(conversions AS BIGINT)),
    SUM(CAST(cost AS DOUBLE PRECISION)),
    AVG(CAST("CTR" AS DOUBLE PRECISION)),
    AVG(CAST("ROI" AS DOUBLE PRECISION))
FROM campaign_performance GROUP BY media_channel ORDER BY media_channel`
)

// Report runs the summary queries over an already-loaded warehouse. Tables
// listed in tables are counted individually; the remaining sections come
// from fixed aggregate queries.
func Report(ctx context.Context, a adapter.Adapter, tables []string) (*Summary, error) {
	s := &Summary{
		RunID:   uuid.NewString(),
		Dialect: a.DialectName(),
	}

	for _, name := range tables {
		rows, err := a.TableCount(ctx, name)
		if err != nil {
			return nil, err
		}
		s.Tables = append(s.Tables, LoadedTable{Name: name, Rows: rows})
	}

	if err := reportRelationships(ctx, a, s); err != nil {
		return nil, err
	}
	if err := reportDistribution(ctx, a, queryAgeGroups, &s.AgeGroups); err != nil {
		return nil, err
	}
	if err := reportDistribution(ctx, a, queryConsent, &s.Consent); err != nil {
		return nil, err
	}
	if err := reportChannels(ctx, a, s); err != nil {
		return nil, err
	}

	return s, nil
}

func reportRelationships(ctx context.Context, a adapter.Adapter, s *Summary) error {
	rows, err := a.Query(ctx, queryRelationships)
	if err != nil {
		return fmt.Errorf("relationship query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var audiences, withSegments, segments, segmentsWithPerf, creativesWithPerf, campaignsWithAttr float64
	if rows.Next() {
		if err := rows.Scan(&audiences, &withSegments, &segments, &segmentsWithPerf, &creativesWithPerf, &campaignsWithAttr); err != nil {
			return fmt.Errorf("failed to scan relationship stats: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	s.Relationships = []Stat{
		{Name: "audiences", Value: audiences},
		{Name: "audiences_with_segments", Value: withSegments},
		{Name: "segments", Value: segments},
		{Name: "segments_with_performance", Value: segmentsWithPerf},
		{Name: "creatives_with_performance", Value: creativesWithPerf},
		{Name: "campaigns_with_attribution", Value: campaignsWithAttr},
	}
	if audiences > 0 {
		s.Relationships = append(s.Relationships, Stat{
			Name:  "segments_per_audience",
			Value: segments / audiences,
		})
	}
	return nil
}

func reportDistribution(ctx context.Context, a adapter.Adapter, query string, dest *[]Distribution) error {
	rows, err := a.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("distribution query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var d Distribution
		if err := rows.Scan(&d.Value, &d.Count); err != nil {
			return fmt.Errorf("failed to scan distribution row: %w", err)
		}
		*dest = append(*dest, d)
	}
	return rows.Err()
}

func reportChannels(ctx context.Context, a adapter.Adapter, s *Summary) error {
	rows, err := a.Query(ctx, queryChannels)
	if err != nil {
		return fmt.Errorf("channel performance query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var c ChannelPerformance
		if err := rows.Scan(&c.Channel, &c.Impressions, &c.Clicks, &c.Conversions, &c.Cost, &c.AvgCTR, &c.AvgROI); err != nil {
			return fmt.Errorf("failed to scan channel row: %w", err)
		}
		s.Channels = append(s.Channels, c)
	}
	return rows.Err()
}
