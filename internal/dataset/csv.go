package dataset

// csv.go - CSV serialization of the generated dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// WriteCSV writes the seven demo tables into dir, creating it if needed.
// Files are named <table>.csv with a header row, ready for warehouse loading.
func (d *Dataset) WriteCSV(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tables := map[string][][]string{
		"audience_demographics":    d.audienceRecords(),
		"audience_segments":        d.segmentRecords(),
		"creative_metadata":        d.creativeRecords(),
		"media_channel_engagement": d.engagementRecords(),
		"campaign_performance":     d.performanceRecords(),
		"attribution_events":       d.attributionRecords(),
		"consent_privacy":          d.consentRecords(),
	}

	for _, name := range TableNames {
		path := filepath.Join(dir, name+".csv")
		if err := writeTable(path, Headers[name], tables[name]); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

func writeTable(path string, header []string, records [][]string) error {
	f, err := os.Create(path) //nolint:gosec // path is under the configured data dir
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (d *Dataset) audienceRecords() [][]string {
	out := make([][]string, 0, len(d.Audiences))
	for _, a := range d.Audiences {
		out = append(out, []string{
			a.ID, a.AgeGroup, a.Gender, a.State, a.City, a.Country,
			a.HouseholdIncome, a.EducationLevel, a.Ethnicity,
		})
	}
	return out
}

func (d *Dataset) segmentRecords() [][]string {
	out := make([][]string, 0, len(d.Segments))
	for _, s := range d.Segments {
		out = append(out, []string{
			s.ID, s.AudienceID, s.Name, s.PrimaryInterest, s.SecondaryInterest,
			formatBool(s.Lookalike),
		})
	}
	return out
}

func (d *Dataset) creativeRecords() [][]string {
	out := make([][]string, 0, len(d.Creatives))
	for _, c := range d.Creatives {
		out = append(out, []string{
			c.ID, c.ImageURL, c.Format, c.ContentType, c.ImageTags,
			formatFloat(c.SentimentScore, 2), c.AuditStatus,
			c.CreatedDate.Format(dateLayout), c.CampaignID,
		})
	}
	return out
}

func (d *Dataset) engagementRecords() [][]string {
	out := make([][]string, 0, len(d.Engagements))
	for _, e := range d.Engagements {
		out = append(out, []string{
			e.ID, e.AudienceID, e.ChannelType, strconv.Itoa(e.Impressions),
			strconv.Itoa(e.Reach), formatFloat(e.Frequency, 2),
			formatFloat(e.EngagementRate, 4),
		})
	}
	return out
}

func (d *Dataset) performanceRecords() [][]string {
	out := make([][]string, 0, len(d.Performances))
	for _, p := range d.Performances {
		out = append(out, []string{
			p.ID, p.CampaignID, p.SegmentID, p.CreativeID, p.MediaChannel,
			strconv.Itoa(p.Impressions), strconv.Itoa(p.Clicks),
			strconv.Itoa(p.Conversions), formatFloat(p.Cost, 2),
			formatFloat(p.ROI, 2), formatFloat(p.CTR, 4),
		})
	}
	return out
}

func (d *Dataset) attributionRecords() [][]string {
	out := make([][]string, 0, len(d.Attributions))
	for _, a := range d.Attributions {
		out = append(out, []string{
			a.ID, a.CampaignID, a.AudienceID, a.MediaChannel,
			a.Timestamp.Format(timestampLayout), a.TouchpointType,
			formatFloat(a.AttributionPercent, 2), formatFloat(a.Benchmark, 2),
		})
	}
	return out
}

func (d *Dataset) consentRecords() [][]string {
	out := make([][]string, 0, len(d.Consents))
	for _, c := range d.Consents {
		out = append(out, []string{
			c.ID, c.AudienceID, c.Status, formatBool(c.PIIFlag),
			c.PrivacySignalTS.Format(timestampLayout),
			c.LastUpdated.Format(timestampLayout),
		})
	}
	return out
}

// formatBool matches the True/False spelling in the original demo CSVs.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func formatFloat(f float64, decimals int) string {
	return strconv.FormatFloat(f, 'f', decimals, 64)
}
