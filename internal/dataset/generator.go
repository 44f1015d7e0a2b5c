package dataset

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Config controls dataset size and reproducibility.
type Config struct {
	Seed       int64
	Audiences  int
	Creatives  int
	Campaigns  int
	Records    int // campaign performance rows
	Events     int // attribution events
	Anchor     time.Time
}

// DefaultConfig returns the demo's published record counts. Seed 42 matches
// the original dataset shipped with the demo.
func DefaultConfig() Config {
	return Config{
		Seed:      42,
		Audiences: 1200,
		Creatives: 1500,
		Campaigns: 400,
		Records:   5000,
		Events:    8000,
		Anchor:    time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Audience is one audience_demographics row.
type Audience struct {
	ID              string
	AgeGroup        string
	Gender          string
	State           string
	City            string
	Country         string
	HouseholdIncome string
	EducationLevel  string
	Ethnicity       string
}

// Segment is one audience_segments row.
type Segment struct {
	ID                string
	AudienceID        string
	Name              string
	PrimaryInterest   string
	SecondaryInterest string
	Lookalike         bool
}

// Creative is one creative_metadata row.
type Creative struct {
	ID             string
	ImageURL       string
	Format         string
	ContentType    string
	ImageTags      string
	SentimentScore float64
	AuditStatus    string
	CreatedDate    time.Time
	CampaignID     string
}

// Campaign links creatives, performance rows, and attribution events. It is
// generated but not emitted as its own CSV.
type Campaign struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Budget    int
	Status    string
}

// Engagement is one media_channel_engagement row.
type Engagement struct {
	ID             string
	AudienceID     string
	ChannelType    string
	Impressions    int
	Reach          int
	Frequency      float64
	EngagementRate float64
}

// Performance is one campaign_performance row. ROI and CTR keep their
// metric-style uppercase column names in the emitted CSV.
type Performance struct {
	ID           string
	CampaignID   string
	SegmentID    string
	CreativeID   string
	MediaChannel string
	Impressions  int
	Clicks       int
	Conversions  int
	Cost         float64
	ROI          float64
	CTR          float64
}

// Attribution is one attribution_events row.
type Attribution struct {
	ID                 string
	CampaignID         string
	AudienceID         string
	MediaChannel       string
	Timestamp          time.Time
	TouchpointType     string
	AttributionPercent float64
	Benchmark          float64
}

// Consent is one consent_privacy row.
type Consent struct {
	ID              string
	AudienceID      string
	Status          string
	PIIFlag         bool
	PrivacySignalTS time.Time
	LastUpdated     time.Time
}

// Dataset holds one generated demo dataset with all relationships intact.
type Dataset struct {
	Audiences    []Audience
	Segments     []Segment
	Creatives    []Creative
	Campaigns    []Campaign
	Engagements  []Engagement
	Performances []Performance
	Attributions []Attribution
	Consents     []Consent
}

// TotalRecords counts every emitted row across the seven CSV tables.
func (d *Dataset) TotalRecords() int {
	return len(d.Audiences) + len(d.Segments) + len(d.Creatives) +
		len(d.Engagements) + len(d.Performances) + len(d.Attributions) +
		len(d.Consents)
}

// TableCounts returns the row count per emitted CSV table.
func (d *Dataset) TableCounts() map[string]int {
	return map[string]int{
		"audience_demographics":    len(d.Audiences),
		"audience_segments":        len(d.Segments),
		"creative_metadata":        len(d.Creatives),
		"media_channel_engagement": len(d.Engagements),
		"campaign_performance":     len(d.Performances),
		"attribution_events":       len(d.Attributions),
		"consent_privacy":          len(d.Consents),
	}
}

// Generator produces Datasets from a Config.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a Generator. Zero-valued counts fall back to the defaults.
func New(cfg Config) *Generator {
	def := DefaultConfig()
	if cfg.Audiences <= 0 {
		cfg.Audiences = def.Audiences
	}
	if cfg.Creatives <= 0 {
		cfg.Creatives = def.Creatives
	}
	if cfg.Campaigns <= 0 {
		cfg.Campaigns = def.Campaigns
	}
	if cfg.Records <= 0 {
		cfg.Records = def.Records
	}
	if cfg.Events <= 0 {
		cfg.Events = def.Events
	}
	if cfg.Anchor.IsZero() {
		cfg.Anchor = def.Anchor
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generate builds a complete dataset. Foreign keys always point at generated
// parents: segments and consents fan out from audiences, performance rows
// draw from generated segments and creatives, attribution events from
// campaigns and audiences.
func (g *Generator) Generate() *Dataset {
	d := &Dataset{}
	d.Audiences = g.audiences()
	d.Segments = g.segments(d.Audiences)
	d.Creatives = g.creatives()
	d.Campaigns = g.campaigns()
	g.linkCreatives(d.Creatives, d.Campaigns)
	d.Engagements = g.engagements(d.Audiences)
	d.Performances = g.performances(d.Segments, d.Creatives)
	d.Attributions = g.attributions(d.Campaigns, d.Audiences)
	d.Consents = g.consents(d.Audiences)
	return d
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

// pickWeighted picks from pool using integer weights.
func (g *Generator) pickWeighted(pool []string, weights []int) string {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := g.rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return pool[i]
		}
		n -= w
	}
	return pool[len(pool)-1]
}

func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// dateWithin returns a day-granular time between anchor-daysBack and
// anchor-daysForward days.
func (g *Generator) dateWithin(daysBack, daysEnd int) time.Time {
	span := daysBack - daysEnd
	offset := g.rng.Intn(span + 1)
	return g.cfg.Anchor.AddDate(0, 0, -(daysBack - offset))
}

// timeWithin returns a second-granular time inside [start, end].
func (g *Generator) timeWithin(start, end time.Time) time.Time {
	span := end.Unix() - start.Unix()
	if span <= 0 {
		return start
	}
	return time.Unix(start.Unix()+g.rng.Int63n(span+1), 0).UTC()
}

func (g *Generator) audiences() []Audience {
	out := make([]Audience, 0, g.cfg.Audiences)
	for i := 1; i <= g.cfg.Audiences; i++ {
		state := g.pick(states)
		cities, ok := citiesByState[state]
		if !ok {
			cities = fallbackCities
		}
		out = append(out, Audience{
			ID:              fmt.Sprintf("AUD_%06d", i),
			AgeGroup:        g.pick(ageGroups),
			Gender:          g.pick(genders),
			State:           state,
			City:            g.pick(cities),
			Country:         "USA",
			HouseholdIncome: g.pick(incomeRanges),
			EducationLevel:  g.pick(educations),
			Ethnicity:       g.pick(ethnicities),
		})
	}
	return out
}

func (g *Generator) segments(audiences []Audience) []Segment {
	var out []Segment
	counter := 1
	for _, a := range audiences {
		for n := g.between(1, 4); n > 0; n-- {
			out = append(out, Segment{
				ID:                fmt.Sprintf("SEG_%06d", counter),
				AudienceID:        a.ID,
				Name:              fmt.Sprintf("%s %s Enthusiasts", g.pick(segmentTiers), g.pick(primaryInterests)),
				PrimaryInterest:   g.pick(primaryInterests),
				SecondaryInterest: g.pick(secondaryInterests),
				Lookalike:         g.rng.Intn(2) == 0,
			})
			counter++
		}
	}
	return out
}

func (g *Generator) creatives() []Creative {
	out := make([]Creative, 0, g.cfg.Creatives)
	for i := 1; i <= g.cfg.Creatives; i++ {
		contentType := g.pick(contentTypes)
		tags := append([]string{}, contentTypeTags[contentType]...)
		for n := g.between(1, 3); n > 0; n-- {
			tags = append(tags, g.pick(extraTags))
		}
		id := fmt.Sprintf("CRE_%06d", i)
		out = append(out, Creative{
			ID:             id,
			ImageURL:       fmt.Sprintf("https://demo-assets.media-agency.com/creatives/%s.%s", id, g.pick(assetExtensions)),
			Format:         g.pick(creativeFormats),
			ContentType:    contentType,
			ImageTags:      strings.Join(tags, ","),
			SentimentScore: round2(g.uniform(-0.8, 0.9)),
			AuditStatus:    g.pickWeighted(auditStatuses, auditWeights),
			CreatedDate:    g.dateWithin(730, 0),
		})
	}
	return out
}

func (g *Generator) campaigns() []Campaign {
	out := make([]Campaign, 0, g.cfg.Campaigns)
	for i := 1; i <= g.cfg.Campaigns; i++ {
		out = append(out, Campaign{
			ID:        fmt.Sprintf("CAM_%06d", i),
			Name:      fmt.Sprintf("%s %s Campaign", g.pick(campaignQuarters), g.pick(campaignThemes)),
			StartDate: g.dateWithin(365, 30),
			EndDate:   g.dateWithin(29, 0),
			Budget:    g.between(10000, 500000),
			Status:    g.pick(campaignStatuses),
		})
	}
	return out
}

// linkCreatives assigns every creative to a campaign, round-robin with the
// remainder spread over the first campaigns.
func (g *Generator) linkCreatives(creatives []Creative, campaigns []Campaign) {
	if len(campaigns) == 0 {
		return
	}
	per := len(creatives) / len(campaigns)
	extra := len(creatives) % len(campaigns)

	idx := 0
	for i, c := range campaigns {
		n := per
		if i < extra {
			n++
		}
		if n == 0 {
			n = 1
		}
		for ; n > 0 && idx < len(creatives); n-- {
			creatives[idx].CampaignID = c.ID
			idx++
		}
	}
	// If campaigns outnumber creatives some creatives carry multiple links in
	// the original; here every creative already has exactly one campaign.
	for i := range creatives {
		if creatives[i].CampaignID == "" {
			creatives[i].CampaignID = campaigns[g.rng.Intn(len(campaigns))].ID
		}
	}
}

// Channel-dependent ranges for engagement metrics.
var (
	impressionRanges = map[string][2]int{
		"TV":        {50000, 200000},
		"Streaming": {10000, 80000},
		"Digital":   {5000, 50000},
		"Social":    {1000, 25000},
		"Retail":    {500, 5000},
	}
	engagementRateRanges = map[string][2]float64{
		"Social":    {0.02, 0.08},
		"Digital":   {0.01, 0.05},
		"Streaming": {0.005, 0.02},
		"TV":        {0.001, 0.01},
	}
	ctrCeilings = map[string]float64{
		"Social":  0.025,
		"Digital": 0.015,
		"Email":   0.035,
	}
	cpmRanges = map[string][2]float64{
		"TV":        {15, 40},
		"Digital":   {2, 8},
		"Social":    {5, 15},
		"Streaming": {10, 25},
	}
)

func (g *Generator) engagements(audiences []Audience) []Engagement {
	var out []Engagement
	counter := 1
	for _, a := range audiences {
		for _, channel := range g.sampleChannels(g.between(2, 5)) {
			impRange, ok := impressionRanges[channel]
			if !ok {
				impRange = [2]int{1000, 20000}
			}
			impressions := g.between(impRange[0], impRange[1])
			reach := int(float64(impressions) * g.uniform(0.6, 0.9))
			frequency := 1.0
			if reach > 0 {
				frequency = round2(float64(impressions) / float64(reach))
			}
			rateRange, ok := engagementRateRanges[channel]
			if !ok {
				rateRange = [2]float64{0.001, 0.03}
			}
			out = append(out, Engagement{
				ID:             fmt.Sprintf("ENG_%06d", counter),
				AudienceID:     a.ID,
				ChannelType:    channel,
				Impressions:    impressions,
				Reach:          reach,
				Frequency:      frequency,
				EngagementRate: round4(g.uniform(rateRange[0], rateRange[1])),
			})
			counter++
		}
	}
	return out
}

// sampleChannels draws n distinct channels.
func (g *Generator) sampleChannels(n int) []string {
	perm := g.rng.Perm(len(channels))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, channels[idx])
	}
	return out
}

func (g *Generator) performances(segments []Segment, creatives []Creative) []Performance {
	out := make([]Performance, 0, g.cfg.Records)
	for i := 1; i <= g.cfg.Records; i++ {
		segment := segments[g.rng.Intn(len(segments))]
		creative := creatives[g.rng.Intn(len(creatives))]
		channel := g.pick(channels)

		impressions := g.between(1000, 100000)
		ceiling, ok := ctrCeilings[channel]
		if !ok {
			ceiling = 0.02
		}
		ctr := g.uniform(0.005, ceiling)
		clicks := int(float64(impressions) * ctr)
		conversions := int(float64(clicks) * g.uniform(0.01, 0.05))

		cpmRange, ok := cpmRanges[channel]
		if !ok {
			cpmRange = [2]float64{2, 10}
		}
		cost := float64(impressions) / 1000 * g.uniform(cpmRange[0], cpmRange[1])
		roi := 0.0
		if cost > 0 {
			roi = (float64(conversions)*g.uniform(50, 200) - cost) / cost
		}

		out = append(out, Performance{
			ID:           fmt.Sprintf("PERF_%06d", i),
			CampaignID:   creative.CampaignID,
			SegmentID:    segment.ID,
			CreativeID:   creative.ID,
			MediaChannel: channel,
			Impressions:  impressions,
			Clicks:       clicks,
			Conversions:  conversions,
			Cost:         round2(cost),
			ROI:          round2(roi),
			CTR:          round4(ctr),
		})
	}
	return out
}

func (g *Generator) attributions(campaigns []Campaign, audiences []Audience) []Attribution {
	out := make([]Attribution, 0, g.cfg.Events)
	for i := 1; i <= g.cfg.Events; i++ {
		campaign := campaigns[g.rng.Intn(len(campaigns))]
		audience := audiences[g.rng.Intn(len(audiences))]
		out = append(out, Attribution{
			ID:                 fmt.Sprintf("ATTR_%06d", i),
			CampaignID:         campaign.ID,
			AudienceID:         audience.ID,
			MediaChannel:       g.pick(channels),
			Timestamp:          g.timeWithin(campaign.StartDate, campaign.EndDate),
			TouchpointType:     g.pick(touchpointTypes),
			AttributionPercent: round2(g.uniform(0.1, 1.0)),
			Benchmark:          round2(g.uniform(0.05, 0.8)),
		})
	}
	return out
}

func (g *Generator) consents(audiences []Audience) []Consent {
	out := make([]Consent, 0, len(audiences))
	for i, a := range audiences {
		out = append(out, Consent{
			ID:              fmt.Sprintf("CONS_%06d", i+1),
			AudienceID:      a.ID,
			Status:          g.pickWeighted(consentStatuses, consentWeights),
			PIIFlag:         g.rng.Intn(2) == 0,
			PrivacySignalTS: g.timeWithin(g.cfg.Anchor.AddDate(0, 0, -730), g.cfg.Anchor),
			LastUpdated:     g.timeWithin(g.cfg.Anchor.AddDate(0, 0, -30), g.cfg.Anchor),
		})
	}
	return out
}

func round2(f float64) float64 {
	return float64(int64(f*100+sign(f)*0.5)) / 100
}

func round4(f float64) float64 {
	return float64(int64(f*10000+sign(f)*0.5)) / 10000
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
