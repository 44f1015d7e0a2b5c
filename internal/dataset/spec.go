// Package dataset generates the synthetic audience-analytics demo tables.
//
// The output is deterministic for a given seed so that demo environments,
// docs, and tests all see identical data.
package dataset

// TableNames lists the CSV tables the generator emits, in generation order.
// Campaigns are generated to link creatives and attribution events but are
// not written as their own CSV, matching the demo's seven-table layout.
var TableNames = []string{
	"audience_demographics",
	"audience_segments",
	"creative_metadata",
	"media_channel_engagement",
	"campaign_performance",
	"attribution_events",
	"consent_privacy",
}

// Headers maps each emitted table to its CSV header row.
var Headers = map[string][]string{
	"audience_demographics": {
		"audience_id", "age_group", "gender", "state", "city", "country",
		"household_income", "education_level", "ethnicity",
	},
	"audience_segments": {
		"segment_id", "audience_id", "segment_name", "primary_interest",
		"secondary_interest", "lookalike_segment_flag",
	},
	"creative_metadata": {
		"creative_id", "image_url", "creative_format", "content_type",
		"image_tags", "sentiment_score", "audit_status", "created_date",
		"campaign_id",
	},
	"media_channel_engagement": {
		"engagement_id", "audience_id", "channel_type", "impressions",
		"reach", "frequency", "engagement_rate",
	},
	"campaign_performance": {
		"performance_id", "campaign_id", "segment_id", "creative_id",
		"media_channel", "impressions", "clicks", "conversions", "cost",
		"ROI", "CTR",
	},
	"attribution_events": {
		"attribution_id", "campaign_id", "audience_id", "media_channel",
		"timestamp", "touchpoint_type", "attribution_percent", "benchmark",
	},
	"consent_privacy": {
		"consent_id", "audience_id", "consent_status", "PII_flag",
		"privacy_signal_timestamp", "last_updated",
	},
}

// Value pools for the synthetic records.
var (
	ageGroups    = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}
	genders      = []string{"Male", "Female", "Non-binary", "Prefer not to say"}
	incomeRanges = []string{"<$25k", "$25k-$50k", "$50k-$75k", "$75k-$100k", "$100k-$150k", "$150k+"}
	educations   = []string{"High School", "Some College", "Bachelor's", "Master's", "Doctorate", "Trade School"}
	ethnicities  = []string{"White", "Black/African American", "Hispanic/Latino", "Asian", "Native American", "Mixed", "Other"}

	states = []string{
		"CA", "TX", "FL", "NY", "PA", "IL", "OH", "GA", "NC", "MI",
		"NJ", "VA", "WA", "AZ", "MA", "TN", "IN", "MD", "MO", "WI",
	}
	citiesByState = map[string][]string{
		"CA": {"Los Angeles", "San Francisco", "San Diego", "Sacramento"},
		"TX": {"Houston", "Dallas", "Austin", "San Antonio"},
		"NY": {"New York City", "Albany", "Buffalo", "Rochester"},
		"FL": {"Miami", "Orlando", "Tampa", "Jacksonville"},
	}
	fallbackCities = []string{"Springfield", "Riverside", "Franklin", "Clinton", "Fairview", "Madison"}

	primaryInterests = []string{
		"Fashion & Beauty", "Technology", "Travel", "Food & Dining", "Sports", "Entertainment",
		"Health & Wellness", "Home & Garden", "Automotive", "Finance", "Education", "Gaming",
		"Music", "Art & Culture", "Outdoor Activities", "Fitness", "Parenting", "Pets",
		"Real Estate", "Business", "Politics", "Environment", "Science", "Books",
	}
	secondaryInterests = []string{
		"Luxury Goods", "Budget Shopping", "Eco-Friendly", "DIY Projects", "Social Causes",
		"Celebrity News", "Investment", "Career Development", "Local Events", "International News",
		"Photography", "Cooking", "Streaming", "Mobile Apps", "E-commerce", "Social Media",
	}
	segmentTiers = []string{"Premium", "Value", "Emerging", "Core", "Niche"}

	channels         = []string{"TV", "Streaming", "Digital", "Social", "Retail", "Radio", "Print", "OOH", "Email"}
	creativeFormats  = []string{"Banner", "Video", "Native", "Rich Media", "Audio", "Display", "Social Post", "CTV"}
	contentTypes     = []string{"Product Shot", "Lifestyle", "Promotional", "Educational", "User Generated", "Brand Story", "Testimonial"}
	assetExtensions  = []string{"jpg", "png", "mp4", "gif"}
	touchpointTypes  = []string{"View", "Click", "Impression", "Engagement", "Conversion", "Share", "Comment"}
	consentStatuses  = []string{"Opt-in", "Opt-out", "Pending", "Expired"}
	consentWeights   = []int{70, 15, 10, 5}
	auditStatuses    = []string{"Approved", "Pending", "Rejected", "Under Review"}
	auditWeights     = []int{70, 15, 5, 10}
	campaignQuarters = []string{"Q1", "Q2", "Q3", "Q4"}
	campaignThemes   = []string{"Brand Awareness", "Product Launch", "Conversion", "Retargeting"}
	campaignStatuses = []string{"Active", "Completed", "Paused"}

	contentTypeTags = map[string][]string{
		"Product Shot":   {"product", "clean", "minimalist", "brand"},
		"Lifestyle":      {"people", "lifestyle", "authentic", "emotional"},
		"Promotional":    {"sale", "discount", "offer", "urgent"},
		"Educational":    {"informative", "tutorial", "how-to", "expert"},
		"User Generated": {"real", "community", "user", "authentic"},
		"Brand Story":    {"heritage", "story", "values", "mission"},
		"Testimonial":    {"review", "customer", "satisfaction", "trust"},
	}
	extraTags = []string{"colorful", "bold", "subtle", "modern", "classic", "trendy", "professional"}
)
