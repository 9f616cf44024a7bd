package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) Document {
	t.Helper()
	doc, err := ParseDocument([]byte(raw))
	require.NoError(t, err)
	return doc
}

func TestCleanValue(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "plain value", raw: "555-1234", want: "555-1234", wantOK: true},
		{name: "trims whitespace", raw: "  hello  ", want: "hello", wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "whitespace only", raw: "   ", wantOK: false},
		{name: "sentinel", raw: "<>", wantOK: false},
		{name: "tel prefixed value", raw: "tel:+15551234", want: "+15551234", wantOK: true},
		{name: "mailto prefixed value", raw: "mailto:info@example.com", want: "info@example.com", wantOK: true},
		{name: "tel prefixed sentinel", raw: "tel:<>", wantOK: false},
		{name: "mailto prefixed sentinel", raw: "mailto:<>", wantOK: false},
		{name: "uppercase prefix", raw: "TEL:+15551234", want: "+15551234", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CleanValue(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtract_CandidatePathPriority(t *testing.T) {
	// Highest-priority phone path wins even when fallbacks are present.
	doc := mustParse(t, `{
		"locations_and_hours": {"primary_location": {"phone": "555-0100"}},
		"hero": {"quick_actions": {"call_tel": "tel:555-0200"}},
		"footer": {"phone_e164": "+15550300"}
	}`)

	fields := Extract(doc)
	require.NotNil(t, fields.Phone)
	assert.Equal(t, "555-0100", *fields.Phone)
}

func TestExtract_SentinelFallsThroughToNextPath(t *testing.T) {
	doc := mustParse(t, `{
		"locations_and_hours": {"primary_location": {"phone": "<>"}},
		"hero": {"quick_actions": {"call_tel": "tel:555-0200"}}
	}`)

	fields := Extract(doc)
	require.NotNil(t, fields.Phone)
	assert.Equal(t, "555-0200", *fields.Phone)
}

func TestExtract_AllSentinelsYieldNil(t *testing.T) {
	doc := mustParse(t, `{
		"locations_and_hours": {"primary_location": {"phone": "<>"}},
		"hero": {"quick_actions": {"call_tel": "tel:<>", "email_mailto": "mailto:<>"}},
		"footer": {"phone_e164": "<>"}
	}`)

	fields := Extract(doc)
	assert.Nil(t, fields.Phone)
	assert.Nil(t, fields.Email)
}

func TestExtract_EmptyDocument(t *testing.T) {
	fields := Extract(Document{})

	assert.Nil(t, fields.Name)
	assert.Nil(t, fields.Website)
	assert.Nil(t, fields.Phone)
	assert.Nil(t, fields.About)
	assert.Empty(t, fields.Badges)
	assert.Empty(t, fields.SocialLinks)
}

func TestExtract_FullProfile(t *testing.T) {
	doc := mustParse(t, `{
		"business_profile": {
			"name": "Bob's Dumpsters",
			"website": "https://bobsdumpsters.example",
			"contact_email": "bob@example.com"
		},
		"locations_and_hours": {"primary_location": {
			"phone": "555-0100",
			"address": "123 Main St",
			"city": "Springfield",
			"state": "IL",
			"zip": "62701"
		}},
		"hero": {"tagline": "Dumpsters delivered same day"},
		"about": {"description": "Family owned since 1988."},
		"services_and_pricing": {"pricing_notes": "From $250/week"}
	}`)

	fields := Extract(doc)

	require.NotNil(t, fields.Name)
	assert.Equal(t, "Bob's Dumpsters", *fields.Name)
	require.NotNil(t, fields.Email)
	assert.Equal(t, "bob@example.com", *fields.Email)
	require.NotNil(t, fields.City)
	assert.Equal(t, "Springfield", *fields.City)
	require.NotNil(t, fields.Tagline)
	assert.Equal(t, "Dumpsters delivered same day", *fields.Tagline)
	require.NotNil(t, fields.About)
	assert.Equal(t, "Family owned since 1988.", *fields.About)
	require.NotNil(t, fields.PricingInfo)
	assert.Equal(t, "From $250/week", *fields.PricingInfo)
}

func TestExtract_BadgesAndSocialLinks(t *testing.T) {
	doc := mustParse(t, `{
		"trust_badges": {"items": ["Licensed", "Insured", "<>"]},
		"social": {
			"facebook": "https://facebook.com/bobs",
			"instagram": "<>",
			"yelp": "https://yelp.com/biz/bobs"
		}
	}`)

	fields := Extract(doc)

	assert.Equal(t, []string{"Licensed", "Insured"}, fields.Badges)
	assert.Equal(t, map[string]string{
		"facebook": "https://facebook.com/bobs",
		"yelp":     "https://yelp.com/biz/bobs",
	}, fields.SocialLinks)
}

func TestDocument_Lookup(t *testing.T) {
	doc := mustParse(t, `{
		"a": {"b": [{"c": "deep"}, {"c": "deeper"}]},
		"n": 3
	}`)

	v, ok := doc.Lookup("a.b.1.c")
	require.True(t, ok)
	assert.Equal(t, "deeper", v)

	_, ok = doc.Lookup("a.b.5.c")
	assert.False(t, ok)

	_, ok = doc.Lookup("a.missing")
	assert.False(t, ok)

	_, ok = doc.Lookup("n.x")
	assert.False(t, ok)

	s, ok := doc.StringAt("a.b.0.c")
	require.True(t, ok)
	assert.Equal(t, "deep", s)

	// non-string leaves are not coerced
	_, ok = doc.StringAt("n")
	assert.False(t, ok)
}
