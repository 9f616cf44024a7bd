package intake

// Fields is the flat extraction result. Nil pointers mean the document had
// no usable value for that field; callers must not write blanks for them.
type Fields struct {
	Name        *string
	Website     *string
	Phone       *string
	Email       *string
	Address     *string
	City        *string
	State       *string
	Zip         *string
	Tagline     *string
	About       *string
	PricingInfo *string
	Badges      []string
	SocialLinks map[string]string
}

// candidatePaths lists, per field, the document paths to try in priority
// order. Older and newer capture conventions are both represented; the
// first present, non-sentinel value wins.
var candidatePaths = map[string][]string{
	"name": {
		"business_profile.name",
		"hero.business_name",
		"meta.company_name",
	},
	"website": {
		"business_profile.website",
		"meta.website",
		"hero.website_url",
	},
	"phone": {
		"locations_and_hours.primary_location.phone",
		"hero.quick_actions.call_tel",
		"footer.phone_e164",
	},
	"email": {
		"business_profile.contact_email",
		"hero.quick_actions.email_mailto",
		"footer.email",
	},
	"address": {
		"locations_and_hours.primary_location.address",
		"footer.address",
	},
	"city": {
		"locations_and_hours.primary_location.city",
	},
	"state": {
		"locations_and_hours.primary_location.state",
	},
	"zip": {
		"locations_and_hours.primary_location.zip",
		"locations_and_hours.primary_location.postal_code",
	},
	"tagline": {
		"hero.tagline",
		"meta.tagline",
	},
	"about": {
		"about.description",
		"about_us.body",
		"meta.description",
	},
	"pricing_info": {
		"services_and_pricing.pricing_notes",
		"pricing.summary",
	},
}

var socialPlatforms = []string{"facebook", "instagram", "google", "yelp", "linkedin", "tiktok", "youtube"}

// Extract pulls the flat business attributes out of an intake document.
// It is total: malformed or partial documents yield fewer fields, never an
// error.
func Extract(doc Document) Fields {
	f := Fields{
		Name:        extractString(doc, "name"),
		Website:     extractString(doc, "website"),
		Phone:       extractString(doc, "phone"),
		Email:       extractString(doc, "email"),
		Address:     extractString(doc, "address"),
		City:        extractString(doc, "city"),
		State:       extractString(doc, "state"),
		Zip:         extractString(doc, "zip"),
		Tagline:     extractString(doc, "tagline"),
		About:       extractString(doc, "about"),
		PricingInfo: extractString(doc, "pricing_info"),
	}
	f.Badges = extractBadges(doc)
	f.SocialLinks = extractSocialLinks(doc)
	return f
}

func extractString(doc Document, field string) *string {
	for _, path := range candidatePaths[field] {
		raw, ok := doc.StringAt(path)
		if !ok {
			continue
		}
		if v, ok := CleanValue(raw); ok {
			return &v
		}
	}
	return nil
}

func extractBadges(doc Document) []string {
	var badges []string
	for _, path := range []string{"trust_badges.items", "hero.badges"} {
		arr, ok := doc.ArrayAt(path)
		if !ok {
			continue
		}
		for _, item := range arr {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if v, ok := CleanValue(s); ok {
				badges = append(badges, v)
			}
		}
		if len(badges) > 0 {
			break
		}
	}
	return badges
}

func extractSocialLinks(doc Document) map[string]string {
	links := make(map[string]string)
	for _, platform := range socialPlatforms {
		for _, path := range []string{"social." + platform, "footer.social." + platform} {
			raw, ok := doc.StringAt(path)
			if !ok {
				continue
			}
			if v, ok := CleanValue(raw); ok {
				links[platform] = v
				break
			}
		}
	}
	if len(links) == 0 {
		return nil
	}
	return links
}
