package candidate

import (
	"strconv"
	"strings"
	"time"

	"github.com/meetgrid/affinity/internal/domain/profile"
)

// Profile hash field names. The hash also carries denormalized tag
// fields for the search index; those are not read back here because
// the association sets are the authoritative scoring inputs.
const (
	fieldKind            = "kind"
	fieldName            = "name"
	fieldHeadline        = "headline"
	fieldAbout           = "about"
	fieldCountry         = "country"
	fieldCity            = "city"
	fieldAccountType     = "account_type"
	fieldExperienceLevel = "experience_level"
	fieldIndustryIDs     = "industry_ids"
	fieldCreatedAt       = "created_at"
	fieldBidirectional   = "match_bidirectional"
	fieldFormula         = "match_formula"
)

// parseProfile converts a profile hash into a domain profile. Missing
// or malformed fields degrade to zero values; the scoring layer treats
// those as absent data, not as errors.
func parseProfile(id string, fields map[string]string) profile.Profile {
	p := profile.Profile{
		ID:              id,
		Kind:            profile.Kind(fields[fieldKind]),
		Name:            fields[fieldName],
		Headline:        fields[fieldHeadline],
		About:           fields[fieldAbout],
		Country:         fields[fieldCountry],
		City:            fields[fieldCity],
		AccountType:     fields[fieldAccountType],
		ExperienceLevel: fields[fieldExperienceLevel],
	}

	if raw := fields[fieldIndustryIDs]; raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				p.IndustryIDs = append(p.IndustryIDs, part)
			}
		}
	}

	if raw := fields[fieldCreatedAt]; raw != "" {
		if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
			p.CreatedAt = time.Unix(unix, 0).UTC()
		}
	}

	if raw := fields[fieldBidirectional]; raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			p.Prefs.Bidirectional = &b
		}
	}
	p.Prefs.Formula = fields[fieldFormula]

	return p
}
