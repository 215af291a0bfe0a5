package candidate

import (
	"fmt"
	"strings"

	"github.com/meetgrid/affinity/internal/domain/match"
	"github.com/meetgrid/affinity/internal/domain/profile"
)

// buildQuery translates coarse filters into an FT.SEARCH query over the
// profile index. Fine-grained selection and ordering happen in scoring;
// the query only shapes the pool.
func buildQuery(actorID string, kind profile.Kind, f match.Filters) string {
	parts := []string{buildTagFilter("kind", string(kind))}
	// Anonymous requests have no actor to exclude; an empty TAG clause
	// is an FT.SEARCH syntax error.
	if actorID != "" {
		parts = append(parts, "-"+buildTagFilter("id", actorID))
	}

	if f.Country != "" {
		parts = append(parts, buildTagFilter("country", f.Country))
	}
	if f.City != "" {
		parts = append(parts, buildTagFilter("city", f.City))
	}
	if f.AccountType != "" {
		parts = append(parts, buildTagFilter("account_type", f.AccountType))
	}

	parts = appendTagList(parts, "experience_level", f.ExperienceLevels)
	parts = appendTagList(parts, "industry_ids", f.IndustryIDs)
	parts = appendTagList(parts, "identity_ids", f.IdentityIDs)
	parts = appendTagList(parts, "offer_category_ids", f.CategoryIDs)
	parts = appendTagList(parts, "offer_subcategory_ids", f.SubcategoryIDs)
	parts = appendTagList(parts, "goal_ids", f.GoalIDs)
	parts = appendTagList(parts, "want_category_ids", f.AudienceCategoryIDs)
	parts = appendTagList(parts, "want_subcategory_ids", f.AudienceSubcategoryIDs)
	parts = appendTagList(parts, "want_subsubcategory_ids", f.AudienceSubsubcategoryIDs)

	if f.Text != "" {
		escaped := escapeQuery(f.Text)
		parts = append(parts, fmt.Sprintf("(@headline:(%s) | @about:(%s))", escaped, escaped))
	}

	// Without explicit filters the pool is the whole corpus; gate it
	// to profiles with at least some descriptive content.
	if f.IsZero() {
		parts = append(parts, buildTagFilter("has_content", "1"))
	}

	return strings.Join(parts, " ")
}

// buildTagFilter renders a single-value TAG condition.
func buildTagFilter(field, value string) string {
	return fmt.Sprintf("@%s:{%s}", field, tagEscaper.Replace(value))
}

// appendTagList renders an any-of TAG condition for an id list.
func appendTagList(parts []string, field string, values []string) []string {
	if len(values) == 0 {
		return parts
	}
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = tagEscaper.Replace(v)
	}
	return append(parts, fmt.Sprintf("@%s:{%s}", field, strings.Join(escaped, " | ")))
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
	"|", "\\|",
)

func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)
