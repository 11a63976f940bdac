package registry

import "strings"

// iconRule pairs a keyword predicate with an icon identifier. Rules are
// evaluated top to bottom against the lowercased tag and the first
// match wins, so ordering is load-bearing: a tag matching both "cloud"
// and "ai" keywords resolves to whichever rule is listed first.
type iconRule struct {
	keywords []string
	icon     string
}

var iconRules = []iconRule{
	{[]string{"python", "golang", "c++", "react"}, "code"},
	{[]string{"fastapi", "api", "backend"}, "terminal"},
	{[]string{"db", "sql", "postgresql", "mongodb", "redis", "pinecone"}, "database"},
	{[]string{"cloud", "gcp", "aws"}, "cloud"},
	{[]string{"ai", "ml", "model", "neural", "transformer"}, "brain-circuit"},
	{[]string{"ops", "pipeline", "langgraph"}, "workflow"},
	{[]string{"docker", "kubernetes", "hpc", "slurm"}, "layers"},
	{[]string{"monitor", "zabbix", "diagnostics"}, "activity"},
}

// DefaultIcon is used when no rule matches.
const DefaultIcon = "rocket"

// IconForTag resolves the display icon for a tag by substring match
// against the lowercased tag text.
func IconForTag(tag string) string {
	lowered := strings.ToLower(tag)
	for _, rule := range iconRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.icon
			}
		}
	}
	return DefaultIcon
}
