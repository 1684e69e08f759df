package templates

// Static keyword tables mapping profile attributes to preferred template
// style tags. Matching is case-insensitive substring containment; the tables
// deliberately key on fragments so close spellings still hit.

var industryStyleTags = map[string][]string{
	"technology": {"modern", "minimal", "clean"},
	"software":   {"modern", "minimal"},
	"finance":    {"classic", "professional"},
	"banking":    {"classic", "professional"},
	"healthcare": {"professional", "clean"},
	"education":  {"simple", "professional"},
	"marketing":  {"creative", "modern"},
	"design":     {"creative", "bold"},
	"media":      {"creative", "bold"},
	"legal":      {"classic", "professional"},
	"consulting": {"professional", "executive"},
	"government": {"classic", "simple"},
}

var experienceLevelTags = map[string][]string{
	"entry":      {"simple", "minimal", "clean"},
	"junior":     {"simple", "modern"},
	"mid":        {"modern", "professional"},
	"senior":     {"professional", "executive"},
	"executive":  {"executive", "classic"},
	"student":    {"simple", "minimal"},
	"internship": {"simple", "clean"},
}

var jobTypeTags = map[string][]string{
	"internship": {"simple", "clean"},
	"full":       {"professional", "modern"},
	"part":       {"simple", "modern"},
	"contract":   {"modern", "minimal"},
	"freelance":  {"creative", "modern"},
	"management": {"executive", "professional"},
	"remote":     {"modern", "minimal"},
}
