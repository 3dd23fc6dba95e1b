package mood

import (
	"sort"
	"strings"
)

// Profile controls the character of a locally synthesized clip.
type Profile struct {
	Name        string
	Scale       string
	TempoFactor float64 // seconds per beat step
	Root        float64 // Hz
}

// profiles holds the named mood profiles. Each profile plays on the scale of
// the same name.
var profiles = map[string]Profile{
	"happy":    {Name: "happy", Scale: "happy", TempoFactor: 0.5, Root: DefaultRoot},
	"sad":      {Name: "sad", Scale: "sad", TempoFactor: 1.2, Root: 196.00},
	"tense":    {Name: "tense", Scale: "tense", TempoFactor: 0.4, Root: DefaultRoot},
	"peaceful": {Name: "peaceful", Scale: "peaceful", TempoFactor: 1.5, Root: DefaultRoot},
	"scary":    {Name: "scary", Scale: "scary", TempoFactor: 0.5, Root: DefaultRoot},
}

// keywordRule routes text containing any of its keywords to a profile.
type keywordRule struct {
	keywords []string
	profile  string
}

// rules are checked in order; the first match wins.
var rules = []keywordRule{
	{keywords: []string{"sad", "melancholic"}, profile: "sad"},
	{keywords: []string{"tense"}, profile: "tense"},
	{keywords: []string{"peaceful"}, profile: "peaceful"},
}

// Default returns the profile used when no keyword matches.
func Default() Profile {
	return profiles["happy"]
}

// Classify maps free text to a mood profile by case-insensitive substring
// match. Every input maps to exactly one profile.
func Classify(text string) Profile {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return profiles[r.profile]
			}
		}
	}
	return Default()
}

// Lookup returns the named profile.
func Lookup(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// Names returns all profile names in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
