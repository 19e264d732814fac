package columns

import (
	"fmt"
	"slices"

	"github.com/mariokirby1703/pemon-information-table/levels"
)

// Registry is the column configuration of one list. The same registry code
// serves every list; the list's Variant decides which optional columns exist.
type Registry struct {
	list     levels.ListData
	specs    []*Spec
	defaults map[string][]ClassRule
}

type Option func(*options)

type options struct {
	classNames map[string]string
}

// WithClassNames overrides the class name used for vocabulary values, keyed
// by value, e.g. {"Extreme Demon": "extreme-demon"}.
func WithClassNames(names map[string]string) Option {
	return func(o *options) {
		o.classNames = names
	}
}

func NewRegistry(list levels.ListData, opts ...Option) (*Registry, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	difficultyRules, err := vocabRules("difficulty", levels.Difficulties, o.classNames)
	if err != nil {
		return nil, fmt.Errorf("difficulty rules: %w", err)
	}
	ratingRules, err := vocabRules("rating", levels.Ratings, o.classNames)
	if err != nil {
		return nil, fmt.Errorf("rating rules: %w", err)
	}

	v := list.Variant
	specs := []*Spec{
		{Field: "number", Header: "#", Width: 70, Comparator: byInt(func(l levels.Level) int { return l.Number })},
		{Field: "level", Header: "Level", Width: 200, Comparator: byText(func(l levels.Level) string { return l.Level }), Renderer: renderShowcaseLink},
		{Field: "creator", Header: "Creator", Width: 160, Comparator: byText(func(l levels.Level) string { return l.Creator })},
		{Field: "ID", Header: "ID", Width: 110, Comparator: byInt(func(l levels.Level) int { return l.ID })},
		{Field: "difficulty", Header: "Difficulty", Width: 140, Comparator: byRank(levels.Difficulties, func(l levels.Level) string { return l.Difficulty }), ClassGroup: GroupDifficulty, ClassRules: difficultyRules},
		{Field: "rating", Header: "Rating", Width: 120, Comparator: byRank(levels.Ratings, func(l levels.Level) string { return l.Rating }), ClassGroup: GroupRating, ClassRules: ratingRules},
		{Field: "userCoins", Header: "Coins", Width: 90, Comparator: byInt(func(l levels.Level) int { return l.UserCoins })},
	}
	if v.Length {
		specs = append(specs, &Spec{Field: "length", Header: "Length", Width: 100, Comparator: byRank(levels.Lengths, func(l levels.Level) string { return l.Length })})
	}
	if v.EstimatedTime {
		specs = append(specs, &Spec{Field: "estimatedTime", Header: "Est. Time", Width: 120, Comparator: byOptional(func(l levels.Level) *int { return l.EstimatedTime }), Formatter: formatEstimatedTime})
	}
	specs = append(specs, &Spec{Field: "objects", Header: "Objects", Width: 110, Comparator: byInt(func(l levels.Level) int { return l.Objects })})
	if v.Checkpoints {
		specs = append(specs, &Spec{Field: "checkpoints", Header: "Checkpoints", Width: 120, Comparator: byOptional(func(l levels.Level) *int { return l.Checkpoints })})
	}
	specs = append(specs,
		&Spec{Field: "twop", Header: "2P", Width: 70, Comparator: func(a, b levels.Level) int { return CompareBool(a.TwoPlayer, b.TwoPlayer) }, Renderer: renderCheckbox(func(l levels.Level) bool { return l.TwoPlayer })},
		&Spec{Field: "primarySong", Header: "Primary Song", Width: 180, Comparator: byStripped(func(l levels.Level) string { return l.PrimarySong })},
		&Spec{Field: "artist", Header: "Artist", Width: 150, Comparator: byStripped(func(l levels.Level) string { return l.Artist })},
		&Spec{Field: "songID", Header: "Song ID", Width: 110, Comparator: func(a, b levels.Level) int { return CompareSongID(a.SongID, b.SongID) }},
	)
	if v.SongCounts {
		specs = append(specs,
			&Spec{Field: "songs", Header: "Songs", Width: 90, Comparator: byOptional(func(l levels.Level) *int { return l.Songs })},
			&Spec{Field: "SFX", Header: "SFX", Width: 90, Comparator: byOptional(func(l levels.Level) *int { return l.SFX })},
		)
	}
	if v.RateDate {
		specs = append(specs, &Spec{Field: "rateDate", Header: "Rate Date", Width: 120, Comparator: func(a, b levels.Level) int { return CompareRateDate(a.RateDate, b.RateDate) }})
	}

	r := &Registry{list: list, specs: specs, defaults: make(map[string][]ClassRule)}
	for _, spec := range specs {
		if spec.ClassGroup != "" {
			r.defaults[spec.Field] = slices.Clone(spec.ClassRules)
		}
	}
	return r, nil
}

func (r *Registry) List() levels.ListData {
	return r.list
}

// Specs returns the live column specs in display order.
func (r *Registry) Specs() []*Spec {
	return slices.Clone(r.specs)
}

func (r *Registry) Spec(field string) (*Spec, bool) {
	for _, spec := range r.specs {
		if spec.Field == field {
			return spec, true
		}
	}
	return nil, false
}

// Styled returns the specs carrying difficulty or rating class rules.
func (r *Registry) Styled() []*Spec {
	var styled []*Spec
	for _, spec := range r.specs {
		if spec.ClassGroup != "" {
			styled = append(styled, spec)
		}
	}
	return styled
}

// DefaultClassRules returns a copy of the rules field was built with.
func (r *Registry) DefaultClassRules(field string) []ClassRule {
	return slices.Clone(r.defaults[field])
}

// Clone returns an independent registry sharing the compiled expressions.
func (r *Registry) Clone() *Registry {
	c := &Registry{list: r.list, defaults: r.defaults}
	c.specs = make([]*Spec, len(r.specs))
	for i, spec := range r.specs {
		c.specs[i] = spec.clone()
	}
	return c
}

// Snapshot returns the current class rule configuration keyed by field.
// Columns without rules are left out.
func (r *Registry) Snapshot() map[string][]RuleConfig {
	snapshot := make(map[string][]RuleConfig)
	for _, spec := range r.specs {
		if len(spec.ClassRules) == 0 {
			continue
		}
		configs := make([]RuleConfig, len(spec.ClassRules))
		for i, rule := range spec.ClassRules {
			configs[i] = RuleConfig{Class: rule.Class, Expression: rule.Expression}
		}
		snapshot[spec.Field] = configs
	}
	return snapshot
}
