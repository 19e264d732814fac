package config

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/mariokirby1703/pemon-information-table/columns"
	"github.com/mariokirby1703/pemon-information-table/levels"
	"github.com/mariokirby1703/pemon-information-table/style"
	"github.com/pocketbase/pocketbase/tools/cron"
	"gopkg.in/yaml.v3"
)

// List is a served list plus where the builder finds its level ids.
type List struct {
	levels.ListData `yaml:",inline"`
	IDs             string `yaml:"ids"`
	Output          string `yaml:"output"`
}

type Builder struct {
	GDServer    string        `yaml:"gd_server"`
	GDBrowser   string        `yaml:"gdbrowser"`
	Concurrency int           `yaml:"concurrency"`
	Last        int           `yaml:"last"`
	Timeout     time.Duration `yaml:"timeout"`
}

type Config struct {
	DefaultList  string            `yaml:"default_list"`
	Credit       string            `yaml:"credit"`
	ThumbnailURL string            `yaml:"thumbnail_url"`
	PageSize     int               `yaml:"page_size"`
	ReloadCron   string            `yaml:"reload_cron"`
	EvictCron    string            `yaml:"evict_cron"`
	SessionTTL   time.Duration     `yaml:"session_ttl"`
	Watch        bool              `yaml:"watch"`
	ClassNames   map[string]string `yaml:"class_names"`
	Lists        []List            `yaml:"lists"`
	Builder      Builder           `yaml:"builder"`
}

func Default() Config {
	pemons, demons := levels.Pemons(), levels.Demons()
	return Config{
		DefaultList:  pemons.Name,
		Credit:       "Made by Sona",
		ThumbnailURL: style.DefaultThumbnailURL,
		PageSize:     50,
		ReloadCron:   "*/30 * * * *",
		EvictCron:    "*/5 * * * *",
		SessionTTL:   2 * time.Hour,
		Watch:        true,
		Lists: []List{
			{ListData: pemons, IDs: "assets/pemon_ids.txt", Output: pemons.Source},
			{ListData: demons, IDs: "assets/demon_ids.txt", Output: demons.Source},
		},
		Builder: Builder{
			GDServer:    "https://www.boomlings.com/database",
			GDBrowser:   "https://gdbrowser.com",
			Concurrency: 4,
			Timeout:     20 * time.Second,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var (
	namePattern  = regexp.MustCompile(`^[a-z0-9_-]+$`)
	classPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
)

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DefaultList, validation.Required, validation.By(c.hasList)),
		validation.Field(&c.ThumbnailURL, validation.Required, validation.By(thumbnailPattern)),
		validation.Field(&c.PageSize, validation.Required, validation.Min(1), validation.Max(1000)),
		validation.Field(&c.ReloadCron, validation.By(cronExpression)),
		validation.Field(&c.EvictCron, validation.Required, validation.By(cronExpression)),
		validation.Field(&c.SessionTTL, validation.Required, validation.Min(time.Minute)),
		validation.Field(&c.ClassNames, validation.Each(validation.Match(classPattern)), validation.By(classNameKeys)),
		validation.Field(&c.Lists, validation.Required, validation.By(uniqueNames), validation.By(c.columnsCompile)),
		validation.Field(&c.Builder),
	)
}

func (l List) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Name, validation.Required, validation.Match(namePattern)),
		validation.Field(&l.Title, validation.Required),
		validation.Field(&l.Source, validation.Required),
	)
}

func (b Builder) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.GDServer, validation.Required, is.URL),
		validation.Field(&b.GDBrowser, validation.Required, is.URL),
		validation.Field(&b.Concurrency, validation.Required, validation.Min(1), validation.Max(16)),
		validation.Field(&b.Last, validation.Min(0)),
		validation.Field(&b.Timeout, validation.Required),
	)
}

// List returns the list with the given name.
func (c Config) List(name string) (List, bool) {
	for _, l := range c.Lists {
		if l.Name == name {
			return l, true
		}
	}
	return List{}, false
}

func (c Config) hasList(value interface{}) error {
	if _, ok := c.List(value.(string)); !ok {
		return fmt.Errorf("no list named %q", value)
	}
	return nil
}

func cronExpression(value interface{}) error {
	expr, _ := value.(string)
	if expr == "" {
		return nil
	}
	if _, err := cron.NewSchedule(expr); err != nil {
		return fmt.Errorf("not a cron expression: %w", err)
	}
	return nil
}

func thumbnailPattern(value interface{}) error {
	pattern, _ := value.(string)
	if !strings.Contains(pattern, "{id}") {
		return fmt.Errorf("must contain {id}")
	}
	return nil
}

// classNameKeys accepts overrides only for difficulty and rating values,
// spelled as the vocabulary lists them.
func classNameKeys(value interface{}) error {
	names, _ := value.(map[string]string)
	for key := range names {
		if !slices.Contains(levels.Difficulties, key) && !slices.Contains(levels.Ratings, key) {
			return fmt.Errorf("%q is not a difficulty or rating", key)
		}
	}
	return nil
}

// columnsCompile builds the column registry of every list, which compiles
// its class rules with the configured class names.
func (c Config) columnsCompile(value interface{}) error {
	lists, _ := value.([]List)
	for _, l := range lists {
		if _, err := columns.NewRegistry(l.ListData, columns.WithClassNames(c.ClassNames)); err != nil {
			return fmt.Errorf("list %q: %w", l.Name, err)
		}
	}
	return nil
}

func uniqueNames(value interface{}) error {
	lists, _ := value.([]List)
	seen := make(map[string]bool, len(lists))
	for _, l := range lists {
		if seen[l.Name] {
			return fmt.Errorf("list %q configured twice", l.Name)
		}
		seen[l.Name] = true
	}
	return nil
}
