package levels

func Pemons() ListData {
	return ListData{
		Name:      "pemons",
		Title:     "Pemon Information Table",
		Source:    "assets/pemons.json",
		Alternate: "demons",
		Variant: Variant{
			EstimatedTime: true,
			Checkpoints:   true,
			SongCounts:    true,
			RateDate:      true,
		},
	}
}

func Demons() ListData {
	return ListData{
		Name:      "demons",
		Title:     "Demon Information Table",
		Source:    "assets/demons.json",
		Alternate: "pemons",
		Variant: Variant{
			Length: true,
		},
	}
}

// Variant selects the optional columns a list carries.
type Variant struct {
	EstimatedTime bool `yaml:"estimated_time"`
	Checkpoints   bool `yaml:"checkpoints"`
	SongCounts    bool `yaml:"song_counts"`
	RateDate      bool `yaml:"rate_date"`
	Length        bool `yaml:"length"`
}

type ListData struct {
	Name      string  `yaml:"name"`
	Title     string  `yaml:"title"`
	Source    string  `yaml:"source"`
	Alternate string  `yaml:"alternate"`
	Variant   Variant `yaml:"variant"`
}
