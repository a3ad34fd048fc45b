package config

// Config is the merged termgrid configuration.
type Config struct {
	Layout Layout `yaml:"layout" json:"layout" toml:"layout"`
	Input  Input  `yaml:"input" json:"input" toml:"input"`
}

// Layout mirrors grid.Options in a serializable form.
type Layout struct {
	Direction string    `yaml:"direction" json:"direction" toml:"direction"`
	Separator Separator `yaml:"separator" json:"separator" toml:"separator"`
	TabSize   int       `yaml:"tab_size" json:"tab_size" toml:"tab_size"`
	Width     int       `yaml:"width" json:"width" toml:"width"`
	Columns   int       `yaml:"columns" json:"columns" toml:"columns"`
	Measure   string    `yaml:"measure" json:"measure" toml:"measure"`
}

// Separator is the filling between columns. Text wins when non-empty.
type Separator struct {
	Spaces int    `yaml:"spaces" json:"spaces" toml:"spaces"`
	Text   string `yaml:"text" json:"text" toml:"text"`
}

// Input controls how items are read.
type Input struct {
	Format string `yaml:"format" json:"format" toml:"format"`
}
