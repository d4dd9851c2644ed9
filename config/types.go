package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// ProductConfig maps a transport-mode flag to its bitmask values
type ProductConfig struct {
	ID       string `yaml:"id" validate:"required"`
	Bitmasks []int  `yaml:"bitmasks" validate:"required,min=1,dive,gt=0"`
}

// ProfileConfig contains provider-profile configuration
type ProfileConfig struct {
	Timezone string          `yaml:"timezone" validate:"omitempty,timezone"`
	Products []ProductConfig `yaml:"products"`
}

// NormalizerConfig contains normalizer options
type NormalizerConfig struct {
	LinesOfStops bool `yaml:"linesOfStops"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server     ServerConfig     `yaml:"server" validate:"required"`
	Profile    ProfileConfig    `yaml:"profile"`
	Normalizer NormalizerConfig `yaml:"normalizer"`
}
