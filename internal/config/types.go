package config

// Source kinds
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// City describes one city's backing trip file
type City struct {
	Name    string   `yaml:"name" validate:"required"`
	File    string   `yaml:"file" validate:"required"`
	Aliases []string `yaml:"aliases"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	DataDir  string `yaml:"data_dir"`
	Source   string `yaml:"source" validate:"omitempty,oneof=csv sqlite"`
	Database string `yaml:"database"`
	PageSize int    `yaml:"page_size" validate:"gte=0"`
	Cities   []City `yaml:"cities" validate:"dive"`
}
