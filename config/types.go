package config

import "time"

type Config struct {
	Server   Server
	Upstream Upstream
	Database Database
	Calendar Calendar
	Log      Log
}

type Server struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type Upstream struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxResults        int           `mapstructure:"max_results"`
}

type Database struct {
	Type      string `mapstructure:"type"`
	Firestore Firestore
	SQLite    SQLite
	Postgres  Postgres
}

type Firestore struct {
	ProjectID       string `mapstructure:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
	CollectionID    string `mapstructure:"collection_id"`
}

type SQLite struct {
	ConnectionString string `mapstructure:"connection_string"`
}

type Postgres struct {
	ConnectionString string `mapstructure:"connection_string"`
}

type Calendar struct {
	Timezone string `mapstructure:"timezone"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}
