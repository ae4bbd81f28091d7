package config

import (
	"os"
	"path"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	// "firestore" in production, "memory" for credential-less local runs.
	Storage string `yaml:"storage"`
	// "firebase" verifies Google ID tokens, "jwt" verifies locally minted
	// HS256 tokens with the key from private.yaml.
	AuthMode string `yaml:"auth_mode"`

	Firestore Firestore `yaml:"firestore"`

	MaxTitleLen   int `yaml:"max_title_len"`
	MaxContentLen int `yaml:"max_content_len"`
}

type Firestore struct {
	ProjectId       string `yaml:"project_id"`
	DatabaseId      string `yaml:"database_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
}

func (c *Config) JwtKey() string {
	return c.private.JwtKey
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}
	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyEnv()
	return cfg
}

// applyEnv lets the deployment environment override the yaml values without
// editing files baked into the image.
func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Public.Port = p
		}
	}
	if v := os.Getenv("FIREBASE_PROJECT_ID"); v != "" {
		c.Public.Firestore.ProjectId = v
	}
	if v := os.Getenv("FIRESTORE_DATABASE_ID"); v != "" {
		c.Public.Firestore.DatabaseId = v
	}
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" {
		c.Public.Firestore.CredentialsFile = v
	}
	if v := os.Getenv("HEARTH_STORAGE"); v != "" {
		c.Public.Storage = v
	}
	if v := os.Getenv("HEARTH_JWT_KEY"); v != "" {
		c.private.JwtKey = v
	}
}
