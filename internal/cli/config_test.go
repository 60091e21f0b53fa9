package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/SeamusWaldron/nxcube"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cube, err := cfg.NewCube()
	if err != nil {
		t.Fatal(err)
	}
	if cube.Size() != defaultSize {
		t.Errorf("cube size = %d, want %d", cube.Size(), defaultSize)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"size", func(c *Config) { c.Size = 0 }, nxcube.ErrInvalidSize},
		{"speed", func(c *Config) { c.Speed = 0 }, nxcube.ErrInvalidSpeed},
	}
	for _, tt := range tests {
		cfg := defaultConfig()
		tt.modify(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}

	cfg := defaultConfig()
	cfg.Easing = "bounce-forever"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown easing should be rejected")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nxcube.yaml")
	data := []byte(`size: 5
speed: 250ms
easing: linear
gesture:
  sensitivity: 0.1
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(v)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 5 || cfg.Speed != 250*time.Millisecond || cfg.Easing != "linear" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Gesture.Sensitivity != 0.1 {
		t.Errorf("sensitivity = %v, want 0.1", cfg.Gesture.Sensitivity)
	}
	if cfg.Gesture.Threshold != defaultConfig().Gesture.Threshold {
		t.Errorf("threshold = %v, want the default", cfg.Gesture.Threshold)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("size", 0)
	if _, err := loadConfig(v); !errors.Is(err, nxcube.ErrInvalidSize) {
		t.Errorf("error = %v, want ErrInvalidSize", err)
	}
}
