package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix 为环境变量覆盖的前缀，例如 HOOPSTATS_DATA_SOURCE 覆盖 data.source。
const EnvPrefix = "HOOPSTATS"

const includeKey = "include"

// envKeys 列出可由环境变量覆盖的配置项。
var envKeys = []string{
	"app.env",
	"app.log_level",
	"app.log_path",
	"app.http_addr",
	"data.source",
	"data.csv_path",
	"data.snapshot_path",
	"chart.output_dir",
	"chart.format",
	"chart.scale",
	"chart.theme",
}

// Load 读取 yaml 配置（支持 include 合并），叠加 HOOPSTATS_ 环境变量，
// 然后应用默认值并校验。path 为空时只使用默认值与环境变量。
func Load(path string) (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(path) != "" {
		layers, err := readLayers(path)
		if err != nil {
			return nil, err
		}
		for _, layer := range layers {
			if err := v.MergeConfigMap(layer); err != nil {
				return nil, fmt.Errorf("merging config failed: %w", err)
			}
		}
	}

	settings := v.AllSettings()
	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	setKeys := make(keySet)
	markKeys("", settings, setKeys)
	cfg.applyDefaults(setKeys)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return v, nil
}

// readLayers 返回按合并顺序排列的配置层：被包含的文件先于包含者。
func readLayers(path string) ([]map[string]any, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	r := &layerReader{done: make(map[string]bool), active: make(map[string]bool)}
	if err := r.read(abs); err != nil {
		return nil, err
	}
	return r.layers, nil
}

type layerReader struct {
	done   map[string]bool
	active map[string]bool
	layers []map[string]any
}

func (r *layerReader) read(path string) error {
	path = filepath.Clean(path)
	if r.active[path] {
		return fmt.Errorf("include cycle detected: %s", path)
	}
	if r.done[path] {
		return nil
	}
	tmp := viper.New()
	tmp.SetConfigFile(path)
	if err := tmp.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file failed (%s): %w", path, err)
	}
	settings := tmp.AllSettings()
	includes, err := includeList(settings[includeKey])
	if err != nil {
		return fmt.Errorf("parsing include failed (%s): %w", path, err)
	}
	delete(settings, includeKey)

	r.active[path] = true
	for _, inc := range includes {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(filepath.Dir(path), inc)
		}
		if err := r.read(inc); err != nil {
			return err
		}
	}
	delete(r.active, path)
	r.done[path] = true
	r.layers = append(r.layers, settings)
	return nil
}

func includeList(raw any) ([]string, error) {
	var items []any
	switch val := raw.(type) {
	case nil:
		return nil, nil
	case string:
		items = []any{val}
	case []any:
		items = val
	default:
		return nil, fmt.Errorf("include must be a string or a list of strings")
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("include entries must be strings, got %T", item)
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// markKeys 记录显式设置过的叶子键（文件或环境变量）。
func markKeys(prefix string, node any, dest keySet) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			dest.mark(prefix)
		}
		return
	}
	for k, v := range m {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}
		markKeys(key, v, dest)
	}
}
