package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/palemoky/doudizhu-tally/internal/apperrors"
	"github.com/palemoky/doudizhu-tally/internal/card"
	"github.com/palemoky/doudizhu-tally/internal/tally"
)

// 牌桌类型
const (
	VariantClassic = "classic" // 每种点数 12 张
	VariantCompact = "compact" // 每种点数 8 张，第 2 列高亮，支持长按清零
)

const (
	defaultVariant       = VariantClassic
	defaultDoubleTapMs   = 300
	defaultJournalAddr   = "localhost:6379"
	defaultJournalKey    = "tally:journal"
	defaultJournalMaxLen = 1000
	defaultSoundDir      = "assets/sounds"
)

// Config 记牌器配置
type Config struct {
	Board   BoardConfig   `yaml:"board" json:"board"`
	Input   InputConfig   `yaml:"input" json:"input"`
	Sound   SoundConfig   `yaml:"sound" json:"sound"`
	Journal JournalConfig `yaml:"journal" json:"journal"`
}

// BoardConfig 牌桌配置，显式字段覆盖牌桌类型的预设
type BoardConfig struct {
	Variant         string         `yaml:"variant" json:"variant"`
	Totals          map[string]int `yaml:"totals,omitempty" json:"totals,omitempty"`
	HighlightColumn *int           `yaml:"highlight_column,omitempty" json:"highlight_column,omitempty"`
	LongPressClear  *bool          `yaml:"long_press_clear,omitempty" json:"long_press_clear,omitempty"`
}

// InputConfig 输入配置
type InputConfig struct {
	DoubleTapMs int `yaml:"double_tap_ms" json:"double_tap_ms"` // 双击判定时间间隔（毫秒）
}

// DoubleTapWindow 返回双击判定时长
func (c *InputConfig) DoubleTapWindow() time.Duration {
	return time.Duration(c.DoubleTapMs) * time.Millisecond
}

// SoundConfig 音效配置
type SoundConfig struct {
	Muted bool   `yaml:"muted" json:"muted"`
	Dir   string `yaml:"dir" json:"dir"`
}

// JournalConfig Redis 操作记录配置
type JournalConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"-"`
	DB       int    `yaml:"db" json:"db"`
	Key      string `yaml:"key" json:"key"`
	MaxLen   int64  `yaml:"max_len" json:"max_len"`
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	loadFromEnv(&cfg)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	loadFromEnv(cfg)
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Board.Variant == "" {
		c.Board.Variant = defaultVariant
	}
	if c.Input.DoubleTapMs == 0 {
		c.Input.DoubleTapMs = defaultDoubleTapMs
	}
	if c.Sound.Dir == "" {
		c.Sound.Dir = defaultSoundDir
	}
	if c.Journal.Addr == "" {
		c.Journal.Addr = defaultJournalAddr
	}
	if c.Journal.Key == "" {
		c.Journal.Key = defaultJournalKey
	}
	if c.Journal.MaxLen == 0 {
		c.Journal.MaxLen = defaultJournalMaxLen
	}
}

// loadFromEnv 环境变量覆盖配置文件
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TALLY_VARIANT"); v != "" {
		cfg.Board.Variant = v
	}
	if v := os.Getenv("TALLY_DOUBLE_TAP_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Input.DoubleTapMs = ms
		}
	}
	if v := os.Getenv("TALLY_MUTED"); v != "" {
		if muted, err := strconv.ParseBool(v); err == nil {
			cfg.Sound.Muted = muted
		}
	}
	if v := os.Getenv("TALLY_REDIS_ADDR"); v != "" {
		cfg.Journal.Addr = v
		cfg.Journal.Enabled = true
	}
	if v := os.Getenv("TALLY_REDIS_PASSWORD"); v != "" {
		cfg.Journal.Password = v
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if _, err := c.TallyConfig(); err != nil {
		return err
	}
	if c.Input.DoubleTapMs <= 0 {
		return apperrors.ErrInvalidWindow.With("%d", c.Input.DoubleTapMs)
	}
	if c.Journal.Enabled {
		if c.Journal.Key == "" {
			return apperrors.ErrInvalidJournal.With("key 不能为空")
		}
		if c.Journal.MaxLen < 0 {
			return apperrors.ErrInvalidJournal.With("max_len=%d", c.Journal.MaxLen)
		}
	}
	return nil
}

// TallyConfig resolves the board section into a tally.Config.
func (c *Config) TallyConfig() (tally.Config, error) {
	var tc tally.Config
	switch strings.ToLower(c.Board.Variant) {
	case VariantClassic:
		tc = tally.ClassicConfig()
	case VariantCompact:
		tc = tally.CompactConfig()
	default:
		return tally.Config{}, apperrors.ErrUnknownVariant.With("%q", c.Board.Variant)
	}

	for label, n := range c.Board.Totals {
		rank, err := card.RankFromLabel(label)
		if err != nil {
			return tally.Config{}, apperrors.ErrUnknownRank.With("%q", label)
		}
		tc.Totals[rank] = n
	}
	if c.Board.HighlightColumn != nil {
		tc.HighlightColumn = *c.Board.HighlightColumn
	}
	if c.Board.LongPressClear != nil {
		tc.LongPressClear = *c.Board.LongPressClear
	}

	if err := tc.Validate(); err != nil {
		return tally.Config{}, err
	}
	return tc, nil
}
