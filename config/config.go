// Package config 提供演示程序的配置
package config

import (
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gosolid/errors"
	"gosolid/logging"
	"gosolid/validation"
)

// EnvLogLevel 覆盖日志级别的环境变量
const EnvLogLevel = "GOSOLID_LOG_LEVEL"

// Config 演示程序配置
type Config struct {
	// LogLevel 日志级别：debug/info/warn/error
	LogLevel string `yaml:"log_level"`

	// LogPrefix 日志行前缀
	LogPrefix string `yaml:"log_prefix"`

	// Separator 演示输出中每个步骤之后的分隔线
	Separator string `yaml:"separator"`

	// ScenarioPath 场景文档路径（为空时使用内置场景）
	ScenarioPath string `yaml:"scenario"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "warn",
		LogPrefix: "",
		Separator: "----------------------------------",
	}
}

// Load 读取 YAML 配置文件
//
// 参数：
//   - path: 配置文件路径，为空时只使用默认值与环境变量
//
// 返回：
//   - *Config: 合并后的配置（默认值 <- 文件 <- 环境变量）
//   - error: 读取、解析或校验失败
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapError(err, errors.ErrCodeNotFound, "读取配置文件失败: "+path)
		}
		if err := cfg.merge(data); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse 从 YAML 内容解析配置（未出现的字段保留默认值）
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.merge(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.WrapError(err, errors.ErrCodeInvalidInput, "解析配置失败")
	}
	return nil
}

func (c *Config) applyEnv() {
	if level, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(level) != "" {
		c.LogLevel = level
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	return validation.ValidateEnum(strings.ToLower(strings.TrimSpace(c.LogLevel)),
		"log_level", []string{"debug", "info", "warn", "warning", "error"})
}

// Level 返回解析后的日志级别
func (c *Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.InfoLevel
	}
	return level
}

// NewLogger 按配置创建输出到 w 的 Logger
func (c *Config) NewLogger(w io.Writer) logging.Logger {
	return logging.NewWriterLogger(w, c.LogPrefix, c.Level())
}
