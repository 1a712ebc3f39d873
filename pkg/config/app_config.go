package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix 环境变量覆盖前缀
//
// 嵌套键用双下划线分隔，单下划线被忽略（键名大小写不敏感）：
//
//	PORTFOLIO_CONTACT__SERVICE_ID=service_abc  => contact.serviceid
//	PORTFOLIO_TIMELINE__PAGE_COUNT=8           => timeline.pagecount
const EnvPrefix = "PORTFOLIO_"

// Load 加载站点配置
//
// 加载顺序（后者覆盖前者）：
//  1. defaults: 嵌入的 data/site.yaml
//  2. overridePath: 可选的磁盘覆盖文件（为空或不存在时跳过）
//  3. PORTFOLIO_* 环境变量
//
// 列表类型的键（nav、blocks 等）在覆盖时整体替换。
func Load(defaults []byte, overridePath string) (*SiteConfig, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaults), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading embedded site config: %w", err)
	}

	if overridePath != "" {
		if _, err := os.Stat(overridePath); err == nil {
			if err := k.Load(file.Provider(overridePath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", overridePath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", overridePath, err)
		}
	}

	known := make(map[string]string)
	for _, key := range k.Keys() {
		known[normalizeKey(key)] = key
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := envKey(s)
		// 映射回配置文件中的驼峰键名，否则默认值会与覆盖值并存
		if actual, ok := known[normalizeKey(key)]; ok {
			return actual
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	var cfg SiteConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling site config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site config: %w", err)
	}
	return &cfg, nil
}

// envKey 将环境变量名转换为 koanf 键
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.Split(s, "__")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, "_", "")
	}
	return strings.Join(parts, ".")
}

// normalizeKey 忽略大小写和下划线比较键名
func normalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", ""))
}
