package mahjong

import (
	"fmt"

	"github.com/spf13/viper"
)

// Rule 玩法配置：封顶与番型倍数覆盖
// 零值可用，未覆盖的番型走默认倍数表
type Rule struct {
	LimitMulti        int64            `mapstructure:"limit_multi" yaml:"limit_multi"`               // 封顶倍数，0为不封顶
	MenQingZhongZhang bool             `mapstructure:"menqing_zhongzhang" yaml:"menqing_zhongzhang"` // 门清中张玩法
	Multis            map[string]int64 `mapstructure:"multis" yaml:"multis"`                         // 番型名->倍数覆盖，0为禁用该番型
}

func DefaultRule() *Rule {
	return &Rule{}
}

// LoadRule 从yaml文件读取玩法配置
func LoadRule(path string) (*Rule, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigFile(path)
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read rule config: %w", err)
	}
	rule := DefaultRule()
	if err := vp.Unmarshal(rule); err != nil {
		return nil, fmt.Errorf("parse rule config: %w", err)
	}
	return rule, nil
}

func (r *Rule) multiFor(name string, def int64) int64 {
	if multi, ok := r.Multis[name]; ok {
		return multi
	}
	return def
}
