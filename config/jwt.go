package config

import "time"

type Jwt struct {
	Secret        string `json:"secret" yaml:"secret"`
	ExpireSeconds int    `json:"expire_seconds" yaml:"expire_seconds"`
}

func (j *Jwt) Expire() time.Duration {
	return time.Duration(j.ExpireSeconds) * time.Second
}

// Report 购物清单相关配置
type Report struct {
	// 用户收藏/购物车成员集合在 redis 中的缓存时长
	CacheTTLSeconds int `json:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
}

func (r *Report) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLSeconds) * time.Second
}
