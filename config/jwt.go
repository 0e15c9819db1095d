package config

// Jwt 令牌配置信息
type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpireDays 令牌有效期（天），默认 30
	ExpireDays int `json:"expire_days" yaml:"expire_days"`
}

func (j *Jwt) GetExpireDays() int {
	if j.ExpireDays <= 0 {
		return 30
	}
	return j.ExpireDays
}
