package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CodeTTL 验证码有效期
const CodeTTL = 300 * time.Second

// 比对并删除，单次原子调用，防止同一个码被并发消费两次
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// VerifyCodeStorage 邮箱验证码缓存
type VerifyCodeStorage struct {
	redis *redis.Client
}

func NewVerifyCodeStorage(rds *redis.Client) *VerifyCodeStorage {
	return &VerifyCodeStorage{redis: rds}
}

func (s *VerifyCodeStorage) key(email string) string {
	return fmt.Sprintf("email_code:%s", email)
}

// Set 写入验证码，同邮箱覆盖旧码，后发的为准
func (s *VerifyCodeStorage) Set(ctx context.Context, email, code string) error {
	return s.redis.Set(ctx, s.key(email), code, CodeTTL).Err()
}

// Consume 校验并消费验证码
// 只有缓存中存在且完全匹配才删除并返回 true，其余情况无副作用
func (s *VerifyCodeStorage) Consume(ctx context.Context, email, code string) (bool, error) {
	n, err := consumeScript.Run(ctx, s.redis, []string{s.key(email)}, code).Int()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
