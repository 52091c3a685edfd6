package service

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/pkg/logger"
)

var tracer = otel.Tracer("github.com/d60-Lab/gin-blog/internal/service")

// DefaultStoreTimeout 单次存储调用超时，不重试
const DefaultStoreTimeout = 10 * time.Second

// storeCall 给一次存储调用加上超时
type storeCall struct{ timeout time.Duration }

func (s storeCall) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	d := s.timeout
	if d <= 0 {
		d = DefaultStoreTimeout
	}
	return context.WithTimeout(parent, d)
}

// report 记录被降级为中性返回值的存储错误
func report(op string, err error, fields ...zap.Field) {
	logger.Error(op+" failed", append(fields, zap.Error(err))...)
	sentry.CaptureException(fmt.Errorf("%s: %w", op, err))
}
