package auth

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/pkg/logger"
)

// State 管理入口的校验状态
type State int

const (
	Unverified State = iota
	Verified
	Denied
)

func (s State) String() string {
	switch s {
	case Verified:
		return "verified"
	case Denied:
		return "denied"
	default:
		return "unverified"
	}
}

// PrivilegeChecker 判断会话主体是否拥有博客管理权限
type PrivilegeChecker interface {
	IsBlogAdmin(ctx context.Context, s *Session) (bool, error)
}

// Gate 每个请求一个。状态从 Unverified 出发，只会到达 Verified 或 Denied，
// 到达后不再改变。任何错误都视为 Denied。
type Gate struct {
	parser  SessionParser
	checker PrivilegeChecker

	mu      sync.Mutex
	state   State
	session *Session
}

func NewGate(parser SessionParser, checker PrivilegeChecker) *Gate {
	return &Gate{parser: parser, checker: checker}
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Session 仅在 Verified 时非 nil
func (g *Gate) Session() *Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Verified {
		return nil
	}
	return g.session
}

// Verify 校验令牌与权限；已到达终态时直接返回当前状态
func (g *Gate) Verify(ctx context.Context, token string) State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Unverified {
		return g.state
	}
	g.state, g.session = g.check(ctx, token)
	return g.state
}

func (g *Gate) check(ctx context.Context, token string) (State, *Session) {
	if g.parser == nil || g.checker == nil {
		return Denied, nil
	}
	s, err := g.parser.Parse(token)
	if err != nil {
		logger.Debug("admin session rejected", zap.Error(err))
		return Denied, nil
	}
	ok, err := g.checker.IsBlogAdmin(ctx, s)
	if err != nil {
		logger.Warn("privilege check failed", zap.String("subject", s.Subject), zap.Error(err))
		return Denied, nil
	}
	if !ok {
		return Denied, nil
	}
	return Verified, s
}
