package service

import "time"

// Operation 需要模拟网络往返的会话操作
type Operation string

const (
	OpLogin         Operation = "login"
	OpRegister      Operation = "register"
	OpLoginGithub   Operation = "login_github"
	OpLoginLinkedin Operation = "login_linkedin"
)

// Latency 模拟后端调用的延迟/失败策略，测试中替换为 NoLatency
type Latency interface {
	Simulate(op Operation) error
}

// FixedLatency 固定延迟，不可取消
type FixedLatency struct {
	Delay time.Duration
}

func (l FixedLatency) Simulate(op Operation) error {
	if l.Delay > 0 {
		time.Sleep(l.Delay)
	}
	return nil
}

type NoLatency struct{}

func (NoLatency) Simulate(op Operation) error { return nil }
