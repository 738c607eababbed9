package service

import "sync"

// FailingLatency 对指定操作注入错误；Ops 为空时对所有操作生效
type FailingLatency struct {
	Err error
	Ops []Operation

	mu    sync.Mutex
	calls int
}

func (l *FailingLatency) Simulate(op Operation) error {
	l.mu.Lock()
	l.calls++
	l.mu.Unlock()

	if len(l.Ops) == 0 {
		return l.Err
	}
	for _, o := range l.Ops {
		if o == op {
			return l.Err
		}
	}
	return nil
}

func (l *FailingLatency) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

// BlockingLatency 在 Release 之前一直阻塞，用于观察进行中的登录
type BlockingLatency struct {
	Started chan Operation
	release chan struct{}
	once    sync.Once
}

func NewBlockingLatency() *BlockingLatency {
	return &BlockingLatency{
		Started: make(chan Operation, 1),
		release: make(chan struct{}),
	}
}

func (l *BlockingLatency) Simulate(op Operation) error {
	l.Started <- op
	<-l.release
	return nil
}

func (l *BlockingLatency) Release() {
	l.once.Do(func() { close(l.release) })
}
