package conversation

import "time"

// Scheduler 延迟回调抽象。助手的后续消息经由它投递，
// 测试注入手动实现即可确定性地触发。
// Scheduler abstracts deferred callbacks. Assistant follow-ups are
// delivered through it; tests inject a manual implementation and fire
// deterministically.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// NewTimerScheduler 基于 time.AfterFunc 的生产实现
// NewTimerScheduler is the production implementation backed by time.AfterFunc
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}
