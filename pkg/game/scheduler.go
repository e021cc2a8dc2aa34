package game

// Scheduler 虚拟时钟驱动的任务队列
//
// 所有定时行为（周期性模拟步进、回合结束的延迟提交、屏幕抖动帧）
// 都通过 Scheduler 调度，由宿主循环调用 Advance 推进时间。
// 时间单位为毫秒，与 config.TickInterval 等常量一致。
//
// 同一时刻到期的任务按调度顺序执行。Scheduler 不是并发安全的，
// 所有调用都必须来自同一个逻辑线程（游戏循环）。
type Scheduler struct {
	now   float64
	seq   uint64
	tasks []*scheduledTask
}

// TaskHandle 已调度任务的句柄，用于取消
type TaskHandle struct {
	cancelled bool
	done      bool
}

// Cancel 取消任务；已执行完的一次性任务取消无效果
// 周期任务在自身回调中取消时，本次回调照常完成，但不会再被调度
func (h *TaskHandle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled = true
}

// Cancelled 返回任务是否已被取消
func (h *TaskHandle) Cancelled() bool {
	return h != nil && h.cancelled
}

// Done 返回一次性任务是否已执行
func (h *TaskHandle) Done() bool {
	return h != nil && h.done
}

type scheduledTask struct {
	handle   *TaskHandle
	due      float64
	interval float64 // 0 表示一次性任务
	seq      uint64
	fn       func()
}

// NewScheduler 创建时钟从 0 开始的调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks: make([]*scheduledTask, 0),
	}
}

// Now 返回当前虚拟时间（毫秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// After 在 delay 毫秒后执行一次 fn
func (s *Scheduler) After(delay float64, fn func()) *TaskHandle {
	if delay < 0 {
		delay = 0
	}
	return s.schedule(s.now+delay, 0, fn)
}

// Every 每隔 interval 毫秒执行一次 fn，首次执行在 interval 之后
// interval 必须为正数，否则 fn 不会被调度，返回已取消的句柄
func (s *Scheduler) Every(interval float64, fn func()) *TaskHandle {
	if interval <= 0 {
		return &TaskHandle{cancelled: true}
	}
	return s.schedule(s.now+interval, interval, fn)
}

func (s *Scheduler) schedule(due, interval float64, fn func()) *TaskHandle {
	handle := &TaskHandle{}
	s.seq++
	s.tasks = append(s.tasks, &scheduledTask{
		handle:   handle,
		due:      due,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	})
	return handle
}

// Advance 推进虚拟时钟 elapsed 毫秒，并按时间顺序执行所有到期任务
// 任务回调中新调度的任务如果在本次推进范围内到期，也会被执行
func (s *Scheduler) Advance(elapsed float64) {
	if elapsed < 0 {
		return
	}
	target := s.now + elapsed

	for {
		next := s.nextDue(target)
		if next < 0 {
			break
		}
		task := s.tasks[next]
		s.tasks = append(s.tasks[:next], s.tasks[next+1:]...)

		s.now = task.due
		task.fn()

		if task.interval > 0 {
			if !task.handle.cancelled {
				task.due += task.interval
				s.seq++
				task.seq = s.seq
				s.tasks = append(s.tasks, task)
			}
		} else {
			task.handle.done = true
		}
	}

	s.now = target
}

// nextDue 返回最早到期（且未取消）任务的下标，没有则返回 -1
// 已取消的任务在扫描时顺便清理
func (s *Scheduler) nextDue(target float64) int {
	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if !task.handle.cancelled {
			kept = append(kept, task)
		}
	}
	s.tasks = kept

	best := -1
	for i, task := range s.tasks {
		if task.due > target {
			continue
		}
		if best < 0 || task.due < s.tasks[best].due ||
			(task.due == s.tasks[best].due && task.seq < s.tasks[best].seq) {
			best = i
		}
	}
	return best
}

// Pending 返回尚未执行且未取消的任务数
func (s *Scheduler) Pending() int {
	count := 0
	for _, task := range s.tasks {
		if !task.handle.cancelled {
			count++
		}
	}
	return count
}
