package main

import (
	"time"

	"flowai/internal/habit"
	"flowai/internal/task"
)

// 产品开场白 / Product greeting line
const greetingText = "I'm here to help you stay consistent. Tell me what today looks like."

// 快捷回复，REPL 欢迎时展示 / Quick replies shown at REPL startup
var quickReplies = []string{
	"Plan my day",
	"I need motivation",
	"How's my progress?",
	"remind me to call mom at 3pm",
}

// seedHabits 首次启动的演示习惯 / seedHabits are the first-run demo habits
func seedHabits(tracker *habit.Tracker) {
	tracker.Add("Morning Routine", habit.CategoryMorning)
	tracker.Add("Workout", habit.CategoryHealth)
	tracker.Add("Read 30 Minutes", habit.CategoryPersonal)
}

// seedTasks 首次启动的演示任务 / seedTasks are the first-run demo tasks
func seedTasks(list *task.List, now time.Time) {
	today := now
	tomorrow := now.AddDate(0, 0, 1)
	list.Add("Doctor appointment", today, "10:00 AM", true, task.CategoryHealth, task.PriorityHigh)
	list.Add("Take kids to school", today, "8:00 AM", false, task.CategoryFamily, "")
	list.Add("Workout", today, "", false, task.CategoryHealth, "")
	list.Add("Team meeting", tomorrow, "2:00 PM", true, task.CategoryWork, task.PriorityHigh)
}
