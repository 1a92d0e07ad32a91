package board

// Task is a single card on the board.
type Task struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	List     List   `json:"list"`
	Selected bool   `json:"selected"`
}

// Column returns the tasks that belong to l, keeping insertion order.
func Column(tasks []Task, l List) []Task {
	var out []Task
	for _, t := range tasks {
		if t.List == l {
			out = append(out, t)
		}
	}
	return out
}

// SelectedCount returns how many tasks are currently selected.
func SelectedCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Selected {
			n++
		}
	}
	return n
}
