package domain

// ListFilter narrows a task listing. A nil Status matches every task.
type ListFilter struct {
	Status *Status
}

// ByStatus returns a filter matching a single status
func ByStatus(status Status) ListFilter {
	return ListFilter{Status: &status}
}

// Matches reports whether task passes the filter
func (f ListFilter) Matches(task Task) bool {
	return f.Status == nil || *f.Status == task.Status
}
