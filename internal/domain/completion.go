package domain

// CompletionMap records completed lessons: course ID -> lesson ID -> done.
// A missing entry and an explicit false both mean "not completed".
type CompletionMap map[string]map[string]bool

// IsCompleted reports whether the pair is stored with value true.
func (m CompletionMap) IsCompleted(courseID, lessonID string) bool {
	return m[courseID][lessonID]
}

// CompletedCount counts true entries under courseID.
func (m CompletionMap) CompletedCount(courseID string) int {
	n := 0
	for _, done := range m[courseID] {
		if done {
			n++
		}
	}
	return n
}

// TotalCompleted counts true entries across every course.
func (m CompletionMap) TotalCompleted() int {
	n := 0
	for courseID := range m {
		n += m.CompletedCount(courseID)
	}
	return n
}

// Set stores done for the pair, creating the course entry on first use.
func (m CompletionMap) Set(courseID, lessonID string, done bool) {
	lessons, ok := m[courseID]
	if !ok {
		lessons = make(map[string]bool)
		m[courseID] = lessons
	}
	lessons[lessonID] = done
}

// Clone returns a deep copy. A nil map clones to an empty one.
func (m CompletionMap) Clone() CompletionMap {
	out := make(CompletionMap, len(m))
	for courseID, lessons := range m {
		inner := make(map[string]bool, len(lessons))
		for lessonID, done := range lessons {
			inner[lessonID] = done
		}
		out[courseID] = inner
	}
	return out
}

// CompletedPairs returns only the true entries, dropping explicit false
// values and empty courses. Two maps with equal CompletedPairs describe the
// same progress.
func (m CompletionMap) CompletedPairs() CompletionMap {
	out := make(CompletionMap)
	for courseID, lessons := range m {
		for lessonID, done := range lessons {
			if done {
				out.Set(courseID, lessonID, true)
			}
		}
	}
	return out
}

// Percent returns completed/total as a rounded integer percentage in 0..100.
// Halves round up. A non-positive total yields 0.
func Percent(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	return (completed*200 + total) / (2 * total)
}
