package domain

// Quota - оставшиеся действия пользователя в рамках сессии.
// Счётчики не уходят в минус и не пополняются до нового входа.
type Quota struct {
	ReportsRemaining int `json:"reports_remaining"`
	UpvotesRemaining int `json:"upvotes_remaining"`
}

func NewQuota(reports, upvotes int) Quota {
	return Quota{
		ReportsRemaining: max(reports, 0),
		UpvotesRemaining: max(upvotes, 0),
	}
}

func (q *Quota) CanReport() bool { return q.ReportsRemaining > 0 }

func (q *Quota) CanUpvote() bool { return q.UpvotesRemaining > 0 }

// ConsumeReport списывает один отчёт; false если лимит исчерпан
func (q *Quota) ConsumeReport() bool {
	if !q.CanReport() {
		return false
	}
	q.ReportsRemaining--
	return true
}

// ConsumeUpvote списывает один голос; false если лимит исчерпан
func (q *Quota) ConsumeUpvote() bool {
	if !q.CanUpvote() {
		return false
	}
	q.UpvotesRemaining--
	return true
}
