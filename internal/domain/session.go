package domain

import "time"

// AuthChannel - канал идентификации при входе
type AuthChannel string

const (
	ChannelEmail AuthChannel = "email"
	ChannelPhone AuthChannel = "phone"
)

// AuthMode - вход или регистрация
type AuthMode string

const (
	ModeLogin  AuthMode = "login"
	ModeSignup AuthMode = "signup"
)

// DefaultMemberName - имя пользователя при входе без регистрации
const DefaultMemberName = "Community Member"

// User - идентичность текущей сессии. Заполнен ровно один из Email/Phone.
type User struct {
	Name    string      `json:"name"`
	Email   string      `json:"email,omitempty"`
	Phone   string      `json:"phone,omitempty"`
	Channel AuthChannel `json:"channel"`
}

// Session - всё состояние одного пользователя: личность, лимиты,
// навигация и состояние карты.
type Session struct {
	ID         string    `json:"id"`
	User       User      `json:"user"`
	Quota      Quota     `json:"quota"`
	Shell      Shell     `json:"shell"`
	Viewport   Viewport  `json:"viewport"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

func NewSession(id string, user User, quota Quota, now time.Time) *Session {
	return &Session{
		ID:         id,
		User:       user,
		Quota:      quota,
		Shell:      NewShell(),
		Viewport:   NewViewport(),
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// Clone - копия для read-only снапшота
func (s *Session) Clone() *Session {
	cp := *s
	cp.Shell = s.Shell.clone()
	cp.Viewport = s.Viewport.clone()
	return &cp
}
