package domain

// Tab - вкладка нижней навигации
type Tab string

const (
	TabFeed    Tab = "feed"
	TabMap     Tab = "map"
	TabProfile Tab = "profile"
)

func (t Tab) Valid() bool {
	switch t {
	case TabFeed, TabMap, TabProfile:
		return true
	}
	return false
}

// ComposerState - открыта ли форма нового отчёта и выбранная на карте точка
type ComposerState struct {
	Open    bool         `json:"open"`
	Prefill *MapPosition `json:"prefill,omitempty"`
}

// Shell - состояние навигации: вкладка, фильтр ленты, форма отчёта
type Shell struct {
	ActiveTab Tab           `json:"active_tab"`
	Filter    Filter        `json:"filter"`
	Composer  ComposerState `json:"composer"`
}

func NewShell() Shell {
	return Shell{ActiveTab: TabFeed, Filter: FilterAll}
}

// SelectTab переключает вкладку. Возвращает true, если карта была закрыта
// и её состояние нужно сбросить.
func (s *Shell) SelectTab(tab Tab) (leftMap bool) {
	leftMap = s.ActiveTab == TabMap && tab != TabMap
	s.ActiveTab = tab
	return leftMap
}

// OpenComposer открывает форму; prefill может быть nil
func (s *Shell) OpenComposer(prefill *MapPosition) {
	s.Composer = ComposerState{Open: true}
	if prefill != nil {
		p := *prefill
		s.Composer.Prefill = &p
	}
}

// CloseComposer закрывает форму и забывает выбранную точку
func (s *Shell) CloseComposer() {
	s.Composer = ComposerState{}
}

func (s Shell) clone() Shell {
	if s.Composer.Prefill != nil {
		p := *s.Composer.Prefill
		s.Composer.Prefill = &p
	}
	return s
}
