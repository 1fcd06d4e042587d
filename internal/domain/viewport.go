package domain

import "math"

const (
	ZoomStep = 1.3
	MinZoom  = 0.5
	MaxZoom  = 3.0

	// TapThreshold - смещение указателя в пикселях, ниже которого жест считается тапом
	TapThreshold = 5.0
)

// PointerTarget - элемент, на котором началось нажатие
type PointerTarget string

const (
	TargetSurface PointerTarget = "surface"
	TargetMarker  PointerTarget = "marker"
	TargetDialog  PointerTarget = "dialog"
)

// Viewport - состояние поверхности карты: сдвиг, масштаб, перетаскивание,
// временная точка нового отчёта и открытый попап маркера.
//
// Временная точка считается в координатах контейнера без учёта сдвига и
// масштаба, а маркеры рисуются внутри трансформированного слоя.
type Viewport struct {
	Pan       ScreenPoint  `json:"pan"`
	Zoom      float64      `json:"zoom"`
	Dragging  bool         `json:"dragging"`
	Candidate *MapPosition `json:"candidate,omitempty"`
	OpenPopup string       `json:"open_popup,omitempty"`

	dragOrigin ScreenPoint
	panOrigin  ScreenPoint
}

func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

// Reset - сброс при уходе с вкладки карты
func (v *Viewport) Reset() {
	*v = NewViewport()
}

// PointerDown начинает перетаскивание. Нажатия на маркер или диалог
// обрабатываются их собственными кнопками и сюда не доходят.
func (v *Viewport) PointerDown(p ScreenPoint, target PointerTarget) {
	if target != TargetSurface {
		return
	}
	v.Dragging = true
	v.dragOrigin = p
	v.panOrigin = v.Pan
}

// PointerMove сдвигает слой карты на смещение указателя от точки нажатия.
// Любое движение при перетаскивании убирает временную точку.
func (v *Viewport) PointerMove(p ScreenPoint) {
	if !v.Dragging {
		return
	}
	v.Pan = ScreenPoint{
		X: v.panOrigin.X + (p.X - v.dragOrigin.X),
		Y: v.panOrigin.Y + (p.Y - v.dragOrigin.Y),
	}
	v.Candidate = nil
}

// PointerUp завершает жест. Если смещение меньше TapThreshold, жест - тап,
// и в точке отпускания ставится временная точка. Возвращает true, если точка поставлена.
func (v *Viewport) PointerUp(p ScreenPoint, rect Rect) bool {
	if !v.Dragging {
		return false
	}
	v.Dragging = false

	if math.Hypot(p.X-v.dragOrigin.X, p.Y-v.dragOrigin.Y) >= TapThreshold {
		return false
	}
	if rect.Width <= 0 || rect.Height <= 0 {
		return false
	}

	v.Candidate = &MapPosition{
		X: clampPercent((p.X - rect.Left) / rect.Width * 100),
		Y: clampPercent((p.Y - rect.Top) / rect.Height * 100),
	}
	return true
}

// PointerLeave сбрасывает перетаскивание без постановки точки
func (v *Viewport) PointerLeave() {
	v.Dragging = false
}

func (v *Viewport) ZoomIn() {
	v.Zoom = math.Min(MaxZoom, v.Zoom*ZoomStep)
}

func (v *Viewport) ZoomOut() {
	v.Zoom = math.Max(MinZoom, v.Zoom/ZoomStep)
}

// ToggleMarker открывает попап маркера или закрывает его, если он уже открыт.
// Одновременно открыт не больше одного попапа.
func (v *Viewport) ToggleMarker(reportID string) {
	if v.OpenPopup == reportID {
		v.OpenPopup = ""
		return
	}
	v.OpenPopup = reportID
}

func (v *Viewport) ClosePopup() {
	v.OpenPopup = ""
}

// Forget закрывает попап, если он ссылается на удалённый отчёт
func (v *Viewport) Forget(reportID string) {
	if v.OpenPopup == reportID {
		v.OpenPopup = ""
	}
}

func (v *Viewport) CancelCandidate() {
	v.Candidate = nil
}

// TakeCandidate возвращает временную точку и убирает её с карты
func (v *Viewport) TakeCandidate() (MapPosition, bool) {
	if v.Candidate == nil {
		return MapPosition{}, false
	}
	c := *v.Candidate
	v.Candidate = nil
	return c, true
}

func (v Viewport) clone() Viewport {
	if v.Candidate != nil {
		c := *v.Candidate
		v.Candidate = &c
	}
	return v
}

func clampPercent(x float64) float64 {
	return math.Max(0, math.Min(100, x))
}
