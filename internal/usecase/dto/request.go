package dto

// AuthRequest - форма входа или регистрации. Формат полей проверяет
// AuthUseCase в фиксированном порядке, здесь только канал.
type AuthRequest struct {
	Channel         string `json:"channel" validate:"required,oneof=email phone"`
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

// SelectTabRequest - переключение вкладки
type SelectTabRequest struct {
	Tab string `json:"tab" validate:"required,oneof=feed map profile"`
}

// SelectFilterRequest - выбор фильтра ленты
type SelectFilterRequest struct {
	Filter string `json:"filter" validate:"required,oneof=all dangerous not-busy no-security"`
}

// SubmitReportRequest - отправка формы нового отчёта.
// Обязательность полей проверяется после обрезки пробелов.
type SubmitReportRequest struct {
	Type         string   `json:"type,omitempty"`
	LocationName string   `json:"location_name"`
	Address      string   `json:"address"`
	Description  string   `json:"description"`
	Lat          *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng          *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
}

// RectInput - положение контейнера карты на экране
type RectInput struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width" validate:"min=0"`
	Height float64 `json:"height" validate:"min=0"`
}

// PointerRequest - событие указателя на поверхности карты
type PointerRequest struct {
	Phase  string     `json:"phase" validate:"required,oneof=down move up leave"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Target string     `json:"target,omitempty" validate:"omitempty,oneof=surface marker dialog"`
	Rect   *RectInput `json:"rect,omitempty" validate:"required_if=Phase up"`
}

// ZoomRequest - кнопки масштаба
type ZoomRequest struct {
	Direction string `json:"direction" validate:"required,oneof=in out"`
}
