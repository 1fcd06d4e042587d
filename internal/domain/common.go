package domain

// GeoPoint - географические координаты (справочно, на карте не используются)
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapPosition - позиция на статичном изображении карты в процентах (0-100)
type MapPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScreenPoint - координаты указателя в пикселях клиента
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect - bounding box контейнера карты на экране клиента
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
