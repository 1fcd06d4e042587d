package usecase

import "time"

func (uc *ReportUseCase) SetClock(now func() time.Time) { uc.now = now }

func (uc *MapUseCase) SetClock(now func() time.Time) { uc.now = now }
