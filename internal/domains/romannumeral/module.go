package romannumeral

import (
	romanmodel "romannumeral/go-backend/internal/domains/romannumeral/model"
	romanusecase "romannumeral/go-backend/internal/domains/romannumeral/usecase"
)

type Service = romanusecase.Service
type ConversionResult = romanmodel.ConversionResult

type Module struct {
	Service *Service
}

func NewModule() Module {
	return Module{Service: romanusecase.NewService()}
}
