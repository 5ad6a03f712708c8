package services

import (
	"context"
	"errors"

	"house_rent_web/internal/apiclient"
	"house_rent_web/internal/logger"
	"house_rent_web/internal/models"
	"house_rent_web/internal/selection"
	"house_rent_web/internal/services/dto"
	"house_rent_web/pkg/apperrors"
)

// CompareErrorPrefix - начало встроенного сообщения об ошибке сравнения
const CompareErrorPrefix = "Không thể so sánh: "

type CompareService interface {
	// LoadPanel: idle -> criteria-loading -> criteria-ready | error-shown
	LoadPanel(ctx context.Context) (*AmenityPanel, *CompareFlow)

	// BuildRequest собирает тело запроса из выбора и отмеченных строк панели.
	// Без отмеченных критериев возвращает ErrNoCriteriaSelected.
	BuildRequest(ids selection.Set, panel *AmenityPanel) (models.CompareRequest, error)

	// Run проходит весь сценарий для отправленной формы
	Run(ctx context.Context, form dto.CompareForm) *CompareOutcome
}

// CompareOutcome - то, что нужно странице результата
type CompareOutcome struct {
	IDs    selection.Set
	Panel  *AmenityPanel
	Flow   *CompareFlow
	Result *models.CompareResult
	// Alert - блокирующее предупреждение, запрос не отправлялся
	Alert string
	// Error - встроенное сообщение "Không thể so sánh: ..."
	Error string
	// Err - причина, если результата нет (для JSON-ответа)
	Err error
}

type compareService struct {
	client        apiclient.Client
	defaultWeight int
}

func NewCompareService(client apiclient.Client, defaultWeight int) CompareService {
	return &compareService{
		client:        client,
		defaultWeight: defaultWeight,
	}
}

// ================================
// Implementation methods
// ================================

func (s *compareService) LoadPanel(ctx context.Context) (*AmenityPanel, *CompareFlow) {
	flow := NewCompareFlow()
	panel := NewAmenityPanel(s.client, s.defaultWeight)

	mustTransition(ctx, flow, StateCriteriaLoading)
	if err := panel.Load(ctx); err != nil {
		mustTransition(ctx, flow, StateErrorShown)
		return panel, flow
	}
	mustTransition(ctx, flow, StateCriteriaReady)
	return panel, flow
}

func (s *compareService) BuildRequest(ids selection.Set, panel *AmenityPanel) (models.CompareRequest, error) {
	amenities, weights := panel.Selection()
	if len(amenities) == 0 {
		return models.CompareRequest{}, apperrors.ErrNoCriteriaSelected
	}
	houseIDs := ids.IDs()
	if houseIDs == nil {
		houseIDs = []int{}
	}
	return models.CompareRequest{
		HouseRentIDs: houseIDs,
		Amenities:    amenities,
		Weights:      weights,
		TopsisWeight: []float64{},
	}, nil
}

func (s *compareService) Run(ctx context.Context, form dto.CompareForm) *CompareOutcome {
	out := &CompareOutcome{IDs: selection.Parse(form.IDs)}
	out.Panel, out.Flow = s.LoadPanel(ctx)
	if out.Panel.Failed() {
		// Панель уже заменена сообщением об ошибке, отправлять нечего
		out.Err = out.Panel.Err()
		return out
	}
	// Повторная отправка со страницы результата или ошибки
	if resumed, ok := ResumeCompareFlow(FlowState(form.PrevState)); ok {
		out.Flow = resumed
	}
	out.Panel.ApplyForm(form.AmenityIDs, form.RawWeights)

	req, err := s.BuildRequest(out.IDs, out.Panel)
	if err != nil {
		// Запрос не уходит, состояние остается criteria-ready
		out.Alert = apperrors.UserMessage(err)
		out.Err = err
		logger.CtxInfo(ctx, "Compare blocked", "reason", "no criteria", "ids", out.IDs.Encode())
		return out
	}

	mustTransition(ctx, out.Flow, StateRequestInFlight)

	result, err := s.client.Compare(ctx, req)
	if err != nil {
		mustTransition(ctx, out.Flow, StateErrorShown)
		out.Error = CompareErrorMessage(err)
		out.Err = err
		logger.CtxWarn(ctx, "Compare failed", "error", err, "ids", out.IDs.Encode())
		return out
	}

	mustTransition(ctx, out.Flow, StateRendered)
	out.Result = result
	logger.CtxInfo(ctx, "Compare rendered",
		"ids", out.IDs.Encode(),
		"amenities", len(req.Amenities),
		"ranked", len(result.RankedHouses),
	)
	return out
}

// CompareErrorMessage форматирует встроенную ошибку сравнения
func CompareErrorMessage(err error) string {
	return CompareErrorPrefix + apperrors.UserMessage(err)
}

// IsNoCriteria - ошибка "не выбран ни один критерий"
func IsNoCriteria(err error) bool {
	return errors.Is(err, apperrors.ErrNoCriteriaSelected)
}

func mustTransition(ctx context.Context, flow *CompareFlow, to FlowState) {
	if err := flow.Transition(to); err != nil {
		// Ошибка программиста: таблица переходов нарушена
		logger.CtxWithError(ctx, "Compare flow transition rejected", err)
	}
}
