package services

import (
	"house_rent_web/pkg/apperrors"
)

// FlowState - состояние сценария "панель -> результат"
type FlowState string

const (
	StateIdle            FlowState = "idle"
	StateCriteriaLoading FlowState = "criteria-loading"
	StateCriteriaReady   FlowState = "criteria-ready"
	StateRequestInFlight FlowState = "request-in-flight"
	StateRendered        FlowState = "rendered"
	StateErrorShown      FlowState = "error-shown"
)

// allowedTransitions - таблица допустимых переходов
var allowedTransitions = map[FlowState][]FlowState{
	StateIdle:            {StateCriteriaLoading},
	StateCriteriaLoading: {StateCriteriaReady, StateErrorShown},
	StateCriteriaReady:   {StateRequestInFlight},
	StateRequestInFlight: {StateRendered, StateErrorShown},
	StateErrorShown:      {StateRequestInFlight},
	StateRendered:        {StateRequestInFlight},
}

// CompareFlow - машина состояний одного сравнения
type CompareFlow struct {
	state FlowState
}

// NewCompareFlow начинает с idle
func NewCompareFlow() *CompareFlow {
	return &CompareFlow{state: StateIdle}
}

// ResumeCompareFlow восстанавливает состояние, с которым страница отправила форму.
// Возобновляются только rendered и error-shown: повторная отправка из них
// идет сразу в request-in-flight. Для остальных значений ok == false.
func ResumeCompareFlow(prev FlowState) (flow *CompareFlow, ok bool) {
	switch prev {
	case StateRendered, StateErrorShown:
		return &CompareFlow{state: prev}, true
	default:
		return nil, false
	}
}

// State - текущее состояние
func (f *CompareFlow) State() FlowState { return f.state }

// CanTransition проверяет переход без его выполнения
func (f *CompareFlow) CanTransition(to FlowState) bool {
	for _, next := range allowedTransitions[f.state] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition выполняет переход или возвращает ErrInvalidTransition
func (f *CompareFlow) Transition(to FlowState) error {
	if !f.CanTransition(to) {
		return apperrors.ErrInvalidTransition(string(f.state), string(to))
	}
	f.state = to
	return nil
}
