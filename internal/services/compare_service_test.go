package services

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"house_rent_web/internal/apiclient"
	"house_rent_web/internal/logger"
	"house_rent_web/internal/models"
	"house_rent_web/internal/selection"
	"house_rent_web/internal/services/dto"
	"house_rent_web/internal/testutil"
	"house_rent_web/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const comparePath = "/api/dss/compare"

func newCompareService(t *testing.T) (CompareService, *testutil.FakeAPI) {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	return NewCompareService(apiclient.New(api.URL(), 2*time.Second), 50), api
}

func TestCompareService_BuildRequest(t *testing.T) {
	svc := NewCompareService(nil, 50)
	panel := renderedPanel()
	panel.ApplyForm([]int{10, 9}, map[int]string{10: "30", 9: "oops"})

	req, err := svc.BuildRequest(selection.Parse("3,1,2"), panel)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, req.HouseRentIDs)
	assert.Equal(t, []int{10, 9}, req.Amenities)
	assert.Equal(t, []float64{30, 0}, req.Weights)
	assert.NotNil(t, req.TopsisWeight)
	assert.Empty(t, req.TopsisWeight)
}

func TestCompareService_BuildRequestNoCriteria(t *testing.T) {
	svc := NewCompareService(nil, 50)
	_, err := svc.BuildRequest(selection.Parse("1,2"), renderedPanel())
	require.Error(t, err)
	assert.True(t, IsNoCriteria(err))
}

func TestCompareService_RunRendered(t *testing.T) {
	svc, api := newCompareService(t)
	api.Result = &models.CompareResult{
		RankedHouses: []models.RankedHouse{{HouseRent: models.HouseRent{ID: 1}, Rank: 1, TopsisScore: 0.7321}},
		IdealBest:    &models.IdealRecord{Price: 3},
		IdealWorst:   &models.IdealRecord{Price: 9},
	}

	out := svc.Run(context.Background(), dto.CompareForm{
		IDs:        "1,2",
		AmenityIDs: []int{9, 11},
		RawWeights: map[int]string{9: "70", 11: "bad"},
	})

	assert.Equal(t, StateRendered, out.Flow.State())
	assert.Empty(t, out.Alert)
	assert.Empty(t, out.Error)
	require.NotNil(t, out.Result)
	assert.Len(t, out.Result.RankedHouses, 1)

	sent := api.LastCompare()
	require.NotNil(t, sent)
	assert.Equal(t, []int{1, 2}, sent.HouseRentIDs)
	assert.Equal(t, []int{9, 11}, sent.Amenities)
	assert.Equal(t, []float64{70, 0}, sent.Weights)
	assert.Contains(t, string(api.LastCompareRaw()), `"topsis_weight":[]`)
}

// Без критериев запрос не уходит, пользователь видит предупреждение
func TestCompareService_RunNoCriteriaSkipsRequest(t *testing.T) {
	svc, api := newCompareService(t)

	out := svc.Run(context.Background(), dto.CompareForm{IDs: "1,2", RawWeights: map[int]string{9: "10"}})

	assert.Equal(t, apperrors.ErrNoCriteriaSelected.Message, out.Alert)
	assert.Equal(t, StateCriteriaReady, out.Flow.State())
	assert.Nil(t, out.Result)
	assert.Equal(t, 0, api.Hits(comparePath))
	assert.Nil(t, api.LastCompare())
}

func TestCompareService_RunUpstreamError(t *testing.T) {
	svc, api := newCompareService(t)
	api.Fail[comparePath] = http.StatusInternalServerError

	out := svc.Run(context.Background(), dto.CompareForm{IDs: "1,2", AmenityIDs: []int{9}})

	assert.Equal(t, StateErrorShown, out.Flow.State())
	assert.Equal(t, "Không thể so sánh: Lỗi API: Internal Server Error", out.Error)
	assert.Nil(t, out.Result)
	assert.Equal(t, 1, api.Hits(comparePath), "no retry")
}

func TestCompareService_RunPanelLoadFailure(t *testing.T) {
	svc, api := newCompareService(t)
	api.Fail["/api/item/amenities"] = http.StatusServiceUnavailable

	out := svc.Run(context.Background(), dto.CompareForm{IDs: "1,2", AmenityIDs: []int{9}})

	assert.True(t, out.Panel.Failed())
	assert.Equal(t, StateErrorShown, out.Flow.State())
	assert.Empty(t, out.Alert)
	assert.Equal(t, 0, api.Hits(comparePath))
}

func TestCompareService_LoadPanel(t *testing.T) {
	svc, _ := newCompareService(t)
	panel, flow := svc.LoadPanel(context.Background())
	assert.Equal(t, StateCriteriaReady, flow.State())
	assert.Len(t, panel.Rows(), 3)
}

// Повторная отправка со страницы результата/ошибки продолжает тот же сценарий
func TestCompareService_RunResubmit(t *testing.T) {
	tests := []struct {
		name      string
		prev      FlowState
		amenities []int
		fail      bool
		want      FlowState
	}{
		{"after result", StateRendered, []int{9}, false, StateRendered},
		{"after error, succeeds", StateErrorShown, []int{9}, false, StateRendered},
		{"after result, fails", StateRendered, []int{9}, true, StateErrorShown},
		{"after result, no criteria keeps result state", StateRendered, nil, false, StateRendered},
		{"unknown state starts over", FlowState("bogus"), nil, false, StateCriteriaReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWithWriter("test", &buf)
			t.Cleanup(func() { logger.InitWithWriter("test", io.Discard) })

			svc, api := newCompareService(t)
			if tt.fail {
				api.Fail[comparePath] = http.StatusInternalServerError
			}

			out := svc.Run(context.Background(), dto.CompareForm{
				IDs:        "1,2",
				AmenityIDs: tt.amenities,
				PrevState:  string(tt.prev),
			})

			assert.Equal(t, tt.want, out.Flow.State())
			assert.NotContains(t, buf.String(), "Compare flow transition rejected")
		})
	}
}
