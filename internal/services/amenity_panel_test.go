package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"house_rent_web/internal/apiclient"
	"house_rent_web/internal/models"
	"house_rent_web/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCriteria = []models.Amenity{
	{ID: 9, Category: "Nội thất", Value: "Có"},
	{ID: 10, Category: "An ninh", Value: "Bảo vệ 24/7"},
	{ID: 11, Category: "Chỗ để xe", Value: "Miễn phí"},
	{ID: 12, Category: "Điều hòa", Value: "Có"},
}

func rowIDs(p *AmenityPanel) []int {
	var ids []int
	for _, r := range p.Rows() {
		ids = append(ids, r.Amenity.ID)
	}
	return ids
}

func renderedPanel() *AmenityPanel {
	p := NewAmenityPanel(nil, 50)
	p.Render(testCriteria)
	return p
}

func TestAmenityPanel_RenderDefaults(t *testing.T) {
	p := renderedPanel()
	rows := p.Rows()
	require.Len(t, rows, 4)
	for _, r := range rows {
		assert.False(t, r.Checked)
		assert.True(t, r.Disabled())
		assert.Equal(t, "50", r.Weight)
	}
	assert.Equal(t, "Nội thất: Có", rows[0].Amenity.Label())
}

func TestAmenityPanel_CheckMovesRowToTop(t *testing.T) {
	p := renderedPanel()

	p.Check(11)
	assert.Equal(t, []int{11, 9, 10, 12}, rowIDs(p))
	p.Check(12)
	assert.Equal(t, []int{12, 11, 9, 10}, rowIDs(p))

	// Снятие отметки не двигает строку
	p.Uncheck(12)
	assert.Equal(t, []int{12, 11, 9, 10}, rowIDs(p))
	assert.True(t, p.Rows()[0].Disabled())

	// Неизвестный id игнорируется
	p.Check(999)
	assert.Equal(t, []int{12, 11, 9, 10}, rowIDs(p))
}

func TestAmenityPanel_ApplyFormKeepsSubmittedOrder(t *testing.T) {
	p := renderedPanel()
	p.ApplyForm([]int{12, 9, 10}, map[int]string{12: "80", 9: "20"})

	ids, weights := p.Selection()
	assert.Equal(t, []int{12, 9, 10}, ids)
	assert.Equal(t, []float64{80, 20, 50}, weights)
	assert.Equal(t, []int{12, 9, 10, 11}, rowIDs(p))
}

// amenities и weights одной длины и выровнены по отмеченным строкам
func TestAmenityPanel_SelectionAligned(t *testing.T) {
	cases := []struct {
		name    string
		checked []int
		weights map[int]string
	}{
		{"none", nil, nil},
		{"one", []int{10}, map[int]string{10: "70"}},
		{"all", []int{9, 10, 11, 12}, map[int]string{9: "1", 10: "2", 11: "3", 12: "4"}},
		{"weights on unchecked rows", []int{11}, map[int]string{9: "99", 11: "5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := renderedPanel()
			p.ApplyForm(tc.checked, tc.weights)

			ids, weights := p.Selection()
			require.Len(t, weights, len(ids))
			assert.Equal(t, len(tc.checked), len(ids))
			for i, id := range ids {
				raw, ok := tc.weights[id]
				if !ok {
					raw = "50"
				}
				assert.Equal(t, ParseWeight(raw), weights[i], "amenity %d", id)
			}
		})
	}
}

// Невалидный вес уходит как 0 и не выбрасывается
func TestAmenityPanel_InvalidWeightBecomesZero(t *testing.T) {
	p := renderedPanel()
	p.ApplyForm([]int{9, 10, 11}, map[int]string{9: "abc", 10: "", 11: "NaN"})

	ids, weights := p.Selection()
	assert.Equal(t, []int{9, 10, 11}, ids)
	assert.Equal(t, []float64{0, 0, 0}, weights)
}

func TestParseWeight(t *testing.T) {
	assert.Equal(t, 42.5, ParseWeight(" 42.5 "))
	assert.Equal(t, 0.0, ParseWeight("x"))
	assert.Equal(t, 0.0, ParseWeight("+Inf"))
	assert.Equal(t, 100.0, ParseWeight("100"))
}

func TestAmenityPanel_Load(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	client := apiclient.New(api.URL(), 2*time.Second)

	p := NewAmenityPanel(client, 50)
	require.NoError(t, p.Load(context.Background()))
	assert.False(t, p.Failed())
	assert.Len(t, p.Rows(), len(api.AmenityList))

	api.Fail["/api/item/amenities"] = http.StatusInternalServerError
	failed := NewAmenityPanel(client, 50)
	assert.Error(t, failed.Load(context.Background()))
	assert.True(t, failed.Failed())
	assert.Equal(t, MsgPanelLoadFailed, failed.LoadErr)
	assert.Empty(t, failed.Rows())
	assert.Equal(t, 2, api.Hits("/api/item/amenities"), "no retry")
}
