package views

import (
	"net/url"
	"strconv"

	"house_rent_web/internal/selection"
	"house_rent_web/internal/services"
)

// PanelRow - строка панели весов
type PanelRow struct {
	ID       int
	Label    string
	Checked  bool
	Disabled bool
	Weight   string
	Min      int
	Max      int
}

// PanelView - панель весов или сообщение об ошибке загрузки
type PanelView struct {
	Failed  bool
	Message string
	Rows    []PanelRow
}

// BuildPanelView: строки в порядке панели (последние отмеченные сверху)
func BuildPanelView(panel *services.AmenityPanel) PanelView {
	if panel.Failed() {
		return PanelView{Failed: true, Message: panel.LoadErr}
	}
	view := PanelView{}
	for _, r := range panel.Rows() {
		view.Rows = append(view.Rows, PanelRow{
			ID:       r.Amenity.ID,
			Label:    r.Amenity.Label(),
			Checked:  r.Checked,
			Disabled: r.Disabled(),
			Weight:   r.Weight,
			Min:      services.WeightMin,
			Max:      services.WeightMax,
		})
	}
	return view
}

// CompareView - страница сравнения: панель, предупреждение, ошибка, результат
type CompareView struct {
	IDs        string
	Count      int
	CanCompare bool
	BackURL    string
	Panel      PanelView
	State      services.FlowState
	Alert      string
	Error      string
	Result     *ResultView
}

// BuildComparePage - страница до отправки формы
func BuildComparePage(sel selection.Set, panel *services.AmenityPanel, flow *services.CompareFlow) CompareView {
	return CompareView{
		IDs:        sel.Encode(),
		Count:      sel.Count(),
		CanCompare: sel.CanCompare(),
		BackURL:    backURL(sel),
		Panel:      BuildPanelView(panel),
		State:      flow.State(),
	}
}

// BuildCompareResultPage - страница после отправки. form - отправленные
// значения, из них строятся ссылки пагинации карточек (rpage).
func BuildCompareResultPage(out *services.CompareOutcome, form url.Values, resultPage, resultPageSize int) CompareView {
	view := BuildComparePage(out.IDs, out.Panel, out.Flow)
	view.Alert = out.Alert
	view.Error = out.Error
	if out.Result != nil {
		rv := BuildResultView(out.Result, resultPage, resultPageSize, func(p int) string {
			v := url.Values{}
			for k, vals := range form {
				v[k] = append([]string(nil), vals...)
			}
			v.Set("rpage", strconv.Itoa(p))
			return pageURL("/compare/result", v)
		})
		view.Result = &rv
	}
	return view
}

func backURL(sel selection.Set) string {
	v := url.Values{}
	if sel.Count() > 0 {
		v.Set(selection.Param, sel.Encode())
	}
	return pageURL("/", v)
}
