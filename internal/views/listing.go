package views

import (
	"net/url"
	"strconv"

	"house_rent_web/internal/models"
	"house_rent_web/internal/selection"
	"house_rent_web/internal/services"
	"house_rent_web/internal/services/dto"
)

// ListingCard - карточка объявления на странице поиска
type ListingCard struct {
	ID             int
	Title          string
	Address        string
	HouseType      string
	ContractPeriod string
	Phone          string
	Price          string
	Acreage        string
	Selected       bool
	ToggleURL      string
}

// CSSClass - "card selected" для отмеченных карточек
func (c ListingCard) CSSClass() string {
	if c.Selected {
		return "card selected"
	}
	return "card"
}

// SelectionBar - панель выбора над карточками
type SelectionBar struct {
	Count      int
	CanCompare bool
	CompareURL string
	ClearURL   string
}

// Option - пункт <select>
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// FilterView - форма поиска со значениями и списками
type FilterView struct {
	Form       dto.SearchForm
	IDs        string
	HouseTypes []Option
	Provinces  []Option
	Districts  []Option
	Wards      []Option
}

// SearchView - страница поиска целиком
type SearchView struct {
	Filters   FilterView
	Cards     []ListingCard
	Message   string
	Failed    bool
	Pager     Pager
	Selection SelectionBar
}

// BuildSearchView собирает страницу поиска. Ссылки сохраняют фильтры,
// номер страницы и выбор (ids).
func BuildSearchView(form dto.SearchForm, page *services.SearchPage, opts *services.FilterOptions, sel selection.Set) SearchView {
	link := func(p int, ids selection.Set) string {
		v := form.Values()
		if p > 1 {
			v.Set("page", strconv.Itoa(p))
		}
		if ids.Count() > 0 {
			v.Set(selection.Param, ids.Encode())
		}
		return pageURL("/", v)
	}

	view := SearchView{
		Filters: buildFilterView(form, opts, sel),
		Message: page.Message,
		Failed:  page.Failed,
		Pager: NewPager(page.Page, page.HasNext, func(p int) string {
			return link(p, sel)
		}),
		Selection: SelectionBar{
			Count:      sel.Count(),
			CanCompare: sel.CanCompare(),
			CompareURL: CompareURL(sel),
			ClearURL:   link(page.Page, sel.Cleared()),
		},
	}

	for _, l := range page.Listings {
		view.Cards = append(view.Cards, ListingCard{
			ID:             l.ID,
			Title:          l.Title,
			Address:        l.Address,
			HouseType:      orNA(l.HouseType),
			ContractPeriod: orNA(l.ContractPeriod),
			Phone:          orNA(l.PhoneNumber),
			Price:          plain(l.Price),
			Acreage:        plain(l.Acreage),
			Selected:       sel.Has(l.ID),
			ToggleURL:      link(page.Page, sel.Toggled(l.ID)),
		})
	}
	return view
}

// CompareURL - ссылка на страницу сравнения для выбора
func CompareURL(sel selection.Set) string {
	v := url.Values{}
	v.Set(selection.Param, sel.Encode())
	return pageURL("/compare", v)
}

func buildFilterView(form dto.SearchForm, opts *services.FilterOptions, sel selection.Set) FilterView {
	fv := FilterView{Form: form, IDs: sel.Encode()}
	if opts == nil {
		return fv
	}
	for _, ht := range opts.HouseTypes {
		fv.HouseTypes = append(fv.HouseTypes, Option{Value: ht.Name, Label: ht.Name, Selected: ht.Name == form.HouseType})
	}
	fv.Provinces = locationOptions(opts.Provinces, form.ProvinceID)
	fv.Districts = locationOptions(opts.Districts, form.DistrictID)
	fv.Wards = locationOptions(opts.Wards, form.WardID)
	return fv
}

func locationOptions(items []models.Location, selected string) []Option {
	out := make([]Option, 0, len(items))
	for _, it := range items {
		id := strconv.Itoa(it.ID)
		out = append(out, Option{Value: id, Label: it.Name, Selected: id == selected})
	}
	return out
}

func pageURL(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}
