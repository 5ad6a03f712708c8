package views

import "fmt"

// LinkFunc строит ссылку на страницу с номером page
type LinkFunc func(page int) string

// Pager - кнопки "назад/вперед" и подпись "Trang N"
type Pager struct {
	Page    int
	Label   string
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

// NewPager: prev выключена на первой странице, next - если hasNext == false
func NewPager(page int, hasNext bool, link LinkFunc) Pager {
	if page < 1 {
		page = 1
	}
	p := Pager{
		Page:    page,
		Label:   fmt.Sprintf("Trang %d", page),
		HasPrev: page > 1,
		HasNext: hasNext,
	}
	if link != nil {
		if p.HasPrev {
			p.PrevURL = link(page - 1)
		}
		if p.HasNext {
			p.NextURL = link(page + 1)
		}
	}
	return p
}

// Visible - пагинация нужна, если есть куда листать
func (p Pager) Visible() bool {
	return p.HasPrev || p.HasNext
}
