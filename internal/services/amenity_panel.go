package services

import (
	"context"
	"math"
	"strconv"
	"strings"

	"house_rent_web/internal/apiclient"
	"house_rent_web/internal/logger"
	"house_rent_web/internal/models"
)

// MsgPanelLoadFailed заменяет панель, если список критериев не загрузился
const MsgPanelLoadFailed = "Không thể tải danh sách tiện ích. Vui lòng kiểm tra lại API."

// WeightMin/WeightMax - границы поля веса
const (
	WeightMin = 0
	WeightMax = 100
)

// AmenityRow - строка панели: чекбокс + поле веса
type AmenityRow struct {
	Amenity models.Amenity
	Checked bool
	// Weight хранится как текст поля ввода, разбирается только при отправке
	Weight string
}

// Disabled - поле веса выключено, пока строка не отмечена
func (r AmenityRow) Disabled() bool { return !r.Checked }

// AmenityPanel - панель весов одной страницы.
// Состояние живет в рамках запроса, блокировки не нужны.
type AmenityPanel struct {
	client        apiclient.Client
	defaultWeight string

	rows    []AmenityRow
	LoadErr string
	err     error
}

// NewAmenityPanel создает пустую панель
func NewAmenityPanel(client apiclient.Client, defaultWeight int) *AmenityPanel {
	return &AmenityPanel{
		client:        client,
		defaultWeight: strconv.Itoa(defaultWeight),
	}
}

// Load запрашивает критерии и строит строки. Без повторов:
// при ошибке панель заменяется сообщением MsgPanelLoadFailed.
func (p *AmenityPanel) Load(ctx context.Context) error {
	criteria, err := p.client.Amenities(ctx)
	if err != nil {
		logger.CtxWarn(ctx, "Amenity panel load failed", "error", err)
		p.rows = nil
		p.LoadErr = MsgPanelLoadFailed
		p.err = err
		return err
	}
	p.LoadErr = ""
	p.err = nil
	p.Render(criteria)
	return nil
}

// Render строит по строке на критерий: не отмечено, вес по умолчанию
func (p *AmenityPanel) Render(criteria []models.Amenity) {
	p.rows = make([]AmenityRow, 0, len(criteria))
	for _, a := range criteria {
		p.rows = append(p.rows, AmenityRow{Amenity: a, Weight: p.defaultWeight})
	}
}

// Rows - строки в порядке отображения
func (p *AmenityPanel) Rows() []AmenityRow {
	out := make([]AmenityRow, len(p.rows))
	copy(out, p.rows)
	return out
}

// Failed - панель заменена сообщением об ошибке
func (p *AmenityPanel) Failed() bool { return p.LoadErr != "" }

// Err - исходная ошибка загрузки (nil, если панель загружена)
func (p *AmenityPanel) Err() error { return p.err }

func (p *AmenityPanel) index(id int) int {
	for i, r := range p.rows {
		if r.Amenity.ID == id {
			return i
		}
	}
	return -1
}

// Check отмечает строку и поднимает ее наверх (последняя отмеченная - первая).
// Неизвестный id игнорируется.
func (p *AmenityPanel) Check(id int) {
	i := p.index(id)
	if i < 0 {
		return
	}
	row := p.rows[i]
	row.Checked = true
	copy(p.rows[1:i+1], p.rows[:i])
	p.rows[0] = row
}

// Uncheck снимает отметку, строка остается на месте
func (p *AmenityPanel) Uncheck(id int) {
	if i := p.index(id); i >= 0 {
		p.rows[i].Checked = false
	}
}

// SetWeight сохраняет текст поля веса как есть
func (p *AmenityPanel) SetWeight(id int, raw string) {
	if i := p.index(id); i >= 0 {
		p.rows[i].Weight = raw
	}
}

// ApplyForm воспроизводит отправленную форму.
// checkedIDs идут в порядке DOM (последний отмеченный первым), поэтому
// отмечаем их в обратном порядке, и итоговый порядок совпадает с формой.
func (p *AmenityPanel) ApplyForm(checkedIDs []int, weights map[int]string) {
	for id, raw := range weights {
		p.SetWeight(id, raw)
	}
	for i := len(checkedIDs) - 1; i >= 0; i-- {
		p.Check(checkedIDs[i])
	}
}

// Selection возвращает id и веса отмеченных строк за один проход,
// поэтому срезы всегда одной длины и выровнены по индексу.
// Неразборчивый вес становится 0 и не выбрасывается.
func (p *AmenityPanel) Selection() (amenityIDs []int, weights []float64) {
	amenityIDs = []int{}
	weights = []float64{}
	for _, r := range p.rows {
		if !r.Checked {
			continue
		}
		amenityIDs = append(amenityIDs, r.Amenity.ID)
		weights = append(weights, ParseWeight(r.Weight))
	}
	return amenityIDs, weights
}

// ParseWeight: текст поля -> число, мусор -> 0
func ParseWeight(raw string) float64 {
	w, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w
}
