package views

const (
	GlyphExpanded  = "-"
	GlyphCollapsed = "+"
)

// Section - сворачиваемый блок вывода. Состояние между рендерами не хранится.
type Section struct {
	ID       string
	Title    string
	Expanded bool
}

// NewSection создает развернутый блок
func NewSection(id, title string) Section {
	return Section{ID: id, Title: title, Expanded: true}
}

// Glyph - индикатор в заголовке
func (s Section) Glyph() string {
	if s.Expanded {
		return GlyphExpanded
	}
	return GlyphCollapsed
}

// Display - значение CSS display для тела блока
func (s Section) Display() string {
	if s.Expanded {
		return "block"
	}
	return "none"
}

// Toggle переключает видимость и индикатор вместе
func (s *Section) Toggle() {
	s.Expanded = !s.Expanded
}
