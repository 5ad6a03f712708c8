// Package selection - набор объявлений, выбранных для сравнения.
//
// Набор живет в query-параметре ids и восстанавливается на каждом запросе,
// поэтому между перезагрузками сохраняется только через URL.
package selection

import (
	"sort"
	"strconv"
	"strings"
)

// MinToCompare - минимальный размер набора, при котором доступно сравнение
const MinToCompare = 2

// Param - имя query-параметра
const Param = "ids"

// Set - множество id объявлений. Нулевое значение готово к использованию.
type Set struct {
	ids map[int]struct{}
}

// Parse разбирает "3,1,2". Пустые и нечисловые токены пропускаются, дубликаты схлопываются.
func Parse(raw string) Set {
	var s Set
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		s.add(id)
	}
	return s
}

// FromIDs строит набор из среза
func FromIDs(ids []int) Set {
	var s Set
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *Set) add(id int) {
	if s.ids == nil {
		s.ids = make(map[int]struct{})
	}
	s.ids[id] = struct{}{}
}

// Toggle удаляет id, если он есть, иначе добавляет
func (s *Set) Toggle(id int) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.add(id)
}

// Clear очищает набор
func (s *Set) Clear() {
	s.ids = nil
}

func (s Set) Count() int {
	return len(s.ids)
}

func (s Set) Has(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// CanCompare - кнопка сравнения активна только при Count() >= 2
func (s Set) CanCompare() bool {
	return s.Count() >= MinToCompare
}

// IDs возвращает id по возрастанию
func (s Set) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Encode - обратная к Parse форма: "1,2,3"
func (s Set) Encode() string {
	ids := s.IDs()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// Toggled возвращает копию с переключенным id; исходный набор не меняется
func (s Set) Toggled(id int) Set {
	cp := s.clone()
	cp.Toggle(id)
	return cp
}

// Cleared возвращает пустой набор
func (s Set) Cleared() Set {
	return Set{}
}

// Equal сравнивает содержимое наборов
func (s Set) Equal(other Set) bool {
	if s.Count() != other.Count() {
		return false
	}
	for id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

func (s Set) clone() Set {
	var cp Set
	for id := range s.ids {
		cp.add(id)
	}
	return cp
}
