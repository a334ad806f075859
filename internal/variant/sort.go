// Package variant — порядок значений опций, декартово произведение опций
// и сверка сгенерированных комбинаций с уже существующими вариантами.
package variant

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Classification — к какому виду относится весь набор значений опции.
type Classification int

const (
	ClassOther Classification = iota
	ClassClothing
	ClassNumeric
	ClassShoe
)

func (c Classification) String() string {
	switch c {
	case ClassClothing:
		return "clothing"
	case ClassNumeric:
		return "numeric"
	case ClassShoe:
		return "shoe"
	default:
		return "other"
	}
}

// Sorter — сортировка значений опций по справочнику размеров.
// Безопасен для конкурентного использования.
type Sorter struct {
	table     SizeTable
	clothing  map[string]int
	numeric   map[string]struct{}
	collators sync.Pool
}

// NewSorter — сортировщик на заданном справочнике.
func NewSorter(table SizeTable) *Sorter {
	numeric := make(map[string]struct{}, len(table.NumericSizes))
	for _, n := range table.NumericSizes {
		numeric[strings.TrimSpace(n)] = struct{}{}
	}
	s := &Sorter{
		table:    table,
		clothing: table.clothingIndex(),
		numeric:  numeric,
	}
	// collate.Collator держит внутренние буферы — по экземпляру на горутину.
	s.collators.New = func() any {
		return collate.New(language.English, collate.Numeric)
	}
	return s
}

var defaultSorter = NewSorter(DefaultSizeTable())

// DefaultSorter — сортировщик на справочнике по умолчанию.
func DefaultSorter() *Sorter { return defaultSorter }

// SmartSort — SmartSort на справочнике по умолчанию.
func SmartSort(values []string) []string { return defaultSorter.SmartSort(values) }

// Classify — Classify на справочнике по умолчанию.
func Classify(values []string) Classification { return defaultSorter.Classify(values) }

// Classify — классифицирует набор целиком. Порядок проверки: одежда, числа, обувь.
func (s *Sorter) Classify(values []string) Classification {
	switch {
	case s.all(values, s.isClothing):
		return ClassClothing
	case s.all(values, s.isNumeric):
		return ClassNumeric
	case s.all(values, s.isShoe):
		return ClassShoe
	default:
		return ClassOther
	}
}

// SmartSort — канонический порядок значений; вход не изменяется.
// Одежда: по позиции в справочнике, неизвестные — в конец по алфавиту.
// Числа и обувь: по числовому значению. Остальное: алфавит с учётом чисел ("Item 9" < "Item 10").
func (s *Sorter) SmartSort(values []string) []string {
	out := slices.Clone(values)
	if len(out) < 2 {
		return out
	}

	col := s.collators.Get().(*collate.Collator)
	defer s.collators.Put(col)
	alpha := func(a, b string) int {
		if c := col.CompareString(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}

	switch s.Classify(out) {
	case ClassClothing:
		slices.SortStableFunc(out, func(a, b string) int {
			ia, okA := s.clothing[normalizeSize(a)]
			ib, okB := s.clothing[normalizeSize(b)]
			switch {
			case okA && okB:
				if ia != ib {
					return ia - ib
				}
				return alpha(a, b)
			case okA:
				return -1
			case okB:
				return 1
			default:
				return alpha(a, b)
			}
		})
	case ClassNumeric, ClassShoe:
		slices.SortStableFunc(out, func(a, b string) int {
			fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
			fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
			switch {
			case errA == nil && errB == nil:
				if fa < fb {
					return -1
				}
				if fa > fb {
					return 1
				}
				return alpha(a, b)
			case errA == nil:
				return -1
			case errB == nil:
				return 1
			default:
				return alpha(a, b)
			}
		})
	default:
		slices.SortStableFunc(out, alpha)
	}
	return out
}

func (s *Sorter) all(values []string, pred func(string) bool) bool {
	for _, v := range values {
		if !pred(v) {
			return false
		}
	}
	return true
}

func (s *Sorter) isClothing(v string) bool {
	if _, ok := s.clothing[normalizeSize(v)]; ok {
		return true
	}
	v = strings.TrimSpace(v)
	return clothingSizePattern.MatchString(v) || clothingWordPattern.MatchString(v)
}

func (s *Sorter) isNumeric(v string) bool {
	v = strings.TrimSpace(v)
	if numericPattern.MatchString(v) {
		return true
	}
	_, ok := s.numeric[v]
	return ok
}

func (s *Sorter) isShoe(v string) bool {
	v = strings.TrimSpace(v)
	if !numericPattern.MatchString(v) {
		return false
	}
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && f >= s.table.ShoeMin && f <= s.table.ShoeMax
}
