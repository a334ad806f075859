package variant

import "github.com/Gunvolt24/product_wizard/internal/domain"

// GenerateCombinations — GenerateCombinations на справочнике по умолчанию.
func GenerateCombinations(options []domain.Option) []domain.VariantCombination {
	return defaultSorter.GenerateCombinations(options)
}

// SortOptions — копия опций со значениями в каноническом порядке.
func (s *Sorter) SortOptions(options []domain.Option) []domain.Option {
	sorted := make([]domain.Option, 0, len(options))
	for _, opt := range options {
		sorted = append(sorted, domain.Option{Name: opt.Name, Values: s.SmartSort(opt.Values)})
	}
	return sorted
}

// GenerateCombinations — декартово произведение опций после SmartSort значений.
// Первая опция меняется медленнее всех, последняя — быстрее всех.
// Нет опций → пустой результат; опция без значений → пустой результат.
func (s *Sorter) GenerateCombinations(options []domain.Option) []domain.VariantCombination {
	if len(options) == 0 {
		return []domain.VariantCombination{}
	}

	sorted := s.SortOptions(options)
	total := 1
	for _, opt := range sorted {
		if len(opt.Values) == 0 {
			return []domain.VariantCombination{}
		}
		total *= len(opt.Values)
	}

	combos := make([]domain.VariantCombination, 0, total)
	// indices — «одометр» по опциям; младший разряд — последняя опция.
	indices := make([]int, len(sorted))
	for n := 0; n < total; n++ {
		values := make([]domain.OptionValue, len(sorted))
		for i, opt := range sorted {
			values[i] = domain.OptionValue{Name: opt.Name, Value: opt.Values[indices[i]]}
		}
		combos = append(combos, domain.VariantCombination{Values: values})

		for i := len(indices) - 1; i >= 0; i-- {
			indices[i]++
			if indices[i] < len(sorted[i].Values) {
				break
			}
			indices[i] = 0
		}
	}
	return combos
}

// Titles — отображаемые имена комбинаций в порядке генерации.
func Titles(combos []domain.VariantCombination) []string {
	titles := make([]string, 0, len(combos))
	for _, c := range combos {
		titles = append(titles, c.Title())
	}
	return titles
}
