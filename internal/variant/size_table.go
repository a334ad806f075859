package variant

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	clothingSizePattern = regexp.MustCompile(`(?i)^(XXS|XS|S|M|L|XL|XXL|XXXL|\d+XL)$`)
	clothingWordPattern = regexp.MustCompile(`(?i)^(EXTRA\s+SMALL|SMALL|MEDIUM|LARGE|EXTRA\s+LARGE)$`)
	numericPattern      = regexp.MustCompile(`^\d+(\.\d+)?$`)
	spaces              = regexp.MustCompile(`\s+`)
)

// SizeTable — справочник размеров для классификации и порядка значений опций.
// Это контентные данные, поэтому их можно переопределить YAML-файлом.
type SizeTable struct {
	// ClothingOrder — канонический порядок буквенных размеров.
	ClothingOrder []string `yaml:"clothing_order"`
	// ClothingAliases — словесные синонимы → значение из ClothingOrder.
	ClothingAliases map[string]string `yaml:"clothing_aliases"`
	// NumericSizes — явный список числовых размеров.
	NumericSizes []string `yaml:"numeric_sizes"`
	// ShoeMin/ShoeMax — диапазон обувных размеров (включительно).
	ShoeMin float64 `yaml:"shoe_min"`
	ShoeMax float64 `yaml:"shoe_max"`
}

// DefaultSizeTable — англоязычный справочник по умолчанию.
func DefaultSizeTable() SizeTable {
	numeric := make([]string, 0, 21)
	for n := 0; n <= 40; n += 2 {
		numeric = append(numeric, fmt.Sprint(n))
	}
	return SizeTable{
		ClothingOrder: []string{"XXS", "XS", "S", "M", "L", "XL", "XXL", "XXXL", "3XL", "4XL", "5XL"},
		ClothingAliases: map[string]string{
			"EXTRA SMALL": "XS",
			"SMALL":       "S",
			"MEDIUM":      "M",
			"LARGE":       "L",
			"EXTRA LARGE": "XL",
		},
		NumericSizes: numeric,
		ShoeMin:      3,
		ShoeMax:      20,
	}
}

// LoadSizeTable — читает справочник из YAML; незаданные поля берутся из DefaultSizeTable.
func LoadSizeTable(path string) (SizeTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SizeTable{}, fmt.Errorf("read size table: %w", err)
	}
	var loaded SizeTable
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return SizeTable{}, fmt.Errorf("parse size table: %w", err)
	}

	table := DefaultSizeTable()
	if len(loaded.ClothingOrder) > 0 {
		table.ClothingOrder = loaded.ClothingOrder
	}
	if len(loaded.ClothingAliases) > 0 {
		table.ClothingAliases = loaded.ClothingAliases
	}
	if len(loaded.NumericSizes) > 0 {
		table.NumericSizes = loaded.NumericSizes
	}
	if loaded.ShoeMax > 0 {
		table.ShoeMin, table.ShoeMax = loaded.ShoeMin, loaded.ShoeMax
	}
	if table.ShoeMin > table.ShoeMax {
		return SizeTable{}, fmt.Errorf("size table: shoe_min %.1f > shoe_max %.1f", table.ShoeMin, table.ShoeMax)
	}
	return table, nil
}

// normalizeSize — верхний регистр и схлопывание пробелов: "Extra  large" → "EXTRA LARGE".
func normalizeSize(v string) string {
	return spaces.ReplaceAllString(strings.ToUpper(strings.TrimSpace(v)), " ")
}

// clothingIndex — таблица «нормализованное значение → позиция».
func (t SizeTable) clothingIndex() map[string]int {
	idx := make(map[string]int, len(t.ClothingOrder)+len(t.ClothingAliases))
	for i, s := range t.ClothingOrder {
		idx[normalizeSize(s)] = i
	}
	for alias, canonical := range t.ClothingAliases {
		if pos, ok := idx[normalizeSize(canonical)]; ok {
			idx[normalizeSize(alias)] = pos
		}
	}
	return idx
}
