package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnknownDataType — тип кэшируемых данных вне закрытого списка.
	ErrUnknownDataType = errors.New("unknown cache data type")
	// ErrEmptyShop — ключ без магазина.
	ErrEmptyShop = errors.New("shop is required")
)

// DataType — закрытый список категорий кэша.
// Строковое значение хранится в БД/Redis как есть.
type DataType string

const (
	DataTypeProductTypes  DataType = "productTypes"
	DataTypeVendors       DataType = "vendors"
	DataTypeCategories    DataType = "categories"
	DataTypeStoreSettings DataType = "storeSettings"
	DataTypeScopeCheck    DataType = "scopeCheck"
)

// AllDataTypes — все известные типы (порядок стабилен).
func AllDataTypes() []DataType {
	return []DataType{
		DataTypeProductTypes,
		DataTypeVendors,
		DataTypeCategories,
		DataTypeStoreSettings,
		DataTypeScopeCheck,
	}
}

// CatalogDataTypes — агрегаты, которые считаются обходом каталога.
func CatalogDataTypes() []DataType {
	return []DataType{DataTypeVendors, DataTypeProductTypes, DataTypeCategories}
}

// ParseDataType — строка → DataType; неизвестное значение → ErrUnknownDataType.
func ParseDataType(s string) (DataType, error) {
	for _, dt := range AllDataTypes() {
		if string(dt) == s {
			return dt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDataType, s)
}

func (d DataType) String() string { return string(d) }

// IsCatalog — агрегат, получаемый обходом каталога.
func (d DataType) IsCatalog() bool {
	switch d {
	case DataTypeVendors, DataTypeProductTypes, DataTypeCategories:
		return true
	default:
		return false
	}
}

// CacheKey — составной ключ (shop, dataType). Магазины никогда не делят записи.
type CacheKey struct {
	Shop     string
	DataType DataType
}

// Validate — магазин не пуст, тип из закрытого списка.
func (k CacheKey) Validate() error {
	if k.Shop == "" {
		return ErrEmptyShop
	}
	if _, err := ParseDataType(string(k.DataType)); err != nil {
		return err
	}
	return nil
}

// String — "{shop}:{dataType}", ключ статистики.
func (k CacheKey) String() string { return k.Shop + ":" + string(k.DataType) }

// CacheRow — хранимая запись кэша. Data — конверт кодека (payload + timestamp + expiresAt).
// ExpiresAt дублирует срок из конверта для запросов на уровне хранилища.
type CacheRow struct {
	Shop      string    `json:"shop"`
	DataType  DataType  `json:"dataType"`
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expiresAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Key — ключ записи.
func (r *CacheRow) Key() CacheKey { return CacheKey{Shop: r.Shop, DataType: r.DataType} }

// CacheMetadata — наблюдаемое состояние записи на момент чтения.
type CacheMetadata struct {
	IsStale      bool          `json:"isStale"`
	IsExpired    bool          `json:"isExpired"`
	Age          time.Duration `json:"age"`
	RemainingTTL time.Duration `json:"remainingTTL"`
	HitRate      float64       `json:"hitRate"`
}

// KeyStats — счётчики попаданий/промахов по ключу.
type KeyStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// HitRate — hits / (hits + misses); 0, если обращений не было.
func (s KeyStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
