package domain

// CatalogProduct — поля товара, нужные для агрегатов каталога.
type CatalogProduct struct {
	Vendor      string `json:"vendor"`
	ProductType string `json:"productType"`
	Category    string `json:"category"`
}

// CatalogPage — одна страница курсорной пагинации Admin API.
type CatalogPage struct {
	Products    []CatalogProduct
	HasNextPage bool
	EndCursor   string
}

// CatalogList — агрегат каталога с метаданными кэша (nil, если пересчитан только что).
type CatalogList struct {
	DataType DataType       `json:"dataType"`
	Values   []string       `json:"values"`
	Cache    *CacheMetadata `json:"cache,omitempty"`
}

// CatalogEvent — уведомление об изменении данных магазина (Kafka/webhook).
// DataTypes пуст → типы выводятся из Topic.
type CatalogEvent struct {
	Shop      string     `json:"shop"`
	Topic     string     `json:"topic"`
	DataTypes []DataType `json:"dataTypes,omitempty"`
}

// Shopify-топики, влияющие на кэш.
const (
	TopicProductsCreate = "products/create"
	TopicProductsUpdate = "products/update"
	TopicProductsDelete = "products/delete"
	TopicScopesUpdate   = "app/scopes_update"
	TopicShopUpdate     = "shop/update"
	// TopicAppUninstalled — сбрасываются все записи магазина.
	TopicAppUninstalled = "app/uninstalled"

	// TopicSubscriptionsUpdate — смена тарифа приложения меняет доступные возможности.
	TopicSubscriptionsUpdate = "app_subscriptions/update"
)

// AffectedDataTypes — какие ключи кэша инвалидирует событие.
func (e CatalogEvent) AffectedDataTypes() []DataType {
	if len(e.DataTypes) > 0 {
		return e.DataTypes
	}
	return DataTypesForTopic(e.Topic)
}

// DataTypesForTopic — соответствие топика типам данных; неизвестный топик → nil.
func DataTypesForTopic(topic string) []DataType {
	switch topic {
	case TopicProductsCreate, TopicProductsUpdate, TopicProductsDelete:
		return CatalogDataTypes()
	case TopicScopesUpdate, TopicSubscriptionsUpdate:
		return []DataType{DataTypeScopeCheck}
	case TopicShopUpdate:
		return []DataType{DataTypeStoreSettings}
	default:
		return nil
	}
}
