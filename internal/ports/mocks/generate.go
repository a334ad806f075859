//go:generate mockgen -source=../cache_store.go      -destination=./mock_cache_store.go      -package=mocks
//go:generate mockgen -source=../stats.go            -destination=./mock_stats.go            -package=mocks
//go:generate mockgen -source=../catalog.go          -destination=./mock_catalog.go          -package=mocks
//go:generate mockgen -source=../variant.go          -destination=./mock_variant.go          -package=mocks
//go:generate mockgen -source=../cache_admin.go      -destination=./mock_cache_admin.go      -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks
//go:generate mockgen -source=../event.go            -destination=./mock_event.go            -package=mocks

package mocks
