//go:generate mockgen -source=../menu_service.go   -destination=./mock_menu_service.go   -package=mocks
//go:generate mockgen -source=../order_service.go  -destination=./mock_order_service.go  -package=mocks
//go:generate mockgen -source=../settings_store.go -destination=./mock_settings_store.go -package=mocks

package mocks
