// Package testinfra поднимает внешние зависимости для интеграционных тестов.
// Файлы с контейнерами собираются только с тегом integration:
//
//	go test -tags integration ./...
package testinfra
