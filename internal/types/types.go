// internal/types/types.go
package types

// EntityID: стабильный идентификатор сущности в реестре.
// Нулевое значение означает "нет сущности".
type EntityID uint64
