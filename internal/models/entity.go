package models

// Entity is implemented by every stored record so the generic repository can
// allocate and preserve sequential integer Ids.
type Entity interface {
	GetID() uint
	SetID(id uint)
}
