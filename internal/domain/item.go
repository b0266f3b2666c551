package domain

// ItemStatus availability status of an item
type ItemStatus string

const (
	ItemAvailable   ItemStatus = "AVAILABLE"
	ItemUnavailable ItemStatus = "UNAVAILABLE"
)

// ItemStatusFromBool конвертирует флаг available из API в статус
func ItemStatusFromBool(available bool) ItemStatus {
	if available {
		return ItemAvailable
	}
	return ItemUnavailable
}

// Item represents an item listed for rent
type Item struct {
	ID          int64
	Name        string
	Description string
	Status      ItemStatus
	OwnerID     int64
	RequestID   *int64 // запрос, в ответ на который добавлена вещь (опционально)
}

// IsAvailable returns true if the item can be booked
func (i *Item) IsAvailable() bool {
	return i.Status == ItemAvailable
}

// IsOwnedBy returns true if the item belongs to the given user
func (i *Item) IsOwnedBy(userID int64) bool {
	return i.OwnerID == userID
}
