package entities

// KVEntry is one key of the backing store. Value holds the whole serialized
// collection stored under Key.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:64" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`

	Timestamp
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
