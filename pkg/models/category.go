package models

type Brand struct {
	Id   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Slug string `bson:"slug" json:"slug"`
}

type DeviceType struct {
	Id     string  `bson:"id" json:"id"`
	Name   string  `bson:"name" json:"name"`
	Slug   string  `bson:"slug" json:"slug"`
	Brands []Brand `bson:"brands" json:"brands"`
}

type Category struct {
	Id          string       `bson:"_id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Slug        string       `bson:"slug" json:"slug"`
	DeviceTypes []DeviceType `bson:"device_types" json:"deviceTypes"`
}

// CategoryPath is a breadcrumb through the taxonomy. Unresolved levels are nil.
type CategoryPath struct {
	Category   *Category   `json:"category,omitempty"`
	DeviceType *DeviceType `json:"deviceType,omitempty"`
	Brand      *Brand      `json:"brand,omitempty"`
}
