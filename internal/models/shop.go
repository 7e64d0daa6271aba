package models

type ShopInfo struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Whatsapp    string `json:"whatsapp"`
	MapsLink    string `json:"maps_link"`

	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}
