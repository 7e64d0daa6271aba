package catalog

import (
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ===============================
// Catálogo (somente leitura)
// ===============================

// Catalog resolve serviços e barbeiros por ID para o core.
// O seed é imutável durante a sessão; os getters devolvem cópias.
type Catalog struct {
	services     map[string]models.Service
	serviceOrder []string

	barbers     map[string]models.Barber
	barberOrder []string

	shop  models.ShopInfo
	hours map[int]models.WorkingHours
}

func New(
	services []models.Service,
	barbers []models.Barber,
	shop models.ShopInfo,
	hours []models.WorkingHours,
) *Catalog {

	c := &Catalog{
		services: make(map[string]models.Service, len(services)),
		barbers:  make(map[string]models.Barber, len(barbers)),
		shop:     shop,
		hours:    make(map[int]models.WorkingHours, len(hours)),
	}

	for _, s := range services {
		c.services[s.ID] = s
		c.serviceOrder = append(c.serviceOrder, s.ID)
	}
	for _, b := range barbers {
		c.barbers[b.ID] = b
		c.barberOrder = append(c.barberOrder, b.ID)
	}
	for _, wh := range hours {
		c.hours[wh.Weekday] = wh
	}

	return c
}

func (c *Catalog) GetService(id string) (models.Service, bool) {
	s, ok := c.services[id]
	return s, ok
}

func (c *Catalog) GetBarber(id string) (models.Barber, bool) {
	b, ok := c.barbers[id]
	return b, ok
}

func (c *Catalog) ListServices() []models.Service {
	out := make([]models.Service, 0, len(c.serviceOrder))
	for _, id := range c.serviceOrder {
		out = append(out, c.services[id])
	}
	return out
}

func (c *Catalog) ListBarbers() []models.Barber {
	out := make([]models.Barber, 0, len(c.barberOrder))
	for _, id := range c.barberOrder {
		out = append(out, c.barbers[id])
	}
	return out
}

func (c *Catalog) Shop() models.ShopInfo {
	return c.shop
}

// HoursFor resolve o expediente do dia da semana (0 = domingo).
// Dia sem registro ou inativo conta como fechado.
func (c *Catalog) HoursFor(weekday int) (models.WorkingHours, bool) {
	wh, ok := c.hours[weekday]
	if !ok || !wh.Active {
		return models.WorkingHours{}, false
	}
	return wh, true
}

func (c *Catalog) ListWorkingHours() []models.WorkingHours {
	out := make([]models.WorkingHours, 0, 7)
	for wd := 0; wd < 7; wd++ {
		if wh, ok := c.hours[wd]; ok {
			out = append(out, wh)
		}
	}
	return out
}
