package catalog

import "github.com/BruksfildServices01/barber-queue/internal/models"

// Seed monta o catálogo da Barber Studio (dados da sessão de demonstração).
func Seed() *Catalog {

	services := []models.Service{
		{ID: "1", Name: "Corte Masculino", Description: "Corte moderno com acabamento impecável", DurationMin: 30, Price: 45, Icon: "Scissors"},
		{ID: "2", Name: "Barba Completa", Description: "Modelagem e hidratação profissional", DurationMin: 25, Price: 35, Icon: "Brush"},
		{ID: "3", Name: "Corte + Barba", Description: "Combo completo para o visual perfeito", DurationMin: 50, Price: 70, Icon: "Crown"},
		{ID: "4", Name: "Navalhado", Description: "Acabamento preciso com navalha", DurationMin: 20, Price: 25, Icon: "Zap"},
		{ID: "5", Name: "Pigmentação", Description: "Cobertura natural de fios brancos", DurationMin: 40, Price: 55, Icon: "Palette"},
		{ID: "6", Name: "Tratamento Capilar", Description: "Hidratação e revitalização", DurationMin: 35, Price: 60, Icon: "Sparkles"},
	}

	barbers := []models.Barber{
		{
			ID:          "1",
			Name:        "Ricardo Silva",
			Photo:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop&crop=face",
			Specialties: []string{"Corte Degradê", "Barba"},
			Rating:      4.9,
			ReviewCount: 234,
			Available:   true,
		},
		{
			ID:          "2",
			Name:        "Carlos Mendes",
			Photo:       "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=200&h=200&fit=crop&crop=face",
			Specialties: []string{"Navalhado", "Pigmentação"},
			Rating:      4.8,
			ReviewCount: 189,
			Available:   true,
		},
		{
			ID:          "3",
			Name:        "André Costa",
			Photo:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop&crop=face",
			Specialties: []string{"Corte Clássico", "Tratamentos"},
			Rating:      4.7,
			ReviewCount: 156,
			Available:   false,
		},
	}

	shop := models.ShopInfo{
		Name:        "Barber Studio",
		Tagline:     "Experiência Premium em Cortes Masculinos",
		Description: "Há mais de 10 anos transformando o visual masculino com precisão, estilo e atendimento de excelência.",
		Address:     "Av. Paulista, 1000 - São Paulo, SP",
		Phone:       "(11) 99999-0000",
		Whatsapp:    "5511999990000",
		MapsLink:    "https://maps.google.com/?q=Av.+Paulista,+1000,+São+Paulo",
		Instagram:   "https://instagram.com/barberstudio",
		Facebook:    "https://facebook.com/barberstudio",
	}

	// Segunda a sexta 09-20, sábado 09-18, domingo fechado.
	hours := []models.WorkingHours{
		{Weekday: 0, Active: false},
		{Weekday: 1, StartTime: "09:00", EndTime: "20:00", Active: true},
		{Weekday: 2, StartTime: "09:00", EndTime: "20:00", Active: true},
		{Weekday: 3, StartTime: "09:00", EndTime: "20:00", Active: true},
		{Weekday: 4, StartTime: "09:00", EndTime: "20:00", Active: true},
		{Weekday: 5, StartTime: "09:00", EndTime: "20:00", Active: true},
		{Weekday: 6, StartTime: "09:00", EndTime: "18:00", Active: true},
	}

	return New(services, barbers, shop, hours)
}
