package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Clock fornece o "agora" no fuso da barbearia.
// Injetável para que os testes congelem o tempo.
type Clock interface {
	Now() time.Time
}

type shopClock struct {
	loc *time.Location
}

func NewClock(tz string) Clock {
	return shopClock{loc: Location(tz)}
}

func (c shopClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock devolve sempre o mesmo instante.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}

// Today resolve a data "de hoje" usada como default nas consultas.
func Today(c Clock) string {
	return c.Now().Format("2006-01-02")
}
