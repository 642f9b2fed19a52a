// Package datefmt formatea fechas para mostrar en la zona horaria de Colombia.
package datefmt

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var days = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var months = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

// Bogota es UTC-5 sin horario de verano; se usa zona fija si tzdata no está disponible.
var bogota = loadBogota()

var title = cases.Title(language.Spanish)

func loadBogota() *time.Location {
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		return time.FixedZone("COT", -5*60*60)
	}
	return loc
}

// CO formatea t como "Lunes, 5 de ene 3:04pm" en hora de Bogotá.
func CO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	co := t.In(bogota)
	hour := strings.ToLower(co.Format("3:04PM"))
	return fmt.Sprintf("%s, %d de %s %s", title.String(days[co.Weekday()]), co.Day(), months[co.Month()-1], hour)
}
