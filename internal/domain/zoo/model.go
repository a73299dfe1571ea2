package zoo

import "time"

// Record es la forma persistida de un animal admitido en el registro.
type Record struct {
	ID string

	Kind    Kind
	Name    string
	Age     int
	Species string // derivada de Kind al admitir

	Diet    string
	Habitat string

	CreatedAt time.Time
}

// Animal rehidrata el registro en su especie concreta.
func (r Record) Animal() (Animal, error) {
	return New(r.Kind, r.Name, r.Age, NewDiet(r.Diet), NewHabitat(r.Habitat))
}
