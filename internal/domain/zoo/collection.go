package zoo

import (
	"fmt"
	"io"
)

// MakeAllAnimalsSound recorre la colección de principio a fin y hace sonar a
// cada animal por su handle polimórfico.
func MakeAllAnimalsSound(w io.Writer, animals []Animal) {
	for _, a := range animals {
		a.MakeSound(w)
	}
}

// Zoo es la colección ordenada y dueña de sus animales.
// El orden de inserción es el orden de cada recorrido.
type Zoo struct {
	animals []Animal
}

func NewZoo() *Zoo {
	return &Zoo{}
}

func (z *Zoo) Add(a Animal) {
	if a == nil {
		return
	}
	z.animals = append(z.animals, a)
}

// Animals devuelve una copia del slice; la colección sigue siendo la dueña.
func (z *Zoo) Animals() []Animal {
	out := make([]Animal, len(z.animals))
	copy(out, z.animals)
	return out
}

func (z *Zoo) Len() int {
	return len(z.animals)
}

func (z *Zoo) MakeAllAnimalsSound(w io.Writer) {
	MakeAllAnimalsSound(w, z.animals)
}

func (z *Zoo) FeedAll(w io.Writer) {
	for _, a := range z.animals {
		a.Eat(w)
	}
}

func (z *Zoo) DisplayAll(w io.Writer) {
	for _, a := range z.animals {
		DisplayInfo(w, a)
	}
}

// Release libera cada animal una sola vez y vacía la colección.
// Llamarlo de nuevo no hace nada.
func (z *Zoo) Release() {
	for i, a := range z.animals {
		if r, ok := a.(Releaser); ok {
			r.Release()
		}
		z.animals[i] = nil
	}
	z.animals = nil
}

// WriteReport imprime el reporte completo: pasada de sonidos y luego fichas.
func (z *Zoo) WriteReport(w io.Writer) {
	fmt.Fprintln(w, "All animals making sounds:")
	z.MakeAllAnimalsSound(w)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Animal Information:")
	z.DisplayAll(w)
}
