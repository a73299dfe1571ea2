package zoo

import (
	"fmt"
	"io"
)

// DisplayInfo imprime la ficha de un animal. Es una función libre y no un
// método de Animal: ninguna especie puede cambiar el formato.
func DisplayInfo(w io.Writer, a Animal) {
	fmt.Fprintf(w, "Name: %s\n", a.Name())
	fmt.Fprintf(w, "Age: %d years old\n", a.Age())
	fmt.Fprintf(w, "Species: %s\n", a.Species())
	fmt.Fprintf(w, "Diet type: %s\n", a.Diet().Type())
	fmt.Fprintf(w, "Habitat description: %s\n", a.Habitat().Description())
	fmt.Fprintln(w)
}
