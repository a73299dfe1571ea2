package zoo

// Diet clasifica lo que come un animal. Inmutable una vez construido.
type Diet struct {
	kind string
}

func NewDiet(kind string) Diet {
	return Diet{kind: kind}
}

func (d Diet) Type() string {
	return d.kind
}

// Habitat describe dónde vive un animal. Inmutable una vez construido.
type Habitat struct {
	description string
}

func NewHabitat(description string) Habitat {
	return Habitat{description: description}
}

func (h Habitat) Description() string {
	return h.description
}
