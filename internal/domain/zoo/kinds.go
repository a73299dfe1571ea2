package zoo

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownKind  = errors.New("unknown kind")
	ErrNotFound     = errors.New("not found")
	ErrBuiltinKind  = errors.New("built-in kind cannot be replaced")
)

// MaxAge es el tope de edad; coincide con la columna INTEGER de Postgres.
const MaxAge = math.MaxInt32

// Kind identifica una especie registrada (lion, elephant, ...).
// @Enum lion, elephant
type Kind string

const (
	KindLion     Kind = "lion"
	KindElephant Kind = "elephant"
)

// Constructor arma una instancia concreta. La especie la fija el constructor,
// nunca quien llama.
type Constructor func(name string, age int, diet Diet, habitat Habitat) Animal

var (
	kindsMu sync.RWMutex
	kinds   = map[Kind]Constructor{
		KindLion: func(name string, age int, diet Diet, habitat Habitat) Animal {
			return NewLion(name, age, diet, habitat)
		},
		KindElephant: func(name string, age int, diet Diet, habitat Habitat) Animal {
			return NewElephant(name, age, diet, habitat)
		},
	}
)

// Register agrega (o reemplaza) una especie. Pensado para extender el zoo
// sin tocar el recorrido. lion y elephant son fijas: su especie ya está
// persistida en registros existentes.
func Register(kind Kind, ctor Constructor) error {
	kind = normalizeKind(string(kind))
	if kind == "" || ctor == nil {
		return fmt.Errorf("%w: kind and constructor are required", ErrInvalidInput)
	}
	if isBuiltin(kind) {
		return fmt.Errorf("%w: %q", ErrBuiltinKind, kind)
	}
	kindsMu.Lock()
	defer kindsMu.Unlock()
	kinds[kind] = ctor
	return nil
}

func isBuiltin(k Kind) bool {
	return k == KindLion || k == KindElephant
}

// Kinds devuelve las especies registradas, ordenadas.
func Kinds() []Kind {
	kindsMu.RLock()
	defer kindsMu.RUnlock()

	out := make([]Kind, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseKind normaliza el input externo ("Lion", " lion ") a un Kind registrado.
func ParseKind(s string) (Kind, error) {
	k := normalizeKind(s)

	kindsMu.RLock()
	_, ok := kinds[k]
	kindsMu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// New construye un animal desde input externo.
// Reglas: 0 <= edad <= MaxAge, name/diet/habitat no vacíos, kind registrado.
func New(kind Kind, name string, age int, diet Diet, habitat Habitat) (Animal, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if age < 0 || age > MaxAge {
		return nil, fmt.Errorf("%w: age must be between 0 and %d", ErrInvalidInput, MaxAge)
	}
	if strings.TrimSpace(diet.Type()) == "" {
		return nil, fmt.Errorf("%w: diet is required", ErrInvalidInput)
	}
	if strings.TrimSpace(habitat.Description()) == "" {
		return nil, fmt.Errorf("%w: habitat is required", ErrInvalidInput)
	}

	k, err := ParseKind(string(kind))
	if err != nil {
		return nil, err
	}

	kindsMu.RLock()
	ctor := kinds[k]
	kindsMu.RUnlock()

	a := ctor(name, age, diet, habitat)
	if a == nil {
		return nil, fmt.Errorf("%w: %q constructor returned nil", ErrUnknownKind, k)
	}
	return a, nil
}

func normalizeKind(s string) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(s)))
}
