package zoo

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", admitAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))

		// Pasadas sobre todo el registro (antes de /{animalID})
		ar.Get("/sounds", soundsHandler(svc))
		ar.Get("/meals", mealsHandler(svc))

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Get("/{animalID}/info", animalInfoHandler(svc))
		ar.Delete("/{animalID}", releaseAnimalHandler(svc))
	})

	r.Get("/report", reportHandler(svc))
	r.Get("/kinds", listKindsHandler())
}

type admitAnimalRequest struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Diet    string `json:"diet"`
	Habitat string `json:"habitat"`
}

type animalResponse struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Species   string    `json:"species"`
	Diet      string    `json:"diet"`
	Habitat   string    `json:"habitat"`
	CreatedAt time.Time `json:"created_at"`
}

type soundsResponse struct {
	Sounds []string `json:"sounds"`
}

type mealsResponse struct {
	Meals []string `json:"meals"`
}

// admitAnimalHandler godoc
// @Summary  Admit an animal
// @Tags     animals
// @Accept   json
// @Produce  json
// @Param    body body admitAnimalRequest true "animal"
// @Success  201 {object} animalResponse
// @Failure  400 {string} string
// @Router   /animals [post]
func admitAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req admitAnimalRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Admit(r.Context(), AdmitInput{
			Kind:    req.Kind,
			Name:    req.Name,
			Age:     req.Age,
			Diet:    req.Diet,
			Habitat: req.Habitat,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(rec))
	}
}

// listAnimalsHandler godoc
// @Summary  List animals in admission order
// @Tags     animals
// @Produce  json
// @Success  200 {array} animalResponse
// @Router   /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toAnimalResponse(rec))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary  Get an animal
// @Tags     animals
// @Produce  json
// @Param    animalID path string true "animal id"
// @Success  200 {object} animalResponse
// @Failure  404 {string} string
// @Router   /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Get(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(rec))
	}
}

// animalInfoHandler godoc
// @Summary  Animal information block
// @Tags     animals
// @Produce  plain
// @Param    animalID path string true "animal id"
// @Success  200 {string} string
// @Failure  404 {string} string
// @Router   /animals/{animalID}/info [get]
func animalInfoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := svc.Info(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeText(w, http.StatusOK, info)
	}
}

// releaseAnimalHandler godoc
// @Summary  Release an animal
// @Tags     animals
// @Param    animalID path string true "animal id"
// @Success  204
// @Failure  404 {string} string
// @Router   /animals/{animalID} [delete]
func releaseAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Release(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// soundsHandler godoc
// @Summary  Make every animal sound, in admission order
// @Tags     animals
// @Produce  json
// @Success  200 {object} soundsResponse
// @Router   /animals/sounds [get]
func soundsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines, err := svc.Sounds(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, soundsResponse{Sounds: lines})
	}
}

// mealsHandler godoc
// @Summary  Feed every animal, in admission order
// @Tags     animals
// @Produce  json
// @Success  200 {object} mealsResponse
// @Router   /animals/meals [get]
func mealsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines, err := svc.Feed(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, mealsResponse{Meals: lines})
	}
}

// reportHandler godoc
// @Summary  Full zoo report
// @Tags     report
// @Produce  plain
// @Success  200 {string} string
// @Router   /report [get]
func reportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.Report(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeText(w, http.StatusOK, report)
	}
}

// listKindsHandler godoc
// @Summary  Registered kinds
// @Tags     kinds
// @Produce  json
// @Success  200 {array} string
// @Router   /kinds [get]
func listKindsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Kinds())
	}
}

func toAnimalResponse(r Record) animalResponse {
	return animalResponse{
		ID:        r.ID,
		Kind:      r.Kind,
		Name:      r.Name,
		Age:       r.Age,
		Species:   r.Species,
		Diet:      r.Diet,
		Habitat:   r.Habitat,
		CreatedAt: r.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownKind):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(s))
}
