package inventory

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
)

// AllCategories valor del filtro que desactiva el filtrado por categoría.
const AllCategories = "All"

// lower pasa a minúsculas. cases.Caser no es seguro entre goroutines: uno por llamada.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Filter devuelve los dulces cuyo nombre o descripción contienen search
// (sin distinguir mayúsculas) y cuya categoría coincide exactamente con category.
// category vacía o "All" no filtra. Conserva el orden de entrada.
func Filter(sweets []*entity.Sweet, search, category string) []*entity.Sweet {
	needle := lower(strings.TrimSpace(search))
	out := make([]*entity.Sweet, 0, len(sweets))
	for _, s := range sweets {
		if category != "" && category != AllCategories && s.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(lower(s.Name), needle) &&
			!strings.Contains(lower(s.Description), needle) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Categories devuelve las categorías distintas, ordenadas.
func Categories(sweets []*entity.Sweet) []string {
	seen := make(map[string]struct{}, len(sweets))
	for _, s := range sweets {
		seen[s.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ContainsFold indica si s contiene substr sin distinguir mayúsculas.
func ContainsFold(s, substr string) bool {
	return strings.Contains(lower(s), lower(substr))
}
