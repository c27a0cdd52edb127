package notaires

import (
	"strconv"

	"immo-scraper/internal/domain"
)

// Annonce is one listing summary from the notaries' public API.
// Numeric fields are pointers: the API omits them freely.
type Annonce struct {
	ID          int64    `json:"id"`
	PrixAffiche *float64 `json:"prixAffiche"`
	Surface     *float64 `json:"surface"`
	NbPieces    *int64   `json:"nbPieces"`
	NbChambres  *int64   `json:"nbChambres"`
	TypeBien    string   `json:"typeBien"`
	CodePostal  string   `json:"codePostal"`
	CommuneNom  string   `json:"communeNom"`
	LocaliteNom string   `json:"localiteNom"`
	Statut      string   `json:"statut"`
	DateMaj     string   `json:"dateMaj"`
	URLDetail   string   `json:"urlDetailAnnonceFr"`
	URLPhoto    string   `json:"urlPhotoPrincipale"`
}

type listResponse struct {
	Annonces []Annonce `json:"annonceResumeDto"`
}

// Header is the fixed column layout of the raw national CSV. The cleaning
// side (mappers.Notaires) depends on these positions, not on the names.
var Header = []string{
	"departement", "id", "prix", "surface", "prix_m2", "nb_pieces", "nb_chambres",
	"type_bien", "cp", "commune", "localite", "statut", "date_maj", "url", "photo",
}

// Row flattens an annonce into the raw CSV layout, tagged with the
// departement it was fetched under. prix_m2 here is informational only;
// normalization recomputes it and never trusts this column.
func (a Annonce) Row(dept string) []string {
	prixM2 := domain.ComputePricePerArea(domain.ToInt(ptrVal(a.PrixAffiche)), a.Surface)

	return []string{
		dept,
		strconv.FormatInt(a.ID, 10),
		formatFloat(a.PrixAffiche),
		formatFloat(a.Surface),
		formatFloat(prixM2),
		formatInt(a.NbPieces),
		formatInt(a.NbChambres),
		a.TypeBien,
		a.CodePostal,
		a.CommuneNom,
		a.LocaliteNom,
		a.Statut,
		a.DateMaj,
		a.URLDetail,
		a.URLPhoto,
	}
}

func ptrVal(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func formatInt(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}
