package entity

// Recommendation es un aviso/recomendación publicado en el portal. Flags
// permite segmentar a qué vistas aplica.
type Recommendation struct {
	ID    int64
	Title string
	Text  string
	Image string
	Flags []string
}
