package listing

// Snapshot is the serializable form of a Summary for the session store.
type Snapshot struct {
	RooftopID  string   `json:"rooftopId"`
	Title      string   `json:"title"`
	Host       string   `json:"host"`
	PriceCents int64    `json:"priceCents"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Capacity   *int     `json:"capacity,omitempty"`
	TotalCents *int64   `json:"totalCents,omitempty"`
}

func (s Summary) Snapshot() Snapshot {
	return Snapshot{
		RooftopID:  s.rooftopID,
		Title:      s.title,
		Host:       s.host,
		PriceCents: s.priceCents,
		ImageURL:   s.imageURL,
		Rating:     s.rating,
		Capacity:   s.capacity,
		TotalCents: s.totalCents,
	}
}

func FromSnapshot(sn Snapshot) (Summary, error) {
	return NewSummary(SummaryParams{
		RooftopID:  sn.RooftopID,
		Title:      sn.Title,
		Host:       sn.Host,
		PriceCents: sn.PriceCents,
		ImageURL:   sn.ImageURL,
		Rating:     sn.Rating,
		Capacity:   sn.Capacity,
		TotalCents: sn.TotalCents,
	})
}
