package domain

// TripPreview carries the presentation keys derived from a trip's
// destination: which hero image to show, whether a memory gallery exists,
// and the city code used for flight and hotel lookups.
type TripPreview struct {
	HeroKey    string `json:"heroKey"`
	GalleryKey string `json:"galleryKey,omitempty"`
	HasGallery bool   `json:"hasGallery"`
	LookupCode string `json:"lookupCode"`
}
