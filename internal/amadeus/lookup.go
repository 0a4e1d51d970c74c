package amadeus

import (
	"context"
	"net/url"
)

// City is a destination search hit.
type City struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// FlightOffer is a flattened flight-offer preview: first segment departure,
// last segment arrival, total price.
type FlightOffer struct {
	ID          string `json:"id"`
	Carrier     string `json:"carrier"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartureAt string `json:"departureAt"`
	ArrivalAt   string `json:"arrivalAt"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
}

// Hotel is a hotel-list entry for a city.
type Hotel struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	CityCode string  `json:"cityCode"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// SearchCities looks up cities by keyword, returning at most 12 hits.
// All response fields are optional on the wire; missing ones come back as
// zero values.
func (c *Client) SearchCities(ctx context.Context, keyword string) ([]City, error) {
	var body struct {
		Data []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Address struct {
				CountryCode string `json:"countryCode"`
				StateCode   string `json:"stateCode"`
			} `json:"address"`
			GeoCode struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"geoCode"`
		} `json:"data"`
	}

	q := url.Values{"keyword": {keyword}, "max": {"12"}}
	if err := c.get(ctx, "/v1/reference-data/locations/cities", q, &body); err != nil {
		return nil, err
	}

	cities := make([]City, 0, len(body.Data))
	for _, d := range body.Data {
		cities = append(cities, City{
			ID:      d.ID,
			Name:    d.Name,
			Country: d.Address.CountryCode,
			State:   d.Address.StateCode,
			Lat:     d.GeoCode.Latitude,
			Lng:     d.GeoCode.Longitude,
		})
	}
	return cities, nil
}

// FlightOffers searches one-adult flight offers for a route and date
// ("2006-01-02"), returning at most 10 offers.
func (c *Client) FlightOffers(ctx context.Context, origin, destination, departureDate string) ([]FlightOffer, error) {
	var body struct {
		Data []struct {
			ID          string `json:"id"`
			Itineraries []struct {
				Segments []struct {
					CarrierCode string `json:"carrierCode"`
					Departure   struct {
						IataCode string `json:"iataCode"`
						At       string `json:"at"`
					} `json:"departure"`
					Arrival struct {
						IataCode string `json:"iataCode"`
						At       string `json:"at"`
					} `json:"arrival"`
				} `json:"segments"`
			} `json:"itineraries"`
			Price struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"price"`
		} `json:"data"`
	}

	q := url.Values{
		"originLocationCode":      {origin},
		"destinationLocationCode": {destination},
		"departureDate":           {departureDate},
		"adults":                  {"1"},
		"max":                     {"10"},
	}
	if err := c.get(ctx, "/v2/shopping/flight-offers", q, &body); err != nil {
		return nil, err
	}

	offers := make([]FlightOffer, 0, len(body.Data))
	for _, d := range body.Data {
		offer := FlightOffer{
			ID:       d.ID,
			Price:    d.Price.Total,
			Currency: d.Price.Currency,
		}
		if len(d.Itineraries) > 0 {
			segments := d.Itineraries[0].Segments
			if len(segments) > 0 {
				first, last := segments[0], segments[len(segments)-1]
				offer.Carrier = first.CarrierCode
				offer.Origin = first.Departure.IataCode
				offer.DepartureAt = first.Departure.At
				offer.Destination = last.Arrival.IataCode
				offer.ArrivalAt = last.Arrival.At
			}
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// HotelsByCity lists hotels for an IATA city code.
func (c *Client) HotelsByCity(ctx context.Context, cityCode string) ([]Hotel, error) {
	var body struct {
		Data []struct {
			HotelID  string `json:"hotelId"`
			Name     string `json:"name"`
			IataCode string `json:"iataCode"`
			GeoCode  struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"geoCode"`
		} `json:"data"`
	}

	q := url.Values{"cityCode": {cityCode}}
	if err := c.get(ctx, "/v1/reference-data/locations/hotels/by-city", q, &body); err != nil {
		return nil, err
	}

	hotels := make([]Hotel, 0, len(body.Data))
	for _, d := range body.Data {
		hotels = append(hotels, Hotel{
			ID:       d.HotelID,
			Name:     d.Name,
			CityCode: d.IataCode,
			Lat:      d.GeoCode.Latitude,
			Lng:      d.GeoCode.Longitude,
		})
	}
	return hotels, nil
}
