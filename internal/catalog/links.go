package catalog

import "net/url"

// BookingKind groups partner sites by what they sell.
type BookingKind string

const (
	BookingFlights BookingKind = "flights"
	BookingHotels  BookingKind = "hotels"
	BookingCruises BookingKind = "cruises"
)

// BookingLink is an outbound partner URL. The service passes these through
// untouched; it never calls them.
type BookingLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// BookingLinks returns the partner sites per kind. The first link of each
// kind is the default search target.
func BookingLinks() map[BookingKind][]BookingLink {
	return map[BookingKind][]BookingLink{
		BookingFlights: {
			{Name: "Expedia", URL: "https://www.expedia.com/Flights"},
			{Name: "Kayak", URL: "https://www.kayak.com/flights"},
			{Name: "Skyscanner", URL: "https://www.skyscanner.com"},
		},
		BookingHotels: {
			{Name: "Booking.com", URL: "https://www.booking.com"},
			{Name: "Hotels.com", URL: "https://www.hotels.com"},
			{Name: "Expedia", URL: "https://www.expedia.com/Hotels"},
		},
		BookingCruises: {
			{Name: "Royal Caribbean", URL: "https://www.royalcaribbean.com"},
			{Name: "Carnival", URL: "https://www.carnival.com"},
			{Name: "Norwegian", URL: "https://www.ncl.com"},
			{Name: "Disney Cruise", URL: "https://disneycruise.disney.go.com"},
		},
	}
}

// MapsEmbedURL builds the iframe URL for a free-text place query.
func MapsEmbedURL(apiKey, query string) string {
	v := url.Values{}
	v.Set("key", apiKey)
	v.Set("q", query)
	return "https://www.google.com/maps/embed/v1/place?" + v.Encode()
}

// MapsSearchURL builds the "open in maps" link for a free-text place query.
func MapsSearchURL(query string) string {
	v := url.Values{}
	v.Set("api", "1")
	v.Set("query", query)
	return "https://www.google.com/maps/search/?" + v.Encode()
}
