package catalog

import "github.com/travelglobal/planner/internal/domain"

func ll(lat, lng float64) domain.Coordinates { return domain.Coordinates{Lat: lat, Lng: lng} }

const imgBase = "https://images.unsplash.com/"

// Builtin returns a fresh copy of the default catalog: theme parks, cities,
// cruise ports and landmarks. Migration 00002 seeds the same rows.
func Builtin() []domain.Location {
	return []domain.Location{
		{ID: "1", Name: "Walt Disney World", Category: domain.CategoryThemePark, Coordinates: ll(28.385, -81.564), Country: "USA",
			Description: "The most magical place on Earth with 4 incredible theme parks.", Image: imgBase + "photo-1597466599360-3b9775841aec?w=400"},
		{ID: "2", Name: "Universal Orlando", Category: domain.CategoryThemePark, Coordinates: ll(28.472, -81.468), Country: "USA",
			Description: "Epic adventures await at Universal Studios and Islands of Adventure.", Image: imgBase + "photo-1575444758702-4a6b9222336e?w=400"},
		{ID: "3", Name: "Disneyland Paris", Category: domain.CategoryThemePark, Coordinates: ll(48.872, 2.776), Country: "France",
			Description: "European magic in the heart of France.", Image: imgBase + "photo-1551038247-3d9af20df552?w=400"},
		{ID: "4", Name: "Tokyo DisneySea", Category: domain.CategoryThemePark, Coordinates: ll(35.627, 139.889), Country: "Japan",
			Description: "A nautical-themed adventure unique to Japan.", Image: imgBase + "photo-1624601573012-efb68931cc8f?w=400"},
		{ID: "5", Name: "Europa-Park", Category: domain.CategoryThemePark, Coordinates: ll(48.266, 7.722), Country: "Germany",
			Description: "Germany's largest theme park with European-themed areas.", Image: imgBase + "photo-1513407030348-c983a97b98d8?w=400"},

		{ID: "6", Name: "Paris", Category: domain.CategoryCity, Coordinates: ll(48.856, 2.352), Country: "France",
			Description: "The City of Light awaits with culture, cuisine, and romance.", Image: imgBase + "photo-1502602898657-3e91760cbb34?w=400"},
		{ID: "7", Name: "Tokyo", Category: domain.CategoryCity, Coordinates: ll(35.682, 139.759), Country: "Japan",
			Description: "Where ancient traditions meet cutting-edge technology.", Image: imgBase + "photo-1540959733332-eab4deabeeaf?w=400"},
		{ID: "8", Name: "New York City", Category: domain.CategoryCity, Coordinates: ll(40.713, -74.006), Country: "USA",
			Description: "The city that never sleeps offers endless experiences.", Image: imgBase + "photo-1496442226666-8d4d0e62e6e9?w=400"},
		{ID: "9", Name: "Sydney", Category: domain.CategoryCity, Coordinates: ll(-33.869, 151.209), Country: "Australia",
			Description: "Iconic harbor, stunning beaches, and vibrant culture.", Image: imgBase + "photo-1506973035872-a4ec16b8e8d9?w=400"},
		{ID: "10", Name: "Dubai", Category: domain.CategoryCity, Coordinates: ll(25.205, 55.271), Country: "UAE",
			Description: "Futuristic architecture and luxury in the desert.", Image: imgBase + "photo-1512453979798-5ea266f8880c?w=400"},

		{ID: "11", Name: "Miami Cruise Port", Category: domain.CategoryCruisePort, Coordinates: ll(25.775, -80.170), Country: "USA",
			Description: "Gateway to the Caribbean and beyond.", Image: imgBase + "photo-1514214246283-d427a95c5d2f?w=400"},
		{ID: "12", Name: "Barcelona Port", Category: domain.CategoryCruisePort, Coordinates: ll(41.376, 2.177), Country: "Spain",
			Description: "Mediterranean cruising from Spain's vibrant coast.", Image: imgBase + "photo-1523531294919-4bcd7c65e216?w=400"},
		{ID: "13", Name: "Singapore Cruise Terminal", Category: domain.CategoryCruisePort, Coordinates: ll(1.266, 103.819), Country: "Singapore",
			Description: "Asian adventure hub for cruise enthusiasts.", Image: imgBase + "photo-1525625293386-3f8f99389edd?w=400"},
		{ID: "14", Name: "Southampton", Category: domain.CategoryCruisePort, Coordinates: ll(50.899, -1.404), Country: "UK",
			Description: "UK's premier cruise departure point.", Image: imgBase + "photo-1500375592092-40eb2168fd21?w=400"},

		{ID: "15", Name: "Machu Picchu", Category: domain.CategoryLandmark, Coordinates: ll(-13.163, -72.545), Country: "Peru",
			Description: "Ancient Incan citadel high in the Andes Mountains.", Image: imgBase + "photo-1587595431973-160d0d94add1?w=400"},
		{ID: "16", Name: "Great Wall of China", Category: domain.CategoryLandmark, Coordinates: ll(40.432, 116.570), Country: "China",
			Description: "One of the greatest wonders of the world.", Image: imgBase + "photo-1508804185872-d7badad00f7d?w=400"},
		{ID: "17", Name: "Santorini", Category: domain.CategoryLandmark, Coordinates: ll(36.393, 25.461), Country: "Greece",
			Description: "Stunning Greek island with iconic white buildings.", Image: imgBase + "photo-1613395877344-13d4a8e0d49e?w=400"},
		{ID: "18", Name: "Pyramids of Giza", Category: domain.CategoryLandmark, Coordinates: ll(29.979, 31.134), Country: "Egypt",
			Description: "Ancient wonders that have stood for millennia.", Image: imgBase + "photo-1503177119275-0aa32b3a9368?w=400"},
	}
}
