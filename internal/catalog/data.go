package catalog

import "backend/internal/domain/models"

// Default returns the production catalog. Prices are per traveler in whole
// rupees and are the authoritative amounts for the tamper check.
func Default() *Catalog {
	return New([]models.TourPackage{
		{
			ID:          "meghalaya-living-roots",
			Title:       "Meghalaya Living Root Bridges Trek",
			State:       "Meghalaya",
			Category:    "Adventure",
			Duration:    "5 Days / 4 Nights",
			Price:       18500,
			GroupSize:   "4-12",
			Difficulty:  "Moderate",
			Season:      "October - April",
			Description: "Trek through Cherrapunji's rain-soaked valleys to the double-decker living root bridges of Nongriat, with waterfall swims and village homestays.",
			Highlights:  []string{"Double-decker root bridge", "Rainbow Falls", "Nongriat homestay"},
			Rating:      4.8,
			Reviews:     142,
		},
		{
			ID:          "kaziranga-safari",
			Title:       "Kaziranga Rhino Safari",
			State:       "Assam",
			Category:    "Wildlife",
			Duration:    "3 Days / 2 Nights",
			Price:       12000,
			GroupSize:   "2-10",
			Difficulty:  "Easy",
			Season:      "November - April",
			Description: "Elephant-back and jeep safaris across Kaziranga National Park, home of the one-horned rhinoceros, with a Brahmaputra river cruise.",
			Highlights:  []string{"One-horned rhino sightings", "Elephant safari", "Brahmaputra sunset cruise"},
			Rating:      4.7,
			Reviews:     208,
		},
		{
			ID:          "tawang-monastery",
			Title:       "Tawang Monastery Circuit",
			State:       "Arunachal Pradesh",
			Category:    "Cultural",
			Duration:    "7 Days / 6 Nights",
			Price:       24500,
			GroupSize:   "4-14",
			Difficulty:  "Moderate",
			Season:      "March - October",
			Description: "Drive the Sela Pass to Tawang, the largest monastery in India, through Dirang's hot springs and Bomdila's craft centres.",
			Highlights:  []string{"Sela Pass at 13,700 ft", "Tawang Monastery", "Madhuri Lake"},
			Rating:      4.9,
			Reviews:     96,
		},
		{
			ID:          "sikkim-goechala",
			Title:       "Goechala Base Trek",
			State:       "Sikkim",
			Category:    "Adventure",
			Duration:    "9 Days / 8 Nights",
			Price:       32000,
			GroupSize:   "4-10",
			Difficulty:  "Challenging",
			Season:      "April - May, October - November",
			Description: "High-altitude trek from Yuksom to the Goechala viewpoint under Kanchenjunga, with rhododendron forests and Samiti Lake camps.",
			Highlights:  []string{"Kanchenjunga sunrise", "Samiti Lake", "Dzongri meadows"},
			Rating:      4.8,
			Reviews:     73,
		},
		{
			ID:          "majuli-island",
			Title:       "Majuli River Island Retreat",
			State:       "Assam",
			Category:    "Cultural",
			Duration:    "4 Days / 3 Nights",
			Price:       9800,
			GroupSize:   "2-12",
			Difficulty:  "Easy",
			Season:      "October - March",
			Description: "Stay in bamboo cottages on the world's largest river island, visiting Vaishnavite satras, mask-makers and Mishing weaver villages.",
			Highlights:  []string{"Satra monastery dance", "Mask-making workshop", "Ferry across the Brahmaputra"},
			Rating:      4.6,
			Reviews:     118,
		},
		{
			ID:          "dzukou-valley",
			Title:       "Dzukou Valley Flower Trek",
			State:       "Nagaland",
			Category:    "Adventure",
			Duration:    "4 Days / 3 Nights",
			Price:       11500,
			GroupSize:   "4-16",
			Difficulty:  "Moderate",
			Season:      "June - September",
			Description: "Cross the Japfu range into the valley of flowers of the Northeast, camping among dwarf bamboo and seasonal lily blooms.",
			Highlights:  []string{"Dzukou lily blooms", "Ridge camping", "Kohima war cemetery"},
			Rating:      4.7,
			Reviews:     87,
		},
	})
}
