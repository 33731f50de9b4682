package devserver

import "github.com/mathangi54/travel-booking-client/internal/models"

// sriLankanTours is the default catalog installed by the seed endpoint,
// matching the production backend's seed data.
var sriLankanTours = []models.Tour{
	{Name: "Pristine Beaches of Mirissa", Description: "Experience whale watching and pristine beaches in southern Sri Lanka with beachfront villa stay and stilt fishing experiences", Price: 850.00, DurationDays: 5, TourType: "Beach", ImageURL: "/images/mirrisa1.jpg"},
	{Name: "Misty Mountains of Ella", Description: "Discover tea plantations, Nine Arch Bridge, Little Adams Peak, and traditional tea factory tours in the hill country", Price: 650.00, DurationDays: 6, TourType: "Hill Country", ImageURL: "/images/misty_ella.jpg"},
	{Name: "Cultural Triangle Explorer", Description: "Explore ancient cities of Sigiriya Rock Fortress, Anuradhapura sacred city, and Polonnaruwa medieval capital", Price: 1200.00, DurationDays: 8, TourType: "Cultural", ImageURL: "/images/trinco.webp"},
	{Name: "Sacred City of Kandy", Description: "Visit Temple of the Tooth Relic, Royal Botanical Gardens, traditional Kandyan dance, and Lake Kandy boat rides", Price: 520.00, DurationDays: 4, TourType: "Cultural", ImageURL: "/images/kandy1.jpg"},
	{Name: "Wildlife Safari Adventure", Description: "Leopard spotting in Yala National Park with luxury safari camping, elephant orphanage, and bird watching tours", Price: 800.00, DurationDays: 5, TourType: "Wildlife", ImageURL: "/images/safari.jpg"},
	{Name: "Tea Country Experience", Description: "Explore Nuwara Eliya tea plantations, Horton Plains World's End, cool mountain climate, and colonial heritage hotels", Price: 550.00, DurationDays: 4, TourType: "Hill Country", ImageURL: "/images/tea1.jpg"},
	{Name: "Golden Beaches of Arugam Bay", Description: "World-class surfing destination with beach bungalow accommodation, Kumana Bird Sanctuary, and fresh seafood dining", Price: 680.00, DurationDays: 6, TourType: "Beach", ImageURL: "/images/arugam1.webp"},
	{Name: "Ancient Fortress of Jaffna", Description: "Explore rich Tamil culture, historic Jaffna Fort, Nallur Temple heritage, and island hopping tours", Price: 600.00, DurationDays: 5, TourType: "Cultural", ImageURL: "/images/fort.jpg"},
	{Name: "Pristine Trincomalee", Description: "Beautiful Nilaveli Beach, ancient Koneswaram Temple, whale watching cruises, and hot springs experience", Price: 720.00, DurationDays: 6, TourType: "Beach", ImageURL: "/images/trinco1.jpg"},
	{Name: "Galle Dutch Fort Heritage", Description: "UNESCO World Heritage colonial fort with cobblestone streets, rampart walks, and ocean views", Price: 480.00, DurationDays: 3, TourType: "Heritage", ImageURL: "/images/galle.jpg"},
	{Name: "Tropical Paradise Unawatuna", Description: "Palm-fringed beaches, coral reef snorkeling, sunset catamaran cruises, and beachfront relaxation", Price: 750.00, DurationDays: 7, TourType: "Beach", ImageURL: "/images/unawatuna1.webp"},
	{Name: "Sinharaja Rainforest Trek", Description: "UNESCO Biosphere Reserve trekking with endemic wildlife, bird watching, and nature conservation experiences", Price: 580.00, DurationDays: 4, TourType: "Nature", ImageURL: "/images/yala.webp"},
}
