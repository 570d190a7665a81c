package catalog

import "github.com/ishaan-jha021/ecomatch/internal/domain"

// fixtureVenues returns the built-in demo catalog served when no data file
// is present. Returns a fresh slice each call so a caller can never alias
// the fallback data between reloads.
func fixtureVenues() []domain.Venue {
	return []domain.Venue{
		{
			ID:   "1",
			Name: "Innov8 Coworking",
			Kind: domain.KindCoworking,
			Location: domain.Location{
				Area: "Andheri East",
				City: "Mumbai",
			},
			Pricing: domain.Pricing{Amount: 12000, Period: "month", Currency: "INR"},
			Capacity: &domain.Capacity{
				Total: 200, Available: 45, MeetingRooms: 5,
			},
			Amenities: []domain.Amenity{
				{ID: "1", Name: "High-Speed WiFi", Verified: true},
				{ID: "2", Name: "Conference Hall (60+)", Verified: true},
				{ID: "3", Name: "24/7 Access", Verified: true},
				{ID: "4", Name: "Coffee Machine", Verified: false},
			},
			TrustScore:     8.9,
			OfficialStatus: domain.StatusVerified,
			Images:         []string{"/images/venue1.jpg"},
			Reviews: []domain.Review{
				{ID: "r1", User: "Founder X", Rating: 4.5, Text: "Great vibe, but AC is too cold.", Date: "2024-02-15"},
			},
		},
		{
			ID:   "2",
			Name: "TechHub Incubator",
			Kind: domain.KindIncubator,
			Location: domain.Location{
				Area: "Koramangala",
				City: "Bangalore",
			},
			Pricing: domain.Pricing{Amount: 0, Period: "month", Currency: "INR"},
			EquityTerms: &domain.EquityTerms{
				TakesEquity: true,
				Percentage:  2,
				Description: "2% equity for 6 months support",
			},
			Capacity: &domain.Capacity{Total: 50, Available: 5, MeetingRooms: 2},
			Amenities: []domain.Amenity{
				{ID: "1", Name: "Mentorship", Verified: true},
				{ID: "2", Name: "Cloud Credits", Verified: true},
				{ID: "3", Name: "Legal Support", Verified: true},
			},
			TrustScore:     9.2,
			OfficialStatus: domain.StatusVerified,
			Images:         []string{"/images/venue2.jpg"},
		},
		{
			ID:   "3",
			Name: "IIT Madras Incubation Cell",
			Kind: domain.KindIncubator,
			Location: domain.Location{
				Area: "IIT Campus",
				City: "Chennai",
			},
			Pricing: domain.Pricing{Amount: 0, Period: "month", Currency: "INR"},
			EquityTerms: &domain.EquityTerms{
				TakesEquity: false,
				Description: "Zero equity government-backed incubation",
			},
			Capacity: &domain.Capacity{Total: 120, Available: 30, MeetingRooms: 4},
			Amenities: []domain.Amenity{
				{ID: "1", Name: "WiFi", Verified: true},
				{ID: "2", Name: "Meeting Rooms", Verified: true},
				{ID: "3", Name: "Lab Access", Verified: true},
			},
			TrustScore:       9.6,
			OfficialStatus:   domain.StatusPartner,
			Images:           []string{"/images/venue3.jpg"},
			GovernmentScheme: "DST-NIDHI TBI",
		},
		{
			ID:   "4",
			Name: "91springboard Delhi",
			Kind: domain.KindCoworking,
			Location: domain.Location{
				Area:    "Okhla Phase 3",
				City:    "Delhi",
				Address: "Plot 23, Okhla Industrial Estate",
			},
			Pricing:  domain.Pricing{Amount: 4500, Period: "month", Currency: "INR"},
			Capacity: &domain.Capacity{Total: 80, Available: 12, MeetingRooms: 3},
			Amenities: []domain.Amenity{
				{ID: "1", Name: "Wi-Fi", Verified: true},
				{ID: "2", Name: "Meeting Rooms", Verified: false},
			},
			TrustScore:     7.8,
			OfficialStatus: domain.StatusUnverified,
			Images:         []string{"/images/venue4.jpg"},
		},
		{
			ID:   "5",
			Name: "Atal Incubation Centre BIMTECH",
			Kind: domain.KindIncubator,
			Location: domain.Location{
				Area: "Knowledge Park",
				City: "Noida",
			},
			Pricing: domain.Pricing{Amount: 2000, Period: "month", Currency: "INR"},
			EquityTerms: &domain.EquityTerms{
				TakesEquity: false,
				Description: "AIM-funded, no equity taken",
			},
			Capacity: &domain.Capacity{Total: 60, Available: 20, MeetingRooms: 2},
			Amenities: []domain.Amenity{
				{ID: "1", Name: "High-Speed WiFi", Verified: true},
				{ID: "2", Name: "Mentorship", Verified: true},
			},
			TrustScore:       8.4,
			OfficialStatus:   domain.StatusVerified,
			Images:           []string{"/images/venue5.jpg"},
			GovernmentScheme: "Atal Innovation Mission (AIM)",
		},
	}
}
