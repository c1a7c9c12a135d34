package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/money"
)

// Seed loads the demo content set: team members, blog posts, testimonials,
// neighborhoods, and sample listings. Slugged content upserts by slug so the
// command can be re-run; unslugged content is only inserted into an empty
// table.
func Seed(db *gorm.DB) error {
	if err := seedTeam(db); err != nil {
		return err
	}
	if err := seedBlogPosts(db); err != nil {
		return err
	}
	if err := seedTestimonials(db); err != nil {
		return err
	}
	if err := seedNeighborhoods(db); err != nil {
		return err
	}
	if err := seedProperties(db); err != nil {
		return err
	}
	return nil
}

func strPtr(s string) *string             { return &s }
func intPtr(i int) *int                   { return &i }
func centsPtr(c money.Cents) *money.Cents { return &c }

func seedTeam(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.TeamMember{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count team members: %w", err)
	}
	if count > 0 {
		return nil
	}

	members := []models.TeamMember{
		{
			Name:     "Avery Collins",
			Title:    "Lead Agent",
			Bio:      strPtr("Specialist in waterfront and luxury coastal properties with over 15 years of experience in South Florida. Avery has helped hundreds of families find their perfect coastal home and consistently ranks in the top 1% of agents in Palm Beach County."),
			Headshot: strPtr("/api/placeholder?width=300&height=400&text=Avery+Collins"),
			Order:    1,
			Socials: models.Socials{
				Email:    "avery@coastalrealty.com",
				Phone:    "(561) 555-0101",
				LinkedIn: "https://linkedin.com/in/averycollins",
			},
		},
		{
			Name:     "Riley Morgan",
			Title:    "Buyer Specialist",
			Bio:      strPtr("Dedicated to guiding relocations and first-time luxury buyers through the South Florida market. Riley's background in finance and keen eye for value help clients make confident investment decisions in their new coastal lifestyle."),
			Headshot: strPtr("/api/placeholder?width=300&height=400&text=Riley+Morgan"),
			Order:    2,
			Socials: models.Socials{
				Email:     "riley@coastalrealty.com",
				Phone:     "(561) 555-0102",
				Instagram: "https://instagram.com/rileymorgan_realestate",
			},
		},
		{
			Name:     "Jordan Blake",
			Title:    "Listing Coordinator",
			Bio:      strPtr("Expert in white-glove listing preparation and marketing for luxury properties. Jordan's strategic approach to staging, photography, and digital marketing ensures maximum exposure and optimal pricing for every listing."),
			Headshot: strPtr("/api/placeholder?width=300&height=400&text=Jordan+Blake"),
			Order:    3,
			Socials: models.Socials{
				Email:   "jordan@coastalrealty.com",
				Phone:   "(561) 555-0103",
				Website: "https://jordanblake.com",
			},
		},
	}

	if err := db.Create(&members).Error; err != nil {
		return fmt.Errorf("failed to seed team members: %w", err)
	}
	return nil
}

func seedBlogPosts(db *gorm.DB) error {
	posts := []models.BlogPost{
		{
			Slug:  "south-florida-waterfront-guide-2025",
			Title: "South Florida Waterfront Living: A 2025 Guide",
			Content: `# South Florida Waterfront Living: A 2025 Guide

South Florida's waterfront communities offer an unparalleled lifestyle combining luxury, natural beauty, and year-round boating weather. As we move through 2025, the market for waterfront properties continues to evolve with new opportunities and considerations for buyers.

## Popular Waterfront Communities

**Jupiter**: Known for its pristine beaches and excellent fishing, Jupiter offers everything from luxury condos to sprawling waterfront estates. The Jupiter Inlet provides direct ocean access, making it a favorite among boating enthusiasts.

**Palm Beach Gardens**: While inland, PBG features beautiful canal-front properties and communities like Admiral's Cove, offering deep-water dockage and resort-style amenities.

**Delray Beach**: The Intracoastal Waterway runs through Delray, providing both direct ocean access and protected waters perfect for all types of watercraft.

## What to Consider Before Buying

- **Dock rights and restrictions**: Understanding HOA rules and municipal regulations
- **Hurricane preparedness**: Modern building codes and insurance considerations
- **Maintenance costs**: Salt air and water exposure require ongoing care
- **Access to ocean**: Bridges, depth restrictions, and navigational considerations

Ready to explore waterfront living? Contact our team for a personalized consultation and exclusive property previews.`,
			Excerpt:     strPtr("Everything you need to know about buying waterfront property in South Florida, from Jupiter to Delray Beach."),
			Published:   true,
			PublishedAt: timePtr(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
			Tags:        models.StringList{"waterfront", "guide", "jupiter", "market-update"},
			OGImageURL:  strPtr("/api/placeholder?width=1200&height=630&text=Waterfront+Guide+2025"),
		},
		{
			Slug:  "best-gated-communities-palm-beach-gardens",
			Title: "Best Gated Communities in Palm Beach Gardens",
			Content: `# Best Gated Communities in Palm Beach Gardens

Palm Beach Gardens stands out as one of South Florida's premier destinations for luxury gated community living. With championship golf courses, top-rated schools, and resort-style amenities, these communities offer the perfect blend of security, luxury, and lifestyle.

## Top Gated Communities

**PGA National**: Home to championship golf and world-class spa facilities. This massive community offers everything from condos to custom estates.

**Admiral's Cove**: Waterfront luxury with deep-water marina access, a private beach club, and some of the area's most prestigious addresses.

**Frenchman's Creek**: Jack Nicklaus-designed golf course and ultra-luxury estates, with homes often exceeding $5 million.

**BallenIsles**: Family-friendly community with excellent schools, two championship golf courses, and extensive recreational facilities.

Contact us for private tours and current inventory in your preferred community.`,
			Excerpt:     strPtr("A curated guide to family-friendly, amenity-rich gated communities in Palm Beach Gardens."),
			Published:   true,
			PublishedAt: timePtr(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)),
			Tags:        models.StringList{"gated-communities", "palm-beach-gardens", "luxury", "golf"},
			OGImageURL:  strPtr("/api/placeholder?width=1200&height=630&text=PBG+Gated+Communities"),
		},
		{
			Slug:  "moving-to-jupiter-florida-2025",
			Title: "Moving to Jupiter, FL: Neighborhoods & Schools Guide",
			Content: `# Moving to Jupiter, FL: Neighborhoods & Schools Guide

Jupiter consistently ranks among Florida's most desirable places to live, offering a unique combination of small-town charm, world-class amenities, and easy access to both Palm Beach and Fort Lauderdale.

## Top Neighborhoods for Families

**Abacoa**: Master-planned community with top-rated schools, shopping, and entertainment.

**Jupiter Inlet Colony**: Exclusive beachside community with luxury homes and private beach access.

**Egret Landing**: Gated community with golf course and family amenities.

## School Districts and Ratings

Jupiter is served by some of Palm Beach County's highest-rated schools, including Jupiter Elementary, Independence Middle School, and Jupiter High School.

Ready to explore Jupiter? Contact us for a comprehensive relocation package.`,
			Excerpt:     strPtr("Complete relocation guide for families moving to Jupiter, Florida - covering top neighborhoods, schools, and lifestyle."),
			Published:   true,
			PublishedAt: timePtr(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
			Tags:        models.StringList{"relocation", "jupiter", "schools", "neighborhoods", "family"},
			OGImageURL:  strPtr("/api/placeholder?width=1200&height=630&text=Moving+to+Jupiter+FL"),
		},
	}

	for i := range posts {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&posts[i]).Error
		if err != nil {
			return fmt.Errorf("failed to seed blog post %q: %w", posts[i].Slug, err)
		}
	}
	return nil
}

func seedTestimonials(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Testimonial{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count testimonials: %w", err)
	}
	if count > 0 {
		return nil
	}

	testimonials := []models.Testimonial{
		{
			Name:     "Sarah & Michael Chen",
			Title:    "Home Buyers",
			Content:  "Avery made our dream of waterfront living come true. As first-time buyers in the luxury market, we were intimidated by the process, but Avery guided us through every step with expertise and patience. Our Jupiter home exceeded every expectation.",
			Rating:   5,
			Location: strPtr("Jupiter, FL"),
			Featured: true,
			Order:    1,
		},
		{
			Name:     "Dr. Jennifer Martinez",
			Title:    "Home Seller",
			Content:  "When we decided to downsize from our large estate, Riley handled the transition flawlessly. The marketing strategy was exceptional - we had multiple offers within a week and closed above asking price. Truly white-glove service.",
			Rating:   5,
			Location: strPtr("Palm Beach Gardens, FL"),
			Featured: true,
			Order:    2,
		},
		{
			Name:     "Robert & Linda Thompson",
			Title:    "Relocation Buyers",
			Content:  "Moving from New York to Florida was stressful until we met Jordan. They understood our needs for both a luxury home and access to amenities. Our Delray Beach condo is perfect for our retirement lifestyle.",
			Rating:   5,
			Location: strPtr("Delray Beach, FL"),
			Featured: true,
			Order:    3,
		},
		{
			Name:     "The Morrison Family",
			Title:    "First-Time Buyers",
			Content:  "Outstanding service from start to finish. The team helped us navigate the competitive market and secure our dream home in a great school district. Our kids love their new community!",
			Rating:   5,
			Location: strPtr("Boca Raton, FL"),
			Featured: false,
			Order:    4,
		},
	}

	if err := db.Create(&testimonials).Error; err != nil {
		return fmt.Errorf("failed to seed testimonials: %w", err)
	}
	return nil
}

func seedNeighborhoods(db *gorm.DB) error {
	neighborhoods := []models.Neighborhood{
		{
			Slug:        "jupiter",
			Name:        "Jupiter",
			Description: strPtr("Pristine beaches, excellent schools, and a charming downtown make Jupiter one of South Florida's most desirable communities. From waterfront estates to family-friendly neighborhoods, Jupiter offers luxury living with small-town charm."),
			AvgPrice:    centsPtr(money.Cents(125000000)),
			TotalHomes:  intPtr(450),
			Features:    models.StringList{"Top-rated schools", "Jupiter Inlet access", "Donald Ross Golf Course", "Harbourside Place", "Jupiter Beach Park"},
			Schools: models.Schools{
				Elementary: []string{"Jupiter Elementary (A)", "Limestone Creek Elementary (A)"},
				Middle:     []string{"Independence Middle School (A)"},
				High:       []string{"Jupiter High School (A)"},
			},
			Amenities: models.Amenities{
				Beaches:  []string{"Jupiter Beach", "Carlin Park"},
				Golf:     []string{"Jupiter Hills Club", "Admiral's Cove"},
				Shopping: []string{"Harbourside Place", "Legacy Place"},
				Dining:   []string{"Sinclair's Ocean Grill", "Guanabanas"},
			},
			Published: true,
		},
		{
			Slug:        "palm-beach-gardens",
			Name:        "Palm Beach Gardens",
			Description: strPtr("Home to world-class golf, shopping, and dining, Palm Beach Gardens combines suburban convenience with luxury amenities. The city features numerous gated communities and is known for its family-friendly atmosphere."),
			AvgPrice:    centsPtr(money.Cents(95000000)),
			TotalHomes:  intPtr(680),
			Features:    models.StringList{"PGA National Resort", "Gardens Mall", "Downtown at the Gardens", "A-rated schools", "Championship golf courses"},
			Schools: models.Schools{
				Elementary: []string{"Allamanda Elementary (A)", "Garden Lakes Elementary (A)"},
				Middle:     []string{"Watson B. Duncan Middle School (A)"},
				High:       []string{"William T. Dwyer High School (A)"},
			},
			Amenities: models.Amenities{
				Golf:       []string{"PGA National", "BallenIsles", "Frenchman's Creek"},
				Shopping:   []string{"Gardens Mall", "Downtown at the Gardens", "Legacy Place"},
				Dining:     []string{"Ironwood Steak & Seafood", "Seasons 52", "The Capital Grille"},
				Recreation: []string{"John D. MacArthur Beach State Park", "Juno Beach Pier"},
			},
			Published: true,
		},
		{
			Slug:        "delray-beach",
			Name:        "Delray Beach",
			Description: strPtr("Known for its vibrant Atlantic Avenue, beautiful beaches, and thriving arts scene, Delray Beach offers an eclectic mix of luxury waterfront properties and charming downtown living."),
			AvgPrice:    centsPtr(money.Cents(85000000)),
			TotalHomes:  intPtr(520),
			Features:    models.StringList{"Atlantic Avenue downtown", "Delray Beach Municipal Beach", "Cultural arts district", "Intracoastal access", "Vibrant nightlife"},
			Schools: models.Schools{
				Elementary: []string{"Pine Grove Elementary (B+)", "Orchard View Elementary (A-)"},
				Middle:     []string{"Carver Community Middle School (B)"},
				High:       []string{"Atlantic Community High School (B+)"},
			},
			Amenities: models.Amenities{
				Beaches:  []string{"Delray Beach Municipal Beach", "South Beach Park"},
				Arts:     []string{"Cornell Art Museum", "Delray Beach Playhouse", "Arts Warehouse"},
				Shopping: []string{"Atlantic Avenue shops"},
				Dining:   []string{"32 East", "Cut 432", "Max's Grille"},
			},
			Published: true,
		},
		{
			Slug:        "boca-raton",
			Name:        "Boca Raton",
			Description: strPtr("Sophisticated and upscale, Boca Raton features luxury shopping, dining, and some of South Florida's most prestigious gated communities. The city is known for its Mediterranean-style architecture and resort lifestyle."),
			AvgPrice:    centsPtr(money.Cents(110000000)),
			TotalHomes:  intPtr(780),
			Features:    models.StringList{"Town Center at Boca Raton", "Boca Raton Resort & Club", "Florida Atlantic University", "Mizner Park", "Red Reef Park"},
			Schools: models.Schools{
				Elementary: []string{"Addison Mizner Elementary (A)", "Calusa Elementary (A)"},
				Middle:     []string{"Boca Raton Community Middle School (A-)"},
				High:       []string{"Boca Raton Community High School (A-)"},
			},
			Amenities: models.Amenities{
				Golf:     []string{"Boca Raton Resort & Club", "Woodfield Country Club", "St. Andrews Country Club"},
				Shopping: []string{"Town Center at Boca Raton", "Mizner Park", "Royal Palm Place"},
				Dining:   []string{"Abe & Louie's", "Morton's The Steakhouse", "Rocco's Tacos"},
				Beaches:  []string{"Red Reef Park", "South Beach Park"},
			},
			Published: true,
		},
	}

	for i := range neighborhoods {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&neighborhoods[i]).Error
		if err != nil {
			return fmt.Errorf("failed to seed neighborhood %q: %w", neighborhoods[i].Slug, err)
		}
	}
	return nil
}

func seedProperties(db *gorm.DB) error {
	properties := []models.Property{
		{
			MLS:          "RX-10912345",
			Address:      "456 Ocean View Drive",
			City:         "Jupiter",
			ZipCode:      "33477",
			Price:        money.Cents(285000000),
			Bedrooms:     5,
			Bathrooms:    4.5,
			Sqft:         intPtr(4200),
			YearBuilt:    intPtr(2019),
			PropertyType: models.PropertyTypeSingleFamily,
			Status:       models.PropertyStatusActive,
			Description:  strPtr("Stunning waterfront estate with private dock and panoramic ocean views. This custom-built home features a chef's kitchen, master suite with spa bath, and resort-style pool area."),
			Features:     models.StringList{"Waterfront", "Private dock", "Ocean views", "Pool", "Chef's kitchen", "Master suite", "3-car garage"},
			Neighborhood: strPtr("Jupiter Inlet Colony"),
			Lat:          floatPtr(26.9342),
			Lng:          floatPtr(-80.0931),
			Images:       models.StringList{"/api/placeholder?width=800&height=600&text=Waterfront+Estate"},
			DaysOnMarket: intPtr(12),
		},
		{
			MLS:          "RX-10912346",
			Address:      "789 Golf Club Lane",
			City:         "Palm Beach Gardens",
			ZipCode:      "33418",
			Price:        money.Cents(197500000),
			Bedrooms:     4,
			Bathrooms:    3.5,
			Sqft:         intPtr(3600),
			YearBuilt:    intPtr(2021),
			PropertyType: models.PropertyTypeSingleFamily,
			Status:       models.PropertyStatusActive,
			Description:  strPtr("Elegant home on the 16th fairway of PGA National. Open floor plan with volume ceilings, gourmet kitchen, and expansive outdoor living space overlooking the golf course."),
			Features:     models.StringList{"Golf course views", "Open floor plan", "Gourmet kitchen", "Outdoor living", "Volume ceilings", "2-car garage"},
			Neighborhood: strPtr("PGA National"),
			Lat:          floatPtr(26.8412),
			Lng:          floatPtr(-80.0883),
			Images:       models.StringList{"/api/placeholder?width=800&height=600&text=Golf+Course+Home"},
			DaysOnMarket: intPtr(8),
		},
		{
			MLS:          "RX-10912347",
			Address:      "321 Marina Way",
			City:         "Delray Beach",
			ZipCode:      "33483",
			Price:        money.Cents(320000000),
			Bedrooms:     6,
			Bathrooms:    5.5,
			Sqft:         intPtr(5100),
			YearBuilt:    intPtr(2020),
			PropertyType: models.PropertyTypeSingleFamily,
			Status:       models.PropertyStatusActive,
			Description:  strPtr("Luxurious Intracoastal estate with deep-water dockage for large yacht. Contemporary design with floor-to-ceiling windows, wine cellar, and rooftop terrace."),
			Features:     models.StringList{"Intracoastal access", "Deep-water dock", "Contemporary design", "Wine cellar", "Rooftop terrace", "Elevator"},
			Neighborhood: strPtr("Intracoastal"),
			Lat:          floatPtr(26.4615),
			Lng:          floatPtr(-80.0728),
			Images:       models.StringList{"/api/placeholder?width=800&height=600&text=Marina+Estate"},
			DaysOnMarket: intPtr(21),
		},
		{
			MLS:          "RX-10912348",
			Address:      "654 Bay Front Street",
			City:         "Jupiter",
			ZipCode:      "33477",
			Price:        money.Cents(165000000),
			Bedrooms:     3,
			Bathrooms:    3,
			Sqft:         intPtr(2900),
			YearBuilt:    intPtr(2018),
			PropertyType: models.PropertyTypeCondo,
			Status:       models.PropertyStatusActive,
			Description:  strPtr("Sophisticated waterfront condominium with panoramic water views. Features include marble floors, custom millwork, and private balcony overlooking the Intracoastal."),
			Features:     models.StringList{"Waterfront", "Panoramic views", "Marble floors", "Custom millwork", "Private balcony", "Concierge service"},
			Neighborhood: strPtr("Jupiter Bay"),
			Lat:          floatPtr(26.9279),
			Lng:          floatPtr(-80.0917),
			Images:       models.StringList{"/api/placeholder?width=800&height=600&text=Luxury+Condo"},
			DaysOnMarket: intPtr(15),
		},
	}

	for i := range properties {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "mls"}},
			DoNothing: true,
		}).Create(&properties[i]).Error
		if err != nil {
			return fmt.Errorf("failed to seed property %q: %w", properties[i].MLS, err)
		}
	}
	return nil
}

func timePtr(t time.Time) *time.Time { return &t }
func floatPtr(f float64) *float64    { return &f }
