// Package seed holds the demo dataset loaded into a fresh store.
package seed

import (
	"time"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
)

// DemoPassword is the plain password of every seeded account.
const DemoPassword = "password123"

type Fixtures struct {
	Users      []entity.User
	Properties []entity.Property
	Saved      []entity.SavedProperty
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func pexels(ids ...string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = "https://images.pexels.com/photos/" + id + "/pexels-photo-" + id + ".jpeg"
	}
	return out
}

// Demo returns the demo dataset. passwordHash is stored on every user and
// must be a bcrypt hash of DemoPassword.
func Demo(passwordHash string) Fixtures {
	users := []entity.User{
		{ID: "1", Name: "John Doe", Email: "john@example.com", Password: passwordHash, Role: entity.RoleUser, CreatedAt: ts("2023-01-01T00:00:00Z")},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Password: passwordHash, Role: entity.RoleAgent, CreatedAt: ts("2023-01-02T00:00:00Z")},
	}

	plotImages := pexels("186077", "280221")
	plotImages = append(plotImages, "https://images.pexels.com/photos/8092/pexels-photo.jpg")

	properties := []entity.Property{
		{
			ID:    "1",
			Title: "3 BHK Luxury Apartment in Bandra",
			Description: "Beautiful 3 bedroom apartment with modern amenities. Located in the heart of Bandra with easy access to shopping centers, schools, and public transportation. The apartment features a spacious living room, modern kitchen, and a large balcony with stunning city views.\n\n" +
				"The community includes a swimming pool, gym, children's play area, and 24/7 security.",
			Price:     9500000,
			Location:  entity.Location{City: "Mumbai", State: "Maharashtra", Address: "123 Linking Road, Bandra West"},
			Type:      entity.PropertyApartment,
			Bedrooms:  3,
			Bathrooms: 2,
			Area:      1500,
			Features:  []string{"Swimming Pool", "Gym", "24/7 Security", "Parking", "Power Backup", "Lift"},
			Images:    pexels("1918291", "1571460", "1457842"),
			PostedBy:  "2",
			CreatedAt: ts("2023-04-15T10:30:00Z"),
		},
		{
			ID:    "2",
			Title: "Modern 4 BHK Villa in Whitefield",
			Description: "Spacious 4 bedroom villa in a gated community. This beautiful property features high ceilings, large windows, and premium finishes throughout. The open-concept kitchen includes stainless steel appliances and granite countertops.\n\n" +
				"The master bedroom has a walk-in closet and an ensuite bathroom with a soaking tub. The landscaped garden provides a perfect space for outdoor entertainment.",
			Price:     15000000,
			Location:  entity.Location{City: "Bangalore", State: "Karnataka", Address: "45 Green Valley, Whitefield"},
			Type:      entity.PropertyVilla,
			Bedrooms:  4,
			Bathrooms: 3,
			Area:      2800,
			Features:  []string{"Gated Community", "Garden", "Modular Kitchen", "CCTV", "Club House", "Children's Play Area"},
			Images:    pexels("1396122", "1080721", "259588"),
			PostedBy:  "2",
			CreatedAt: ts("2023-04-20T14:45:00Z"),
		},
		{
			ID:    "3",
			Title: "2 BHK Apartment Near Metro Station",
			Description: "Well-maintained 2 bedroom apartment close to the metro station. Perfect for young professionals or small families. The apartment is in a safe neighborhood with good connectivity to IT parks and shopping centers.\n\n" +
				"The kitchen comes with built-in cabinets and a breakfast counter. Both bedrooms have attached bathrooms and adequate storage space.",
			Price:     4500000,
			Location:  entity.Location{City: "Delhi", State: "Delhi NCR", Address: "78 Rajouri Garden"},
			Type:      entity.PropertyApartment,
			Bedrooms:  2,
			Bathrooms: 2,
			Area:      1100,
			Features:  []string{"Near Metro", "Security", "Car Parking", "Power Backup", "Visitor Parking"},
			Images:    pexels("271624", "1457847", "1643383"),
			PostedBy:  "2",
			CreatedAt: ts("2023-05-05T09:15:00Z"),
		},
		{
			ID:    "4",
			Title: "Commercial Space in Hitec City",
			Description: "Prime commercial space available in the heart of Hitec City. Ideal for offices, retail, or restaurants. The property features an open floor plan that can be customized to meet your business needs.\n\n" +
				"The building has 24/7 security, ample parking, and backup power. High visibility location with excellent foot traffic.",
			Price:     30000000,
			Location:  entity.Location{City: "Hyderabad", State: "Telangana", Address: "22 Cyber Towers, Hitec City"},
			Type:      entity.PropertyCommercial,
			Bedrooms:  0,
			Bathrooms: 2,
			Area:      3500,
			Features:  []string{"High Ceiling", "Fire Safety", "Cafeteria", "Conference Room", "Parking", "24/7 Access"},
			Images:    pexels("260689", "1170412", "260931"),
			PostedBy:  "2",
			CreatedAt: ts("2023-05-12T11:00:00Z"),
		},
		{
			ID:    "5",
			Title: "Residential Plot in Kothrud",
			Description: "RERA approved residential plot in a developing area of Kothrud. This is a great investment opportunity with high appreciation potential. The plot is in a planned development with proper roads and all utilities in place.\n\n" +
				"The plot has clear title documentation and is ready for immediate construction. Nearby amenities include schools, hospitals, and shopping centers.",
			Price:     7000000,
			Location:  entity.Location{City: "Pune", State: "Maharashtra", Address: "10 New Colony, Kothrud"},
			Type:      entity.PropertyPlot,
			Bedrooms:  0,
			Bathrooms: 0,
			Area:      2400,
			Features:  []string{"RERA Approved", "Corner Plot", "East Facing", "Electricity", "Water Connection", "Clear Title"},
			Images:    plotImages,
			PostedBy:  "2",
			CreatedAt: ts("2023-05-18T16:30:00Z"),
		},
		{
			ID:    "6",
			Title: "Luxury 5 BHK Duplex in South Delhi",
			Description: "Exquisite 5 bedroom duplex in one of South Delhi's most prestigious neighborhoods. This property offers the perfect blend of luxury, comfort, and convenience. The thoughtfully designed floor plan features spacious living areas, a formal dining room, and a state-of-the-art kitchen.\n\n" +
				"The upper level includes a master suite with a private balcony and a lavish bathroom. The property also includes staff quarters and a private terrace garden.",
			Price:     65000000,
			Location:  entity.Location{City: "Delhi", State: "Delhi NCR", Address: "7 Defence Colony"},
			Type:      entity.PropertyHouse,
			Bedrooms:  5,
			Bathrooms: 5,
			Area:      4500,
			Features:  []string{"Terrace Garden", "Modular Kitchen", "Italian Marble Flooring", "Home Theatre", "Staff Quarters", "Private Lift"},
			Images:    pexels("323780", "1029599", "2724749"),
			PostedBy:  "2",
			CreatedAt: ts("2023-05-25T13:45:00Z"),
		},
	}

	saved := []entity.SavedProperty{
		{ID: "1", UserID: "1", PropertyID: "2", SavedAt: ts("2023-06-01T10:00:00Z")},
		{ID: "2", UserID: "1", PropertyID: "5", SavedAt: ts("2023-06-05T15:30:00Z")},
	}

	return Fixtures{Users: users, Properties: properties, Saved: saved}
}
