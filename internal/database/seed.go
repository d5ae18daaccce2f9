package database

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedBin struct {
	name      string
	address   string
	latitude  float64
	longitude float64
	hours     string
	binType   string
	driveUp   bool
	notes     string
	distance  string
}

var defaultBins = []seedBin{
	{
		name:      "Yorkdale Shopping Centre",
		address:   "3401 Dufferin Street, Toronto, ON M6A 2T9",
		latitude:  43.7255,
		longitude: -79.4523,
		hours:     "Mon-Sat 10:00 AM - 9:00 PM, Sun 11:00 AM - 7:00 PM",
		binType:   "Indoor",
		driveUp:   true,
		notes:     "Located near entrance 1. Drive-up access available at loading dock.",
		distance:  "8.2 km",
	},
	{
		name:      "Scarborough Town Centre",
		address:   "300 Borough Drive, Scarborough, ON M1P 4P5",
		latitude:  43.7766,
		longitude: -79.2578,
		hours:     "Mon-Sat 10:00 AM - 9:00 PM, Sun 11:00 AM - 7:00 PM",
		binType:   "Indoor",
		driveUp:   false,
		notes:     "Inside mall near food court. Security available for assistance.",
		distance:  "15.3 km",
	},
	{
		name:      "Etobicoke Community Centre",
		address:   "65 Horner Avenue, Etobicoke, ON M8Z 4X5",
		latitude:  43.6024,
		longitude: -79.5089,
		hours:     "Open 24/7",
		binType:   "Outdoor",
		driveUp:   true,
		notes:     "Large capacity bin. Easy access from parking lot.",
		distance:  "12.7 km",
	},
	{
		name:      "North York Civic Centre",
		address:   "5100 Yonge Street, North York, ON M2N 5V7",
		latitude:  43.7678,
		longitude: -79.4142,
		hours:     "Mon-Fri 8:30 AM - 4:30 PM",
		binType:   "Indoor",
		driveUp:   false,
		notes:     "Located in main lobby. Closed on weekends and holidays.",
		distance:  "9.5 km",
	},
	{
		name:      "Dundas Square",
		address:   "10 Dundas Street East, Toronto, ON M5B 2G9",
		latitude:  43.6561,
		longitude: -79.3802,
		hours:     "Open 24/7",
		binType:   "Outdoor",
		driveUp:   false,
		notes:     "High traffic area. Bin secured and monitored.",
		distance:  "0.8 km",
	},
	{
		name:      "Beaches Recreation Centre",
		address:   "6 Williamson Road, Toronto, ON M4E 1K7",
		latitude:  43.6761,
		longitude: -79.2977,
		hours:     "Mon-Fri 7:00 AM - 10:00 PM, Weekends 8:00 AM - 8:00 PM",
		binType:   "Indoor",
		driveUp:   false,
		notes:     "Located near main entrance. Staff available during operating hours.",
		distance:  "6.4 km",
	},
	{
		name:      "High Park",
		address:   "1873 Bloor Street West, Toronto, ON M6R 2Z3",
		latitude:  43.6465,
		longitude: -79.4637,
		hours:     "Open 24/7",
		binType:   "Outdoor",
		driveUp:   true,
		notes:     "Near parking lot entrance. Well-lit and accessible.",
		distance:  "7.1 km",
	},
	{
		name:      "Mississauga Community Centre",
		address:   "300 City Centre Drive, Mississauga, ON L5B 3C1",
		latitude:  43.5890,
		longitude: -79.6441,
		hours:     "Mon-Fri 6:00 AM - 11:00 PM, Weekends 7:00 AM - 9:00 PM",
		binType:   "Indoor",
		driveUp:   true,
		notes:     "Large facility with multiple drop-off points. Drive-up at west entrance.",
		distance:  "22.3 km",
	},
	{
		name:      "Markham Civic Centre",
		address:   "101 Town Centre Blvd, Markham, ON L3R 9W3",
		latitude:  43.8561,
		longitude: -79.3370,
		hours:     "Mon-Fri 8:30 AM - 5:00 PM",
		binType:   "Indoor",
		driveUp:   false,
		notes:     "Located in the main atrium. Closed on statutory holidays.",
		distance:  "25.6 km",
	},
	{
		name:      "Liberty Village Market",
		address:   "171 East Liberty Street, Toronto, ON M6K 3P6",
		latitude:  43.6380,
		longitude: -79.4197,
		hours:     "Daily 8:00 AM - 10:00 PM",
		binType:   "Outdoor",
		driveUp:   true,
		notes:     "Located at the back of the market. Drive-up access from Liberty Street.",
		distance:  "3.2 km",
	},
	{
		name:      "Richmond Hill Community Centre",
		address:   "8501 Yonge Street, Richmond Hill, ON L4C 6Z2",
		latitude:  43.8823,
		longitude: -79.4380,
		hours:     "Mon-Fri 6:00 AM - 10:00 PM, Weekends 7:00 AM - 9:00 PM",
		binType:   "Indoor",
		driveUp:   true,
		notes:     "Large facility with dedicated donation area. Drive-up at north entrance.",
		distance:  "28.5 km",
	},
	{
		name:      "Kensington Market",
		address:   "238 Augusta Avenue, Toronto, ON M5T 2L7",
		latitude:  43.6544,
		longitude: -79.4004,
		hours:     "Daily 9:00 AM - 7:00 PM",
		binType:   "Outdoor",
		driveUp:   false,
		notes:     "Located at market entrance. High foot traffic area with regular monitoring.",
		distance:  "2.1 km",
	},
	{
		name:      "Woodbine Beach Pavilion",
		address:   "1675 Lake Shore Blvd E, Toronto, ON M4L 3W6",
		latitude:  43.6634,
		longitude: -79.3086,
		hours:     "Daily 6:00 AM - 11:00 PM",
		binType:   "Indoor",
		driveUp:   true,
		notes:     "Seasonal hours may vary. Located near main pavilion building.",
		distance:  "8.7 km",
	},
	{
		name:      "Vaughan Mills Shopping Centre",
		address:   "1 Bass Pro Mills Drive, Vaughan, ON L4K 5W4",
		latitude:  43.8254,
		longitude: -79.5386,
		hours:     "Mon-Sat 10:00 AM - 9:00 PM, Sun 11:00 AM - 7:00 PM",
		binType:   "Indoor",
		driveUp:   true,
		notes:     "Located near entrance 4. Large capacity bin with easy vehicle access.",
		distance:  "32.1 km",
	},
	{
		name:      "Ajax Community Centre",
		address:   "75 Centennial Road, Ajax, ON L1S 4L1",
		latitude:  43.8407,
		longitude: -79.0204,
		hours:     "Mon-Fri 6:00 AM - 10:00 PM, Weekends 7:00 AM - 8:00 PM",
		binType:   "Indoor",
		driveUp:   false,
		notes:     "Located in main lobby. Staff assistance available during business hours.",
		distance:  "45.6 km",
	},
	{
		name:      "Harbourfront Centre",
		address:   "235 Queens Quay West, Toronto, ON M5J 2G8",
		latitude:  43.6387,
		longitude: -79.3816,
		hours:     "Daily 10:00 AM - 6:00 PM",
		binType:   "Outdoor",
		driveUp:   false,
		notes:     "Waterfront location with scenic views. Bin secured and weather-protected.",
		distance:  "1.4 km",
	},
	{
		name:      "Brampton City Hall",
		address:   "2 Wellington Street West, Brampton, ON L6Y 4R2",
		latitude:  43.6834,
		longitude: -79.7587,
		hours:     "Mon-Fri 8:30 AM - 4:30 PM",
		binType:   "Indoor",
		driveUp:   true,
		notes:     "Government building with secure access. Drive-up available at service entrance.",
		distance:  "35.4 km",
	},
	{
		name:      "Oakville Town Square",
		address:   "1225 Trafalgar Road, Oakville, ON L6H 0H3",
		latitude:  43.4675,
		longitude: -79.6877,
		hours:     "Mon-Fri 9:00 AM - 9:00 PM, Weekends 10:00 AM - 6:00 PM",
		binType:   "Outdoor",
		driveUp:   true,
		notes:     "Central location with ample parking. Well-lit and monitored area.",
		distance:  "40.2 km",
	},
	{
		name:      "Casa Loma",
		address:   "1 Austin Terrace, Toronto, ON M5R 1X8",
		latitude:  43.6780,
		longitude: -79.4094,
		hours:     "Daily 9:30 AM - 5:00 PM",
		binType:   "Indoor",
		driveUp:   false,
		notes:     "Historic castle location. Bin located near visitor centre entrance.",
		distance:  "4.8 km",
	},
	{
		name:      "Don Valley Brick Works Park",
		address:   "550 Bayview Avenue, Toronto, ON M4W 3X8",
		latitude:  43.6859,
		longitude: -79.3648,
		hours:     "Open 24/7",
		binType:   "Outdoor",
		driveUp:   true,
		notes:     "Park setting with easy vehicle access. Environmentally themed location.",
		distance:  "5.9 km",
	},
}

type seedDriver struct {
	name    string
	email   string
	phone   string
	license string
}

var defaultDrivers = []seedDriver{
	{name: "John Smith", email: "john.smith@hh-donations.com", phone: "(416) 555-0101", license: "D1234567"},
	{name: "Sarah Johnson", email: "sarah.johnson@hh-donations.com", phone: "(416) 555-0102", license: "D1234568"},
	{name: "Mike Wilson", email: "mike.wilson@hh-donations.com", phone: "(416) 555-0103", license: "D1234569"},
}

// Seed inserts the default bins and drivers when the tables are empty.
// Seeded bins draw their numbers from the shared sequence, so the
// first is HH-0001 and creations afterwards continue from there.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var binCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM bins`).Scan(&binCount); err != nil {
		return fmt.Errorf("failed to count bins: %w", err)
	}
	if binCount == 0 {
		for _, bin := range defaultBins {
			_, err := pool.Exec(ctx,
				`INSERT INTO bins (id, bin_number, name, address, latitude, longitude, hours, type, drive_up, notes, distance)
				 VALUES ($1, 'HH-' || lpad(nextval('bin_number_seq')::text, 4, '0'), $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				uuid.New(), bin.name, bin.address, bin.latitude, bin.longitude,
				bin.hours, bin.binType, bin.driveUp, bin.notes, bin.distance)
			if err != nil {
				return fmt.Errorf("failed to seed bin %q: %w", bin.name, err)
			}
		}
		log.Printf("Seeded %d default donation bins", len(defaultBins))
	}

	var driverCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM drivers`).Scan(&driverCount); err != nil {
		return fmt.Errorf("failed to count drivers: %w", err)
	}
	if driverCount == 0 {
		for _, driver := range defaultDrivers {
			_, err := pool.Exec(ctx,
				`INSERT INTO drivers (id, name, email, phone, license_number)
				 VALUES ($1, $2, $3, $4, $5)`,
				uuid.New(), driver.name, driver.email, driver.phone, driver.license)
			if err != nil {
				return fmt.Errorf("failed to seed driver %q: %w", driver.name, err)
			}
		}
		log.Printf("Seeded %d default drivers", len(defaultDrivers))
	}

	return nil
}
