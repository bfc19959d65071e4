package memory

import (
	"time"

	"github.com/ubtds/ubtds-api/internal/models"
)

// Fixture dataset for the Delhi region, mirroring the seeded database.

func seedZones() []models.ZoneSummary {
	return []models.ZoneSummary{
		{ID: "zone-01", Code: "Z-01", Name: "Central Hub", RC: "RC-01", Address: "Block B, Connaught Place, New Delhi 110001", Phone: "+91-98100-00001", DistanceKm: 4, Rating: 4.5, Note: "Major zone", Stock: 320},
		{ID: "zone-02", Code: "Z-02", Name: "Karol Bagh Hub", RC: "RC-01", Address: "DB Gupta Road, Karol Bagh, New Delhi 110005", Phone: "+91-98100-00002", DistanceKm: 6, Rating: 4.2, Note: "RC manages deliveries", Stock: 280},
		{ID: "zone-03", Code: "Z-03", Name: "Model Town Hub", RC: "RC-01", Address: "Ring Road, Model Town 2, Delhi 110009", Phone: "+91-98100-00003", DistanceKm: 8, Rating: 4.1, Note: "Deliveries handled by IndiaPost", Stock: 250},
		{ID: "zone-04", Code: "Z-04", Name: "Rohini Sector 3", RC: "RC-03", Address: "Pocket A, Rohini Sector 3, Delhi 110085", Phone: "+91-98100-00004", DistanceKm: 12, Rating: 4.3, Note: "Self pickup only", Stock: 260},
		{ID: "zone-05", Code: "Z-05", Name: "Pitampura Hub", RC: "RC-03", Address: "NSP, Pitampura, Delhi 110034", Phone: "+91-98100-00005", DistanceKm: 10, Rating: 4.4, Note: "RC manages deliveries", Stock: 270},
		{ID: "zone-06", Code: "Z-06", Name: "Janakpuri Hub", RC: "RC-02", Address: "C-2 Block, Janakpuri, New Delhi 110058", Phone: "+91-98100-00006", DistanceKm: 7, Rating: 4.6, Note: "Major zone", Stock: 300},
		{ID: "zone-07", Code: "Z-07", Name: "Dwarka Sector 7", RC: "RC-02", Address: "Pocket 2, Dwarka Sector 7, New Delhi 110075", Phone: "+91-98100-00007", DistanceKm: 9, Rating: 4.2, Note: "Deliveries handled by IndiaPost", Stock: 310},
		{ID: "zone-08", Code: "Z-08", Name: "Dwarka Sector 10", RC: "RC-02", Address: "Metro View, Dwarka Sector 10, New Delhi 110075", Phone: "+91-98100-00008", DistanceKm: 11, Rating: 4.0, Note: "Self pickup only", Stock: 295},
		{ID: "zone-09", Code: "Z-09", Name: "Vikas Puri Hub", RC: "RC-02", Address: "PVR Road, Vikas Puri, New Delhi 110018", Phone: "+91-98100-00009", DistanceKm: 6, Rating: 4.3, Note: "RC manages deliveries", Stock: 285},
		{ID: "zone-10", Code: "Z-10", Name: "Saket Hub", RC: "RC-02", Address: "Mandir Marg, Saket, New Delhi 110017", Phone: "+91-98100-00010", DistanceKm: 14, Rating: 4.5, Note: "Major zone", Stock: 275},
		{ID: "zone-11", Code: "Z-11", Name: "Vasant Kunj Hub", RC: "RC-02", Address: "Pocket B, Vasant Kunj, New Delhi 110070", Phone: "+91-98100-00011", DistanceKm: 15, Rating: 4.1, Note: "Deliveries handled by IndiaPost", Stock: 260},
		{ID: "zone-12", Code: "Z-12", Name: "South Delhi Hub", RC: "RC-02", Address: "IGNOU Road, Maidan Garhi, New Delhi 110068", Phone: "+91-98100-00012", DistanceKm: 5, Rating: 4.7, Note: "Major zone", Stock: 340},
		{ID: "zone-13", Code: "Z-13", Name: "Okhla Phase 1", RC: "RC-01", Address: "Industrial Area, Okhla Phase 1, New Delhi 110020", Phone: "+91-98100-00013", DistanceKm: 9, Rating: 4.0, Note: "Self pickup only", Stock: 245},
		{ID: "zone-14", Code: "Z-14", Name: "Lajpat Nagar Hub", RC: "RC-01", Address: "Ring Road, Lajpat Nagar 4, New Delhi 110024", Phone: "+91-98100-00014", DistanceKm: 7, Rating: 4.2, Note: "RC manages deliveries", Stock: 255},
		{ID: "zone-15", Code: "Z-15", Name: "Kalkaji Hub", RC: "RC-01", Address: "Main Road, Kalkaji, New Delhi 110019", Phone: "+91-98100-00015", DistanceKm: 8, Rating: 4.1, Note: "Deliveries handled by IndiaPost", Stock: 240},
		{ID: "zone-16", Code: "Z-16", Name: "Mayur Vihar Phase 1", RC: "RC-01", Address: "Pocket A, Mayur Vihar Phase 1, Delhi 110091", Phone: "+91-98100-00016", DistanceKm: 13, Rating: 4.0, Note: "Self pickup only", Stock: 235},
		{ID: "zone-17", Code: "Z-17", Name: "Preet Vihar Hub", RC: "RC-01", Address: "Vikas Marg, Preet Vihar, Delhi 110092", Phone: "+91-98100-00017", DistanceKm: 15, Rating: 4.2, Note: "RC manages deliveries", Stock: 225},
		{ID: "zone-18", Code: "Z-18", Name: "Noida Border Hub", RC: "RC-01", Address: "Chilla Village, Delhi 110096", Phone: "+91-98100-00018", DistanceKm: 18, Rating: 3.9, Note: "Deliveries handled by IndiaPost", Stock: 215},
		{ID: "zone-19", Code: "Z-19", Name: "Shahdara Hub", RC: "RC-03", Address: "GT Road, Shahdara, Delhi 110032", Phone: "+91-98100-00019", DistanceKm: 16, Rating: 4.0, Note: "Self pickup only", Stock: 230},
		{ID: "zone-20", Code: "Z-20", Name: "Yamuna Vihar Hub", RC: "RC-03", Address: "C Block, Yamuna Vihar, Delhi 110053", Phone: "+91-98100-00020", DistanceKm: 17, Rating: 4.1, Note: "RC manages deliveries", Stock: 220},
		{ID: "zone-21", Code: "Z-21", Name: "Ghaziabad Border", RC: "RC-03", Address: "Mohan Nagar, Ghaziabad Border, Ghaziabad 201007", Phone: "+91-98100-00021", DistanceKm: 20, Rating: 3.8, Note: "Deliveries handled by IndiaPost", Stock: 210},
		{ID: "zone-22", Code: "Z-22", Name: "Najafgarh Hub", RC: "RC-02", Address: "Old Roshanpura, Najafgarh, New Delhi 110043", Phone: "+91-98100-00022", DistanceKm: 19, Rating: 3.9, Note: "Self pickup only", Stock: 205},
		{ID: "zone-23", Code: "Z-23", Name: "Uttam Nagar Hub", RC: "RC-02", Address: "Matiala Road, Uttam Nagar, New Delhi 110059", Phone: "+91-98100-00023", DistanceKm: 8, Rating: 4.2, Note: "RC manages deliveries", Stock: 245},
		{ID: "zone-24", Code: "Z-24", Name: "Palam Hub", RC: "RC-02", Address: "Palam Village, South West Delhi 110010", Phone: "+91-98100-00024", DistanceKm: 10, Rating: 4.0, Note: "Deliveries handled by IndiaPost", Stock: 235},
		{ID: "zone-25", Code: "Z-25", Name: "Mehrauli Hub", RC: "RC-02", Address: "Ward 1, Mehrauli, New Delhi 110030", Phone: "+91-98100-00025", DistanceKm: 6, Rating: 4.4, Note: "Major zone", Stock: 255},
	}
}

func seedCatalog() []models.CatalogBook {
	return []models.CatalogBook{
		{ID: "book-1", Code: "BCS-011", Title: "Computer Basics", Course: "BCA", ISBN: "978-81-237-0110-1", Price: 420, IsUsed: false, Condition: "New", StockZones: []string{"Z-05", "Z-12", "HQ"}},
		{ID: "book-2", Code: "MCS-034", Title: "Data Structures", Course: "MCA_NEW", ISBN: "978-81-237-0340-2", Price: 280, IsUsed: true, Condition: "Used", StockZones: []string{"Z-18", "Z-22"}},
		{ID: "book-3", Code: "BCSL-056", Title: "Network Lab Manual", Course: "BCA", ISBN: "978-81-237-0560-5", Price: 360, IsUsed: false, Condition: "New", StockZones: []string{"RC-01", "HQ"}},
		{ID: "book-4", Code: "MCS-011", Title: "Problem Solving & Programming", Course: "MCA_OL", ISBN: "978-81-237-0111-2", Price: 300, IsUsed: true, Condition: "Used", StockZones: []string{"Z-03", "Z-07", "HQ"}},
		{ID: "book-5", Code: "BCSL-045", Title: "Linux Lab", Course: "BCA", ISBN: "978-81-237-0450-0", Price: 250, IsUsed: false, Condition: "New", StockZones: []string{"Z-01", "Z-10", "RC-03"}},
		{ID: "book-6", Code: "BCS-012", Title: "Mathematics", Course: "BCA", ISBN: "978-81-237-0120-0", Price: 390, IsUsed: false, Condition: "New", StockZones: []string{"Z-05", "HQ"}},
		{ID: "book-7", Code: "BCS-031", Title: "Database Management Systems", Course: "BCA_OL", ISBN: "978-81-237-0310-9", Price: 450, IsUsed: true, Condition: "Used", StockZones: []string{"Z-12", "HQ"}},
		{ID: "book-8", Code: "MCS-021", Title: "Operating Systems", Course: "MCA_NEW", ISBN: "978-81-237-0210-3", Price: 520, IsUsed: false, Condition: "New", StockZones: []string{"Z-18", "RC-02"}},
		{ID: "book-9", Code: "MCSL-016", Title: "Java Lab", Course: "MCA_OL", ISBN: "978-81-237-0160-1", Price: 310, IsUsed: false, Condition: "New", StockZones: []string{"Z-03", "HQ"}},
		{ID: "book-10", Code: "BCSL-033", Title: "Data Structures Lab", Course: "BCA", ISBN: "978-81-237-0330-0", Price: 330, IsUsed: false, Condition: "New", StockZones: []string{"Z-07", "RC-01"}},
		{ID: "book-11", Code: "BCS-040", Title: "Statistical Techniques", Course: "BCA_OL", ISBN: "978-81-237-0400-1", Price: 280, IsUsed: true, Condition: "Used", StockZones: []string{"Z-10", "HQ"}},
		{ID: "book-12", Code: "MCS-013", Title: "Discrete Mathematics", Course: "MCA_NEW", ISBN: "978-81-237-0130-5", Price: 480, IsUsed: false, Condition: "New", StockZones: []string{"Z-05", "Z-12"}},
		{ID: "book-13", Code: "MCS-042", Title: "Linux Administration", Course: "MCA_OL", ISBN: "978-81-237-0420-4", Price: 510, IsUsed: true, Condition: "Used", StockZones: []string{"Z-01", "RC-03"}},
	}
}

func seedOrders() []models.Order {
	return []models.Order{
		{
			ID:              "ord-1",
			UserID:          "user-student",
			Status:          models.OrderCompleted,
			PaymentMode:     models.PaymentUPI,
			Address:         "Flat 402, Sapphire Residency, New Delhi, Delhi, 110077",
			EtaDays:         0,
			CurrentLocation: "Delivered at Dwarka Sector 10",
			CreatedAt:       time.Date(2025, 11, 12, 10, 0, 0, 0, time.UTC),
			Items: []models.OrderItem{
				{BookID: "book-1", Code: "BCS-011", Title: "Computer Basics", Quantity: 1},
				{BookID: "book-2", Code: "MCS-034", Title: "Data Structures", Quantity: 1},
			},
		},
		{
			ID:              "ord-2",
			UserID:          "user-student",
			Status:          models.OrderInTransit,
			PaymentMode:     models.PaymentCOD,
			Address:         "Flat 402, Sapphire Residency, New Delhi, Delhi, 110077",
			EtaDays:         2,
			CurrentLocation: "Zone Z-12 (South Delhi Hub)",
			CreatedAt:       time.Date(2025, 11, 25, 15, 0, 0, 0, time.UTC),
			Items: []models.OrderItem{
				{BookID: "book-3", Code: "BCSL-056", Title: "Network Lab Manual", Quantity: 1},
			},
		},
	}
}

func seedPickups() []models.PickupRequest {
	return []models.PickupRequest{
		{
			ID:          "pr-1",
			Enrollment:  "2201234567",
			StudentID:   "user-student",
			Location:    "Hub H-44 (Janakpuri)",
			Status:      models.PickupPending,
			RequestedAt: time.Date(2025, 11, 28, 9, 0, 0, 0, time.UTC),
		},
	}
}

func seedBulkRequests() []models.BulkRequest {
	return []models.BulkRequest{
		{ID: "br-1", Requestor: "RC-01", Role: models.RoleRCAdmin, BookCode: "BCS-011", Count: 120, Note: "Exam cycle Jan batch", Payment: models.PaymentPO, Status: models.BulkRequested, CreatedAt: time.Date(2025, 11, 20, 11, 0, 0, 0, time.UTC)},
		{ID: "br-2", Requestor: "HQ", Role: models.RoleAdmin, BookCode: "MCS-034", Count: 300, Note: "Reprint for Delhi + Jaipur", Payment: models.PaymentNEFT, Status: models.BulkQueuedForPrint, CreatedAt: time.Date(2025, 11, 22, 14, 30, 0, 0, time.UTC)},
		{ID: "br-3", Requestor: "Distributor D-09", Role: models.RoleDistributor, BookCode: "BCSL-056", Count: 45, Note: "South West Delhi hub replenishment", Payment: models.PaymentUPI, Status: models.BulkInTransit, CreatedAt: time.Date(2025, 11, 26, 8, 45, 0, 0, time.UTC)},
	}
}

func seedFeedback() []models.Feedback {
	return []models.Feedback{
		{ID: "fb-1", Enrollment: "2201234567", Name: "Amit Sharma", SenderRole: models.RoleStudent, Type: "Delivery", Message: "Pickup from Janakpuri hub confirmed.", CreatedAt: time.Date(2025, 11, 28, 9, 10, 0, 0, time.UTC)},
		{ID: "fb-2", Enrollment: "D-12", Name: "South Delhi Distributor", SenderRole: models.RoleDistributor, Type: "Stock", Message: "Need 40 copies of BCS-011.", CreatedAt: time.Date(2025, 11, 28, 9, 20, 0, 0, time.UTC)},
	}
}

func seedDistributors(zones []models.ZoneSummary) []models.DistributorSummary {
	out := make([]models.DistributorSummary, 0, len(zones))
	for i, z := range zones {
		out = append(out, models.DistributorSummary{
			Code:  "D-" + z.Code,
			Zone:  z.Code,
			Stock: z.Stock - i*5,
		})
	}
	return out
}

// SeedTimeline is the static Delhi tracking timeline served by the
// tracking endpoint. The portal models approval workflows, not shipment
// automation, so the timeline is a fixed snapshot.
func SeedTimeline() []models.TrackingNode {
	return []models.TrackingNode{
		{ID: "t1", Status: "Dispatched", Location: "Headquarters (Maidan Garhi)", Type: "HQ", Timestamp: time.Date(2025, 11, 24, 8, 15, 0, 0, time.UTC), Note: "Bulk dispatch created for RC-01, RC-02, RC-03", EtaDays: 5, AllowPickup: true},
		{ID: "t2", Status: "In Transit", Location: "Zone Z-12 (South Delhi Hub)", Type: "Zone", Timestamp: time.Date(2025, 11, 26, 10, 30, 0, 0, time.UTC), Note: "Shipment scanning completed at hub", EtaDays: 3},
		{ID: "t3", Status: "Arrived", Location: "RC-02 (Dwarka)", Type: "RC", Timestamp: time.Date(2025, 11, 27, 12, 10, 0, 0, time.UTC), Note: "Ready for assignment to nearest hub", EtaDays: 2, AllowPickup: true},
		{ID: "t4", Status: "Ready for Pickup", Location: "Hub H-44 (Janakpuri)", Type: "Hub", Timestamp: time.Date(2025, 11, 28, 8, 5, 0, 0, time.UTC), Note: "Within 5km of destination, pickup available", EtaDays: 1, AllowPickup: true},
		{ID: "t5", Status: "Out for Delivery", Location: "Dwarka Sector 10", Type: "Zone", Timestamp: time.Date(2025, 11, 28, 12, 20, 0, 0, time.UTC), Note: "Courier en route; doorstep ETA < 24h", EtaDays: 0},
	}
}
